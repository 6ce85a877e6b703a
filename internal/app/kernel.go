// Package app wires the configuration, adapters and use cases together.
package app

import (
	"fmt"

	"github.com/bnema/nginx-host-manager/internal/adapters/out/docker"
	"github.com/bnema/nginx-host-manager/internal/adapters/out/filesystem"
	"github.com/bnema/nginx-host-manager/internal/adapters/out/shell"
	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
	"github.com/bnema/nginx-host-manager/internal/boundaries/out"
	"github.com/bnema/nginx-host-manager/internal/config"
	"github.com/bnema/nginx-host-manager/internal/usecase/hosts"
	"github.com/bnema/nginx-host-manager/internal/usecase/proxy"
	"github.com/bnema/nginx-host-manager/pkg/logger"
)

// Kernel holds the services behind the menu and the subcommands.
type Kernel struct {
	cfg      *config.Config
	hostSvc  in.HostService
	proxySvc in.ProxyService
	cleanup  func()
}

// NewKernel loads the configuration and wires every service.
func NewKernel(configPath string) (*Kernel, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.GetLogger()
	log.SetLogLevel(cfg.LogLevel)
	log.ConfigureFromEnv()

	return NewKernelFromConfig(cfg)
}

// NewKernelFromConfig wires the services for an already loaded configuration.
func NewKernelFromConfig(cfg *config.Config) (*Kernel, error) {
	store, err := filesystem.NewOSStore(cfg.Paths.Root)
	if err != nil {
		return nil, fmt.Errorf("%w (run \"host-manager init\" to create it)", err)
	}

	runtime, cleanup, err := newRuntime(cfg)
	if err != nil {
		return nil, err
	}

	sitesDir, err := cfg.StorePath(cfg.Paths.Sites)
	if err != nil {
		cleanup()
		return nil, err
	}
	templatePath, err := cfg.StorePath(cfg.Paths.Template)
	if err != nil {
		cleanup()
		return nil, err
	}

	hostSvc := hosts.NewService(store, hosts.Config{
		SitesDir:     sitesDir,
		TemplatePath: templatePath,
	})
	proxySvc := proxy.NewService(runtime, hostSvc, proxy.Config{
		Names:         cfg.Names(),
		BuildContext:  cfg.Paths.Root,
		Mounts:        cfg.Mounts(),
		ReloadCommand: cfg.Proxy.ReloadCommand,
	})

	logger.Debug("Kernel ready", "root", cfg.Paths.Root, "engine", cfg.Engine.Mode)

	return &Kernel{
		cfg:      cfg,
		hostSvc:  hostSvc,
		proxySvc: proxySvc,
		cleanup:  cleanup,
	}, nil
}

func newRuntime(cfg *config.Config) (out.ProxyRuntime, func(), error) {
	if cfg.Engine.Mode == config.ModeCLI {
		runner := shell.NewRunner(cfg.Engine.CommandTimeout)
		return docker.NewCLIRuntime(runner, cfg.Engine.Binary, cfg.Engine.StopTimeout), func() {}, nil
	}

	rt, err := docker.NewAPIRuntime(cfg.Engine.StopTimeout)
	if err != nil {
		return nil, nil, err
	}
	return rt, func() {
		if err := rt.Close(); err != nil {
			logger.Warn("Failed to close Docker client", "error", err)
		}
	}, nil
}

func (k *Kernel) Close() error {
	if k == nil || k.cleanup == nil {
		return nil
	}
	k.cleanup()
	return nil
}

func (k *Kernel) Config() *config.Config { return k.cfg }

func (k *Kernel) Hosts() in.HostService { return k.hostSvc }

func (k *Kernel) Proxy() in.ProxyService { return k.proxySvc }
