// Package proxy drives the reverse proxy container through its lifecycle.
// Every decision is taken against a fresh inspection of the runtime.
package proxy

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
	"github.com/bnema/nginx-host-manager/internal/boundaries/out"
	"github.com/bnema/nginx-host-manager/internal/domain"
	"github.com/bnema/nginx-host-manager/pkg/logger"
)

// ReloadNotice is printed by nginx on every successful reload.
const ReloadNotice = "signal process started"

// DefaultReloadCommand asks the nginx master process to reload its config.
var DefaultReloadCommand = []string{"nginx", "-s", "reload"}

// Config holds the proxy identity and the host side of its mounts.
type Config struct {
	Names         domain.ProxyNames
	BuildContext  string
	Mounts        []domain.Mount
	ReloadCommand []string
}

// Service implements the ProxyService interface.
type Service struct {
	runtime out.ProxyRuntime
	hosts   in.HostLister
	config  Config
}

var _ in.ProxyService = (*Service)(nil)

// NewService creates a new proxy lifecycle controller.
func NewService(runtime out.ProxyRuntime, hosts in.HostLister, config Config) *Service {
	if len(config.ReloadCommand) == 0 {
		config.ReloadCommand = DefaultReloadCommand
	}
	return &Service{
		runtime: runtime,
		hosts:   hosts,
		config:  config,
	}
}

// Status inspects the container and image and interprets the result.
func (s *Service) Status(ctx context.Context) (domain.ProxyState, error) {
	containers, err := s.runtime.InspectContainer(ctx, s.config.Names.Container)
	if err != nil {
		return domain.ProxyState{}, fmt.Errorf("%w: inspect container: %w", domain.ErrRuntimeFailure, err)
	}
	images, err := s.runtime.InspectImage(ctx, s.config.Names.ImageTag())
	if err != nil {
		return domain.ProxyState{}, fmt.Errorf("%w: inspect image: %w", domain.ErrRuntimeFailure, err)
	}

	state := Interpret(containers, images, s.config.Names)
	logger.Debug("Proxy inspected",
		"status", state.Status,
		"image_built", state.ImageBuilt,
		"container_exists", state.ContainerExists,
	)
	return state, nil
}

// Overview returns the proxy state along with the current host listing.
func (s *Service) Overview(ctx context.Context) (domain.Overview, error) {
	state, err := s.Status(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	hosts, err := s.hosts.List(ctx)
	if err != nil {
		return domain.Overview{Proxy: state}, err
	}
	return domain.Overview{Proxy: state, Hosts: hosts}, nil
}

// Start brings the proxy up, building the image and creating the container
// when needed. A running proxy is left alone, misconfigured or not.
func (s *Service) Start(ctx context.Context) (domain.ActionResult, error) {
	result := domain.ActionResult{Action: domain.ActionStart}

	before, err := s.Status(ctx)
	if err != nil {
		return result, err
	}
	result.Before = before

	switch {
	case before.Status.IsUp():
		if before.Status == domain.ProxyRunningMisconfigured {
			logger.Warn("Proxy is running but not published on port 80", "container", s.config.Names.Container)
		}
		return s.noop(result, before, "proxy is already running"), nil

	case before.Status == domain.ProxyStopped:
		logger.Info("Starting proxy container", "container", s.config.Names.Container)
		if err := s.runtime.Start(ctx, s.config.Names.Container); err != nil {
			return result, fmt.Errorf("%w: start %s: %w", domain.ErrRuntimeFailure, s.config.Names.Container, err)
		}

	default:
		if err := s.buildAndRun(ctx, before); err != nil {
			return result, err
		}
	}

	return s.done(ctx, result, "proxy started")
}

func (s *Service) buildAndRun(ctx context.Context, before domain.ProxyState) error {
	names := s.config.Names

	if !before.ImageBuilt {
		logger.Info("Building proxy image", "image", names.ImageTag(), "context", s.config.BuildContext)
		if err := s.runtime.Build(ctx, names.ImageTag(), s.config.BuildContext); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrImageBuildFailed, names.ImageTag(), err)
		}
	}

	if before.ContainerExists {
		logger.Warn("Removing proxy container left in an unknown state", "container", names.Container)
		if err := s.runtime.Remove(ctx, names.Container); err != nil {
			return fmt.Errorf("%w: remove %s: %w", domain.ErrRuntimeFailure, names.Container, err)
		}
	}

	spec := s.runSpec()
	logger.Info("Running proxy container", "container", spec.Container, "image", spec.Image)
	if err := s.runtime.Run(ctx, spec); err != nil {
		return fmt.Errorf("%w: run %s: %w", domain.ErrRuntimeFailure, spec.Container, err)
	}
	return nil
}

// runSpec builds the create+start request for a fresh container. Host paths
// use forward slashes whatever the platform.
func (s *Service) runSpec() domain.RunSpec {
	mounts := make([]domain.Mount, 0, len(s.config.Mounts))
	for _, m := range s.config.Mounts {
		mounts = append(mounts, domain.Mount{
			Source: strings.ReplaceAll(m.Source, `\`, "/"),
			Target: m.Target,
		})
	}

	return domain.RunSpec{
		Container: s.config.Names.Container,
		Image:     s.config.Names.ImageTag(),
		HostPort:  domain.ProxyPort,
		Port:      domain.ProxyPort,
		Mounts:    mounts,
	}
}

// Stop stops a running proxy. Anything else is a no-op.
func (s *Service) Stop(ctx context.Context) (domain.ActionResult, error) {
	result := domain.ActionResult{Action: domain.ActionStop}

	before, err := s.Status(ctx)
	if err != nil {
		return result, err
	}
	result.Before = before

	if !before.Status.IsUp() {
		return s.noop(result, before, "proxy is not running"), nil
	}

	logger.Info("Stopping proxy container", "container", s.config.Names.Container)
	if err := s.runtime.Stop(ctx, s.config.Names.Container); err != nil {
		return result, fmt.Errorf("%w: stop %s: %w", domain.ErrRuntimeFailure, s.config.Names.Container, err)
	}

	return s.done(ctx, result, "proxy stopped")
}

// Restart is Stop followed by Start. A failed stop aborts the restart.
func (s *Service) Restart(ctx context.Context) (domain.ActionResult, error) {
	result := domain.ActionResult{Action: domain.ActionRestart}

	stopped, err := s.Stop(ctx)
	result.Before = stopped.Before
	if err != nil {
		return result, err
	}

	started, err := s.Start(ctx)
	result.After = started.After
	if err != nil {
		return result, err
	}

	result.Outcome = domain.OutcomeDone
	if stopped.Outcome == domain.OutcomeNoOp && started.Outcome == domain.OutcomeNoOp {
		result.Outcome = domain.OutcomeNoOp
	}
	result.Message = "proxy restarted"
	return result, nil
}

// Reload asks nginx inside the running container to re-read its config.
func (s *Service) Reload(ctx context.Context) (domain.ActionResult, error) {
	result := domain.ActionResult{Action: domain.ActionReload}

	before, err := s.Status(ctx)
	if err != nil {
		return result, err
	}
	result.Before = before

	if !before.Status.IsUp() {
		return s.noop(result, before, "not running, nothing to reload"), nil
	}

	logger.Info("Reloading proxy config", "container", s.config.Names.Container)
	res, err := s.runtime.Exec(ctx, s.config.Names.Container, s.config.ReloadCommand)
	if err != nil {
		return result, fmt.Errorf("%w: reload: %w", domain.ErrRuntimeFailure, err)
	}

	stderr := FilterReloadNotice(string(res.Stderr))
	if res.ExitCode != 0 || stderr != "" {
		if stderr == "" {
			stderr = strings.TrimSpace(string(res.Stdout))
		}
		return result, fmt.Errorf("%w: reload exited with code %d: %s", domain.ErrRuntimeFailure, res.ExitCode, stderr)
	}

	result.Outcome = domain.OutcomeDone
	result.After = before
	result.Message = "proxy config reloaded"
	return result, nil
}

// FilterReloadNotice drops the lines carrying the nginx reload notice and
// returns whatever diagnostics remain.
func FilterReloadNotice(stderr string) string {
	var kept []string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, ReloadNotice) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func (s *Service) noop(result domain.ActionResult, state domain.ProxyState, msg string) domain.ActionResult {
	logger.Info(msg, "action", result.Action, "status", state.Status)
	result.Outcome = domain.OutcomeNoOp
	result.After = state
	result.Message = msg
	return result
}

// done re-inspects the runtime so the reported state is what actually
// happened, not what was asked for.
func (s *Service) done(ctx context.Context, result domain.ActionResult, msg string) (domain.ActionResult, error) {
	after, err := s.Status(ctx)
	if err != nil {
		return result, err
	}
	result.Outcome = domain.OutcomeDone
	result.After = after
	result.Message = msg
	return result, nil
}
