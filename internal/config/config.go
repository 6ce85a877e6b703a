// Package config loads the host manager configuration from a YAML file,
// HOSTMAN_* environment variables and built-in defaults, in that order of
// precedence (environment wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bnema/nginx-host-manager/internal/domain"
	"github.com/bnema/nginx-host-manager/pkg/logger"
)

// FileName is the config file name searched for, without extension.
const FileName = "host-manager"

// EnvPrefix prefixes every environment override, e.g. HOSTMAN_PROXY_IMAGE.
const EnvPrefix = "HOSTMAN"

// Engine modes.
const (
	ModeAPI = "api"
	ModeCLI = "cli"
)

type Config struct {
	Proxy    ProxyConfig  `mapstructure:"proxy" yaml:"proxy"`
	Paths    PathsConfig  `mapstructure:"paths" yaml:"paths"`
	Engine   EngineConfig `mapstructure:"engine" yaml:"engine"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-" yaml:"-"`
}

type ProxyConfig struct {
	Image          string   `mapstructure:"image" yaml:"image"`
	Container      string   `mapstructure:"container" yaml:"container"`
	ReloadCommand  []string `mapstructure:"reload_command" yaml:"reload_command"`
	CertsTarget    string   `mapstructure:"certs_target" yaml:"certs_target"`
	IncludesTarget string   `mapstructure:"includes_target" yaml:"includes_target"`
	SitesTarget    string   `mapstructure:"sites_target" yaml:"sites_target"`
}

// PathsConfig locates the proxy files on the host. Everything but Root is
// relative to Root unless absolute. Root is also the image build context.
type PathsConfig struct {
	Root     string `mapstructure:"root" yaml:"root"`
	Template string `mapstructure:"template" yaml:"template"`
	Sites    string `mapstructure:"sites" yaml:"sites"`
	Certs    string `mapstructure:"certs" yaml:"certs"`
	Includes string `mapstructure:"includes" yaml:"includes"`
}

type EngineConfig struct {
	Mode           string        `mapstructure:"mode" yaml:"mode"`
	Binary         string        `mapstructure:"binary" yaml:"binary"`
	StopTimeout    int           `mapstructure:"stop_timeout" yaml:"stop_timeout"`
	CommandTimeout time.Duration `mapstructure:"command_timeout" yaml:"command_timeout"`
}

// Default values
var (
	defaultName           = "nginx-reverse-proxy"
	defaultReloadCommand  = []string{"nginx", "-s", "reload"}
	defaultCertsTarget    = "/etc/nginx/certs"
	defaultIncludesTarget = "/etc/nginx/includes"
	defaultSitesTarget    = "/etc/nginx/conf.d"
	defaultRoot           = "reverse-proxy"
	defaultTemplate       = "template.conf"
	defaultSites          = "sites"
	defaultCerts          = "certs"
	defaultIncludes       = "includes"
	defaultMode           = ModeAPI
	defaultBinary         = "docker"
	defaultStopTimeout    = 10
	defaultCommandTimeout = 10 * time.Minute
	defaultLogLevel       = "info"
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Proxy: ProxyConfig{
			Image:          defaultName,
			Container:      defaultName,
			ReloadCommand:  append([]string(nil), defaultReloadCommand...),
			CertsTarget:    defaultCertsTarget,
			IncludesTarget: defaultIncludesTarget,
			SitesTarget:    defaultSitesTarget,
		},
		Paths: PathsConfig{
			Root:     defaultRoot,
			Template: defaultTemplate,
			Sites:    defaultSites,
			Certs:    defaultCerts,
			Includes: defaultIncludes,
		},
		Engine: EngineConfig{
			Mode:           defaultMode,
			Binary:         defaultBinary,
			StopTimeout:    defaultStopTimeout,
			CommandTimeout: defaultCommandTimeout,
		},
		LogLevel: defaultLogLevel,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("proxy.image", d.Proxy.Image)
	v.SetDefault("proxy.container", d.Proxy.Container)
	v.SetDefault("proxy.reload_command", d.Proxy.ReloadCommand)
	v.SetDefault("proxy.certs_target", d.Proxy.CertsTarget)
	v.SetDefault("proxy.includes_target", d.Proxy.IncludesTarget)
	v.SetDefault("proxy.sites_target", d.Proxy.SitesTarget)
	v.SetDefault("paths.root", d.Paths.Root)
	v.SetDefault("paths.template", d.Paths.Template)
	v.SetDefault("paths.sites", d.Paths.Sites)
	v.SetDefault("paths.certs", d.Paths.Certs)
	v.SetDefault("paths.includes", d.Paths.Includes)
	v.SetDefault("engine.mode", d.Engine.Mode)
	v.SetDefault("engine.binary", d.Engine.Binary)
	v.SetDefault("engine.stop_timeout", d.Engine.StopTimeout)
	v.SetDefault("engine.command_timeout", d.Engine.CommandTimeout)
	v.SetDefault("log_level", d.LogLevel)
}

// Load reads the configuration. An explicit path must exist; otherwise the
// file is searched in the working directory and the user config directory,
// and its absence is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: failed to read config: %w", domain.ErrInvalidConfig, err)
		}
		logger.Debug("No config file found, using defaults and environment")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config: %w", domain.ErrInvalidConfig, err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Source != "" {
		logger.Debug("Config loaded", "file", cfg.Source)
	}
	return cfg, nil
}

// Resolve makes Root absolute.
func (c *Config) Resolve() error {
	root, err := filepath.Abs(c.Paths.Root)
	if err != nil {
		return fmt.Errorf("%w: paths.root: %w", domain.ErrInvalidConfig, err)
	}
	c.Paths.Root = root
	return nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error

	if c.Proxy.Image == "" {
		errs = append(errs, errors.New("proxy.image is required"))
	}
	if c.Proxy.Container == "" {
		errs = append(errs, errors.New("proxy.container is required"))
	}
	if len(c.Proxy.ReloadCommand) == 0 {
		errs = append(errs, errors.New("proxy.reload_command is required"))
	}
	if c.Engine.Mode != ModeAPI && c.Engine.Mode != ModeCLI {
		errs = append(errs, fmt.Errorf("engine.mode must be %q or %q, got %q", ModeAPI, ModeCLI, c.Engine.Mode))
	}
	if c.Engine.StopTimeout < 0 {
		errs = append(errs, errors.New("engine.stop_timeout must not be negative"))
	}
	for key, p := range map[string]string{"paths.template": c.Paths.Template, "paths.sites": c.Paths.Sites} {
		if _, err := c.StorePath(p); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// HostPath returns p as an absolute host path.
func (c *Config) HostPath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Paths.Root, p)
}

// StorePath returns p relative to Root with forward slashes, as the file
// store expects. Paths outside Root are rejected.
func (c *Config) StorePath(p string) (string, error) {
	rel, err := filepath.Rel(c.Paths.Root, c.HostPath(p))
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", p, c.Paths.Root)
	}
	return filepath.ToSlash(rel), nil
}

// Mounts returns the certs, includes and sites bind mounts, in that order.
func (c *Config) Mounts() []domain.Mount {
	return []domain.Mount{
		{Source: c.HostPath(c.Paths.Certs), Target: c.Proxy.CertsTarget},
		{Source: c.HostPath(c.Paths.Includes), Target: c.Proxy.IncludesTarget},
		{Source: c.HostPath(c.Paths.Sites), Target: c.Proxy.SitesTarget},
	}
}

// Names returns the proxy image and container names.
func (c *Config) Names() domain.ProxyNames {
	return domain.ProxyNames{Image: c.Proxy.Image, Container: c.Proxy.Container}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes the configuration to path, refusing to overwrite an
// existing file unless force is set.
func (c *Config) WriteFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
