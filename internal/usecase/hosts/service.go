// Package hosts implements the host registry: virtual host config files whose
// suffix on disk is the only record of their state.
package hosts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
	"github.com/bnema/nginx-host-manager/internal/boundaries/out"
	"github.com/bnema/nginx-host-manager/internal/domain"
	"github.com/bnema/nginx-host-manager/pkg/logger"
)

// Config locates the registry files inside the store.
type Config struct {
	SitesDir     string
	TemplatePath string
}

// Service implements the HostService interface.
type Service struct {
	store  out.FileStore
	config Config
}

var _ in.HostService = (*Service)(nil)

// NewService creates a new host registry.
func NewService(store out.FileStore, config Config) *Service {
	return &Service{
		store:  store,
		config: config,
	}
}

// List returns the enabled and disabled hosts found in the sites directory.
func (s *Service) List(_ context.Context) (domain.HostList, error) {
	var list domain.HostList

	enabled, err := s.store.List(s.config.SitesDir, "*"+domain.EnabledSuffix)
	if err != nil {
		return list, err
	}
	disabled, err := s.store.List(s.config.SitesDir, "*"+domain.DisabledSuffix)
	if err != nil {
		return list, err
	}

	list.Enabled = namesFor(enabled, domain.HostEnabled)
	list.Disabled = namesFor(disabled, domain.HostDisabled)
	return list, nil
}

func namesFor(files []string, state domain.HostState) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		name, got, ok := domain.HostNameFromFile(f)
		if ok && got == state {
			names = append(names, name)
		}
	}
	return names
}

// ConfigFileFor returns the path of the host's config file and its state.
// The enabled file wins if both are somehow present.
func (s *Service) ConfigFileFor(_ context.Context, name string) (string, domain.HostState, error) {
	for _, state := range []domain.HostState{domain.HostEnabled, domain.HostDisabled} {
		p := s.pathFor(name, state)
		exists, err := s.store.Exists(p)
		if err != nil {
			return "", state, err
		}
		if exists {
			return p, state, nil
		}
	}
	return "", domain.HostEnabled, fmt.Errorf("%w: %s", domain.ErrHostNotFound, name)
}

// Create renders the template for name and port into the enabled path.
// An existing config for the same name, enabled or disabled, is replaced
// without warning.
func (s *Service) Create(_ context.Context, name, port string) error {
	if err := validate(name, port); err != nil {
		return err
	}

	tmpl, err := s.store.Read(s.config.TemplatePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, s.config.TemplatePath)
		}
		return err
	}

	p := s.pathFor(name, domain.HostEnabled)
	content := domain.RenderHostConfig(string(tmpl), name, port)
	if err := s.store.Write(p, []byte(content)); err != nil {
		return err
	}

	// The new enabled file replaces a disabled record of the same host.
	disabled := s.pathFor(name, domain.HostDisabled)
	ok, err := s.store.Exists(disabled)
	if err != nil {
		return err
	}
	if ok {
		if err := s.store.Delete(disabled); err != nil {
			return err
		}
	}

	logger.Info("Host created", "host", name, "port", port, "file", p)
	return nil
}

// Delete removes the config file of a host in whichever state it is.
func (s *Service) Delete(ctx context.Context, name string) error {
	p, _, err := s.ConfigFileFor(ctx, name)
	if err != nil {
		return err
	}
	if err := s.store.Delete(p); err != nil {
		return err
	}

	logger.Info("Host deleted", "host", name, "file", p)
	return nil
}

// DeleteAll removes every listed host once the caller has confirmed.
// Hosts that vanish between the listing and their deletion are skipped.
func (s *Service) DeleteAll(ctx context.Context, confirmed bool) (domain.DeleteAllResult, error) {
	list, err := s.List(ctx)
	if err != nil {
		return domain.DeleteAllResult{}, err
	}

	if list.Len() == 0 {
		return domain.DeleteAllResult{
			Outcome: domain.OutcomeNoOp,
			Message: domain.DeleteAllNoHosts,
		}, nil
	}
	if !confirmed {
		return domain.DeleteAllResult{
			Outcome: domain.OutcomeNoOp,
			Message: domain.DeleteAllNotConfirmed,
		}, nil
	}

	result := domain.DeleteAllResult{Outcome: domain.OutcomeDone}
	for _, name := range list.All() {
		err := s.Delete(ctx, name)
		switch {
		case err == nil:
			result.Deleted = append(result.Deleted, name)
		case errors.Is(err, domain.ErrHostNotFound):
			logger.Warn("Host disappeared before deletion, skipping", "host", name)
			result.Skipped = append(result.Skipped, name)
		default:
			return result, err
		}
	}

	result.Message = fmt.Sprintf("deleted %d host(s)", len(result.Deleted))
	return result, nil
}

// ChangePort recreates the host config with a new port. The host always ends
// up enabled, whatever its previous state.
func (s *Service) ChangePort(ctx context.Context, name, port string) error {
	if err := validate(name, port); err != nil {
		return err
	}

	// Refuse before touching the old file if the new one cannot be rendered.
	ok, err := s.store.Exists(s.config.TemplatePath)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, s.config.TemplatePath)
	}

	p, state, err := s.ConfigFileFor(ctx, name)
	switch {
	case err == nil:
		if err := s.store.Delete(p); err != nil {
			return err
		}
		if state == domain.HostDisabled {
			logger.Warn("Host was disabled and will be re-enabled by the port change", "host", name)
		}
	case errors.Is(err, domain.ErrHostNotFound):
		logger.Warn("Host has no config yet, creating it", "host", name)
	default:
		return err
	}

	return s.Create(ctx, name, port)
}

// SetEnabled renames a host config between its disabled and enabled path.
// The rename is refused if the source is missing or the target exists.
func (s *Service) SetEnabled(_ context.Context, name string, enabled bool) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidHost)
	}

	from, to := s.pathFor(name, domain.HostEnabled), s.pathFor(name, domain.HostDisabled)
	if enabled {
		from, to = to, from
	}

	srcExists, err := s.store.Exists(from)
	if err != nil {
		return err
	}
	if !srcExists {
		return fmt.Errorf("%w: %s", domain.ErrHostNotFound, from)
	}

	dstExists, err := s.store.Exists(to)
	if err != nil {
		return err
	}
	if dstExists {
		return fmt.Errorf("%w: %s", domain.ErrHostConflict, to)
	}

	if err := s.store.Rename(from, to); err != nil {
		return err
	}

	logger.Info("Host state changed", "host", name, "enabled", enabled)
	return nil
}

func (s *Service) pathFor(name string, state domain.HostState) string {
	return path.Join(s.config.SitesDir, domain.HostFileName(name, state))
}

func validate(name, port string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidHost)
	}
	if strings.TrimSpace(port) == "" {
		return fmt.Errorf("%w: port is empty", domain.ErrInvalidHost)
	}
	return nil
}
