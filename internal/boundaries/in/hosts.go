package in

import (
	"context"

	"github.com/bnema/nginx-host-manager/internal/domain"
)

// HostLister is the read-only part of the host registry.
type HostLister interface {
	List(ctx context.Context) (domain.HostList, error)
}

// HostService defines the contract for virtual host config operations.
type HostService interface {
	HostLister

	// ConfigFileFor resolves the single config file of a host, enabled first.
	ConfigFileFor(ctx context.Context, name string) (string, domain.HostState, error)

	Create(ctx context.Context, name, port string) error
	Delete(ctx context.Context, name string) error
	DeleteAll(ctx context.Context, confirmed bool) (domain.DeleteAllResult, error)
	ChangePort(ctx context.Context, name, port string) error
	SetEnabled(ctx context.Context, name string, enabled bool) error
}
