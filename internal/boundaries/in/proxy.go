// Package in defines input ports (interfaces) implemented by the use cases
// and driven by the CLI adapter.
package in

import (
	"context"

	"github.com/bnema/nginx-host-manager/internal/domain"
)

// ProxyService defines the contract for reverse proxy lifecycle operations.
type ProxyService interface {
	// Status inspects the runtime and returns the current proxy state.
	Status(ctx context.Context) (domain.ProxyState, error)

	// Overview returns the proxy state together with the host listing.
	Overview(ctx context.Context) (domain.Overview, error)

	Start(ctx context.Context) (domain.ActionResult, error)
	Stop(ctx context.Context) (domain.ActionResult, error)
	Restart(ctx context.Context) (domain.ActionResult, error)
	Reload(ctx context.Context) (domain.ActionResult, error)
}
