// Package components renders the reusable pieces of the host manager output.
package components

import (
	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

// ProxyStatusBadge renders the proxy status as a colored badge.
func ProxyStatusBadge(status domain.ProxyStatus) string {
	switch status {
	case domain.ProxyRunning:
		return styles.Theme.BadgeRunning.Render(status.String())
	case domain.ProxyRunningMisconfigured:
		return styles.Theme.BadgeMisconfigured.Render(status.String())
	case domain.ProxyStopped:
		return styles.Theme.BadgeStopped.Render(status.String())
	default:
		return styles.Theme.BadgeNotBuilt.Render(status.String())
	}
}

// HostName renders a host name in its state color.
func HostName(name string, state domain.HostState) string {
	if state == domain.HostDisabled {
		return styles.Theme.Muted.Render(name)
	}
	return styles.Theme.Enabled.Render(name)
}
