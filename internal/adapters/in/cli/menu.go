package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

// Menu entries, in display order.
const (
	itemStart        = "Start proxy"
	itemStop         = "Stop proxy"
	itemRestart      = "Restart proxy"
	itemReload       = "Reload Nginx configuration"
	itemCreateHost   = "Create host"
	itemCreateCerts  = "Create SSL certificates"
	itemDeleteHost   = "Delete host"
	itemChangePort   = "Change port"
	itemDisableHost  = "Disable host"
	itemEnableHost   = "Enable host"
	itemDeleteAll    = "Delete all hosts"
	itemExit         = "Exit"
	clearScreen      = "\033[H\033[2J"
	menuQuestion     = "What should I do"
	certsUnsupported = "creating SSL certificates is not implemented"
)

var menuItems = []string{
	itemStart,
	itemStop,
	itemRestart,
	itemReload,
	styles.Separator,
	itemCreateHost,
	itemCreateCerts,
	itemDeleteHost,
	itemChangePort,
	itemDisableHost,
	itemEnableHost,
	itemDeleteAll,
	styles.Separator,
	itemExit,
}

type menu struct {
	svc    services
	prompt prompter
	out    io.Writer
}

func newMenu(svc services, p prompter, out io.Writer) *menu {
	return &menu{svc: svc, prompt: p, out: out}
}

// Run shows the header and asks for an action until the operator exits.
// Errors from an action are reported and the loop carries on.
func (m *menu) Run(ctx context.Context) error {
	for {
		m.header(ctx)

		choice, err := m.prompt.Select(menuQuestion, menuItems)
		if err != nil {
			if isInterrupt(err) {
				return nil
			}
			return err
		}
		_ = cliWriteLine(m.out, "")

		switch choice {
		case itemExit:
			return nil
		case styles.Separator:
			continue
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if isInterrupt(err) {
				return nil
			}
			writeError(m.out, err)
		}

		if err := m.prompt.Pause(); err != nil {
			if isInterrupt(err) {
				return nil
			}
			return err
		}
	}
}

func (m *menu) header(ctx context.Context) {
	_ = cliWritef(m.out, "%s", clearScreen)
	writeBanner(m.out)
	_ = cliWriteLine(m.out, "")

	o, err := m.svc.Proxy().Overview(ctx)
	if err == nil {
		writeOverview(m.out, o)
		_ = cliWriteLine(m.out, "")
		return
	}

	writeError(m.out, fmt.Errorf("proxy status unavailable: %w", err))
	_ = cliWriteLine(m.out, "")
	if list, listErr := m.svc.Hosts().List(ctx); listErr == nil {
		writeHostList(m.out, list)
		_ = cliWriteLine(m.out, "")
	}
}

func (m *menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case itemStart:
		return m.lifecycle(ctx, domain.ActionStart, in.ProxyService.Start)
	case itemStop:
		return m.lifecycle(ctx, domain.ActionStop, in.ProxyService.Stop)
	case itemRestart:
		return m.lifecycle(ctx, domain.ActionRestart, in.ProxyService.Restart)
	case itemReload:
		return m.lifecycle(ctx, domain.ActionReload, in.ProxyService.Reload)
	case itemCreateHost:
		return m.createHost(ctx)
	case itemCreateCerts:
		return cliWriteLine(m.out, styles.RenderWarning(certsUnsupported))
	case itemDeleteHost:
		return m.deleteHost(ctx)
	case itemChangePort:
		return m.changePort(ctx)
	case itemDisableHost:
		return m.setEnabled(ctx, false)
	case itemEnableHost:
		return m.setEnabled(ctx, true)
	case itemDeleteAll:
		return m.deleteAll(ctx)
	default:
		return fmt.Errorf("unknown menu entry %q", choice)
	}
}

func (m *menu) lifecycle(ctx context.Context, kind domain.ProxyAction, action proxyAction) error {
	res, err := runProxyAction(ctx, m.out, m.svc.Proxy(), kind, action)
	if err != nil {
		return err
	}
	writeActionResult(m.out, res)
	return nil
}

func (m *menu) createHost(ctx context.Context) error {
	name, err := m.prompt.Input("Host name", validateHostName)
	if err != nil {
		return err
	}
	port, err := m.prompt.Input("Port", validatePort)
	if err != nil {
		return err
	}

	if err := m.svc.Hosts().Create(ctx, name, port); err != nil {
		return err
	}
	return cliWriteLine(m.out, styles.RenderSuccess(fmt.Sprintf("host %s created on port %s", name, port)))
}

func (m *menu) deleteHost(ctx context.Context) error {
	list, err := m.svc.Hosts().List(ctx)
	if err != nil {
		return err
	}
	name, err := m.pickHost("Which host should be deleted", list.All(), "")
	if err != nil {
		return err
	}

	if err := m.svc.Hosts().Delete(ctx, name); err != nil {
		return err
	}
	return cliWriteLine(m.out, styles.RenderSuccess(fmt.Sprintf("host %s deleted", name)))
}

func (m *menu) changePort(ctx context.Context) error {
	list, err := m.svc.Hosts().List(ctx)
	if err != nil {
		return err
	}
	name, err := m.pickHost("Which host should change port", list.All(), "")
	if err != nil {
		return err
	}
	port, err := m.prompt.Input("New port", validatePort)
	if err != nil {
		return err
	}

	if err := m.svc.Hosts().ChangePort(ctx, name, port); err != nil {
		return err
	}
	return cliWriteLine(m.out, styles.RenderSuccess(fmt.Sprintf("host %s now points to port %s", name, port)))
}

func (m *menu) setEnabled(ctx context.Context, enabled bool) error {
	list, err := m.svc.Hosts().List(ctx)
	if err != nil {
		return err
	}

	candidates, verb, kind := list.Enabled, "disabled", "enabled"
	if enabled {
		candidates, verb, kind = list.Disabled, "enabled", "disabled"
	}
	name, err := m.pickHost(fmt.Sprintf("Which host should be %s", verb), candidates, kind)
	if err != nil {
		return err
	}

	if err := m.svc.Hosts().SetEnabled(ctx, name, enabled); err != nil {
		return err
	}
	return cliWriteLine(m.out, styles.RenderSuccess(fmt.Sprintf("host %s %s", name, verb)))
}

func (m *menu) deleteAll(ctx context.Context) error {
	list, err := m.svc.Hosts().List(ctx)
	if err != nil {
		return err
	}

	confirmed := false
	if list.Len() > 0 {
		confirmed, err = m.prompt.Confirm(fmt.Sprintf("Delete all %d host(s)?", list.Len()))
		if err != nil {
			return err
		}
	}

	res, err := m.svc.Hosts().DeleteAll(ctx, confirmed)
	if err != nil {
		return err
	}
	writeDeleteAllResult(m.out, res, "")
	return nil
}

// pickHost asks the operator to choose among names. kind qualifies the
// not-found error when there is nothing to choose from.
func (m *menu) pickHost(message string, names []string, kind string) (string, error) {
	if len(names) == 0 {
		if kind == "" {
			return "", fmt.Errorf("%w: there are no hosts", domain.ErrHostNotFound)
		}
		return "", fmt.Errorf("%w: there are no %s hosts", domain.ErrHostNotFound, kind)
	}
	return m.prompt.Select(message, names)
}
