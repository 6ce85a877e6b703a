package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/components"
	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

const (
	bannerTitle = "Nginx Host Manager"
	noSites     = "- No sites -"

	// A restart reuses the container and its bindings, so only a fresh
	// container fixes them.
	misconfiguredHint = "proxy is running but port 80 is not published as expected; remove the container (docker rm -f <container>) and start the proxy again"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

var cliWritef = func(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// writeBanner prints the yellow title block of the menu.
func writeBanner(w io.Writer) {
	rule := strings.Repeat("=", len(bannerTitle)+4)
	yellow := color.New(color.FgYellow, color.Bold)
	_, _ = yellow.Fprintln(w, rule)
	_, _ = yellow.Fprintln(w, "  "+bannerTitle)
	_, _ = yellow.Fprintln(w, rule)
}

// writeOverview prints the proxy status followed by the enabled and disabled
// sites, the way the menu header shows them.
func writeOverview(w io.Writer, o domain.Overview) {
	_ = cliWritef(w, "%s %s\n\n", styles.Theme.Label.Render("Proxy:"), components.ProxyStatusBadge(o.Proxy.Status))
	writeHostList(w, o.Hosts)
}

func writeHostList(w io.Writer, list domain.HostList) {
	writeSites(w, "Enabled sites:", list.Enabled, domain.HostEnabled)
	_ = cliWriteLine(w, "")
	writeSites(w, "Disabled sites:", list.Disabled, domain.HostDisabled)
}

func writeSites(w io.Writer, label string, names []string, state domain.HostState) {
	_ = cliWriteLine(w, styles.Theme.Label.Render(label))
	if len(names) == 0 {
		_ = cliWriteLine(w, noSites)
		return
	}
	for _, name := range names {
		_ = cliWriteLine(w, components.HostName(name, state))
	}
}

// writeActionResult reports a lifecycle action. No-ops are informational.
func writeActionResult(w io.Writer, r domain.ActionResult) {
	if r.Outcome == domain.OutcomeNoOp {
		_ = cliWriteLine(w, styles.RenderInfo(r.Message))
	} else {
		_ = cliWriteLine(w, styles.RenderSuccess(r.Message))
	}
	if r.After.Status == domain.ProxyRunningMisconfigured {
		_ = cliWriteLine(w, styles.RenderWarning(misconfiguredHint))
	}
}

// writeDeleteAllResult reports a bulk delete. hint is appended to a refusal
// that needs confirmation.
func writeDeleteAllResult(w io.Writer, res domain.DeleteAllResult, hint string) {
	if res.Outcome == domain.OutcomeNoOp {
		msg := res.Message
		if hint != "" && res.Message == domain.DeleteAllNotConfirmed {
			msg += " (" + hint + ")"
		}
		_ = cliWriteLine(w, styles.RenderInfo(msg))
		return
	}
	for _, name := range res.Skipped {
		_ = cliWriteLine(w, styles.RenderWarning(fmt.Sprintf("%s was already gone", name)))
	}
	_ = cliWriteLine(w, styles.RenderSuccess(res.Message))
}

// writeError prints err with a severity matching its kind. Precondition
// failures are warnings; everything else is an error.
func writeError(w io.Writer, err error) {
	if domain.IsRecoverable(err) {
		_ = cliWriteLine(w, styles.RenderWarning(err.Error()))
		return
	}
	_ = cliWriteLine(w, styles.RenderError(err.Error()))
}

// PrintError reports an error returned by a command.
func PrintError(w io.Writer, err error) {
	writeError(w, err)
}
