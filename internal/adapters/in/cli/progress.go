package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/components"
	"github.com/bnema/nginx-host-manager/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
	"github.com/bnema/nginx-host-manager/internal/domain"
	"github.com/bnema/nginx-host-manager/pkg/logger"
)

// proxyAction is a lifecycle method of the proxy service.
type proxyAction func(in.ProxyService, context.Context) (domain.ActionResult, error)

// progressMessages is what the spinner shows while an action runs.
var progressMessages = map[domain.ProxyAction]string{
	domain.ActionStart:   "Starting proxy (this may build the image)...",
	domain.ActionStop:    "Stopping proxy...",
	domain.ActionRestart: "Restarting proxy...",
	domain.ActionReload:  "Reloading nginx configuration...",
}

// isInteractiveTerminal reports whether w is a terminal that can redraw a
// spinner line. Tests replace it.
var isInteractiveTerminal = func(w io.Writer) bool {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// runProxyAction runs a lifecycle action under a spinner when w is a
// terminal, or after a plain progress line otherwise.
func runProxyAction(ctx context.Context, w io.Writer, svc in.ProxyService, kind domain.ProxyAction, action proxyAction) (domain.ActionResult, error) {
	msg := progressMessages[kind]

	if !isInteractiveTerminal(w) {
		_ = cliWriteLine(w, styles.Theme.Muted.Render(msg))
		return action(svc, ctx)
	}

	var (
		result domain.ActionResult
		err    error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err = action(svc, ctx)
	}()

	model := newActionSpinnerModel(msg, done)
	_, runErr := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
	).Run()
	_ = cliWritef(w, "\r\033[K")

	// The spinner may stop early on cancellation; the action result still wins.
	<-done
	if runErr != nil {
		logger.Debug("Spinner stopped", "error", runErr)
	}
	return result, err
}

type actionDoneMsg struct{}

type actionSpinnerModel struct {
	spinner components.SpinnerModel
	done    <-chan struct{}
}

func newActionSpinnerModel(msg string, done <-chan struct{}) actionSpinnerModel {
	return actionSpinnerModel{
		spinner: components.NewSpinner(components.WithMessage(msg)),
		done:    done,
	}
}

func (m actionSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), waitForAction(m.done))
}

func (m actionSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case actionDoneMsg:
		return m, tea.Quit
	default:
		updated, cmd := m.spinner.Update(msg)
		if s, ok := updated.(components.SpinnerModel); ok {
			m.spinner = s
		}
		return m, cmd
	}
}

func (m actionSpinnerModel) View() string {
	return m.spinner.View()
}

func waitForAction(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return actionDoneMsg{}
	}
}
