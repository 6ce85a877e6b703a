package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
	inmocks "github.com/bnema/nginx-host-manager/internal/boundaries/in/mocks"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

func useTerminal(t *testing.T, interactive bool) {
	t.Helper()
	orig := isInteractiveTerminal
	isInteractiveTerminal = func(io.Writer) bool { return interactive }
	t.Cleanup(func() { isInteractiveTerminal = orig })
}

func TestRunProxyAction_PlainOutput(t *testing.T) {
	svc := inmocks.NewMockProxyService(t)
	want := domain.ActionResult{Action: domain.ActionStart, Message: "proxy started"}
	calls := 0
	action := func(in.ProxyService, context.Context) (domain.ActionResult, error) {
		calls++
		return want, nil
	}
	useTerminal(t, false)
	var out bytes.Buffer

	got, err := runProxyAction(context.Background(), &out, svc, domain.ActionStart, action)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, calls)
	assert.Equal(t, progressMessages[domain.ActionStart]+"\n", stripANSI(out.String()))
}

func TestRunProxyAction_Spinner(t *testing.T) {
	tests := []struct {
		name    string
		result  domain.ActionResult
		err     error
		wantErr bool
	}{
		{name: "success", result: domain.ActionResult{Action: domain.ActionRestart, Message: "proxy restarted"}},
		{name: "failure", err: errors.New("daemon gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := inmocks.NewMockProxyService(t)
			action := func(in.ProxyService, context.Context) (domain.ActionResult, error) {
				return tt.result, tt.err
			}
			useTerminal(t, true)
			var out bytes.Buffer

			got, err := runProxyAction(context.Background(), &out, svc, domain.ActionRestart, action)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "daemon gone")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, got)
		})
	}
}

func TestActionSpinnerModel(t *testing.T) {
	done := make(chan struct{})
	m := newActionSpinnerModel("Stopping proxy...", done)

	assert.Contains(t, m.View(), "Stopping proxy...")
	assert.NotNil(t, m.Init())

	_, cmd := m.Update(actionDoneMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	close(done)
	assert.Equal(t, actionDoneMsg{}, waitForAction(done)())
}

func TestProgressMessagesCoverEveryAction(t *testing.T) {
	for _, a := range []domain.ProxyAction{domain.ActionStart, domain.ActionStop, domain.ActionRestart, domain.ActionReload} {
		assert.NotEmpty(t, progressMessages[a], string(a))
	}
}
