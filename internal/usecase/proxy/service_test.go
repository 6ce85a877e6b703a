package proxy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inmocks "github.com/bnema/nginx-host-manager/internal/boundaries/in/mocks"
	"github.com/bnema/nginx-host-manager/internal/boundaries/out"
	outmocks "github.com/bnema/nginx-host-manager/internal/boundaries/out/mocks"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

const (
	testContainer = "nginx-reverse-proxy"
	testImageTag  = "nginx-reverse-proxy:latest"
)

func testConfig() Config {
	return Config{
		Names:        testNames,
		BuildContext: "/srv/reverse-proxy",
		Mounts: []domain.Mount{
			{Source: `C:\proxy\certs`, Target: "/etc/nginx/certs"},
			{Source: "/srv/reverse-proxy/includes", Target: "/etc/nginx/includes"},
			{Source: `C:\proxy\sites`, Target: "/etc/nginx/conf.d"},
		},
	}
}

func newTestService(t *testing.T) (*Service, *outmocks.MockProxyRuntime, *inmocks.MockHostLister) {
	t.Helper()
	rt := outmocks.NewMockProxyRuntime(t)
	hosts := inmocks.NewMockHostLister(t)
	return NewService(rt, hosts, testConfig()), rt, hosts
}

func running() []domain.InspectRecord {
	return []domain.InspectRecord{runningWith(`[{"HostIp":"","HostPort":"80"}]`)}
}

func misconfigured() []domain.InspectRecord {
	return []domain.InspectRecord{runningWith(`[{"HostIp":"","HostPort":"8080"}]`)}
}

func withStatus(status string) []domain.InspectRecord {
	return []domain.InspectRecord{{
		Name:     "/" + testContainer,
		Status:   status,
		HasState: true,
	}}
}

// inspectSequence makes successive container inspections return the given
// records in order.
func inspectSequence(rt *outmocks.MockProxyRuntime, states ...[]domain.InspectRecord) {
	for _, s := range states {
		rt.EXPECT().InspectContainer(mock.Anything, testContainer).Return(s, nil).Once()
	}
}

func TestService_Status(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)

	state, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ProxyState{
		ImageBuilt:      true,
		ContainerExists: true,
		Status:          domain.ProxyRunning,
	}, state)
}

func TestService_Status_InspectFailure(t *testing.T) {
	svc, rt, _ := newTestService(t)

	rt.EXPECT().InspectContainer(mock.Anything, testContainer).Return(nil, errors.New("daemon unreachable"))

	_, err := svc.Status(context.Background())

	assert.ErrorIs(t, err, domain.ErrRuntimeFailure)
	assert.Equal(t, domain.KindRuntime, domain.KindOf(err))
}

func TestService_Overview(t *testing.T) {
	svc, rt, hosts := newTestService(t)

	inspectSequence(rt, withStatus("exited"))
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	hosts.EXPECT().List(mock.Anything).Return(domain.HostList{
		Enabled:  []string{"a.example.com"},
		Disabled: []string{"b.example.com"},
	}, nil)

	ov, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ProxyStopped, ov.Proxy.Status)
	assert.Equal(t, []string{"a.example.com"}, ov.Hosts.Enabled)
	assert.Equal(t, []string{"b.example.com"}, ov.Hosts.Disabled)
}

func TestService_Start_AlreadyUpIssuesNoMutations(t *testing.T) {
	tests := []struct {
		name  string
		state []domain.InspectRecord
	}{
		{name: "running", state: running()},
		{name: "misconfigured", state: misconfigured()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rt, _ := newTestService(t)

			inspectSequence(rt, tt.state)
			rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)

			result, err := svc.Start(context.Background())

			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeNoOp, result.Outcome)
			assert.Equal(t, result.Before, result.After)
			for _, call := range rt.Calls {
				assert.Contains(t, []string{"InspectContainer", "InspectImage"}, call.Method)
			}
		})
	}
}

func TestService_Start_Stopped(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, withStatus("exited"), running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	rt.EXPECT().Start(mock.Anything, testContainer).Return(nil).Once()

	result, err := svc.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDone, result.Outcome)
	assert.Equal(t, domain.ProxyStopped, result.Before.Status)
	assert.Equal(t, domain.ProxyRunning, result.After.Status)
}

func TestService_Start_BuildsThenRuns(t *testing.T) {
	svc, rt, _ := newTestService(t)
	var calls []string

	inspectSequence(rt, nil, running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(nil, nil).Once()
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil).Once()
	rt.EXPECT().Build(mock.Anything, testImageTag, "/srv/reverse-proxy").
		Run(func(_ context.Context, _, _ string) { calls = append(calls, "build") }).
		Return(nil).Once()
	rt.EXPECT().Run(mock.Anything, mock.AnythingOfType("domain.RunSpec")).
		Run(func(_ context.Context, _ domain.RunSpec) { calls = append(calls, "run") }).
		Return(nil).Once()

	result, err := svc.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"build", "run"}, calls)
	assert.Equal(t, domain.OutcomeDone, result.Outcome)
	assert.Equal(t, domain.ProxyRunning, result.After.Status)
}

func TestService_Start_BuildFailurePreventsRun(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, nil)
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(nil, nil)
	rt.EXPECT().Build(mock.Anything, testImageTag, "/srv/reverse-proxy").
		Return(errors.New("COPY failed: no such file")).Once()

	result, err := svc.Start(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrImageBuildFailed)
	assert.Equal(t, domain.KindRuntime, domain.KindOf(err))
	assert.Contains(t, err.Error(), "COPY failed")
	assert.Equal(t, domain.ProxyNotBuilt, result.Before.Status)
	rt.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestService_Start_ImageBuiltRunsWithoutBuild(t *testing.T) {
	svc, rt, _ := newTestService(t)
	var got domain.RunSpec

	inspectSequence(rt, nil, running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	rt.EXPECT().Run(mock.Anything, mock.AnythingOfType("domain.RunSpec")).
		Run(func(_ context.Context, spec domain.RunSpec) { got = spec }).
		Return(nil).Once()

	_, err := svc.Start(context.Background())

	require.NoError(t, err)
	rt.AssertNotCalled(t, "Build", mock.Anything, mock.Anything, mock.Anything)

	assert.Equal(t, testContainer, got.Container)
	assert.Equal(t, testImageTag, got.Image)
	assert.Equal(t, "80", got.HostPort)
	assert.Equal(t, "80", got.Port)
	assert.Equal(t, []domain.Mount{
		{Source: "C:/proxy/certs", Target: "/etc/nginx/certs"},
		{Source: "/srv/reverse-proxy/includes", Target: "/etc/nginx/includes"},
		{Source: "C:/proxy/sites", Target: "/etc/nginx/conf.d"},
	}, got.Mounts)
}

func TestService_Start_UnknownStateRemovesStaleContainer(t *testing.T) {
	svc, rt, _ := newTestService(t)
	var calls []string

	inspectSequence(rt, withStatus("created"), running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	rt.EXPECT().Build(mock.Anything, testImageTag, "/srv/reverse-proxy").
		Run(func(_ context.Context, _, _ string) { calls = append(calls, "build") }).
		Return(nil).Once()
	rt.EXPECT().Remove(mock.Anything, testContainer).
		Run(func(_ context.Context, _ string) { calls = append(calls, "remove") }).
		Return(nil).Once()
	rt.EXPECT().Run(mock.Anything, mock.AnythingOfType("domain.RunSpec")).
		Run(func(_ context.Context, _ domain.RunSpec) { calls = append(calls, "run") }).
		Return(nil).Once()

	result, err := svc.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"build", "remove", "run"}, calls)
	assert.Equal(t, domain.OutcomeDone, result.Outcome)
}

func TestService_Start_RunFailure(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, nil)
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	rt.EXPECT().Run(mock.Anything, mock.Anything).Return(errors.New("port is already allocated")).Once()

	_, err := svc.Start(context.Background())

	assert.ErrorIs(t, err, domain.ErrRuntimeFailure)
	assert.NotErrorIs(t, err, domain.ErrImageBuildFailed)
}

func TestService_Stop(t *testing.T) {
	tests := []struct {
		name        string
		states      [][]domain.InspectRecord
		wantStop    bool
		wantOutcome domain.Outcome
	}{
		{
			name:        "running",
			states:      [][]domain.InspectRecord{running(), withStatus("exited")},
			wantStop:    true,
			wantOutcome: domain.OutcomeDone,
		},
		{
			name:        "misconfigured",
			states:      [][]domain.InspectRecord{misconfigured(), withStatus("exited")},
			wantStop:    true,
			wantOutcome: domain.OutcomeDone,
		},
		{
			name:        "stopped",
			states:      [][]domain.InspectRecord{withStatus("exited")},
			wantOutcome: domain.OutcomeNoOp,
		},
		{
			name:        "not built",
			states:      [][]domain.InspectRecord{nil},
			wantOutcome: domain.OutcomeNoOp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rt, _ := newTestService(t)

			inspectSequence(rt, tt.states...)
			rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
			if tt.wantStop {
				rt.EXPECT().Stop(mock.Anything, testContainer).Return(nil).Once()
			}

			result, err := svc.Stop(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			if !tt.wantStop {
				rt.AssertNotCalled(t, "Stop", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestService_Stop_Failure(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	rt.EXPECT().Stop(mock.Anything, testContainer).Return(errors.New("timeout")).Once()

	_, err := svc.Stop(context.Background())

	assert.ErrorIs(t, err, domain.ErrRuntimeFailure)
}

func TestService_Restart_StopsThenStarts(t *testing.T) {
	svc, rt, _ := newTestService(t)
	var calls []string

	inspectSequence(rt, running(), withStatus("exited"), withStatus("exited"), running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	rt.EXPECT().Stop(mock.Anything, testContainer).
		Run(func(_ context.Context, _ string) { calls = append(calls, "stop") }).
		Return(nil).Once()
	rt.EXPECT().Start(mock.Anything, testContainer).
		Run(func(_ context.Context, _ string) { calls = append(calls, "start") }).
		Return(nil).Once()

	result, err := svc.Restart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"stop", "start"}, calls)
	assert.Equal(t, domain.ActionRestart, result.Action)
	assert.Equal(t, domain.OutcomeDone, result.Outcome)
	assert.Equal(t, domain.ProxyRunning, result.Before.Status)
	assert.Equal(t, domain.ProxyRunning, result.After.Status)
}

func TestService_Restart_FromNotBuiltBuildsAndRuns(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, nil, nil, running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(nil, nil).Twice()
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil).Once()
	rt.EXPECT().Build(mock.Anything, testImageTag, mock.Anything).Return(nil).Once()
	rt.EXPECT().Run(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := svc.Restart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDone, result.Outcome)
	rt.AssertNotCalled(t, "Stop", mock.Anything, mock.Anything)
}

func TestService_Restart_StopFailureAbortsStart(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, running())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	rt.EXPECT().Stop(mock.Anything, testContainer).Return(errors.New("timeout")).Once()

	_, err := svc.Restart(context.Background())

	assert.ErrorIs(t, err, domain.ErrRuntimeFailure)
	rt.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
	rt.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestService_Reload(t *testing.T) {
	tests := []struct {
		name    string
		result  *out.ExecResult
		wantErr bool
	}{
		{
			name:   "clean reload",
			result: &out.ExecResult{},
		},
		{
			name: "benign notice is filtered",
			result: &out.ExecResult{
				Stderr: []byte("2024/05/01 10:00:00 [notice] 31#31: signal process started\n"),
			},
		},
		{
			name: "config error",
			result: &out.ExecResult{
				ExitCode: 1,
				Stderr:   []byte("nginx: [emerg] unknown directive \"sever\" in /etc/nginx/conf.d/a.conf:3\n"),
			},
			wantErr: true,
		},
		{
			name: "warning with zero exit",
			result: &out.ExecResult{
				Stderr: []byte("nginx: [warn] conflicting server name \"a\" on 0.0.0.0:80, ignored\n"),
			},
			wantErr: true,
		},
		{
			name:    "non-zero exit without output",
			result:  &out.ExecResult{ExitCode: 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rt, _ := newTestService(t)

			inspectSequence(rt, running())
			rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
			rt.EXPECT().Exec(mock.Anything, testContainer, []string{"nginx", "-s", "reload"}).
				Return(tt.result, nil).Once()

			result, err := svc.Reload(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrRuntimeFailure)
				assert.NotContains(t, err.Error(), ReloadNotice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeDone, result.Outcome)
		})
	}
}

func TestService_Reload_NotRunning(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, withStatus("exited"))
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)

	result, err := svc.Reload(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoOp, result.Outcome)
	assert.Equal(t, "not running, nothing to reload", result.Message)
	rt.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Reload_ExecFailure(t *testing.T) {
	svc, rt, _ := newTestService(t)

	inspectSequence(rt, misconfigured())
	rt.EXPECT().InspectImage(mock.Anything, testImageTag).Return(builtImage(), nil)
	rt.EXPECT().Exec(mock.Anything, testContainer, mock.Anything).Return(nil, errors.New("container paused")).Once()

	_, err := svc.Reload(context.Background())

	assert.ErrorIs(t, err, domain.ErrRuntimeFailure)
}

func TestNewService_DefaultReloadCommand(t *testing.T) {
	svc := NewService(nil, nil, Config{})
	assert.Equal(t, []string{"nginx", "-s", "reload"}, svc.config.ReloadCommand)

	svc = NewService(nil, nil, Config{ReloadCommand: []string{"openresty", "-s", "reload"}})
	assert.Equal(t, []string{"openresty", "-s", "reload"}, svc.config.ReloadCommand)
}
