package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostNameFromFile(t *testing.T) {
	tests := []struct {
		file      string
		wantName  string
		wantState HostState
		wantOK    bool
	}{
		{file: "app.example.com.conf", wantName: "app.example.com", wantState: HostEnabled, wantOK: true},
		{file: "app.example.com.conf.disabled", wantName: "app.example.com", wantState: HostDisabled, wantOK: true},
		{file: "a.conf.conf", wantName: "a.conf", wantState: HostEnabled, wantOK: true},
		{file: ".conf", wantOK: false},
		{file: ".conf.disabled", wantOK: false},
		{file: "README.md", wantOK: false},
		{file: "app.conf.bak", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			name, state, ok := HostNameFromFile(tt.file)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, name)
				assert.Equal(t, tt.wantState, state)
			}
		})
	}
}

func TestHostFileName(t *testing.T) {
	assert.Equal(t, "app.conf", HostFileName("app", HostEnabled))
	assert.Equal(t, "app.conf.disabled", HostFileName("app", HostDisabled))
}

func TestRenderHostConfig(t *testing.T) {
	template := "server_name %HOST%;\nproxy_pass http://127.0.0.1:%PORT%;\n# %HOST% on %PORT%\n"

	got := RenderHostConfig(template, "app.example.com", "3000")

	assert.Equal(t, "server_name app.example.com;\nproxy_pass http://127.0.0.1:3000;\n# app.example.com on 3000\n", got)
}

func TestRenderHostConfig_ValuesAreLiteral(t *testing.T) {
	got := RenderHostConfig("%HOST%:%PORT%", "%PORT%", "$1")

	assert.Equal(t, "%PORT%:$1", got)
}

func TestHostList(t *testing.T) {
	list := HostList{Enabled: []string{"a", "b"}, Disabled: []string{"c"}}

	assert.Equal(t, 3, list.Len())
	assert.Equal(t, []string{"a", "b", "c"}, list.All())
	assert.Empty(t, HostList{}.All())
}

func TestProxyStatus(t *testing.T) {
	assert.True(t, ProxyRunning.IsUp())
	assert.True(t, ProxyRunningMisconfigured.IsUp())
	assert.False(t, ProxyStopped.IsUp())
	assert.False(t, ProxyNotBuilt.IsUp())
	assert.Equal(t, "running (misconfigured)", ProxyRunningMisconfigured.String())
	assert.Equal(t, "edge:latest", ProxyNames{Image: "edge"}.ImageTag())
}
