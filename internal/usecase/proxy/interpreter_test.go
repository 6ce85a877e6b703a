package proxy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/nginx-host-manager/internal/domain"
)

var testNames = domain.ProxyNames{
	Image:     "nginx-reverse-proxy",
	Container: "nginx-reverse-proxy",
}

func runningWith(bindings string) domain.InspectRecord {
	r := domain.InspectRecord{
		Name:     "/nginx-reverse-proxy",
		Running:  true,
		Status:   "running",
		HasState: true,
	}
	if bindings != "" {
		r.PortBindings = map[string]json.RawMessage{
			"80/tcp": json.RawMessage(bindings),
		}
	}
	return r
}

func builtImage() []domain.InspectRecord {
	return []domain.InspectRecord{{RepoTags: []string{"nginx-reverse-proxy:latest"}}}
}

func TestInterpret_Running(t *testing.T) {
	tests := []struct {
		name     string
		bindings string
		want     domain.ProxyStatus
	}{
		{
			name:     "single binding on all interfaces",
			bindings: `[{"HostIp":"","HostPort":"80"}]`,
			want:     domain.ProxyRunning,
		},
		{
			name:     "wrong host port",
			bindings: `[{"HostIp":"","HostPort":"8080"}]`,
			want:     domain.ProxyRunningMisconfigured,
		},
		{
			name:     "empty binding list",
			bindings: `[]`,
			want:     domain.ProxyRunningMisconfigured,
		},
		{
			name:     "bound to loopback only",
			bindings: `[{"HostIp":"127.0.0.1","HostPort":"80"}]`,
			want:     domain.ProxyRunningMisconfigured,
		},
		{
			name:     "two bindings",
			bindings: `[{"HostIp":"","HostPort":"80"},{"HostIp":"::","HostPort":"80"}]`,
			want:     domain.ProxyRunningMisconfigured,
		},
		{
			name:     "object instead of array",
			bindings: `{"HostIp":"","HostPort":"80"}`,
			want:     domain.ProxyRunningMisconfigured,
		},
		{
			name:     "null bindings",
			bindings: `null`,
			want:     domain.ProxyRunningMisconfigured,
		},
		{
			name:     "missing host ip",
			bindings: `[{"HostPort":"80"}]`,
			want:     domain.ProxyRunningMisconfigured,
		},
		{
			name: "no 80/tcp key",
			want: domain.ProxyRunningMisconfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Interpret([]domain.InspectRecord{runningWith(tt.bindings)}, builtImage(), testNames)

			assert.Equal(t, tt.want, state.Status)
			assert.True(t, state.ContainerExists)
			assert.True(t, state.ImageBuilt)
		})
	}
}

func TestInterpret_OtherPortKeysIgnored(t *testing.T) {
	c := runningWith(`[{"HostIp":"","HostPort":"80"}]`)
	c.PortBindings["443/tcp"] = json.RawMessage(`[{"HostIp":"","HostPort":"443"}]`)

	state := Interpret([]domain.InspectRecord{c}, nil, testNames)

	assert.Equal(t, domain.ProxyRunning, state.Status)
}

func TestInterpret_NoContainer(t *testing.T) {
	tests := []struct {
		name      string
		images    []domain.InspectRecord
		wantImage bool
	}{
		{name: "no image", images: nil, wantImage: false},
		{name: "image with latest tag", images: builtImage(), wantImage: true},
		{
			name:      "image without latest tag",
			images:    []domain.InspectRecord{{RepoTags: []string{"nginx-reverse-proxy:1.0"}}},
			wantImage: false,
		},
		{
			name:      "image record without tags",
			images:    []domain.InspectRecord{{}},
			wantImage: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Interpret(nil, tt.images, testNames)

			assert.Equal(t, domain.ProxyNotBuilt, state.Status)
			assert.Equal(t, tt.wantImage, state.ImageBuilt)
			assert.False(t, state.ContainerExists)
		})
	}
}

func TestInterpret_NameMustMatchExactly(t *testing.T) {
	tests := []struct {
		name string
		rec  string
	}{
		{name: "missing leading slash", rec: "nginx-reverse-proxy"},
		{name: "prefix match", rec: "/nginx-reverse-proxy-old"},
		{name: "empty", rec: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := runningWith(`[{"HostIp":"","HostPort":"80"}]`)
			c.Name = tt.rec

			state := Interpret([]domain.InspectRecord{c}, nil, testNames)

			assert.Equal(t, domain.ProxyNotBuilt, state.Status)
			assert.False(t, state.ContainerExists)
		})
	}
}

func TestInterpret_RecordWithoutStateIsAbsent(t *testing.T) {
	c := domain.InspectRecord{Name: "/nginx-reverse-proxy"}

	state := Interpret([]domain.InspectRecord{c}, builtImage(), testNames)

	assert.Equal(t, domain.ProxyNotBuilt, state.Status)
	assert.True(t, state.ImageBuilt)
	assert.False(t, state.ContainerExists)
}

func TestInterpret_NotRunning(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		want      domain.ProxyStatus
		wantImage bool
	}{
		{name: "exited", status: "exited", want: domain.ProxyStopped, wantImage: true},
		{name: "created", status: "created", want: domain.ProxyNotBuilt, wantImage: false},
		{name: "dead", status: "dead", want: domain.ProxyNotBuilt, wantImage: false},
		{name: "missing status", status: "", want: domain.ProxyNotBuilt, wantImage: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.InspectRecord{
				Name:     "/nginx-reverse-proxy",
				Status:   tt.status,
				HasState: true,
			}

			state := Interpret([]domain.InspectRecord{c}, builtImage(), testNames)

			assert.Equal(t, tt.want, state.Status)
			assert.Equal(t, tt.wantImage, state.ImageBuilt)
			assert.True(t, state.ContainerExists)
		})
	}
}

func TestFilterReloadNotice(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   string
	}{
		{name: "empty", stderr: "", want: ""},
		{
			name:   "only the notice",
			stderr: "2024/05/01 10:00:00 [notice] 31#31: signal process started\n",
			want:   "",
		},
		{
			name:   "notice and a real error",
			stderr: "2024/05/01 10:00:00 [notice] 31#31: signal process started\nnginx: [emerg] unknown directive \"sever\"\n",
			want:   "nginx: [emerg] unknown directive \"sever\"",
		},
		{
			name:   "real error only",
			stderr: "nginx: [error] open() \"/run/nginx.pid\" failed\n",
			want:   "nginx: [error] open() \"/run/nginx.pid\" failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterReloadNotice(tt.stderr))
		})
	}
}
