package proxy

import (
	"encoding/json"

	"github.com/bnema/nginx-host-manager/internal/domain"
)

const statusExited = "exited"

type portBinding struct {
	HostIP   *string `json:"HostIp"`
	HostPort *string `json:"HostPort"`
}

// Interpret turns inspection records into the proxy state. It never fails:
// records that lack the expected fields count as absent.
func Interpret(containers, images []domain.InspectRecord, names domain.ProxyNames) domain.ProxyState {
	c, found := findContainer(containers, names.Container)
	if !found {
		return domain.ProxyState{
			ImageBuilt: hasImageTag(images, names.ImageTag()),
			Status:     domain.ProxyNotBuilt,
		}
	}

	state := domain.ProxyState{
		ImageBuilt:      true,
		ContainerExists: true,
	}

	switch {
	case c.Running:
		if boundToPublicPort(c.PortBindings) {
			state.Status = domain.ProxyRunning
		} else {
			state.Status = domain.ProxyRunningMisconfigured
		}
	case c.Status == statusExited:
		state.Status = domain.ProxyStopped
	default:
		// Unknown non-running state: take the full build and run path.
		state.ImageBuilt = false
		state.Status = domain.ProxyNotBuilt
	}

	return state
}

func findContainer(records []domain.InspectRecord, name string) (domain.InspectRecord, bool) {
	want := "/" + name
	for _, r := range records {
		if r.HasState && r.Name == want {
			return r, true
		}
	}
	return domain.InspectRecord{}, false
}

func hasImageTag(records []domain.InspectRecord, tag string) bool {
	for _, r := range records {
		for _, t := range r.RepoTags {
			if t == tag {
				return true
			}
		}
	}
	return false
}

// boundToPublicPort requires exactly one binding of 80/tcp on all interfaces
// to host port 80.
func boundToPublicPort(bindings map[string]json.RawMessage) bool {
	raw, ok := bindings[domain.ProxyPortBinding]
	if !ok {
		return false
	}

	var list []portBinding
	if err := json.Unmarshal(raw, &list); err != nil || len(list) != 1 {
		return false
	}

	b := list[0]
	return b.HostIP != nil && *b.HostIP == "" &&
		b.HostPort != nil && *b.HostPort == domain.ProxyPort
}
