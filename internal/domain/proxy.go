package domain

import "encoding/json"

// ProxyStatus is the semantic state of the reverse proxy, always derived from
// a fresh inspection.
type ProxyStatus int

const (
	ProxyNotBuilt ProxyStatus = iota
	ProxyStopped
	ProxyRunning
	ProxyRunningMisconfigured
)

func (s ProxyStatus) String() string {
	switch s {
	case ProxyStopped:
		return "stopped"
	case ProxyRunning:
		return "running"
	case ProxyRunningMisconfigured:
		return "running (misconfigured)"
	default:
		return "not built"
	}
}

// IsUp reports whether the container is running, bound correctly or not.
func (s ProxyStatus) IsUp() bool {
	return s == ProxyRunning || s == ProxyRunningMisconfigured
}

// ProxyState is the interpreter's view of the runtime.
type ProxyState struct {
	ImageBuilt      bool
	ContainerExists bool
	Status          ProxyStatus
}

// ProxyNames identifies the single proxy image/container pair.
type ProxyNames struct {
	Image     string
	Container string
}

// ImageTag is the tag the proxy image is built and looked up under.
func (n ProxyNames) ImageTag() string {
	return n.Image + ":latest"
}

// Published port of the proxy, host and container side.
const (
	ProxyPort        = "80"
	ProxyPortBinding = "80/tcp"
)

// InspectRecord is the subset of a runtime inspection object the interpreter
// consumes. Port binding values are kept raw so that shape errors surface as
// a misconfiguration instead of a decode failure.
type InspectRecord struct {
	Name         string
	Running      bool
	Status       string
	HasState     bool
	PortBindings map[string]json.RawMessage
	RepoTags     []string
}

// Mount binds a host directory into the proxy container.
type Mount struct {
	Source string
	Target string
}

// RunSpec describes a fresh create+start of the proxy container.
type RunSpec struct {
	Container string
	Image     string
	HostPort  string
	Port      string
	Mounts    []Mount
}

// ProxyAction is an operator intent against the proxy.
type ProxyAction string

const (
	ActionStart   ProxyAction = "start"
	ActionStop    ProxyAction = "stop"
	ActionRestart ProxyAction = "restart"
	ActionReload  ProxyAction = "reload"
)

// ActionResult reports the effect of a lifecycle action.
type ActionResult struct {
	Action  ProxyAction
	Outcome Outcome
	Before  ProxyState
	After   ProxyState
	Message string
}

// Overview is what the status header shows.
type Overview struct {
	Proxy ProxyState
	Hosts HostList
}
