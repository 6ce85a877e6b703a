// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

import "strings"

// Config file suffixes. The suffix present on disk is the host's state.
const (
	EnabledSuffix  = ".conf"
	DisabledSuffix = ".conf.disabled"
)

// Template placeholders replaced when a host config is rendered.
const (
	PlaceholderHost = "%HOST%"
	PlaceholderPort = "%PORT%"
)

// HostState is derived from which config file exists for a host.
type HostState int

const (
	HostEnabled HostState = iota
	HostDisabled
)

func (s HostState) String() string {
	if s == HostDisabled {
		return "disabled"
	}
	return "enabled"
}

// Suffix returns the file suffix that represents the state.
func (s HostState) Suffix() string {
	if s == HostDisabled {
		return DisabledSuffix
	}
	return EnabledSuffix
}

// HostList is a single listing of the sites directory.
type HostList struct {
	Enabled  []string
	Disabled []string
}

// Len returns the total number of hosts in the listing.
func (l HostList) Len() int {
	return len(l.Enabled) + len(l.Disabled)
}

// All returns enabled hosts followed by disabled ones.
func (l HostList) All() []string {
	all := make([]string, 0, l.Len())
	all = append(all, l.Enabled...)
	return append(all, l.Disabled...)
}

// HostFileName returns the config file name for a host in the given state.
func HostFileName(name string, state HostState) string {
	return name + state.Suffix()
}

// HostNameFromFile strips a known suffix from a config file name. The second
// return value is false when the file is not a host config.
func HostNameFromFile(file string) (string, HostState, bool) {
	// Disabled first: ".conf.disabled" does not end with ".conf".
	if name, ok := strings.CutSuffix(file, DisabledSuffix); ok && name != "" {
		return name, HostDisabled, true
	}
	if name, ok := strings.CutSuffix(file, EnabledSuffix); ok && name != "" {
		return name, HostEnabled, true
	}
	return "", HostEnabled, false
}

// RenderHostConfig substitutes every placeholder in the template with the
// literal host and port values.
func RenderHostConfig(template, host, port string) string {
	r := strings.NewReplacer(PlaceholderHost, host, PlaceholderPort, port)
	return r.Replace(template)
}

// Bulk delete refusals.
const (
	DeleteAllNoHosts      = "no hosts to delete"
	DeleteAllNotConfirmed = "deletion not confirmed"
)

// DeleteAllResult reports what a bulk delete did.
type DeleteAllResult struct {
	Outcome Outcome
	Deleted []string
	Skipped []string
	Message string
}
