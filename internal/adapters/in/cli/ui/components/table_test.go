package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/nginx-host-manager/internal/domain"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func lineContaining(t *testing.T, rendered, needle string) string {
	t.Helper()
	for _, line := range strings.Split(rendered, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	require.Failf(t, "line not found", "no line contains %q in:\n%s", needle, rendered)
	return ""
}

func TestHostTable(t *testing.T) {
	rendered := stripANSI(HostTable(domain.HostList{
		Enabled:  []string{"app.example.com"},
		Disabled: []string{"old.example.com"},
	}))

	assert.Contains(t, lineContaining(t, rendered, "Host"), "State")
	assert.Contains(t, lineContaining(t, rendered, "app.example.com"), "enabled")
	assert.Contains(t, lineContaining(t, rendered, "old.example.com"), "disabled")
	assert.Less(t, strings.Index(rendered, "app.example.com"), strings.Index(rendered, "old.example.com"))
}

func TestTable_TruncatesToColumnWidth(t *testing.T) {
	rendered := stripANSI(Table([]Column{{Title: "Host", Width: 8}}, [][]string{{"very-long-host.example.com"}}))

	assert.Contains(t, rendered, "very-...")
	assert.NotContains(t, rendered, "very-long-host")
}

func TestTable_NoColumns(t *testing.T) {
	assert.Empty(t, Table(nil, [][]string{{"x"}}))
}

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		maxWidth int
		expected string
	}{
		{name: "unbounded", value: "example.com", maxWidth: 0, expected: "example.com"},
		{name: "fits", value: "abc", maxWidth: 5, expected: "abc"},
		{name: "only dots", value: "abcdef", maxWidth: 3, expected: "..."},
		{name: "ascii", value: "abcdef", maxWidth: 5, expected: "ab..."},
		{name: "wide runes", value: "你好世界", maxWidth: 5, expected: "你..."},
		{name: "styled passthrough", value: "\x1b[32menabled\x1b[0m", maxWidth: 3, expected: "\x1b[32menabled\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateCell(tt.value, tt.maxWidth)
			assert.Equal(t, tt.expected, got)
			if tt.maxWidth > 0 && !strings.Contains(tt.value, "\x1b[") {
				assert.LessOrEqual(t, runewidth.StringWidth(got), tt.maxWidth)
			}
		})
	}
}

func TestProxyStatusBadge(t *testing.T) {
	for _, s := range []domain.ProxyStatus{domain.ProxyNotBuilt, domain.ProxyStopped, domain.ProxyRunning, domain.ProxyRunningMisconfigured} {
		assert.Contains(t, stripANSI(ProxyStatusBadge(s)), s.String())
	}
}
