package cli

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/nginx-host-manager/internal/boundaries/in"
	inmocks "github.com/bnema/nginx-host-manager/internal/boundaries/in/mocks"
)

type fakeServices struct {
	hosts  *inmocks.MockHostService
	proxy  *inmocks.MockProxyService
	closed int
}

func (f *fakeServices) Hosts() in.HostService  { return f.hosts }
func (f *fakeServices) Proxy() in.ProxyService { return f.proxy }
func (f *fakeServices) Close() error {
	f.closed++
	return nil
}

func newFakeServices(t *testing.T) *fakeServices {
	t.Helper()
	return &fakeServices{
		hosts: inmocks.NewMockHostService(t),
		proxy: inmocks.NewMockProxyService(t),
	}
}

// useFakeServices makes every command open svc instead of the real kernel.
func useFakeServices(t *testing.T, svc *fakeServices) {
	t.Helper()
	orig := openServices
	openServices = func(string) (services, error) { return svc, nil }
	t.Cleanup(func() { openServices = orig })
}

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stripANSI(out.String()), err
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type answer struct {
	value string
	ok    bool
	err   error
}

// scriptedPrompter replays answers in order and fails the test on any
// prompt it was not scripted for.
type scriptedPrompter struct {
	t       *testing.T
	answers []answer
	asked   []string
	options map[string][]string
	pauses  int
}

func newScriptedPrompter(t *testing.T, answers ...answer) *scriptedPrompter {
	t.Helper()
	p := &scriptedPrompter{t: t, answers: answers, options: map[string][]string{}}
	t.Cleanup(func() {
		if len(p.answers) > 0 {
			t.Errorf("%d scripted answer(s) not consumed", len(p.answers))
		}
	})
	return p
}

func (p *scriptedPrompter) next(message string) answer {
	p.t.Helper()
	p.asked = append(p.asked, message)
	require.NotEmpty(p.t, p.answers, "unexpected prompt %q", message)
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a
}

func (p *scriptedPrompter) Select(message string, options []string) (string, error) {
	p.options[message] = options
	a := p.next(message)
	return a.value, a.err
}

func (p *scriptedPrompter) Input(message string, validate func(string) error) (string, error) {
	a := p.next(message)
	if a.err == nil && validate != nil {
		require.NoError(p.t, validate(a.value), "scripted answer for %q must be valid", message)
	}
	return a.value, a.err
}

func (p *scriptedPrompter) Confirm(message string) (bool, error) {
	a := p.next(message)
	return a.ok, a.err
}

func (p *scriptedPrompter) Pause() error {
	p.pauses++
	return nil
}

func pick(v string) answer { return answer{value: v} }

func confirm(ok bool) answer { return answer{ok: ok} }
