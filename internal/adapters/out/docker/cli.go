package docker

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bnema/nginx-host-manager/internal/boundaries/out"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

// DefaultBinary is the CLI invoked when none is configured.
const DefaultBinary = "docker"

// CLIRuntime implements the ProxyRuntime interface by running the docker CLI.
// Any docker-compatible CLI (podman, nerdctl) works as long as it accepts
// the same arguments.
type CLIRuntime struct {
	runner      out.CommandRunner
	binary      string
	stopTimeout int
}

var _ out.ProxyRuntime = (*CLIRuntime)(nil)

// NewCLIRuntime creates a runtime that runs binary through runner.
func NewCLIRuntime(runner out.CommandRunner, binary string, stopTimeout int) *CLIRuntime {
	if binary == "" {
		binary = DefaultBinary
	}
	if stopTimeout <= 0 {
		stopTimeout = DefaultStopTimeout
	}
	return &CLIRuntime{
		runner:      runner,
		binary:      binary,
		stopTimeout: stopTimeout,
	}
}

func (r *CLIRuntime) run(ctx context.Context, args ...string) (*out.CommandResult, error) {
	log.Debug("Running container CLI", "cmd", r.binary+" "+strings.Join(args, " "))

	res, err := r.runner.Run(ctx, r.binary, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s %s: %w", r.binary, args[0], err)
	}
	return res, nil
}

// mustSucceed runs a command whose non-zero exit is an error.
func (r *CLIRuntime) mustSucceed(ctx context.Context, args ...string) error {
	res, err := r.run(ctx, args...)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%s %s exited with code %d: %s",
			r.binary, args[0], res.ExitCode, strings.TrimSpace(string(res.Stderr)))
	}
	return nil
}

func (r *CLIRuntime) inspect(ctx context.Context, kind, name string) ([]domain.InspectRecord, error) {
	res, err := r.run(ctx, kind, "inspect", name)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		if isNoSuchObject(res.Stderr) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s inspect %s exited with code %d: %s",
			r.binary, kind, name, res.ExitCode, strings.TrimSpace(string(res.Stderr)))
	}
	return ParseInspectRecords(res.Stdout), nil
}

func isNoSuchObject(stderr []byte) bool {
	s := strings.ToLower(string(stderr))
	return strings.Contains(s, "no such") || strings.Contains(s, "not found")
}

// InspectContainer runs "docker container inspect".
func (r *CLIRuntime) InspectContainer(ctx context.Context, name string) ([]domain.InspectRecord, error) {
	return r.inspect(ctx, "container", name)
}

// InspectImage runs "docker image inspect".
func (r *CLIRuntime) InspectImage(ctx context.Context, name string) ([]domain.InspectRecord, error) {
	return r.inspect(ctx, "image", name)
}

// Build runs "docker build" on contextDir.
func (r *CLIRuntime) Build(ctx context.Context, image, contextDir string) error {
	if err := r.mustSucceed(ctx, "build", "-t", image, contextDir); err != nil {
		return err
	}
	log.Info("Image built", "image", image)
	return nil
}

// RunArgs returns the docker run arguments for spec.
func RunArgs(spec domain.RunSpec) []string {
	args := []string{"run", "-d", "--name", spec.Container, "-p", spec.HostPort + ":" + spec.Port}
	for _, m := range spec.Mounts {
		args = append(args, "-v", m.Source+":"+m.Target)
	}
	return append(args, spec.Image)
}

// Run runs "docker run -d" for spec.
func (r *CLIRuntime) Run(ctx context.Context, spec domain.RunSpec) error {
	if err := r.mustSucceed(ctx, RunArgs(spec)...); err != nil {
		return err
	}
	log.Info("Container running", "container", spec.Container, "image", spec.Image)
	return nil
}

// Start runs "docker start".
func (r *CLIRuntime) Start(ctx context.Context, name string) error {
	if err := r.mustSucceed(ctx, "start", name); err != nil {
		return err
	}
	log.Info("Container started", "container", name)
	return nil
}

// Stop runs "docker stop".
func (r *CLIRuntime) Stop(ctx context.Context, name string) error {
	if err := r.mustSucceed(ctx, "stop", "-t", strconv.Itoa(r.stopTimeout), name); err != nil {
		return err
	}
	log.Info("Container stopped", "container", name)
	return nil
}

// Remove runs "docker rm -f".
func (r *CLIRuntime) Remove(ctx context.Context, name string) error {
	if err := r.mustSucceed(ctx, "rm", "-f", name); err != nil {
		return err
	}
	log.Info("Container removed", "container", name)
	return nil
}

// Exec runs "docker exec". The exit code of cmd is reported in the result,
// not as an error.
func (r *CLIRuntime) Exec(ctx context.Context, name string, cmd []string) (*out.ExecResult, error) {
	if len(cmd) == 0 {
		return nil, fmt.Errorf("exec command is empty")
	}

	res, err := r.run(ctx, append([]string{"exec", name}, cmd...)...)
	if err != nil {
		return nil, err
	}

	return &out.ExecResult{
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
	}, nil
}
