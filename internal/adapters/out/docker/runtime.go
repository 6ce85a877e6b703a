package docker

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
	"github.com/tidwall/gjson"

	"github.com/bnema/nginx-host-manager/internal/boundaries/out"
	"github.com/bnema/nginx-host-manager/internal/domain"
)

// DefaultStopTimeout is the grace period, in seconds, given to nginx on stop.
const DefaultStopTimeout = 10

// APIRuntime implements the ProxyRuntime interface using the Docker API.
type APIRuntime struct {
	client      *client.Client
	stopTimeout int
}

var _ out.ProxyRuntime = (*APIRuntime)(nil)

// NewAPIRuntime creates a runtime talking to the daemon configured in the
// environment (DOCKER_HOST and friends).
func NewAPIRuntime(stopTimeout int) (*APIRuntime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return NewAPIRuntimeWithClient(cli, stopTimeout), nil
}

// NewAPIRuntimeWithClient creates a runtime with a custom client (for testing).
func NewAPIRuntimeWithClient(cli *client.Client, stopTimeout int) *APIRuntime {
	if stopTimeout <= 0 {
		stopTimeout = DefaultStopTimeout
	}
	return &APIRuntime{
		client:      cli,
		stopTimeout: stopTimeout,
	}
}

// Close releases the underlying client.
func (r *APIRuntime) Close() error {
	return r.client.Close()
}

// InspectContainer returns the raw inspection of a container, or nothing if
// the container does not exist.
func (r *APIRuntime) InspectContainer(ctx context.Context, name string) ([]domain.InspectRecord, error) {
	_, raw, err := r.client.ContainerInspectWithRaw(ctx, name, false)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to inspect container %s: %w", name, err)
	}

	return ParseInspectRecords(raw), nil
}

// InspectImage returns the raw inspection of an image, or nothing if the
// image does not exist.
func (r *APIRuntime) InspectImage(ctx context.Context, name string) ([]domain.InspectRecord, error) {
	_, raw, err := r.client.ImageInspectWithRaw(ctx, name)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to inspect image %s: %w", name, err)
	}

	return ParseInspectRecords(raw), nil
}

// Build builds the image from the Dockerfile at the root of contextDir.
func (r *APIRuntime) Build(ctx context.Context, image, contextDir string) error {
	buildCtx, err := archive.TarWithOptions(contextDir, &archive.TarOptions{})
	if err != nil {
		return fmt.Errorf("failed to create build context from %s: %w", contextDir, err)
	}
	defer buildCtx.Close()

	resp, err := r.client.ImageBuild(ctx, buildCtx, build.ImageBuildOptions{
		Tags:       []string{image},
		Dockerfile: "Dockerfile",
		Remove:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to build image %s: %w", image, err)
	}
	defer resp.Body.Close()

	if err := readBuildOutput(resp.Body); err != nil {
		return fmt.Errorf("failed to build image %s: %w", image, err)
	}

	log.Info("Image built", "image", image)
	return nil
}

// readBuildOutput drains the JSON message stream of a build, logging its
// progress, and returns the first error the daemon reports.
func readBuildOutput(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if !gjson.ValidBytes(line) {
			continue
		}
		msg := gjson.ParseBytes(line)

		if e := msg.Get("errorDetail.message"); e.Exists() {
			return errors.New(e.String())
		}
		if e := msg.Get("error"); e.Exists() {
			return errors.New(e.String())
		}
		if s := strings.TrimSpace(msg.Get("stream").String()); s != "" {
			log.Debug(s, "source", "build")
		}
	}

	return scanner.Err()
}

// Run creates and starts a fresh container publishing spec.Port on
// spec.HostPort on all interfaces.
func (r *APIRuntime) Run(ctx context.Context, spec domain.RunSpec) error {
	port := nat.Port(spec.Port + "/tcp")

	binds := make([]string, 0, len(spec.Mounts))
	for _, m := range spec.Mounts {
		binds = append(binds, m.Source+":"+m.Target)
	}

	config := &container.Config{
		Image:        spec.Image,
		ExposedPorts: nat.PortSet{port: struct{}{}},
	}
	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			port: []nat.PortBinding{{HostIP: "", HostPort: spec.HostPort}},
		},
		Binds: binds,
	}

	resp, err := r.client.ContainerCreate(ctx, config, hostConfig, nil, nil, spec.Container)
	if err != nil {
		return fmt.Errorf("failed to create container %s: %w", spec.Container, err)
	}
	log.Debug("Container created", "container", spec.Container, "id", resp.ID)

	if err := r.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", spec.Container, err)
	}

	log.Info("Container running", "container", spec.Container, "image", spec.Image)
	return nil
}

// Start starts an existing container.
func (r *APIRuntime) Start(ctx context.Context, name string) error {
	if err := r.client.ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", name, err)
	}

	log.Info("Container started", "container", name)
	return nil
}

// Stop stops a container.
func (r *APIRuntime) Stop(ctx context.Context, name string) error {
	timeout := r.stopTimeout
	if err := r.client.ContainerStop(ctx, name, container.StopOptions{Timeout: &timeout}); err != nil {
		return fmt.Errorf("failed to stop container %s: %w", name, err)
	}

	log.Info("Container stopped", "container", name)
	return nil
}

// Remove force-removes a container.
func (r *APIRuntime) Remove(ctx context.Context, name string) error {
	if err := r.client.ContainerRemove(ctx, name, container.RemoveOptions{Force: true}); err != nil {
		return fmt.Errorf("failed to remove container %s: %w", name, err)
	}

	log.Info("Container removed", "container", name)
	return nil
}

// Exec runs cmd inside a running container and waits for it to finish.
func (r *APIRuntime) Exec(ctx context.Context, name string, cmd []string) (*out.ExecResult, error) {
	if len(cmd) == 0 {
		return nil, errors.New("exec command is empty")
	}

	created, err := r.client.ContainerExecCreate(ctx, name, container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exec in %s: %w", name, err)
	}

	attach, err := r.client.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to attach exec in %s: %w", name, err)
	}
	defer attach.Close()

	stdout, stderr, err := parseExecOutput(attach.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read exec output in %s: %w", name, err)
	}

	inspect, err := r.client.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect exec in %s: %w", name, err)
	}

	log.Debug("Exec finished", "container", name, "cmd", strings.Join(cmd, " "), "exit_code", inspect.ExitCode)
	return &out.ExecResult{
		ExitCode: inspect.ExitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}, nil
}

// parseExecOutput splits a multiplexed exec stream into stdout and stderr.
func parseExecOutput(r io.Reader) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, r); err != nil {
		return nil, nil, err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}
