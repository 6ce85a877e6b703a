// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, filesystem, shell).
package out

import (
	"context"

	"github.com/bnema/nginx-host-manager/internal/domain"
)

// ProxyRuntime defines the container runtime operations the proxy controller
// needs. Implementations exist for the Docker Engine API and the docker CLI.
type ProxyRuntime interface {
	// Inspection. An unknown name yields an empty slice, not an error.
	InspectContainer(ctx context.Context, name string) ([]domain.InspectRecord, error)
	InspectImage(ctx context.Context, name string) ([]domain.InspectRecord, error)

	// Image and container lifecycle
	Build(ctx context.Context, image, contextDir string) error
	Run(ctx context.Context, spec domain.RunSpec) error
	Start(ctx context.Context, name string) error
	Stop(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error

	// In-container operations
	Exec(ctx context.Context, name string, cmd []string) (*ExecResult, error)
}

// ExecResult holds the result of executing a command in a container.
type ExecResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
