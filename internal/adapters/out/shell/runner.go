// Package shell implements the command runner port with os/exec.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/nginx-host-manager/internal/boundaries/out"
)

// waitDelay bounds how long output is drained after the process is killed.
const waitDelay = 2 * time.Second

// Runner runs external programs and captures their output.
type Runner struct {
	timeout time.Duration
}

var _ out.CommandRunner = (*Runner)(nil)

// NewRunner creates a runner. A zero timeout lets commands run until the
// context is done.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{timeout: timeout}
}

// Run executes name with args and waits for it to exit. A non-zero exit is
// reported through the result; err is set only when the program could not be
// run at all or was cut short by the context.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*out.CommandResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s interrupted: %w", name, ctxErr)
	}

	result := &out.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("failed to execute %s: %w", name, err)
	}

	log.Debug("Command finished", "cmd", name, "exit_code", result.ExitCode)
	return result, nil
}
