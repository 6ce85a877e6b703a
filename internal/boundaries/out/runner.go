package out

import "context"

// CommandRunner runs an external program to completion.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*CommandResult, error)
}

// CommandResult is the captured output of a finished command. A non-zero
// exit code is not an error at this level.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
