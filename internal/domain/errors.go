package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Host errors
	ErrHostNotFound     = errors.New("host not found")
	ErrHostConflict     = errors.New("host config already exists")
	ErrInvalidHost      = errors.New("invalid host")
	ErrTemplateNotFound = errors.New("host template not found")

	// Runtime errors
	ErrRuntimeFailure   = errors.New("container runtime failure")
	ErrImageBuildFailed = errors.New("failed to build proxy image")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ErrorKind groups domain errors by how the caller should react to them.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindNotFound is recoverable: report it and carry on.
	KindNotFound
	// KindConflict is recoverable: the operation was refused.
	KindConflict
	// KindInvalid means the caller passed unusable input.
	KindInvalid
	// KindRuntime aborts the current high-level action.
	KindRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindRuntime:
		return "runtime failure"
	default:
		return "unknown"
	}
}

// KindOf classifies err against the domain sentinels.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrHostNotFound), errors.Is(err, ErrTemplateNotFound):
		return KindNotFound
	case errors.Is(err, ErrHostConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidHost), errors.Is(err, ErrInvalidConfig):
		return KindInvalid
	case errors.Is(err, ErrRuntimeFailure), errors.Is(err, ErrImageBuildFailed):
		return KindRuntime
	default:
		return KindUnknown
	}
}

// IsRecoverable reports whether err is a precondition failure the operator
// can act on without anything having been changed.
func IsRecoverable(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindConflict, KindInvalid:
		return true
	default:
		return false
	}
}
