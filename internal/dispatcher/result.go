package dispatcher

import "fmt"

// ResultStatus indicates the outcome of a command.
type ResultStatus uint8

const (
	// StatusOK indicates the command changed the view or document.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the command had no effect.
	StatusNoOp
	// StatusError indicates the command failed.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of executing a command.
type Result struct {
	Status ResultStatus

	// Error is set when Status is StatusError.
	Error error

	// Message is an optional status message for display.
	Message string
}

// IsOK returns true if the command took effect.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the command failed.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp creates a no-operation result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Changed returns Success when changed is true and NoOp otherwise.
func Changed(changed bool) Result {
	if changed {
		return Success()
	}
	return NoOp()
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Error(fmt.Errorf(format, args...))
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}
