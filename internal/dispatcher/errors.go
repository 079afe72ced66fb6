package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownCommand indicates no handler is registered for a command.
	ErrUnknownCommand = errors.New("dispatcher: unknown command")

	// ErrMissingArgument indicates a command was executed without an
	// argument it requires.
	ErrMissingArgument = errors.New("dispatcher: missing argument")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)
