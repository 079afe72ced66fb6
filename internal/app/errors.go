// Package app wires the cursor core to a terminal: it owns the document,
// the view, the dispatcher and the backend, and runs the event loop.
package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates Run was called before SetBackend.
	ErrNoBackend = errors.New("no backend set")

	// ErrNoFilename indicates a save of a document that was not opened
	// from a file.
	ErrNoFilename = errors.New("document has no filename")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
