package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidValue indicates a setting holds a value outside its domain.
	ErrInvalidValue = errors.New("invalid configuration value")

	// ErrUnsupportedFormat indicates the file extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a setting that failed validation.
// It matches ErrInvalidValue with errors.Is.
type ValidationError struct {
	// Path is the dotted setting path, e.g. "viewport.margin_top".
	Path string
	// Value is the rejected value.
	Value any
	// Message describes the constraint.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Path, e.Value, e.Message)
}

// Unwrap returns ErrInvalidValue.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}
