// Package apperrors declares the user-facing error kinds the core surfaces
// to the dispatch layer: ParseError, InvalidArgument, ViewNotFound, and
// NoViewsFound. An edge-insertion-rejected kind is not declared here
// because this implementation's graph substrate never rejects an edge
// (no cycle constraint), so it can never occur.
package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError wraps a SQL parser failure on a single view's definition.
type ParseError struct {
	View string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.View, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError wraps a parser failure, attributing it to the named view.
func NewParseError(view string, err error) *ParseError {
	return &ParseError{View: view, Err: errors.WithStack(err)}
}

// InvalidArgumentError names the offending argument and value.
type InvalidArgumentError struct {
	Argument string
	Value    string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %q", e.Argument, e.Value)
}

// NewInvalidArgument builds an InvalidArgumentError.
func NewInvalidArgument(argument, value string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Value: value}
}

// ViewNotFoundError reports a focus view absent from the graph.
type ViewNotFoundError struct {
	View string
}

func (e *ViewNotFoundError) Error() string {
	return fmt.Sprintf("view not found: %s", e.View)
}

// NewViewNotFound builds a ViewNotFoundError.
func NewViewNotFound(view string) *ViewNotFoundError {
	return &ViewNotFoundError{View: view}
}

// NoViewsFoundError reports a zero-row warehouse load.
type NoViewsFoundError struct {
	Catalog string
	Schema  string
}

func (e *NoViewsFoundError) Error() string {
	return fmt.Sprintf("no views found in %s.%s", e.Catalog, e.Schema)
}

// NewNoViewsFound builds a NoViewsFoundError.
func NewNoViewsFound(catalog, schema string) *NoViewsFoundError {
	return &NoViewsFoundError{Catalog: catalog, Schema: schema}
}

// Diagnostic renders err as a one-line, host-style diagnostic: a leading
// failure symbol followed by the cause.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	return "✗ " + errors.Cause(err).Error()
}
