package compiler

import (
	"errors"
	"fmt"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/syntax"
)

// ErrNotIdentifier is returned when a node that denotes no entity (a
// sentence, an internal group) is used where an Identifier is required.
var ErrNotIdentifier = errors.New("node does not denote an identifier")

// UnknownNodeError reports a node kind the handler table does not cover.
// It means the front end and the compiler disagree and is always fatal.
type UnknownNodeError struct {
	Node syntax.Node
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	if e.Node == nil {
		return "unknown syntax node <nil>"
	}
	return fmt.Sprintf("%s: unknown syntax node %T", e.Node.Pos(), e.Node)
}

// IsUnknownNodeError returns true if the error is an UnknownNodeError.
// Uses errors.As to handle wrapped errors.
func IsUnknownNodeError(err error) bool {
	var ue *UnknownNodeError
	return errors.As(err, &ue)
}

// ContentError is a syntax or depth failure inside nested content. The
// content block still becomes a link and the enclosing file carries on, so
// a ContentError is reported as a warning and never returned.
type ContentError struct {
	Pos syntax.Pos // start of the content literal
	Err error
}

// Error implements the error interface.
func (e *ContentError) Error() string {
	return fmt.Sprintf("content at %s: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying error.
func (e *ContentError) Unwrap() error {
	return e.Err
}

// IsFileError reports whether err only invalidates the file being
// converted. Syntax errors and depth overruns are file errors; everything
// else is fatal to the run.
func IsFileError(err error) bool {
	if err == nil {
		return false
	}
	return syntax.IsSyntaxError(err) || IsDepthExceededError(err)
}
