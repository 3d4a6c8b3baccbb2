package compiler

import (
	"errors"
	"fmt"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/syntax"
)

// DefaultMaxDepth is the default recursion limit of a conversion.
// Recursion depth follows source nesting, including nested content.
const DefaultMaxDepth = 256

// DepthGuard tracks the current recursion depth of the tree-walk and
// enforces a limit, bounding stack usage on pathological inputs.
type DepthGuard struct {
	maxDepth int
	current  int
}

// NewDepthGuard creates a guard with the given limit.
func NewDepthGuard(maxDepth int) *DepthGuard {
	return &DepthGuard{maxDepth: maxDepth}
}

// Enter records one level of descent into n. It fails without descending
// when the limit would be exceeded; callers Leave only after a successful
// Enter.
func (g *DepthGuard) Enter(n syntax.Node) error {
	if g.current >= g.maxDepth {
		var pos syntax.Pos
		if n != nil {
			pos = n.Pos()
		}
		return &DepthExceededError{Pos: pos, Limit: g.maxDepth}
	}
	g.current++
	return nil
}

// Leave undoes one Enter.
func (g *DepthGuard) Leave() {
	if g.current > 0 {
		g.current--
	}
}

// Current returns the current depth.
func (g *DepthGuard) Current() int {
	return g.current
}

// MaxDepth returns the depth limit.
func (g *DepthGuard) MaxDepth() int {
	return g.maxDepth
}

// DepthExceededError is returned when conversion nests deeper than the
// guard allows.
type DepthExceededError struct {
	Pos   syntax.Pos // node at which the limit was hit
	Limit int
}

// Error implements the error interface.
func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("%s: conversion exceeded max depth %d", e.Pos, e.Limit)
}

// IsDepthExceededError returns true if the error is a DepthExceededError.
// Uses errors.As to handle wrapped errors.
func IsDepthExceededError(err error) bool {
	var de *DepthExceededError
	return errors.As(err, &de)
}
