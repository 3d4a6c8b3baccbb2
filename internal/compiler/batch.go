package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/syntax"
)

// FileResult is the outcome of converting one file of a batch.
type FileResult struct {
	Path    string
	Offset  int   // triple count before the file
	Triples int   // triples the file contributed (after any rollback)
	Links   int   // links the file contributed (after any rollback)
	Err     error // syntax or depth error; nil on success

	// Warnings are the failures inside nested content of this file. They
	// do not make the file fail.
	Warnings []error
}

// Report summarizes a batch conversion.
type Report struct {
	Files    []FileResult
	Failed   int
	Warnings int
}

// ConvertFiles converts paths in order into the context. Syntax and depth
// errors, and failures inside nested content, are written to diag with a
// caret under the failing column and the batch continues. Read failures
// and any other error abort it. ctx is checked between files.
func (c *Context) ConvertFiles(ctx context.Context, paths []string, diag io.Writer) (*Report, error) {
	report := &Report{Files: make([]FileResult, 0, len(paths))}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return report, fmt.Errorf("failed to read %s: %w", path, err)
		}

		c.logger.Info("parsing file", "path", path)
		offset, links, warnings := len(c.triples), len(c.links), len(c.warnings)

		err = c.ConvertFile(path, src)
		res := FileResult{
			Path:    path,
			Offset:  offset,
			Triples: len(c.triples) - offset,
			Links:   len(c.links) - links,
		}
		if n := len(c.warnings) - warnings; n > 0 {
			res.Warnings = append([]error(nil), c.warnings[warnings:]...)
			report.Warnings += n
			for _, w := range res.Warnings {
				writeDiagnostic(diag, path, w)
			}
		}
		if err != nil {
			if !IsFileError(err) {
				c.logger.Error("conversion aborted", "path", path, "error", err)
				return report, fmt.Errorf("failed to convert %s: %w", path, err)
			}
			res.Err = err
			report.Failed++
			c.logger.Warn("skipping file", "path", path, "error", err)
			writeDiagnostic(diag, path, err)
		}
		report.Files = append(report.Files, res)
	}
	return report, nil
}

// Run converts a whole batch into a fresh context.
func Run(ctx context.Context, paths []string, diag io.Writer, opts ...Option) (*Context, *Report, error) {
	c := New(opts...)
	report, err := c.ConvertFiles(ctx, paths, diag)
	return c, report, err
}

func writeDiagnostic(w io.Writer, path string, err error) {
	if w == nil {
		return
	}
	var se *syntax.SyntaxError
	if errors.As(err, &se) {
		fmt.Fprintf(w, "%s: syntax error at line %d:\n%s\n%s\n", path, se.Pos.Line, se.Caret(), err)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", path, err)
}
