package syntax

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// SyntaxError is a front-end failure on malformed input.
type SyntaxError struct {
	Pos     Pos
	Message string
	// Line is the full source line the error points into.
	Line string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Caret renders the offending source line with a caret under the column.
func (e *SyntaxError) Caret() string {
	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	var pad strings.Builder
	// Keep tabs so the caret lines up in terminals.
	i := 1
	for _, r := range e.Line {
		if i >= col {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		pad.WriteByte(' ')
	}
	return e.Line + "\n" + pad.String() + "^"
}

// IsSyntaxError reports whether err is or wraps a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// newSyntaxError builds an error at p for src, which starts at base. On
// the first line of src the text is indented to base.Column so the caret
// still lines up.
func newSyntaxError(src string, base, p Pos, format string, args ...any) *SyntaxError {
	line := lineAt(src, p.Line-base.Line+1)
	if p.Line == base.Line && base.Column > 1 {
		line = strings.Repeat(" ", base.Column-1) + line
	}
	return &SyntaxError{
		Pos:     p,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}
}

// SourceLine returns the 1-based line n of src without its newline.
func SourceLine(src []byte, n int) string {
	return lineAt(string(src), n)
}

// lineAt returns the 1-based line n of src without its newline.
func lineAt(src string, n int) string {
	for i := 1; i < n; i++ {
		j := strings.IndexByte(src, '\n')
		if j < 0 {
			return ""
		}
		src = src[j+1:]
	}
	if j := strings.IndexByte(src, '\n'); j >= 0 {
		src = src[:j]
	}
	if !utf8.ValidString(src) {
		src = strings.ToValidUTF8(src, "�")
	}
	return strings.TrimRight(src, "\r")
}
