// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// Turns the three diagnostic channels (*LexError, *ParseError, *EvalError)
// into readable snippets with a caret pointing at the offending column:
//
//	PARSE ERROR at 3:15: expected THEN after condition, got identifier
//
//	   2 | mine_nearest(Uranium)
//	   3 | IF battery < 15 goto_charger
//	     |               ^
//	   4 | ELSE mine_nearest(any)
//
// The snippet shows up to one line of context before and after the error.
// Any other error type passes through unchanged. The renderer is independent
// of the evaluator and usable anywhere lex/parse/eval errors are surfaced.
package dronescript

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src when err is one of the three DroneScript diagnostic types, and err
// unchanged otherwise.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source label (typically the
// script file name) included in the header.
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", prettySnippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettySnippet(src, "PARSE ERROR", srcName, e.Line, e.Col, e.Msg))
	case *EvalError:
		// Evaluation errors are tied to a statement line, not a column.
		return fmt.Errorf("%s", prettySnippet(src, "EVALUATION ERROR", srcName, e.Line, 1, e.Msg))
	default:
		return err
	}
}

// prettySnippet builds the header plus caret snippet. Coordinates are 1-based
// and clamped to the source bounds so out-of-range positions cannot crash
// rendering.
func prettySnippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
