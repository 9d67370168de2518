// errors_test.go
package dronescript

import (
	"errors"
	"strings"
	"testing"
)

func Test_WrapErrorWithSource_ParseError_Snippet(t *testing.T) {
	src := "mine_nearest(Uranium)\nIF battery < 15 goto_charger\nELSE mine_nearest(any)"
	_, _, perrs := ParseSource(src)
	if len(perrs) != 1 {
		t.Fatalf("want 1 parse error, got %v", perrs)
	}

	out := WrapErrorWithSource(perrs[0], src).Error()
	for _, want := range []string{
		"PARSE ERROR at 2:",
		"   1 | mine_nearest(Uranium)",
		"   2 | IF battery < 15 goto_charger",
		"   3 | ELSE mine_nearest(any)",
		"^",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("snippet missing %q:\n%s", want, out)
		}
	}
}

func Test_WrapErrorWithSource_CaretColumn(t *testing.T) {
	src := "battery = 15"
	_, lerrs := Tokenize(src)
	if len(lerrs) != 1 {
		t.Fatalf("want 1 lex error, got %v", lerrs)
	}
	out := WrapErrorWithSource(lerrs[0], src).Error()

	// '=' is at 1-based column 9, so the caret line pads 8 spaces.
	caretLine := "     | " + strings.Repeat(" ", 8) + "^"
	if !strings.Contains(out, caretLine) {
		t.Fatalf("caret misplaced:\n%s", out)
	}
	if !strings.Contains(out, "LEXICAL ERROR at 1:9") {
		t.Fatalf("wrong header:\n%s", out)
	}
}

func Test_WrapErrorWithName_IncludesLabel(t *testing.T) {
	src := "IF battery < 15 goto_charger"
	_, _, perrs := ParseSource(src)
	out := WrapErrorWithName(perrs[0], "patrol.ds", src).Error()
	if !strings.Contains(out, "PARSE ERROR in patrol.ds at ") {
		t.Fatalf("label missing:\n%s", out)
	}
}

func Test_WrapErrorWithSource_EvalError(t *testing.T) {
	src := "IF battery < 15 THEN goto_charger"
	script := parseOK(t, src)
	res := NewEvaluator().Run(script, NewSimState())
	if res.Err == nil {
		t.Fatalf("want evaluation error for unknown variable")
	}
	out := WrapErrorWithSource(res.Err, src).Error()
	if !strings.Contains(out, "EVALUATION ERROR at 1:1") || !strings.Contains(out, `unknown variable "battery"`) {
		t.Fatalf("bad eval snippet:\n%s", out)
	}
}

func Test_WrapErrorWithSource_ForeignErrorPassesThrough(t *testing.T) {
	err := errors.New("something else")
	if got := WrapErrorWithSource(err, "wait"); got != err {
		t.Fatalf("foreign errors must be returned unchanged, got %v", got)
	}
}

func Test_WrapErrorWithSource_OutOfRangeClamped(t *testing.T) {
	e := &ParseError{Line: 99, Col: 99, Msg: "synthetic"}
	out := WrapErrorWithSource(e, "wait").Error()
	if !strings.Contains(out, "   1 | wait") {
		t.Fatalf("out-of-range position should clamp, got:\n%s", out)
	}
}
