// printer_test.go
package dronescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Printer_RoundTrip_StructurallyIdentical(t *testing.T) {
	sources := []string{
		"IF battery < 15 THEN goto_charger",
		"IF a AND b OR c THEN wait",
		"IF cargo >= capacity THEN goto_base",
		"ELSE mine_nearest(any)",
		"haul(12.5, Uranium)",
		"deposit",
		"IF battery == 80 THEN wait\nexplore\nELSE repair",
	}
	for _, src := range sources {
		first := parseOK(t, src)
		reparsed := parseOK(t, FormatScript(first))
		if diff := cmp.Diff(first, reparsed); diff != "" {
			t.Fatalf("round-trip changed the tree for %q (-first +reparsed):\n%s", src, diff)
		}
	}
}

func Test_Printer_CanonicalizesCaseAndSpacing(t *testing.T) {
	script := parseOK(t, "if battery<15 then goto_charger")
	want := "IF battery < 15 THEN goto_charger"
	if got := FormatStmt(script.Stmts[0]); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func Test_Printer_Idempotent(t *testing.T) {
	src := "if a and b or c then mine_nearest( Uranium ,2 )\nelse wait"
	once := FormatScript(parseOK(t, src))
	twice := FormatScript(parseOK(t, once))
	if once != twice {
		t.Fatalf("formatting is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func Test_Printer_PreservesNumberSpelling(t *testing.T) {
	script := parseOK(t, "haul(12.50)")
	if got := FormatStmt(script.Stmts[0]); got != "haul(12.50)" {
		t.Fatalf("number spelling should round-trip, got %q", got)
	}
}

func Test_Printer_EmptyScript(t *testing.T) {
	if got := FormatScript(&Script{}); got != "" {
		t.Fatalf("empty script should format to empty string, got %q", got)
	}
}
