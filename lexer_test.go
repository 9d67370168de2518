// lexer_test.go
package dronescript

import (
	"reflect"
	"strings"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, errs := Tokenize(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Example_ConditionalLine(t *testing.T) {
	src := `IF battery < 15 THEN goto_charger`
	wantTypes(t, src, []TokenType{
		IF, IDENT, LESS, NUMBER, THEN, IDENT,
	})
}

func Test_Lexer_Keywords_CaseInsensitive(t *testing.T) {
	src := `if Battery < 15 then goto_charger
eLsE wait`
	got := wantTypes(t, src, []TokenType{
		IF, IDENT, LESS, NUMBER, THEN, IDENT,
		SEPARATOR,
		ELSE, IDENT,
	})
	// Any other spelling stays an identifier, with the exact source slice.
	if got[1].Lexeme != "Battery" {
		t.Fatalf("identifier lexeme should be preserved, got %q", got[1].Lexeme)
	}
}

func Test_Lexer_Operators_GreedyTwoChar(t *testing.T) {
	src := `a <= b >= c == d != e < f > g`
	wantTypes(t, src, []TokenType{
		IDENT, LESS_EQ, IDENT, GREATER_EQ, IDENT, EQ, IDENT, NEQ,
		IDENT, LESS, IDENT, GREATER, IDENT,
	})
}

func Test_Lexer_LoneEquals_IsError_AndScanContinues(t *testing.T) {
	ts, errs := Tokenize(`battery = 15`)
	if len(errs) != 1 {
		t.Fatalf("want 1 lex error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Msg, "==") {
		t.Fatalf("error should suggest '==', got %q", errs[0].Msg)
	}
	// Scanning resumed: battery and 15 both tokenized, plus EOF.
	want := []TokenType{IDENT, NUMBER}
	if got := typesWithoutEOF(ts); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v after recovery, got %v", want, got)
	}
}

func Test_Lexer_LoneBang_IsError(t *testing.T) {
	_, errs := Tokenize(`!cargo_full`)
	if len(errs) != 1 || !strings.Contains(errs[0].Msg, "!=") {
		t.Fatalf("lone '!' should suggest '!=', got %v", errs)
	}
}

func Test_Lexer_UnexpectedCharacter_RecordedAndSkipped(t *testing.T) {
	ts, errs := Tokenize("wait $ wait")
	if len(errs) != 1 || !strings.Contains(errs[0].Msg, "unexpected character") {
		t.Fatalf("want one unexpected-character error, got %v", errs)
	}
	wantT := []TokenType{IDENT, IDENT}
	if got := typesWithoutEOF(ts); !reflect.DeepEqual(got, wantT) {
		t.Fatalf("scan should skip the bad character: %v", got)
	}
}

func Test_Lexer_LeadingMinus_IsNotANumber(t *testing.T) {
	// The language has no unary minus; '-' lexes as an unexpected character.
	_, errs := Tokenize(`IF battery < -5 THEN wait`)
	if len(errs) != 1 {
		t.Fatalf("want 1 lex error for '-', got %v", errs)
	}
}

func Test_Lexer_Comments_ProduceNoTokens(t *testing.T) {
	src := `# full-line comment
wait # trailing comment`
	wantTypes(t, src, []TokenType{SEPARATOR, IDENT})
}

func Test_Lexer_Separator_OnePerLineBreak(t *testing.T) {
	src := "wait   \nwait\t\n"
	wantTypes(t, src, []TokenType{IDENT, SEPARATOR, IDENT, SEPARATOR})
}

func Test_Lexer_Numbers(t *testing.T) {
	got := wantTypes(t, `15 3.5 0.001`, []TokenType{NUMBER, NUMBER, NUMBER})
	if got[1].Lexeme != "3.5" {
		t.Fatalf("number lexeme should be the exact slice, got %q", got[1].Lexeme)
	}
}

func Test_Lexer_Number_NoExponentForm(t *testing.T) {
	// "1e3" is a number followed by an identifier, not an exponent literal.
	wantTypes(t, `1e3`, []TokenType{NUMBER, IDENT})
}

func Test_Lexer_Positions_OneBased(t *testing.T) {
	src := "wait\nIF battery < 15 THEN wait"
	ts := toks(t, src)

	if ts[0].Line != 1 || ts[0].Col != 1 {
		t.Fatalf("first token at %d:%d, want 1:1", ts[0].Line, ts[0].Col)
	}
	// ts: wait SEP IF battery < 15 THEN wait EOF
	ifTok := ts[2]
	if ifTok.Type != IF || ifTok.Line != 2 || ifTok.Col != 1 {
		t.Fatalf("IF at %d:%d, want 2:1", ifTok.Line, ifTok.Col)
	}
	battery := ts[3]
	if battery.Lexeme != "battery" || battery.Col != 4 {
		t.Fatalf("battery should start at column 4, got %d", battery.Col)
	}
}

func Test_Lexer_AlwaysEmitsExactlyOneEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "# only a comment", "wait", "$$$"} {
		ts, _ := Tokenize(src)
		if len(ts) == 0 || ts[len(ts)-1].Type != EOF {
			t.Fatalf("source %q: token stream must end with EOF: %v", src, ts)
		}
		for _, tk := range ts[:len(ts)-1] {
			if tk.Type == EOF {
				t.Fatalf("source %q: more than one EOF token", src)
			}
		}
	}
}

func Test_Lexer_CommandWithArgs(t *testing.T) {
	wantTypes(t, `mine_nearest(Uranium, 2)`, []TokenType{
		IDENT, LPAREN, IDENT, COMMA, NUMBER, RPAREN,
	})
}
