// lexer.go — scanner for DroneScript source.
//
// The lexer converts raw script text into a flat token sequence in one
// left-to-right pass with two characters of lookahead. '#' comments and runs
// of spaces/tabs are discarded; every line break is collapsed into exactly one
// SEPARATOR token. Lexical errors never abort the scan: they are recorded,
// the offending character is skipped, and scanning resumes, so tokenization
// always completes and always ends with exactly one EOF token.
//
// Every token records the 1-based line and 1-based starting column of its
// first character; all downstream diagnostics rely on those coordinates.
package dronescript

import (
	"fmt"
	"strings"
)

// LexError is a recoverable lexical diagnostic with a 1-based position.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Tokenize scans the entire source and returns the token sequence (EOF
// included) together with any lexical errors encountered along the way.
func Tokenize(src string) ([]Token, []*LexError) {
	l := &lexer{src: src, line: 1, col: 1}
	l.scan()
	return l.tokens, l.errs
}

type lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 1-based column of src[cur]
	tokens []Token
	errs   []*LexError

	// position of the current token's first character
	tokStartLine int
	tokStartCol  int
}

func (l *lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch, true
}

func (l *lexer) addToken(tt TokenType) {
	l.tokens = append(l.tokens, Token{
		Type:   tt,
		Lexeme: l.src[l.start:l.cur],
		Line:   l.tokStartLine,
		Col:    l.tokStartCol,
	})
	l.start = l.cur
}

func (l *lexer) err(msg string) {
	l.errs = append(l.errs, &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg})
	l.start = l.cur
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// skipBlanks discards spaces, tabs and carriage returns. Newlines are not
// skipped here; they become SEPARATOR tokens in scan.
func (l *lexer) skipBlanks() {
	for {
		b, ok := l.peek()
		if !ok || (b != ' ' && b != '\t' && b != '\r') {
			return
		}
		l.advance()
		l.start = l.cur
	}
}

// ignoreUntilNewline eats comment text up to (not including) '\n' or EOF.
func (l *lexer) ignoreUntilNewline() {
	for {
		b, ok := l.peek()
		if !ok || b == '\n' {
			l.start = l.cur
			return
		}
		l.advance()
	}
}

// scanIdentifier consumes [A-Za-z0-9_]* after the initial alpha and emits
// either a keyword token (case-insensitive match) or IDENT.
func (l *lexer) scanIdentifier() {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	if tt, ok := keywords[strings.ToUpper(lex)]; ok {
		l.addToken(tt)
		return
	}
	l.addToken(IDENT)
}

// scanNumber consumes digits with an optional '.' digits fraction.
// No exponent form and no sign; a trailing '.' without digits is left for the
// next scan round (and will surface as an unexpected character).
func (l *lexer) scanNumber() {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	if b, ok := l.peek(); ok && b == '.' {
		if b2, ok2 := l.peekN(1); ok2 && isDigit(b2) {
			l.advance() // consume '.'
			for {
				b, ok := l.peek()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		}
	}
	l.addToken(NUMBER)
}

// twoChar emits `two` when the next byte is '=', otherwise `one`.
func (l *lexer) twoChar(one, two TokenType) {
	if b, ok := l.peek(); ok && b == '=' {
		l.advance()
		l.addToken(two)
		return
	}
	l.addToken(one)
}

func (l *lexer) scan() {
	for {
		l.skipBlanks()
		l.tokStartLine = l.line
		l.tokStartCol = l.col
		l.start = l.cur

		if l.isAtEnd() {
			l.addToken(EOF)
			return
		}

		ch, _ := l.advance()
		switch ch {
		case '\n':
			l.addToken(SEPARATOR)
		case '#':
			l.ignoreUntilNewline()
		case '(':
			l.addToken(LPAREN)
		case ')':
			l.addToken(RPAREN)
		case ',':
			l.addToken(COMMA)
		case '<':
			l.twoChar(LESS, LESS_EQ)
		case '>':
			l.twoChar(GREATER, GREATER_EQ)
		case '=':
			if b, ok := l.peek(); ok && b == '=' {
				l.advance()
				l.addToken(EQ)
			} else {
				l.err("unexpected character '=' (did you mean '=='?)")
			}
		case '!':
			if b, ok := l.peek(); ok && b == '=' {
				l.advance()
				l.addToken(NEQ)
			} else {
				l.err("unexpected character '!' (did you mean '!='?)")
			}
		default:
			if isDigit(ch) {
				l.cur = l.start // rewind; scanNumber consumes from the first digit
				l.col = l.tokStartCol
				l.scanNumber()
				break
			}
			if isAlpha(ch) {
				l.cur = l.start
				l.col = l.tokStartCol
				l.scanIdentifier()
				break
			}
			l.err(fmt.Sprintf("unexpected character %q", ch))
		}
	}
}
