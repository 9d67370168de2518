// parser.go — recursive-descent parser for DroneScript.
//
// OVERVIEW
// --------
// The parser consumes the token sequence produced by lexer.go and builds the
// typed statement tree defined in ast.go. It is LL(1): one token of lookahead
// decides every production.
//
// Grammar (informal):
//
//	script      := separator* (statement separator*)* EOF
//	statement   := conditional | fallback | command-stmt
//	conditional := IF condition THEN command
//	fallback    := ELSE command
//	command-stmt:= command                    -- starts with a bare identifier
//	condition   := term ((AND|OR) term)*      -- flat, left-associative
//	term        := identifier (comparator (identifier|number))?
//	command     := identifier ( "(" (arg ("," arg)*)? ")" )?
//	arg         := identifier | number
//
// The AND/OR chain is deliberately precedence-flat: "A AND B OR C" folds to
// (A AND B) OR C. That is the language semantics, not a shortcut.
//
// ERROR RECOVERY
// --------------
// Parse always returns a usable (possibly empty) Script; the surrounding tool
// shows partial results, so this is a hard requirement. On a failure inside a
// statement, the single recovery point is synchronize(): discard tokens up to
// and including the next SEPARATOR, or up to (not including) the next IF/ELSE
// keyword, whichever comes first, then resume statement parsing. One malformed
// line therefore reports one error in the common case.
//
// Unknown command/query/variable names are never parse errors: any identifier
// is syntactically valid, so the command vocabulary can grow without touching
// the grammar. Only the evaluator can reject a name, at evaluation time.
package dronescript

import (
	"fmt"
	"strconv"
)

// ParseError is a syntax diagnostic with a 1-based position, taken from the
// token being examined when the failure was detected.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Parse consumes a token sequence (as produced by Tokenize) and returns the
// statement sequence plus any syntax errors. The returned Script is never nil.
func Parse(toks []Token) (*Script, []*ParseError) {
	p := &parser{toks: toks}
	return p.script(), p.errs
}

// ParseSource tokenizes and parses src in one call.
func ParseSource(src string) (*Script, []*LexError, []*ParseError) {
	toks, lerrs := Tokenize(src)
	script, perrs := Parse(toks)
	return script, lerrs, perrs
}

type parser struct {
	toks []Token
	i    int
	errs []*ParseError
}

// ─────────────────────────── token basics & helpers ─────────────────────────

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(t TokenType, msg string) (Token, *ParseError) {
	if p.match(t) {
		return p.prev(), nil
	}
	g := p.peek()
	return Token{}, &ParseError{Line: g.Line, Col: g.Col, Msg: fmt.Sprintf("%s, got %s", msg, g.Type)}
}

func (p *parser) skipSeparators() {
	for p.match(SEPARATOR) {
	}
}

// synchronize is the single recovery point. It discards tokens up to and
// including the next SEPARATOR, or stops just before the next IF/ELSE keyword.
func (p *parser) synchronize() {
	for !p.atEnd() {
		switch p.peek().Type {
		case SEPARATOR:
			p.i++
			return
		case IF, ELSE:
			return
		}
		p.i++
	}
}

// ─────────────────────────────── productions ────────────────────────────────

func (p *parser) script() *Script {
	s := &Script{}
	for {
		p.skipSeparators()
		if p.atEnd() {
			return s
		}
		st, err := p.statement()
		if err != nil {
			p.errs = append(p.errs, err)
			p.synchronize()
			continue
		}
		// A statement must fill its whole line.
		if !p.atEnd() && p.peek().Type != SEPARATOR {
			g := p.peek()
			p.errs = append(p.errs, &ParseError{
				Line: g.Line, Col: g.Col,
				Msg: fmt.Sprintf("unexpected %s after statement", g.Type),
			})
			p.synchronize()
			continue
		}
		s.Stmts = append(s.Stmts, st)
	}
}

func (p *parser) statement() (Stmt, *ParseError) {
	switch {
	case p.match(IF):
		line := p.prev().Line
		cond, err := p.condition()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(THEN, "expected THEN after condition"); err != nil {
			return nil, err
		}
		cmd, err := p.command()
		if err != nil {
			return nil, err
		}
		return &ConditionalStmt{Cond: cond, Cmd: cmd, Line: line}, nil

	case p.match(ELSE):
		line := p.prev().Line
		cmd, err := p.command()
		if err != nil {
			return nil, err
		}
		return &FallbackStmt{Cmd: cmd, Line: line}, nil

	case p.peek().Type == IDENT:
		line := p.peek().Line
		cmd, err := p.command()
		if err != nil {
			return nil, err
		}
		return &CommandStmt{Cmd: cmd, Line: line}, nil

	default:
		g := p.peek()
		return nil, &ParseError{Line: g.Line, Col: g.Col, Msg: fmt.Sprintf("expected a statement, got %s", g.Type)}
	}
}

// condition folds the AND/OR chain flat and left-to-right.
func (p *parser) condition() (Cond, *ParseError) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(AND, OR) {
		op := OpAnd
		if p.prev().Type == OR {
			op = OpOr
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &LogicalCond{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *parser) term() (Cond, *ParseError) {
	name, err := p.need(IDENT, "expected a query or variable name")
	if err != nil {
		return nil, err
	}
	if !isComparator(p.peek().Type) {
		return &QueryCond{Name: name.Lexeme}, nil
	}
	opTok := p.peek()
	p.i++
	rhs, err := p.operand("expected a number or variable name after " + opTok.Type.String())
	if err != nil {
		return nil, err
	}
	return &CompareCond{Name: name.Lexeme, Op: compareOpOf(opTok.Type), RHS: rhs}, nil
}

func compareOpOf(tt TokenType) CompareOp {
	switch tt {
	case LESS:
		return OpLess
	case LESS_EQ:
		return OpLessEq
	case GREATER:
		return OpGreater
	case GREATER_EQ:
		return OpGreaterEq
	case EQ:
		return OpEq
	default:
		return OpNeq
	}
}

func (p *parser) command() (*Command, *ParseError) {
	name, err := p.need(IDENT, "expected a command name")
	if err != nil {
		return nil, err
	}
	cmd := &Command{Name: name.Lexeme}
	if !p.match(LPAREN) {
		return cmd, nil
	}
	if p.match(RPAREN) {
		return cmd, nil
	}
	for {
		arg, err := p.operand("expected an argument (identifier or number)")
		if err != nil {
			return nil, err
		}
		cmd.Args = append(cmd.Args, arg)
		if p.match(COMMA) {
			continue
		}
		break
	}
	if _, err := p.need(RPAREN, "expected ')' to close the argument list"); err != nil {
		return nil, err
	}
	return cmd, nil
}

// operand parses an identifier or number leaf. Arguments are never nested
// expressions; anything else is a syntax error.
func (p *parser) operand(msg string) (Arg, *ParseError) {
	switch {
	case p.match(IDENT):
		return &IdentArg{Name: p.prev().Lexeme}, nil
	case p.match(NUMBER):
		t := p.prev()
		return &NumberArg{Value: parseNumber(t.Lexeme), Raw: t.Lexeme}, nil
	default:
		g := p.peek()
		return nil, &ParseError{Line: g.Line, Col: g.Col, Msg: fmt.Sprintf("%s, got %s", msg, g.Type)}
	}
}

// parseNumber converts a NUMBER lexeme. The lexer guarantees the shape
// (digits with an optional fraction), so conversion cannot fail.
func parseNumber(lex string) float64 {
	v, _ := strconv.ParseFloat(lex, 64)
	return v
}
