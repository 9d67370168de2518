// token.go — lexical categories and the token record.
//
// Pure data contract consumed by the lexer and parser. Tokens are created once
// during lexing and never mutated afterwards.
package dronescript

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	SEPARATOR    // end of statement (one per line break)

	// Literals & identifiers
	IDENT
	NUMBER

	// Keywords (matched case-insensitively by the lexer)
	IF
	THEN
	ELSE
	AND
	OR

	// Comparison operators
	LESS
	LESS_EQ
	GREATER
	GREATER_EQ
	EQ
	NEQ

	// Punctuation
	LPAREN
	RPAREN
	COMMA
)

// Token is a lexical token with its exact source slice and 1-based position.
// Col is the starting column of the token's first character.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

// keywords maps the canonical upper-case spelling to its token type.
// The lexer upper-cases candidate identifiers before the lookup, which is what
// makes keyword matching case-insensitive.
var keywords = map[string]TokenType{
	"IF":   IF,
	"THEN": THEN,
	"ELSE": ELSE,
	"AND":  AND,
	"OR":   OR,
}

// tokenTypeNames is used by diagnostics and tests.
var tokenTypeNames = map[TokenType]string{
	EOF:        "end of input",
	SEPARATOR:  "end of line",
	IDENT:      "identifier",
	NUMBER:     "number",
	IF:         "IF",
	THEN:       "THEN",
	ELSE:       "ELSE",
	AND:        "AND",
	OR:         "OR",
	LESS:       "'<'",
	LESS_EQ:    "'<='",
	GREATER:    "'>'",
	GREATER_EQ: "'>='",
	EQ:         "'=='",
	NEQ:        "'!='",
	LPAREN:     "'('",
	RPAREN:     "')'",
	COMMA:      "','",
}

// String renders a human-readable name for the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeNames[tt]; ok {
		return s
	}
	return "unknown token"
}

// isComparator reports whether tt is one of the six comparison operators.
func isComparator(tt TokenType) bool {
	switch tt {
	case LESS, LESS_EQ, GREATER, GREATER_EQ, EQ, NEQ:
		return true
	default:
		return false
	}
}
