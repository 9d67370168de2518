// ast.go — the DroneScript syntax tree.
//
// Statements, conditions and command arguments are closed variant families:
// sealed interfaces with a private marker method per variant, so a missing
// case in a type switch is caught where the families are consumed. The tree
// is immutable once built by the parser and safe for concurrent reads; one
// parsed Script may back many simultaneous evaluations.
package dronescript

// Script is an ordered sequence of statements. Order is semantically
// load-bearing: evaluation is first-match-wins over this sequence.
type Script struct {
	Stmts []Stmt
}

// Stmt is one script line that is neither blank nor comment-only.
// Variants: *ConditionalStmt, *FallbackStmt, *CommandStmt.
type Stmt interface {
	stmt()
	// StmtLine is the originating 1-based source line, kept for diagnostics.
	StmtLine() int
}

// ConditionalStmt is "IF condition THEN command".
type ConditionalStmt struct {
	Cond Cond
	Cmd  *Command
	Line int
}

// FallbackStmt is "ELSE command": runs only when control falls through to it.
type FallbackStmt struct {
	Cmd  *Command
	Line int
}

// CommandStmt is a bare command with no guarding condition.
type CommandStmt struct {
	Cmd  *Command
	Line int
}

func (*ConditionalStmt) stmt() {}
func (*FallbackStmt) stmt()    {}
func (*CommandStmt) stmt()     {}

func (s *ConditionalStmt) StmtLine() int { return s.Line }
func (s *FallbackStmt) StmtLine() int    { return s.Line }
func (s *CommandStmt) StmtLine() int     { return s.Line }

// Cond is a condition. Variants: *CompareCond, *QueryCond, *LogicalCond.
type Cond interface {
	cond()
}

// CompareOp is a numeric comparison operator.
type CompareOp int

const (
	OpLess CompareOp = iota
	OpLessEq
	OpGreater
	OpGreaterEq
	OpEq
	OpNeq
)

func (op CompareOp) String() string {
	switch op {
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	}
	return "?"
}

// LogicalOp joins two conditions. The language defines no precedence between
// AND and OR: the parser folds a chain flat and left-associative, so
// "A AND B OR C" is (A AND B) OR C.
type LogicalOp int

const (
	OpAnd LogicalOp = iota
	OpOr
)

func (op LogicalOp) String() string {
	if op == OpAnd {
		return "AND"
	}
	return "OR"
}

// CompareCond compares a named numeric variable against a literal number or
// another named variable.
type CompareCond struct {
	Name string
	Op   CompareOp
	RHS  Arg
}

// QueryCond is a single boolean-valued name looked up in the world state.
type QueryCond struct {
	Name string
}

// LogicalCond combines two conditions; evaluation short-circuits.
type LogicalCond struct {
	Left  Cond
	Op    LogicalOp
	Right Cond
}

func (*CompareCond) cond() {}
func (*QueryCond) cond()   {}
func (*LogicalCond) cond() {}

// Arg is a command argument or a comparison right-hand side.
// Variants: *IdentArg, *NumberArg. Arguments are always leaves; the grammar
// has no nested calls or expressions.
type Arg interface {
	arg()
}

// IdentArg is an identifier-valued leaf.
type IdentArg struct {
	Name string
}

// NumberArg is a number-valued leaf. Raw preserves the source spelling so the
// formatter can round-trip "15" without re-deciding its precision.
type NumberArg struct {
	Value float64
	Raw   string
}

func (*IdentArg) arg()  {}
func (*NumberArg) arg() {}

// Command is a name plus an ordered argument list. The name is tokenized
// case-sensitively; the evaluator normalizes it for registry lookup.
type Command struct {
	Name string
	Args []Arg
}
