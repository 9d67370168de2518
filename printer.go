// printer.go — canonical formatting of parsed scripts back to source text.
//
// The formatter is deterministic and round-trip safe: re-parsing its output
// yields a structurally identical tree, and formatting is idempotent
// (format(parse(format(x))) == format(x)). Keywords come out upper-case,
// one statement per line, single spaces between tokens, arguments joined
// with ", ". Used by the fmt subcommand and by the round-trip tests.
package dronescript

import "strings"

// FormatScript renders the whole script, one statement per line with a
// trailing newline, or "" for an empty script.
func FormatScript(s *Script) string {
	if s == nil || len(s.Stmts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, st := range s.Stmts {
		b.WriteString(FormatStmt(st))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatStmt renders a single statement without a line terminator.
func FormatStmt(st Stmt) string {
	switch s := st.(type) {
	case *ConditionalStmt:
		return "IF " + formatCond(s.Cond) + " THEN " + formatCommand(s.Cmd)
	case *FallbackStmt:
		return "ELSE " + formatCommand(s.Cmd)
	case *CommandStmt:
		return formatCommand(s.Cmd)
	}
	return ""
}

func formatCond(c Cond) string {
	switch cc := c.(type) {
	case *QueryCond:
		return cc.Name
	case *CompareCond:
		return cc.Name + " " + cc.Op.String() + " " + formatArg(cc.RHS)
	case *LogicalCond:
		return formatCond(cc.Left) + " " + cc.Op.String() + " " + formatCond(cc.Right)
	}
	return ""
}

func formatCommand(cmd *Command) string {
	if len(cmd.Args) == 0 {
		return cmd.Name
	}
	parts := make([]string, len(cmd.Args))
	for i, a := range cmd.Args {
		parts[i] = formatArg(a)
	}
	return cmd.Name + "(" + strings.Join(parts, ", ") + ")"
}

func formatArg(a Arg) string {
	switch v := a.(type) {
	case *IdentArg:
		return v.Name
	case *NumberArg:
		return v.Raw
	}
	return ""
}
