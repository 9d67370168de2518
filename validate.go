// validate.go — optional post-parse policy checks.
//
// Limits that are policy rather than grammar (how long may a script be) are
// applied over the returned Script instead of being baked into recursion.
package dronescript

import "fmt"

// Limits configures ValidateScript. Zero values disable a check.
type Limits struct {
	// MaxStatements caps the statement count per script.
	MaxStatements int
}

// ValidateScript applies lim to an already-parsed script. The error, if any,
// points at the first statement past the cap.
func ValidateScript(s *Script, lim Limits) error {
	if lim.MaxStatements > 0 && len(s.Stmts) > lim.MaxStatements {
		over := s.Stmts[lim.MaxStatements]
		return &ParseError{
			Line: over.StmtLine(),
			Col:  1,
			Msg:  fmt.Sprintf("script has %d statements, limit is %d", len(s.Stmts), lim.MaxStatements),
		}
	}
	return nil
}
