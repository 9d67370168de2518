// evaluator.go — the tree-walking evaluator and its public surface.
//
// OVERVIEW
// --------
// A tick is one call to Evaluator.Run: the statement sequence is walked
// strictly in source order against a read-only view of world state, and at
// most one action is selected. Execution stops at the first statement whose
// command produces an action (first-match-wins); reaching the end with no
// action is a valid, non-error outcome. Looping over ticks is the host's
// responsibility, not the evaluator's.
//
// Command semantics are supplied by a registry keyed by lower-cased name, so
// any identifier is syntactically a command and new behavior is a one-line
// RegisterCommand call. An unrecognized command name is NOT an error at any
// stage: it is logged as a warning, traced, and treated as a non-acting no-op.
//
// The evaluator retains no mutable state across invocations; one Evaluator
// and one parsed Script may serve many concurrent ticks as long as each tick
// gets its own WorldState.
package dronescript

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// epsilon is the absolute tolerance applied to == and != so representable
// float drift does not produce false negatives. Ordering operators are strict.
const epsilon = 0.001

// ErrKind classifies evaluation errors.
type ErrKind int

const (
	// ErrUnknownVariable: a comparison referenced a numeric name the world
	// state does not recognize.
	ErrUnknownVariable ErrKind = iota
	// ErrUnknownQuery: a condition referenced a boolean name the world state
	// does not recognize.
	ErrUnknownQuery
	// ErrCommand: a registered command implementation failed.
	ErrCommand
)

// EvalError is the only error that can interrupt a tick mid-evaluation.
// It carries the offending statement's line so hosts can separate script bugs
// from names the environment never registered.
type EvalError struct {
	Line int
	Kind ErrKind
	Name string
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("EVALUATION ERROR at line %d: %s", e.Line, e.Msg)
}

// Result is the outcome of one tick.
type Result struct {
	// Trace is the ordered, append-only log of what the tick tried and why:
	// every condition tested, every short-circuit taken, every command tried,
	// and the final outcome. Intended for debugging/UI, not for branching.
	Trace []string
	// Executed is the one command that produced an action, or nil.
	Executed *Command
	// Err is set when the tick was interrupted by an evaluation error.
	Err *EvalError
}

func (r *Result) tracef(format string, a ...any) {
	r.Trace = append(r.Trace, fmt.Sprintf(format, a...))
}

// CallCtx is what a command implementation gets to work with: the world
// state, the argument list, and the tick's trace.
type CallCtx struct {
	State WorldState
	Args  []Arg
	res   *Result
}

// Tracef appends one entry to the tick's trace.
func (c *CallCtx) Tracef(format string, a ...any) { c.res.tracef(format, a...) }

// ArgName returns argument i as an identifier-ish string: the identifier's
// name, or the raw spelling for a number. ok is false when i is out of range.
func (c *CallCtx) ArgName(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	switch a := c.Args[i].(type) {
	case *IdentArg:
		return a.Name, true
	case *NumberArg:
		return a.Raw, true
	}
	return "", false
}

// ArgNumber returns argument i as a number; ok is false when i is out of
// range or the argument is not numeric.
func (c *CallCtx) ArgNumber(i int) (float64, bool) {
	if i < 0 || i >= len(c.Args) {
		return 0, false
	}
	n, ok := c.Args[i].(*NumberArg)
	if !ok {
		return 0, false
	}
	return n.Value, true
}

// CommandImpl is a command behavior. It reports whether it produced an action
// this tick; a non-acting command lets evaluation continue, which is what
// makes ELSE fallbacks after a mine-with-nothing-nearby reachable. A non-nil
// error interrupts the tick.
type CommandImpl func(ctx *CallCtx) (acted bool, err error)

type commandEntry struct {
	impl CommandImpl
	doc  string
}

// Evaluator owns the command registry and the warning channel. Construct with
// NewEvaluator; the zero value has no commands registered.
type Evaluator struct {
	commands map[string]commandEntry
	log      *logrus.Logger
}

// NewEvaluator returns an evaluator with the standard drone command set
// registered and warnings going to the logrus standard logger.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		commands: map[string]commandEntry{},
		log:      logrus.StandardLogger(),
	}
	registerStandardCommands(ev)
	return ev
}

// SetLogger redirects the evaluator's warning/debug output.
func (ev *Evaluator) SetLogger(log *logrus.Logger) {
	if log != nil {
		ev.log = log
	}
}

// RegisterCommand installs (or replaces) a command behavior under name.
// Lookup is case-insensitive; registration is the whole extension path —
// the grammar and parser never change when the vocabulary grows.
func (ev *Evaluator) RegisterCommand(name string, impl CommandImpl) {
	ev.commands[strings.ToLower(name)] = commandEntry{impl: impl}
}

func (ev *Evaluator) registerWithDoc(name, doc string, impl CommandImpl) {
	ev.commands[strings.ToLower(name)] = commandEntry{impl: impl, doc: doc}
}

// KnownCommands returns the sorted registered command names.
func (ev *Evaluator) KnownCommands() []string {
	names := make([]string, 0, len(ev.commands))
	for n := range ev.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CommandDoc returns the doc string registered for name, if any.
func (ev *Evaluator) CommandDoc(name string) (string, bool) {
	e, ok := ev.commands[strings.ToLower(name)]
	return e.doc, ok
}

// Run evaluates one tick of script against state. The returned Result is
// never nil and always carries the trace accumulated up to the stop point.
func (ev *Evaluator) Run(script *Script, state WorldState) *Result {
	res := &Result{}
	for _, st := range script.Stmts {
		switch s := st.(type) {
		case *ConditionalStmt:
			v, eerr := ev.evalCond(s.Cond, state, res, s.Line)
			if eerr != nil {
				res.Err = eerr
				res.tracef("line %d: evaluation aborted: %s", s.Line, eerr.Msg)
				return res
			}
			res.tracef("line %d: IF %s -> %v", s.Line, formatCond(s.Cond), v)
			if !v {
				continue
			}
			if ev.execute(s.Cmd, s.Line, state, res) {
				return res
			}
		case *FallbackStmt:
			res.tracef("line %d: ELSE reached", s.Line)
			if ev.execute(s.Cmd, s.Line, state, res) {
				return res
			}
		case *CommandStmt:
			if ev.execute(s.Cmd, s.Line, state, res) {
				return res
			}
		}
		if res.Err != nil {
			return res
		}
	}
	res.tracef("no command executed this tick")
	return res
}

// execute dispatches cmd by (lower-cased) name and reports whether the tick
// should stop. Unknown names warn and no-op; they never fail the tick.
func (ev *Evaluator) execute(cmd *Command, line int, state WorldState, res *Result) bool {
	key := strings.ToLower(cmd.Name)
	entry, ok := ev.commands[key]
	if !ok {
		hint := ""
		if s := SuggestName(key, ev.KnownCommands()); s != "" {
			hint = fmt.Sprintf(" (did you mean %q?)", s)
		}
		ev.log.WithFields(logrus.Fields{
			"command": cmd.Name,
			"line":    line,
		}).Warnf("unknown command%s, treating as no-op", hint)
		res.tracef("line %d: unknown command %q%s (no-op)", line, cmd.Name, hint)
		return false
	}
	acted, err := entry.impl(&CallCtx{State: state, Args: cmd.Args, res: res})
	if err != nil {
		res.Err = &EvalError{Line: line, Kind: ErrCommand, Name: cmd.Name, Msg: err.Error()}
		res.tracef("line %d: command %s failed: %s", line, formatCommand(cmd), err)
		return false
	}
	if acted {
		res.Executed = cmd
		res.tracef("line %d: executed %s", line, formatCommand(cmd))
		return true
	}
	res.tracef("line %d: %s produced no action, continuing", line, formatCommand(cmd))
	return false
}

// evalCond evaluates a condition with observable short-circuiting: a skipped
// operand performs none of its lookups.
func (ev *Evaluator) evalCond(c Cond, state WorldState, res *Result, line int) (bool, *EvalError) {
	switch cc := c.(type) {
	case *QueryCond:
		v, ok := state.GetBool(cc.Name)
		if !ok {
			return false, &EvalError{
				Line: line, Kind: ErrUnknownQuery, Name: cc.Name,
				Msg: fmt.Sprintf("unknown query %q", cc.Name),
			}
		}
		res.tracef("line %d: query %s = %v", line, cc.Name, v)
		return v, nil

	case *CompareCond:
		lv, ok := state.GetNumber(cc.Name)
		if !ok {
			return false, &EvalError{
				Line: line, Kind: ErrUnknownVariable, Name: cc.Name,
				Msg: fmt.Sprintf("unknown variable %q", cc.Name),
			}
		}
		var rv float64
		switch rhs := cc.RHS.(type) {
		case *NumberArg:
			rv = rhs.Value
		case *IdentArg:
			rv, ok = state.GetNumber(rhs.Name)
			if !ok {
				return false, &EvalError{
					Line: line, Kind: ErrUnknownVariable, Name: rhs.Name,
					Msg: fmt.Sprintf("unknown variable %q", rhs.Name),
				}
			}
		}
		v := compare(lv, cc.Op, rv)
		res.tracef("line %d: %s(%g) %s %s -> %v", line, cc.Name, lv, cc.Op, formatArg(cc.RHS), v)
		return v, nil

	case *LogicalCond:
		left, eerr := ev.evalCond(cc.Left, state, res, line)
		if eerr != nil {
			return false, eerr
		}
		if cc.Op == OpAnd && !left {
			res.tracef("line %d: AND short-circuit, right operand skipped", line)
			return false, nil
		}
		if cc.Op == OpOr && left {
			res.tracef("line %d: OR short-circuit, right operand skipped", line)
			return true, nil
		}
		return ev.evalCond(cc.Right, state, res, line)
	}
	return false, nil
}

func compare(l float64, op CompareOp, r float64) bool {
	switch op {
	case OpLess:
		return l < r
	case OpLessEq:
		return l <= r
	case OpGreater:
		return l > r
	case OpGreaterEq:
		return l >= r
	case OpEq:
		return math.Abs(l-r) < epsilon
	case OpNeq:
		return math.Abs(l-r) >= epsilon
	}
	return false
}
