// Command dronescript is the console harness around the DroneScript core:
// it loads script text and world-state fixtures, runs ticks, and prints
// traces and diagnostics. Everything here is host-side plumbing; the library
// package owns the actual pipeline.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	dronescript "github.com/efeemreipek/DroneScriptParser"
)

const historyFile = ".dronescript_history"

var log = logrus.New()

var (
	flagState   string
	flagTicks   int
	flagVerbose bool
	flagMaxStmt int
)

func main() {
	root := &cobra.Command{
		Use:          "dronescript",
		Short:        "DroneScript front end and evaluator",
		Version:      fmt.Sprintf("%s (built %s)", dronescript.Version, dronescript.BuildDate),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if flagVerbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run <script.ds>",
		Short: "Evaluate a script against a world-state fixture",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdRun,
	}
	runCmd.Flags().StringVar(&flagState, "state", "", "world-state fixture (YAML)")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 1, "number of ticks to evaluate")

	checkCmd := &cobra.Command{
		Use:   "check <script.ds>",
		Short: "Parse a script and print all diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdCheck,
	}
	checkCmd.Flags().IntVar(&flagMaxStmt, "max-statements", 0, "reject scripts longer than this (0 = no limit)")

	fmtCmd := &cobra.Command{
		Use:   "fmt <script.ds>",
		Short: "Print the canonical form of a script",
		Args:  cobra.ExactArgs(1),
		RunE:  cmdFmt,
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive session against a mutable world state",
		Args:  cobra.NoArgs,
		RunE:  cmdRepl,
	}

	root.AddCommand(runCmd, checkCmd, fmtCmd, replCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScript(path string) (string, *dronescript.Script, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("cannot read %s: %v", path, err)
		return "", nil, false
	}
	src := string(data)
	script, lerrs, perrs := dronescript.ParseSource(src)
	for _, e := range lerrs {
		fmt.Fprintln(os.Stderr, dronescript.WrapErrorWithName(e, path, src))
	}
	for _, e := range perrs {
		fmt.Fprintln(os.Stderr, dronescript.WrapErrorWithName(e, path, src))
	}
	return src, script, len(lerrs) == 0 && len(perrs) == 0
}

func loadState() (*dronescript.SimState, error) {
	if flagState == "" {
		return dronescript.NewSimState(), nil
	}
	fx, err := dronescript.LoadFixture(flagState)
	if err != nil {
		return nil, err
	}
	return fx.State(), nil
}

// ---- run -------------------------------------------------------------------

func cmdRun(_ *cobra.Command, args []string) error {
	src, script, clean := loadScript(args[0])
	if !clean {
		log.Warn("script has diagnostics, evaluating the recovered statements")
	}

	state, err := loadState()
	if err != nil {
		return err
	}
	log.WithField("drone", state.ID).Debugf("loaded state from %q", flagState)

	ev := dronescript.NewEvaluator()
	ev.SetLogger(log)

	for tick := 1; tick <= flagTicks; tick++ {
		res := ev.Run(script, state)
		fmt.Printf("--- tick %d ---\n", tick)
		for _, line := range res.Trace {
			fmt.Println("  " + line)
		}
		if res.Err != nil {
			fmt.Fprintln(os.Stderr, dronescript.WrapErrorWithName(res.Err, args[0], src))
			return fmt.Errorf("tick %d failed", tick)
		}
		if res.Executed != nil {
			fmt.Printf("=> %s\n", dronescript.FormatStmt(&dronescript.CommandStmt{Cmd: res.Executed}))
		} else {
			fmt.Println("=> no action")
		}
	}
	return nil
}

// ---- check -----------------------------------------------------------------

func cmdCheck(_ *cobra.Command, args []string) error {
	_, script, clean := loadScript(args[0])
	if flagMaxStmt > 0 {
		if err := dronescript.ValidateScript(script, dronescript.Limits{MaxStatements: flagMaxStmt}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			clean = false
		}
	}

	// Unknown command names are not errors (the vocabulary is open), but a
	// near-miss of a standard command is worth a note.
	known := dronescript.NewEvaluator().KnownCommands()
	for _, st := range script.Stmts {
		var cmd *dronescript.Command
		var line int
		switch s := st.(type) {
		case *dronescript.ConditionalStmt:
			cmd, line = s.Cmd, s.Line
		case *dronescript.FallbackStmt:
			cmd, line = s.Cmd, s.Line
		case *dronescript.CommandStmt:
			cmd, line = s.Cmd, s.Line
		}
		name := strings.ToLower(cmd.Name)
		for _, k := range known {
			if k == name {
				name = ""
				break
			}
		}
		if name == "" {
			continue
		}
		if s := dronescript.SuggestName(name, known); s != "" {
			fmt.Printf("%s:%d: note: %q is not a standard command (did you mean %q?)\n", args[0], line, cmd.Name, s)
		}
	}

	if !clean {
		return fmt.Errorf("%s has diagnostics", args[0])
	}
	fmt.Printf("%s: %d statement(s), no diagnostics\n", args[0], len(script.Stmts))
	return nil
}

// ---- fmt -------------------------------------------------------------------

func cmdFmt(_ *cobra.Command, args []string) error {
	_, script, clean := loadScript(args[0])
	if !clean {
		return fmt.Errorf("cannot format %s: fix the diagnostics first", args[0])
	}
	fmt.Print(dronescript.FormatScript(script))
	return nil
}

// ---- repl ------------------------------------------------------------------

func cmdRepl(_ *cobra.Command, _ []string) error {
	fmt.Printf("DroneScript %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", dronescript.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	ev := dronescript.NewEvaluator()
	ev.SetLogger(log)
	state := dronescript.NewSimState()

	for {
		line, err := ln.Prompt("==> ")
		if err != nil {
			fmt.Println()
			return nil
		}
		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(code, ":") {
			if quit := replCommand(code, state); quit {
				return nil
			}
			continue
		}

		script, lerrs, perrs := dronescript.ParseSource(code)
		bad := false
		for _, e := range lerrs {
			fmt.Fprintln(os.Stderr, dronescript.WrapErrorWithSource(e, code))
			bad = true
		}
		for _, e := range perrs {
			fmt.Fprintln(os.Stderr, dronescript.WrapErrorWithSource(e, code))
			bad = true
		}
		if bad {
			continue
		}

		res := ev.Run(script, state)
		for _, t := range res.Trace {
			fmt.Println("  " + t)
		}
		if res.Err != nil {
			fmt.Fprintln(os.Stderr, dronescript.WrapErrorWithSource(res.Err, code))
		}
	}
}

// replCommand handles ":" directives; returns true to exit the session.
func replCommand(code string, state *dronescript.SimState) bool {
	fields := strings.Fields(code)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":set":
		if len(fields) != 3 {
			fmt.Println("usage: :set <name> <number|true|false>")
			return false
		}
		name, val := fields[1], fields[2]
		switch val {
		case "true", "false":
			state.SetBool(name, val == "true")
		default:
			n, err := strconv.ParseFloat(val, 64)
			if err != nil {
				fmt.Printf("not a number or bool: %q\n", val)
				return false
			}
			state.SetNumber(name, n)
		}
	case ":state":
		fmt.Printf("drone %s, cargo %g, integrity %g\n", state.ID, state.Cargo(), state.Integrity())
	case ":commands":
		ev := dronescript.NewEvaluator()
		for _, name := range ev.KnownCommands() {
			doc, _ := ev.CommandDoc(name)
			if i := strings.IndexByte(doc, '\n'); i >= 0 {
				doc = doc[:i]
			}
			fmt.Printf("  %-14s %s\n", name, doc)
		}
	case ":help":
		fmt.Print(`REPL commands:
  :set <name> <value>   Register a query (true/false) or variable (number)
  :state                Show drone id, cargo and integrity
  :commands             List the standard command set
  :quit                 Exit
`)
	default:
		fmt.Println("unknown command. Type :help.")
	}
	return false
}
