package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/bawdo/proplogic/managers"
	"github.com/bawdo/proplogic/nodes"
	"github.com/bawdo/proplogic/plugins"
	"github.com/bawdo/proplogic/truthtable"
	"github.com/bawdo/proplogic/visitors"
	"github.com/ergochat/readline"
)

var (
	errNoExpression = errors.New("no expression defined (type an expression or 'expr <expression>' first)")
	errNotConnected = errors.New("not connected (use 'connect <dsn>' first)")
)

// parallelVariables is the variable count from which truth tables are
// evaluated on several goroutines.
const parallelVariables = 12

const historyLimit = 20

// sampleExpressions are evaluated by the examples command.
var sampleExpressions = []string{
	"a or (a and b)",
	"(not a and not b) or (not c or not b)",
	"~(a v b)",
	"(a ^ b) ^ c",
	"(a || b) && (!d || c)",
	"(p && q && r) || (p && q && !r) || (p && !q && !r)",
	"(a*b*c) + (a*-b*-d) + (a*b*-c) + (a*b*d)",
	"(a+b+c)*(a+-b+-d)*(a+b+-c)*(a+b+d)",
}

// Session holds the REPL state: the current expression, output settings,
// enabled plugins and the optional database connection.
type Session struct {
	current     *managers.ExpressionManager // nil until an expression is entered
	source      string                      // text the current expression was parsed from
	engine      string
	dialect     nodes.Dialect // output dialect when hasDialect is set
	hasDialect  bool
	allColumns  bool
	plugins     pluginRegistry     // enabled plugins
	configurers []pluginConfigurer // all known plugins
	commands    []commandEntry     // command registry (sorted by prefix length desc)
	conn        *dbConn            // nil when disconnected
	lastDSN     string             // remembers the previous DSN for reconnect
	rl          *readline.Instance
	out         io.Writer // destination for REPL output (default os.Stdout)
}

// NewSession creates a session storing runs in the given SQL engine.
func NewSession(engine string, rl *readline.Instance) *Session {
	s := &Session{
		rl:  rl,
		out: os.Stdout,
	}
	s.configurers = []pluginConfigurer{
		{name: "expand", configure: configureExpand},
		{name: "nnf", configure: configureNNF},
	}
	s.setEngine(engine)
	s.initCommands()
	return s
}

// pluginNames returns the names of all known plugins (for tab completion).
func (s *Session) pluginNames() []string {
	names := make([]string, len(s.configurers))
	for i, c := range s.configurers {
		names[i] = c.name
	}
	return names
}

func (s *Session) setEngine(engine string) {
	if !isValidEngine(engine) {
		engine = "sqlite"
	}
	s.engine = engine
}

// setDialect forces the output dialect of this and later expressions.
func (s *Session) setDialect(d nodes.Dialect) {
	s.dialect, s.hasDialect = d, true
	if s.current != nil {
		s.current.WithDialect(d)
	}
}

// Execute parses and runs a single REPL command. A line that matches no
// command is evaluated as an expression.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(line[len(cmd.prefix):])
			}
		} else {
			if lower == cmd.prefix {
				return cmd.handler("")
			}
		}
	}

	err := s.cmdExpr(line)
	if err == nil {
		return nil
	}
	if fields := strings.Fields(line); len(fields) == 1 && len(fields[0]) > 1 && isWord(fields[0]) {
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", fields[0])
	}
	return err
}

// --- Command handlers ---

// cmdExpr parses args, makes it the current expression and prints its
// summary.
func (s *Session) cmdExpr(args string) error {
	text := strings.TrimSpace(args)
	if text == "" {
		return errors.New("usage: expr <expression>")
	}
	m, err := s.build(text)
	if err != nil {
		return fmt.Errorf("expr: %w", err)
	}
	s.current, s.source = m, text
	return s.printSummary()
}

func (s *Session) printSummary() error {
	rendered, err := s.current.Render(nil)
	if err != nil {
		return err
	}
	simplified, err := s.current.Simplify()
	if err != nil {
		return err
	}
	t, err := s.truthTable()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  Expression: %s\n", rendered)
	_, _ = fmt.Fprintf(s.out, "  Dialect:    %s\n", s.current.Dialect())
	_, _ = fmt.Fprintf(s.out, "  Simplified: %s\n", simplified)
	_, _ = fmt.Fprint(s.out, formatTruthTable(t))
	return nil
}

func (s *Session) truthTable() (*truthtable.Table, error) {
	if s.current == nil {
		return nil, errNoExpression
	}
	return s.current.TruthTable(s.tableOptions()...)
}

func (s *Session) tableOptions() []truthtable.Option {
	var opts []truthtable.Option
	if s.allColumns {
		opts = append(opts, truthtable.WithAllSubexpressions())
	}
	if s.current != nil && len(s.current.Variables()) >= parallelVariables {
		opts = append(opts, truthtable.WithConcurrency(runtime.GOMAXPROCS(0)))
	}
	return opts
}

func (s *Session) cmdTable() error {
	t, err := s.truthTable()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(s.out, formatTruthTable(t))
	return nil
}

func (s *Session) cmdSimplify() error {
	if s.current == nil {
		return errNoExpression
	}
	simplified, err := s.current.Simplify()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s\n", simplified)
	return nil
}

// cmdPrimes lists the prime implicants found by the minimizer, marking
// the essential ones.
func (s *Session) cmdPrimes() error {
	if s.current == nil {
		return errNoExpression
	}
	r, err := s.current.Minimize()
	if err != nil {
		return err
	}
	if len(r.Primes) == 0 {
		constant := managers.AlwaysFalse
		if r.String() == "1" {
			constant = managers.AlwaysTrue
		}
		_, _ = fmt.Fprintf(s.out, "  No prime implicants (%s)\n", constant)
		return nil
	}

	essential := make(map[string]bool, len(r.Essentials))
	for _, e := range r.Essentials {
		essential[e.String()] = true
	}
	d := s.current.Dialect()
	_, _ = fmt.Fprintf(s.out, "  Variables: %s\n", strings.Join(r.Vars, " "))
	for _, p := range r.Primes {
		mark := " "
		if essential[p.String()] {
			mark = "*"
		}
		lits, _ := p.Literals(r.Vars)
		_, _ = fmt.Fprintf(s.out, "  %s %s  %-24s covers %s\n",
			mark, p, visitors.RenderCanonical(lits, d), joinInts(p.Minterms()))
	}
	_, _ = fmt.Fprintf(s.out, "  %d prime implicants, %d essential, %d selected\n",
		len(r.Primes), len(r.Essentials), len(r.Selected))
	return nil
}

func (s *Session) cmdMinterms() error {
	if s.current == nil {
		return errNoExpression
	}
	rows, err := s.current.Minterms()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  True rows: %s\n", joinInts(rows))
	_, _ = fmt.Fprintf(s.out, "  %d of %d rows\n", len(rows), 1<<len(s.current.Variables()))
	return nil
}

func (s *Session) cmdVars() error {
	if s.current == nil {
		return errNoExpression
	}
	vars := s.current.Variables()
	_, _ = fmt.Fprintf(s.out, "  Variables: %s (%d rows)\n", strings.Join(vars, ", "), 1<<len(vars))
	return nil
}

// cmdAST displays a summary of the current syntax tree after plugins.
func (s *Session) cmdAST() error {
	if s.current == nil {
		return errNoExpression
	}
	root, err := s.current.Tree()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  Source:     %s\n", s.source)
	_, _ = fmt.Fprintf(s.out, "  Normalized: %s\n", s.current.Expr.Normalized)
	_, _ = fmt.Fprintf(s.out, "  Dialect:    %s (input %s)\n", s.current.Dialect(), s.current.Expr.Dialect)
	_, _ = fmt.Fprintf(s.out, "  Variables:  %s\n", strings.Join(s.current.Variables(), ", "))
	_, _ = fmt.Fprintf(s.out, "  Depth:      %d\n", root.Depth())
	_, _ = fmt.Fprintf(s.out, "  Nodes:      %d\n", plugins.Count(root, func(*nodes.Node) bool { return true }))
	s.printASTCounts(root)
	s.printASTTree(root)
	s.printASTFooter()
	return nil
}

func (s *Session) cmdDialect(args string) error {
	name := strings.TrimSpace(strings.ToLower(args))
	switch name {
	case "":
		if s.hasDialect {
			_, _ = fmt.Fprintf(s.out, "  Output dialect: %s\n", s.dialect)
		} else {
			_, _ = fmt.Fprintln(s.out, "  Output dialect: as typed")
		}
		return nil
	case "auto":
		s.hasDialect = false
		if s.current != nil {
			s.current.WithDialect(s.current.Expr.Dialect)
		}
		_, _ = fmt.Fprintln(s.out, "  Output dialect: as typed")
		return nil
	}
	d, err := nodes.ParseDialect(name)
	if err != nil {
		return err
	}
	s.setDialect(d)
	_, _ = fmt.Fprintf(s.out, "  Output dialect set to %s\n", d)
	return nil
}

func (s *Session) cmdColumns(args string) error {
	switch strings.TrimSpace(strings.ToLower(args)) {
	case "all":
		s.allColumns = true
		_, _ = fmt.Fprintln(s.out, "  Truth tables show every sub-expression")
	case "negated":
		s.allColumns = false
		_, _ = fmt.Fprintln(s.out, "  Truth tables show negated sub-expressions only")
	default:
		return errors.New("usage: columns all|negated")
	}
	return nil
}

func (s *Session) cmdEquiv(args string) error {
	if s.current == nil {
		return errNoExpression
	}
	text := strings.TrimSpace(args)
	if text == "" {
		return errors.New("usage: equiv <expression>")
	}
	other, err := s.build(text)
	if err != nil {
		return fmt.Errorf("equiv: %w", err)
	}
	eq, err := s.current.Equivalent(other)
	if err != nil {
		return err
	}
	if eq {
		_, _ = fmt.Fprintf(s.out, "  Equivalent: %s == %s\n", s.current, other)
	} else {
		_, _ = fmt.Fprintf(s.out, "  Not equivalent: %s != %s\n", s.current, other)
	}
	return nil
}

// cmdExamples evaluates the built-in sample expressions. The last one
// stays current.
func (s *Session) cmdExamples() error {
	for i, text := range sampleExpressions {
		_, _ = fmt.Fprintf(s.out, "  [%d] %s\n", i+1, text)
		if err := s.cmdExpr(text); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(s.out)
	}
	return nil
}

func (s *Session) cmdEngine(args string) error {
	name := strings.TrimSpace(strings.ToLower(args))
	if !isValidEngine(name) {
		return fmt.Errorf("unknown engine %q (choose: postgres, mysql, sqlite)", name)
	}
	s.setEngine(name)
	_, _ = fmt.Fprintf(s.out, "  Engine set to %s\n", s.engine)
	return nil
}

// cmdPlugin routes plugin sub-commands: enables a plugin by name, or
// dispatches to cmdPluginOff for disabling.
func (s *Session) cmdPlugin(args string) error {
	parts := strings.Fields(strings.TrimSpace(args))
	if len(parts) == 0 {
		return errors.New("usage: plugin <name> [args] | plugin off [name]")
	}
	name := strings.ToLower(parts[0])
	if name == "off" {
		return s.cmdPluginOff(parts[1:])
	}
	for _, c := range s.configurers {
		if c.name == name {
			rest := strings.TrimSpace(args)[len(parts[0]):]
			return c.configure(s, strings.TrimSpace(rest))
		}
	}
	return fmt.Errorf("unknown plugin: %s", name)
}

func (s *Session) cmdPluginOff(parts []string) error {
	if len(parts) == 0 {
		s.plugins.disableAll()
		_, _ = fmt.Fprintln(s.out, "  All plugins disabled")
	} else {
		name := strings.ToLower(parts[0])
		if !s.plugins.disable(name) {
			return fmt.Errorf("plugin %q is not enabled", name)
		}
		_, _ = fmt.Fprintf(s.out, "  %s disabled\n", name)
	}
	return s.rebuildWithPlugins()
}

func (s *Session) cmdPlugins() {
	_, _ = fmt.Fprintln(s.out, "  Available plugins:")
	for _, c := range s.configurers {
		if p, ok := s.plugins.lookup(c.name); ok {
			_, _ = fmt.Fprintf(s.out, "    %-14s on   (%s)\n", c.name, p.status)
		} else {
			_, _ = fmt.Fprintf(s.out, "    %-14s off\n", c.name)
		}
	}
}

func (s *Session) cmdConnect(args string) error {
	dsn := strings.TrimSpace(args)

	if s.conn != nil {
		return fmt.Errorf("already connected to %s (use 'disconnect' first)", sanitizeDSN(s.conn.dsn))
	}

	if dsn != "" {
		return s.connectWithDSN(dsn)
	}

	if s.lastDSN != "" {
		choice := prompt(s.rl, fmt.Sprintf("Reconnect to %s? (y/n/setup)", sanitizeDSN(s.lastDSN)), "y")
		switch strings.ToLower(choice) {
		case "y", "yes":
			return s.connectWithDSN(s.lastDSN)
		case "s", "setup":
			return s.connectViaWizard()
		default:
			_, _ = fmt.Fprintln(s.out, "  Connect cancelled")
			return nil
		}
	}

	return s.connectViaWizard()
}

func (s *Session) connectWithDSN(dsn string) error {
	conn, err := connect(s.engine, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.conn = conn
	s.lastDSN = dsn
	_, _ = fmt.Fprintf(s.out, "  Connected to %s (%s)\n", sanitizeDSN(dsn), s.engine)
	return nil
}

func (s *Session) connectViaWizard() error {
	dsn := wizards[s.engine].run(s.rl)
	if dsn == "" {
		_, _ = fmt.Fprintln(s.out, "  No connection configured")
		return nil
	}

	_, _ = fmt.Fprintf(s.out, "  DSN: %s\n", sanitizeDSN(dsn))
	return s.connectWithDSN(dsn)
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	dsn := sanitizeDSN(s.conn.dsn)
	if err := s.conn.close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.conn = nil
	_, _ = fmt.Fprintf(s.out, "  Disconnected from %s\n", dsn)
	return nil
}

// cmdSave stores the current expression and its truth table.
func (s *Session) cmdSave() error {
	if s.conn == nil {
		return errNotConnected
	}
	if s.current == nil {
		return errNoExpression
	}
	simplified, err := s.current.Simplify()
	if err != nil {
		return err
	}
	t, err := s.current.TruthTable()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	id, err := s.conn.saveRun(ctx, savedRun{
		expression: s.source,
		dialect:    s.current.Dialect(),
		simplified: simplified,
		table:      t,
	})
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	_, _ = fmt.Fprintf(s.out, "  Saved run %s (%d rows)\n", id, len(t.Rows))
	return nil
}

// cmdHistory lists saved runs; an argument filters by expression text.
func (s *Session) cmdHistory(args string) error {
	if s.conn == nil {
		return errNotConnected
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	result, err := s.conn.history(ctx, strings.TrimSpace(args), historyLimit)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

// cmdShow prints the stored truth table of a saved run.
func (s *Session) cmdShow(args string) error {
	if s.conn == nil {
		return errNotConnected
	}
	id := strings.TrimSpace(args)
	if id == "" {
		return errors.New("usage: show <run id>")
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	result, err := s.conn.runRows(ctx, id)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	_, _ = fmt.Fprint(s.out, result)
	return nil
}

func (s *Session) cmdReset() error {
	s.current = nil
	s.source = ""
	_, _ = fmt.Fprintln(s.out, "  Expression cleared")
	return nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Expressions:
    <expression>              Evaluate an expression and make it current
    expr <expression>         Same, explicitly
    examples                  Evaluate the built-in sample expressions
    load <file.json[.zst]>    Evaluate every expression in a JSON batch file

  Operators (any dialect, first one typed sets the output dialect):
    pseudo    not and or implies iff nand nor
    logic     ~ ^ v -> <-> | ⬇
    code      ! && || -> <-> | ⬇
    boolean   - * + -> <-> -* -+
    Variables are single lowercase letters except 'v'.
    Operators apply left to right; use parentheses to group.

  Inspection:
    table                     Print the truth table
    simplify                  Print the minimal equivalent expression
    primes                    List prime implicants (* = essential)
    minterms                  List the rows where the expression holds
    vars                      List the variables
    equiv <expression>        Compare with the current expression
    ast                       Show the syntax tree

  Output:
    dialect [name|auto]       Show or set the output dialect
    columns all|negated       Choose truth-table sub-expression columns
    dot <file>                Write the syntax tree as Graphviz DOT
    html <file>               Write the truth table as an HTML page
                              (files ending in .zst are compressed)

  Plugins:
    plugin expand [ops]       Rewrite implies, iff, nand, nor with and/or/not
    plugin nnf                Rewrite into negation normal form
    plugin off [name]         Disable one or all plugins
    plugins                   List plugins and their state

  Database:
    engine <name>             Set engine (postgres, mysql, sqlite)
    connect [dsn]             Connect (wizard when no DSN is given)
    disconnect                Close the connection
    save                      Store the current expression and truth table
    history [filter]          List saved runs
    show <run id>             Print the truth table of a saved run

  Other:
    reset                     Clear the current expression
    help                      Show this help
    exit / quit               Leave the REPL`)
}
