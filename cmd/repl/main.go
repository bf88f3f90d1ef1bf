// REPL binary for evaluating, tabulating and simplifying propositional
// logic expressions.
//
// Configuration (env vars):
//
//	PROPLOGIC_ENGINE=postgres|mysql|sqlite     (optional, prompted if absent)
//	DATABASE_URL=<dsn>                         (optional, auto-connects if set)
//	PROPLOGIC_DIALECT=pseudo|logic|code|boolean (optional, forces output dialect)
//	PROPLOGIC_HISTORY=<path>                   (optional, default ~/.proplogic_history)
//
// Usage:
//
//	go run ./cmd/repl
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bawdo/proplogic/nodes"
	"github.com/ergochat/readline"
)

const mainPrompt = "proplogic> "

// envConfig is the REPL configuration read from the environment. Empty
// fields are filled in interactively or left at their defaults.
type envConfig struct {
	engine      string
	databaseURL string
	dialect     string
	historyFile string
}

func readEnv(getenv func(string) string) envConfig {
	cfg := envConfig{
		engine:      strings.TrimSpace(strings.ToLower(getenv("PROPLOGIC_ENGINE"))),
		databaseURL: strings.TrimSpace(getenv("DATABASE_URL")),
		dialect:     strings.TrimSpace(getenv("PROPLOGIC_DIALECT")),
		historyFile: getenv("PROPLOGIC_HISTORY"),
	}
	if cfg.historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.historyFile = filepath.Join(home, ".proplogic_history")
		}
	}
	return cfg
}

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "[Config] ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	cfg := readEnv(os.Getenv)
	sess := NewSession(chooseEngine(rl, cfg.engine), rl)
	if err := applyDialect(sess, cfg.dialect); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: PROPLOGIC_DIALECT: %v\n", err)
	}

	_ = rl.SetConfig(&readline.Config{
		Prompt:          mainPrompt,
		HistoryFile:     cfg.historyFile,
		HistoryLimit:    500,
		AutoComplete:    &replCompleter{sess: sess},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})

	if cfg.databaseURL != "" {
		fmt.Println("[Config] Connecting via DATABASE_URL...")
		if err := sess.Execute("connect " + cfg.databaseURL); err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: DATABASE_URL connect failed: %v\n", err)
		}
	} else {
		offerConnection(rl, sess)
	}

	fmt.Println()
	fmt.Println("Proplogic REPL: type an expression, 'help' for commands, 'exit' to quit")
	fmt.Println()

	serve(rl, sess)
	if sess.conn != nil {
		_ = sess.conn.close()
	}
	fmt.Println()
}

// serve reads lines until exit, quit or end of input. Errors are reported
// and the loop continues.
func serve(rl *readline.Instance, sess *Session) {
	rl.SetPrompt(mainPrompt)
	for {
		line, err := rl.ReadLine()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF), err != nil:
			return
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "exit", "quit":
			return
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
}

// chooseEngine returns the configured engine, or asks for one. Unknown
// names fall back to sqlite.
func chooseEngine(rl *readline.Instance, configured string) string {
	source := " (from PROPLOGIC_ENGINE)"
	engine := configured
	if engine == "" {
		source = ""
		engine = strings.ToLower(prompt(rl, "Select engine for saved runs (postgres, mysql, sqlite)", "sqlite"))
	}
	if !isValidEngine(engine) {
		fmt.Fprintf(os.Stderr, "Warning: unknown engine %q, defaulting to sqlite\n", engine)
		return "sqlite"
	}
	fmt.Printf("[Config] Engine: %s%s\n", engine, source)
	return engine
}

// applyDialect forces the output dialect named by the environment.
func applyDialect(sess *Session, name string) error {
	if name == "" {
		return nil
	}
	d, err := nodes.ParseDialect(name)
	if err != nil {
		return err
	}
	sess.setDialect(d)
	fmt.Printf("[Config] Output dialect: %s (from PROPLOGIC_DIALECT)\n", d)
	return nil
}

func offerConnection(rl *readline.Instance, sess *Session) {
	switch strings.ToLower(prompt(rl, "Connect to a database to save runs? (y/N)", "")) {
	case "y", "yes":
	default:
		fmt.Println("[Config] Skipped, use 'connect <dsn>' later to connect")
		return
	}
	if err := sess.connectViaWizard(); err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: connect failed: %v\n", err)
		fmt.Println("[Config] Use 'connect <dsn>' later to retry")
	}
}

// prompt prints a label with an optional default and returns the user's
// input, or the default on an empty line.
func prompt(rl *readline.Instance, label, defaultVal string) string {
	if rl == nil {
		return defaultVal
	}
	if defaultVal != "" {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s [%s]: ", label, defaultVal))
	} else {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s: ", label))
	}
	defer rl.SetPrompt(mainPrompt)
	line, err := rl.ReadLine()
	if err != nil {
		return defaultVal
	}
	if val := strings.TrimSpace(line); val != "" {
		return val
	}
	return defaultVal
}

func isValidEngine(engine string) bool {
	switch engine {
	case "postgres", "mysql", "sqlite":
		return true
	}
	return false
}
