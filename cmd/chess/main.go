// chess is an interactive shell for playing a game under the rules engine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Shell.Colour = false
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play a game of chess in the terminal. Type 'help' at the prompt for commands.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func newLogger(cfg *config.Config) *log.Logger {
	if cfg.Verbosity < 2 {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cfg.LogFile, "chess: ", log.LstdFlags)
}

func run(cfg *config.Config) error {
	mgr := session.NewManager(
		session.WithRules(cfg.Rules),
		session.WithLogger(newLogger(cfg)),
	)

	sh, err := newShell(mgr, cfg.OutputFile, cfg.Shell.Colour)
	if err != nil {
		return err
	}
	if *startFEN != "" {
		if err := sh.cmdFEN([]string{*startFEN}); err != nil {
			return err
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sh.prompt(cfg.Shell.Prompt),
		HistoryFile:     cfg.Shell.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := sh.execute(line); errors.Is(err, errQuit) {
			return nil
		}
		rl.SetPrompt(sh.prompt(cfg.Shell.Prompt))
	}
}
