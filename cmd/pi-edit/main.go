// ABOUTME: CLI entry point for pi-edit with terminal crash recovery
// ABOUTME: Parses flags, loads config, wires logging, and runs one editor session

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/pi-edit/internal/config"
	"github.com/mauromedda/pi-edit/internal/editor"
	"github.com/mauromedda/pi-edit/internal/keybindings"
	pilog "github.com/mauromedda/pi-edit/internal/log"
	"github.com/mauromedda/pi-edit/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("pi-edit %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings and runs the editor on the process terminal. Raw mode
// is restored before run returns, so the caller may write to stderr.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd, args.config)
	if err != nil {
		return err
	}

	keys, err := keybindings.New(cfg.ResolvedKeybindings())
	if err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}
	if args.listKeys {
		fmt.Print(keys.FormatAll())
		return nil
	}

	level, err := pilog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if args.verbose {
		level = pilog.LevelDebug
	}
	pilog.SetLevel(level)

	logPath := args.logFile
	if logPath == "" {
		logPath = cfg.LogFile
	}
	closeLog, err := redirectLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	welcome := cfg.Welcome
	if welcome == "" {
		welcome = fmt.Sprintf("pi-edit -- version %s", version)
	}

	pilog.Info("pi-edit %s starting in %s", version, cwd)

	t := terminal.NewProcessTerminal(os.Stdin, os.Stdout, terminal.WithReadTimeout(cfg.ReadTimeout))
	defer terminal.RestoreOnPanic(t)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	err = editor.New(t, editor.Options{Welcome: welcome, Keys: keys}).Run(ctx)
	if err != nil {
		pilog.Error("%v", err)
	}
	return err
}

// redirectLog sends log output to path, or discards it when path is
// empty; stderr is the screen while raw mode is active. The returned
// func restores stderr logging.
func redirectLog(path string) (func(), error) {
	if path == "" {
		prev := pilog.SetOutput(io.Discard)
		return func() { pilog.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := pilog.SetOutput(f)
	return func() {
		pilog.SetOutput(prev)
		_ = f.Close()
	}, nil
}
