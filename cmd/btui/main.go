// ABOUTME: CLI entry point for the btui demo with terminal crash recovery
// ABOUTME: Parses flags, loads config, runs the raw or Bubble Tea front end, prints the texts read

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

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/astelon/btui/internal/termfix"

	"github.com/charmbracelet/glamour"

	"github.com/astelon/btui/internal/app"
	"github.com/astelon/btui/internal/app/btea"
	"github.com/astelon/btui/internal/config"
	"github.com/astelon/btui/internal/log"
	"github.com/astelon/btui/pkg/tui/component"
	"github.com/astelon/btui/pkg/tui/terminal"
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
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("btui %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the CLI overrides.
func loadConfig(args cliArgs) (*config.Config, error) {
	path := args.config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if args.theme != "" {
		cfg.Theme = args.theme
		cfg.ThemeFile = ""
	}
	if args.themeFile != "" {
		cfg.ThemeFile = args.themeFile
	}
	if args.logFile != "" {
		cfg.Log.File = args.logFile
	}
	if args.logLevel != "" {
		cfg.Log.Level = args.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("applying flags: %w", err)
	}
	return cfg, nil
}

// run performs the initialization sequence and dispatches to the selected front end.
func run(args cliArgs, stdout io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	switch {
	case args.dumpConfig:
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	case args.keys:
		km, err := cfg.Keymap()
		if err != nil {
			return err
		}
		return renderKeys(stdout, km)
	}

	closeLog, err := setupLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	form, err := app.NewForm(cfg)
	if err != nil {
		return fmt.Errorf("building form: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("btui %s starting: driver=%s theme=%s", version, args.driver, cfg.Theme)
	if args.driver == driverTea {
		err = btea.Run(ctx, form)
	} else {
		err = runRaw(ctx, form)
	}
	if err != nil {
		return err
	}

	for _, r := range form.Results() {
		fmt.Fprintf(stdout, "Text read: %s\n", r.Text)
	}
	return nil
}

func runRaw(ctx context.Context, form *app.Form) error {
	term := terminal.NewProcessTerminal()
	defer term.Close()
	defer terminal.RestoreOnPanic(term)

	return app.Run(ctx, term, form)
}

// setupLog points the logger at the configured file. Without one, logs
// are discarded while the screen is in use.
func setupLog(cfg *config.Config) (func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if cfg.Log.File == "" {
		prev := log.SetOutput(nil)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}

// renderKeys prints the keymap help through glamour.
func renderKeys(w io.Writer, km *component.Keymap) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(km.Markdown())
	if err != nil {
		return fmt.Errorf("rendering key bindings: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
