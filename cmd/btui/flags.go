// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --driver, --theme, --theme-file, --log-file, --log-level, --keys, --dump-config, --version

package main

import (
	"flag"
	"fmt"
	"io"
)

const (
	driverRaw = "raw"
	driverTea = "tea"
)

type cliArgs struct {
	config     string
	driver     string
	theme      string
	themeFile  string
	logFile    string
	logLevel   string
	keys       bool
	dumpConfig bool
	version    bool
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("btui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.config, "config", "", "Config file (default $BTUI_CONFIG or ~/.btui/config.yaml)")
	fs.StringVar(&args.driver, "driver", driverRaw, "Front end: raw or tea")
	fs.StringVar(&args.theme, "theme", "", "Built-in theme name")
	fs.StringVar(&args.themeFile, "theme-file", "", "YAML theme file")
	fs.StringVar(&args.logFile, "log-file", "", "Append logs to this file")
	fs.StringVar(&args.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&args.keys, "keys", false, "Show key bindings and exit")
	fs.BoolVar(&args.dumpConfig, "dump-config", false, "Print the effective config and exit")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	if fs.NArg() > 0 {
		return args, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if args.driver != driverRaw && args.driver != driverTea {
		return args, fmt.Errorf("unknown driver %q (want %s or %s)", args.driver, driverRaw, driverTea)
	}
	return args, nil
}
