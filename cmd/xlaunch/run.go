package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/1broseidon/xlaunch/internal/control"
	"github.com/1broseidon/xlaunch/internal/invoke"
	"github.com/1broseidon/xlaunch/internal/launch"
	"github.com/1broseidon/xlaunch/internal/platform"
	"github.com/1broseidon/xlaunch/internal/resolve"
)

type invokeResultJSON struct {
	PID      int    `json:"pid"`
	WindowID uint32 `json:"window_id"`
	AppID    string `json:"app_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Action   string `json:"action"`
}

// runInvoke is the default command: launch, resolve, apply.
func runInvoke(args []string) int {
	fs := flag.NewFlagSet("xlaunch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printMainUsage(os.Stderr) }
	configPath := fs.String("config", "", "Config file path (default: ~/.config/xlaunch/config.yaml)")
	timeoutSec := fs.Int("timeout", 0, "Seconds to wait for the window (default: resolve_timeout from config)")
	pollMS := fs.Int("poll", 0, "Poll interval in milliseconds (default: poll_interval_ms from config)")
	jsonOut := fs.Bool("json", false, "Print the result as JSON")
	debug := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "a command to launch is required")
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := newLogger(cfg.LogLevel, *debug)

	timeout := cfg.ResolveTimeoutDuration()
	if *timeoutSec > 0 {
		timeout = time.Duration(*timeoutSec) * time.Second
	}
	poll := cfg.PollIntervalDuration()
	if *pollMS > 0 {
		poll = time.Duration(*pollMS) * time.Millisecond
	}

	if cfg.XAuthority != "" {
		os.Setenv("XAUTHORITY", cfg.XAuthority)
	}

	backend, err := platform.NewLinuxBackendFromDisplay(cfg.Display)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Disconnect()

	command, action, actionArgs := invoke.SplitArgs(fs.Args())

	runner := invoke.NewRunner(
		launch.New(log),
		resolve.New(backend, resolve.Options{Timeout: timeout, PollInterval: poll}, log),
		control.NewController(backend, log),
		log,
	)

	res, err := runner.Run(invoke.Request{
		Command:    command,
		Action:     action,
		ActionArgs: actionArgs,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	printResult(res, *jsonOut)
	return 0
}

func printResult(res invoke.Result, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(invokeResultJSON{
			PID:      res.PID,
			WindowID: uint32(res.Window.ID),
			AppID:    res.Window.AppID,
			Title:    res.Window.Title,
			Action:   res.Applied.String(),
		})
		return
	}

	fmt.Printf("pid:       %d\n", res.PID)
	fmt.Printf("window_id: %d\n", res.Window.ID)
	if res.Window.AppID != "" {
		fmt.Printf("app_id:    %s\n", res.Window.AppID)
	}
	if res.Window.Title != "" {
		fmt.Printf("title:     %s\n", res.Window.Title)
	}
	fmt.Printf("action:    %s\n", res.Applied)
}

func newLogger(level string, debug bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
