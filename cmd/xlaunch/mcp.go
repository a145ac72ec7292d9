package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/xlaunch/internal/mcp"
)

func runMCP(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: xlaunch mcp serve [--config PATH] [--debug]")
		return 2
	}

	switch args[0] {
	case "serve":
		fs := flag.NewFlagSet("serve", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		configPath := fs.String("config", "", "Config file path (default: ~/.config/xlaunch/config.yaml)")
		debug := fs.Bool("debug", false, "Enable debug logging")
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		log := newLogger(cfg.LogLevel, *debug)

		if cfg.XAuthority != "" {
			os.Setenv("XAUTHORITY", cfg.XAuthority)
		}

		server, err := mcp.NewServer(cfg, log)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		log.Info().Str("server", mcp.ServerName).Str("version", mcp.ServerVersion).Msg("starting MCP server on stdio")
		if err := server.Run(ctx); err != nil && ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp subcommand: %s\n", args[0])
		return 2
	}
}
