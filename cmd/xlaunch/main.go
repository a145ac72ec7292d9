package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/xlaunch/internal/config"
	"github.com/1broseidon/xlaunch/internal/launch"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "apps":
		os.Exit(runApps(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		os.Exit(runInvoke(os.Args[1:]))
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: xlaunch [options] <command> [args...] [action [args...]]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Launch a program, wait for its window, then optionally apply one")
	fmt.Fprintln(w, "window action. The first recognized action keyword after the command")
	fmt.Fprintln(w, "starts the action; everything before it belongs to the command.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Actions:")
	fmt.Fprintln(w, "  minimize            Iconify the window")
	fmt.Fprintln(w, "  maximize            Maximize the window")
	fmt.Fprintln(w, "  restore             Clear maximized state")
	fmt.Fprintln(w, "  move <x> <y>        Move the window to x,y")
	fmt.Fprintln(w, "  resize <w> <h>      Resize the window to w x h")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -config PATH        Config file path (default: ~/.config/xlaunch/config.yaml)")
	fmt.Fprintln(w, "  -timeout N          Seconds to wait for the window")
	fmt.Fprintln(w, "  -poll N             Poll interval in milliseconds")
	fmt.Fprintln(w, "  -json               Print the result as JSON")
	fmt.Fprintln(w, "  -debug              Enable debug logging")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  apps                List launchable executables")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  xlaunch xterm -e htop move 100 200")
	fmt.Fprintln(w, "  xlaunch firefox maximize")
	fmt.Fprintln(w, "  xlaunch -timeout 5 xclock resize 300 300")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func runApps(args []string) int {
	fs := flag.NewFlagSet("apps", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xlaunch apps [--config PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List launchable executables from the configured search paths.")
	}
	configPath := fs.String("config", "", "Config file path (default: ~/.config/xlaunch/config.yaml)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "apps takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, name := range launch.ListExecutables(cfg.ExecPaths) {
		fmt.Println(name)
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  xlaunch config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  xlaunch config print [--path PATH] [--defaults]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/xlaunch/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		if _, err := loadConfig(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/xlaunch/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var cfg *config.Config
		if *printDefaults {
			cfg = config.DefaultConfig()
		} else {
			var err error
			cfg, err = loadConfig(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}
