package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/1broseidon/xlaunch/internal/config"
	"github.com/1broseidon/xlaunch/internal/invoke"
	"github.com/1broseidon/xlaunch/internal/launch"
	"github.com/1broseidon/xlaunch/internal/platform"
)

const (
	ServerName    = "xlaunch"
	ServerVersion = "0.1.0"
)

// Server exposes launching and window control as MCP tools over stdio.
type Server struct {
	mcpServer *mcpsdk.Server
	backend   platform.Backend
	launcher  invoke.Launcher
	config    *config.Config
	log       zerolog.Logger
}

// NewServer creates an MCP server backed by the display the config names.
func NewServer(cfg *config.Config, log zerolog.Logger) (*Server, error) {
	backend, err := platform.NewLinuxBackendFromDisplay(cfg.Display)
	if err != nil {
		return nil, err
	}
	return newServerWith(cfg, backend, launch.New(log), log), nil
}

// newServerWith wires the server from explicit parts, so tests can pass
// fakes.
func newServerWith(cfg *config.Config, backend platform.Backend, launcher invoke.Launcher, log zerolog.Logger) *Server {
	s := &Server{
		backend:  backend,
		launcher: launcher,
		config:   cfg,
		log:      log,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "launch_app",
		Description: "Launch an application detached from the server, wait for it to map a visible window, and optionally apply a window action (minimize, maximize, restore, move, resize). Returns the PID and window ID.",
	}, s.handleLaunchApp)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "control_window",
		Description: "Apply a single window action to an already-resolved window by its ID. Exactly one window-system operation is issued; there are no retries.",
	}, s.handleControlWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the visible top-level windows belonging to a process ID, in ascending window-ID order, with geometry and titles.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_executables",
		Description: "List launchable executables found in the configured executable search paths.",
	}, s.handleListExecutables)
}
