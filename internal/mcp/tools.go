package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/xlaunch/internal/control"
	"github.com/1broseidon/xlaunch/internal/invoke"
	"github.com/1broseidon/xlaunch/internal/launch"
	"github.com/1broseidon/xlaunch/internal/platform"
	"github.com/1broseidon/xlaunch/internal/resolve"
)

// actionArgs renders the numeric tool fields as positional action
// arguments, matching the command-line form.
func actionArgs(action string, x, y, width, height int) []string {
	switch control.Kind(action) {
	case control.ActionMove:
		return []string{strconv.Itoa(x), strconv.Itoa(y)}
	case control.ActionResize:
		return []string{strconv.Itoa(width), strconv.Itoa(height)}
	default:
		return nil
	}
}

func (s *Server) handleLaunchApp(_ context.Context, _ *mcpsdk.CallToolRequest, args LaunchAppInput) (*mcpsdk.CallToolResult, LaunchAppOutput, error) {
	command, err := launch.SplitCommandLine(args.Command)
	if err != nil {
		return nil, LaunchAppOutput{}, fmt.Errorf("invalid command: %w", err)
	}

	timeout := s.config.ResolveTimeoutDuration()
	if args.TimeoutSeconds > 0 {
		timeout = time.Duration(args.TimeoutSeconds) * time.Second
	}

	runner := invoke.NewRunner(
		s.launcher,
		resolve.New(s.backend, resolve.Options{
			Timeout:      timeout,
			PollInterval: s.config.PollIntervalDuration(),
		}, s.log),
		control.NewController(s.backend, s.log),
		s.log,
	)

	res, err := runner.Run(invoke.Request{
		Command:    command,
		Action:     args.Action,
		ActionArgs: actionArgs(args.Action, args.X, args.Y, args.Width, args.Height),
	})
	if err != nil {
		return nil, LaunchAppOutput{}, err
	}

	return nil, LaunchAppOutput{
		PID:      res.PID,
		WindowID: uint32(res.Window.ID),
		AppID:    res.Window.AppID,
		Title:    res.Window.Title,
		Action:   res.Applied.String(),
	}, nil
}

func (s *Server) handleControlWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ControlWindowInput) (*mcpsdk.CallToolResult, ControlWindowOutput, error) {
	if args.Action == "" {
		return nil, ControlWindowOutput{}, fmt.Errorf("action is required")
	}

	action, err := control.Parse(args.Action, actionArgs(args.Action, args.X, args.Y, args.Width, args.Height))
	if err != nil {
		return nil, ControlWindowOutput{}, err
	}

	controller := control.NewController(s.backend, s.log)
	if err := controller.Apply(platform.WindowID(args.WindowID), action); err != nil {
		return nil, ControlWindowOutput{}, err
	}

	return nil, ControlWindowOutput{
		WindowID: args.WindowID,
		Action:   action.String(),
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	if args.PID <= 0 {
		return nil, ListWindowsOutput{}, fmt.Errorf("pid must be positive, got %d", args.PID)
	}

	windows, err := s.backend.WindowsForPID(args.PID)
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{PID: args.PID, Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		out.Windows = append(out.Windows, WindowInfo{
			WindowID: uint32(w.ID),
			PID:      w.PID,
			AppID:    w.AppID,
			Title:    w.Title,
			X:        w.Bounds.X,
			Y:        w.Bounds.Y,
			Width:    w.Bounds.Width,
			Height:   w.Bounds.Height,
		})
	}
	return nil, out, nil
}

func (s *Server) handleListExecutables(_ context.Context, _ *mcpsdk.CallToolRequest, args ListExecutablesInput) (*mcpsdk.CallToolResult, ListExecutablesOutput, error) {
	names := launch.ListExecutables(s.config.ExecPaths)
	if args.Filter != "" {
		filtered := names[:0]
		for _, name := range names {
			if strings.Contains(name, args.Filter) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}
	return nil, ListExecutablesOutput{Executables: names}, nil
}
