package mcp

// LaunchAppInput is the input for the launch_app tool.
type LaunchAppInput struct {
	Command        string `json:"command" jsonschema:"required,Command line to launch (e.g. 'xterm -e htop'). Split with shell-style quoting."`
	Action         string `json:"action,omitempty" jsonschema:"Optional window action to apply once the window appears: minimize, maximize, restore, move or resize"`
	X              int    `json:"x,omitempty" jsonschema:"Target X coordinate for the move action"`
	Y              int    `json:"y,omitempty" jsonschema:"Target Y coordinate for the move action"`
	Width          int    `json:"width,omitempty" jsonschema:"Target width in pixels for the resize action"`
	Height         int    `json:"height,omitempty" jsonschema:"Target height in pixels for the resize action"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" jsonschema:"How long to wait for the window to appear (default: resolve_timeout from config)"`
}

// LaunchAppOutput is the output for the launch_app tool.
type LaunchAppOutput struct {
	PID      int    `json:"pid"`
	WindowID uint32 `json:"window_id"`
	AppID    string `json:"app_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Action   string `json:"action"`
}

// ControlWindowInput is the input for the control_window tool.
type ControlWindowInput struct {
	WindowID uint32 `json:"window_id" jsonschema:"required,X11 window ID to operate on"`
	Action   string `json:"action" jsonschema:"required,Window action: minimize, maximize, restore, move or resize"`
	X        int    `json:"x,omitempty" jsonschema:"Target X coordinate for the move action"`
	Y        int    `json:"y,omitempty" jsonschema:"Target Y coordinate for the move action"`
	Width    int    `json:"width,omitempty" jsonschema:"Target width in pixels for the resize action"`
	Height   int    `json:"height,omitempty" jsonschema:"Target height in pixels for the resize action"`
}

// ControlWindowOutput is the output for the control_window tool.
type ControlWindowOutput struct {
	WindowID uint32 `json:"window_id"`
	Action   string `json:"action"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	PID int `json:"pid" jsonschema:"required,Process ID whose windows to list"`
}

// WindowInfo describes a single visible window.
type WindowInfo struct {
	WindowID uint32 `json:"window_id"`
	PID      int    `json:"pid"`
	AppID    string `json:"app_id,omitempty"`
	Title    string `json:"title,omitempty"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	PID     int          `json:"pid"`
	Windows []WindowInfo `json:"windows"`
}

// ListExecutablesInput is the input for the list_executables tool.
type ListExecutablesInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"Optional substring filter on executable names"`
}

// ListExecutablesOutput is the output for the list_executables tool.
type ListExecutablesOutput struct {
	Executables []string `json:"executables"`
}
