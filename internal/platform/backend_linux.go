//go:build linux

package platform

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/xlaunch/internal/x11"
)

// resizeAckTimeout bounds the synchronous wait for the window manager to
// acknowledge a resize request.
const resizeAckTimeout = 2 * time.Second

// LinuxBackend wraps an existing X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay creates a new Linux backend by opening a fresh
// X11 connection. An empty display uses the DISPLAY environment variable.
func NewLinuxBackendFromDisplay(display string) (*LinuxBackend, error) {
	conn, err := x11.NewConnectionDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// WindowsForPID lists visible normal windows whose _NET_WM_PID matches pid,
// sorted ascending by window ID.
func (b *LinuxBackend) WindowsForPID(pid int) ([]Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	clients, err := ewmh.ClientListGet(conn.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	windows := make([]Window, 0, 1)
	for _, windowID := range clients {
		owner, err := ewmh.WmPidGet(conn.XUtil, windowID)
		if err != nil || int(owner) != pid {
			continue
		}

		if !conn.IsNormalWindow(windowID) {
			continue
		}
		if conn.IsHidden(windowID) {
			continue
		}

		geom, err := conn.WindowGeometry(windowID)
		if err != nil {
			continue
		}

		windows = append(windows, Window{
			ID:    WindowID(windowID),
			PID:   pid,
			AppID: b.windowAppID(windowID),
			Title: b.windowTitle(windowID),
			Bounds: Rect{
				X:      geom.X,
				Y:      geom.Y,
				Width:  geom.Width,
				Height: geom.Height,
			},
		})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].ID < windows[j].ID
	})

	return windows, nil
}

// Minimize iconifies a window via WM_CHANGE_STATE.
func (b *LinuxBackend) Minimize(windowID WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MinimizeWindow(xproto.Window(windowID))
}

// Maximize maximizes a window in both directions.
func (b *LinuxBackend) Maximize(windowID WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MaximizeWindow(xproto.Window(windowID))
}

// Restore removes the maximized states from a window.
func (b *LinuxBackend) Restore(windowID WindowID) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.UnmaximizeWindow(xproto.Window(windowID))
}

// Move moves a window to absolute screen coordinates.
func (b *LinuxBackend) Move(windowID WindowID, x, y int) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveWindow(xproto.Window(windowID), x, y)
}

// Resize resizes a window and waits for the window manager to acknowledge
// the new size.
func (b *LinuxBackend) Resize(windowID WindowID, width, height int) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.ResizeWindow(xproto.Window(windowID), width, height, resizeAckTimeout)
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func (b *LinuxBackend) windowAppID(windowID xproto.Window) string {
	wmClass, err := icccm.WmClassGet(b.conn.XUtil, windowID)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}

func (b *LinuxBackend) windowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(b.conn.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(b.conn.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}
