package x11

import (
	"fmt"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// EWMH _NET_WM_STATE actions.
const (
	stateRemove = 0
	stateAdd    = 1
)

// Geometry describes a window's position and size in root coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// WindowGeometry returns the window's geometry translated to root
// coordinates.
func (c *Connection) WindowGeometry(windowID xproto.Window) (Geometry, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to get geometry for window %d: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to translate coordinates for window %d: %w", windowID, err)
	}

	return Geometry{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// MoveWindow moves a window to absolute root coordinates, keeping its size.
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) error {
	// A maximized window ignores move requests on most WMs.
	_ = c.UnmaximizeWindow(windowID)

	geom, err := c.WindowGeometry(windowID)
	if err != nil {
		return err
	}

	// Use EWMH MoveResize for better WM compatibility, with a direct
	// window move as fallback.
	if err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, geom.Width, geom.Height); err != nil {
		xwindow.New(c.XUtil, windowID).Move(x, y)
	}
	return nil
}

// ResizeWindow resizes a window to the given size, keeping its position,
// and waits for the window manager to acknowledge the new size. The wait
// is bounded by ackTimeout; an unacknowledged resize is an error.
func (c *Connection) ResizeWindow(windowID xproto.Window, width, height int, ackTimeout time.Duration) error {
	_ = c.UnmaximizeWindow(windowID)

	geom, err := c.WindowGeometry(windowID)
	if err != nil {
		return err
	}

	if err := ewmh.MoveresizeWindow(c.XUtil, windowID, geom.X, geom.Y, width, height); err != nil {
		xwindow.New(c.XUtil, windowID).Resize(width, height)
	}

	deadline := time.Now().Add(ackTimeout)
	for {
		cur, err := c.WindowGeometry(windowID)
		if err == nil && cur.Width == width && cur.Height == height {
			return nil
		}
		if time.Now().After(deadline) {
			if err != nil {
				return fmt.Errorf("resize of window %d not acknowledged after %s: %w", windowID, ackTimeout, err)
			}
			return fmt.Errorf("resize of window %d to %dx%d not acknowledged after %s (current %dx%d)",
				windowID, width, height, ackTimeout, cur.Width, cur.Height)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// MaximizeWindow adds both maximized states to a window.
func (c *Connection) MaximizeWindow(windowID xproto.Window) error {
	if err := ewmh.WmStateReq(c.XUtil, windowID, stateAdd, "_NET_WM_STATE_MAXIMIZED_HORZ"); err != nil {
		return fmt.Errorf("failed to maximize window %d: %w", windowID, err)
	}
	if err := ewmh.WmStateReq(c.XUtil, windowID, stateAdd, "_NET_WM_STATE_MAXIMIZED_VERT"); err != nil {
		return fmt.Errorf("failed to maximize window %d: %w", windowID, err)
	}
	return nil
}

// UnmaximizeWindow removes maximized states from a window if present.
func (c *Connection) UnmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}

	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
			if err := ewmh.WmStateReq(c.XUtil, windowID, stateRemove, state); err != nil {
				return fmt.Errorf("failed to unmaximize window %d: %w", windowID, err)
			}
		}
	}

	return nil
}

// MinimizeWindow iconifies a window via WM_CHANGE_STATE.
func (c *Connection) MinimizeWindow(windowID xproto.Window) error {
	reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return err
	}

	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}

	return xproto.SendEvent(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}

	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_NORMAL" {
			return true
		}
		// Reject desktop, dock, splash, etc.
		if t == "_NET_WM_WINDOW_TYPE_DESKTOP" ||
			t == "_NET_WM_WINDOW_TYPE_DOCK" ||
			t == "_NET_WM_WINDOW_TYPE_SPLASH" ||
			t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" {
			return false
		}
	}

	// If no specific type is set, assume it's normal
	return len(types) == 0
}

// IsHidden reports whether the window manager currently hides the window
// (minimized or otherwise withdrawn from view).
func (c *Connection) IsHidden(windowID xproto.Window) bool {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, state := range states {
		if state == "_NET_WM_STATE_HIDDEN" {
			return true
		}
	}
	return false
}
