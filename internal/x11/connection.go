package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server using the
// DISPLAY environment variable.
func NewConnection() (*Connection, error) {
	return NewConnectionDisplay("")
}

// NewConnectionDisplay connects to the X11 server on the given display.
// An empty display falls back to the DISPLAY environment variable.
// EWMH extensions are initialized automatically by xgbutil.
func NewConnectionDisplay(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
