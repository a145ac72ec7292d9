package control

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/1broseidon/xlaunch/internal/platform"
)

// WindowOps is the slice of the platform backend the controller needs.
type WindowOps interface {
	Minimize(windowID platform.WindowID) error
	Maximize(windowID platform.WindowID) error
	Restore(windowID platform.WindowID) error
	Move(windowID platform.WindowID, x, y int) error
	Resize(windowID platform.WindowID, width, height int) error
}

// Controller applies a single validated action to a resolved window.
type Controller struct {
	ops WindowOps
	log zerolog.Logger
}

// NewController creates a controller over the given window operations.
func NewController(ops WindowOps, log zerolog.Logger) *Controller {
	return &Controller{ops: ops, log: log}
}

// Apply invokes exactly one window-system operation for the action; there
// is no internal retry. ActionNone performs no external call. An unset
// window handle is rejected before any operation is attempted.
func (c *Controller) Apply(windowID platform.WindowID, action Action) error {
	if action.Kind == ActionNone {
		return nil
	}
	if windowID == 0 {
		return fmt.Errorf("cannot apply %s: %w", action, ErrNoWindow)
	}

	c.log.Debug().Uint32("window_id", uint32(windowID)).Stringer("action", action).Msg("applying action")

	var err error
	switch action.Kind {
	case ActionMinimize:
		err = c.ops.Minimize(windowID)
	case ActionMaximize:
		err = c.ops.Maximize(windowID)
	case ActionRestore:
		err = c.ops.Restore(windowID)
	case ActionMove:
		err = c.ops.Move(windowID, action.X, action.Y)
	case ActionResize:
		err = c.ops.Resize(windowID, action.Width, action.Height)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action.Kind)
	}

	if err != nil {
		return fmt.Errorf("failed to %s window %d: %w", action.Kind, windowID, err)
	}
	return nil
}
