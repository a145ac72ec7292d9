package control

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind names a window action. The zero value means "no action".
type Kind string

const (
	ActionNone     Kind = ""
	ActionMinimize Kind = "minimize"
	ActionMaximize Kind = "maximize"
	ActionRestore  Kind = "restore"
	ActionMove     Kind = "move"
	ActionResize   Kind = "resize"
)

var (
	// ErrUnknownAction marks an action name outside the closed vocabulary.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidActionArgs marks a wrong argument count or a non-numeric
	// argument for move/resize.
	ErrInvalidActionArgs = errors.New("invalid action arguments")
	// ErrNoWindow marks an action applied to an unset window handle.
	ErrNoWindow = errors.New("window handle is unset")
)

// Action is a validated window operation together with its parameters.
// Move carries X/Y, Resize carries Width/Height; the other kinds are
// parameterless.
type Action struct {
	Kind   Kind
	X      int
	Y      int
	Width  int
	Height int
}

// IsActionName reports whether s is a recognized action keyword.
func IsActionName(s string) bool {
	switch Kind(s) {
	case ActionMinimize, ActionMaximize, ActionRestore, ActionMove, ActionResize:
		return true
	default:
		return false
	}
}

// Parse builds an Action from an action name and its trailing arguments.
// An empty name yields ActionNone. Move and resize require exactly two
// integer arguments; resize dimensions must be positive. Validation
// failures are construction-time errors, never reaching the controller.
func Parse(name string, args []string) (Action, error) {
	switch Kind(name) {
	case ActionNone:
		if len(args) > 0 {
			return Action{}, fmt.Errorf("%w: arguments given without an action", ErrInvalidActionArgs)
		}
		return Action{}, nil

	case ActionMinimize, ActionMaximize, ActionRestore:
		if len(args) != 0 {
			return Action{}, fmt.Errorf("%w: %s takes no arguments", ErrInvalidActionArgs, name)
		}
		return Action{Kind: Kind(name)}, nil

	case ActionMove:
		x, y, err := twoInts(name, args)
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionMove, X: x, Y: y}, nil

	case ActionResize:
		w, h, err := twoInts(name, args)
		if err != nil {
			return Action{}, err
		}
		if w <= 0 || h <= 0 {
			return Action{}, fmt.Errorf("%w: resize dimensions must be positive, got %d x %d", ErrInvalidActionArgs, w, h)
		}
		return Action{Kind: ActionResize, Width: w, Height: h}, nil

	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
}

func twoInts(name string, args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s requires exactly two integer arguments, got %d", ErrInvalidActionArgs, name, len(args))
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s argument %q is not an integer", ErrInvalidActionArgs, name, args[0])
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s argument %q is not an integer", ErrInvalidActionArgs, name, args[1])
	}
	return a, b, nil
}

// String renders the action and its parameters in command-line form.
func (a Action) String() string {
	switch a.Kind {
	case ActionNone:
		return "none"
	case ActionMove:
		return fmt.Sprintf("move %d %d", a.X, a.Y)
	case ActionResize:
		return fmt.Sprintf("resize %d %d", a.Width, a.Height)
	default:
		return string(a.Kind)
	}
}
