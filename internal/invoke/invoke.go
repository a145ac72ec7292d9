package invoke

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/1broseidon/xlaunch/internal/control"
	"github.com/1broseidon/xlaunch/internal/platform"
	"github.com/1broseidon/xlaunch/internal/resolve"
)

// ErrNoCommand marks a request with an empty command vector.
var ErrNoCommand = errors.New("no command given")

// Launcher starts a detached process and reports its PID.
type Launcher interface {
	Start(argv []string) (int, error)
}

// Request is one launch-and-control invocation: the command to start,
// plus an optional action keyword and its trailing arguments.
type Request struct {
	Command    []string
	Action     string
	ActionArgs []string
}

// Result reports what an invocation accomplished.
type Result struct {
	PID     int
	Window  platform.Window
	Applied control.Action
}

// Runner drives the launch, resolve and control stages in order.
type Runner struct {
	launcher   Launcher
	resolver   *resolve.Resolver
	controller *control.Controller
	log        zerolog.Logger
}

func NewRunner(launcher Launcher, resolver *resolve.Resolver, controller *control.Controller, log zerolog.Logger) *Runner {
	return &Runner{
		launcher:   launcher,
		resolver:   resolver,
		controller: controller,
		log:        log,
	}
}

// Run launches the command, waits for its window, then applies the
// requested action. The process is started and its window resolved before
// the action name is validated, so a bad action never prevents the launch;
// the process keeps running and the error reports the resolved window.
func (r *Runner) Run(req Request) (Result, error) {
	if len(req.Command) == 0 {
		return Result{}, ErrNoCommand
	}

	pid, err := r.launcher.Start(req.Command)
	if err != nil {
		return Result{}, fmt.Errorf("launch %q: %w", req.Command[0], err)
	}
	res := Result{PID: pid}

	win, err := r.resolver.Resolve(pid)
	if err != nil {
		return res, err
	}
	res.Window = win

	action, err := control.Parse(req.Action, req.ActionArgs)
	if err != nil {
		return res, err
	}
	res.Applied = action

	if err := r.controller.Apply(win.ID, action); err != nil {
		return res, err
	}

	r.log.Info().
		Int("pid", pid).
		Uint32("window_id", uint32(win.ID)).
		Stringer("action", action).
		Msg("invocation complete")
	return res, nil
}

// SplitArgs divides a raw argument vector into the command and the action.
// The first recognized action keyword after the command head starts the
// action; everything before it is the command, everything after it is the
// action's arguments. Words that merely look action-like inside the
// command are still consumed by the command only if they come first.
func SplitArgs(args []string) (command []string, action string, actionArgs []string) {
	if len(args) == 0 {
		return nil, "", nil
	}
	for i := 1; i < len(args); i++ {
		if control.IsActionName(args[i]) {
			return args[:i], args[i], args[i+1:]
		}
	}
	return args, "", nil
}
