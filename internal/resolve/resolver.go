package resolve

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/1broseidon/xlaunch/internal/platform"
)

// ErrTimeout is returned when a process produced no visible window before
// the resolver's deadline. A process that never maps a window (a daemon,
// or a command that failed after exec) always ends here; the two cases are
// indistinguishable from the window system's point of view.
var ErrTimeout = errors.New("no visible window before timeout")

// Default poll bounds, used when Options leaves them unset.
const (
	DefaultTimeout      = 10 * time.Second
	DefaultPollInterval = 200 * time.Millisecond
)

// WindowLister is the slice of the platform backend the resolver needs.
type WindowLister interface {
	WindowsForPID(pid int) ([]platform.Window, error)
}

// Options bound the resolver's poll loop. Both values are explicit
// construction-time parameters; there is no ambient timeout state.
type Options struct {
	Timeout      time.Duration // total wait budget
	PollInterval time.Duration // sleep between queries
}

// Resolver maps a launched process to the window it creates by polling the
// window system. Application startup time is unpredictable and window
// creation may lag process creation arbitrarily, so a bounded poll loop is
// used instead of assuming any creation-event protocol.
type Resolver struct {
	lister WindowLister
	opts   Options
	log    zerolog.Logger
}

// New creates a resolver over the given window lister. Unset options fall
// back to the package defaults.
func New(lister WindowLister, opts Options, log zerolog.Logger) *Resolver {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	return &Resolver{lister: lister, opts: opts, log: log}
}

// Resolve polls the window system for a visible window owned by pid. The
// first query happens immediately; subsequent queries are spaced by the
// poll interval until the timeout elapses. When the process owns several
// windows the one with the lowest window ID wins (the lister returns them
// sorted ascending).
func (r *Resolver) Resolve(pid int) (platform.Window, error) {
	deadline := time.Now().Add(r.opts.Timeout)

	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	polls := 0
	for {
		polls++
		windows, err := r.lister.WindowsForPID(pid)
		if err != nil {
			// Query errors are retried like empty results; only the
			// deadline ends the loop.
			r.log.Debug().Err(err).Int("pid", pid).Int("poll", polls).Msg("window query failed")
		} else if len(windows) > 0 {
			win := windows[0]
			r.log.Debug().
				Int("pid", pid).
				Int("poll", polls).
				Uint32("window_id", uint32(win.ID)).
				Str("class", win.AppID).
				Msg("window resolved")
			return win, nil
		}

		if time.Now().After(deadline) {
			return platform.Window{}, fmt.Errorf("no visible window for pid %d after %s (%d polls): %w",
				pid, r.opts.Timeout, polls, ErrTimeout)
		}
		<-ticker.C
	}
}
