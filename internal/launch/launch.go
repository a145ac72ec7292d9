package launch

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/rs/zerolog"
)

// Launcher starts application processes detached from the invoking process.
type Launcher struct {
	log zerolog.Logger
}

// New creates a launcher that logs through the given logger.
func New(log zerolog.Logger) *Launcher {
	return &Launcher{log: log}
}

// Start launches argv as a background process in its own session and
// returns its PID immediately, without waiting for the process to reach
// any particular state. The handle is released right away: the launched
// application is never waited on, signalled, or terminated by xlaunch.
func (l *Launcher) Start(argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("launch command is empty")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %q: %w", argv[0], err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		l.log.Warn().Err(err).Int("pid", pid).Msg("failed to release process handle")
	}
	l.log.Debug().Int("pid", pid).Strs("argv", argv).Msg("launched application")
	return pid, nil
}
