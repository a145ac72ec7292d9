package config

import (
	"fmt"
	"time"

	"github.com/1broseidon/xlaunch/internal/launch"
)

// Config holds the user-tunable settings.
type Config struct {
	// ResolveTimeout is how long to wait for a launched process to map a
	// window, in seconds.
	ResolveTimeout int `yaml:"resolve_timeout"`
	// PollIntervalMS is the window-query poll interval in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`
	// SettleDelay is the pause in seconds between consecutive scripted
	// invocations.
	SettleDelay int `yaml:"settle_delay"`

	LogLevel string `yaml:"log_level"`

	// Display overrides the DISPLAY environment variable when set.
	Display string `yaml:"display,omitempty"`
	// XAuthority overrides the XAUTHORITY environment variable when set.
	XAuthority string `yaml:"xauthority,omitempty"`

	// ExecPaths are the directories scanned for launchable executables.
	ExecPaths []string `yaml:"exec_paths"`
}

// ValidationError reports an invalid configuration value with its
// YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DefaultConfig returns the built-in settings used when no config file
// exists.
func DefaultConfig() *Config {
	return &Config{
		ResolveTimeout: 10,
		PollIntervalMS: 200,
		SettleDelay:    2,
		LogLevel:       "info",
		ExecPaths:      append([]string(nil), launch.DefaultExecPaths...),
	}
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.ResolveTimeout <= 0 {
		return &ValidationError{Path: "resolve_timeout", Err: fmt.Errorf("must be positive, got %d", c.ResolveTimeout)}
	}
	if c.PollIntervalMS <= 0 {
		return &ValidationError{Path: "poll_interval_ms", Err: fmt.Errorf("must be positive, got %d", c.PollIntervalMS)}
	}
	if time.Duration(c.PollIntervalMS)*time.Millisecond > time.Duration(c.ResolveTimeout)*time.Second {
		return &ValidationError{Path: "poll_interval_ms", Err: fmt.Errorf("%dms exceeds resolve_timeout of %ds", c.PollIntervalMS, c.ResolveTimeout)}
	}
	if c.SettleDelay < 0 {
		return &ValidationError{Path: "settle_delay", Err: fmt.Errorf("must not be negative, got %d", c.SettleDelay)}
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("unknown level %q", c.LogLevel)}
	}
	if len(c.ExecPaths) == 0 {
		return &ValidationError{Path: "exec_paths", Err: fmt.Errorf("must list at least one directory")}
	}
	for i, p := range c.ExecPaths {
		if p == "" {
			return &ValidationError{Path: fmt.Sprintf("exec_paths[%d]", i), Err: fmt.Errorf("must not be empty")}
		}
	}
	return nil
}

// ResolveTimeoutDuration returns resolve_timeout as a time.Duration.
func (c *Config) ResolveTimeoutDuration() time.Duration {
	return time.Duration(c.ResolveTimeout) * time.Second
}

// PollIntervalDuration returns poll_interval_ms as a time.Duration.
func (c *Config) PollIntervalDuration() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// SettleDelayDuration returns settle_delay as a time.Duration.
func (c *Config) SettleDelayDuration() time.Duration {
	return time.Duration(c.SettleDelay) * time.Second
}
