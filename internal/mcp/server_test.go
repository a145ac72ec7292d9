package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/1broseidon/xlaunch/internal/config"
	"github.com/1broseidon/xlaunch/internal/control"
	"github.com/1broseidon/xlaunch/internal/platform"
)

type fakeBackend struct {
	windows map[int][]platform.Window
	calls   []string
}

func (b *fakeBackend) WindowsForPID(pid int) ([]platform.Window, error) {
	return b.windows[pid], nil
}

func (b *fakeBackend) record(call string) error {
	b.calls = append(b.calls, call)
	return nil
}

func (b *fakeBackend) Minimize(id platform.WindowID) error { return b.record("minimize") }
func (b *fakeBackend) Maximize(id platform.WindowID) error { return b.record("maximize") }
func (b *fakeBackend) Restore(id platform.WindowID) error  { return b.record("restore") }
func (b *fakeBackend) Move(id platform.WindowID, x, y int) error {
	return b.record(fmt.Sprintf("move %d %d", x, y))
}
func (b *fakeBackend) Resize(id platform.WindowID, w, h int) error {
	return b.record(fmt.Sprintf("resize %d %d", w, h))
}

type fakeLauncher struct {
	pid  int
	argv []string
}

func (f *fakeLauncher) Start(argv []string) (int, error) {
	f.argv = argv
	return f.pid, nil
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.PollIntervalMS = 10
	return cfg
}

func newTestServer(backend *fakeBackend, launcher *fakeLauncher) *Server {
	return newServerWith(testConfig(), backend, launcher, zerolog.Nop())
}

func TestHandleLaunchApp_MoveAction(t *testing.T) {
	backend := &fakeBackend{windows: map[int][]platform.Window{
		42: {{ID: 7, PID: 42, AppID: "XTerm", Title: "htop"}},
	}}
	launcher := &fakeLauncher{pid: 42}
	s := newTestServer(backend, launcher)

	_, out, err := s.handleLaunchApp(context.Background(), nil, LaunchAppInput{
		Command: "xterm -e htop",
		Action:  "move",
		X:       100,
		Y:       200,
	})
	if err != nil {
		t.Fatalf("launch_app: %v", err)
	}
	if out.PID != 42 || out.WindowID != 7 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if out.AppID != "XTerm" {
		t.Errorf("app_id = %q", out.AppID)
	}
	if want := []string{"xterm", "-e", "htop"}; !reflect.DeepEqual(launcher.argv, want) {
		t.Errorf("launcher argv = %v, want %v", launcher.argv, want)
	}
	if want := []string{"move 100 200"}; !reflect.DeepEqual(backend.calls, want) {
		t.Errorf("backend calls = %v, want %v", backend.calls, want)
	}
}

func TestHandleLaunchApp_QuotedCommand(t *testing.T) {
	backend := &fakeBackend{windows: map[int][]platform.Window{
		42: {{ID: 7, PID: 42}},
	}}
	launcher := &fakeLauncher{pid: 42}
	s := newTestServer(backend, launcher)

	_, _, err := s.handleLaunchApp(context.Background(), nil, LaunchAppInput{
		Command: `sh -c "sleep 60"`,
	})
	if err != nil {
		t.Fatalf("launch_app: %v", err)
	}
	if want := []string{"sh", "-c", "sleep 60"}; !reflect.DeepEqual(launcher.argv, want) {
		t.Errorf("launcher argv = %v, want %v", launcher.argv, want)
	}
	if len(backend.calls) != 0 {
		t.Errorf("expected no window operations, got %v", backend.calls)
	}
}

func TestHandleLaunchApp_BadCommandString(t *testing.T) {
	s := newTestServer(&fakeBackend{}, &fakeLauncher{pid: 42})

	_, _, err := s.handleLaunchApp(context.Background(), nil, LaunchAppInput{
		Command: `xterm "unterminated`,
	})
	if err == nil {
		t.Fatalf("expected error for unterminated quote")
	}
}

func TestHandleControlWindow(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestServer(backend, &fakeLauncher{})

	_, out, err := s.handleControlWindow(context.Background(), nil, ControlWindowInput{
		WindowID: 7,
		Action:   "resize",
		Width:    800,
		Height:   600,
	})
	if err != nil {
		t.Fatalf("control_window: %v", err)
	}
	if out.WindowID != 7 || out.Action != "resize 800 600" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if want := []string{"resize 800 600"}; !reflect.DeepEqual(backend.calls, want) {
		t.Errorf("backend calls = %v, want %v", backend.calls, want)
	}
}

func TestHandleControlWindow_UnknownAction(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestServer(backend, &fakeLauncher{})

	_, _, err := s.handleControlWindow(context.Background(), nil, ControlWindowInput{
		WindowID: 7,
		Action:   "fullscreen",
	})
	if !errors.Is(err, control.ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
	if len(backend.calls) != 0 {
		t.Errorf("expected no backend calls, got %v", backend.calls)
	}
}

func TestHandleControlWindow_ZeroWindowID(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestServer(backend, &fakeLauncher{})

	_, _, err := s.handleControlWindow(context.Background(), nil, ControlWindowInput{
		WindowID: 0,
		Action:   "minimize",
	})
	if !errors.Is(err, control.ErrNoWindow) {
		t.Fatalf("expected ErrNoWindow, got %v", err)
	}
	if len(backend.calls) != 0 {
		t.Errorf("expected no backend calls, got %v", backend.calls)
	}
}

func TestHandleListWindows(t *testing.T) {
	backend := &fakeBackend{windows: map[int][]platform.Window{
		42: {
			{ID: 5, PID: 42, AppID: "firefox", Bounds: platform.Rect{X: 0, Y: 0, Width: 1280, Height: 720}},
			{ID: 9, PID: 42, AppID: "firefox", Title: "Downloads"},
		},
	}}
	s := newTestServer(backend, &fakeLauncher{})

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{PID: 42})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if len(out.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %+v", out)
	}
	if out.Windows[0].WindowID != 5 || out.Windows[0].Width != 1280 {
		t.Errorf("unexpected first window: %+v", out.Windows[0])
	}

	if _, _, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{PID: 0}); err == nil {
		t.Errorf("expected error for non-positive pid")
	}
}

func TestHandleListExecutables_Filter(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"xterm", "xclock", "firefox"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write executable: %v", err)
		}
	}
	cfg := testConfig()
	cfg.ExecPaths = []string{dir}
	s := newServerWith(cfg, &fakeBackend{}, &fakeLauncher{}, zerolog.Nop())

	_, out, err := s.handleListExecutables(context.Background(), nil, ListExecutablesInput{Filter: "x"})
	if err != nil {
		t.Fatalf("list_executables: %v", err)
	}
	if want := []string{"firefox", "xclock", "xterm"}; !reflect.DeepEqual(out.Executables, want) {
		t.Errorf("executables = %v, want %v", out.Executables, want)
	}

	_, out, err = s.handleListExecutables(context.Background(), nil, ListExecutablesInput{Filter: "clock"})
	if err != nil {
		t.Fatalf("list_executables: %v", err)
	}
	if want := []string{"xclock"}; !reflect.DeepEqual(out.Executables, want) {
		t.Errorf("executables = %v, want %v", out.Executables, want)
	}
}
