package launch

import (
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func testLauncher() *Launcher {
	return New(zerolog.Nop())
}

func TestStart_ReturnsPIDWithoutWaiting(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	pid, err := testLauncher().Start([]string{"sleep", "0.1"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if pid <= 0 {
		t.Fatalf("expected positive pid, got %d", pid)
	}
}

func TestStart_EmptyCommand(t *testing.T) {
	if _, err := testLauncher().Start(nil); err == nil {
		t.Fatalf("expected error for empty command")
	}
}

func TestStart_MissingExecutable(t *testing.T) {
	if _, err := testLauncher().Start([]string{"definitely-not-a-real-binary-xlaunch"}); err == nil {
		t.Fatalf("expected error for missing executable")
	}
}

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"firefox", []string{"firefox"}},
		{"gedit --new-window notes.txt", []string{"gedit", "--new-window", "notes.txt"}},
		{`sh -c 'echo hi'`, []string{"sh", "-c", "echo hi"}},
		{`code "my project"`, []string{"code", "my project"}},
		{`grep a\ b`, []string{"grep", "a b"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
	}
	for _, tt := range tests {
		got, err := SplitCommandLine(tt.in)
		if err != nil {
			t.Fatalf("SplitCommandLine(%q): %v", tt.in, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("SplitCommandLine(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitCommandLine_Errors(t *testing.T) {
	for _, in := range []string{`foo 'bar`, `foo "bar`, `foo \`} {
		if _, err := SplitCommandLine(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestListExecutables(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "runnable"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "plain.txt"), []byte("data"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got := ListExecutables([]string{dir, filepath.Join(dir, "does-not-exist")})
	want := []string{"runnable"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListExecutables = %v, want %v", got, want)
	}
}
