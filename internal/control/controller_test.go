package control

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/1broseidon/xlaunch/internal/platform"
)

// countingOps records every backend call so tests can assert the
// exactly-one-call contract.
type countingOps struct {
	calls []string
	fail  bool
}

func (o *countingOps) record(call string) error {
	o.calls = append(o.calls, call)
	if o.fail {
		return fmt.Errorf("backend rejected %s", call)
	}
	return nil
}

func (o *countingOps) Minimize(id platform.WindowID) error { return o.record("minimize") }
func (o *countingOps) Maximize(id platform.WindowID) error { return o.record("maximize") }
func (o *countingOps) Restore(id platform.WindowID) error  { return o.record("restore") }
func (o *countingOps) Move(id platform.WindowID, x, y int) error {
	return o.record(fmt.Sprintf("move %d %d", x, y))
}
func (o *countingOps) Resize(id platform.WindowID, w, h int) error {
	return o.record(fmt.Sprintf("resize %d %d", w, h))
}

func TestApply_ExactlyOneCallPerAction(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{Action{Kind: ActionMinimize}, "minimize"},
		{Action{Kind: ActionMaximize}, "maximize"},
		{Action{Kind: ActionRestore}, "restore"},
		{Action{Kind: ActionMove, X: 100, Y: 200}, "move 100 200"},
		{Action{Kind: ActionResize, Width: 800, Height: 600}, "resize 800 600"},
	}

	for _, tt := range tests {
		ops := &countingOps{}
		c := NewController(ops, zerolog.Nop())
		if err := c.Apply(5, tt.action); err != nil {
			t.Fatalf("apply %s: %v", tt.action, err)
		}
		if len(ops.calls) != 1 || ops.calls[0] != tt.want {
			t.Fatalf("apply %s: calls = %v, want exactly [%s]", tt.action, ops.calls, tt.want)
		}
	}
}

func TestApply_NoneMakesNoCalls(t *testing.T) {
	ops := &countingOps{}
	c := NewController(ops, zerolog.Nop())
	if err := c.Apply(5, Action{}); err != nil {
		t.Fatalf("apply none: %v", err)
	}
	if len(ops.calls) != 0 {
		t.Fatalf("expected zero calls for none, got %v", ops.calls)
	}
}

func TestApply_UnsetHandleRejectedBeforeAnyCall(t *testing.T) {
	ops := &countingOps{}
	c := NewController(ops, zerolog.Nop())
	err := c.Apply(0, Action{Kind: ActionMinimize})
	if !errors.Is(err, ErrNoWindow) {
		t.Fatalf("expected ErrNoWindow, got %v", err)
	}
	if len(ops.calls) != 0 {
		t.Fatalf("expected no backend calls, got %v", ops.calls)
	}
}

func TestApply_NoRetryOnBackendFailure(t *testing.T) {
	ops := &countingOps{fail: true}
	c := NewController(ops, zerolog.Nop())
	if err := c.Apply(5, Action{Kind: ActionMaximize}); err == nil {
		t.Fatalf("expected backend error to propagate")
	}
	if len(ops.calls) != 1 {
		t.Fatalf("expected a single attempt, got %v", ops.calls)
	}
}
