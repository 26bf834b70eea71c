package stream

import (
	"encoding/json"
	"testing"

	"rewind-ca/internal/core"
	"rewind-ca/internal/history"
	"rewind-ca/internal/life"
)

func TestFrameFromSnapshot(t *testing.T) {
	cells := make([]bool, 12)
	cells[0] = true
	cells[7] = true
	g := core.GridFromCells(4, 3, cells)
	buf, err := history.New(history.Snapshot{Gen: 9, Grid: g}, 5)
	if err != nil {
		t.Fatal(err)
	}

	frame := FrameFromSnapshot(buf, true)
	if frame.Gen != 9 || frame.Width != 4 || frame.Height != 3 || !frame.Playing {
		t.Fatalf("unexpected header: %+v", frame)
	}
	if frame.Population != 2 {
		t.Fatalf("expected population 2, got %d", frame.Population)
	}
	if len(frame.Cells) != 12 || frame.Cells[0] != 1 || frame.Cells[7] != 1 || frame.Cells[1] != 0 {
		t.Fatalf("cell payload mismatch: %v", frame.Cells)
	}
}

func TestControlDecoding(t *testing.T) {
	var msg Control
	if err := json.Unmarshal([]byte(`{"type":"step_backward"}`), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != ControlStepBackward {
		t.Fatalf("expected %q, got %q", ControlStepBackward, msg.Type)
	}
}

func TestLoopApplyNavigates(t *testing.T) {
	g, _ := core.NewGrid(4, 4)
	buf, _ := history.New(history.Snapshot{Gen: 0, Grid: g}, 8)
	loop := NewLoop(NewHub(), buf, life.NewEngine(), 60)

	loop.apply(Control{Type: ControlPlay})
	if !loop.playing {
		t.Fatal("play should set the playing flag")
	}

	// Navigation is ignored while playing.
	loop.apply(Control{Type: ControlStepBackward})
	if buf.Cursor() != 0 {
		t.Fatal("navigation must be ignored while playing")
	}

	loop.apply(Control{Type: ControlPause})
	if loop.playing {
		t.Fatal("pause should clear the playing flag")
	}

	loop.apply(Control{Type: ControlStepBackward})
	if buf.Cursor() != 0 {
		t.Fatal("stepping back at the start is a clamped no-op")
	}

	loop.apply(Control{Type: ControlStepForward})
	if buf.Current().Gen != 1 {
		t.Fatalf("paused frontier step should simulate one generation, got %d", buf.Current().Gen)
	}
	loop.apply(Control{Type: ControlJumpStart})
	if buf.Cursor() != 0 {
		t.Fatalf("jump to start should rewind the cursor, got %d", buf.Cursor())
	}
	loop.apply(Control{Type: ControlJumpEnd})
	if !buf.AtFrontier() {
		t.Fatal("jump to end should land on the frontier")
	}
}
