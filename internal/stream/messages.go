package stream

import "rewind-ca/internal/history"

// Control message types accepted from clients.
const (
	ControlPlay         = "play"
	ControlPause        = "pause"
	ControlStepForward  = "step_forward"
	ControlStepBackward = "step_backward"
	ControlJumpStart    = "jump_start"
	ControlJumpEnd      = "jump_end"
)

// Control is the JSON structure for incoming client messages.
type Control struct {
	Type string `json:"type"`
}

// Frame carries one snapshot to clients. Cells holds one byte per cell in
// row-major order, 1 for alive; encoding/json transports it as base64.
type Frame struct {
	Gen        uint64 `json:"generation"`
	Cursor     int    `json:"cursor"`
	Snapshots  int    `json:"snapshots"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Population int    `json:"population"`
	Playing    bool   `json:"playing"`
	Cells      []byte `json:"cells"`
}

// FrameFromSnapshot builds the outbound frame for the buffer's current view.
func FrameFromSnapshot(buf *history.Buffer, playing bool) Frame {
	snap := buf.Current()
	cells := make([]byte, snap.Grid.Len())
	for i := range cells {
		if snap.Grid.Alive(i) {
			cells[i] = 1
		}
	}
	return Frame{
		Gen:        snap.Gen,
		Cursor:     buf.Cursor(),
		Snapshots:  buf.Len(),
		Width:      snap.Grid.W(),
		Height:     snap.Grid.H(),
		Population: snap.Grid.Population(),
		Playing:    playing,
		Cells:      cells,
	}
}
