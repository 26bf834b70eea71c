// Package history retains a bounded, navigable record of past generations.
package history

import (
	"fmt"

	"rewind-ca/internal/core"
)

// Snapshot is one recorded generation: an immutable grid tagged with its
// monotonically increasing generation number (0 is the seeded grid).
type Snapshot struct {
	Gen  uint64
	Grid *core.Grid
}

// StepFunc computes the successor of a grid. The history buffer calls it when
// the cursor advances past the newest snapshot.
type StepFunc func(*core.Grid) *core.Grid

// Buffer is a fixed-capacity ring of snapshots with a navigation cursor. It
// is never empty after construction. Pushing past capacity evicts the oldest
// snapshot in O(1); the cursor tracks the sliding window, floored at the
// oldest retained snapshot. The buffer is mode-agnostic: play/pause policy
// belongs to the driver, which simply stops calling StepForward while paused.
//
// Buffer is not safe for concurrent use; confine it to one goroutine.
type Buffer struct {
	ring   []Snapshot
	head   int // ring position of the oldest snapshot
	count  int
	cursor int // logical index in [0, count-1]
}

// New constructs a buffer seeded with the initial snapshot, which becomes
// both the oldest and the current entry.
func New(initial Snapshot, capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("history capacity must be at least 1, got %d", capacity)
	}
	if initial.Grid == nil {
		return nil, fmt.Errorf("history requires an initial grid")
	}
	b := &Buffer{ring: make([]Snapshot, capacity)}
	b.ring[0] = initial
	b.count = 1
	return b, nil
}

// Len returns the number of retained snapshots.
func (b *Buffer) Len() int { return b.count }

// Cursor returns the logical index of the snapshot currently in view.
func (b *Buffer) Cursor() int { return b.cursor }

// AtFrontier reports whether the cursor sits on the newest snapshot, i.e.
// whether the next forward step will run the simulation rather than replay.
func (b *Buffer) AtFrontier() bool { return b.cursor == b.count-1 }

// Current returns the snapshot under the cursor. The buffer is never empty,
// so this cannot fail; an out-of-range cursor is an internal invariant breach
// and panics.
func (b *Buffer) Current() Snapshot {
	if b.count == 0 || b.cursor < 0 || b.cursor >= b.count {
		panic(fmt.Sprintf("history cursor %d invalid for %d snapshots", b.cursor, b.count))
	}
	return b.at(b.cursor)
}

// Newest returns the frontier snapshot.
func (b *Buffer) Newest() Snapshot { return b.at(b.count - 1) }

// Push appends a snapshot. When the buffer is full the oldest snapshot is
// evicted and the cursor shifts down with the window, never below 0.
func (b *Buffer) Push(s Snapshot) {
	if b.count < len(b.ring) {
		b.ring[(b.head+b.count)%len(b.ring)] = s
		b.count++
		return
	}
	b.ring[b.head] = s
	b.head = (b.head + 1) % len(b.ring)
	if b.cursor > 0 {
		b.cursor--
	}
}

// StepForward moves the view one generation ahead. Behind the frontier it
// only advances the cursor, replaying an already-recorded state. At the
// frontier it computes the next generation from the newest snapshot, records
// it, and moves the cursor onto it.
func (b *Buffer) StepForward(step StepFunc) {
	if !b.AtFrontier() {
		b.cursor++
		return
	}
	newest := b.Newest()
	b.Push(Snapshot{Gen: newest.Gen + 1, Grid: step(newest.Grid)})
	b.cursor = b.count - 1
}

// StepBackward moves the cursor one snapshot back, clamped at the oldest.
// It never simulates.
func (b *Buffer) StepBackward() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// JumpToStart moves the cursor to the oldest retained snapshot.
func (b *Buffer) JumpToStart() { b.cursor = 0 }

// JumpToEnd moves the cursor to the frontier.
func (b *Buffer) JumpToEnd() { b.cursor = b.count - 1 }

func (b *Buffer) at(i int) Snapshot {
	return b.ring[(b.head+i)%len(b.ring)]
}
