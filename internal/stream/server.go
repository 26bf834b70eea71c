package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"rewind-ca/internal/core"
	"rewind-ca/internal/history"
	"rewind-ca/internal/life"
)

// Loop owns the history buffer and drives it from a single goroutine: a tick
// channel advances the frontier while playing, and control messages from the
// hub navigate it. Confinement is the concurrency story — the buffer itself
// has no locking.
type Loop struct {
	hub     *Hub
	hist    *history.Buffer
	engine  *life.Engine
	tps     int
	playing bool
}

// NewLoop wires a simulation loop to the given hub.
func NewLoop(hub *Hub, hist *history.Buffer, engine *life.Engine, tps int) *Loop {
	if tps <= 0 {
		tps = 60
	}
	return &Loop{hub: hub, hist: hist, engine: engine, tps: tps}
}

func (l *Loop) step(grid *core.Grid) *core.Grid {
	return life.Step(grid, l.engine)
}

// Run blocks, ticking the simulation and applying control messages. Every
// state change broadcasts a fresh frame.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tps))
	defer ticker.Stop()

	l.broadcastFrame()
	for {
		select {
		case <-ticker.C:
			if !l.playing {
				continue
			}
			l.hist.StepForward(l.step)
			l.broadcastFrame()
		case msg := <-l.hub.Control:
			l.apply(msg)
			l.broadcastFrame()
		}
	}
}

func (l *Loop) apply(msg Control) {
	switch msg.Type {
	case ControlPlay:
		l.playing = true
	case ControlPause:
		l.playing = false
	case ControlStepForward:
		if !l.playing {
			l.hist.StepForward(l.step)
		}
	case ControlStepBackward:
		if !l.playing {
			l.hist.StepBackward()
		}
	case ControlJumpStart:
		if !l.playing {
			l.hist.JumpToStart()
		}
	case ControlJumpEnd:
		if !l.playing {
			l.hist.JumpToEnd()
		}
	default:
		log.Printf("stream: unknown control type %q", msg.Type)
	}
}

func (l *Loop) broadcastFrame() {
	frame := FrameFromSnapshot(l.hist, l.playing)
	payload, err := json.Marshal(frame)
	if err != nil {
		log.Printf("stream: frame encode failed: %v", err)
		return
	}
	select {
	case l.hub.Broadcast <- payload:
	default:
		// Broadcast backlog full; the next frame supersedes this one anyway.
	}
}

// ListenAndServe registers the websocket route on a fresh mux and serves it.
func ListenAndServe(addr string, hub *Hub) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWS(hub, w, r)
	})
	log.Printf("stream: listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
