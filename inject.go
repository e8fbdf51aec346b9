package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
)

type syntheticKind uint8

const (
	synthMove syntheticKind = iota
	synthPinchStart
	synthPinchEnd
	synthSelect
	synthSqueeze
)

// syntheticHandEvent represents a single injected hand event.
type syntheticHandEvent struct {
	kind     syntheticKind
	hand     Hand
	position mgl64.Vec3
}

// InjectMove queues a fingertip move for h. The tracker must implement
// HandMover; otherwise the event is logged and dropped when consumed.
func (ix *Interaction) InjectMove(h Hand, position mgl64.Vec3) {
	ix.injectQueue = append(ix.injectQueue, syntheticHandEvent{kind: synthMove, hand: h, position: position})
}

// InjectPinchStart queues a pinch-start for h.
func (ix *Interaction) InjectPinchStart(h Hand) {
	ix.injectQueue = append(ix.injectQueue, syntheticHandEvent{kind: synthPinchStart, hand: h})
}

// InjectPinchEnd queues a pinch-end for h.
func (ix *Interaction) InjectPinchEnd(h Hand) {
	ix.injectQueue = append(ix.injectQueue, syntheticHandEvent{kind: synthPinchEnd, hand: h})
}

// InjectPinch is a convenience that queues a pinch-start followed by a
// pinch-end. Consumes two frames.
func (ix *Interaction) InjectPinch(h Hand) {
	ix.InjectPinchStart(h)
	ix.InjectPinchEnd(h)
}

// InjectController queues a controller button event for h.
func (ix *Interaction) InjectController(h Hand, kind ControllerKind) {
	k := synthSelect
	if kind == SqueezeStart {
		k = synthSqueeze
	}
	ix.injectQueue = append(ix.injectQueue, syntheticHandEvent{kind: k, hand: h})
}

// InjectMoveTo queues a fingertip move from the hand's current position to
// to, linearly interpolated over frames moves (minimum 1).
func (ix *Interaction) InjectMoveTo(h Hand, to mgl64.Vec3, frames int) {
	if frames < 1 {
		frames = 1
	}
	from := to
	if p, ok := ix.fingertip(h); ok {
		from = p.Position
	}
	// Pending moves for h are applied first, so start from the last one.
	for i := len(ix.injectQueue) - 1; i >= 0; i-- {
		e := ix.injectQueue[i]
		if e.kind == synthMove && e.hand == h {
			from = e.position
			break
		}
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		ix.InjectMove(h, from.Add(to.Sub(from).Mul(t)))
	}
}

// InjectPending returns the number of injected events not yet consumed.
func (ix *Interaction) InjectPending() int {
	return len(ix.injectQueue)
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (ix *Interaction) processInjectedInput() bool {
	if len(ix.injectQueue) == 0 {
		return false
	}
	evt := ix.injectQueue[0]
	copy(ix.injectQueue, ix.injectQueue[1:])
	ix.injectQueue = ix.injectQueue[:len(ix.injectQueue)-1]

	switch evt.kind {
	case synthMove:
		mover, ok := ix.hands.(HandMover)
		if !ok {
			ix.scene.logf("inject: tracker %T cannot be moved", ix.hands)
			return true
		}
		mover.SetFingertip(evt.hand, evt.position)
	case synthPinchStart:
		ix.Push(PinchEvent{Hand: evt.hand, Kind: PinchStart})
	case synthPinchEnd:
		ix.Push(PinchEvent{Hand: evt.hand, Kind: PinchEnd})
	case synthSelect:
		ix.Push(ControllerEvent{Hand: evt.hand, Kind: SelectStart})
	case synthSqueeze:
		ix.Push(ControllerEvent{Hand: evt.hand, Kind: SqueezeStart})
	}
	return true
}
