package willowxr

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	Hand     Hand
	ObjectID uint32
	EntityID uint32
	Position mgl64.Vec3
	// Scale is the object's uniform scale after the event.
	Scale float64
}

// Scene owns the world node tree, one fingertip anchor per hand, and the
// plumbing the interaction core talks to: entity store, asset completions
// and debug output.
type Scene struct {
	world    *Node
	anchors  [numHands]*Node
	store    EntityStore
	handlers handlerRegistry
	debug    bool
	logOut   io.Writer

	// Asset loading: results arrive from loader goroutines and are applied
	// on the frame thread during Update.
	assets        chan assetResult
	assetWake     chan struct{}
	pendingAssets atomic.Int32

	frame uint64
}

// NewScene creates a scene with a world root and a fingertip anchor per hand.
func NewScene() *Scene {
	world := NewContainer("world")
	s := &Scene{
		world:     world,
		logOut:    os.Stderr,
		assets:    make(chan assetResult, assetQueueCap),
		assetWake: make(chan struct{}, 1),
	}
	for h := Hand(0); h < numHands; h++ {
		a := NewAnchor(h.String() + "_index_tip")
		world.AddChild(a)
		s.anchors[h] = a
	}
	return s
}

// World returns the scene's world root node.
func (s *Scene) World() *Node {
	return s.world
}

// Fingertip returns the anchor node that follows the given hand's index tip.
// Nodes parented to it move with the hand.
func (s *Scene) Fingertip(h Hand) *Node {
	if !h.valid() {
		return nil
	}
	return s.anchors[h]
}

// AddToWorld attaches n directly under the world root.
func (s *Scene) AddToWorld(n *Node) {
	s.world.AddChild(n)
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Update applies finished asset loads, runs per-node OnUpdate callbacks and
// refreshes cached world transforms. dt is the frame delta in seconds.
func (s *Scene) Update(dt float64) {
	s.drainAssets()
	walkUpdate(s.world, dt)
	updateWorldTransform(s.world, mgl64.Ident4(), false)
	s.frame++
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// interaction events and per-frame stats are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug mode is on.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// SetLogOutput redirects debug and error lines (stderr by default).
// A nil writer discards them.
func (s *Scene) SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.logOut = w
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// emit forwards an interaction event to the entity store, if any, and then
// to the registered callbacks.
func (s *Scene) emit(ev InteractionEvent) {
	if s.debug {
		s.debugf("event %s hand=%s object=%d scale=%.3f", ev.Type, ev.Hand, ev.ObjectID, ev.Scale)
	}
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
	s.handlers.dispatch(ev)
}
