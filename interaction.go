package willowxr

import (
	"time"
)

// Message is an inbound message for Interaction: PinchEvent,
// ControllerEvent or Tick.
type Message interface {
	isMessage()
}

// PinchEvent is a pinch gesture event for one hand.
type PinchEvent struct {
	Hand Hand
	Kind PinchKind
}

func (PinchEvent) isMessage() {}

// Tick advances one rendered frame by DT seconds.
type Tick struct {
	DT float64
}

func (Tick) isMessage() {}

// Interaction wires the hand-tracking source and the pinch event stream to
// the grab controllers, the spawn registry and the two-hand scaler, and
// drives the per-frame update. It owns all interaction state; nothing is
// global.
//
// Interaction is not safe for concurrent use. Input gathered on another
// goroutine must be handed over as messages and consumed with Process on
// the frame goroutine.
type Interaction struct {
	scene *Scene
	hands HandTracker
	cfg   Config

	registry    *SpawnRegistry
	detector    *ProximityDetector
	scaler      *TwoHandScaler
	controllers [numHands]*GrabController
	models      [numHands]HandModelStyle

	queue       []Message
	injectQueue []syntheticHandEvent
	testRunner  *TestRunner

	actionTarget *Node
	tweens       []*TweenGroup

	// OnSnapshot is called by a test runner "snapshot" step, after the
	// runner records the state. The desktop simulator uses it to queue a
	// screenshot.
	OnSnapshot func(label string)

	frameEvents int
}

// NewInteraction creates the interaction core for scene, reading fingertip
// poses from hands. Zero config fields take their defaults.
func NewInteraction(scene *Scene, hands HandTracker, cfg Config) *Interaction {
	cfg = cfg.withDefaults()
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	registry := NewSpawnRegistry(scene, cfg.SpawnRadius)
	ix := &Interaction{
		scene:    scene,
		hands:    hands,
		cfg:      cfg,
		registry: registry,
		detector: NewProximityDetector(registry),
		scaler:   &TwoHandScaler{MinScale: cfg.MinScale},
	}
	for h := Hand(0); h < numHands; h++ {
		ix.controllers[h] = newGrabController(h, ix)
	}
	return ix
}

// Scene returns the scene the interaction acts on.
func (ix *Interaction) Scene() *Scene { return ix.scene }

// Hands returns the hand-tracking source.
func (ix *Interaction) Hands() HandTracker { return ix.hands }

// Config returns the effective configuration.
func (ix *Interaction) Config() Config { return ix.cfg }

// Registry returns the spawn registry.
func (ix *Interaction) Registry() *SpawnRegistry { return ix.registry }

// Detector returns the proximity detector.
func (ix *Interaction) Detector() *ProximityDetector { return ix.detector }

// Scaler returns the two-hand scaler.
func (ix *Interaction) Scaler() *TwoHandScaler { return ix.scaler }

// Controller returns the grab controller for h.
func (ix *Interaction) Controller(h Hand) *GrabController {
	if !h.valid() {
		return nil
	}
	return ix.controllers[h]
}

// HandModel returns the current visualisation style for h.
func (ix *Interaction) HandModel(h Hand) HandModelStyle {
	if !h.valid() {
		return HandModelBoxes
	}
	return ix.models[h]
}

// fingertip reads h's index tip from the tracker, treating non-finite data
// as untracked.
func (ix *Interaction) fingertip(h Hand) (Pose, bool) {
	p, ok := ix.hands.Fingertip(h)
	if !ok || !finiteVec(p.Position) {
		return Pose{}, false
	}
	if p.Orientation.Len() == 0 {
		p.Orientation = IdentityPose().Orientation
	}
	return p, true
}

// syncAnchors moves each fingertip anchor to the tracked pose. Untracked
// hands keep their last pose, so held objects stay put.
func (ix *Interaction) syncAnchors() {
	for h := Hand(0); h < numHands; h++ {
		if p, ok := ix.fingertip(h); ok {
			ix.scene.anchors[h].SetPose(p)
		}
	}
}

// HandlePinch dispatches a pinch event to the hand's grab controller.
// Every pinch-end also advances that hand's model style, and a right-hand
// pinch-end turns the action target as a right select would.
func (ix *Interaction) HandlePinch(ev PinchEvent) GrabOutcome {
	if !ev.Hand.valid() || ev.Kind > PinchEnd {
		return OutcomeIgnored
	}
	ix.frameEvents++
	ix.syncAnchors()
	c := ix.controllers[ev.Hand]
	if ev.Kind == PinchStart {
		out := c.PinchStart()
		ix.scene.debugf("%s pinchstart: %s", ev.Hand, out)
		return out
	}
	ix.models[ev.Hand] = ix.models[ev.Hand].Next()
	released := c.PinchEnd()
	if ev.Hand == HandRight {
		ix.startAction(HandRight, SelectStart)
	}
	if released {
		ix.scene.debugf("%s pinchend: released", ev.Hand)
		return OutcomeReleased
	}
	return OutcomeIgnored
}

// Push queues a message for the next Process call.
func (ix *Interaction) Push(msg Message) {
	ix.queue = append(ix.queue, msg)
}

// Pending returns the number of queued messages.
func (ix *Interaction) Pending() int {
	return len(ix.queue)
}

// Process handles every queued message in arrival order. Messages pushed
// while processing are handled in the same call.
func (ix *Interaction) Process() {
	for i := 0; i < len(ix.queue); i++ {
		switch m := ix.queue[i].(type) {
		case PinchEvent:
			ix.HandlePinch(m)
		case ControllerEvent:
			ix.frameEvents++
			ix.HandleController(m)
		case Tick:
			ix.Tick(m.DT)
		}
		ix.queue[i] = nil
	}
	ix.queue = ix.queue[:0]
}

// Tick runs one frame: fingertip anchors follow the tracker, an active
// scaling session recomputes its scale, controller actions advance and the
// scene refreshes its transforms.
func (ix *Interaction) Tick(dt float64) {
	var t0 time.Time
	if ix.scene.debug {
		t0 = time.Now()
	}

	ix.syncAnchors()
	var stats debugStats
	if ix.scaler.Active() {
		l, lok := ix.fingertip(HandLeft)
		r, rok := ix.fingertip(HandRight)
		if lok && rok {
			if scale, ok := ix.scaler.Update(l.Position, r.Position); ok {
				obj := ix.scaler.session.Object
				ix.scene.emit(InteractionEvent{
					Type:     EventScale,
					Hand:     HandLeft,
					ObjectID: obj.ID,
					EntityID: obj.Node.EntityID,
					Position: obj.Position(),
					Scale:    scale,
				})
				stats.scaling = true
				stats.scale = scale
			}
		}
	}
	ix.updateTweens(dt)
	ix.scene.Update(dt)

	if ix.scene.debug {
		stats.eventCount = ix.frameEvents
		stats.objectCount = ix.registry.Len()
		stats.tickTime = time.Since(t0)
		ix.scene.debugLog(stats)
	}
	ix.frameEvents = 0
}

// Update runs one full frame at the configured tick rate: the test runner
// step, one injected input event, every queued message, then Tick.
func (ix *Interaction) Update() {
	if ix.testRunner != nil {
		ix.testRunner.step(ix)
	}
	ix.processInjectedInput()
	ix.Process()
	ix.Tick(1 / float64(ix.cfg.TickRate))
}
