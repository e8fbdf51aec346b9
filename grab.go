package willowxr

// GrabState is a hand's position in the pinch state machine.
type GrabState uint8

const (
	GrabIdle    GrabState = iota // not engaged with any object
	GrabHolding                  // holding (right) or co-scaling (left) an object
)

func (s GrabState) String() string {
	if s == GrabHolding {
		return "holding"
	}
	return "idle"
}

// GrabOutcome reports what a pinch-start did.
type GrabOutcome uint8

const (
	OutcomeNoTarget GrabOutcome = iota // nothing in reach (right hand) or no joint data
	OutcomeGrabbed                     // right hand took ownership
	OutcomeCoScale                     // left hand started a scaling session
	OutcomeSpawned                     // left hand spawned a new object
	OutcomeIgnored                     // event had nothing to act on
	OutcomeReleased                    // pinch-end let go of an object
)

func (o GrabOutcome) String() string {
	switch o {
	case OutcomeNoTarget:
		return "notarget"
	case OutcomeGrabbed:
		return "grabbed"
	case OutcomeCoScale:
		return "coscale"
	case OutcomeSpawned:
		return "spawned"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeReleased:
		return "released"
	default:
		return "unknown"
	}
}

// GrabController runs one hand's pinch state machine. The right hand grabs
// existing objects; the left hand co-scales the object the right hand holds
// or spawns a new one. Only the right hand ever moves an object.
type GrabController struct {
	hand     Hand
	ix       *Interaction
	state    GrabState
	held     *SpawnedObject
	pinching bool
}

func newGrabController(hand Hand, ix *Interaction) *GrabController {
	return &GrabController{hand: hand, ix: ix}
}

// Hand returns the hand this controller serves.
func (c *GrabController) Hand() Hand {
	return c.hand
}

// State returns the current state.
func (c *GrabController) State() GrabState {
	return c.state
}

// Held returns the object the hand is engaged with, or nil.
func (c *GrabController) Held() *SpawnedObject {
	return c.held
}

// Pinching reports whether the last pinch event for this hand was a start.
func (c *GrabController) Pinching() bool {
	return c.pinching
}

// PinchStart handles a pinch-start event for this hand.
func (c *GrabController) PinchStart() GrabOutcome {
	c.pinching = true
	if c.state == GrabHolding {
		c.ix.scene.debugf("%s pinchstart ignored: already holding object %d", c.hand, c.held.ID)
		return OutcomeIgnored
	}
	tip, ok := c.ix.fingertip(c.hand)
	if !ok {
		c.ix.scene.debugf("%s pinchstart: fingertip not tracked", c.hand)
		return OutcomeNoTarget
	}
	if c.hand == HandRight {
		return c.grab(tip)
	}
	return c.engage(tip)
}

// grab is the right-hand policy: take ownership of the nearest object.
func (c *GrabController) grab(tip Pose) GrabOutcome {
	obj := c.ix.detector.FindNearest(tip.Position)
	if obj == nil {
		return OutcomeNoTarget
	}
	obj.Node.Reparent(c.ix.scene.Fingertip(c.hand))
	c.held = obj
	c.state = GrabHolding
	obj.heldBy |= HoldFlagFor(c.hand)
	c.ix.scene.emit(InteractionEvent{
		Type:     EventGrab,
		Hand:     c.hand,
		ObjectID: obj.ID,
		EntityID: obj.Node.EntityID,
		Position: obj.Position(),
		Scale:    obj.Scale(),
	})
	return OutcomeGrabbed
}

// engage is the left-hand policy: co-scale the object the right hand holds,
// otherwise spawn a new object at the fingertip.
func (c *GrabController) engage(tip Pose) GrabOutcome {
	peer := c.ix.controllers[c.hand.Other()]
	obj := c.ix.detector.FindNearest(tip.Position)
	if obj != nil && peer.held == obj {
		if peerTip, ok := c.ix.fingertip(peer.hand); ok {
			dist := tip.Position.Sub(peerTip.Position).Len()
			err := c.ix.scaler.Start(obj, obj.Scale(), dist)
			if err == nil {
				c.held = obj
				c.state = GrabHolding
				obj.heldBy |= HoldFlagFor(c.hand)
				c.ix.scene.emit(InteractionEvent{
					Type:     EventScaleStart,
					Hand:     c.hand,
					ObjectID: obj.ID,
					EntityID: obj.Node.EntityID,
					Position: obj.Position(),
					Scale:    obj.Scale(),
				})
				return OutcomeCoScale
			}
			c.ix.scene.debugf("%s co-scale refused: %v", c.hand, err)
		}
	}
	c.ix.registry.Spawn(tip.Position, tip.Orientation)
	return OutcomeSpawned
}

// PinchEnd handles a pinch-end event. It returns false when the hand was not
// engaged, which makes duplicate events harmless.
func (c *GrabController) PinchEnd() bool {
	c.pinching = false
	if c.state != GrabHolding || c.held == nil {
		c.state = GrabIdle
		c.held = nil
		return false
	}
	c.release()
	return true
}

// release gives up the held object, ends any scaling session on it and, when
// the owner lets go, drops the other hand's scaling role with it.
func (c *GrabController) release() {
	obj := c.held
	c.held = nil
	c.state = GrabIdle

	if c.hand == HandRight && obj.Node.Parent == c.ix.scene.Fingertip(c.hand) {
		obj.Node.Reparent(c.ix.scene.World())
	}
	obj.heldBy &^= HoldFlagFor(c.hand)
	c.ix.scene.emit(InteractionEvent{
		Type:     EventRelease,
		Hand:     c.hand,
		ObjectID: obj.ID,
		EntityID: obj.Node.EntityID,
		Position: obj.Position(),
		Scale:    obj.Scale(),
	})

	if sess, ok := c.ix.scaler.Session(); ok && sess.Object == obj {
		c.ix.scaler.Stop()
		c.ix.scene.emit(InteractionEvent{
			Type:     EventScaleEnd,
			Hand:     c.hand,
			ObjectID: obj.ID,
			EntityID: obj.Node.EntityID,
			Position: obj.Position(),
			Scale:    obj.Scale(),
		})
	}

	if c.hand == HandRight {
		left := c.ix.controllers[HandLeft]
		if left.held == obj {
			left.held = nil
			left.state = GrabIdle
			obj.heldBy &^= HeldLeft
		}
	}
}
