package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// ControllerKind identifies a discrete controller button event.
type ControllerKind uint8

const (
	SelectStart  ControllerKind = iota // trigger pressed
	SqueezeStart                       // grip pressed
)

func (k ControllerKind) String() string {
	if k == SelectStart {
		return "select"
	}
	return "squeeze"
}

// ControllerEvent is a button press on one hand's controller.
type ControllerEvent struct {
	Hand Hand
	Kind ControllerKind
}

func (ControllerEvent) isMessage() {}

var yAxis = mgl64.Vec3{0, 1, 0}

// SetActionTarget sets the node that controller buttons move. Select turns
// it about its Y axis (right hand positive, left negative); squeeze lifts
// (right) or lowers (left) it along its local Y.
func (ix *Interaction) SetActionTarget(n *Node) {
	ix.actionTarget = n
}

// ActionTarget returns the node controller buttons move, or nil.
func (ix *Interaction) ActionTarget() *Node {
	return ix.actionTarget
}

// HandleController applies a controller button event. Without an action
// target the event is dropped.
func (ix *Interaction) HandleController(ev ControllerEvent) {
	if !ev.Hand.valid() {
		return
	}
	ix.startAction(ev.Hand, ev.Kind)
}

// startAction tweens the action target for a select or squeeze by h and
// emits the matching event.
func (ix *Interaction) startAction(h Hand, kind ControllerKind) {
	target := ix.actionTarget
	if target == nil || target.IsDisposed() {
		ix.scene.debugf("%s %s: no action target", h, kind)
		return
	}
	sign := 1.0
	if h == HandLeft {
		sign = -1
	}
	dur := float32(ix.cfg.ActionDuration)
	evType := EventSelect
	switch kind {
	case SelectStart:
		angle := sign * mgl64.DegToRad(ix.cfg.RotateStep)
		ix.tweens = append(ix.tweens, TweenRotate(target, yAxis, angle, dur, ease.OutCubic))
	case SqueezeStart:
		evType = EventSqueeze
		ix.tweens = append(ix.tweens, TweenTranslate(target, yAxis.Mul(sign*ix.cfg.LiftStep), dur, ease.OutCubic))
	default:
		return
	}
	ix.scene.emit(InteractionEvent{
		Type:     evType,
		Hand:     h,
		EntityID: target.EntityID,
		Position: target.WorldPosition(),
		Scale:    target.Scale[0],
	})
}

// updateTweens advances running controller actions and drops finished ones.
func (ix *Interaction) updateTweens(dt float64) {
	live := ix.tweens[:0]
	for _, g := range ix.tweens {
		g.Update(float32(dt))
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(ix.tweens); i++ {
		ix.tweens[i] = nil
	}
	ix.tweens = live
}

// ActiveTweens returns how many controller actions are still animating.
func (ix *Interaction) ActiveTweens() int {
	return len(ix.tweens)
}
