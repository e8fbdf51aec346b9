package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/willowxr"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for willowxr interaction events.
// Subscribe to this in your ECS systems to receive spawn, grab, release and
// scaling events.
var InteractionEventType = events.NewEventType[willowxr.InteractionEvent]()

// Object mirrors one spawned object inside the ECS world.
type Object struct {
	ID       uint32
	Position mgl64.Vec3
	Scale    float64
	HeldBy   willowxr.HoldFlags
}

// ObjectComponent is attached to the entity created for each spawned object.
var ObjectComponent = donburi.NewComponentType[Object]()

// Store is an EntityStore backed by a Donburi world. Besides publishing
// every event, it keeps an Object entity per spawned object up to date.
type Store struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *Store {
	return &Store{world: world, entities: make(map[uint32]donburi.Entity)}
}

// EmitEvent implements willowxr.EntityStore.
func (s *Store) EmitEvent(event willowxr.InteractionEvent) {
	s.track(event)
	InteractionEventType.Publish(s.world, event)
}

// Entity returns the entity mirroring the object with the given ID.
func (s *Store) Entity(objectID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[objectID]
	if !ok || !s.world.Valid(e) {
		return 0, false
	}
	return e, true
}

// track keeps the Object components in step with the event stream.
func (s *Store) track(ev willowxr.InteractionEvent) {
	if ev.ObjectID == 0 {
		return
	}
	if ev.Type == willowxr.EventSpawn {
		e := s.world.Create(ObjectComponent)
		ObjectComponent.SetValue(s.world.Entry(e), Object{
			ID:       ev.ObjectID,
			Position: ev.Position,
			Scale:    ev.Scale,
		})
		s.entities[ev.ObjectID] = e
		return
	}
	e, ok := s.Entity(ev.ObjectID)
	if !ok {
		return
	}
	obj := ObjectComponent.Get(s.world.Entry(e))
	obj.Position = ev.Position
	obj.Scale = ev.Scale
	flag := willowxr.HoldFlagFor(ev.Hand)
	switch ev.Type {
	case willowxr.EventGrab, willowxr.EventScaleStart:
		obj.HeldBy |= flag
	case willowxr.EventRelease:
		obj.HeldBy &^= flag
	case willowxr.EventScaleEnd:
		obj.HeldBy &^= willowxr.HeldLeft
	}
}
