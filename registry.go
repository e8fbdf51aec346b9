package willowxr

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// HoldFlags records which hands are currently engaged with an object.
type HoldFlags uint8

const (
	HeldLeft  HoldFlags = 1 << iota // left hand, scaling role only
	HeldRight                       // right hand, translation owner
)

// HoldFlagFor returns the flag bit for h.
func HoldFlagFor(h Hand) HoldFlags {
	if h == HandLeft {
		return HeldLeft
	}
	return HeldRight
}

func (f HoldFlags) String() string {
	switch f {
	case 0:
		return "none"
	case HeldLeft:
		return "left"
	case HeldRight:
		return "right"
	case HeldLeft | HeldRight:
		return "both"
	}
	return fmt.Sprintf("HoldFlags(%d)", uint8(f))
}

// SpawnedObject is a grabbable object owned by a SpawnRegistry. Its radius
// is fixed at spawn time; only the node's scale changes afterwards.
type SpawnedObject struct {
	ID     uint32
	Node   *Node
	radius float64
	heldBy HoldFlags
}

// Radius returns the bounding radius in object-local space.
func (o *SpawnedObject) Radius() float64 {
	return o.radius
}

// Scale returns the object's uniform scale factor.
func (o *SpawnedObject) Scale() float64 {
	return o.Node.Scale[0]
}

// ScaledRadius returns the bounding radius in world units.
func (o *SpawnedObject) ScaledRadius() float64 {
	return o.radius * o.Scale()
}

// Position returns the object's world-space position.
func (o *SpawnedObject) Position() mgl64.Vec3 {
	return o.Node.WorldPosition()
}

// HeldBy returns which hands are engaged with the object.
func (o *SpawnedObject) HeldBy() HoldFlags {
	return o.heldBy
}

// SpawnRegistry owns the live set of spawned objects, in insertion order.
// There is no removal operation.
type SpawnRegistry struct {
	scene   *Scene
	radius  float64
	color   Color
	objects []*SpawnedObject
	nextID  uint32

	// OnSpawn, if set, is called after each spawn.
	OnSpawn func(*SpawnedObject)
}

// NewSpawnRegistry creates a registry that adds spawned objects to scene's
// world and gives each the bounding radius r.
func NewSpawnRegistry(scene *Scene, r float64) *SpawnRegistry {
	return &SpawnRegistry{
		scene:  scene,
		radius: r,
		color:  Color{R: 0.2, G: 0.6, B: 1, A: 1},
	}
}

// Spawn creates an object at the given world pose with unit scale and no
// holder, appends it to the live set and adds its node to the world.
func (r *SpawnRegistry) Spawn(position mgl64.Vec3, orientation mgl64.Quat) *SpawnedObject {
	r.nextID++
	node := NewSphere(fmt.Sprintf("spawned_%d", r.nextID), r.radius, r.color)
	node.Position = position
	node.Rotation = orientation
	obj := &SpawnedObject{ID: r.nextID, Node: node, radius: r.radius}
	node.UserData = obj
	r.objects = append(r.objects, obj)
	r.scene.AddToWorld(node)

	r.scene.emit(InteractionEvent{
		Type:     EventSpawn,
		Hand:     HandLeft,
		ObjectID: obj.ID,
		EntityID: node.EntityID,
		Position: position,
		Scale:    1,
	})
	if r.OnSpawn != nil {
		r.OnSpawn(obj)
	}
	return obj
}

// Objects returns the live set. The returned slice MUST NOT be mutated.
func (r *SpawnRegistry) Objects() []*SpawnedObject {
	return r.objects
}

// Len returns the number of live objects.
func (r *SpawnRegistry) Len() int {
	return len(r.objects)
}

// Lookup returns the object with the given ID, or nil.
func (r *SpawnRegistry) Lookup(id uint32) *SpawnedObject {
	for _, o := range r.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}
