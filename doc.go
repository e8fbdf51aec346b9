// Package willowxr is the hand-tracking interaction core of a WebXR-style
// demo: pinch to grab, pinch with the other hand to spawn, and pinch with
// both hands to scale.
//
// The package is renderer-agnostic. It keeps a small retained 3D scene
// graph (one flat [Node] struct for every node type, with quaternion
// rotation and per-axis scale), reads fingertip poses from a [HandTracker] and
// consumes pinch events. The desktop simulator in willowxr/sim draws the
// scene with Ebitengine; the ECS bridge lives in willowxr/ecs.
//
// # Quick start
//
//	scene := willowxr.NewScene()
//	hands := willowxr.NewSimulatedHands()
//	ix := willowxr.NewInteraction(scene, hands, willowxr.DefaultConfig())
//
//	// each frame:
//	ix.Push(willowxr.PinchEvent{Hand: willowxr.HandRight, Kind: willowxr.PinchStart})
//	ix.Update()
//
// # Hand roles
//
// The right hand is the grabber: a pinch-start within an object's scaled
// bounding radius parents the object to the right fingertip until
// pinch-end. The left hand spawns a new object at its fingertip, unless it
// pinches the object the right hand is holding, in which case a two-hand
// scaling session starts: every frame the object's uniform scale becomes
//
//	initialScale + currentDistance/initialDistance - 1
//
// where the distances are between the two fingertips. Releasing either
// pinch ends the session and the object keeps its last scale.
//
// # Events
//
// Every grab, release, spawn and scale is reported as an [InteractionEvent]
// to the optional [EntityStore] and to callbacks registered with
// [Scene.On], [Scene.OnEvent], [Scene.OnGrab], [Scene.OnRelease] and
// [Scene.OnScale].
//
// # Threading
//
// Everything runs on the frame goroutine. Pinch events and ticks are
// messages ([PinchEvent], [ControllerEvent], [Tick]) processed in arrival
// order, with scaling applied after the frame's pinch events. Asset loads
// run on their own goroutines and are applied during [Scene.Update].
//
// # Scripts
//
// [LoadTestScript] reads a JSON list of steps (move, pinchstart, pinchend,
// pinch, select, squeeze, wait, snapshot) that a [TestRunner] feeds through
// the inject queue one event per frame. cmd/grabreplay runs such scripts
// headlessly.
package willowxr
