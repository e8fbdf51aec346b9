// Package ecs provides ECS adapters for willowxr's interaction events.
//
// The primary adapter is [NewDonburiStore], which bridges interaction events
// (spawn, grab, release, scaling, controller actions) into a [Donburi] world
// as typed events and keeps an [Object] entity per spawned object.
// Subscribe to [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
