// Package ecs provides ECS adapters for the dragdrop engine.
//
// The primary adapter is [NewDonburiStore], which bridges drag lifecycle
// events (started, moved, ended, cancelled) into a [Donburi] world as typed
// events. Subscribe to [DragEventType] in your ECS systems to receive them.
//
// Usage:
//
//	engine := dragdrop.NewEngine(dragdrop.Config{
//		Store: ecs.NewDonburiStore(world),
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
