// Package ecs provides ECS adapters for touchinput's event dispatch.
//
// The primary adapter is [NewDonburiStore], which bridges touch events into
// a [Donburi] world as typed events. Objects take part when their EntityID
// is non-zero. Subscribe to [TouchEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	input.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
