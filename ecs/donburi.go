package ecs

import (
	"github.com/phanxgames/touchinput"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TouchEventType is the Donburi event type for touch events.
// Subscribe to this in your ECS systems to receive down, move, up and
// enter/exit events for objects bound to an entity.
var TouchEventType = events.NewEventType[touchinput.TouchEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Touch events are published to TouchEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) touchinput.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event touchinput.TouchEvent) {
	TouchEventType.Publish(s.world, event)
}
