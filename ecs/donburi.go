// Package ecs provides ECS adapters for dragdrop.
package ecs

import (
	"github.com/phanxgames/dragdrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEventType is the Donburi event type for dragdrop lifecycle events.
// Subscribe to this in your ECS systems to receive started, moved, ended and
// cancelled drags.
var DragEventType = events.NewEventType[dragdrop.DragEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Drag
// events are queued on DragEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) dragdrop.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dragdrop.DragEvent) {
	DragEventType.Publish(s.world, event)
}
