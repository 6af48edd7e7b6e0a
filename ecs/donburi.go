// Package ecs provides ECS adapters for barrage.
package ecs

import (
	"github.com/phanxgames/barrage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BulletEventType is the Donburi event type for barrage bullet events.
// Subscribe to this in your ECS systems to receive spawn, burst, expiry and
// drop notifications.
var BulletEventType = events.NewEventType[barrage.BulletEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Bullet events are published to BulletEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) barrage.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event barrage.BulletEvent) {
	BulletEventType.Publish(s.world, event)
}

// SubscribeBullets registers fn for bullet events of the given types. With no
// types, fn receives every bullet event. Like any subscriber, fn runs when
// BulletEventType's events are processed.
func SubscribeBullets(world donburi.World, fn func(donburi.World, barrage.BulletEvent), types ...barrage.BulletEventType) {
	if len(types) == 0 {
		BulletEventType.Subscribe(world, fn)
		return
	}
	var mask uint32
	for _, t := range types {
		mask |= 1 << t
	}
	BulletEventType.Subscribe(world, func(w donburi.World, e barrage.BulletEvent) {
		if mask&(1<<e.Type) != 0 {
			fn(w, e)
		}
	})
}
