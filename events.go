package barrage

import v3 "github.com/deadsy/sdfx/vec/v3"

// BulletEventType identifies what happened to a bullet.
type BulletEventType uint8

const (
	BulletSpawned BulletEventType = iota // added to the emitter pool
	BulletBurst                          // trigger finished firing, bullet removed
	BulletExpired                        // lifetime or bounds exceeded, bullet removed
	BulletDropped                        // spawn refused because the pool was full
)

// String returns the lowercase name of the event type.
func (t BulletEventType) String() string {
	switch t {
	case BulletSpawned:
		return "spawned"
	case BulletBurst:
		return "burst"
	case BulletExpired:
		return "expired"
	case BulletDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// BulletEvent carries one bullet lifecycle change to an EventSink.
type BulletEvent struct {
	Type      BulletEventType
	Frame     int
	BulletID  uint32
	Gen       int
	Shape     Shape
	Speed     float64
	Position  v3.Vec
	Direction v3.Vec
	UserData  any
}

// EventSink is the interface for optional ECS integration.
// When set on an Emitter, bullet lifecycle events are forwarded to it.
type EventSink interface {
	EmitEvent(event BulletEvent)
}
