// Package ecs provides ECS adapters for barrage's bullet event stream.
//
// The primary adapter is [NewDonburiSink], which bridges emitter lifecycle
// events (spawned, burst, expired, dropped) into a [Donburi] world as typed
// events. Subscribe to [BulletEventType] in your ECS systems to receive them,
// for example to create an entity per spawned bullet. [SubscribeBullets]
// does the same for only the event types you list.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	emitter := barrage.NewEmitter(barrage.EmitterConfig{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
