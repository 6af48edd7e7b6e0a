package barrage

import (
	"log/slog"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/tanema/gween"
)

// Emitter defaults.
const (
	DefaultMaxBullets = 4096
	DefaultLifetime   = 180
)

// Bullet is a live projectile owned by an Emitter. Bullets returned by a
// BulletFactory are prototypes: the emitter copies them into its pool and
// overwrites the motion fields.
type Bullet struct {
	ID    uint32
	Shape Shape
	Gen   int
	// Position in world units.
	Position v3.Vec
	// Heading is the bullet's orientation; its local +X axis is forward.
	Heading sdf.M44
	// Speed is the launch speed until the first move, then the distance
	// moved on the last frame.
	Speed float64
	// Age counts frames since spawn.
	Age int
	// UserData is copied from the prototype untouched.
	UserData any

	engine  *gween.Tween
	rudder  Rudder
	trigger *Trigger
	volleys int
}

// Forward returns the unit vector the bullet is moving along.
func (b *Bullet) Forward() v3.Vec {
	return b.Heading.MulPosition(v3.Vec{X: 1})
}

// Trigger returns the behavior the bullet runs.
func (b *Bullet) Trigger() *Trigger {
	return b.trigger
}

// EmitterConfig controls an Emitter. The zero value is usable.
type EmitterConfig struct {
	// MaxBullets is the pool size. Spawns are dropped when it is full.
	MaxBullets int
	// Lifetime is how many frames a bullet with a terminal trigger lives.
	Lifetime int
	// Bounds culls bullets farther than this from the origin. 0 disables it.
	Bounds float64
	// Source jitters splash volleys. Nil uses NewSource(1).
	Source Source
	// Sink receives bullet lifecycle events. Optional.
	Sink EventSink
	// Logger receives debug records for pool overflow. Nil discards them.
	Logger *slog.Logger
}

// Emitter steps a behavior tree frame by frame. Every live bullet runs its
// own trigger against its age; firing spawns child bullets carrying the
// child triggers. Emitter is single-threaded.
type Emitter struct {
	config  EmitterConfig
	bullets []Bullet
	alive   int
	queue   []Bullet
	frame   int
	dropped int
	nextID  uint32
	origin  v3.Vec
	active  bool
}

// NewEmitter creates an Emitter with a preallocated pool.
func NewEmitter(cfg EmitterConfig) *Emitter {
	if cfg.MaxBullets <= 0 {
		cfg.MaxBullets = DefaultMaxBullets
	}
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = DefaultLifetime
	}
	if cfg.Source == nil {
		cfg.Source = NewSource(1)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Emitter{
		config:  cfg,
		bullets: make([]Bullet, cfg.MaxBullets),
	}
}

// Start clears the emitter and places a stationary launcher at origin that
// runs root. The launcher appears on the next Update. A nil root leaves the
// emitter idle.
func (e *Emitter) Start(root *Trigger, origin v3.Vec) {
	e.Reset()
	if root == nil {
		return
	}
	e.origin = origin
	e.active = true
	e.queue = append(e.queue, Bullet{
		Gen:      root.Gen,
		Position: origin,
		Heading:  sdf.Identity3d(),
		engine:   UniformEngine(0).Tween(),
		rudder:   NoRudder,
		trigger:  root,
	})
}

// Reset stops the emitter and kills all bullets.
func (e *Emitter) Reset() {
	e.alive = 0
	e.queue = e.queue[:0]
	e.frame = 0
	e.dropped = 0
	e.active = false
}

// IsActive reports whether any bullet is alive or waiting to spawn.
func (e *Emitter) IsActive() bool {
	return e.active && (e.alive > 0 || len(e.queue) > 0)
}

// AliveCount returns the number of live bullets.
func (e *Emitter) AliveCount() int {
	return e.alive
}

// Dropped returns the number of spawns refused because the pool was full.
func (e *Emitter) Dropped() int {
	return e.dropped
}

// Frame returns the number of Update calls since Start.
func (e *Emitter) Frame() int {
	return e.frame
}

// Bullets returns the live bullets. The slice is reused by the next Update;
// do not retain or modify it.
func (e *Emitter) Bullets() []Bullet {
	return e.bullets[:e.alive]
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *Emitter) Config() *EmitterConfig {
	return &e.config
}

// Update advances the simulation by one frame.
func (e *Emitter) Update() {
	if !e.active {
		return
	}
	e.frame++

	// Bullets spawned this frame wait in the queue, so the loop only ever
	// sees bullets that existed when it started.
	i := 0
	for i < e.alive {
		b := &e.bullets[i]
		b.Age++
		e.steer(b)
		e.move(b)

		var removed BulletEventType
		if e.fire(b) {
			removed = BulletBurst
		} else if e.expired(b) {
			removed = BulletExpired
		} else {
			i++
			continue
		}
		e.emit(removed, b)
		// Swap with last alive bullet.
		e.alive--
		e.bullets[i] = e.bullets[e.alive]
	}

	e.flush()
}

// steer turns the heading by the bullet's rudder.
func (e *Emitter) steer(b *Bullet) {
	switch b.rudder.Type {
	case RudderYaw:
		b.Heading = b.Heading.Mul(sdf.RotateZ(b.rudder.Rate))
	case RudderPitch:
		b.Heading = b.Heading.Mul(sdf.RotateY(b.rudder.Rate))
	}
}

// move advances the engine tween by one frame and moves along the heading.
func (e *Emitter) move(b *Bullet) {
	speed, _ := b.engine.Update(1)
	b.Speed = float64(speed)
	b.Position = b.Position.Add(b.Forward().MulScalar(b.Speed))
}

// expired reports whether a bullet has outlived its lifetime or left bounds.
// Only bullets with nothing left to fire age out.
func (e *Emitter) expired(b *Bullet) bool {
	if b.trigger.IsTerminal() && b.Age >= e.config.Lifetime {
		return true
	}
	return e.config.Bounds > 0 && b.Position.Sub(e.origin).Length() > e.config.Bounds
}

// fire runs the bullet's trigger for this frame. It returns true once the
// trigger has finished, at which point the bullet bursts.
func (e *Emitter) fire(b *Bullet) bool {
	t := b.trigger
	if t.IsTerminal() || b.Age < t.Frame {
		return false
	}
	n := max(1, t.Count)

	switch t.Type {
	case TriggerCreator:
		e.volley(b, t, b.Heading)
		return true

	case TriggerXY, TriggerXZ:
		for i := 0; i < n; i++ {
			a := t.Offset - t.Sweep/2 + t.Sweep*(float64(i)+0.5)/float64(n)
			rot := sdf.RotateZ(a)
			if t.Type == TriggerXZ {
				rot = sdf.RotateY(a)
			}
			e.volley(b, t.Creator, b.Heading.Mul(rot))
		}
		return true

	case TriggerYZ:
		for i := 0; i < n; i++ {
			roll := 2 * math.Pi * float64(i) / float64(n)
			e.volley(b, t.Creator, b.Heading.Mul(sdf.RotateX(roll)).Mul(sdf.RotateY(t.Base)))
		}
		return true

	case TriggerRapid:
		if (b.Age-t.Frame)%max(1, t.Interval) != 0 {
			return false
		}
		e.volley(b, t.Creator, b.Heading.Mul(sdf.RotateZ(t.Aim*float64(b.volleys))))
		b.volleys++
		return b.volleys >= n

	case TriggerSplash:
		cone := t.Spread * math.Pi / 48
		for i := 0; i < n; i++ {
			yaw := t.Aim + (e.config.Source.Float64()*2-1)*cone
			pitch := (e.config.Source.Float64()*2 - 1) * cone
			e.volley(b, t.Creator, b.Heading.Mul(sdf.RotateZ(yaw)).Mul(sdf.RotateY(pitch)))
		}
		return true
	}
	return false
}

// volley queues one bullet per child of creator, launched from parent along
// heading.
func (e *Emitter) volley(parent *Bullet, creator *Trigger, heading sdf.M44) {
	if creator == nil || creator.Type != TriggerCreator {
		return
	}
	for i, child := range creator.Children {
		var b Bullet
		if creator.NewBullet != nil {
			b = *creator.NewBullet()
		} else {
			b.Shape = creator.Shape
		}
		b.Gen = parent.Gen + 1
		if i < len(creator.Gens) {
			b.Gen = creator.Gens[i]
		}
		engine := UniformEngine(0)
		if i < len(creator.Engines) {
			engine = creator.Engines[i]
		}
		b.rudder = NoRudder
		if len(creator.Rudders) > 0 {
			b.rudder = creator.Rudders[i%len(creator.Rudders)]
		}
		b.Position = parent.Position
		b.Heading = heading
		b.Age, b.volleys = 0, 0
		b.Speed = engine.speedAt(0)
		b.engine = engine.Tween()
		b.trigger = child
		e.queue = append(e.queue, b)
	}
}

// flush moves queued spawns into the pool.
func (e *Emitter) flush() {
	for i := range e.queue {
		b := &e.queue[i]
		if e.alive >= len(e.bullets) {
			e.dropped++
			e.emit(BulletDropped, b)
			e.config.Logger.Debug("bullet pool full", "frame", e.frame, "gen", b.Gen, "max", len(e.bullets))
			continue
		}
		e.nextID++
		b.ID = e.nextID
		e.bullets[e.alive] = *b
		e.alive++
		e.emit(BulletSpawned, b)
	}
	e.queue = e.queue[:0]
}

// emit forwards an event to the sink, if any.
func (e *Emitter) emit(typ BulletEventType, b *Bullet) {
	if e.config.Sink == nil {
		return
	}
	e.config.Sink.EmitEvent(BulletEvent{
		Type:      typ,
		Frame:     e.frame,
		BulletID:  b.ID,
		Gen:       b.Gen,
		Shape:     b.Shape,
		Speed:     b.Speed,
		Position:  b.Position,
		Direction: b.Forward(),
		UserData:  b.UserData,
	})
}
