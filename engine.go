package barrage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EngineType selects the speed curve of an Engine.
type EngineType uint8

const (
	EngineUniform EngineType = iota // constant speed
	EngineAccel                     // eases in from a slow start
	EngineDecel                     // eases out from a fast start
	EngineQuick                     // short exponential burst, then cruise
)

// String returns the lowercase name of the engine type.
func (t EngineType) String() string {
	switch t {
	case EngineUniform:
		return "uniform"
	case EngineAccel:
		return "accel"
	case EngineDecel:
		return "decel"
	case EngineQuick:
		return "quick"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the type by name.
func (t EngineType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Frames over which each curve runs before holding its final speed.
const (
	accelFrames = 60
	decelFrames = 45
	quickFrames = 12
)

// Engine is a bullet speed profile in distance units per frame. Speed runs
// from From to To over Frames frames, then holds To.
type Engine struct {
	Type   EngineType `yaml:"type"`
	From   float64    `yaml:"from"`
	To     float64    `yaml:"to"`
	Frames int        `yaml:"frames,omitempty"`
}

// UniformEngine moves at a constant speed.
func UniformEngine(speed float64) Engine {
	return Engine{Type: EngineUniform, From: speed, To: speed}
}

// AccelEngine speeds up from from to to.
func AccelEngine(from, to float64) Engine {
	return Engine{Type: EngineAccel, From: from, To: to, Frames: accelFrames}
}

// DecelEngine slows down from from to to.
func DecelEngine(from, to float64) Engine {
	return Engine{Type: EngineDecel, From: from, To: to, Frames: decelFrames}
}

// QuickEngine bursts at from and settles quickly to to.
func QuickEngine(from, to float64) Engine {
	return Engine{Type: EngineQuick, From: from, To: to, Frames: quickFrames}
}

// easing returns the gween curve for the engine type.
func (e Engine) easing() ease.TweenFunc {
	switch e.Type {
	case EngineAccel:
		return ease.InQuad
	case EngineDecel:
		return ease.OutQuad
	case EngineQuick:
		return ease.OutExpo
	default:
		return ease.Linear
	}
}

// duration returns the curve length in frames, at least one.
func (e Engine) duration() int {
	return max(1, e.Frames)
}

// Tween returns a fresh tween for one bullet. Update it by 1 each frame to
// read the current speed.
func (e Engine) Tween() *gween.Tween {
	return gween.New(float32(e.From), float32(e.To), float32(e.duration()), e.easing())
}

// speedAt returns the speed frame frames after launch.
func (e Engine) speedAt(frame int) float64 {
	d := e.duration()
	if frame <= 0 {
		return e.From
	}
	if frame >= d {
		return e.To
	}
	fn := e.easing()
	return float64(fn(float32(frame), float32(e.From), float32(e.To-e.From), float32(d)))
}

// Launch speed ranges, before the kind's speed factor.
var (
	uniformSpeed = Range{Min: 1.5, Max: 2.2}
	decelSpeed   = Range{Min: 2.5, Max: 3.5}
	quickSpeed   = Range{Min: 3.5, Max: 5.0}
)

// engineFor picks the engine for a bullet carrying a child of the given kind.
// Slower kinds get proportionally slower uniform and decelerating engines;
// spinning bullets favor decelerating so their curves tighten. The three
// magnitudes are drawn before the choice so the draw count is fixed.
func engineFor(src Source, kind Kind, spin bool) Engine {
	factor := kind.speedFactor()
	return Select(src,
		Choice[Engine]{Weight: 1.5, Value: UniformEngine(uniformSpeed.Random(src) * factor)},
		Choice[Engine]{Weight: weightIf(kind == KindFinal, 1), Value: AccelEngine(0.5, 3.3)},
		Choice[Engine]{Weight: 0.5 + weightIf(spin, 0.5), Value: DecelEngine(decelSpeed.Random(src)*factor, 0.8)},
		Choice[Engine]{Weight: weightIf(kind == KindNormal, 0.5), Value: QuickEngine(quickSpeed.Random(src), 1.7)},
	)
}
