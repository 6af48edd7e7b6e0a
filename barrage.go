package barrage

import (
	"errors"
	"math"
)

// Kind classifies a formulated node for its parent. The parent uses it to pick
// the engine of the bullet that carries the node; it is never stored in the
// tree.
type Kind uint8

const (
	KindNormal Kind = iota // ring or fan trigger
	KindSlow               // rapid or splash trigger
	KindFinal              // terminal node, fires nothing
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindSlow:
		return "slow"
	case KindFinal:
		return "final"
	default:
		return "unknown"
	}
}

// speedFactor scales engine magnitudes for a bullet carrying a node of kind k.
func (k Kind) speedFactor() float64 {
	switch k {
	case KindFinal:
		return 1.0
	case KindSlow:
		return 0.3
	default:
		return 0.6
	}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a float64 in [Min, Max) drawn from src. A degenerate range
// returns Min without drawing.
func (r Range) Random(src Source) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

// Sentinel errors. Typed errors below unwrap to them so callers can use
// errors.Is for the class and errors.As for the details.
var (
	ErrUnhandledPattern = errors.New("barrage: unhandled pattern")
	ErrUnknownRudder    = errors.New("barrage: unknown rudder")
	ErrNoPattern        = errors.New("barrage: no pattern admits node")
	ErrInvalidCatalog   = errors.New("barrage: invalid catalog")
)

// UnhandledPatternError reports a pattern whose family the tree builder does
// not dispatch.
type UnhandledPatternError struct {
	Pattern Pattern
}

func (e *UnhandledPatternError) Error() string {
	return "barrage: unhandled pattern: " + e.Pattern.String()
}

func (e *UnhandledPatternError) Unwrap() error { return ErrUnhandledPattern }

// UnknownRudderError reports a steering token with no rudder mapping.
type UnknownRudderError struct {
	Token string
}

func (e *UnknownRudderError) Error() string {
	return "barrage: unknown rudder: " + e.Token
}

func (e *UnknownRudderError) Unwrap() error { return ErrUnknownRudder }
