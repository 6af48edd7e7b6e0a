package barrage

import "math"

// RudderType selects the axis a rudder turns about.
type RudderType uint8

const (
	RudderNone  RudderType = iota // keeps the heading
	RudderYaw                     // turns about the local Z axis
	RudderPitch                   // turns about the local Y axis
)

// String returns the lowercase name of the rudder type.
func (t RudderType) String() string {
	switch t {
	case RudderNone:
		return "none"
	case RudderYaw:
		return "yaw"
	case RudderPitch:
		return "pitch"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the type by name.
func (t RudderType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Rudder is a constant steering rate, in radians per frame, about one axis.
type Rudder struct {
	Type RudderType `yaml:"type"`
	Rate float64    `yaml:"rate,omitempty"`
}

// NoRudder keeps a bullet's heading fixed.
var NoRudder = Rudder{Type: RudderNone}

// YawRudder turns the heading about the local Z axis by rate each frame.
func YawRudder(rate float64) Rudder {
	return Rudder{Type: RudderYaw, Rate: rate}
}

// PitchRudder turns the heading about the local Y axis by rate each frame.
func PitchRudder(rate float64) Rudder {
	return Rudder{Type: RudderPitch, Rate: rate}
}

// Steering rates, in units of π radians per frame.
const (
	spinRate  = 0.02
	tiltRate  = 0.01
	curveRate = 0.015
)

// rudderTokens lists every steering token RuddersFor accepts.
var rudderTokens = []string{"straight", "lspin", "rspin", "lrspin", "udspin", "inner", "outer"}

// IsRudderToken reports whether tok has a rudder mapping.
func IsRudderToken(tok string) bool {
	for _, t := range rudderTokens {
		if t == tok {
			return true
		}
	}
	return false
}

// RuddersFor maps a steering token to the rudders cycled across a volley.
// yaw and pitch build the two turning rudders; mirrored families pass them
// swapped. Unknown tokens return an *UnknownRudderError.
func RuddersFor(token string, yaw, pitch func(rate float64) Rudder) ([]Rudder, error) {
	switch token {
	case "straight":
		return []Rudder{NoRudder}, nil
	case "lspin":
		return []Rudder{yaw(-math.Pi * spinRate)}, nil
	case "rspin":
		return []Rudder{yaw(math.Pi * spinRate)}, nil
	case "lrspin":
		return []Rudder{yaw(-math.Pi * spinRate), yaw(math.Pi * spinRate)}, nil
	case "udspin":
		return []Rudder{pitch(-math.Pi * tiltRate), pitch(math.Pi * tiltRate)}, nil
	case "inner":
		return []Rudder{yaw(math.Pi * curveRate), yaw(-math.Pi * curveRate)}, nil
	case "outer":
		return []Rudder{yaw(-math.Pi * curveRate), yaw(math.Pi * curveRate)}, nil
	}
	return nil, &UnknownRudderError{Token: token}
}
