package barrage

import (
	"encoding/json"
	"fmt"
	"math"
)

// sourceScript is the top-level JSON structure for a scripted source.
type sourceScript struct {
	Seed   uint64    `json:"seed,omitempty"`
	Ints   []int     `json:"ints"`
	Floats []float64 `json:"floats"`
}

// ScriptedSource replays scripted draws, then falls back to another Source.
// Integer and float draws are queued separately, so a script only has to know
// the order of draws of one kind. Use it to force branching factors and
// pattern picks in tests or to replay a recorded wave.
type ScriptedSource struct {
	ints     []int
	floats   []float64
	fallback Source
	consumed int
}

// NewScriptedSource returns a ScriptedSource that serves ints to IntN and
// floats to Float64 in order. A nil fallback uses NewSource(0).
func NewScriptedSource(fallback Source, ints []int, floats []float64) *ScriptedSource {
	if fallback == nil {
		fallback = NewSource(0)
	}
	return &ScriptedSource{
		ints:     append([]int(nil), ints...),
		floats:   append([]float64(nil), floats...),
		fallback: fallback,
	}
}

// LoadSourceScript parses a JSON script of the form
//
//	{"seed": 7, "ints": [3, 0], "floats": [0.1, 0.95]}
//
// and returns a ScriptedSource whose fallback is seeded with seed.
func LoadSourceScript(jsonData []byte) (*ScriptedSource, error) {
	var script sourceScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse source script: %w", err)
	}
	if len(script.Ints) == 0 && len(script.Floats) == 0 {
		return nil, fmt.Errorf("parse source script: no draws")
	}
	for i, f := range script.Floats {
		if f < 0 || f >= 1 || math.IsNaN(f) {
			return nil, fmt.Errorf("parse source script: floats[%d] = %v outside [0, 1)", i, f)
		}
	}
	return NewScriptedSource(NewSource(script.Seed), script.Ints, script.Floats), nil
}

// IntN returns the next scripted integer clamped to [0, n), or a fallback draw
// once the integer queue is empty.
func (s *ScriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return s.fallback.IntN(n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	s.consumed++
	return max(0, min(v, n-1))
}

// Float64 returns the next scripted float, or a fallback draw once the float
// queue is empty.
func (s *ScriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return s.fallback.Float64()
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	s.consumed++
	return v
}

// Done reports whether every scripted draw has been consumed.
func (s *ScriptedSource) Done() bool {
	return len(s.ints) == 0 && len(s.floats) == 0
}

// Consumed returns the number of scripted draws served so far.
func (s *ScriptedSource) Consumed() int {
	return s.consumed
}
