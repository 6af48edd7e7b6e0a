package barrage

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Family selects how a trigger arranges and times its volleys.
type Family string

const (
	FamilyXY    Family = "xy"    // ring or fan in the yaw plane
	FamilyXZ    Family = "xz"    // ring or fan in the pitch plane
	FamilyYZ    Family = "yz"    // cone at a fixed declination around the heading
	FamilyRapid Family = "rapid" // timed bursts, straight or splashed
)

// Mode and steering tokens the tree builder branches on.
const (
	modeFull     = "360"
	modeBack     = "back"
	modeFront    = "front"
	modeStraight = "straight"
	modeRight    = "90"

	steerStraight = "straight"
)

// maxRepeat caps the number of children a single repeat token may expand to.
const maxRepeat = 8

// Pattern is an immutable pattern descriptor from the catalog, written as
// "<family> <mode> <param> [repeat]".
//
// For xy and xz, Mode is 360, back or front and Param is a steering token.
// For yz, Mode is a declination in degrees and Param is a steering token.
// For rapid, Mode is straight (rapid fire) or anything else (splash) and
// Param is an aim angle in degrees. Repeat lists child generation offsets;
// empty means a single child.
type Pattern struct {
	Family Family
	Mode   string
	Param  string
	Repeat string
}

// ParsePattern parses a whitespace-separated descriptor.
func ParsePattern(s string) (Pattern, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 || len(fields) > 4 {
		return Pattern{}, fmt.Errorf("barrage: pattern %q: want 3 or 4 tokens, got %d", s, len(fields))
	}
	p := Pattern{Family: Family(fields[0]), Mode: fields[1], Param: fields[2]}
	if len(fields) == 4 {
		p.Repeat = fields[3]
	}
	return p, nil
}

// String rejoins the descriptor tokens.
func (p Pattern) String() string {
	tokens := []string{string(p.Family), p.Mode, p.Param}
	if p.Repeat != "" {
		tokens = append(tokens, p.Repeat)
	}
	return strings.Join(tokens, " ")
}

// IsZero reports whether p is the empty descriptor carried by terminal nodes.
func (p Pattern) IsZero() bool {
	return p == Pattern{}
}

// MarshalYAML encodes the descriptor as its string form.
func (p Pattern) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML decodes a descriptor from its string form.
func (p *Pattern) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePattern(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Offsets expands the repeat token. A positive integer n expands to 0..n-1;
// a comma-separated list expands to its non-negative entries in order.
func (p Pattern) Offsets() ([]int, error) {
	tok := p.Repeat
	if tok == "" {
		tok = "1"
	}
	if strings.Contains(tok, ",") {
		parts := strings.Split(tok, ",")
		out := make([]int, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.Atoi(part)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("barrage: repeat %q: bad offset %q", tok, part)
			}
			out = append(out, v)
		}
		if len(out) > maxRepeat {
			return nil, fmt.Errorf("barrage: repeat %q: more than %d offsets", tok, maxRepeat)
		}
		return out, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 || n > maxRepeat {
		return nil, fmt.Errorf("barrage: repeat %q: want a count in [1, %d]", tok, maxRepeat)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out, nil
}

// gens returns the child generation indices for a node at generation gen.
func (p Pattern) gens(gen int) ([]int, error) {
	offsets, err := p.Offsets()
	if err != nil {
		return nil, err
	}
	for i, o := range offsets {
		offsets[i] = gen + o + 1
	}
	return offsets, nil
}

// straight reports whether the pattern moves its children without spin.
func (p Pattern) straight() bool {
	if p.Family == FamilyRapid {
		return p.Mode == modeStraight
	}
	return p.Param == steerStraight
}

// angleToken parses a degrees token into radians.
func angleToken(tok string) (float64, error) {
	deg, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("barrage: angle %q: %w", tok, err)
	}
	return radians(deg), nil
}
