package barrage

// TriggerType distinguishes how a Trigger spawns bullets.
type TriggerType uint8

const (
	TriggerNone    TriggerType = iota // terminal node, spawns nothing
	TriggerCreator                    // spawns one bullet per child
	TriggerXY                         // ring or fan about the yaw axis
	TriggerXZ                         // ring or fan about the pitch axis
	TriggerYZ                         // cone at a fixed declination
	TriggerRapid                      // timed straight bursts
	TriggerSplash                     // single jittered burst
)

// String returns the lowercase name of the trigger type.
func (t TriggerType) String() string {
	switch t {
	case TriggerNone:
		return "none"
	case TriggerCreator:
		return "creator"
	case TriggerXY:
		return "xy"
	case TriggerXZ:
		return "xz"
	case TriggerYZ:
		return "yz"
	case TriggerRapid:
		return "rapid"
	case TriggerSplash:
		return "splash"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the type by name.
func (t TriggerType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Trigger is a node of a behavior tree. A single flat struct is used for all
// trigger types; each type reads only the fields documented for it. Trees are
// built bottom-up and every node owns its children, so a tree never shares
// nodes.
type Trigger struct {
	Type TriggerType `yaml:"type"`

	// Generation metadata, set on every formulated node.
	Gen     int     `yaml:"gen"`
	Power   float64 `yaml:"power"`
	Depth   int     `yaml:"depth"`
	Pattern Pattern `yaml:"pattern,omitempty"`

	// Arrangement fields (TriggerXY, TriggerXZ, TriggerYZ, TriggerRapid,
	// TriggerSplash). Frame is the fire frame for rings and cones and the
	// start delay for bursts.
	Frame    int      `yaml:"frame,omitempty"`
	Interval int      `yaml:"interval,omitempty"` // rapid: frames between volleys
	Count    int      `yaml:"count,omitempty"`    // volleys per firing
	Offset   float64  `yaml:"offset,omitempty"`   // xy/xz: center angle of the sweep
	Sweep    float64  `yaml:"sweep,omitempty"`    // xy/xz: total swept angle
	Base     float64  `yaml:"base,omitempty"`     // yz: declination from the heading
	Spread   float64  `yaml:"spread,omitempty"`   // splash: cone factor
	Aim      float64  `yaml:"aim,omitempty"`      // rapid/splash: yaw per volley or aim offset
	Creator  *Trigger `yaml:"creator,omitempty"`

	// Creator fields (TriggerCreator). Gens, Engines and Children are
	// parallel; Rudders is cycled across them.
	Shape     Shape         `yaml:"shape,omitempty"`
	NewBullet BulletFactory `yaml:"-"`
	Gens      []int         `yaml:"gens,omitempty"`
	Engines   []Engine      `yaml:"engines,omitempty"`
	Rudders   []Rudder      `yaml:"rudders,omitempty"`
	Children  []*Trigger    `yaml:"children,omitempty"`
}

// NewNone returns a terminal trigger.
func NewNone() *Trigger {
	return &Trigger{Type: TriggerNone}
}

// NewCreator returns a trigger that spawns one bullet per child. Each bullet
// gets the matching generation and engine, the rudder at i%len(rudders), a
// bullet from factory and the child trigger as its own behavior.
func NewCreator(shape Shape, factory BulletFactory, gens []int, engines []Engine, rudders []Rudder, children []*Trigger) *Trigger {
	return &Trigger{
		Type:      TriggerCreator,
		Shape:     shape,
		NewBullet: factory,
		Gens:      gens,
		Engines:   engines,
		Rudders:   rudders,
		Children:  children,
	}
}

// NewRing returns an xy or xz trigger that fires count volleys of creator
// across sweep radians centered on offset, frame frames after launch.
func NewRing(typ TriggerType, creator *Trigger, frame, count int, offset, sweep float64) *Trigger {
	return &Trigger{Type: typ, Creator: creator, Frame: frame, Count: count, Offset: offset, Sweep: sweep}
}

// NewFan returns a yz trigger that fires count volleys of creator around the
// heading at declination base, frame frames after launch.
func NewFan(creator *Trigger, frame, count int, base float64) *Trigger {
	return &Trigger{Type: TriggerYZ, Creator: creator, Frame: frame, Count: count, Base: base}
}

// NewRapid returns a trigger that fires count volleys of creator, one every
// interval frames from start, each turned aim radians past the previous.
func NewRapid(creator *Trigger, start, interval, count int, aim float64) *Trigger {
	return &Trigger{Type: TriggerRapid, Creator: creator, Frame: start, Interval: interval, Count: count, Aim: aim}
}

// NewSplash returns a trigger that fires count jittered volleys of creator at
// start, inside a cone scaled by spread and turned by aim.
func NewSplash(creator *Trigger, start int, spread float64, count int, aim float64) *Trigger {
	return &Trigger{Type: TriggerSplash, Creator: creator, Frame: start, Spread: spread, Count: count, Aim: aim}
}

// IsTerminal reports whether the trigger spawns nothing.
func (t *Trigger) IsTerminal() bool {
	return t == nil || t.Type == TriggerNone
}

// Subtriggers returns the formulated children of t: the creator's children for
// arrangement triggers, the children themselves for a creator, nil otherwise.
func (t *Trigger) Subtriggers() []*Trigger {
	if t == nil {
		return nil
	}
	if t.Type == TriggerCreator {
		return t.Children
	}
	if t.Creator != nil {
		return t.Creator.Children
	}
	return nil
}

// Walk calls fn for t and, depth first, for every formulated node below it.
// Returning false from fn skips that node's subtree.
func (t *Trigger) Walk(fn func(*Trigger) bool) {
	if t == nil || !fn(t) {
		return
	}
	for _, c := range t.Subtriggers() {
		c.Walk(fn)
	}
}

// TreeStats summarizes a behavior tree.
type TreeStats struct {
	Nodes     int `yaml:"nodes"`
	Terminals int `yaml:"terminals"`
	Height    int `yaml:"height"`
	// Bullets is the number of bullets the tree spawns when every trigger
	// fires in full.
	Bullets int `yaml:"bullets"`
}

// Stats walks the tree and returns its summary.
func (t *Trigger) Stats() TreeStats {
	var s TreeStats
	if t == nil {
		return s
	}
	s.Bullets = t.bullets()
	var visit func(n *Trigger, level int)
	visit = func(n *Trigger, level int) {
		s.Nodes++
		s.Height = max(s.Height, level)
		if n.IsTerminal() {
			s.Terminals++
		}
		for _, c := range n.Subtriggers() {
			visit(c, level+1)
		}
	}
	visit(t, 1)
	return s
}

// bullets counts the bullets spawned by t and everything it spawns.
func (t *Trigger) bullets() int {
	if t.IsTerminal() {
		return 0
	}
	volleys := t.Count
	if t.Type == TriggerCreator {
		volleys = 1
	}
	perVolley := 0
	for _, c := range t.Subtriggers() {
		perVolley += 1 + c.bullets()
	}
	return volleys * perVolley
}
