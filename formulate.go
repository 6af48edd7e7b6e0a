package barrage

import (
	"fmt"
	"log/slog"
	"math"
	"time"
)

// DefaultMaxDepth is the recursion cap used when FormulatorConfig.MaxDepth is
// not set.
const DefaultMaxDepth = 12

const (
	// terminalPower is the budget below which a node fires nothing.
	terminalPower = 2

	// Branching factor draw before depth scaling.
	minBranch = 2
	maxBranch = 16

	// splashSpread is the cone factor of every splash trigger.
	splashSpread = 4

	// maxPower caps the budget of a root node. Larger budgets, +Inf
	// included, formulate as maxPower.
	maxPower = 1 << 53
)

// FormulatorConfig controls a Formulator. The zero value is usable.
type FormulatorConfig struct {
	// Catalog is the pattern table. Nil uses DefaultCatalog.
	Catalog *Catalog
	// Source supplies every random draw. Nil seeds a source from the clock.
	Source Source
	// Shapes builds bullets for the selected shapes. Nil uses DefaultShapes.
	Shapes ShapeRegistry
	// MaxDepth caps recursion; nodes at this depth are terminal. Values <= 0
	// use DefaultMaxDepth.
	MaxDepth int
	// Logger receives debug records for every node. Nil discards them.
	Logger *slog.Logger
}

// Formulator builds behavior trees from a generation index and a power
// budget. It is not safe for concurrent use because it draws from a single
// Source.
type Formulator struct {
	catalog  *Catalog
	src      Source
	shapes   ShapeRegistry
	maxDepth int
	log      *slog.Logger
}

// NewFormulator validates the catalog and returns a Formulator.
func NewFormulator(cfg FormulatorConfig) (*Formulator, error) {
	f := &Formulator{
		catalog:  cfg.Catalog,
		src:      cfg.Source,
		shapes:   cfg.Shapes,
		maxDepth: cfg.MaxDepth,
		log:      cfg.Logger,
	}
	if f.catalog == nil {
		f.catalog = DefaultCatalog()
	} else if err := f.catalog.Validate(); err != nil {
		return nil, err
	}
	if f.src == nil {
		f.src = NewSource(uint64(time.Now().UnixNano()))
	}
	if f.shapes == nil {
		f.shapes = DefaultShapes()
	}
	if f.maxDepth <= 0 {
		f.maxDepth = DefaultMaxDepth
	}
	if f.log == nil {
		f.log = slog.New(slog.DiscardHandler)
	}
	return f, nil
}

// Formulate builds the behavior tree for one wave. gen must be >= 0 and power
// is clamped to 2^53. The only errors are catalog defects, which abort the
// whole tree.
func (f *Formulator) Formulate(gen int, power float64) (*Trigger, error) {
	if gen < 0 {
		return nil, fmt.Errorf("barrage: generation must be >= 0, got %d", gen)
	}
	res, err := f.formulateTrigger(genState{gen: gen, power: min(power, maxPower)})
	if err != nil {
		return nil, err
	}
	return res.trigger, nil
}

// genState is the input of one recursive call.
type genState struct {
	gen   int
	power float64
	depth int
}

// formulated is the output of one recursive call: the finished subtree and
// the kind its parent uses to pick an engine.
type formulated struct {
	trigger *Trigger
	kind    Kind
}

func (f *Formulator) formulateTrigger(st genState) (formulated, error) {
	// NaN fails this comparison too.
	if !(st.power >= terminalPower) {
		return f.terminal(st), nil
	}
	if st.depth >= f.maxDepth {
		f.log.Debug("depth cap reached", "gen", st.gen, "depth", st.depth, "power", st.power)
		return f.terminal(st), nil
	}

	num := f.childCount(st)
	pattern, err := f.catalog.Select(f.src, num, st.depth)
	if err != nil {
		return formulated{}, err
	}

	var res formulated
	switch pattern.Family {
	case FamilyXY, FamilyXZ:
		res, err = f.buildRing(st, num, pattern)
	case FamilyYZ:
		res, err = f.buildFan(st, num, pattern)
	case FamilyRapid:
		res, err = f.buildBurst(st, num, pattern)
	default:
		return formulated{}, &UnhandledPatternError{Pattern: pattern}
	}
	if err != nil {
		return formulated{}, err
	}

	t := res.trigger
	t.Gen, t.Power, t.Depth, t.Pattern = st.gen, st.power, st.depth, pattern
	f.log.Debug("formulated trigger",
		"gen", st.gen,
		"depth", st.depth,
		"power", st.power,
		"pattern", pattern.String(),
		"count", t.Count,
		"kind", res.kind.String())
	return res, nil
}

// terminal returns the base case: no children, kind final.
func (f *Formulator) terminal(st genState) formulated {
	t := NewNone()
	t.Gen, t.Power, t.Depth = st.gen, st.power, st.depth
	return formulated{trigger: t, kind: KindFinal}
}

// childCount draws the branching factor. Shallow nodes branch wider, and no
// node branches wider than its remaining budget.
func (f *Formulator) childCount(st genState) int {
	num := RandInt(f.src, minBranch, maxBranch) * max(1, 3-st.depth)
	return int(min(float64(num), math.Floor(st.power)))
}

// children formulates one child per generation index, each with power/num,
// dDepth levels below st.
func (f *Formulator) children(st genState, gens []int, num, dDepth int) ([]formulated, error) {
	child := genState{power: st.power / float64(num), depth: st.depth + dDepth}
	out := make([]formulated, 0, len(gens))
	for _, g := range gens {
		child.gen = g
		res, err := f.formulateTrigger(child)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// creator draws an engine for every child and wraps them in a creator trigger.
func (f *Formulator) creator(kids []formulated, gens []int, spin bool, rudders []Rudder, missile, arrow, claw float64) *Trigger {
	engines := make([]Engine, len(kids))
	triggers := make([]*Trigger, len(kids))
	for i, k := range kids {
		engines[i] = engineFor(f.src, k.kind, spin)
		triggers[i] = k.trigger
	}
	shape, factory := selectBullet(f.src, f.shapes, missile, arrow, claw)
	return NewCreator(shape, factory, gens, engines, rudders, triggers)
}

// fireFrame draws the frame a ring or cone fires on: 40, 50, 60 or 70.
func (f *Formulator) fireFrame() int {
	return RandInt(f.src, 4, 7) * 10
}

// buildRing handles the xy and xz families.
func (f *Formulator) buildRing(st genState, num int, p Pattern) (formulated, error) {
	gens, err := p.gens(st.gen)
	if err != nil {
		return formulated{}, err
	}
	dDepth := 0
	if p.Mode == modeFull {
		dDepth = 1
	}
	kids, err := f.children(st, gens, num, dDepth)
	if err != nil {
		return formulated{}, err
	}

	typ, yaw, pitch := TriggerXY, YawRudder, PitchRudder
	if p.Family == FamilyXZ {
		typ, yaw, pitch = TriggerXZ, PitchRudder, YawRudder
	}
	rudders, err := RuddersFor(p.Param, yaw, pitch)
	if err != nil {
		return formulated{}, err
	}

	spin := !p.straight()
	creator := f.creator(kids, gens, spin, rudders, 0.7, weightIf(!spin, 1.5), 0.4)

	frame := f.fireFrame()
	offset := 0.0
	if p.Mode == modeBack {
		offset = math.Pi
	}
	sweep := math.Pi / 24 * float64(num)
	if p.Mode == modeFull {
		sweep = 2 * math.Pi
	}
	return formulated{trigger: NewRing(typ, creator, frame, num, offset, sweep), kind: KindNormal}, nil
}

// buildFan handles the yz family.
func (f *Formulator) buildFan(st genState, num int, p Pattern) (formulated, error) {
	base, err := angleToken(p.Mode)
	if err != nil {
		return formulated{}, err
	}
	gens, err := p.gens(st.gen)
	if err != nil {
		return formulated{}, err
	}
	dDepth := 0
	if p.Mode == modeRight {
		dDepth = 1
	}
	kids, err := f.children(st, gens, num, dDepth)
	if err != nil {
		return formulated{}, err
	}
	rudders, err := RuddersFor(p.Param, YawRudder, PitchRudder)
	if err != nil {
		return formulated{}, err
	}

	spin := !p.straight()
	creator := f.creator(kids, gens, spin, rudders, 0.7, weightIf(!spin, 1.5), 0.4)
	return formulated{trigger: NewFan(creator, f.fireFrame(), num, base), kind: KindNormal}, nil
}

// buildBurst handles the rapid family.
func (f *Formulator) buildBurst(st genState, num int, p Pattern) (formulated, error) {
	straight := p.straight()
	// Straight bursts stay short and keep the parity of the drawn count.
	if straight && num >= 3 {
		num = 2 + num%2
	}
	aim, err := angleToken(p.Param)
	if err != nil {
		return formulated{}, err
	}
	gens, err := p.gens(st.gen)
	if err != nil {
		return formulated{}, err
	}
	kids, err := f.children(st, gens, num, 0)
	if err != nil {
		return formulated{}, err
	}

	// Bursts only ever shoot missiles and arrows.
	var creator *Trigger
	if straight {
		creator = f.creator(kids, gens, false, []Rudder{NoRudder}, 0, 1, 0)
	} else {
		creator = f.creator(kids, gens, true, []Rudder{NoRudder}, 1, 1, 0)
	}

	start := RandInt(f.src, 2, 8) * 10
	if straight {
		interval := RandInt(f.src, 30, 60)
		return formulated{trigger: NewRapid(creator, start, interval, num, aim), kind: KindSlow}, nil
	}
	return formulated{trigger: NewSplash(creator, start, splashSpread, num, aim), kind: KindSlow}, nil
}
