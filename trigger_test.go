package barrage

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// sampleTree builds a two-level tree by hand:
//
//	xy ring (count 4) -> creator -> [rapid (count 2) -> creator -> [none], none]
func sampleTree() *Trigger {
	inner := NewRapid(
		NewCreator(ShapeArrow, nil, []int{2}, []Engine{UniformEngine(1)}, []Rudder{NoRudder}, []*Trigger{NewNone()}),
		10, 5, 2, 0)
	return NewRing(TriggerXY,
		NewCreator(ShapeMissile, nil, []int{1, 1},
			[]Engine{UniformEngine(1), DecelEngine(3, 0.8)},
			[]Rudder{NoRudder},
			[]*Trigger{inner, NewNone()}),
		40, 4, 0, 1)
}

func TestTriggerIsTerminal(t *testing.T) {
	var nilTrigger *Trigger
	if !nilTrigger.IsTerminal() {
		t.Error("nil trigger should be terminal")
	}
	if !NewNone().IsTerminal() {
		t.Error("none trigger should be terminal")
	}
	if sampleTree().IsTerminal() {
		t.Error("ring should not be terminal")
	}
}

func TestTriggerSubtriggers(t *testing.T) {
	root := sampleTree()
	subs := root.Subtriggers()
	if len(subs) != 2 {
		t.Fatalf("len(Subtriggers) = %d, want 2", len(subs))
	}
	if subs[0].Type != TriggerRapid || subs[1].Type != TriggerNone {
		t.Errorf("types = %v, %v", subs[0].Type, subs[1].Type)
	}
	if got := root.Creator.Subtriggers(); len(got) != 2 {
		t.Errorf("creator Subtriggers len = %d", len(got))
	}
	if NewNone().Subtriggers() != nil {
		t.Error("none should have no subtriggers")
	}
}

func TestTriggerWalk(t *testing.T) {
	var types []TriggerType
	sampleTree().Walk(func(n *Trigger) bool {
		types = append(types, n.Type)
		return true
	})
	want := []TriggerType{TriggerXY, TriggerRapid, TriggerNone, TriggerNone}
	if len(types) != len(want) {
		t.Fatalf("Walk visited %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, types[i], want[i])
		}
	}

	visited := 0
	sampleTree().Walk(func(n *Trigger) bool {
		visited++
		return n.Type != TriggerRapid
	})
	if visited != 3 {
		t.Errorf("pruned Walk visited %d, want 3", visited)
	}
}

func TestTriggerStats(t *testing.T) {
	s := sampleTree().Stats()
	if s.Nodes != 4 || s.Terminals != 2 || s.Height != 3 {
		t.Errorf("Stats = %+v", s)
	}
	// Ring: 4 volleys x (rapid bullet + its 2 bullets + plain bullet).
	if s.Bullets != 4*(1+2+1) {
		t.Errorf("Bullets = %d, want 16", s.Bullets)
	}
	var nilTrigger *Trigger
	if nilTrigger.Stats() != (TreeStats{}) {
		t.Error("nil Stats should be zero")
	}
}

func TestTriggerYAML(t *testing.T) {
	root := sampleTree()
	root.Pattern = Pattern{Family: FamilyXY, Mode: "front", Param: "straight"}
	out, err := yaml.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(out)
	for _, want := range []string{"type: xy", "type: rapid", "type: creator", "pattern: xy front straight", "shape: missile", "type: decel"} {
		if !strings.Contains(s, want) {
			t.Errorf("YAML missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "newbullet") {
		t.Error("YAML should not include the bullet factory")
	}
}

func TestTriggerTypeString(t *testing.T) {
	names := []string{"none", "creator", "xy", "xz", "yz", "rapid", "splash"}
	for i, want := range names {
		if got := TriggerType(i).String(); got != want {
			t.Errorf("TriggerType(%d) = %q, want %q", i, got, want)
		}
	}
	if TriggerType(42).String() != "unknown" {
		t.Error("out-of-range type should be unknown")
	}
}
