package barrage

import (
	"math"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("  xy 360   lrspin ")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	want := Pattern{Family: FamilyXY, Mode: "360", Param: "lrspin"}
	if p != want {
		t.Errorf("ParsePattern = %+v, want %+v", p, want)
	}
	if p.String() != "xy 360 lrspin" {
		t.Errorf("String() = %q", p.String())
	}

	p, err = ParsePattern("rapid splash 180 1,3")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if p.Repeat != "1,3" {
		t.Errorf("Repeat = %q, want 1,3", p.Repeat)
	}
}

func TestParsePatternTokenCount(t *testing.T) {
	for _, s := range []string{"", "xy", "xy 360", "xy 360 straight 1 2"} {
		if _, err := ParsePattern(s); err == nil {
			t.Errorf("ParsePattern(%q): expected error", s)
		}
	}
}

func TestPatternIsZero(t *testing.T) {
	if !(Pattern{}).IsZero() {
		t.Error("zero pattern should report IsZero")
	}
	if (Pattern{Family: FamilyXY}).IsZero() {
		t.Error("non-empty pattern should not report IsZero")
	}
}

func TestPatternOffsets(t *testing.T) {
	tests := []struct {
		repeat string
		want   []int
	}{
		{"", []int{0}},
		{"1", []int{0}},
		{"3", []int{0, 1, 2}},
		{"1,3", []int{1, 3}},
		{"0,0", []int{0, 0}},
	}
	for _, tt := range tests {
		got, err := Pattern{Repeat: tt.repeat}.Offsets()
		if err != nil {
			t.Errorf("Offsets(%q): %v", tt.repeat, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Offsets(%q) = %v, want %v", tt.repeat, got, tt.want)
		}
	}
}

func TestPatternOffsetsInvalid(t *testing.T) {
	for _, r := range []string{"0", "-1", "9", "x", "1,-2", "1,,2", "0,1,2,3,4,5,6,7,8"} {
		if _, err := (Pattern{Repeat: r}).Offsets(); err == nil {
			t.Errorf("Offsets(%q): expected error", r)
		}
	}
}

func TestPatternGens(t *testing.T) {
	got, err := Pattern{Repeat: "0,2"}.gens(4)
	if err != nil {
		t.Fatalf("gens: %v", err)
	}
	if !reflect.DeepEqual(got, []int{5, 7}) {
		t.Errorf("gens(4) = %v, want [5 7]", got)
	}
}

func TestPatternStraight(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"xy 360 straight", true},
		{"xy front lspin", false},
		{"yz 45 straight", true},
		{"rapid straight 0", true},
		{"rapid splash 0", false},
	}
	for _, tt := range tests {
		p, _ := ParsePattern(tt.s)
		if got := p.straight(); got != tt.want {
			t.Errorf("%q straight() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestAngleToken(t *testing.T) {
	a, err := angleToken("90")
	if err != nil {
		t.Fatalf("angleToken: %v", err)
	}
	if math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("angleToken(90) = %v", a)
	}
	if _, err := angleToken("left"); err == nil {
		t.Error("angleToken(left): expected error")
	}
}

func TestPatternYAML(t *testing.T) {
	type doc struct {
		P Pattern `yaml:"p"`
	}
	out, err := yaml.Marshal(doc{P: Pattern{Family: FamilyYZ, Mode: "45", Param: "udspin", Repeat: "2"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != "p: yz 45 udspin 2\n" {
		t.Errorf("Marshal = %q", out)
	}

	var d doc
	if err := yaml.Unmarshal([]byte("p: xz back straight\n"), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.P != (Pattern{Family: FamilyXZ, Mode: "back", Param: "straight"}) {
		t.Errorf("Unmarshal = %+v", d.P)
	}
	if err := yaml.Unmarshal([]byte("p: xz back\n"), &d); err == nil {
		t.Error("Unmarshal of a two-token pattern: expected error")
	}
}
