package barrage

import (
	"errors"
	"math"
	"testing"
)

func TestRuddersForEveryToken(t *testing.T) {
	for _, tok := range rudderTokens {
		rs, err := RuddersFor(tok, YawRudder, PitchRudder)
		if err != nil {
			t.Errorf("RuddersFor(%q): %v", tok, err)
			continue
		}
		if len(rs) == 0 {
			t.Errorf("RuddersFor(%q) returned no rudders", tok)
		}
	}
}

func TestRuddersForMapping(t *testing.T) {
	rs, _ := RuddersFor("lrspin", YawRudder, PitchRudder)
	if len(rs) != 2 {
		t.Fatalf("lrspin len = %d, want 2", len(rs))
	}
	if rs[0] != YawRudder(-math.Pi*0.02) || rs[1] != YawRudder(math.Pi*0.02) {
		t.Errorf("lrspin = %+v", rs)
	}

	rs, _ = RuddersFor("udspin", YawRudder, PitchRudder)
	if rs[0].Type != RudderPitch || rs[1].Type != RudderPitch {
		t.Errorf("udspin types = %v, %v, want pitch", rs[0].Type, rs[1].Type)
	}

	rs, _ = RuddersFor("straight", YawRudder, PitchRudder)
	if len(rs) != 1 || rs[0] != NoRudder {
		t.Errorf("straight = %+v, want [NoRudder]", rs)
	}

	inner, _ := RuddersFor("inner", YawRudder, PitchRudder)
	outer, _ := RuddersFor("outer", YawRudder, PitchRudder)
	if inner[0].Rate != -outer[0].Rate {
		t.Errorf("inner and outer should mirror: %v vs %v", inner[0].Rate, outer[0].Rate)
	}
}

func TestRuddersForSwappedAxes(t *testing.T) {
	rs, _ := RuddersFor("lspin", PitchRudder, YawRudder)
	if rs[0].Type != RudderPitch {
		t.Errorf("swapped lspin type = %v, want pitch", rs[0].Type)
	}
	rs, _ = RuddersFor("udspin", PitchRudder, YawRudder)
	if rs[0].Type != RudderYaw {
		t.Errorf("swapped udspin type = %v, want yaw", rs[0].Type)
	}
}

func TestRuddersForUnknown(t *testing.T) {
	_, err := RuddersFor("wobble", YawRudder, PitchRudder)
	if !errors.Is(err, ErrUnknownRudder) {
		t.Fatalf("err = %v, want ErrUnknownRudder", err)
	}
	var re *UnknownRudderError
	if !errors.As(err, &re) || re.Token != "wobble" {
		t.Errorf("token = %v, want wobble", re)
	}
	if IsRudderToken("wobble") {
		t.Error("IsRudderToken(wobble) = true")
	}
}

func TestRudderTypeString(t *testing.T) {
	if RudderYaw.String() != "yaw" || RudderPitch.String() != "pitch" || RudderNone.String() != "none" {
		t.Error("unexpected rudder type names")
	}
}
