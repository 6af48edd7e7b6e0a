package barrage

import (
	"math"
	"testing"
)

func TestSelectSkipsZeroWeights(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 2000; i++ {
		got := Select(src,
			Choice[string]{Weight: 0, Value: "never"},
			Choice[string]{Weight: 1, Value: "a"},
			Choice[string]{Weight: -3, Value: "negative"},
			Choice[string]{Weight: math.NaN(), Value: "nan"},
			Choice[string]{Weight: 2, Value: "b"},
		)
		if got != "a" && got != "b" {
			t.Fatalf("Select returned excluded value %q", got)
		}
	}
}

func TestSelectProportions(t *testing.T) {
	src := NewSource(2)
	counts := map[string]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[Select(src,
			Choice[string]{Weight: 1, Value: "a"},
			Choice[string]{Weight: 3, Value: "b"},
		)]++
	}
	ratio := float64(counts["b"]) / n
	if math.Abs(ratio-0.75) > 0.02 {
		t.Errorf("b ratio = %v, want ~0.75", ratio)
	}
}

func TestSelectScriptedBuckets(t *testing.T) {
	choices := []Choice[int]{
		{Weight: 1, Value: 10},
		{Weight: 0, Value: 20},
		{Weight: 1, Value: 30},
	}
	src := NewScriptedSource(nil, nil, []float64{0.1, 0.6, 0.999})
	want := []int{10, 30, 30}
	for i, w := range want {
		if got := Select(src, choices...); got != w {
			t.Errorf("draw %d: Select = %d, want %d", i, got, w)
		}
	}
}

func TestSelectPanicsWithoutPositiveWeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Select(NewSource(1), Choice[int]{Weight: 0, Value: 1})
}

func TestWeightIf(t *testing.T) {
	if weightIf(true, 1.5) != 1.5 {
		t.Error("weightIf(true) should return the weight")
	}
	if weightIf(false, 1.5) != 0 {
		t.Error("weightIf(false) should return 0")
	}
}
