package barrage

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// --- Formulation Benchmarks ---

func benchFormulate(b *testing.B, power float64) {
	f, err := NewFormulator(FormulatorConfig{Source: NewSource(1)})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Formulate(i%8, power); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormulate_Power20(b *testing.B)  { benchFormulate(b, 20) }
func BenchmarkFormulate_Power200(b *testing.B) { benchFormulate(b, 200) }

func BenchmarkCatalogSelect(b *testing.B) {
	c := DefaultCatalog()
	src := NewSource(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Select(src, 2+i%30, i%4); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Emitter Benchmarks ---

// setupBenchEmitter fills an emitter with n spinning leaf bullets.
func setupBenchEmitter(n int) *Emitter {
	creator := NewCreator(ShapeArrow, nil, []int{1}, []Engine{DecelEngine(3, 0.8)},
		[]Rudder{YawRudder(0.02), YawRudder(-0.02)}, []*Trigger{NewNone()})
	e := NewEmitter(EmitterConfig{MaxBullets: n + 1, Lifetime: math.MaxInt32})
	e.Start(NewRing(TriggerXY, creator, 0, n, 0, 2*math.Pi), v3.Vec{})
	e.Update()
	e.Update()
	return e
}

func BenchmarkEmitterUpdate_1000Bullets(b *testing.B) {
	e := setupBenchEmitter(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Update()
	}
}

func BenchmarkEmitterUpdate_10000Bullets(b *testing.B) {
	e := setupBenchEmitter(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Update()
	}
}

func BenchmarkEmitterWave(b *testing.B) {
	f, err := NewFormulator(FormulatorConfig{Source: NewSource(3)})
	if err != nil {
		b.Fatal(err)
	}
	root, err := f.Formulate(0, 60)
	if err != nil {
		b.Fatal(err)
	}
	e := NewEmitter(EmitterConfig{Lifetime: 60})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Start(root, v3.Vec{})
		for e.IsActive() {
			e.Update()
		}
	}
}
