// Package barrage builds and runs bullet-pattern waves for shoot-'em-up
// games.
//
// A wave is a behavior tree of [Trigger] nodes. The [Formulator] grows one
// from a generation index and a power budget: every node draws a branching
// factor, picks a pattern from a weighted [Catalog] and splits its budget
// evenly among its children, so deeper nodes are always weaker and the tree
// always ends. The [Emitter] then plays the tree frame by frame, spawning a
// bullet for every child each time a trigger fires.
//
// # Quick start
//
//	f, err := barrage.NewFormulator(barrage.FormulatorConfig{
//		Source: barrage.NewSource(42),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	root, err := f.Formulate(0, 80)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	em := barrage.NewEmitter(barrage.EmitterConfig{})
//	em.Start(root, v3.Vec{})
//	for em.IsActive() {
//		em.Update()
//		for _, b := range em.Bullets() {
//			// draw b.Position
//		}
//	}
//
// # Patterns
//
// A [Pattern] is written "<family> <mode> <param> [repeat]". Families:
//
//   - xy, xz: a full ring (mode 360), or a fan pointing forward (front) or
//     backward (back), in the yaw or pitch plane. Param is a steering token.
//   - yz: a cone at a fixed declination in degrees around the heading.
//   - rapid: timed straight bursts (mode straight) or a single jittered
//     splash (any other mode). Param is an aim angle in degrees.
//
// Steering tokens (straight, lspin, rspin, lrspin, udspin, inner, outer)
// map to [Rudder] lists cycled across a volley. The repeat token lists the
// generation offsets of the children each volley spawns.
//
// # Determinism
//
// Every random draw goes through a [Source]. Equal seeds give equal trees;
// a [ScriptedSource] replays fixed draws first, which pins down branching
// factors and pattern picks in tests.
//
// # Motion
//
// Bullets move in 3D along their heading, an [sdf.M44] whose local +X axis
// is forward. Each bullet's [Engine] is a speed curve played through a
// [gween] tween; its [Rudder] turns the heading a fixed rate per frame.
//
// ECS integration is available via the [Donburi] adapter in barrage/ecs.
//
// [gween]: https://github.com/tanema/gween
// [sdf.M44]: https://github.com/deadsy/sdfx
// [Donburi]: https://github.com/yohamta/donburi
package barrage
