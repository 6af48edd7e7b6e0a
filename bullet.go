package barrage

// Shape identifies a bullet's appearance.
type Shape string

const (
	ShapeMissile Shape = "missile"
	ShapeArrow   Shape = "arrow"
	ShapeClaw    Shape = "claw"
)

// BulletFactory allocates a fresh bullet. Triggers hold factories rather than
// bullets; the emitter calls them at spawn time.
type BulletFactory func() *Bullet

// ShapeRegistry maps shapes to the constructors that build them. Supply one
// in FormulatorConfig to attach game-specific data to spawned bullets.
type ShapeRegistry map[Shape]BulletFactory

// DefaultShapes returns a registry of plain bullets for the three built-in
// shapes.
func DefaultShapes() ShapeRegistry {
	r := make(ShapeRegistry, 3)
	for _, s := range []Shape{ShapeMissile, ShapeArrow, ShapeClaw} {
		r[s] = plainBullet(s)
	}
	return r
}

func plainBullet(s Shape) BulletFactory {
	return func() *Bullet { return &Bullet{Shape: s} }
}

// factory returns the constructor for s, or a plain one when s is missing.
func (r ShapeRegistry) factory(s Shape) BulletFactory {
	if f, ok := r[s]; ok && f != nil {
		return f
	}
	return plainBullet(s)
}

// selectBullet draws one shape by weight and returns it with its factory.
func selectBullet(src Source, shapes ShapeRegistry, missile, arrow, claw float64) (Shape, BulletFactory) {
	s := Select(src,
		Choice[Shape]{Weight: missile, Value: ShapeMissile},
		Choice[Shape]{Weight: arrow, Value: ShapeArrow},
		Choice[Shape]{Weight: claw, Value: ShapeClaw},
	)
	return s, shapes.factory(s)
}
