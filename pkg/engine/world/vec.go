package world

// Vec2 is a continuous world-space position or extent.
type Vec2 struct {
	X float64
	Y float64
}

// V builds a Vec2
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * f
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Half returns v / 2, used to turn a size into half extents
func (v Vec2) Half() Vec2 {
	return v.Scale(0.5)
}
