package vmath

import "math"

// Vec2 is a point or displacement on the playfield
type Vec2 struct {
	X, Y float64
}

// V2 constructs a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Distance returns the Euclidean distance between v and o
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// DistanceSq returns squared distance without sqrt
func (v Vec2) DistanceSq(o Vec2) float64 {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y
}
