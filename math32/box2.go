// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit input-geometry functionality.

package math32

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this bounding box as a vector.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns if this bounding box contains the given point.
func (b Box2) ContainsPoint(pt Vector2) bool {
	return !(pt.X < b.Min.X || pt.X > b.Max.X || pt.Y < b.Min.Y || pt.Y > b.Max.Y)
}

// ClampPoint returns the given point clamped to be within this bounding box.
func (b Box2) ClampPoint(pt Vector2) Vector2 {
	return Vec2(Clamp(pt.X, b.Min.X, b.Max.X), Clamp(pt.Y, b.Min.Y, b.Max.Y))
}

// ExpandByPoint expands this bounding box to include the given point.
func (b *Box2) ExpandByPoint(pt Vector2) {
	b.Min = Vec2(Min(b.Min.X, pt.X), Min(b.Min.Y, pt.Y))
	b.Max = Vec2(Max(b.Max.X, pt.X), Max(b.Max.Y, pt.Y))
}
