// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mosaic

import (
	"fmt"
	"image"

	"golang.org/x/exp/constraints"
)

// Rect is an axis-aligned rectangle given by its top left corner Pos and its
// Size. The rectangle contains all points p with Pos ≤ p < Pos + Size.
type Rect[T Number] struct {
	Pos, Size Vec2[T]
}

// NewRect returns the rectangle at pos with the given size.
func NewRect[T Number](pos, size Vec2[T]) Rect[T] {
	return Rect[T]{Pos: pos, Size: size}
}

// FromRectangle converts an image.Rectangle. The rectangle should be
// canonical (Min ≤ Max).
func FromRectangle[T Number](r image.Rectangle) Rect[T] {
	return Rect[T]{Pos: FromPoint[T](r.Min), Size: FromPoint[T](r.Size())}
}

// ShrinkCentered insets the rectangle by factor on every side: the position
// moves forward by factor and the size shrinks by 2 * factor.
//
// If 2 * factor exceeds the size on an axis the factor on that axis is
// clamped to size / 2, so the size never becomes negative (or wraps for
// unsigned types). For signed types a negative factor grows the rectangle
// and r.ShrinkCentered(f).ShrinkCentered(f') with f' = -f restores r as long
// as no clamping happened.
func (r Rect[T]) ShrinkCentered(factor Vec2[T]) Rect[T] {
	factor = Combine(factor, r.Size, func(f, size T) T {
		if f > 0 && f > size/2 {
			return max(size/2, 0)
		}
		return f
	})
	r.Pos.AddAssign(factor)
	r.Size.SubAssign(factor)
	r.Size.SubAssign(factor)
	return r
}

// Max returns the point just outside the bottom right corner, Pos + Size.
func (r Rect[T]) Max() Vec2[T] {
	return r.Pos.Add(r.Size)
}

// Area returns the area of the rectangle.
func (r Rect[T]) Area() T {
	return r.Size.Area()
}

// Empty reports whether the rectangle contains no points.
func (r Rect[T]) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether p lies in r.
func (r Rect[T]) Contains(p Vec2[T]) bool {
	max := r.Max()
	return r.Pos.X <= p.X && p.X < max.X && r.Pos.Y <= p.Y && p.Y < max.Y
}

// Intersect returns the largest rectangle contained in both r and o. If they
// don't overlap the result is empty, positioned at the top left corner of the
// overlap candidates.
func (r Rect[T]) Intersect(o Rect[T]) Rect[T] {
	pos := r.Pos.Max(o.Pos)
	end := r.Max().Min(o.Max())
	size := Combine(pos, end, func(p, e T) T {
		if e <= p {
			return 0
		}
		return e - p
	})
	return Rect[T]{Pos: pos, Size: size}
}

// String returns a representation like "(3, 4)+2x2".
func (r Rect[T]) String() string {
	return fmt.Sprintf("(%v, %v)+%v", r.Pos.X, r.Pos.Y, r.Size)
}

// ImageRect converts an integer rectangle to an image.Rectangle.
func ImageRect[T constraints.Integer](r Rect[T]) image.Rectangle {
	min := Point(r.Pos)
	return image.Rectangle{Min: min, Max: min.Add(Point(r.Size))}
}
