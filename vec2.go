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
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Vec2 can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a pair of values of the same numeric type. It is used for sizes
// (width and height) as well as for positions (x and y), both in pixels and
// in tiles.
//
// Vec2 values are plain values: every operation returns a copy and never
// modifies its receiver, except for the *Assign methods.
type Vec2[T Number] struct {
	X, Y T
}

// Size is the type used for all pixel and tile dimensions.
type Size = Vec2[uint]

// NewVec2 returns the pair (x, y).
func NewVec2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat returns the pair (v, v).
func Splat[T Number](v T) Vec2[T] {
	return Vec2[T]{X: v, Y: v}
}

// FromPoint converts an image.Point. Negative components are not checked,
// use it only on points known to be non-negative when T is unsigned.
func FromPoint[T Number](p image.Point) Vec2[T] {
	return Vec2[T]{X: T(p.X), Y: T(p.Y)}
}

// WithX returns a copy of v with X replaced.
func (v Vec2[T]) WithX(x T) Vec2[T] {
	v.X = x
	return v
}

// WithY returns a copy of v with Y replaced.
func (v Vec2[T]) WithY(y T) Vec2[T] {
	v.Y = y
	return v
}

// MapX returns a copy of v where X is replaced by f(X).
func (v Vec2[T]) MapX(f func(T) T) Vec2[T] {
	v.X = f(v.X)
	return v
}

// MapY returns a copy of v where Y is replaced by f(Y).
func (v Vec2[T]) MapY(f func(T) T) Vec2[T] {
	v.Y = f(v.Y)
	return v
}

// Map applies f to both components. The element type of the result can differ
// from the one of v, Map(v, func(x uint) int { return int(x) }) converts
// a Size to a Vec2[int].
func Map[T, U Number](v Vec2[T], f func(T) U) Vec2[U] {
	return Vec2[U]{X: f(v.X), Y: f(v.Y)}
}

// Combine applies f componentwise to a and b, that is it returns
// (f(a.X, b.X), f(a.Y, b.Y)).
//
// All arithmetic on pairs is defined through Combine.
func Combine[T, U, O Number](a Vec2[T], b Vec2[U], f func(T, U) O) Vec2[O] {
	return Vec2[O]{X: f(a.X, b.X), Y: f(a.Y, b.Y)}
}

// CombineInPlace is the in-place version of Combine for pairs of the same
// type: v becomes (f(v.X, o.X), f(v.Y, o.Y)).
func (v *Vec2[T]) CombineInPlace(o Vec2[T], f func(T, T) T) {
	*v = Combine(*v, o, f)
}

func add[T Number](a, b T) T { return a + b }
func sub[T Number](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }
func div[T Number](a, b T) T { return a / b }

// Add returns v + o componentwise.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Combine(v, o, add[T])
}

// Sub returns v - o componentwise. For unsigned types the result wraps as
// usual in Go.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Combine(v, o, sub[T])
}

// Mul returns v * o componentwise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Combine(v, o, mul[T])
}

// Div returns v / o componentwise. As with the scalar operator an integer
// division by a zero component panics, see CheckedDiv for a version that
// returns an error instead.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return Combine(v, o, div[T])
}

// CheckedDiv works as Div but returns ErrDivisionByZero if one of the
// components of o is zero.
func (v Vec2[T]) CheckedDiv(o Vec2[T]) (Vec2[T], error) {
	if o.AnyZero() {
		return Vec2[T]{}, fmt.Errorf("%v / %v: %w", v, o, ErrDivisionByZero)
	}
	return v.Div(o), nil
}

// AddAssign sets v to v + o.
func (v *Vec2[T]) AddAssign(o Vec2[T]) {
	v.CombineInPlace(o, add[T])
}

// SubAssign sets v to v - o.
func (v *Vec2[T]) SubAssign(o Vec2[T]) {
	v.CombineInPlace(o, sub[T])
}

// MulAssign sets v to v * o.
func (v *Vec2[T]) MulAssign(o Vec2[T]) {
	v.CombineInPlace(o, mul[T])
}

// DivAssign sets v to v / o, it panics like Div.
func (v *Vec2[T]) DivAssign(o Vec2[T]) {
	v.CombineInPlace(o, div[T])
}

// Min returns the componentwise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Combine(v, o, func(a, b T) T { return min(a, b) })
}

// Max returns the componentwise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Combine(v, o, func(a, b T) T { return max(a, b) })
}

// Area returns X * Y. Integer overflow wraps, use CheckedArea if the values
// are not known to be small.
func (v Vec2[T]) Area() T {
	return v.X * v.Y
}

// AnyZero reports whether at least one component is zero.
func (v Vec2[T]) AnyZero() bool {
	return v.X == 0 || v.Y == 0
}

// Components returns X and Y.
func (v Vec2[T]) Components() (T, T) {
	return v.X, v.Y
}

// All yields X and then Y.
func (v Vec2[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(v.X) {
			return
		}
		yield(v.Y)
	}
}

// String formats the pair as "XxY", the same format ParseSize accepts.
func (v Vec2[T]) String() string {
	return fmt.Sprintf("%vx%v", v.X, v.Y)
}

// Point converts an integer pair to an image.Point.
func Point[T constraints.Integer](v Vec2[T]) image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// CeilDiv returns the componentwise ceiling of v / o for non-negative
// integer pairs. It panics on a zero component of o.
func CeilDiv[T constraints.Integer](v, o Vec2[T]) Vec2[T] {
	return Combine(v, o, func(a, b T) T {
		return a/b + boolToInt[T](a%b != 0)
	})
}

func boolToInt[T constraints.Integer](b bool) T {
	if b {
		return 1
	}
	return 0
}

// CheckedArea returns X * Y for non-negative integer pairs or ErrOverflow if
// the product does not fit into a uint.
func CheckedArea[T constraints.Integer](v Vec2[T]) (uint, error) {
	if v.X < 0 || v.Y < 0 {
		return 0, fmt.Errorf("area of %v: %w", v, ErrNegativeComponent)
	}
	x, y := uint64(v.X), uint64(v.Y)
	if x != 0 && y > math.MaxUint/x {
		return 0, fmt.Errorf("area of %v: %w", v, ErrOverflow)
	}
	return uint(x * y), nil
}

// RowMajorIndex returns Y * rowWidth + X, the position of v in a flat
// sequence storing rows of length rowWidth one after another.
//
// It fails with ErrNegativeComponent for negative coordinates and with
// ErrOverflow if the index does not fit into a uint. It does not check
// X < rowWidth, Grid.Index does.
func RowMajorIndex[T constraints.Integer](v Vec2[T], rowWidth uint) (uint, error) {
	if v.X < 0 || v.Y < 0 {
		return 0, fmt.Errorf("index of %v: %w", v, ErrNegativeComponent)
	}
	x, y := uint64(v.X), uint64(v.Y)
	w := uint64(rowWidth)
	if w != 0 && y > math.MaxUint/w {
		return 0, fmt.Errorf("index of %v with row width %d: %w", v, rowWidth, ErrOverflow)
	}
	rowStart := y * w
	if x > math.MaxUint-rowStart {
		return 0, fmt.Errorf("index of %v with row width %d: %w", v, rowWidth, ErrOverflow)
	}
	return uint(rowStart + x), nil
}
