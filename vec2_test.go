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
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVec2Construction(t *testing.T) {
	v := NewVec2(3, 4)
	if v.X != 3 || v.Y != 4 {
		t.Errorf("NewVec2(3, 4) = %v", v)
	}
	if s := Splat[uint](7); s != NewVec2[uint](7, 7) {
		t.Errorf("Splat(7) = %v", s)
	}
	if got := v.WithX(10); got != NewVec2(10, 4) {
		t.Errorf("WithX(10) = %v", got)
	}
	if got := v.WithY(10); got != NewVec2(3, 10) {
		t.Errorf("WithY(10) = %v", got)
	}
	// value semantics, v is unchanged
	if v != NewVec2(3, 4) {
		t.Errorf("v was modified: %v", v)
	}
	double := func(x int) int { return 2 * x }
	if got := v.MapX(double); got != NewVec2(6, 4) {
		t.Errorf("MapX = %v", got)
	}
	if got := v.MapY(double); got != NewVec2(3, 8) {
		t.Errorf("MapY = %v", got)
	}
	asFloat := Map(v, func(x int) float64 { return float64(x) / 2 })
	if asFloat != NewVec2(1.5, 2.0) {
		t.Errorf("Map = %v", asFloat)
	}
}

func TestCombineDifferentTypes(t *testing.T) {
	a := NewVec2[uint8](200, 10)
	b := NewVec2[int64](-300, 5)
	got := Combine(a, b, func(x uint8, y int64) float64 { return float64(x) + float64(y) })
	if want := NewVec2(-100.0, 15.0); got != want {
		t.Errorf("Combine = %v, want %v", got, want)
	}
}

func TestVec2Algebra(t *testing.T) {
	values := []Vec2[int]{
		NewVec2(0, 0), NewVec2(1, 2), NewVec2(-5, 7), NewVec2(123, -456), NewVec2(1<<20, 3),
	}
	for _, a := range values {
		if got := a.Mul(Splat(1)); got != a {
			t.Errorf("%v * (1, 1) = %v", a, got)
		}
		for _, b := range values {
			if got := a.Add(b).Sub(b); got != a {
				t.Errorf("%v + %v - %v = %v", a, b, b, got)
			}
			if a.Add(b) != b.Add(a) {
				t.Errorf("addition not commutative for %v, %v", a, b)
			}
			if a.Mul(b) != b.Mul(a) {
				t.Errorf("multiplication not commutative for %v, %v", a, b)
			}
		}
	}
	// also holds for unsigned types with wrapping
	u := NewVec2[uint](3, 5)
	w := NewVec2[uint](10, 1)
	if got := u.Sub(w).Add(w); got != u {
		t.Errorf("%v - %v + %v = %v", u, w, w, got)
	}
}

func TestVec2Assign(t *testing.T) {
	v := NewVec2(10, 20)
	v.AddAssign(NewVec2(1, 2))
	v.SubAssign(NewVec2(5, 5))
	v.MulAssign(NewVec2(2, 3))
	v.DivAssign(NewVec2(3, 2))
	if want := NewVec2(4, 25); v != want {
		t.Errorf("got %v, want %v", v, want)
	}
	v.CombineInPlace(NewVec2(7, 7), func(a, b int) int { return a % b })
	if want := NewVec2(4, 4); v != want {
		t.Errorf("got %v, want %v", v, want)
	}
}

func TestVec2Div(t *testing.T) {
	v := NewVec2[uint](9, 8)
	if got := v.Div(NewVec2[uint](2, 4)); got != NewVec2[uint](4, 2) {
		t.Errorf("Div = %v", got)
	}
	if got, err := v.CheckedDiv(NewVec2[uint](3, 2)); err != nil || got != NewVec2[uint](3, 4) {
		t.Errorf("CheckedDiv = %v, %v", got, err)
	}
	if _, err := v.CheckedDiv(NewVec2[uint](3, 0)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for integer division by zero")
		}
	}()
	v.Div(NewVec2[uint](0, 1))
}

func TestVec2Helpers(t *testing.T) {
	a := NewVec2(3, 9)
	b := NewVec2(5, 2)
	if got := a.Min(b); got != NewVec2(3, 2) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != NewVec2(5, 9) {
		t.Errorf("Max = %v", got)
	}
	if got := a.Area(); got != 27 {
		t.Errorf("Area = %d", got)
	}
	if !NewVec2(0, 4).AnyZero() || !NewVec2(4, 0).AnyZero() || a.AnyZero() {
		t.Error("AnyZero returned wrong result")
	}
	if x, y := a.Components(); x != 3 || y != 9 {
		t.Errorf("Components = %d, %d", x, y)
	}
	if diff := cmp.Diff([]int{3, 9}, slices.Collect(a.All())); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
	for x := range a.All() {
		if x != 3 {
			t.Errorf("first component is %d", x)
		}
		break
	}
	if s := NewVec2[uint](4, 3).String(); s != "4x3" {
		t.Errorf("String = %q", s)
	}
	if p := Point(NewVec2[uint](4, 3)); p != image.Pt(4, 3) {
		t.Errorf("Point = %v", p)
	}
	if v := FromPoint[uint](image.Pt(4, 3)); v != NewVec2[uint](4, 3) {
		t.Errorf("FromPoint = %v", v)
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		v, o, want Size
	}{
		{NewVec2[uint](4, 4), NewVec2[uint](2, 2), NewVec2[uint](2, 2)},
		{NewVec2[uint](5, 4), NewVec2[uint](2, 3), NewVec2[uint](3, 2)},
		{NewVec2[uint](0, 1), NewVec2[uint](2, 3), NewVec2[uint](0, 1)},
		{NewVec2[uint](1, 1), NewVec2[uint](7, 7), NewVec2[uint](1, 1)},
	}
	for _, tc := range tests {
		if got := CeilDiv(tc.v, tc.o); got != tc.want {
			t.Errorf("CeilDiv(%v, %v) = %v, want %v", tc.v, tc.o, got, tc.want)
		}
	}
}

func TestCheckedArea(t *testing.T) {
	if area, err := CheckedArea(NewVec2[uint](3, 4)); err != nil || area != 12 {
		t.Errorf("CheckedArea(3x4) = %d, %v", area, err)
	}
	if area, err := CheckedArea(NewVec2[uint](0, math.MaxUint)); err != nil || area != 0 {
		t.Errorf("CheckedArea(0xMax) = %d, %v", area, err)
	}
	if _, err := CheckedArea(NewVec2[uint](2, math.MaxUint)); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
	if _, err := CheckedArea(NewVec2(-1, 2)); !errors.Is(err, ErrNegativeComponent) {
		t.Errorf("expected ErrNegativeComponent, got %v", err)
	}
}

func TestRowMajorIndex(t *testing.T) {
	idx, err := RowMajorIndex(NewVec2[uint16](3, 2), 5)
	if err != nil || idx != 13 {
		t.Errorf("RowMajorIndex((3, 2), 5) = %d, %v", idx, err)
	}
	if _, err := RowMajorIndex(NewVec2[uint](0, math.MaxUint), 2); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow for the row, got %v", err)
	}
	if _, err := RowMajorIndex(NewVec2[uint](math.MaxUint, 1), 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow for the column, got %v", err)
	}
	if _, err := RowMajorIndex(NewVec2(0, -1), 3); !errors.Is(err, ErrNegativeComponent) {
		t.Errorf("expected ErrNegativeComponent, got %v", err)
	}
}

func TestRowMajorIndexDense(t *testing.T) {
	const width, height = 7, 5
	seen := make([]bool, width*height)
	for y := uint(0); y < height; y++ {
		for x := uint(0); x < width; x++ {
			idx, err := RowMajorIndex(NewVec2(x, y), width)
			if err != nil {
				t.Fatal(err)
			}
			if idx >= width*height {
				t.Fatalf("index %d of (%d, %d) out of range", idx, x, y)
			}
			if seen[idx] {
				t.Fatalf("index %d of (%d, %d) used twice", idx, x, y)
			}
			seen[idx] = true
		}
	}
	for idx, ok := range seen {
		if !ok {
			t.Errorf("index %d not used", idx)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"4x4", NewVec2[uint](4, 4), false},
		{"16x9", NewVec2[uint](16, 9), false},
		{"0x0", NewVec2[uint](0, 0), false},
		{"+4x+3", NewVec2[uint](4, 3), false},
		{"+2x2", NewVec2[uint](2, 2), false},
		{"++4x4", Size{}, true},
		{"+x4", Size{}, true},
		{"4x+-3", Size{}, true},
		{"4", Size{}, true},
		{"x4", Size{}, true},
		{"4x", Size{}, true},
		{"ax4", Size{}, true},
		{"-1x4", Size{}, true},
		{"4x4x4", Size{}, true},
		{"", Size{}, true},
	}
	for _, tc := range tests {
		got, err := ParseSize(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrSizeSyntax) {
				t.Errorf("ParseSize(%q): expected ErrSizeSyntax, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseSize(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
	if ErrSizeSyntax.Error() != `Expects inputs like "4x4"` {
		t.Errorf("unexpected message %q", ErrSizeSyntax.Error())
	}
}
