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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGridZeroTile(t *testing.T) {
	for _, tile := range []Size{{}, NewVec2[uint](0, 4), NewVec2[uint](4, 0)} {
		for _, mode := range []DivideMode{DivideAdjust, DivideCrop} {
			_, err := NewGrid(NewVec2[uint](10, 10), tile, mode)
			if !errors.Is(err, ErrZeroTileSize) {
				t.Errorf("NewGrid with tile %v (%v): expected ErrZeroTileSize, got %v", tile, mode, err)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("ErrZeroTileSize must be a configuration error, got %v", err)
			}
		}
	}
}

func TestGridDims(t *testing.T) {
	tests := []struct {
		image, tile Size
		mode        DivideMode
		want        Size
	}{
		{NewVec2[uint](4, 4), NewVec2[uint](2, 2), DivideAdjust, NewVec2[uint](2, 2)},
		{NewVec2[uint](5, 3), NewVec2[uint](2, 2), DivideAdjust, NewVec2[uint](3, 2)},
		{NewVec2[uint](5, 3), NewVec2[uint](2, 2), DivideCrop, NewVec2[uint](2, 1)},
		{NewVec2[uint](1, 1), NewVec2[uint](2, 2), DivideAdjust, NewVec2[uint](1, 1)},
		{NewVec2[uint](1, 1), NewVec2[uint](2, 2), DivideCrop, NewVec2[uint](0, 0)},
		{NewVec2[uint](0, 0), NewVec2[uint](2, 2), DivideAdjust, NewVec2[uint](0, 0)},
	}
	for _, tc := range tests {
		grid, err := NewGrid(tc.image, tc.tile, tc.mode)
		if err != nil {
			t.Fatal(err)
		}
		if got := grid.Dims(); got != tc.want {
			t.Errorf("Dims of %v / %v (%v) = %v, want %v", tc.image, tc.tile, tc.mode, got, tc.want)
		}
		if grid.Len() != tc.want.Area() {
			t.Errorf("Len = %d, want %d", grid.Len(), tc.want.Area())
		}
		if grid.Mode() != tc.mode || grid.ImageSize() != tc.image || grid.TileSize() != tc.tile {
			t.Errorf("grid accessors don't return the construction arguments")
		}
	}
}

// checkPartition asserts that the tiles of an adjusted grid cover every pixel
// of the image exactly once.
func checkPartition(t *testing.T, grid Grid) {
	t.Helper()
	img := grid.ImageSize()
	covered := make([]int, img.Area())
	for coord, region := range grid.Tiles() {
		if region.Empty() {
			t.Fatalf("tile %v has empty region %v", coord, region)
		}
		if region.Size.X > grid.TileSize().X || region.Size.Y > grid.TileSize().Y {
			t.Fatalf("tile %v region %v is larger than tile size", coord, region)
		}
		// only the last column and row may have smaller tiles
		if region.Size.X != grid.TileSize().X && coord.X != grid.Dims().X-1 {
			t.Fatalf("tile %v is narrow but not in the last column", coord)
		}
		if region.Size.Y != grid.TileSize().Y && coord.Y != grid.Dims().Y-1 {
			t.Fatalf("tile %v is short but not in the last row", coord)
		}
		max := region.Max()
		if max.X > img.X || max.Y > img.Y {
			t.Fatalf("tile %v region %v exceeds image %v", coord, region, img)
		}
		for y := region.Pos.Y; y < max.Y; y++ {
			for x := region.Pos.X; x < max.X; x++ {
				covered[y*img.X+x]++
			}
		}
	}
	for i, n := range covered {
		if n != 1 {
			t.Fatalf("pixel (%d, %d) covered %d times", uint(i)%img.X, uint(i)/img.X, n)
		}
	}
}

func TestGridPartition(t *testing.T) {
	for w := uint(1); w <= 13; w++ {
		for h := uint(1); h <= 9; h++ {
			for _, tile := range []Size{NewVec2[uint](1, 1), NewVec2[uint](2, 3), NewVec2[uint](4, 4), NewVec2[uint](5, 2), NewVec2[uint](20, 20)} {
				grid, err := NewGrid(NewVec2(w, h), tile, DivideAdjust)
				if err != nil {
					t.Fatal(err)
				}
				checkPartition(t, grid)
			}
		}
	}
}

func TestGridCropFullTiles(t *testing.T) {
	grid, err := NewGrid(NewVec2[uint](11, 7), NewVec2[uint](3, 2), DivideCrop)
	if err != nil {
		t.Fatal(err)
	}
	if grid.Dims() != NewVec2[uint](3, 3) {
		t.Fatalf("Dims = %v", grid.Dims())
	}
	n := 0
	for _, region := range grid.Tiles() {
		n++
		if region.Size != grid.TileSize() {
			t.Errorf("crop tile %v is not a full tile", region)
		}
	}
	if uint(n) != grid.Len() {
		t.Errorf("iterated %d tiles, want %d", n, grid.Len())
	}
}

func TestGridEdgeRegions(t *testing.T) {
	grid, err := NewGrid(NewVec2[uint](5, 3), NewVec2[uint](2, 2), DivideAdjust)
	if err != nil {
		t.Fatal(err)
	}
	var got []Rect[uint]
	for _, region := range grid.Tiles() {
		got = append(got, region)
	}
	want := []Rect[uint]{
		NewRect(NewVec2[uint](0, 0), NewVec2[uint](2, 2)),
		NewRect(NewVec2[uint](2, 0), NewVec2[uint](2, 2)),
		NewRect(NewVec2[uint](4, 0), NewVec2[uint](1, 2)),
		NewRect(NewVec2[uint](0, 2), NewVec2[uint](2, 1)),
		NewRect(NewVec2[uint](2, 2), NewVec2[uint](2, 1)),
		NewRect(NewVec2[uint](4, 2), NewVec2[uint](1, 1)),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("regions mismatch (-want +got):\n%s", diff)
	}
}

func TestGridTilesRestartable(t *testing.T) {
	grid, err := NewGrid(NewVec2[uint](7, 5), NewVec2[uint](3, 2), DivideAdjust)
	if err != nil {
		t.Fatal(err)
	}
	collect := func() []Size {
		var coords []Size
		for coord := range grid.Tiles() {
			coords = append(coords, coord)
		}
		return coords
	}
	first := collect()
	if diff := cmp.Diff(first, collect()); diff != "" {
		t.Errorf("second iteration differs (-first +second):\n%s", diff)
	}
	// row-major: index i is at position i
	for i, coord := range first {
		index, indexErr := grid.Index(coord)
		if indexErr != nil {
			t.Fatal(indexErr)
		}
		if index != uint(i) {
			t.Errorf("tile %v at position %d has index %d", coord, i, index)
		}
		if back := grid.Coord(index); back != coord {
			t.Errorf("Coord(%d) = %v, want %v", index, back, coord)
		}
	}
	// stopping early is allowed
	n := 0
	for range grid.Tiles() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("stopped after %d tiles", n)
	}
}

func TestGridIndexOutside(t *testing.T) {
	grid, err := NewGrid(NewVec2[uint](4, 4), NewVec2[uint](2, 2), DivideAdjust)
	if err != nil {
		t.Fatal(err)
	}
	if grid.Contains(NewVec2[uint](2, 0)) {
		t.Error("(2, 0) must not be contained in a 2x2 grid")
	}
	if _, err := grid.Index(NewVec2[uint](2, 0)); err == nil {
		t.Error("expected an error for a coordinate outside the grid")
	}
}

func TestDivideModeString(t *testing.T) {
	if DivideAdjust.String() == DivideCrop.String() {
		t.Errorf("modes have the same name %q", DivideAdjust.String())
	}
}
