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
	"iter"
)

// DivideMode is used to describe in which way to handle remaining pixels
// in image division.
// As an example consider an image with 99 pixels width that we want to divide
// into tiles with 10 pixels. This leads to 9 tiles with 10 pixels, but 9
// pixels are left. DivideMode describes what to do with the remaining 9
// pixels: Crop means to discard them, Adjust means to add a last tile with a
// width of 9.
type DivideMode int

const (
	// DivideAdjust is the mode in which the last tile in a row / column is
	// adjusted to the remaining pixels. It is used for the template, every
	// pixel of the template belongs to exactly one tile.
	DivideAdjust DivideMode = iota
	// DivideCrop is the mode in which remaining pixels are discarded. It is used
	// for source images, only full tiles are candidates.
	DivideCrop
)

func (mode DivideMode) String() string {
	switch mode {
	case DivideAdjust:
		return "DivideAdjust"
	case DivideCrop:
		return "DivideCrop"
	default:
		return fmt.Sprintf("DivideMode(%d)", mode)
	}
}

// Grid is the division of an image into tiles of a fixed size.
//
// Tiles are addressed by their grid coordinate (column, row) and numbered in
// row-major order, that is the tile at (x, y) has index y * Dims().X + x.
type Grid struct {
	imageSize Size
	tileSize  Size
	dims      Size
	mode      DivideMode
}

// NewGrid returns the division of an image of size imageSize into tiles of
// size tileSize. tileSize must be at least 1x1, otherwise an error wrapping
// ErrZeroTileSize is returned.
func NewGrid(imageSize, tileSize Size, mode DivideMode) (Grid, error) {
	if err := ValidateTileSize(tileSize); err != nil {
		return Grid{}, err
	}
	var dims Size
	switch mode {
	case DivideAdjust:
		dims = CeilDiv(imageSize, tileSize)
	case DivideCrop:
		dims = imageSize.Div(tileSize)
	default:
		return Grid{}, fmt.Errorf("%w: Unknown divide mode %v", ErrConfiguration, mode)
	}
	// the number of tiles must be addressable
	if _, err := CheckedArea(dims); err != nil {
		return Grid{}, err
	}
	return Grid{imageSize: imageSize, tileSize: tileSize, dims: dims, mode: mode}, nil
}

// ValidateTileSize returns an error wrapping ErrZeroTileSize if the tile has a
// zero area.
func ValidateTileSize(tileSize Size) error {
	area, err := CheckedArea(tileSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if area == 0 {
		return fmt.Errorf("%w, got %v", ErrZeroTileSize, tileSize)
	}
	return nil
}

// ImageSize returns the size of the divided image.
func (g Grid) ImageSize() Size {
	return g.imageSize
}

// TileSize returns the size of a full tile.
func (g Grid) TileSize() Size {
	return g.tileSize
}

// Mode returns the divide mode of the grid.
func (g Grid) Mode() DivideMode {
	return g.mode
}

// Dims returns the number of tiles in each direction.
func (g Grid) Dims() Size {
	return g.dims
}

// Len returns the number of tiles.
func (g Grid) Len() uint {
	return g.dims.Area()
}

// Contains reports whether coord is a valid grid coordinate.
func (g Grid) Contains(coord Size) bool {
	return coord.X < g.dims.X && coord.Y < g.dims.Y
}

// Region returns the pixel area of the tile at coord. In DivideAdjust mode
// tiles in the last column / row may be smaller than the tile size.
// coord must be a valid coordinate.
func (g Grid) Region(coord Size) Rect[uint] {
	pos := coord.Mul(g.tileSize)
	size := g.tileSize.Min(g.imageSize.Sub(pos))
	return NewRect(pos, size)
}

// Index returns the row-major index of the tile at coord.
func (g Grid) Index(coord Size) (uint, error) {
	if !g.Contains(coord) {
		return 0, fmt.Errorf("Tile %v is not in grid of dimension %v", coord, g.dims)
	}
	return RowMajorIndex(coord, g.dims.X)
}

// Coord is the inverse of Index, it returns the grid coordinate of the tile
// with the given row-major index. index must be smaller than Len.
func (g Grid) Coord(index uint) Size {
	return NewVec2(index%g.dims.X, index/g.dims.X)
}

// Tiles iterates over all tiles in row-major order (left to right, top to
// bottom) and yields the grid coordinate and pixel area of each tile.
// The sequence can be iterated any number of times.
func (g Grid) Tiles() iter.Seq2[Size, Rect[uint]] {
	return func(yield func(Size, Rect[uint]) bool) {
		for y := uint(0); y < g.dims.Y; y++ {
			for x := uint(0); x < g.dims.X; x++ {
				coord := NewVec2(x, y)
				if !yield(coord, g.Region(coord)) {
					return
				}
			}
		}
	}
}
