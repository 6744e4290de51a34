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
	"image"
)

// AverageColor descibes the average of several RGB colors. It is the
// signature used to compare tiles.
type AverageColor RGB

// ComputeAverageColor computes the average color of the given region of img.
//
// The region is first shrunk by inset on every side (see Rect.ShrinkCentered)
// so that pixels at the border of a tile don't influence the average. If
// nothing remains after shrinking the whole region is used.
// region is relative to the top left corner of img (so it also works for
// sub-images) and clipped to its size, for an empty region the result is
// black.
func ComputeAverageColor(img *image.RGBA, region Rect[uint], inset Size) AverageColor {
	origin := img.Bounds().Min
	region = region.Intersect(NewRect(Size{}, ImageSize(img)))
	if inner := region.ShrinkCentered(inset); !inner.Empty() {
		region = inner
	}
	// don't do anything for empty regions
	if region.Empty() {
		return AverageColor{}
	}
	// just to be sure we use big integers, depending on the image size we might
	// get problems
	var r, g, b uint64
	numPixels := uint64(region.Area())
	max := region.Max()
	for y := region.Pos.Y; y < max.Y; y++ {
		offset := img.PixOffset(origin.X+int(region.Pos.X), origin.Y+int(y))
		for x := region.Pos.X; x < max.X; x++ {
			r += uint64(img.Pix[offset])
			g += uint64(img.Pix[offset+1])
			b += uint64(img.Pix[offset+2])
			offset += 4
		}
	}
	r /= numPixels
	g /= numPixels
	b /= numPixels
	return AverageColor{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Vector returns the components as a vector, the representation metrics work
// on.
func (c AverageColor) Vector() []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B)}
}

// Dist returns the distance between the two average color vectors given the
// metric for the component vectors.
func (c AverageColor) Dist(other AverageColor, metric VectorMetric) float64 {
	return metric(c.Vector(), other.Vector())
}
