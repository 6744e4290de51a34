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
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
)

// RGB is a color containing r, g and b components.
type RGB struct {
	R, G, B uint8
}

// NewRGB returns a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// ConvertRGB converts a generic color into the internal RGB representation.
func ConvertRGB(c color.Color) RGB {
	// convert to rgba model
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	// convert to internal rgb representation
	return RGB{R: rgba.R, G: rgba.G, B: rgba.B}
}

// RGBA returns the opaque color.RGBA with the same components.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ToRGBA converts any image to an opaque *image.RGBA with bounds starting at
// (0, 0). This is the pixel buffer all other functions work on.
//
// Alpha is dropped: each pixel keeps its non-premultiplied color and gets
// A = 0xff, so a half transparent red stays red.
// If img already is an opaque image starting at (0, 0) it is returned
// unchanged.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) && rgba.Opaque() {
		return rgba
	}
	res := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		draw.Draw(res, res.Bounds(), img, bounds.Min, draw.Src)
		return res
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := res.PixOffset(0, y-bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			res.Pix[offset] = c.R
			res.Pix[offset+1] = c.G
			res.Pix[offset+2] = c.B
			res.Pix[offset+3] = 0xff
			offset += 4
		}
	}
	return res
}

// ImageSize returns the size of the pixel buffer.
func ImageSize(img image.Image) Size {
	return FromPoint[uint](img.Bounds().Size())
}

// ImageResizer resizes an image to the given width and height.
type ImageResizer interface {
	Resize(width, height uint, img image.Image) image.Image
}

// NfntResizer uses the nfnt/resize package to resize an image.
type NfntResizer struct {
	// InterP is the interpolation function to use.
	InterP resize.InterpolationFunction
}

// NewNfntResizer returns a new resizer given the interpolation function.
func NewNfntResizer(interP resize.InterpolationFunction) NfntResizer {
	return NfntResizer{interP}
}

// GetInterP returns an interpolation function given a desired quality.
// The higher the quality the better the interpolation should be, but execution
// time is higher. Currently supported are values between 0 and 4, each
// selecting a different interpolation function. Values greater than 4 are
// treated as 5 and select Lanczos3.
//
// This method assumes that the interpolation functions provided by nfnt/resize
// can be sorted according to their quality.
func GetInterP(quality uint) resize.InterpolationFunction {
	switch quality {
	case 0:
		return resize.NearestNeighbor
	case 1:
		return resize.Bilinear
	case 2:
		return resize.Bicubic
	case 3:
		return resize.MitchellNetravali
	case 4:
		return resize.Lanczos2
	default:
		return resize.Lanczos3
	}
}

// InterPString returns a readable name of the interpolation function.
func InterPString(interP resize.InterpolationFunction) string {
	switch interP {
	case resize.NearestNeighbor:
		return "NearestNeighbor"
	case resize.Bilinear:
		return "Bilinear"
	case resize.Bicubic:
		return "Bicubic"
	case resize.MitchellNetravali:
		return "MitchellNetravali"
	case resize.Lanczos2:
		return "Lanczos2"
	case resize.Lanczos3:
		return "Lanczos3"
	default:
		return "Unknown"
	}
}

var (
	// DefaultResizer is the resizer that is used by default.
	DefaultResizer = NewNfntResizer(resize.MitchellNetravali)
)

// Resize calls nfnt/resize methods.
func (resizer NfntResizer) Resize(width, height uint, img image.Image) image.Image {
	return resize.Resize(width, height, img, resizer.InterP)
}
