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
	"time"

	log "github.com/sirupsen/logrus"
)

// Options controls the generation of a mosaic.
type Options struct {
	// TileSize is the size of the tiles in pixels, it must be at least 1x1.
	TileSize Size

	// Inset is the number of pixels ignored at each border of a tile when
	// computing its average color.
	Inset Size

	// Metric compares the average colors, defaults to SquaredDistance.
	Metric VectorMetric

	// Strategy fits candidates into the smaller tiles at the right and bottom
	// border, defaults to CropStrategy.
	Strategy ResizeStrategy

	// Resizer is used by ScaleStrategy, defaults to DefaultResizer.
	Resizer ImageResizer

	// NumRoutines is the number of tiles matched concurrently, defaults to 1.
	NumRoutines int

	// Progress is called after each matched tile, defaults to ProgressIgnore.
	Progress ProgressFunc
}

// DefaultOptions returns the options with all defaults set for the given tile
// size.
func DefaultOptions(tileSize Size) Options {
	return Options{
		TileSize:    tileSize,
		Metric:      SquaredDistance,
		Strategy:    CropStrategy,
		Resizer:     DefaultResizer,
		NumRoutines: 1,
		Progress:    ProgressIgnore,
	}
}

// Generate creates the mosaic for template from the tiles of sources.
//
// The template is divided into tiles of opts.TileSize (DivideAdjust), each
// source into full tiles (DivideCrop). Each template tile is replaced by the
// source tile with the most similar average color.
//
// Errors: ErrZeroTileSize (wrapped) if the tile size has a zero component and
// ErrInsufficientSourceMaterial if no source contains a full tile.
// Template and sources may be any *image.RGBA, including sub-images and
// images with transparency, they are normalised with ToRGBA.
// Generate never writes any file, the caller saves the result.
func Generate(template *image.RGBA, sources []*image.RGBA, opts Options) (*image.RGBA, error) {
	if err := ValidateTileSize(opts.TileSize); err != nil {
		return nil, err
	}
	template = ToRGBA(template)
	normalised := make([]*image.RGBA, len(sources))
	for i, src := range sources {
		normalised[i] = ToRGBA(src)
	}
	sources = normalised
	grid, gridErr := NewGrid(ImageSize(template), opts.TileSize, DivideAdjust)
	if gridErr != nil {
		return nil, gridErr
	}
	start := time.Now()
	candidates, candErr := Candidates(sources, opts.TileSize, opts.Inset)
	if candErr != nil {
		return nil, candErr
	}
	log.WithFields(log.Fields{
		"sources":    len(sources),
		"candidates": len(candidates),
		"tiles":      grid.Len(),
		"grid":       grid.Dims().String(),
	}).Debug("Computed candidate tiles")

	matcher := NewMatcher(opts.Metric, opts.Inset, opts.NumRoutines)
	matcher.Progress = opts.Progress
	selection, selectErr := matcher.Select(template, grid, candidates)
	if selectErr != nil {
		return nil, selectErr
	}
	log.WithField("took", time.Since(start).String()).Debug("Selected tiles")

	res, composeErr := ComposeMosaic(grid, sources, candidates, selection,
		opts.Resizer, opts.Strategy)
	if composeErr != nil {
		return nil, composeErr
	}
	log.WithField("took", time.Since(start).String()).Debug("Composed mosaic")
	return res, nil
}
