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

	log "github.com/sirupsen/logrus"
)

// Candidate is a tile of a source image that can be used in the mosaic.
type Candidate struct {
	// Source is the position of the source image in the list of sources.
	Source int
	// Coord is the grid coordinate of the tile in the source image.
	Coord Size
	// Region is the pixel area of the tile in the source image, its size is
	// always the tile size.
	Region Rect[uint]
	// Signature is the average color of the tile.
	Signature AverageColor

	vector []float64
}

// Candidates divides each source image into full tiles (see DivideCrop) and
// computes the signature of each tile. Pixels at the right and bottom border
// that don't form a full tile are ignored. Sources are normalised with ToRGBA
// first, regions are relative to the top left corner of each source.
//
// The result is ordered by source and then by row-major tile order; this is
// the order in which ties are broken.
// If no source contains a full tile ErrInsufficientSourceMaterial is
// returned.
func Candidates(sources []*image.RGBA, tileSize, inset Size) ([]Candidate, error) {
	if err := ValidateTileSize(tileSize); err != nil {
		return nil, err
	}
	var res []Candidate
	for i, src := range sources {
		src = ToRGBA(src)
		grid, gridErr := NewGrid(ImageSize(src), tileSize, DivideCrop)
		if gridErr != nil {
			return nil, gridErr
		}
		if grid.Len() == 0 {
			log.WithFields(log.Fields{
				"source":   i,
				"size":     ImageSize(src).String(),
				"tileSize": tileSize.String(),
			}).Debug("Source contains no full tile")
			continue
		}
		for coord, region := range grid.Tiles() {
			sig := ComputeAverageColor(src, region, inset)
			res = append(res, Candidate{
				Source:    i,
				Coord:     coord,
				Region:    region,
				Signature: sig,
				vector:    sig.Vector(),
			})
		}
	}
	if len(res) == 0 {
		return nil, ErrInsufficientSourceMaterial
	}
	return res, nil
}

// Matcher selects for each tile of the template the candidate with the
// smallest distance to it. Tiles are compared by their average color
// (see ComputeAverageColor), both template tiles and candidates must be
// computed with the same Inset.
//
// If two candidates have the same distance the first one (in the order of
// the candidates slice) is selected, so the selection is deterministic.
type Matcher struct {
	Metric VectorMetric
	Inset  Size
	// NumRoutines is the number of tiles matched concurrently. Each tile is
	// matched independently, so the result doesn't depend on it.
	NumRoutines int
	// Progress is called after each tile, nil is treated as ProgressIgnore.
	Progress ProgressFunc
}

// NewMatcher returns a new matcher. If metric is nil SquaredDistance is used.
func NewMatcher(metric VectorMetric, inset Size, numRoutines int) *Matcher {
	if metric == nil {
		metric = SquaredDistance
	}
	if numRoutines <= 0 {
		numRoutines = 1
	}
	return &Matcher{Metric: metric, Inset: inset, NumRoutines: numRoutines, Progress: ProgressIgnore}
}

// Best returns the index of the candidate closest to sig and its distance.
// candidates must not be empty.
func (m *Matcher) Best(sig AverageColor, candidates []Candidate) (int, float64) {
	vector := sig.Vector()
	bestIndex := 0
	bestDist := m.Metric(vector, candidates[0].Vector())
	for i := 1; i < len(candidates); i++ {
		// strictly smaller, the first candidate wins ties
		if dist := m.Metric(vector, candidates[i].Vector()); dist < bestDist {
			bestIndex, bestDist = i, dist
		}
	}
	return bestIndex, bestDist
}

// Vector returns the signature of c as a vector.
func (c Candidate) Vector() []float64 {
	if c.vector == nil {
		return c.Signature.Vector()
	}
	return c.vector
}

// Select returns for each tile of grid the index of the best candidate, in
// row-major order of the tiles.
// If candidates is empty ErrInsufficientSourceMaterial is returned.
func (m *Matcher) Select(template *image.RGBA, grid Grid, candidates []Candidate) ([]int, error) {
	if len(candidates) == 0 {
		return nil, ErrInsufficientSourceMaterial
	}
	template = ToRGBA(template)
	progress := m.Progress
	if progress == nil {
		progress = ProgressIgnore
	}
	numTiles := int(grid.Len())
	result := make([]int, numTiles)

	matchTile := func(index int) {
		region := grid.Region(grid.Coord(uint(index)))
		sig := ComputeAverageColor(template, region, m.Inset)
		best, dist := m.Best(sig, candidates)
		result[index] = best
		if log.IsLevelEnabled(log.TraceLevel) {
			log.WithFields(log.Fields{
				"tile":      index,
				"region":    region.String(),
				"candidate": best,
				"distance":  dist,
			}).Trace("Matched tile")
		}
	}

	if m.NumRoutines <= 1 {
		for i := 0; i < numTiles; i++ {
			matchTile(i)
			progress(i + 1)
		}
		return result, nil
	}

	jobs := make(chan int, BufferSize)
	done := make(chan bool, BufferSize)

	// each worker writes only result[index] of its own job, no further
	// synchronization is required
	for w := 0; w < m.NumRoutines; w++ {
		go func() {
			for next := range jobs {
				matchTile(next)
				done <- true
			}
		}()
	}

	// add jobs
	go func() {
		for i := 0; i < numTiles; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// wait until done
	for numDone := 1; numDone <= numTiles; numDone++ {
		<-done
		progress(numDone)
	}
	return result, nil
}
