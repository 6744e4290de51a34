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
	"image/draw"
	"strings"
	"sync"
)

var (
	// ImageCacheSize is the size of image caches. It controls how many scaled
	// tiles are kept during composition, it must be a number ≥ 1.
	ImageCacheSize = 15
)

// ResizeStrategy returns the pixels of a candidate tile (tile, a full tile
// of the source image) fitted to exactly the given size.
// The candidate index is passed along for caching.
//
// Sizes only differ for template tiles in the last row / column, all other
// tiles have exactly the size of a candidate.
type ResizeStrategy func(resizer ImageResizer, cache *ImageCache, candidate int,
	tile image.Image, size Size) image.Image

// CropStrategy uses the top left part of the candidate. It never scales.
func CropStrategy(resizer ImageResizer, cache *ImageCache, candidate int,
	tile image.Image, size Size) image.Image {
	bounds := tile.Bounds()
	r := image.Rectangle{Min: bounds.Min, Max: bounds.Min.Add(Point(size))}
	sub, ok := tile.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		// draw will only read the area required
		return tile
	}
	return sub.SubImage(r.Intersect(bounds))
}

// ScaleStrategy scales the whole candidate to the given size with resizer.
// Scaled images are cached, the same candidate often appears in several
// tiles of the same size.
func ScaleStrategy(resizer ImageResizer, cache *ImageCache, candidate int,
	tile image.Image, size Size) image.Image {
	if ImageSize(tile) == size {
		return tile
	}
	if cache != nil {
		if img := cache.Get(candidate, size); img != nil {
			return img
		}
	}
	img := resizer.Resize(size.X, size.Y, tile)
	if cache != nil {
		cache.Put(candidate, size, img)
	}
	return img
}

// GetResizeStrategy returns the strategy for the name "crop" or "scale".
func GetResizeStrategy(name string) (ResizeStrategy, error) {
	switch strings.ToLower(name) {
	case "crop":
		return CropStrategy, nil
	case "scale":
		return ScaleStrategy, nil
	default:
		return nil, fmt.Errorf("%w: Unknown fit \"%s\", expected \"crop\" or \"scale\"",
			ErrConfiguration, name)
	}
}

// ImageCache is used to cache resized versions of candidates during mosaic
// composition. Entries are removed in insertion order once the cache is full.
//
// Caches are safe for concurrent use.
type ImageCache struct {
	m           *sync.Mutex
	size        int
	content     map[string]image.Image
	insertOrder []string
}

// NewImageCache returns an empty image cache. size is the number of images that
// will be cached. size must be ≥ 1.
func NewImageCache(size int) *ImageCache {
	if size <= 0 {
		size = 1
	}
	var m sync.Mutex
	return &ImageCache{
		m:           &m,
		size:        size,
		content:     make(map[string]image.Image, size),
		insertOrder: make([]string, 0, size),
	}
}

func (cache *ImageCache) keyFormat(candidate int, size Size) string {
	return fmt.Sprintf("%d-%d-%d", candidate, size.X, size.Y)
}

func (cache *ImageCache) lookup(key string) image.Image {
	if img, has := cache.content[key]; has {
		return img
	}
	return nil
}

// Len returns the number of cached images.
func (cache *ImageCache) Len() int {
	cache.m.Lock()
	defer cache.m.Unlock()
	return len(cache.insertOrder)
}

// Put adds an image to the cache. Usually Put is called after Get: If the
// image was not found in the cache it is scaled and then added to the cache via
// Put.
func (cache *ImageCache) Put(candidate int, size Size, img image.Image) {
	cache.m.Lock()
	defer cache.m.Unlock()
	keyFmt := cache.keyFormat(candidate, size)
	// first check if image already in cache, if yes do nothing
	if lookup := cache.lookup(keyFmt); lookup != nil {
		return
	}
	// check if cache is full
	if len(cache.insertOrder) < cache.size {
		cache.insertOrder = append(cache.insertOrder, keyFmt)
		cache.content[keyFmt] = img
	} else {
		// cache full, remove first element form cache
		// since size must be >= 1 this should be fine
		fst := cache.insertOrder[0]
		cache.insertOrder = append(cache.insertOrder[1:], keyFmt)
		delete(cache.content, fst)
		cache.content[keyFmt] = img
	}
}

// Get returns the image from the cache. If the return value is nil the image
// was not found in the cache and should be added to the cache by Put.
func (cache *ImageCache) Get(candidate int, size Size) image.Image {
	cache.m.Lock()
	defer cache.m.Unlock()
	return cache.lookup(cache.keyFormat(candidate, size))
}

func candidateImage(sources []*image.RGBA, c Candidate) image.Image {
	src := sources[c.Source]
	return src.SubImage(ImageRect(c.Region).Add(src.Bounds().Min))
}

func insertTile(into *image.RGBA, area Rect[uint], tile image.Image) {
	r := ImageRect(area)
	draw.Draw(into, r, tile, tile.Bounds().Min, draw.Src)
}

// ComposeMosaic creates the mosaic for the tiles of grid. selection contains
// for each tile (in row-major order) the index of the candidate to use, as
// returned by Matcher.Select.
// The result has the size of the image divided by grid.
//
// If resizer is nil DefaultResizer is used, if s is nil CropStrategy.
func ComposeMosaic(grid Grid, sources []*image.RGBA, candidates []Candidate,
	selection []int, resizer ImageResizer, s ResizeStrategy) (*image.RGBA, error) {
	if uint(len(selection)) != grid.Len() {
		return nil, fmt.Errorf("Got %d selected candidates for %d tiles", len(selection), grid.Len())
	}
	if resizer == nil {
		resizer = DefaultResizer
	}
	if s == nil {
		s = CropStrategy
	}
	res := image.NewRGBA(image.Rectangle{Max: Point(grid.ImageSize())})
	cache := NewImageCache(ImageCacheSize)
	for coord, area := range grid.Tiles() {
		index, indexErr := grid.Index(coord)
		if indexErr != nil {
			return nil, indexErr
		}
		selected := selection[index]
		if selected < 0 || selected >= len(candidates) {
			return nil, fmt.Errorf("Invalid candidate %d for tile %v", selected, coord)
		}
		c := candidates[selected]
		tile := s(resizer, cache, selected, candidateImage(sources, c), area.Size)
		insertTile(res, area, tile)
	}
	return res, nil
}
