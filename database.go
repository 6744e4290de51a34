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

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

// ImageID is used to unambiguously identify an image.
type ImageID int

// ImageStorage is used to administrate the collection of source images.
// Images are not stored in memory but are identified by an id and can be
// loaded into memory when required.
// All ids < NumImages are valid, the order of the ids is the order in which
// source tiles are considered.
type ImageStorage interface {
	// NumImages returns the number of images in the storage as an ImageID.
	NumImages() ImageID

	// LoadImage loads an image into memory.
	LoadImage(id ImageID) (*image.RGBA, error)

	// LoadConfig loads the config of the image with the given id, it should be
	// much cheaper than LoadImage.
	LoadConfig(id ImageID) (image.Config, error)
}

// FSImageDB implements ImageStorage. It uses images stored on the filesystem
// and opens them on demand.
type FSImageDB struct {
	Paths []string
}

// NewFSImageDB returns a storage for the given files. A leading ~ is expanded
// to the home directory of the user.
func NewFSImageDB(paths ...string) (*FSImageDB, error) {
	res := &FSImageDB{Paths: make([]string, 0, len(paths))}
	for _, path := range paths {
		expanded, expandErr := homedir.Expand(path)
		if expandErr != nil {
			return nil, expandErr
		}
		res.Paths = append(res.Paths, expanded)
	}
	return res, nil
}

// GetPath returns the path of the image with the given id.
func (db *FSImageDB) GetPath(id ImageID) string {
	return db.Paths[id]
}

// NumImages returns the number of paths.
func (db *FSImageDB) NumImages() ImageID {
	return ImageID(len(db.Paths))
}

func (db *FSImageDB) checkID(id ImageID) error {
	if id < 0 || id >= db.NumImages() {
		return fmt.Errorf("Invalid image id: Not associated with an image %d", id)
	}
	return nil
}

// LoadImage decodes the image with the given id.
func (db *FSImageDB) LoadImage(id ImageID) (*image.RGBA, error) {
	if err := db.checkID(id); err != nil {
		return nil, err
	}
	return LoadImage(db.GetPath(id))
}

// LoadConfig decodes only the header of the image with the given id.
func (db *FSImageDB) LoadConfig(id ImageID) (image.Config, error) {
	if err := db.checkID(id); err != nil {
		return image.Config{}, err
	}
	return LoadConfig(db.GetPath(id))
}

// MemoryImageDB is an ImageStorage holding decoded images.
type MemoryImageDB []*image.RGBA

// NumImages returns the number of images.
func (db MemoryImageDB) NumImages() ImageID {
	return ImageID(len(db))
}

// LoadImage returns the image with the given id.
func (db MemoryImageDB) LoadImage(id ImageID) (*image.RGBA, error) {
	if id < 0 || id >= db.NumImages() {
		return nil, fmt.Errorf("Invalid image id: Not associated with an image %d", id)
	}
	return db[id], nil
}

// LoadConfig returns the dimensions of the image with the given id.
func (db MemoryImageDB) LoadConfig(id ImageID) (image.Config, error) {
	img, err := db.LoadImage(id)
	if err != nil {
		return image.Config{}, err
	}
	bounds := img.Bounds()
	return image.Config{ColorModel: img.ColorModel(), Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// LoadSources loads all images from the storage that contain at least one
// full tile. Images smaller than tileSize in one direction are skipped without
// decoding them (a warning is logged). The order of the storage is retained.
//
// Any error while reading an image is returned, the result might be empty if
// all images are too small.
func LoadSources(storage ImageStorage, tileSize Size) ([]*image.RGBA, error) {
	numImages := storage.NumImages()
	res := make([]*image.RGBA, 0, int(numImages))
	var id ImageID
	for ; id < numImages; id++ {
		config, configErr := storage.LoadConfig(id)
		if configErr != nil {
			return nil, configErr
		}
		size := NewVec2(uint(config.Width), uint(config.Height))
		if size.X < tileSize.X || size.Y < tileSize.Y {
			log.WithFields(log.Fields{
				"image":    id,
				"size":     size.String(),
				"tileSize": tileSize.String(),
			}).Warn("Source image is smaller than a tile, ignoring it")
			continue
		}
		img, imgErr := storage.LoadImage(id)
		if imgErr != nil {
			return nil, imgErr
		}
		res = append(res, img)
	}
	return res, nil
}
