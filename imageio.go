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
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// registers the webp decoder, webp can be read but not written
	_ "golang.org/x/image/webp"
)

// EncodableImage reports whether SaveImage can write files with the given
// extension, for example ".jpg". The check is case insensitive.
func EncodableImage(ext string) bool {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff":
		return true
	default:
		return false
	}
}

// DefaultJPGQuality is the jpeg quality used if no other quality is given.
const DefaultJPGQuality = 100

// LoadImage opens and decodes an image, the format is detected from the
// file content. The image is converted to an opaque *image.RGBA starting at
// (0, 0), see ToRGBA.
// Errors are reported as *DecodeError.
func LoadImage(path string) (*image.RGBA, error) {
	r, openErr := os.Open(path)
	if openErr != nil {
		return nil, &DecodeError{Path: path, Err: openErr}
	}
	defer r.Close()
	img, _, decodeErr := image.Decode(r)
	if decodeErr != nil {
		return nil, &DecodeError{Path: path, Err: decodeErr}
	}
	return ToRGBA(img), nil
}

// LoadConfig decodes only the color model and dimensions of an image.
func LoadConfig(path string) (image.Config, error) {
	r, openErr := os.Open(path)
	if openErr != nil {
		return image.Config{}, &DecodeError{Path: path, Err: openErr}
	}
	defer r.Close()
	config, _, decodeErr := image.DecodeConfig(r)
	if decodeErr != nil {
		return image.Config{}, &DecodeError{Path: path, Err: decodeErr}
	}
	return config, nil
}

// EncodeImage writes img to w, the format is given by the file extension ext
// (for example ".png"). jpgQuality is only used for jpeg files.
func EncodeImage(w io.Writer, img image.Image, ext string, jpgQuality int) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpgQuality})
	case ".png":
		return png.Encode(w, img)
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("Unsupported image format \"%s\"", ext)
	}
}

// SaveImage encodes img to path, the format is chosen by the extension of
// path.
//
// The image is first written to a temporary file in the same directory which
// is renamed to path once encoding succeeded. Thus path is either created
// completely or not at all.
// Errors are reported as *EncodeError.
func SaveImage(path string, img image.Image, jpgQuality int) (err error) {
	ext := filepath.Ext(path)
	if !EncodableImage(ext) {
		return &EncodeError{Path: path, Err: fmt.Errorf("Unsupported image format \"%s\"", ext)}
	}
	tmp, createErr := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if createErr != nil {
		return &EncodeError{Path: path, Err: createErr}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if encodeErr := EncodeImage(tmp, img, ext, jpgQuality); encodeErr != nil {
		return &EncodeError{Path: path, Err: encodeErr}
	}
	// CreateTemp uses 0600
	if chmodErr := tmp.Chmod(0644); chmodErr != nil {
		return &EncodeError{Path: path, Err: chmodErr}
	}
	if closeErr := tmp.Close(); closeErr != nil {
		return &EncodeError{Path: path, Err: closeErr}
	}
	if renameErr := os.Rename(tmp.Name(), path); renameErr != nil {
		return &EncodeError{Path: path, Err: renameErr}
	}
	return nil
}
