// Package mosaic provides methods for generating mosaic images given a
// template image and a list of source images. The template is divided into
// tiles of a fixed size and each tile is replaced by the tile of a source
// image with the most similar average color.
//
// Sizes and positions are described by Vec2 values, pixel areas by Rect
// values. Grid numbers the tiles of an image in row-major order.
//
// It ships with an executable program in cmd/mosaic.
package mosaic
