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
	"fmt"
)

var (
	// ErrConfiguration is wrapped by all errors caused by invalid options.
	ErrConfiguration = errors.New("Invalid configuration")

	// ErrZeroTileSize is returned if a tile size has a zero component.
	ErrZeroTileSize = fmt.Errorf("%w: Tile size must be at least 1x1", ErrConfiguration)

	// ErrDivisionByZero is returned by CheckedDiv.
	ErrDivisionByZero = errors.New("Division by zero")

	// ErrOverflow is returned if an index or area doesn't fit into a uint.
	ErrOverflow = errors.New("Integer overflow")

	// ErrNegativeComponent is returned if an index or area is requested for
	// a pair with negative components.
	ErrNegativeComponent = errors.New("Negative component")

	// ErrInsufficientSourceMaterial is returned if no source image contains at
	// least one full tile.
	ErrInsufficientSourceMaterial = errors.New("Not enough source material: no source image contains a full tile")
)

// DecodeError is returned if an image can't be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("Can't decode %s: %v", err.Path, err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

// EncodeError is returned if an image can't be encoded or written.
type EncodeError struct {
	Path string
	Err  error
}

func (err *EncodeError) Error() string {
	return fmt.Sprintf("Can't encode %s: %v", err.Path, err.Err)
}

func (err *EncodeError) Unwrap() error {
	return err.Err
}
