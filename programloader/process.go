// This file is part of zx81cart.
//
// zx81cart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zx81cart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zx81cart.  If not, see <https://www.gnu.org/licenses/>.

package programloader

import (
	"github.com/jetsetilly/zx81cart/curated"
)

// Sentinal error patterns.
const (
	FileNotFound       = "programloader: file not found (%s)"
	LoadFailure        = "programloader: %v"
	EmptyInput         = "programloader: %s is empty"
	CompressionFailure = "programloader: compressing %s: %v"
)

// Codec compresses program data. The zx7 package provides the default
// implementation.
type Codec interface {
	Compress([]byte) ([]byte, error)
}

// Process returns the payload for a program. Data that is already encoded is
// returned as is. Otherwise the data is compressed with the codec.
//
// The name argument is used only in error messages.
func Process(name string, raw []byte, alreadyEncoded bool, codec Codec) ([]byte, error) {
	if len(raw) == 0 {
		return nil, curated.Errorf(EmptyInput, name)
	}

	if alreadyEncoded {
		return raw, nil
	}

	c, err := codec.Compress(raw)
	if err != nil {
		return nil, curated.Errorf(CompressionFailure, name, err)
	}
	if len(c) == 0 {
		return nil, curated.Errorf(CompressionFailure, name, "no output")
	}

	return c, nil
}
