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

package programloader_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/programloader"
	"github.com/jetsetilly/zx81cart/test"
	"github.com/jetsetilly/zx81cart/zx7"
)

type failingCodec struct{}

func (failingCodec) Compress([]byte) ([]byte, error) {
	return nil, errors.New("out of cheese")
}

type emptyCodec struct{}

func (emptyCodec) Compress([]byte) ([]byte, error) {
	return []byte{}, nil
}

func TestProcessPassthrough(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef}
	c, err := programloader.Process("foo", raw, true, failingCodec{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(c), string(raw))
}

func TestProcessCompress(t *testing.T) {
	raw := make([]byte, 200)
	for i := range raw {
		raw[i] = byte(i % 10)
	}

	c, err := programloader.Process("foo", raw, false, zx7.Codec{})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(c) > 0)
	test.ExpectSuccess(t, len(c) < len(raw))

	d, err := zx7.Decompress(c)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), string(raw))
}

func TestProcessErrors(t *testing.T) {
	_, err := programloader.Process("foo", nil, false, zx7.Codec{})
	test.ExpectSuccess(t, curated.Is(err, programloader.EmptyInput))

	// empty input is an error even when the data is already compressed
	_, err = programloader.Process("foo", []byte{}, true, zx7.Codec{})
	test.ExpectSuccess(t, curated.Is(err, programloader.EmptyInput))

	_, err = programloader.Process("foo", []byte{0x01}, false, failingCodec{})
	test.ExpectSuccess(t, curated.Is(err, programloader.CompressionFailure))

	_, err = programloader.Process("foo", []byte{0x01}, false, emptyCodec{})
	test.ExpectSuccess(t, curated.Is(err, programloader.CompressionFailure))
}
