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

package rom_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/layout"
	"github.com/jetsetilly/zx81cart/rom"
	"github.com/jetsetilly/zx81cart/test"
)

func TestZeroImage(t *testing.T) {
	var img rom.Image
	b := img.Bytes()
	test.DemandEquality(t, len(b), 16384)
	test.ExpectSuccess(t, bytes.Equal(b, make([]byte, 16384)))

	w := &bytes.Buffer{}
	n, err := img.WriteTo(w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, int64(16384))
}

func TestRegions(t *testing.T) {
	var img rom.Image

	lower := img.Lower()
	test.ExpectEquality(t, lower.Length, 8192)
	test.ExpectSuccess(t, lower.Write(bytes.Repeat([]byte{0xaa}, 8192)))

	r, err := img.Upper(layout.Block{Offset: 10, Length: 4})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Offset, 8202)
	test.ExpectEquality(t, r.String(), "0x200a+4")
	test.ExpectSuccess(t, r.Write([]byte{1, 2, 3}))

	b := img.Bytes()
	test.ExpectEquality(t, b[8191], 0xaa)
	test.ExpectEquality(t, b[8192], 0x00)
	test.ExpectSuccess(t, bytes.Equal(b[8202:8206], []byte{1, 2, 3, 0}))

	// changes through Bytes() of a region are seen in the image
	r.Bytes()[3] = 4
	test.ExpectEquality(t, img.Bytes()[8205], 4)
}

func TestBounds(t *testing.T) {
	var img rom.Image

	_, err := img.Region(16380, 5)
	test.ExpectSuccess(t, curated.Is(err, rom.RegionOutOfBounds))
	_, err = img.Region(-1, 1)
	test.ExpectSuccess(t, curated.Is(err, rom.RegionOutOfBounds))
	_, err = img.Upper(layout.Block{Offset: 8190, Length: 3})
	test.ExpectSuccess(t, curated.Is(err, rom.RegionOutOfBounds))

	r, err := img.Region(100, 2)
	test.DemandSuccess(t, err)
	err = r.Write([]byte{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, rom.RegionOverflow))

	// appending to the bytes of a region can not spill into the next region
	b := append(r.Bytes(), 0xff)
	test.ExpectEquality(t, len(b), 3)
	test.ExpectEquality(t, img.Bytes()[102], 0x00)
}
