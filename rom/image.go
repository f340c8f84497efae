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

// Package rom is the 16K cartridge image. The image is an arena of bytes that
// is only written through Region handles. A Region is checked against the
// bounds of the image when it is created and every write is checked against
// the bounds of the region, so a block can never spill into its neighbour.
package rom

import (
	"fmt"
	"io"

	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/layout"
)

// Sentinal error patterns.
const (
	RegionOutOfBounds = "rom: region %v outside of image"
	RegionOverflow    = "rom: %d bytes written to region %v"
)

// Image is the cartridge image. The zero value is an image with every byte
// set to zero.
type Image struct {
	data [layout.ImageSize]byte
}

// Region is a handle to an area of the image.
type Region struct {
	img    *Image
	Offset int
	Length int
}

func (r Region) String() string {
	return fmt.Sprintf("0x%04x+%d", r.Offset, r.Length)
}

// Region returns a handle to an area of the image. The offset is from the
// start of the image.
func (img *Image) Region(offset int, length int) (Region, error) {
	r := Region{img: img, Offset: offset, Length: length}
	if offset < 0 || length < 0 || offset+length > len(img.data) {
		return Region{}, curated.Errorf(RegionOutOfBounds, r)
	}
	return r, nil
}

// Lower returns the region for the base system ROM.
func (img *Image) Lower() Region {
	return Region{img: img, Offset: 0, Length: layout.UpperStart}
}

// Upper returns a region for a block placed by the layout package. The
// offset of the block is relative to the upper region.
func (img *Image) Upper(b layout.Block) (Region, error) {
	if b.Offset < 0 || b.End() > layout.UpperSize {
		return Region{}, curated.Errorf(RegionOutOfBounds, b)
	}
	return img.Region(layout.Absolute(b.Offset), b.Length)
}

// Write copies data to the start of the region. The data must not be larger
// than the region.
func (r Region) Write(data []byte) error {
	if len(data) > r.Length {
		return curated.Errorf(RegionOverflow, len(data), r)
	}
	copy(r.img.data[r.Offset:], data)
	return nil
}

// Bytes returns the slice of the image covered by the region. Changes to the
// slice change the image.
func (r Region) Bytes() []byte {
	return r.img.data[r.Offset : r.Offset+r.Length : r.Offset+r.Length]
}

// Bytes returns a copy of the entire image. It is always exactly 16384 bytes.
func (img *Image) Bytes() []byte {
	b := make([]byte, len(img.data))
	copy(b, img.data[:])
	return b
}

// WriteTo implements the io.WriterTo interface.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(img.data[:])
	return int64(n), err
}
