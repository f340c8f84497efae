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

// Package layout decides where each block is placed in the upper region of
// the cartridge image.
//
// The upper region starts with the loader, followed by the menu block (if
// there is one), followed by every payload in the order they were given.
// There is no padding or alignment between blocks. Offsets are relative to
// the start of the upper region. Absolute() converts a relative offset to an
// offset in the cartridge image, which is also the address the Z80 sees.
package layout

import (
	"fmt"

	"github.com/jetsetilly/zx81cart/curated"
)

// Sizes of the cartridge image.
const (
	ImageSize  = 16384
	UpperStart = 8192
	UpperSize  = ImageSize - UpperStart
)

// CapacityExceeded is the error pattern used when the blocks do not fit in the
// upper region. The values are the overage and the totals for the loader,
// menu and payloads.
const CapacityExceeded = "layout: upper region overflow by %d bytes (loader %d, menu %d, payloads %d)"

// Block is a contiguous area of the upper region.
type Block struct {
	Offset int
	Length int
}

func (b Block) String() string {
	return fmt.Sprintf("0x%04x+%d", b.Offset, b.Length)
}

// End returns the offset of the first byte after the block.
func (b Block) End() int {
	return b.Offset + b.Length
}

// Layout is the result of Compute().
type Layout struct {
	Loader Block

	// Menu is only valid if HasMenu is true
	Menu    Block
	HasMenu bool

	Payloads []Block
}

// Compute the placement of every block. The payloadLens slice should be in
// the order the loader expects the payloads.
func Compute(loaderLen int, menuLen int, payloadLens []int) (Layout, error) {
	l := Layout{
		Loader:   Block{Offset: 0, Length: loaderLen},
		Payloads: make([]Block, 0, len(payloadLens)),
	}

	cursor := loaderLen

	if menuLen > 0 {
		l.Menu = Block{Offset: cursor, Length: menuLen}
		l.HasMenu = true
		cursor += menuLen
	}

	var payloadTotal int
	for _, n := range payloadLens {
		l.Payloads = append(l.Payloads, Block{Offset: cursor, Length: n})
		cursor += n
		payloadTotal += n
	}

	if cursor > UpperSize {
		return Layout{}, curated.Errorf(CapacityExceeded, cursor-UpperSize, loaderLen, menuLen, payloadTotal)
	}

	// the image is only 16K so this can never be true
	if Absolute(cursor) > 0xffff {
		panic(fmt.Sprintf("layout: offset %#x not representable in 16 bits", Absolute(cursor)))
	}

	return l, nil
}

// Absolute converts an offset relative to the upper region to an offset in
// the cartridge image.
func Absolute(offset int) int {
	return UpperStart + offset
}

// Used returns the number of bytes of the upper region used by the layout.
func (l Layout) Used() int {
	used := l.Loader.End()
	if l.HasMenu {
		used = l.Menu.End()
	}
	if len(l.Payloads) > 0 {
		used = l.Payloads[len(l.Payloads)-1].End()
	}
	return used
}

// Free returns the number of bytes of the upper region not used by the
// layout.
func (l Layout) Free() int {
	return UpperSize - l.Used()
}

// PayloadAddresses returns the absolute address of each payload.
func (l Layout) PayloadAddresses() []uint16 {
	a := make([]uint16, len(l.Payloads))
	for i, p := range l.Payloads {
		a[i] = uint16(Absolute(p.Offset))
	}
	return a
}
