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

package zx7

import (
	"github.com/jetsetilly/zx81cart/curated"
)

// Sentinal error patterns.
const (
	EmptyInput = "zx7: empty input"
	BadStream  = "zx7: corrupt stream: %s"
)

// Limits of the format.
const (
	MaxOffset = 2176
	MaxLength = 65536

	// offsets up to this value are encoded in a single byte
	shortOffset = 128
)

// number of bits used to encode a value as an Elias gamma code.
func gammaBits(value int) int {
	bits := 1
	for value > 1 {
		bits += 2
		value >>= 1
	}
	return bits
}

// number of bits used by a back reference.
func matchBits(offset, length int) int {
	b := 1 + gammaBits(length-1)
	if offset > shortOffset {
		return b + 12
	}
	return b + 8
}

// choice made at a position in the input. a length of zero means literal.
type choice struct {
	offset int
	length int
}

// Codec satisfies the interface required by the programloader package.
type Codec struct{}

// Compress implements the programloader.Codec interface.
func (Codec) Compress(data []byte) ([]byte, error) {
	return Compress(data)
}

// Compress the data with the optimal ZX7 encoding.
func Compress(data []byte) ([]byte, error) {
	n := len(data)
	if n == 0 {
		return nil, curated.Errorf(EmptyInput)
	}

	// cost[i] is the number of bits required to encode data[i:]
	cost := make([]int, n+1)
	choices := make([]choice, n)

	// length of the match at the current position for every offset. updated
	// in place as the position moves backwards
	window := min(MaxOffset, n-1)
	matches := make([]int, window+1)

	for pos := n - 1; pos >= 1; pos-- {
		best := 9 + cost[pos+1]
		bestChoice := choice{}

		// the longest match for each of the two offset classes. a longer match
		// with an offset in the same class costs the same for every length so
		// only the longest needs to be considered
		var shortLen, shortOff int
		var longLen, longOff int

		for off := 1; off <= window; off++ {
			if off > pos {
				matches[off] = 0
				continue
			}

			if data[pos] == data[pos-off] {
				matches[off] = min(matches[off]+1, MaxLength)
			} else {
				matches[off] = 0
			}

			l := matches[off]
			if off <= shortOffset {
				if l > shortLen {
					shortLen = l
					shortOff = off
				}
			} else if l > longLen {
				longLen = l
				longOff = off
			}
		}

		for l := 2; l <= shortLen; l++ {
			c := matchBits(shortOff, l) + cost[pos+l]
			if c < best {
				best = c
				bestChoice = choice{offset: shortOff, length: l}
			}
		}

		for l := shortLen + 1; l <= longLen; l++ {
			if l < 2 {
				continue
			}
			c := matchBits(longOff, l) + cost[pos+l]
			if c < best {
				best = c
				bestChoice = choice{offset: longOff, length: l}
			}
		}

		cost[pos] = best
		choices[pos] = bestChoice
	}

	w := newBitWriter(n)
	w.writeByte(data[0])

	pos := 1
	for pos < n {
		c := choices[pos]
		if c.length == 0 {
			w.writeBit(0)
			w.writeByte(data[pos])
			pos++
			continue
		}

		w.writeBit(1)
		w.writeGamma(c.length - 1)

		off := c.offset - 1
		if off < shortOffset {
			w.writeByte(byte(off))
		} else {
			off -= shortOffset
			w.writeByte(byte(off&0x7f) | 0x80)
			for mask := 1024; mask > 127; mask >>= 1 {
				w.writeBit(off & mask)
			}
		}

		pos += c.length
	}

	// end of stream marker
	w.writeBit(1)
	for range 16 {
		w.writeBit(0)
	}
	w.writeBit(1)

	return w.out, nil
}
