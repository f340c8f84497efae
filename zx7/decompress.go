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

import "github.com/jetsetilly/zx81cart/curated"

// Decompress a ZX7 stream.
func Decompress(data []byte) ([]byte, error) {
	r := &bitReader{data: data}

	first, ok := r.readByte()
	if !ok {
		return nil, curated.Errorf(EmptyInput)
	}
	out := []byte{first}

	for {
		b, ok := r.readBit()
		if !ok {
			return nil, curated.Errorf(BadStream, "missing end marker")
		}

		if b == 0 {
			v, ok := r.readByte()
			if !ok {
				return nil, curated.Errorf(BadStream, "truncated literal")
			}
			out = append(out, v)
			continue
		}

		g, ok := r.readGamma()
		if !ok {
			return nil, curated.Errorf(BadStream, "truncated length")
		}
		if g < 0 {
			return out, nil
		}
		length := g + 1

		off, ok := r.readByte()
		if !ok {
			return nil, curated.Errorf(BadStream, "truncated offset")
		}
		offset := int(off)
		if offset >= shortOffset {
			hi := 0
			for range 4 {
				b, ok := r.readBit()
				if !ok {
					return nil, curated.Errorf(BadStream, "truncated offset")
				}
				hi = hi<<1 | b
			}
			offset = (offset&0x7f | hi<<7) + shortOffset
		}
		offset++

		if offset > len(out) {
			return nil, curated.Errorf(BadStream, "offset before start of data")
		}

		// byte by byte because the source and destination can overlap
		src := len(out) - offset
		for i := range length {
			out = append(out, out[src+i])
		}
	}
}
