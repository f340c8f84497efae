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

// bitWriter interleaves whole bytes and single bits in the output stream.
type bitWriter struct {
	out      []byte
	bitMask  byte
	bitIndex int
}

func newBitWriter(size int) *bitWriter {
	return &bitWriter{
		out: make([]byte, 0, size),
	}
}

func (w *bitWriter) writeByte(b byte) {
	w.out = append(w.out, b)
}

// writeBit writes a one bit for any non-zero value.
func (w *bitWriter) writeBit(v int) {
	if w.bitMask == 0 {
		w.bitMask = 0x80
		w.bitIndex = len(w.out)
		w.writeByte(0)
	}
	if v != 0 {
		w.out[w.bitIndex] |= w.bitMask
	}
	w.bitMask >>= 1
}

func (w *bitWriter) writeGamma(v int) {
	i := 2
	for ; i <= v; i <<= 1 {
		w.writeBit(0)
	}
	for i >>= 1; i > 0; i >>= 1 {
		w.writeBit(v & i)
	}
}

// bitReader is the counterpart of bitWriter.
type bitReader struct {
	data     []byte
	idx      int
	bitMask  byte
	bitValue byte
}

func (r *bitReader) readByte() (byte, bool) {
	if r.idx >= len(r.data) {
		return 0, false
	}
	b := r.data[r.idx]
	r.idx++
	return b, true
}

func (r *bitReader) readBit() (int, bool) {
	r.bitMask >>= 1
	if r.bitMask == 0 {
		var ok bool
		r.bitMask = 0x80
		r.bitValue, ok = r.readByte()
		if !ok {
			return 0, false
		}
	}
	if r.bitValue&r.bitMask != 0 {
		return 1, true
	}
	return 0, true
}

// readGamma returns -1 for the end of stream marker.
func (r *bitReader) readGamma() (int, bool) {
	i := 0
	for {
		b, ok := r.readBit()
		if !ok {
			return 0, false
		}
		if b == 1 {
			break
		}
		i++
	}

	if i > 15 {
		return -1, true
	}

	v := 1
	for ; i > 0; i-- {
		b, ok := r.readBit()
		if !ok {
			return 0, false
		}
		v = v<<1 | b
	}

	return v, true
}
