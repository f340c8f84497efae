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

// Package zx7 implements the ZX7 compression format by Einar Saukas. The
// format is designed for fast decompression on Z80 machines and is the format
// expected by the decompressor in the cartridge loader.
//
// A compressed stream begins with the first input byte, copied verbatim. It is
// followed by an interleaved stream of bytes and bits. A zero bit introduces
// a literal byte. A one bit introduces a back reference: the length minus one
// as an Elias gamma code, followed by the offset minus one as either a single
// byte (offsets up to 128) or a byte with the high bit set followed by four
// more bits (offsets up to 2176). Bits are packed MSB first into a byte that
// is reserved in the output stream at the moment the first of its bits is
// written.
//
// The end of the stream is a back reference with a gamma code of sixteen zero
// bits.
//
// Compress() finds the optimal encoding for the input with a backwards
// dynamic programming pass over all candidate offsets.
package zx7
