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

// Package tape reads and writes ZX81 programs as tape recordings.
//
// The ZX81 saves a program as a series of bits. Each bit is a burst of
// pulses followed by a short silence. A zero bit is four pulses and a one bit
// is nine pulses. Bytes are sent most significant bit first.
//
// A recording holds a single file. The file begins with the program name in
// the ZX81 character set, with bit 7 set on the last character of the name.
// The name is followed by the contents of memory from the start of the system
// variables at 0x4009 up to the address held in the E_LINE system variable.
// These bytes are the same as the contents of a .p file.
//
// Recordings can be loaded from WAV or MP3 files. Only WAV files are written.
package tape
