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

// Package programloader is used to specify the programs that are to be placed
// in the cartridge.
//
// When a program is ready to be loaded the Load() function should be used.
// The Load() function handles loading of data from a different sources.
// Local files, files inside zip archives and data over HTTP are supported.
// Tape recordings in WAV or MP3 format are decoded to the equivalent .p file.
//
// The simplest instance of the Loader type:
//
//	pl := programloader.NewLoader("programs/mazogs.p")
//	err := pl.Load()
//
// Before a program is placed in the cartridge it must be compressed. The
// Process() function prepares the payload for a program. Programs with the
// .zx7 file extension are assumed to be compressed already and are passed
// through unchanged.
package programloader
