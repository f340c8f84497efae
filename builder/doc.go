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

// Package builder assembles the cartridge image.
//
// The lower half of the image is the base system ROM. The upper half holds
// the loader, the menu block when there is more than one program, and then
// the compressed payload of every program. The single program loader expects
// its payload to follow it directly. The menu loader finds its payloads
// through LD HL,$2000 placeholder instructions, which are patched with the
// address of each payload once the layout is known.
//
// Build() does not load programs. Each programloader.Loader should have been
// loaded before it is passed to Build().
package builder
