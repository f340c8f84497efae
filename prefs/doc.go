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

// Package prefs saves and restores preference values. Preference values are
// added to a Disk with a key and the Disk is then loaded and saved as
// required. The file format is plain text with one entry per line:
//
//	build.compactmenu :: true
//
// Entries in the file that have not been added to the Disk are preserved when
// the file is saved.
package prefs
