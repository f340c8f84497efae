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

package builder

import "github.com/jetsetilly/zx81cart/programloader"

// MultiName is the output filename for a cartridge with more than one program.
const MultiName = "multi.rom"

// OutputName returns the default output filename for the list of program
// filenames.
func OutputName(filenames []string) string {
	if len(filenames) == 1 {
		return programloader.DisplayName(filenames[0]) + ".rom"
	}
	return MultiName
}
