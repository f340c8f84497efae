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

// Mode is the loader variant used by a cartridge.
type Mode int

// List of valid Mode values.
const (
	Single Mode = iota
	Menu
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Menu:
		return "menu"
	}
	return "unknown"
}

// ModeFor returns the loader variant for the number of programs.
func ModeFor(count int) Mode {
	if count > 1 {
		return Menu
	}
	return Single
}
