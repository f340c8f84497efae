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

package tape

// timings of the tape signal in seconds.
const (
	pulseHigh = 150e-6
	pulseLow  = 150e-6
	bitGap    = 1300e-6
	leader    = 0.5
)

// number of pulses for each bit value.
const (
	zeroPulses = 4
	onePulses  = 9
)

// a silence longer than bitEnd completes a bit. a silence longer than fileEnd
// after the start of the data completes the file.
const (
	bitEnd  = 600e-6
	fileEnd = 0.2
)

// pulsesToBit returns the bit value for a burst of pulses.
func pulsesToBit(pulses int) byte {
	if pulses > (zeroPulses+onePulses)/2 {
		return 1
	}
	return 0
}
