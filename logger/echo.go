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

package logger

import "io"

// EchoTo is a convenience function that sets the central logger to echo to
// the writer, colorizing the output if the writer is a terminal.
func EchoTo(output io.Writer) {
	if output == nil {
		SetEcho(nil)
		return
	}
	if IsTerminal(output) {
		SetEcho(NewColorizer(output))
		return
	}
	SetEcho(output)
}
