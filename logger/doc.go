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

// Package logger is the central log for the program. Log entries are made up
// of a tag and the detail of the entry:
//
//	logger.Log(logger.Allow, "tape", "loading from wav file")
//
// The log is bounded and the oldest entries are dropped when it is full.
// Repeated entries are folded into a single entry with a repeat count.
//
// Entries can be echoed to an io.Writer as they are made. EchoTo() colours
// warnings and errors when the writer is a terminal.
package logger
