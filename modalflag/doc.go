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

// Package modalflag wraps the flag package from the standard library so that a
// command line can select a mode of operation, with each mode having its own
// set of flags and arguments.
//
// The arguments are given to NewArgs() and then consumed by one or more calls
// to Parse(). Before each call, the sub-modes and flags that are valid at that
// point are added:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("BUILD", "TAPE", "VERSION")
//	p, err := md.Parse()
//
// The first sub-mode is the default mode. It is selected when the first
// argument is not one of the sub-modes. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper case form.
//
// Once the mode is known the next layer of flags is added with NewMode():
//
//	switch md.Mode() {
//	case "BUILD":
//		md.NewMode()
//		output := md.AddString("o", "", "output file")
//		p, err := md.Parse()
//		...
//		files := md.RemainingArgs()
//	}
//
// Parse() returns ParseHelp when the user has asked for help. The help message
// has already been written to Output in that case.
package modalflag
