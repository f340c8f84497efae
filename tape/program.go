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

import (
	"fmt"

	"github.com/jetsetilly/zx81cart/charset"
	"github.com/jetsetilly/zx81cart/curated"
)

// Sentinal error patterns.
const (
	NoSignal          = "tape: no signal found"
	UnsupportedFormat = "tape: unsupported format (%s)"
	BadName           = "tape: program name is not terminated"
	NoName            = "tape: program has no name"
	DecodeFailure     = "tape: %v"
	EncodeFailure     = "tape: encode: %v"
)

// the address of the first byte in a .p file.
const pOrigin = 0x4009

// position of the E_LINE system variable in a .p file.
const eLine = 0x4014 - pOrigin

// Program is a single file on tape.
type Program struct {
	// the name of the program as it would be typed in a LOAD command
	Name string

	// the contents of the .p file
	Data []byte
}

// NewProgram is the preferred method of initialisation for the Program type.
// Any data after the end of the program, as indicated by the E_LINE system
// variable, is removed.
func NewProgram(name string, data []byte) Program {
	return Program{
		Name: name,
		Data: trim(data),
	}
}

func (p Program) String() string {
	return fmt.Sprintf("%s (%d bytes)", p.Name, len(p.Data))
}

// trim data to the length implied by E_LINE. data that is too short to hold
// the system variable, or with an E_LINE that does not point inside the data,
// is returned as is.
func trim(data []byte) []byte {
	if len(data) < eLine+2 {
		return data
	}

	end := int(data[eLine]) | int(data[eLine+1])<<8
	end -= pOrigin
	if end <= eLine+2 || end > len(data) {
		return data
	}

	return data[:end]
}

// file returns the program as the sequence of bytes that are written to tape.
func (p Program) file() ([]byte, error) {
	name := charset.EncodeString(p.Name)
	if len(name) == 0 {
		return nil, curated.Errorf(NoName)
	}
	name[len(name)-1] |= charset.Inverse

	return append(name, p.Data...), nil
}

// parse the bytes read from tape into a Program.
func parse(b []byte) (Program, error) {
	for i, v := range b {
		if v&charset.Inverse == charset.Inverse {
			return NewProgram(charset.DecodeString(b[:i+1]), b[i+1:]), nil
		}
	}
	return Program{}, curated.Errorf(BadName)
}
