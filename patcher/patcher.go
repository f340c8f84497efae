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

package patcher

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/zx81cart/curated"
)

// Signature of the placeholder instruction. LD HL,$2000
var Signature = []byte{0x21, 0x00, 0x20}

// Sentinal error patterns.
const (
	PatchCountMismatch = "patcher: %d patch sites for %d payloads"
	BadSlot            = "patcher: slot at 0x%04x: %s"
)

// Site is the offset of a placeholder instruction in the loader.
type Site int

// Operand returns the offset of the 16-bit operand of the instruction.
func (s Site) Operand() int {
	return int(s) + 1
}

func (s Site) String() string {
	return fmt.Sprintf("0x%04x", int(s))
}

// Scan the loader for placeholder instructions. The scan is from left to right
// and matches do not overlap.
func Scan(code []byte) []Site {
	var sites []Site
	for i := 0; i+len(Signature) <= len(code); {
		j := bytes.Index(code[i:], Signature)
		if j < 0 {
			break
		}
		sites = append(sites, Site(i+j))
		i += j + len(Signature)
	}
	return sites
}

// Patch rewrites the operand of each placeholder instruction with base plus
// the corresponding offset. Sites and offsets are paired in order. Patching
// stops when either list is exhausted. Returns the number of sites patched.
func Patch(code []byte, base uint16, offsets []int) int {
	values := make([]uint16, len(offsets))
	for i, o := range offsets {
		values[i] = base + uint16(o)
	}
	return write(code, Scan(code), values)
}

func write(code []byte, sites []Site, values []uint16) int {
	n := min(len(sites), len(values))
	for i := range n {
		binary.LittleEndian.PutUint16(code[sites[i].Operand():], values[i])
	}
	return n
}

// Template is a loader binary with a list of slots that can be filled with
// 16-bit values.
type Template struct {
	code  []byte
	slots []Site
}

// NewTemplate discovers the slots in the loader by scanning for the
// placeholder signature.
func NewTemplate(code []byte) Template {
	return Template{
		code:  code,
		slots: Scan(code),
	}
}

// NewTemplateWithSlots uses an explicit list of slots. Each slot is the offset
// of the instruction, the operand being the two bytes that follow.
func NewTemplateWithSlots(code []byte, slots []int) (Template, error) {
	t := Template{code: code}
	for _, s := range slots {
		if s < 0 || s+len(Signature) > len(code) {
			return Template{}, curated.Errorf(BadSlot, s, fmt.Sprintf("outside of %d byte loader", len(code)))
		}

		// instructions in the slot table can not share bytes
		for _, o := range t.slots {
			if s < int(o)+len(Signature) && int(o) < s+len(Signature) {
				return Template{}, curated.Errorf(BadSlot, s, fmt.Sprintf("overlaps slot at %v", o))
			}
		}

		t.slots = append(t.slots, Site(s))
	}
	return t, nil
}

// Slots returns the list of slots in the template.
func (t Template) Slots() []Site {
	return t.slots
}

// Instantiate writes the values into the slots of the template, in the
// original code slice. Returns the number of slots filled. If the number of
// values is not the same as the number of slots a PatchCountMismatch error is
// returned alongside the count. The template is still instantiated as far as
// possible in this case.
func (t Template) Instantiate(values []uint16) (int, error) {
	n := write(t.code, t.slots, values)
	if len(t.slots) != len(values) {
		return n, curated.Errorf(PatchCountMismatch, len(t.slots), len(values))
	}
	return n, nil
}
