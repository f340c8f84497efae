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

package patcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/zx81cart/patcher"
	"github.com/jetsetilly/zx81cart/test"
	"github.com/koron-go/z80"
)

// memory implements the z80.Memory interface.
type memory [0x10000]uint8

func (m *memory) Get(addr uint16) uint8 {
	return m[addr]
}

func (m *memory) Set(addr uint16, value uint8) {
	m[addr] = value
}

// a loader that stores the address of two payloads in RAM, the way a menu
// loader keeps a table of payload addresses. it is placed at the start of
// the upper region (0x2000)
var tableLoader = []byte{
	0x21, 0x00, 0x20, // LD HL,$2000
	0x22, 0x00, 0x40, // LD ($4000),HL
	0x21, 0x00, 0x20, // LD HL,$2000
	0x22, 0x02, 0x40, // LD ($4002),HL
	0x76, // HALT
}

func TestPatchedLoaderExecution(t *testing.T) {
	code := append([]byte{}, tableLoader...)

	n := patcher.Patch(code, 0x2000, []int{len(code), len(code) + 0x100})
	test.DemandEquality(t, n, 2)

	var mem memory
	copy(mem[0x2000:], code)

	cpu := z80.CPU{
		States: z80.States{SPR: z80.SPR{PC: 0x2000}},
		Memory: &mem,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := cpu.Run(ctx)
	test.DemandSuccess(t, err)

	first := uint16(mem[0x4000]) | uint16(mem[0x4001])<<8
	second := uint16(mem[0x4002]) | uint16(mem[0x4003])<<8
	test.ExpectEquality(t, first, uint16(0x2000+len(code)))
	test.ExpectEquality(t, second, uint16(0x2000+len(code)+0x100))

	// HL holds the most recently loaded address
	hl := uint16(cpu.HL.Hi)<<8 | uint16(cpu.HL.Lo)
	test.ExpectEquality(t, hl, second)
}
