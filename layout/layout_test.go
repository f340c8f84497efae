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

package layout_test

import (
	"testing"

	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/layout"
	"github.com/jetsetilly/zx81cart/test"
)

func TestSingleProgram(t *testing.T) {
	l, err := layout.Compute(50, 0, []int{80})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, l.Loader, layout.Block{Offset: 0, Length: 50})
	test.ExpectFailure(t, l.HasMenu)
	test.DemandEquality(t, len(l.Payloads), 1)
	test.ExpectEquality(t, l.Payloads[0], layout.Block{Offset: 50, Length: 80})
	test.ExpectEquality(t, layout.Absolute(l.Payloads[0].Offset), 8242)
	test.ExpectEquality(t, l.Used(), 130)
	test.ExpectEquality(t, l.Free(), 8192-130)

	test.ExpectEquality(t, l.Loader.String(), "0x0000+50")
	test.ExpectEquality(t, l.Payloads[0].String(), "0x0032+80")
}

func TestMenuAndPayloads(t *testing.T) {
	l, err := layout.Compute(100, 20, []int{300, 400, 5})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, l.HasMenu)
	test.ExpectEquality(t, l.Menu, layout.Block{Offset: 100, Length: 20})
	test.DemandEquality(t, len(l.Payloads), 3)
	test.ExpectEquality(t, l.Payloads[0].Offset, 120)
	test.ExpectEquality(t, l.Payloads[1].Offset, 420)
	test.ExpectEquality(t, l.Payloads[2].Offset, 820)
	test.ExpectEquality(t, l.Used(), 825)

	a := l.PayloadAddresses()
	test.DemandEquality(t, len(a), 3)
	test.ExpectEquality(t, a[0], 0x2000+120)
	test.ExpectEquality(t, a[1], 0x2000+420)
	test.ExpectEquality(t, a[2], 0x2000+820)

	// blocks do not overlap
	test.ExpectEquality(t, l.Loader.End(), l.Menu.Offset)
	test.ExpectEquality(t, l.Menu.End(), l.Payloads[0].Offset)
	test.ExpectEquality(t, l.Payloads[0].End(), l.Payloads[1].Offset)
	test.ExpectEquality(t, l.Payloads[1].End(), l.Payloads[2].Offset)
}

func TestDeterminism(t *testing.T) {
	a, err := layout.Compute(64, 12, []int{1000, 2000})
	test.DemandSuccess(t, err)
	b, err := layout.Compute(64, 12, []int{1000, 2000})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, a.Loader, b.Loader)
	test.ExpectEquality(t, a.Menu, b.Menu)
	test.DemandEquality(t, len(a.Payloads), len(b.Payloads))
	for i := range a.Payloads {
		test.ExpectEquality(t, a.Payloads[i], b.Payloads[i])
	}
}

func TestCapacityBoundary(t *testing.T) {
	// exactly full is fine
	l, err := layout.Compute(92, 100, []int{8000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l.Free(), 0)

	// one more byte is not
	_, err = layout.Compute(92, 100, []int{8001})
	test.ExpectSuccess(t, curated.Is(err, layout.CapacityExceeded))
	test.ExpectEquality(t, err.Error(), "layout: upper region overflow by 1 bytes (loader 92, menu 100, payloads 8001)")

	// the loader on its own can fill the upper region
	_, err = layout.Compute(8192, 0, nil)
	test.ExpectSuccess(t, err)
	_, err = layout.Compute(8192, 0, []int{1})
	test.ExpectSuccess(t, curated.Is(err, layout.CapacityExceeded))
}
