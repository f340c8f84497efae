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

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/zx81cart/ansi"
	"github.com/jetsetilly/zx81cart/layout"
	"golang.org/x/term"
)

// the widest usage bar drawn by Report().
const maxBarWidth = 64

func sourceName(s string) string {
	if s == "" {
		return "[default]"
	}
	return s
}

// Report writes a summary of the cartridge. If the writer is a terminal the
// summary ends with a bar showing how much of the upper region is used.
func (res *Result) Report(w io.Writer) {
	loaderName := res.cfg.LoaderName
	if res.Mode == Menu {
		loaderName = res.cfg.MenuLoaderName
	}

	fmt.Fprintf(w, "  Base:    %s (%d bytes)\n", sourceName(res.cfg.BaseName), len(res.cfg.Base))
	fmt.Fprintf(w, "  Loader:  %s (%d bytes, %s)\n", sourceName(loaderName), res.Layout.Loader.Length, res.Mode)

	if res.Layout.HasMenu {
		fmt.Fprintf(w, "  Menu:    %d bytes at 0x%04x\n", res.Layout.Menu.Length, layout.Absolute(res.Layout.Menu.Offset))
	}

	for i, pl := range res.Programs {
		p := res.Layout.Payloads[i]
		fmt.Fprintf(w, "  Payload: %s %d bytes at 0x%04x", pl.Name, p.Length, layout.Absolute(p.Offset))
		if pl.PreCompressed {
			fmt.Fprintf(w, " (input was already .zx7)\n")
		} else {
			fmt.Fprintf(w, " (from %d raw bytes)\n", len(pl.Data))
		}
	}

	fmt.Fprintf(w, "  Upper:   used %d / %d bytes (free %d)\n", res.Layout.Used(), layout.UpperSize, res.Layout.Free())

	for _, s := range res.Warnings {
		fmt.Fprintf(w, "  Warning: %s\n", s)
	}

	if width, ok := terminalWidth(w); ok {
		fmt.Fprintf(w, "  %s\n", usageBar(res.Layout.Used(), layout.UpperSize, min(width-4, maxBarWidth), true))
	}
}

// terminalWidth returns the width of the terminal if the writer is a
// terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}

	return width, true
}

// usageBar returns a bar of the given width (including the brackets) showing
// the proportion of used to total.
func usageBar(used int, total int, width int, color bool) string {
	inner := width - 2
	if inner < 1 || total <= 0 {
		return ""
	}

	fill := min(used*inner/total, inner)
	if used > 0 && fill == 0 {
		fill = 1
	}

	s := strings.Builder{}
	s.WriteString("[")
	if color {
		pen := ansi.Pens["green"]
		if total-used < total/20 {
			pen = ansi.Pens["red"]
		}
		s.WriteString(pen)
	}
	s.WriteString(strings.Repeat("#", fill))
	if color {
		s.WriteString(ansi.NormalPen)
	}
	s.WriteString(strings.Repeat(".", inner-fill))
	s.WriteString("]")

	return s.String()
}
