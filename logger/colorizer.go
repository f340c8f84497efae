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

import (
	"io"
	"strings"

	"github.com/jetsetilly/zx81cart/ansi"
)

// Colorizer applies basic coloring rules to logging output. Entries with a
// tag ending in "warning" are printed in yellow and entries with a tag ending
// in "error" are printed in red. Everything else is printed normally.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)

	tag, _, _ := strings.Cut(s, ":")
	tag = strings.ToLower(tag)

	var pen string
	switch {
	case strings.HasSuffix(tag, "error"):
		pen = ansi.Pens["red"]
	case strings.HasSuffix(tag, "warning"):
		pen = ansi.Pens["yellow"]
	default:
		return c.out.Write(p)
	}

	_, err = io.WriteString(c.out, pen)
	if err != nil {
		return 0, err
	}

	defer func() {
		_, _ = io.WriteString(c.out, ansi.NormalPen)
	}()

	return c.out.Write(p)
}
