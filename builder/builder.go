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
	"os"

	"github.com/jetsetilly/zx81cart/charset"
	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/layout"
	"github.com/jetsetilly/zx81cart/logger"
	"github.com/jetsetilly/zx81cart/menu"
	"github.com/jetsetilly/zx81cart/patcher"
	"github.com/jetsetilly/zx81cart/programloader"
	"github.com/jetsetilly/zx81cart/rom"
	"github.com/jetsetilly/zx81cart/zx7"
)

// Sentinal error patterns.
const (
	NoPrograms      = "builder: no programs"
	InvalidBaseSize = "builder: base ROM must be exactly %d bytes (not %d)"
	LoaderTooLarge  = "builder: %s loader is %d bytes (maximum %d)"
	WriteFailure    = "builder: writing %s: %v"
)

const (
	logTag     = "builder"
	warningTag = "builder warning"
)

// Config is the set of fixed inputs to the cartridge.
type Config struct {
	Base []byte

	// the loader for a single program and the loader for several programs
	Loader     []byte
	MenuLoader []byte

	// names of the inputs. used only by Report()
	BaseName       string
	LoaderName     string
	MenuLoaderName string

	// use the simple menu block rather than the list of program names
	CompactMenu bool

	// explicit list of patch slots in the menu loader. if the list is empty
	// the slots are found by scanning for the placeholder signature
	Slots []int

	// codec used to compress programs. if nil the zx7 codec is used
	Codec programloader.Codec
}

// Result of a successful Build().
type Result struct {
	// the cartridge image. always exactly 16384 bytes
	Image []byte

	Mode     Mode
	Layout   layout.Layout
	Programs []*programloader.Loader

	// the menu block. empty in Single mode
	Menu []byte

	// patch sites in the loader and the number of sites that were patched
	Sites   []patcher.Site
	Patched int

	// problems that did not prevent the cartridge from being built
	Warnings []string

	cfg Config
}

func (res *Result) warn(format string, args ...any) {
	logger.Logf(logger.Allow, warningTag, format, args...)
	res.Warnings = append(res.Warnings, fmt.Sprintf(format, args...))
}

// Build the cartridge image from the configuration and the list of programs.
// The order of programs is the order they are placed in the cartridge and the
// order they appear in the menu.
func Build(cfg Config, programs []*programloader.Loader) (*Result, error) {
	if len(programs) == 0 {
		return nil, curated.Errorf(NoPrograms)
	}

	if len(cfg.Base) != layout.UpperStart {
		return nil, curated.Errorf(InvalidBaseSize, layout.UpperStart, len(cfg.Base))
	}

	res := &Result{
		Mode:     ModeFor(len(programs)),
		Programs: programs,
		cfg:      cfg,
	}

	loader := cfg.Loader
	if res.Mode == Menu {
		loader = cfg.MenuLoader
	}
	if len(loader) > layout.UpperSize {
		return nil, curated.Errorf(LoaderTooLarge, res.Mode, len(loader), layout.UpperSize)
	}

	codec := cfg.Codec
	if codec == nil {
		codec = zx7.Codec{}
	}

	payloads := make([]int, 0, len(programs))
	names := make([]string, 0, len(programs))
	for _, pl := range programs {
		err := pl.Process(codec)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, len(pl.Compressed))
		names = append(names, pl.Name)
	}

	if res.Mode == Menu {
		mode := menu.Full
		if cfg.CompactMenu {
			mode = menu.Simple
		}
		res.Menu = menu.Encode(names, mode)
		if len(programs) > menu.MaxCount {
			res.warn("menu shows a count of %c for %d programs", charset.Decode(res.Menu[0]), len(programs))
		}
	}

	var err error
	res.Layout, err = layout.Compute(len(loader), len(res.Menu), payloads)
	if err != nil {
		return nil, err
	}

	var img rom.Image

	err = img.Lower().Write(cfg.Base)
	if err != nil {
		return nil, err
	}

	ldr, err := img.Upper(res.Layout.Loader)
	if err != nil {
		return nil, err
	}
	err = ldr.Write(loader)
	if err != nil {
		return nil, err
	}

	if res.Layout.HasMenu {
		err = write(&img, res.Layout.Menu, res.Menu)
		if err != nil {
			return nil, err
		}
	}

	for i, pl := range programs {
		err = write(&img, res.Layout.Payloads[i], pl.Compressed)
		if err != nil {
			return nil, err
		}
	}

	// the loader is patched in place in the image
	if res.Mode == Menu {
		err = res.patch(ldr.Bytes())
		if err != nil {
			return nil, err
		}
	}

	res.Image = img.Bytes()

	logger.Logf(logger.Allow, logTag, "%s cartridge with %d programs. %d bytes free", res.Mode, len(programs), res.Layout.Free())

	return res, nil
}

func write(img *rom.Image, b layout.Block, data []byte) error {
	r, err := img.Upper(b)
	if err != nil {
		return err
	}
	return r.Write(data)
}

func (res *Result) patch(code []byte) error {
	tmpl := patcher.NewTemplate(code)
	if len(res.cfg.Slots) > 0 {
		var err error
		tmpl, err = patcher.NewTemplateWithSlots(code, res.cfg.Slots)
		if err != nil {
			return err
		}
	}

	res.Sites = tmpl.Slots()

	var err error
	res.Patched, err = tmpl.Instantiate(res.Layout.PayloadAddresses())
	if err != nil {
		if !curated.Is(err, patcher.PatchCountMismatch) {
			return err
		}
		res.warn(patcher.PatchCountMismatch, len(res.Sites), len(res.Programs))
	}

	for i := range res.Patched {
		logger.Logf(logger.Allow, logTag, "patched %v with 0x%04x", res.Sites[i], res.Layout.PayloadAddresses()[i])
	}

	return nil
}

// WriteFile writes the cartridge image to the named file.
func (res *Result) WriteFile(filename string) error {
	err := os.WriteFile(filename, res.Image, 0o644)
	if err != nil {
		return curated.Errorf(WriteFailure, filename, err)
	}
	logger.Logf(logger.Allow, logTag, "written to %s", filename)
	return nil
}
