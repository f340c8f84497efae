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

package main

import (
	"github.com/jetsetilly/zx81cart/paths"
	"github.com/jetsetilly/zx81cart/prefs"
)

// default filenames of the fixed inputs in the resource directory.
const (
	defaultBase       = "base8k.rom"
	defaultLoader     = "loader.bin"
	defaultMenuLoader = "menuloader.bin"
)

type preferences struct {
	dsk         *prefs.Disk
	base        prefs.String
	loader      prefs.String
	menuLoader  prefs.String
	compactMenu prefs.Bool
}

func loadPreferences() (*preferences, error) {
	p := &preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(paths.ResourcePath(prefs.DefaultPrefsFile))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("build.base", &p.base)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("build.loader", &p.loader)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("build.menuloader", &p.menuLoader)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("build.compactmenu", &p.compactMenu)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// update the preferences with values from the command line and save them. an
// empty filename leaves the preference unchanged. the loader is saved as the
// menu loader if menu is true.
func (p *preferences) update(base string, loader string, menu bool, compact bool) error {
	if base != "" {
		err := p.base.Set(base)
		if err != nil {
			return err
		}
	}

	if loader != "" {
		l := &p.loader
		if menu {
			l = &p.menuLoader
		}
		err := l.Set(loader)
		if err != nil {
			return err
		}
	}

	err := p.compactMenu.Set(compact)
	if err != nil {
		return err
	}

	return p.save()
}

func (p *preferences) save() error {
	err := paths.MakeResourcePath()
	if err != nil {
		return err
	}
	return p.dsk.Save()
}

// resolve returns the flag value if it has been set, then the preference
// value, then the default file in the resource directory.
func resolve(flag string, pref *prefs.String, def string) string {
	if flag != "" {
		return flag
	}
	if pref.String() != "" {
		return pref.String()
	}
	return paths.ResourcePath(def)
}
