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

package programloader

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/zx81cart/archivefs"
	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/logger"
	"github.com/jetsetilly/zx81cart/tape"
)

const logTag = "programloader"

// the file extension that marks a program as already compressed.
const compressedExt = ".ZX7"

// Loader is used to specify a program to place in the cartridge.
type Loader struct {
	// filename of program to load. the filename is the identity of the
	// program
	Filename string

	// name of the program as shown in the menu
	Name string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	//
	// in the case of a tape recording the hash is of the recording and not
	// of the decoded program
	Hash string

	// copy of the loaded data
	Data []byte

	// the payload to be placed in the cartridge. filled in by Process()
	Compressed []byte

	// the data is already compressed
	PreCompressed bool

	// the file is a tape recording
	IsRecording bool

	// the file was loaded from inside a zip archive. filled in by Load()
	InArchive bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The file extension is used to decide whether the program is already
// compressed and whether it is a tape recording. Alphabetic characters in
// file extensions can be in upper or lower case or a mixture of both.
func NewLoader(filename string) *Loader {
	pl := &Loader{
		Filename: filename,
		Name:     DisplayName(filename),
	}

	pl.PreCompressed = strings.ToUpper(path.Ext(filename)) == compressedExt
	if !pl.PreCompressed {
		pl.IsRecording = tape.IsRecording(filename)
	}

	return pl
}

// DisplayName returns the name of a program as shown in the menu. The
// directory part of the filename is removed, as is the .zx7 extension and
// then one further extension.
//
//	games/mazogs.p.zx7 -> mazogs
//	games/mazogs.p -> mazogs
func DisplayName(filename string) string {
	n := path.Base(filepath.ToSlash(filename))
	if strings.ToUpper(path.Ext(n)) == compressedExt {
		n = strings.TrimSuffix(n, path.Ext(n))
	}
	return strings.TrimSuffix(n, path.Ext(n))
}

func (pl Loader) String() string {
	return pl.Filename
}

// ShortName returns the name of the program.
func (pl Loader) ShortName() string {
	return pl.Name
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// Load the program data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files. A local file may be inside a zip archive.
func (pl *Loader) Load() error {
	if len(pl.Data) > 0 {
		return nil
	}

	var data []byte
	var err error

	scheme := "file"
	if u, err := url.Parse(pl.Filename); err == nil {
		switch u.Scheme {
		case "http", "https":
			scheme = u.Scheme
		}
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		data, err = pl.fetch()
	default:
		data, err = pl.open()
	}
	if err != nil {
		return err
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if pl.Hash != "" && pl.Hash != hash {
		return curated.Errorf(LoadFailure, "unexpected hash value")
	}
	pl.Hash = hash

	if pl.IsRecording {
		prog, err := tape.Load(pl.Filename, bytes.NewReader(data))
		if err != nil {
			return curated.Errorf(LoadFailure, err)
		}
		if prog.Name != "" {
			pl.Name = prog.Name
		}
		data = prog.Data
		logger.Logf(logger.Allow, logTag, "%s: decoded tape program %s", pl.Filename, prog)
	}

	pl.Data = data

	logger.Logf(logger.Allow, logTag, "%s: %d bytes", pl.Filename, len(pl.Data))

	return nil
}

func (pl *Loader) fetch() ([]byte, error) {
	resp, err := http.Get(pl.Filename)
	if err != nil {
		return nil, curated.Errorf(LoadFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, curated.Errorf(FileNotFound, pl.Filename)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf(LoadFailure, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, curated.Errorf(LoadFailure, err)
	}

	return data, nil
}

func (pl *Loader) open() ([]byte, error) {
	var afs archivefs.Path
	err := afs.Set(pl.Filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(FileNotFound, pl.Filename)
		}
		return nil, curated.Errorf(LoadFailure, err)
	}
	defer afs.Close()

	r, _, err := afs.Open()
	if err != nil {
		return nil, curated.Errorf(LoadFailure, err)
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	pl.InArchive = afs.InArchive()
	if pl.InArchive {
		logger.Logf(logger.Allow, logTag, "%s: opened from archive", pl.Filename)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(LoadFailure, err)
	}

	return data, nil
}

// Process prepares the payload for the program. Load() must have been called
// first.
func (pl *Loader) Process(codec Codec) error {
	c, err := Process(pl.Name, pl.Data, pl.PreCompressed, codec)
	if err != nil {
		return err
	}
	pl.Compressed = c

	if pl.PreCompressed {
		logger.Logf(logger.Allow, logTag, "%s: already compressed (%d bytes)", pl.Name, len(c))
	} else {
		logger.Logf(logger.Allow, logTag, "%s: compressed %d to %d bytes", pl.Name, len(pl.Data), len(c))
	}

	return nil
}
