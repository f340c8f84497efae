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

package archivefs_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/zx81cart/archivefs"
	"github.com/jetsetilly/zx81cart/curated"
	"github.com/jetsetilly/zx81cart/test"
)

// makeArchive creates a zip file containing a file at the root and a file in
// a sub-directory.
func makeArchive(t *testing.T, dir string) string {
	t.Helper()

	fn := filepath.Join(dir, "collection.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)

	w, err := zw.Create("invaders.p")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte{0x00, 0x01, 0x02})
	test.DemandSuccess(t, err)

	w, err = zw.Create("arcade/frogger.p")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte{0x10, 0x11})
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, zw.Close())

	return fn
}

func TestArchivefsPath(t *testing.T) {
	dir := t.TempDir()
	zfn := makeArchive(t, dir)

	plain := filepath.Join(dir, "plain.p")
	test.DemandSuccess(t, os.WriteFile(plain, []byte{0xaa}, 0o644))

	var afs archivefs.Path
	var err error

	// non-existant file
	err = afs.Set(filepath.Join(dir, "foo"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, archivefs.SetFailure))
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())

	// opening a directory is not possible
	_, _, err = afs.Open()
	test.ExpectSuccess(t, curated.Is(err, archivefs.NotAFile))

	// a plain file
	err = afs.Set(plain)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, !afs.InArchive())
	test.ExpectEquality(t, afs.Base(), "plain.p")

	// the root of an archive
	err = afs.Set(zfn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// directory inside an archive
	err = afs.Set(filepath.Join(zfn, "arcade"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// file inside an archive
	err = afs.Set(filepath.Join(zfn, "arcade", "frogger.p"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())
	test.ExpectEquality(t, afs.Base(), "frogger.p")

	// missing file inside an archive
	err = afs.Set(filepath.Join(zfn, "arcade", "pacman.p"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, !afs.InArchive())

	afs.Close()
}

func TestArchivefsOpen(t *testing.T) {
	dir := t.TempDir()
	zfn := makeArchive(t, dir)

	r, sz, err := archivefs.Open(filepath.Join(zfn, "invaders.p"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 3)

	b, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), string([]byte{0x00, 0x01, 0x02}))

	r, sz, err = archivefs.Open(filepath.Join(zfn, "arcade", "frogger.p"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 2)

	b, err = io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), string([]byte{0x10, 0x11}))
}
