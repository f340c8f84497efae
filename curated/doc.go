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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values in the same way as the Errorf() function in the fmt
// package. The pattern is remembered and is used to identify the error later
// on with the Is() and Has() functions.
//
//	e := curated.Errorf(layout.CapacityExceeded, over, loader, menu, payloads)
//
//	if curated.Is(e, layout.CapacityExceeded) {
//		fmt.Println("too big")
//	}
//
// Has() is similar but looks for the pattern anywhere in the error chain.
//
//	f := curated.Errorf("builder: %v", e)
//
//	curated.Has(f, layout.CapacityExceeded) // true
//	curated.Is(f, layout.CapacityExceeded)  // false
//
// Patterns that are used to identify an error should be declared as a const
// string in the package that raises the error, suitably named and commented.
//
// The Error() function normalises the message so that adjacent duplicate parts
// of the chain are removed. Parts are separated by the sub-string ": ". This
// means that a package can prefix its name to an error without worrying about
// whether the error has already been prefixed by the same package.
//
//	curated.Errorf("zx7: %v", curated.Errorf("zx7: %v", "empty input"))
//
// will print as
//
//	zx7: empty input
//
// Curated errors also take part in the standard library's errors.Is() and
// errors.As() functions. The Unwrap() function returns any error values that
// were passed to Errorf(), so the following is true when the file does not
// exist:
//
//	_, err := os.ReadFile(filename)
//	err = curated.Errorf(programloader.FileNotFound, err)
//	errors.Is(err, fs.ErrNotExist)
package curated
