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

// Package patcher instantiates a loader binary as a template.
//
// The loader binaries are assembled with placeholder instructions of the form
//
//	LD HL,$2000
//
// one for each payload the loader knows about, in the order the loader
// expects the payloads. The package locates the placeholders by their byte
// signature and rewrites the 16-bit operand with the address of the payload.
// The instruction stream is never otherwise interpreted.
//
// Signature scanning is fragile: a change to the loader that alters the
// order of the placeholder instructions, or that introduces the same byte
// sequence elsewhere, silently changes the patch sites. A loader can instead
// be described by an explicit slot table with NewTemplateWithSlots().
package patcher
