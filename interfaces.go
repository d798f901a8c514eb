/*
 * interfaces.go, part of chemdex.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package chem

// Atomer is the basic interface for a molecular graph.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Molecule. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Bonder is an Atomer that also knows its bonds.
type Bonder interface {
	Atomer

	//Bond returns the bond with index i.
	Bond(i int) *Bond

	//NBonds returns the total number of bonds.
	NBonds() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// All the errors in the library also work with errors.Is/errors.As, so Decorate is
// only needed if you want the list of functions the error went through.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}
