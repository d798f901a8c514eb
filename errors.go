/*
 * errors.go, part of chemdex.
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

import (
	"errors"
	"fmt"
)

// CError is the generic error of the package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// ParseError is returned when a SMILES string can't be read.
// Pos is the 0-based byte offset where the problem was found.
type ParseError struct {
	Notation string
	Pos      int
	Reason   string
	deco     []string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("chem: invalid SMILES %q at position %d: %s", err.Notation, err.Pos, err.Reason)
}

// Decorate adds dec to the decoration slice and returns it.
func (err *ParseError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// EmptyStructureError is returned by functions that need at least one atom
// and were given an empty molecule.
type EmptyStructureError struct {
	deco []string
}

func (err *EmptyStructureError) Error() string {
	return "chem: structure has no atoms"
}

// Decorate adds dec to the decoration slice and returns it.
func (err *EmptyStructureError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// NewEmptyStructureError returns an EmptyStructureError already decorated
// with the name of the function that found the empty molecule.
func NewEmptyStructureError(caller string) *EmptyStructureError {
	err := new(EmptyStructureError)
	err.Decorate(caller)
	return err
}

// IsEmptyStructure returns true if err is, or wraps, an EmptyStructureError.
func IsEmptyStructure(err error) bool {
	var e *EmptyStructureError
	return errors.As(err, &e)
}

// errDecorate decorates err with caller if err implements Error.
// other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
