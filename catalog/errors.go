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

package catalog

import (
	"errors"
	"fmt"
)

//ErrNotFound matches, with errors.Is, every *NotFoundError.
var ErrNotFound = errors.New("catalog: substance not found")

//NotFoundError is returned when there is no record with a given name.
type NotFoundError struct {
	Name string
	deco []string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: no substance named %q", err.Name)
}

func (err *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

//Decorate adds dec to the decoration slice and returns it.
func (err *NotFoundError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//RecordError is returned when a record can't be put in a catalog.
type RecordError struct {
	Index  int //of the record in the input
	Name   string
	Reason string
	deco   []string
}

func (err *RecordError) Error() string {
	if err.Name == "" {
		return fmt.Sprintf("catalog: record %d: %s", err.Index, err.Reason)
	}
	return fmt.Sprintf("catalog: record %d (%s): %s", err.Index, err.Name, err.Reason)
}

//Decorate adds dec to the decoration slice and returns it.
func (err *RecordError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}
