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

package profile

import (
	"context"
	"fmt"
	"time"
)

//TimeoutError is returned when a computation takes longer than allowed.
//The computation is not stopped: if it finishes, its result is cached.
type TimeoutError struct {
	Key     string
	Timeout time.Duration
	deco    []string
}

func (err *TimeoutError) Error() string {
	return fmt.Sprintf("profile: computation of %s took longer than %v", err.Key, err.Timeout)
}

//Is makes TimeoutErrors match context.DeadlineExceeded.
func (err *TimeoutError) Is(target error) bool {
	return target == context.DeadlineExceeded
}

//Decorate adds dec to the decoration slice and returns it.
func (err *TimeoutError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//PanicError is returned when a computation panics. The panic doesn't go
//further, and nothing is cached.
type PanicError struct {
	Key   string
	Value interface{} //what the computation panicked with
	deco  []string
}

func (err *PanicError) Error() string {
	return fmt.Sprintf("profile: computation of %s failed: %v", err.Key, err.Value)
}

//Decorate adds dec to the decoration slice and returns it.
func (err *PanicError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}
