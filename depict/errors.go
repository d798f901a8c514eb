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

package depict

import "fmt"

//RenderError is returned when a depiction can't be produced.
//Err, if not nil, is the underlying cause.
type RenderError struct {
	Reason string
	Err    error
	deco   []string
}

func (err *RenderError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("depict: can't render structure: %s: %v", err.Reason, err.Err)
	}
	return fmt.Sprintf("depict: can't render structure: %s", err.Reason)
}

func (err *RenderError) Unwrap() error { return err.Err }

//Decorate adds dec to the decoration slice and returns it.
func (err *RenderError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

func newRenderError(caller, format string, args ...interface{}) *RenderError {
	return &RenderError{Reason: fmt.Sprintf(format, args...), deco: []string{caller}}
}
