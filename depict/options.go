/*
 * options.go, part of chemdex.
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

import (
	"image/color"
)

//Options contains the settings for Layout and Render.
type Options struct {
	margin        float64 //in pixels, on each side of the image
	maxBondPixels float64 //the longest a bond is allowed to be, in pixels
	fontSize      float64 //in points (which, in our images, are pixels)
	lineWidth     float64
	maxComponents int
	background    color.Color
	colorAtoms    bool
}

//DefaultOptions returns options that give reasonable images for
//drug-sized molecules in 300 to 600 pixel wide images.
func DefaultOptions() *Options {
	return &Options{
		margin:        20,
		maxBondPixels: 40,
		fontSize:      14,
		lineWidth:     1.6,
		maxComponents: 64,
		background:    color.White,
		colorAtoms:    true,
	}
}

//Returns the margin in pixels, and sets it to a new value, if a non-negative one is given.
func (O *Options) Margin(m ...float64) float64 {
	if len(m) > 0 && m[0] >= 0 {
		O.margin = m[0]
	}
	return O.margin
}

//Returns the maximum length of a bond in pixels,
//and sets it to a new value, if a positive one is given.
func (O *Options) MaxBondPixels(l ...float64) float64 {
	if len(l) > 0 && l[0] > 0 {
		O.maxBondPixels = l[0]
	}
	return O.maxBondPixels
}

//Returns the font size for atom labels
//and sets it to a new value, if a positive one is given.
func (O *Options) FontSize(s ...float64) float64 {
	if len(s) > 0 && s[0] > 0 {
		O.fontSize = s[0]
	}
	return O.fontSize
}

//Returns the bond line width
//and sets it to a new value, if a positive one is given.
func (O *Options) LineWidth(w ...float64) float64 {
	if len(w) > 0 && w[0] > 0 {
		O.lineWidth = w[0]
	}
	return O.lineWidth
}

//Returns the largest number of disconnected fragments that will be laid out,
//and sets it to a new value, if a positive one is given.
func (O *Options) MaxComponents(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.maxComponents = n[0]
	}
	return O.maxComponents
}

//Returns the background color
//and sets it to a new value, if a non-nil one is given.
func (O *Options) Background(c ...color.Color) color.Color {
	if len(c) > 0 && c[0] != nil {
		O.background = c[0]
	}
	return O.background
}

//Returns whether heteroatom labels are colored by element,
//and sets it to a new value, if given.
func (O *Options) ColorAtoms(b ...bool) bool {
	if len(b) > 0 {
		O.colorAtoms = b[0]
	}
	return O.colorAtoms
}
