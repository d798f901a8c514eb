/*
 * render.go, part of chemdex.
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
	"bytes"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
	"sync"

	chem "github.com/rmera/chemdex"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

//Depiction is a 2D drawing of a molecule.
type Depiction struct {
	Width  int
	Height int
	//Coords contains the position of each atom in the image, in pixels,
	//with the origin at the top-left corner.
	Coords []r2.Vec
	canvas *vgimg.Canvas
}

//Image returns the rendered image.
func (D *Depiction) Image() image.Image {
	return D.canvas.Image()
}

//WritePNG writes the image to w in PNG format.
func (D *Depiction) WritePNG(w io.Writer) error {
	_, err := vgimg.PngCanvas{Canvas: D.canvas}.WriteTo(w)
	return err
}

//PNG returns the image encoded as PNG.
func (D *Depiction) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := D.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	fontsOnce sync.Once
	fonts     *font.Cache
)

func labelFace(size float64) font.Face {
	fontsOnce.Do(func() {
		fonts = font.NewCache(liberation.Collection())
	})
	return fonts.Lookup(font.Font{Typeface: "Liberation", Variant: "Sans"}, vg.Length(size))
}

var elementColors = map[string]color.RGBA{
	"N":  {R: 48, G: 80, B: 248, A: 255},
	"O":  {R: 230, G: 13, B: 13, A: 255},
	"S":  {R: 178, G: 160, B: 0, A: 255},
	"P":  {R: 255, G: 128, B: 0, A: 255},
	"F":  {R: 60, G: 160, B: 40, A: 255},
	"Cl": {R: 31, G: 160, B: 31, A: 255},
	"Br": {R: 166, G: 41, B: 41, A: 255},
	"I":  {R: 148, G: 0, B: 148, A: 255},
}

//Render lays out mol and draws it in an image of exactly width x height pixels.
//The drawing is scaled to fit inside the margins and centered. Atoms other than
//carbon are drawn as their element symbol, with their hydrogens and charge, as are
//carbons that are charged, isotopically labeled or not bonded to anything.
//Aromatic rings get a circle inside. It returns a *RenderError if the size is not
//positive or the layout fails. opts can be nil.
func Render(mol *chem.Molecule, width, height int, opts *Options) (*Depiction, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if width <= 0 || height <= 0 {
		return nil, newRenderError("Render", "invalid image size %dx%d", width, height)
	}
	coords, err := Layout(mol, opts)
	if err != nil {
		if e, ok := err.(*RenderError); ok {
			e.Decorate("Render")
		}
		return nil, err
	}
	w, h := float64(width), float64(height)
	margin := math.Min(opts.Margin(), math.Min(w, h)/4)
	box := Bounds(coords)
	scale := opts.MaxBondPixels()
	if span := box.Max.X - box.Min.X; span > 0 {
		scale = math.Min(scale, (w-2*margin)/span)
	}
	if span := box.Max.Y - box.Min.Y; span > 0 {
		scale = math.Min(scale, (h-2*margin)/span)
	}
	center := r2.Scale(0.5, r2.Add(box.Min, box.Max))
	//canvas coordinates, with the origin at the bottom-left corner.
	pts := make([]r2.Vec, len(coords))
	dep := &Depiction{Width: width, Height: height, Coords: make([]r2.Vec, len(coords))}
	for i, c := range coords {
		pts[i] = r2.Vec{X: w/2 + (c.X-center.X)*scale, Y: h/2 + (c.Y-center.Y)*scale}
		dep.Coords[i] = r2.Vec{X: pts[i].X, Y: h - pts[i].Y}
	}
	cv := vgimg.NewWith(vgimg.UseWH(vg.Length(w), vg.Length(h)), vgimg.UseDPI(72), vgimg.UseBackgroundColor(opts.Background()))
	d := &drawer{
		c:        cv,
		mol:      mol,
		rings:    mol.Rings(),
		pts:      pts,
		opts:     opts,
		fontSize: math.Max(6, math.Min(opts.FontSize(), 0.6*scale)),
		gap:      0.18 * scale,
	}
	d.lineWidth = math.Max(0.5, math.Min(opts.LineWidth(), scale/12))
	d.draw()
	dep.canvas = cv
	return dep, nil
}

type drawer struct {
	c         *vgimg.Canvas
	mol       *chem.Molecule
	rings     *chem.RingInfo
	pts       []r2.Vec
	opts      *Options
	fontSize  float64
	lineWidth float64
	gap       float64
}

func pt(v r2.Vec) vg.Point {
	return vg.Point{X: vg.Length(v.X), Y: vg.Length(v.Y)}
}

func (d *drawer) line(a, b r2.Vec) {
	var p vg.Path
	p.Move(pt(a))
	p.Line(pt(b))
	d.c.Stroke(p)
}

func (d *drawer) draw() {
	d.c.SetColor(color.Black)
	d.c.SetLineWidth(vg.Length(d.lineWidth))
	aromRing := make([]bool, d.rings.Len())
	inAromRing := make([]bool, d.mol.NBonds())
	for r := range d.rings.Rings {
		if d.rings.IsAromatic(d.mol, r) {
			aromRing[r] = true
			for _, b := range d.rings.RingBonds(d.mol, r) {
				inAromRing[b.Index] = true
			}
		}
	}
	for _, b := range d.mol.Bonds {
		d.bond(b, inAromRing[b.Index])
	}
	for r, ok := range aromRing {
		if ok {
			d.ringCircle(r)
		}
	}
	for _, a := range d.mol.Atoms {
		if labeled(a) {
			d.label(a)
		}
	}
}

//labeled returns true for the atoms that are drawn with their symbol.
func labeled(a *chem.Atom) bool {
	return a.Symbol != "C" || a.Charge != 0 || a.Isotope != 0 || a.Degree() == 0
}

//labelText returns the label of an atom, e.g. "OH", "NH3+", "13CH4", "O2-".
func labelText(a *chem.Atom) string {
	s := a.Symbol
	if a.Isotope > 0 {
		s = strconv.Itoa(a.Isotope) + s
	}
	switch {
	case a.Hydrogens == 1:
		s += "H"
	case a.Hydrogens > 1:
		s += "H" + strconv.Itoa(a.Hydrogens)
	}
	switch {
	case a.Charge == 1:
		s += "+"
	case a.Charge == -1:
		s += "-"
	case a.Charge > 1:
		s += strconv.Itoa(a.Charge) + "+"
	case a.Charge < -1:
		s += strconv.Itoa(-a.Charge) + "-"
	}
	return s
}

//ends returns the end points of the bond, shortened at labeled atoms.
func (d *drawer) ends(b *chem.Bond) (r2.Vec, r2.Vec) {
	p1, p2 := d.pts[b.At1.Index], d.pts[b.At2.Index]
	v := r2.Sub(p2, p1)
	l := r2.Norm(v)
	if l < 1e-9 {
		return p1, p2
	}
	u := r2.Scale(1/l, v)
	cut := 0.55 * d.fontSize
	if cut > l/2.5 {
		cut = l / 2.5
	}
	if labeled(b.At1) {
		p1 = r2.Add(p1, r2.Scale(cut, u))
	}
	if labeled(b.At2) {
		p2 = r2.Sub(p2, r2.Scale(cut, u))
	}
	return p1, p2
}

//inner returns the unit vector perpendicular to the bond that points towards
//the center of the smallest ring containing it, or an arbitrary perpendicular
//for bonds that are not in rings.
func (d *drawer) inner(b *chem.Bond) (r2.Vec, bool) {
	p1, p2 := d.pts[b.At1.Index], d.pts[b.At2.Index]
	v := r2.Sub(p2, p1)
	if r2.Norm(v) < 1e-9 {
		return r2.Vec{Y: 1}, false
	}
	n := r2.Unit(r2.Vec{X: -v.Y, Y: v.X})
	if !d.rings.BondInRing(b.Index) {
		return n, false
	}
	best := -1
	for _, r := range d.rings.AtomRings(b.At1.Index) {
		ring := d.rings.Rings[r]
		has := false
		for _, a := range ring {
			if a == b.At2.Index {
				has = true
			}
		}
		if has && (best < 0 || len(ring) < len(d.rings.Rings[best])) {
			best = r
		}
	}
	if best < 0 {
		return n, false
	}
	if r2.Dot(r2.Sub(d.ringCenter(best), p1), n) < 0 {
		n = r2.Scale(-1, n)
	}
	return n, true
}

func (d *drawer) ringCenter(r int) r2.Vec {
	var sum r2.Vec
	ring := d.rings.Rings[r]
	for _, a := range ring {
		sum = r2.Add(sum, d.pts[a])
	}
	return r2.Scale(1/float64(len(ring)), sum)
}

//shrink returns the segment a-b shortened by frac of its length at each end.
func shrink(a, b r2.Vec, frac float64) (r2.Vec, r2.Vec) {
	v := r2.Sub(b, a)
	return r2.Add(a, r2.Scale(frac, v)), r2.Sub(b, r2.Scale(frac, v))
}

func (d *drawer) bond(b *chem.Bond, inAromRing bool) {
	p1, p2 := d.ends(b)
	switch {
	case b.Aromatic && inAromRing:
		d.line(p1, p2)
	case b.Aromatic:
		//aromatic bond outside a fully aromatic ring
		d.line(p1, p2)
		n, _ := d.inner(b)
		a, c := shrink(r2.Add(p1, r2.Scale(d.gap, n)), r2.Add(p2, r2.Scale(d.gap, n)), 0.12)
		d.c.SetLineDash([]vg.Length{vg.Length(3), vg.Length(2.5)}, 0)
		d.line(a, c)
		d.c.SetLineDash(nil, 0)
	case b.Order == chem.Double:
		n, ring := d.inner(b)
		if ring {
			d.line(p1, p2)
			a, c := shrink(r2.Add(p1, r2.Scale(d.gap, n)), r2.Add(p2, r2.Scale(d.gap, n)), 0.12)
			d.line(a, c)
			return
		}
		off := r2.Scale(d.gap/2, n)
		d.line(r2.Add(p1, off), r2.Add(p2, off))
		d.line(r2.Sub(p1, off), r2.Sub(p2, off))
	case b.Order >= chem.Triple:
		n, _ := d.inner(b)
		off := r2.Scale(d.gap*0.8, n)
		d.line(p1, p2)
		d.line(r2.Add(p1, off), r2.Add(p2, off))
		d.line(r2.Sub(p1, off), r2.Sub(p2, off))
	default:
		d.line(p1, p2)
	}
}

func (d *drawer) ringCircle(r int) {
	center := d.ringCenter(r)
	ring := d.rings.Rings[r]
	dist := 0.0
	for _, a := range ring {
		dist += r2.Norm(r2.Sub(d.pts[a], center))
	}
	dist /= float64(len(ring))
	radius := 0.6 * dist * math.Cos(math.Pi/float64(len(ring)))
	if radius <= 0 {
		return
	}
	var p vg.Path
	p.Move(pt(r2.Add(center, r2.Vec{X: radius})))
	p.Arc(pt(center), vg.Length(radius), 0, 2*math.Pi)
	p.Close()
	d.c.Stroke(p)
}

func (d *drawer) label(a *chem.Atom) {
	text := labelText(a)
	face := labelFace(d.fontSize)
	width := float64(face.Width(text))
	ext := face.Extents()
	ascent, descent := float64(ext.Ascent), float64(ext.Descent)
	c := d.pts[a.Index]
	//a little bigger than the text, to hide the bond ends.
	pad := 0.12 * d.fontSize
	x0, x1 := c.X-width/2-pad, c.X+width/2+pad
	y0, y1 := c.Y-(ascent+descent)/2-pad/2, c.Y+(ascent+descent)/2+pad/2
	var mask vg.Path
	mask.Move(pt(r2.Vec{X: x0, Y: y0}))
	mask.Line(pt(r2.Vec{X: x1, Y: y0}))
	mask.Line(pt(r2.Vec{X: x1, Y: y1}))
	mask.Line(pt(r2.Vec{X: x0, Y: y1}))
	mask.Close()
	d.c.SetColor(d.opts.Background())
	d.c.Fill(mask)
	col := color.Color(color.Black)
	if d.opts.ColorAtoms() {
		if ec, ok := elementColors[a.Symbol]; ok {
			col = ec
		}
	}
	d.c.SetColor(col)
	base := r2.Vec{X: c.X - width/2, Y: c.Y - (ascent-descent)/2}
	d.c.FillString(face, pt(base), text)
	d.c.SetColor(color.Black)
}
