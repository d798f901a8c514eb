/*
 * layout.go, part of chemdex.
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
	"math"
	"sort"

	chem "github.com/rmera/chemdex"
	"github.com/rmera/chemdex/chemgraph"
	"gonum.org/v1/gonum/spatial/r2"
)

//BondLength is the length of a bond in layout coordinates.
const BondLength = 1.0

//Gap between the bounding boxes of two consecutive fragments, in bond lengths.
const componentGap = 1.5

//Closer than this, two atoms are considered to clash.
const clashDistance = 0.6 * BondLength

type layout struct {
	mol       *chem.Molecule
	rings     *chem.RingInfo
	pos       []r2.Vec
	placed    []bool
	sign      []float64 //the side to which a chain turns at each atom
	system    []int     //ring system of each atom, -1 for acyclic atoms
	systems   [][]int   //indexes, in rings.Rings, of the rings in each system
	sysPlaced []bool
	queue     []int
}

//Layout assigns 2D coordinates, in units of BondLength, to every atom in mol.
//Ring systems are drawn with regular polygons, substituents and chains at 120°
//(180° for sp atoms) and disconnected fragments are tiled from left to right.
//Fragments where that leaves atoms on top of each other, or stretched bonds, as
//bridged and cage-like ring systems do, are then redrawn by stress majorization.
//The result is deterministic. A *RenderError is returned if mol is empty or has
//more fragments than opts allow. opts can be nil.
func Layout(mol *chem.Molecule, opts *Options) ([]r2.Vec, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if mol == nil || mol.Len() == 0 {
		err := newRenderError("Layout", "empty structure")
		err.Err = chem.NewEmptyStructureError("depict.Layout")
		return nil, err
	}
	comps := chemgraph.Components(mol)
	if len(comps) > opts.MaxComponents() {
		return nil, newRenderError("Layout", "%d disconnected fragments, at most %d are supported", len(comps), opts.MaxComponents())
	}
	L := &layout{
		mol:    mol,
		rings:  mol.Rings(),
		pos:    make([]r2.Vec, mol.Len()),
		placed: make([]bool, mol.Len()),
		sign:   make([]float64, mol.Len()),
		system: make([]int, mol.Len()),
	}
	L.findSystems()
	offset := 0.0
	for _, comp := range comps {
		L.placeComponent(comp)
		if len(comp) > 2 && L.crowded(comp) {
			L.refine(comp)
		}
		box := L.bounds(comp)
		shift := r2.Vec{X: offset - box.Min.X, Y: -(box.Min.Y + box.Max.Y) / 2}
		for _, i := range comp {
			L.pos[i] = r2.Add(L.pos[i], shift)
		}
		offset += box.Max.X - box.Min.X + componentGap*BondLength
	}
	for i, p := range L.pos {
		if !L.placed[i] || math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, newRenderError("Layout", "atom %d (%s) could not be placed", i, mol.Atoms[i].Symbol)
		}
	}
	return L.pos, nil
}

//Bounds returns the smallest box containing all the points.
func Bounds(coords []r2.Vec) r2.Box {
	if len(coords) == 0 {
		return r2.Box{}
	}
	box := r2.Box{Min: coords[0], Max: coords[0]}
	for _, c := range coords[1:] {
		box.Min.X = math.Min(box.Min.X, c.X)
		box.Min.Y = math.Min(box.Min.Y, c.Y)
		box.Max.X = math.Max(box.Max.X, c.X)
		box.Max.Y = math.Max(box.Max.Y, c.Y)
	}
	return box
}

func (L *layout) bounds(atoms []int) r2.Box {
	c := make([]r2.Vec, 0, len(atoms))
	for _, i := range atoms {
		c = append(c, L.pos[i])
	}
	return Bounds(c)
}

//findSystems groups the rings that share atoms into ring systems.
func (L *layout) findSystems() {
	n := L.rings.Len()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for i := range L.mol.Atoms {
		rs := L.rings.AtomRings(i)
		if len(rs) < 2 {
			continue
		}
		for _, r := range rs[1:] {
			a, b := find(rs[0]), find(r)
			if a != b {
				if a < b {
					parent[b] = a
				} else {
					parent[a] = b
				}
			}
		}
	}
	index := make(map[int]int)
	for r := 0; r < n; r++ {
		root := find(r)
		s, ok := index[root]
		if !ok {
			s = len(L.systems)
			index[root] = s
			L.systems = append(L.systems, nil)
		}
		L.systems[s] = append(L.systems[s], r)
	}
	L.sysPlaced = make([]bool, len(L.systems))
	for i := range L.system {
		L.system[i] = -1
		if rs := L.rings.AtomRings(i); len(rs) > 0 {
			L.system[i] = index[find(rs[0])]
		}
	}
}

func (L *layout) put(i int, p r2.Vec) {
	L.pos[i] = p
	L.placed[i] = true
	L.queue = append(L.queue, i)
}

func (L *layout) placeComponent(comp []int) {
	root := comp[0]
	L.sign[root] = -1
	if L.system[root] >= 0 {
		L.placeSystem(root, r2.Vec{}, r2.Vec{X: 1})
	} else {
		L.put(root, r2.Vec{})
	}
	for len(L.queue) > 0 {
		u := L.queue[0]
		L.queue = L.queue[1:]
		L.expand(u)
	}
}

//expand places the atoms bonded to u that are not yet placed.
func (L *layout) expand(u int) {
	at := L.mol.Atoms[u]
	var done, todo []int
	for _, b := range at.Bonds {
		v := b.Cross(at).Index
		if L.placed[v] {
			done = append(done, v)
		} else {
			todo = append(todo, v)
		}
	}
	if len(todo) == 0 {
		return
	}
	dirs := L.directions(u, done, len(todo))
	for i, v := range todo {
		if L.placed[v] {
			//placed with a ring system in a previous iteration.
			continue
		}
		p := r2.Add(L.pos[u], dirs[i])
		L.sign[v] = -L.sign[u]
		if L.sign[v] == 0 {
			L.sign[v] = 1
		}
		if s := L.system[v]; s >= 0 && !L.sysPlaced[s] {
			L.placeSystem(v, p, r2.Unit(dirs[i]))
			continue
		}
		L.put(v, p)
	}
}

func angleOf(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

func unitAt(angle float64) r2.Vec {
	return r2.Vec{X: math.Cos(angle) * BondLength, Y: math.Sin(angle) * BondLength}
}

//linear returns true for atoms with a triple bond or two double bonds.
func linear(at *chem.Atom) bool {
	doubles := 0
	for _, b := range at.Bonds {
		if b.Aromatic {
			continue
		}
		if b.Order >= chem.Triple {
			return true
		}
		if b.Order == chem.Double {
			doubles++
		}
	}
	return doubles > 1
}

func (L *layout) clash(p r2.Vec) bool {
	for i, ok := range L.placed {
		if ok && r2.Norm(r2.Sub(L.pos[i], p)) < clashDistance {
			return true
		}
	}
	return false
}

//directions returns the bond vectors for the k atoms to be placed around u,
//given the neighbors of u that are already placed.
func (L *layout) directions(u int, done []int, k int) []r2.Vec {
	ret := make([]r2.Vec, 0, k)
	switch len(done) {
	case 0:
		step := 2 * math.Pi / 3
		if k > 3 {
			step = 2 * math.Pi / float64(k)
		}
		for j := 0; j < k; j++ {
			ret = append(ret, unitAt(math.Pi/6+float64(j)*step))
		}
	case 1:
		back := angleOf(r2.Sub(L.pos[done[0]], L.pos[u]))
		if k == 1 && linear(L.mol.Atoms[u]) {
			return append(ret, unitAt(back+math.Pi))
		}
		if k == 1 {
			s := L.sign[u]
			if s == 0 {
				s = 1
			}
			d := unitAt(back + s*2*math.Pi/3)
			if L.clash(r2.Add(L.pos[u], d)) {
				alt := unitAt(back - s*2*math.Pi/3)
				if !L.clash(r2.Add(L.pos[u], alt)) {
					d = alt
				}
			}
			return append(ret, d)
		}
		if k == 2 {
			return append(ret, unitAt(back+2*math.Pi/3), unitAt(back-2*math.Pi/3))
		}
		for j := 1; j <= k; j++ {
			ret = append(ret, unitAt(back+float64(j)*2*math.Pi/float64(k+1)))
		}
	default:
		//spread the new atoms in the largest free angle around u.
		angles := make([]float64, 0, len(done))
		for _, v := range done {
			angles = append(angles, angleOf(r2.Sub(L.pos[v], L.pos[u])))
		}
		sort.Float64s(angles)
		start, gap := 0.0, -1.0
		for i, a := range angles {
			next := angles[(i+1)%len(angles)]
			g := next - a
			if g <= 0 {
				g += 2 * math.Pi
			}
			if g > gap+1e-9 {
				start, gap = a, g
			}
		}
		for j := 1; j <= k; j++ {
			ret = append(ret, unitAt(start+gap*float64(j)/float64(k+1)))
		}
	}
	return ret
}

//placeSystem places the ring system of the atom anchor, putting anchor at p
//and the first ring on the side pointed to by dir (a unit vector).
func (L *layout) placeSystem(anchor int, p, dir r2.Vec) {
	s := L.system[anchor]
	L.sysPlaced[s] = true
	L.put(anchor, p)
	first := L.rings.AtomRings(anchor)[0]
	L.placePolygon(first, anchor, dir)
	left := make([]int, 0, len(L.systems[s]))
	for _, r := range L.systems[s] {
		if r != first {
			left = append(left, r)
		}
	}
	for len(left) > 0 {
		best, bestPlaced := 0, -1
		for i, r := range left {
			n := 0
			for _, a := range L.rings.Rings[r] {
				if L.placed[a] {
					n++
				}
			}
			if n > bestPlaced {
				best, bestPlaced = i, n
			}
		}
		r := left[best]
		left = append(left[:best], left[best+1:]...)
		ring := L.rings.Rings[r]
		switch {
		case bestPlaced == len(ring):
			continue
		case bestPlaced == 1:
			//spiro
			var a int
			for _, a = range ring {
				if L.placed[a] {
					break
				}
			}
			L.placePolygon(r, a, L.away(a))
		default:
			L.placeRuns(r, s)
		}
	}
}

//away returns a unit vector pointing from the placed neighbors of a to a.
func (L *layout) away(a int) r2.Vec {
	at := L.mol.Atoms[a]
	var sum r2.Vec
	n := 0
	for _, b := range at.Bonds {
		v := b.Cross(at).Index
		if L.placed[v] {
			sum = r2.Add(sum, r2.Sub(L.pos[a], L.pos[v]))
			n++
		}
	}
	if n == 0 || r2.Norm(sum) < 1e-6 {
		return r2.Vec{X: 1}
	}
	return r2.Unit(sum)
}

//placePolygon places ring r as a regular polygon that contains the atom a,
//which must be already placed, with its center in the direction dir from a.
func (L *layout) placePolygon(r, a int, dir r2.Vec) {
	ring := L.rings.Rings[r]
	n := len(ring)
	radius := BondLength / (2 * math.Sin(math.Pi/float64(n)))
	center := r2.Add(L.pos[a], r2.Scale(radius, dir))
	start := angleOf(r2.Sub(L.pos[a], center))
	k := 0
	for i, v := range ring {
		if v == a {
			k = i
		}
	}
	for j := 1; j < n; j++ {
		v := ring[(k+j)%n]
		if L.placed[v] {
			continue
		}
		ang := start + float64(j)*2*math.Pi/float64(n)
		L.put(v, r2.Add(center, r2.Vec{X: radius * math.Cos(ang), Y: radius * math.Sin(ang)}))
	}
}

//placeRuns places the atoms of ring r that are missing, when at least two are
//already placed. Each run of missing atoms between two placed ones is put on a
//circular arc, bulging away from the atoms of the ring system already placed.
func (L *layout) placeRuns(r, s int) {
	ring := L.rings.Rings[r]
	n := len(ring)
	var sysAtoms []r2.Vec
	for i, sys := range L.system {
		if sys == s && L.placed[i] {
			sysAtoms = append(sysAtoms, L.pos[i])
		}
	}
	centroid := mean(sysAtoms)
	for i := 0; i < n; i++ {
		if !L.placed[ring[i]] || L.placed[ring[(i+1)%n]] {
			continue
		}
		var run []int
		j := (i + 1) % n
		for !L.placed[ring[j]] {
			run = append(run, ring[j])
			j = (j + 1) % n
		}
		L.arc(ring[i], ring[j], run, centroid)
	}
}

func mean(v []r2.Vec) r2.Vec {
	var sum r2.Vec
	for _, p := range v {
		sum = r2.Add(sum, p)
	}
	if len(v) == 0 {
		return sum
	}
	return r2.Scale(1/float64(len(v)), sum)
}

//arc places the atoms in run between the placed atoms a and b, with bonds of
//length BondLength along a circle. If a and b are too far apart for that, the
//atoms are evenly spread on the segment between them.
func (L *layout) arc(a, b int, run []int, from r2.Vec) {
	A, B := L.pos[a], L.pos[b]
	m := float64(len(run) + 1)
	ab := r2.Sub(B, A)
	d := r2.Norm(ab)
	if d >= m*BondLength-1e-9 || d < 1e-9 {
		for j, v := range run {
			L.put(v, r2.Add(A, r2.Scale(float64(j+1)/m, ab)))
		}
		return
	}
	//the chord of an arc of total angle phi made of m bonds.
	chord := func(phi float64) float64 {
		return BondLength * math.Sin(phi/2) / math.Sin(phi/(2*m))
	}
	lo, hi := 1e-9, 2*math.Pi-1e-9
	for it := 0; it < 100; it++ {
		mid := (lo + hi) / 2
		if chord(mid) > d {
			lo = mid
		} else {
			hi = mid
		}
	}
	phi := (lo + hi) / 2
	theta := phi / m
	radius := BondLength / (2 * math.Sin(theta/2))
	M := r2.Scale(0.5, r2.Add(A, B))
	normal := r2.Unit(r2.Vec{X: -ab.Y, Y: ab.X})
	if r2.Dot(r2.Sub(M, from), normal) < 0 {
		normal = r2.Scale(-1, normal)
	}
	center := r2.Sub(M, r2.Scale(radius*math.Cos(phi/2), normal))
	start := angleOf(r2.Sub(A, center))
	sign := 1.0
	half := r2.Add(center, r2.Vec{X: radius * math.Cos(start+phi/2), Y: radius * math.Sin(start+phi/2)})
	if r2.Dot(r2.Sub(half, M), normal) < 0 {
		sign = -1
	}
	for j, v := range run {
		ang := start + sign*float64(j+1)*theta
		L.put(v, r2.Add(center, r2.Vec{X: radius * math.Cos(ang), Y: radius * math.Sin(ang)}))
	}
}
