/*
 * refine.go, part of chemdex.
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

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/spatial/r2"
)

//Closer than this, two atoms that are not bonded make a drawing crowded.
const minSeparation = 0.7 * BondLength

//Bonds out of this range make a drawing crowded.
const (
	minBond = 0.8 * BondLength
	maxBond = 1.25 * BondLength
)

const (
	refineSweeps = 300
	spreadRounds = 8
	spreadSweeps = 100
	//pairs closer than this get pushed apart after the first sweeps.
	spreadDistance = 0.75 * BondLength
)

//crowded returns true if the placement of the fragment comp left two atoms
//that are not bonded too close, or a bond too far from BondLength.
func (L *layout) crowded(comp []int) bool {
	for _, i := range comp {
		for _, b := range L.mol.Atoms[i].Bonds {
			d := r2.Norm(r2.Sub(L.pos[b.At1.Index], L.pos[b.At2.Index]))
			if d < minBond || d > maxBond {
				return true
			}
		}
	}
	for x, i := range comp {
		for _, j := range comp[x+1:] {
			if r2.Norm(r2.Sub(L.pos[i], L.pos[j])) < minSeparation && L.mol.BondBetween(i, j) == nil {
				return true
			}
		}
	}
	return false
}

//targets returns the distance that each pair of atoms in comp should have, indexed
//by position in comp. It is the shortest path between the atoms in a graph where
//bonded atoms are BondLength apart, and two atoms bonded to the same one are as far
//as the ideal angle between them puts them: 120° for atoms with up to 3 neighbors,
//90° for more, 180° for linear atoms.
func (L *layout) targets(comp []int) [][]float64 {
	local := make(map[int]int64, len(comp))
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for k, i := range comp {
		local[i] = int64(k)
		g.AddNode(simple.Node(k))
	}
	link := func(a, b int, w float64) {
		u, v := local[a], local[b]
		if u == v {
			return
		}
		if e := g.WeightedEdge(u, v); e != nil && e.Weight() <= w {
			return
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(u), simple.Node(v), w))
	}
	for _, i := range comp {
		at := L.mol.Atoms[i]
		for _, b := range at.Bonds {
			link(i, b.Cross(at).Index, BondLength)
		}
	}
	for _, i := range comp {
		at := L.mol.Atoms[i]
		w := math.Sqrt(3) * BondLength
		if len(at.Bonds) > 3 {
			w = math.Sqrt2 * BondLength
		}
		if linear(at) {
			w = 2 * BondLength
		}
		for x, b := range at.Bonds {
			for _, c := range at.Bonds[x+1:] {
				link(b.Cross(at).Index, c.Cross(at).Index, w)
			}
		}
	}
	paths, _ := path.FloydWarshall(g)
	d := make([][]float64, len(comp))
	for u := range d {
		d[u] = make([]float64, len(comp))
		for v := range d[u] {
			d[u][v] = paths.Weight(int64(u), int64(v))
		}
	}
	return d
}

//refine redraws the fragment comp by stress majorization, starting from the
//current coordinates, with the distances from targets and weights 1/d². Pairs
//of atoms that are not bonded and stay too close get their weight doubled, a
//few times. The drawing is then scaled to an average bond of BondLength.
func (L *layout) refine(comp []int) {
	n := len(comp)
	d := L.targets(comp)
	w := make([][]float64, n)
	for u := range w {
		w[u] = make([]float64, n)
		for v := range w[u] {
			if u != v {
				w[u][v] = 1 / (d[u][v] * d[u][v])
			}
		}
	}
	x := make([]r2.Vec, n)
	for k, i := range comp {
		x[k] = L.pos[i]
	}
	//atoms on top of each other would move together.
	for u := range x {
		for v := 0; v < u; v++ {
			if r2.Norm(r2.Sub(x[u], x[v])) < 1e-3 {
				a := float64(u) * 2.39996
				x[u] = r2.Add(x[u], r2.Vec{X: 0.1 * math.Cos(a), Y: 0.1 * math.Sin(a)})
				break
			}
		}
	}
	majorize(x, d, w, refineSweeps)
	for r := 0; r < spreadRounds; r++ {
		tight := false
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if r2.Norm(r2.Sub(x[u], x[v])) < spreadDistance && L.mol.BondBetween(comp[u], comp[v]) == nil {
					w[u][v] *= 2
					w[v][u] *= 2
					tight = true
				}
			}
		}
		if !tight {
			break
		}
		majorize(x, d, w, spreadSweeps)
	}
	for k, i := range comp {
		L.pos[i] = x[k]
	}
	sum, bonds := 0.0, 0
	for _, i := range comp {
		for _, b := range L.mol.Atoms[i].Bonds {
			if b.At1.Index == i {
				sum += r2.Norm(r2.Sub(L.pos[b.At1.Index], L.pos[b.At2.Index]))
				bonds++
			}
		}
	}
	if bonds == 0 || sum == 0 {
		return
	}
	f := float64(bonds) * BondLength / sum
	for _, i := range comp {
		L.pos[i] = r2.Scale(f, L.pos[i])
	}
}

//majorize moves each point in x, in turn, to where its distances to the
//others best match d, sweeps times.
func majorize(x []r2.Vec, d, w [][]float64, sweeps int) {
	for s := 0; s < sweeps; s++ {
		for u := range x {
			var sum r2.Vec
			wsum := 0.0
			for v := range x {
				if u == v {
					continue
				}
				diff := r2.Sub(x[u], x[v])
				r := r2.Norm(diff)
				if r < 1e-9 {
					diff, r = r2.Vec{X: 1e-9}, 1e-9
				}
				sum = r2.Add(sum, r2.Scale(w[u][v], r2.Add(x[v], r2.Scale(d[u][v]/r, diff))))
				wsum += w[u][v]
			}
			x[u] = r2.Scale(1/wsum, sum)
		}
	}
}
