/*
 * rings.go, part of chemdex.
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
	"math/big"
	"sort"
)

//RingInfo contains the smallest set of smallest rings (SSSR)
//of a molecule.
type RingInfo struct {
	//Each ring is a slice of atom indexes, in the order in which they
	//are connected. Rings are sorted by size.
	Rings     [][]int
	atomRings [][]int //for each atom, the indexes of the rings that contain it
	bondRing  []bool  //for each bond, whether it is in a ring
}

//Len returns the number of rings.
func (R *RingInfo) Len() int {
	return len(R.Rings)
}

//AtomInRing returns true if the atom with index i is in a ring.
func (R *RingInfo) AtomInRing(i int) bool {
	return len(R.atomRings[i]) > 0
}

//AtomRings returns the indexes (in R.Rings) of the rings that contain atom i.
func (R *RingInfo) AtomRings(i int) []int {
	return R.atomRings[i]
}

//BondInRing returns true if the bond with index i belongs to a ring.
func (R *RingInfo) BondInRing(i int) bool {
	return R.bondRing[i]
}

//InRingOfSize returns true if atom i belongs to an SSSR ring with size atoms.
func (R *RingInfo) InRingOfSize(i, size int) bool {
	for _, r := range R.atomRings[i] {
		if len(R.Rings[r]) == size {
			return true
		}
	}
	return false
}

//RingBonds returns the bonds of ring r, in ring order.
func (R *RingInfo) RingBonds(mol *Molecule, r int) []*Bond {
	ring := R.Rings[r]
	ret := make([]*Bond, 0, len(ring))
	for i, a := range ring {
		ret = append(ret, mol.BondBetween(a, ring[(i+1)%len(ring)]))
	}
	return ret
}

//IsAromatic returns true if all the bonds of ring r are aromatic.
func (R *RingInfo) IsAromatic(mol *Molecule, r int) bool {
	for _, b := range R.RingBonds(mol, r) {
		if b == nil || !b.Aromatic {
			return false
		}
	}
	return true
}

//Rings finds the smallest set of smallest rings of the molecule.
//The candidates are Horton's cycles: for each ring atom v and ring bond x-y, the
//shortest path from v to x, the bond, and the shortest path from y back to v, when
//both paths only share v. Candidates are taken by increasing size as long as they are
//linearly independent (over GF(2), on their bond sets) from the ones already taken,
//until the number of rings equals the cyclomatic number of the graph.
//The result depends only on the molecule and on its atom ordering.
func (M *Molecule) Rings() *RingInfo {
	info := &RingInfo{
		atomRings: make([][]int, M.Len()),
		bondRing:  RingBonds(M),
	}
	nrings := M.NBonds() - M.Len() + len(M.components())
	if nrings <= 0 {
		return info
	}
	chain := func(b *Bond) bool { return !info.bondRing[b.Index] }
	candidates := make([][]int, 0, nrings*4)
	seen := make(map[string]bool)
	for _, at := range M.Atoms {
		v := at.Index
		if !M.atomInRingBond(at, info.bondRing) {
			continue
		}
		prev := bfsTree(M, v, -1, chain)
		for _, b := range M.Bonds {
			if chain(b) {
				continue
			}
			x, y := b.At1.Index, b.At2.Index
			if prev[x] == -1 || prev[y] == -1 {
				continue
			}
			px := walkBack(prev, v, x)
			py := walkBack(prev, v, y)
			if len(px)+len(py)-1 < 3 || !disjoint(px[1:], py[1:]) {
				continue
			}
			cycle := make([]int, 0, len(px)+len(py)-1)
			cycle = append(cycle, px...)
			for i := len(py) - 1; i > 0; i-- {
				cycle = append(cycle, py[i])
			}
			k := ringKey(cycle)
			if seen[k] {
				continue
			}
			seen[k] = true
			candidates = append(candidates, cycle)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return ringKey(candidates[i]) < ringKey(candidates[j])
	})
	basis := make(map[int]*big.Int)
	for _, c := range candidates {
		if len(info.Rings) == nrings {
			break
		}
		vec := M.ringVector(c)
		if !independent(basis, vec) {
			continue
		}
		info.Rings = append(info.Rings, c)
	}
	for i, r := range info.Rings {
		for _, a := range r {
			info.atomRings[a] = append(info.atomRings[a], i)
		}
	}
	return info
}

func (M *Molecule) atomInRingBond(at *Atom, bondRing []bool) bool {
	for _, b := range at.Bonds {
		if bondRing[b.Index] {
			return true
		}
	}
	return false
}

//disjoint returns true if a and b have no element in common.
func disjoint(a, b []int) bool {
	for _, i := range a {
		for _, j := range b {
			if i == j {
				return false
			}
		}
	}
	return true
}

//ringVector returns the bond incidence vector of the ring.
func (M *Molecule) ringVector(ring []int) *big.Int {
	v := new(big.Int)
	for i, a := range ring {
		b := M.BondBetween(a, ring[(i+1)%len(ring)])
		v.SetBit(v, b.Index, 1)
	}
	return v
}

//independent reduces vec against basis, and, if something is left, adds
//the result to the basis and returns true. Basis vectors are keyed by their
//highest set bit.
func independent(basis map[int]*big.Int, vec *big.Int) bool {
	v := new(big.Int).Set(vec)
	for {
		h := v.BitLen() - 1
		if h < 0 {
			return false
		}
		b, ok := basis[h]
		if !ok {
			basis[h] = v
			return true
		}
		v.Xor(v, b)
	}
}

func ringKey(ring []int) string {
	s := make([]int, len(ring))
	copy(s, ring)
	sort.Ints(s)
	key := make([]byte, 0, len(s)*3)
	for _, i := range s {
		key = append(key, byte(i>>16), byte(i>>8), byte(i))
	}
	return string(key)
}

//components returns the connected components of the molecule as
//slices of atom indexes. Each component is sorted, and the components
//are sorted by their first atom. The chemgraph package offers the same
//through gonum, this one is for internal use.
func (M *Molecule) components() [][]int {
	comp := make([]int, M.Len())
	for i := range comp {
		comp[i] = -1
	}
	ret := make([][]int, 0, 1)
	for i := range M.Atoms {
		if comp[i] != -1 {
			continue
		}
		id := len(ret)
		members := []int{i}
		comp[i] = id
		for q := 0; q < len(members); q++ {
			at := M.Atoms[members[q]]
			for _, b := range at.Bonds {
				n := b.Cross(at).Index
				if comp[n] == -1 {
					comp[n] = id
					members = append(members, n)
				}
			}
		}
		sort.Ints(members)
		ret = append(ret, members)
	}
	return ret
}
