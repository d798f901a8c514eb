/*
 * bonds.go, part of chemdex.
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

//BondOrder is the formal order of a bond. Aromatic bonds
//have order Single and the Aromatic flag set.
type BondOrder int

const (
	Single    BondOrder = 1
	Double    BondOrder = 2
	Triple    BondOrder = 3
	Quadruple BondOrder = 4
)

//Symbol returns the SMILES symbol for the order.
func (o BondOrder) Symbol() string {
	switch o {
	case Double:
		return "="
	case Triple:
		return "#"
	case Quadruple:
		return "$"
	}
	return "-"
}

type Bond struct {
	Index    int
	At1      *Atom
	At2      *Atom
	Order    BondOrder
	Aromatic bool
}

//Cross returns the atom bonded to origin through B.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

//Contains returns true if the atom with index i is one of the ends of B.
func (B *Bond) Contains(i int) bool {
	return B.At1.Index == i || B.At2.Index == i
}

//Valence returns the contribution of the bond to the valence of its atoms,
//1.5 for aromatic bonds.
func (B *Bond) Valence() float64 {
	if B.Aromatic {
		return 1.5
	}
	return float64(B.Order)
}

//IsSingle returns true for non-aromatic single bonds.
func (B *Bond) IsSingle() bool {
	return !B.Aromatic && B.Order == Single
}

//bfsTree runs a breadth-first search from the atom with index from, and returns, for
//each atom, the previous atom in the shortest path from 'from' (-1 for atoms that can't
//be reached). The search stops once the atom with index stop is found, stop can be -1.
func bfsTree(mol Atomer, from, stop int, skip func(*Bond) bool) []int {
	prev := make([]int, mol.Len())
	for i := range prev {
		prev[i] = -1
	}
	prev[from] = from
	queue := []int{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		at := mol.Atom(curr)
		for _, b := range at.Bonds {
			if skip != nil && skip(b) {
				continue
			}
			next := b.Cross(at).Index
			if prev[next] != -1 {
				continue
			}
			prev[next] = curr
			if next == stop {
				return prev
			}
			queue = append(queue, next)
		}
	}
	return prev
}

func walkBack(prev []int, from, to int) []int {
	path := []int{to}
	for c := to; c != from; {
		c = prev[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

//RingBonds returns a slice, indexed by bond index, that is true for
//the bonds that are part of at least one ring (i.e. that are not bridges
//of the graph). It uses Tarjan's bridge-finding algorithm.
func RingBonds(mol Bonder) []bool {
	n := mol.Len()
	inring := make([]bool, mol.NBonds())
	for i := range inring {
		inring[i] = true
	}
	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = -1
	}
	time := 0
	var visit func(u int, parentBond int)
	visit = func(u int, parentBond int) {
		disc[u] = time
		low[u] = time
		time++
		at := mol.Atom(u)
		for _, b := range at.Bonds {
			if b.Index == parentBond {
				continue
			}
			v := b.Cross(at).Index
			if disc[v] == -1 {
				visit(v, b.Index)
				if low[v] < low[u] {
					low[u] = low[v]
				}
				if low[v] > disc[u] {
					inring[b.Index] = false
				}
			} else if disc[v] < low[u] {
				low[u] = disc[v]
			}
		}
	}
	for i := 0; i < n; i++ {
		if disc[i] == -1 {
			visit(i, -1)
		}
	}
	return inring
}
