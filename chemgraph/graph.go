/*
 * graph.go, part of chemdex.
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

//Package chemgraph exposes a chem.Molecule as a gonum undirected,
//weighted graph, so the gonum graph algorithms can be used on it.
package chemgraph

import (
	"sort"

	chem "github.com/rmera/chemdex"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
)

//Atom is a graph node wrapping a chem.Atom. Its ID is the atom index.
type Atom struct {
	*chem.Atom
}

//ID returns the index of the atom.
func (A *Atom) ID() int64 {
	return int64(A.Index)
}

//Bond is a graph edge wrapping a chem.Bond.
type Bond struct {
	*chem.Bond
	from, to   *Atom
	Weightfunc func(*Bond) float64
}

//Weight returns the weight of the bond, 1 unless
//a weight function was given.
func (B *Bond) Weight() float64 {
	if B.Weightfunc == nil {
		return 1
	}
	return B.Weightfunc(B)
}

func (B *Bond) From() graph.Node {
	return B.from
}

func (B *Bond) To() graph.Node {
	return B.to
}

//ReversedEdge returns a copy of the bond going the other way. Bonds are not
//directional, so it is the same chem.Bond.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, from: B.to, to: B.from, Weightfunc: B.Weightfunc}
}

//Topology implements the gonum graph.Undirected and graph.Weighted interfaces
//for a molecule.
type Topology struct {
	mol        *chem.Molecule
	atoms      []*Atom
	weightfunc func(*Bond) float64
}

//FromMolecule returns the graph view of mol. weightfunc gives the weight of
//each bond, and can be nil, in which case all bonds weight 1.
//The molecule must not change while the graph is in use.
func FromMolecule(mol *chem.Molecule, weightfunc func(*Bond) float64) *Topology {
	T := &Topology{mol: mol, atoms: make([]*Atom, mol.Len()), weightfunc: weightfunc}
	for i, a := range mol.Atoms {
		T.atoms[i] = &Atom{Atom: a}
	}
	return T
}

//Node returns the atom with the given ID, or nil.
func (T *Topology) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(T.atoms)) {
		return nil
	}
	return T.atoms[id]
}

//Nodes returns all the atoms, in index order.
func (T *Topology) Nodes() graph.Nodes {
	if len(T.atoms) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(T.atoms))
	for i, a := range T.atoms {
		nodes[i] = a
	}
	return iterator.NewOrderedNodes(nodes)
}

//From returns the atoms bonded to the atom with the given ID.
func (T *Topology) From(id int64) graph.Nodes {
	if T.Node(id) == nil {
		return graph.Empty
	}
	at := T.atoms[id]
	if len(at.Bonds) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		nodes = append(nodes, T.atoms[b.Cross(at.Atom).Index])
	}
	return iterator.NewOrderedNodes(nodes)
}

func (T *Topology) bond(xid, yid int64) *Bond {
	if T.Node(xid) == nil || T.Node(yid) == nil {
		return nil
	}
	b := T.mol.BondBetween(int(xid), int(yid))
	if b == nil {
		return nil
	}
	return &Bond{Bond: b, from: T.atoms[xid], to: T.atoms[yid], Weightfunc: T.weightfunc}
}

//HasEdgeBetween returns true if the atoms are bonded.
func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.bond(xid, yid) != nil
}

//Edge returns the bond from uid to vid, or nil.
func (T *Topology) Edge(uid, vid int64) graph.Edge {
	return T.WeightedEdge(uid, vid)
}

//EdgeBetween is the same as Edge, as the graph is undirected.
func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	return T.Edge(xid, yid)
}

//WeightedEdge returns the bond from uid to vid, or nil.
func (T *Topology) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	b := T.bond(uid, vid)
	if b == nil {
		//avoids returning a nil *Bond inside a non-nil interface.
		return nil
	}
	return b
}

//Weight returns the weight of the bond between xid and yid. The weight
//of an atom with itself is 0, and false is returned if the atoms are not bonded.
func (T *Topology) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	b := T.bond(xid, yid)
	if b == nil {
		return 0, false
	}
	return b.Weight(), true
}

//Components returns the connected components of mol as sorted slices
//of atom indexes, sorted by their lowest index.
func Components(mol *chem.Molecule) [][]int {
	if mol.Len() == 0 {
		return nil
	}
	cc := topo.ConnectedComponents(FromMolecule(mol, nil))
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		idx := make([]int, 0, len(c))
		for _, n := range c {
			idx = append(idx, int(n.ID()))
		}
		sort.Ints(idx)
		ret = append(ret, idx)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
