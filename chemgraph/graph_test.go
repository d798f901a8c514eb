/*
 * graph_test.go, part of chemdex.
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

package chemgraph

import (
	"testing"

	chem "github.com/rmera/chemdex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
)

var (
	_ graph.Undirected = (*Topology)(nil)
	_ graph.Weighted   = (*Topology)(nil)
)

func TestTopology(Te *testing.T) {
	mol := chem.MustParseSMILES("CC(=O)O")
	g := FromMolecule(mol, func(b *Bond) float64 { return float64(b.Order) })
	assert.Equal(Te, 4, g.Nodes().Len())
	assert.Equal(Te, 3, g.From(1).Len())
	assert.Equal(Te, 1, g.From(0).Len())
	assert.True(Te, g.HasEdgeBetween(1, 2))
	assert.True(Te, g.HasEdgeBetween(2, 1))
	assert.False(Te, g.HasEdgeBetween(0, 2))
	assert.Nil(Te, g.Edge(0, 3))
	assert.Nil(Te, g.Node(9))
	e := g.Edge(2, 1)
	require.NotNil(Te, e)
	assert.Equal(Te, int64(2), e.From().ID())
	assert.Equal(Te, int64(1), e.To().ID())
	r := e.ReversedEdge()
	assert.Equal(Te, int64(1), r.From().ID())
	assert.Equal(Te, int64(2), e.From().ID())
	w, ok := g.Weight(1, 2)
	assert.True(Te, ok)
	assert.Equal(Te, 2.0, w)
	w, ok = g.Weight(1, 1)
	assert.True(Te, ok)
	assert.Equal(Te, 0.0, w)
	_, ok = g.Weight(0, 3)
	assert.False(Te, ok)
	assert.Equal(Te, 1.0, FromMolecule(mol, nil).WeightedEdge(0, 1).Weight())
}

func TestComponents(Te *testing.T) {
	mol := chem.MustParseSMILES("CC.O.[Na+].c1ccccc1")
	comps := Components(mol)
	assert.Equal(Te, [][]int{{0, 1}, {2}, {3}, {4, 5, 6, 7, 8, 9}}, comps)
	assert.Nil(Te, Components(chem.NewMolecule()))
}

func TestShortestPaths(Te *testing.T) {
	mol := chem.MustParseSMILES("CCCO.C")
	g := FromMolecule(mol, nil)
	tree := path.DijkstraFrom(g.Node(0), g)
	for i, want := range []float64{0, 1, 2, 3} {
		_, w := tree.To(int64(i))
		assert.Equal(Te, want, w)
	}
	p, _ := tree.To(4)
	assert.Empty(Te, p)

	//double bonds weigh more, so the long way around the ring wins.
	ring := chem.MustParseSMILES("C1=CCCCC1")
	g = FromMolecule(ring, func(b *Bond) float64 {
		if b.Order == chem.Double {
			return 10
		}
		return 1
	})
	p, w := path.DijkstraFrom(g.Node(0), g).To(1)
	assert.Len(Te, p, 6)
	assert.Equal(Te, 5.0, w)
}
