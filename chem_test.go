/*
 * chem_test.go, part of chemdex.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBond(Te *testing.T) {
	mol := NewMolecule()
	mol.AddAtom(&Atom{Symbol: "C"})
	mol.AddAtom(&Atom{Symbol: "O"})
	b, err := mol.AddBond(0, 1, Double, false)
	require.NoError(Te, err)
	assert.Equal(Te, 0, b.Index)
	assert.Same(Te, b, mol.BondBetween(1, 0))
	assert.Same(Te, mol.Atom(1), b.Cross(mol.Atom(0)))
	_, err = mol.AddBond(0, 1, Single, false)
	assert.Error(Te, err)
	_, err = mol.AddBond(0, 0, Single, false)
	assert.Error(Te, err)
	_, err = mol.AddBond(0, 5, Single, false)
	assert.Error(Te, err)
	assert.Nil(Te, mol.BondBetween(7, 0))
	assert.Panics(Te, func() { mol.Atom(2) })
	assert.Panics(Te, func() { mol.Bond(1) })
}

func TestAtomProperties(Te *testing.T) {
	mol := MustParseSMILES("[2H]OC(=O)C#N")
	o := mol.Atom(1)
	assert.Equal(Te, 2, o.Degree())
	assert.Equal(Te, 1, o.HeavyDegree())
	assert.Equal(Te, 1, o.TotalHydrogens())
	c := mol.Atom(2)
	assert.Equal(Te, 4, c.BondSum())
	assert.True(Te, c.HasMultipleBond("O"))
	assert.False(Te, c.HasMultipleBond("S"))
	assert.True(Te, mol.Atom(4).HasMultipleBond())
	assert.False(Te, mol.Atom(0).IsHeavy())
	assert.Equal(Te, "O1", o.String())
}

func TestCopy(Te *testing.T) {
	mol := MustParseSMILES("c1ccccc1O")
	cp := mol.Copy()
	require.Equal(Te, mol.Len(), cp.Len())
	require.Equal(Te, mol.NBonds(), cp.NBonds())
	cp.Atom(6).Charge = -1
	assert.Equal(Te, 0, mol.Atom(6).Charge)
	assert.Equal(Te, "C6H6O", mol.Formula())
	for i, b := range cp.Bonds {
		assert.Equal(Te, mol.Bond(i).Aromatic, b.Aromatic)
		assert.Equal(Te, mol.Bond(i).At1.Index, b.At1.Index)
	}
}

func TestFormula(Te *testing.T) {
	assert.Equal(Te, "CH4", MustParseSMILES("C").Formula())
	assert.Equal(Te, "H2O", MustParseSMILES("O").Formula())
	assert.Equal(Te, "C2H4O2", MustParseSMILES("CC(=O)O").Formula())
	assert.Equal(Te, "CH3NO2", MustParseSMILES("C[N+](=O)[O-]").Formula())
	assert.Equal(Te, "O4S2-", MustParseSMILES("[O-]S(=O)(=O)[O-]").Formula())
	assert.Equal(Te, "", NewMolecule().Formula())
}

func TestImplicitHydrogens(Te *testing.T) {
	cases := []struct {
		smiles string
		h      []int
	}{
		{"N", []int{3}},
		{"C=O", []int{2, 0}},
		{"P(Cl)(Cl)(Cl)(Cl)Cl", []int{0, 0, 0, 0, 0, 0}},
		{"CS(=O)C", []int{3, 0, 0, 3}},
		{"B", []int{3}},
		{"C(C)(C)(C)(C)C", []int{0, 3, 3, 3, 3, 3}},
		{"c1ccncc1", []int{1, 1, 1, 0, 1, 1}},
		{"[CH2]", []int{2}},
	}
	for _, c := range cases {
		Te.Run(c.smiles, func(Te *testing.T) {
			assert.Equal(Te, c.h, hydrogens(MustParseSMILES(c.smiles)))
		})
	}
}

func TestAtomicData(Te *testing.T) {
	m, ok := Mass("C")
	assert.True(Te, ok)
	assert.InDelta(Te, 12.011, m, 1e-9)
	_, ok = Mass("Xx")
	assert.False(Te, ok)
	assert.True(Te, IsElement("Cl"))
	assert.False(Te, IsElement("cl"))
	v, ok := DefaultValence("N")
	assert.True(Te, ok)
	assert.Equal(Te, 3, v)
}

func TestEmptyStructureError(Te *testing.T) {
	err := NewEmptyStructureError("Compute")
	assert.True(Te, IsEmptyStructure(err))
	wrapped := errors.Join(errors.New("descriptors"), err)
	assert.True(Te, IsEmptyStructure(wrapped))
	assert.False(Te, IsEmptyStructure(errors.New("other")))
	assert.Equal(Te, []string{"Compute", "Extra"}, err.Decorate("Extra"))
	assert.Equal(Te, []string{"Compute", "Extra"}, err.Decorate(""))
}
