/*
 * depict_test.go, part of chemdex.
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
	"errors"
	"image/png"
	"math"
	"strings"
	"testing"

	chem "github.com/rmera/chemdex"
	"github.com/rmera/chemdex/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const morphine = "CN1CC[C@]23[C@@H]4[C@H]1CC5=C2C(=C(C=C5)O)O[C@H]3[C@H](C=C4)O"

func bondLengths(mol *chem.Molecule, c []r2.Vec) []float64 {
	ret := make([]float64, 0, mol.NBonds())
	for _, b := range mol.Bonds {
		ret = append(ret, r2.Norm(r2.Sub(c[b.At1.Index], c[b.At2.Index])))
	}
	return ret
}

func TestLayoutBondLengths(Te *testing.T) {
	for _, smi := range []string{
		"CCCCCC",
		"c1ccccc1",
		"Cc1ccccc1",
		"c1ccc2ccccc2c1",
		"c1ccccc1-c1ccccc1",
		"C1CCC2(C1)CCCCC2",
		"C1CC1",
		"CC#N",
		"C=C=C",
		"CC(C)(C)C",
	} {
		mol := chem.MustParseSMILES(smi)
		c, err := Layout(mol, nil)
		require.NoError(Te, err, smi)
		require.Len(Te, c, mol.Len(), smi)
		for i, l := range bondLengths(mol, c) {
			assert.InDelta(Te, BondLength, l, 1e-6, "%s bond %d", smi, i)
		}
	}
}

func TestLayoutNoOverlap(Te *testing.T) {
	smiles := []string{
		"CCCCCCCCCC",
		"c1ccc2ccccc2c1",
		"C1CCC2(C1)CCCCC2",
		morphine,
		"c1cc2ccc3cccc4ccc(c1)c2c34", //pyrene
		"C1Cc2cccc3cccc1c23",         //acenaphthene
		"C1CC2CCC3C2C1C3",
		"C1CC2CCC1C2",
	}
	cat, err := catalog.Default()
	require.NoError(Te, err)
	for _, r := range cat.Records() {
		smiles = append(smiles, r.SMILES)
	}
	for _, smi := range smiles {
		mol := chem.MustParseSMILES(smi)
		c, err := Layout(mol, nil)
		require.NoError(Te, err, smi)
		for i := range c {
			for j := i + 1; j < len(c); j++ {
				if mol.BondBetween(i, j) != nil {
					continue
				}
				assert.Greater(Te, r2.Norm(r2.Sub(c[i], c[j])), 0.6*BondLength, "%s atoms %d %d", smi, i, j)
			}
		}
		for i, l := range bondLengths(mol, c) {
			assert.InDelta(Te, BondLength, l, 0.4*BondLength, "%s bond %d", smi, i)
		}
	}
}

//Atoms outside rings, next to rings or in molecules without them.
func TestLayoutAcyclicAtoms(Te *testing.T) {
	for _, smi := range []string{"C", "CCO", "CCc1ccccc1CC", "OC1CCCC1", "c1ccccc1CCC1CC1"} {
		mol := chem.MustParseSMILES(smi)
		var c []r2.Vec
		var err error
		require.NotPanics(Te, func() { c, err = Layout(mol, nil) }, smi)
		require.NoError(Te, err, smi)
		require.Len(Te, c, mol.Len(), smi)
		for i, l := range bondLengths(mol, c) {
			assert.InDelta(Te, BondLength, l, 1e-6, "%s bond %d", smi, i)
		}
	}
}

func TestLayoutLinear(Te *testing.T) {
	mol := chem.MustParseSMILES("CC#CC")
	c, err := Layout(mol, nil)
	require.NoError(Te, err)
	//the triple bond and the bonds around it are collinear
	a := r2.Unit(r2.Sub(c[1], c[0]))
	b := r2.Unit(r2.Sub(c[2], c[1]))
	assert.InDelta(Te, 1.0, r2.Dot(a, b), 1e-9)
}

func TestLayoutBridged(Te *testing.T) {
	for _, smi := range []string{morphine, "C1CC2CCC1C2", "C12C3C4C1C5C2C3C45"} {
		mol := chem.MustParseSMILES(smi)
		c, err := Layout(mol, nil)
		require.NoError(Te, err, smi)
		require.Len(Te, c, mol.Len())
		for i, p := range c {
			assert.False(Te, math.IsNaN(p.X) || math.IsNaN(p.Y), smi)
			for j := range c[:i] {
				assert.Greater(Te, r2.Norm(r2.Sub(p, c[j])), 0.5*BondLength, "%s atoms %d %d", smi, j, i)
			}
		}
	}
}

func TestLayoutComponents(Te *testing.T) {
	mol := chem.MustParseSMILES("CCO.[Na+].[Cl-]")
	c, err := Layout(mol, nil)
	require.NoError(Te, err)
	//fragments go from left to right
	assert.Less(Te, math.Max(c[0].X, math.Max(c[1].X, c[2].X)), c[3].X)
	assert.Less(Te, c[3].X, c[4].X)
	assert.InDelta(Te, componentGap*BondLength, c[4].X-c[3].X, 1e-9)

	opts := DefaultOptions()
	opts.MaxComponents(2)
	_, err = Layout(mol, opts)
	var rerr *RenderError
	require.True(Te, errors.As(err, &rerr))
	assert.Contains(Te, rerr.Error(), "3 disconnected fragments")
}

func TestLayoutEmpty(Te *testing.T) {
	for _, mol := range []*chem.Molecule{nil, chem.NewMolecule()} {
		_, err := Layout(mol, nil)
		var rerr *RenderError
		require.True(Te, errors.As(err, &rerr))
		assert.True(Te, chem.IsEmptyStructure(err))
	}
}

func TestLayoutDeterministic(Te *testing.T) {
	mol := chem.MustParseSMILES(morphine)
	first, err := Layout(mol, nil)
	require.NoError(Te, err)
	for i := 0; i < 5; i++ {
		c, err := Layout(chem.MustParseSMILES(morphine), nil)
		require.NoError(Te, err)
		assert.Equal(Te, first, c)
	}
}

func TestRender(Te *testing.T) {
	for _, size := range [][2]int{{400, 300}, {300, 400}, {64, 64}, {1000, 200}} {
		mol := chem.MustParseSMILES(morphine)
		d, err := Render(mol, size[0], size[1], nil)
		require.NoError(Te, err)
		b, err := d.PNG()
		require.NoError(Te, err)
		img, err := png.Decode(bytes.NewReader(b))
		require.NoError(Te, err)
		assert.Equal(Te, size[0], img.Bounds().Dx())
		assert.Equal(Te, size[1], img.Bounds().Dy())
		assert.Equal(Te, size[0], d.Width)
		assert.Equal(Te, size[1], d.Height)
		require.Len(Te, d.Coords, mol.Len())
		for i, c := range d.Coords {
			assert.True(Te, c.X >= 0 && c.X <= float64(size[0]), "atom %d x=%f", i, c.X)
			assert.True(Te, c.Y >= 0 && c.Y <= float64(size[1]), "atom %d y=%f", i, c.Y)
		}
		assert.Greater(Te, inked(d), 0)
	}
}

//inked counts the pixels that are not white.
func inked(d *Depiction) int {
	img := d.Image()
	n := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0xf000 || g < 0xf000 || b < 0xf000 {
				n++
			}
		}
	}
	return n
}

func TestRenderFragments(Te *testing.T) {
	mol := chem.MustParseSMILES("[Na+].[Cl-]")
	d, err := Render(mol, 300, 200, nil)
	require.NoError(Te, err)
	assert.Less(Te, d.Coords[0].X, d.Coords[1].X)
	assert.InDelta(Te, d.Coords[0].Y, d.Coords[1].Y, 1e-9)
	//the image is centered
	assert.InDelta(Te, 300.0, d.Coords[0].X+d.Coords[1].X, 1e-6)
	assert.InDelta(Te, 100.0, d.Coords[0].Y, 1e-6)
	assert.Greater(Te, inked(d), 0)
}

func TestRenderScale(Te *testing.T) {
	mol := chem.MustParseSMILES("CC")
	opts := DefaultOptions()
	opts.MaxBondPixels(30)
	d, err := Render(mol, 500, 500, opts)
	require.NoError(Te, err)
	assert.InDelta(Te, 30.0, r2.Norm(r2.Sub(d.Coords[0], d.Coords[1])), 1e-6)
	//a small image shrinks the bonds, but the drawing stays inside
	d, err = Render(chem.MustParseSMILES("CCCCCCCCCCCCCCCCCCCC"), 100, 100, opts)
	require.NoError(Te, err)
	for _, c := range d.Coords {
		assert.True(Te, c.X >= 0 && c.X <= 100)
	}
}

func TestRenderErrors(Te *testing.T) {
	mol := chem.MustParseSMILES("CCO")
	for _, size := range [][2]int{{0, 300}, {400, 0}, {-1, -1}} {
		_, err := Render(mol, size[0], size[1], nil)
		var rerr *RenderError
		require.True(Te, errors.As(err, &rerr))
		assert.True(Te, strings.Contains(err.Error(), "invalid image size"))
	}
	_, err := Render(chem.NewMolecule(), 400, 300, nil)
	var rerr *RenderError
	require.True(Te, errors.As(err, &rerr))
	assert.True(Te, chem.IsEmptyStructure(err))
}

func TestRenderDeterministic(Te *testing.T) {
	a, err := Render(chem.MustParseSMILES(morphine), 400, 300, nil)
	require.NoError(Te, err)
	b, err := Render(chem.MustParseSMILES(morphine), 400, 300, nil)
	require.NoError(Te, err)
	pa, err := a.PNG()
	require.NoError(Te, err)
	pb, err := b.PNG()
	require.NoError(Te, err)
	assert.Equal(Te, pa, pb)
}

func TestLabels(Te *testing.T) {
	cases := []struct {
		smi   string
		label string
		show  bool
	}{
		{"O", "OH2", true},
		{"C", "CH4", true},
		{"[NH4+]", "NH4+", true},
		{"[O-2]", "O2-", true},
		{"[13CH4]", "13CH4", true},
		{"[Fe+3]", "Fe3+", true},
		{"CC", "CH3", false},
		{"C[N+](C)(C)C", "C", false},
	}
	for _, c := range cases {
		mol := chem.MustParseSMILES(c.smi)
		a := mol.Atoms[0]
		assert.Equal(Te, c.show, labeled(a), c.smi)
		if c.show {
			assert.Equal(Te, c.label, labelText(a), c.smi)
		}
	}
	mol := chem.MustParseSMILES("C[N+](C)(C)C")
	assert.Equal(Te, "N+", labelText(mol.Atoms[1]))
}

func TestOptions(Te *testing.T) {
	o := DefaultOptions()
	assert.Equal(Te, 20.0, o.Margin())
	assert.Equal(Te, 5.0, o.Margin(5))
	assert.Equal(Te, 5.0, o.Margin(-3))
	assert.Equal(Te, 40.0, o.MaxBondPixels(-1))
	assert.Equal(Te, 64, o.MaxComponents(0))
	assert.False(Te, o.ColorAtoms(false))
	assert.NotNil(Te, o.Background(nil))
}
