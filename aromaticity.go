/*
 * aromaticity.go, part of chemdex.
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

//perceiveAromaticity marks as aromatic the atoms and bonds of every ring that is
//fully conjugated and has 4n+2 pi electrons. Pairs of fused rings sharing one bond
//are also tried as a whole, which catches azulene-like systems. Rings that are
//aromatic already stay so, and hydrogen counts are not changed, so the Kekulé and
//the aromatic SMILES of a structure give the same molecule.
func perceiveAromaticity(M *Molecule) {
	rings := M.Rings()
	if rings.Len() == 0 {
		return
	}
	pi := make([]int, M.Len())
	ok := make([]bool, M.Len())
	for i, at := range M.Atoms {
		if rings.AtomInRing(i) {
			pi[i], ok[i] = piElectrons(at, rings)
		}
	}
	huckel := func(atoms []int) bool {
		n := 0
		for _, a := range atoms {
			if !ok[a] {
				return false
			}
			n += pi[a]
		}
		return n >= 2 && (n-2)%4 == 0
	}
	//all the decisions are taken on the input bonds, and applied at the end.
	aromatic := make([]bool, rings.Len())
	for r, ring := range rings.Rings {
		aromatic[r] = huckel(ring)
	}
	fused := make([]bool, rings.Len())
	for r := range rings.Rings {
		for s := r + 1; s < rings.Len(); s++ {
			if aromatic[r] && aromatic[s] {
				continue
			}
			union, shared := ringUnion(rings.Rings[r], rings.Rings[s])
			if shared == 2 && huckel(union) {
				fused[r], fused[s] = true, true
			}
		}
	}
	for r := range rings.Rings {
		if !aromatic[r] && !fused[r] {
			continue
		}
		for _, a := range rings.Rings[r] {
			M.Atoms[a].Aromatic = true
		}
		for _, b := range rings.RingBonds(M, r) {
			b.Aromatic = true
			b.Order = Single
		}
	}
}

//ringUnion returns the atoms in a or b, and how many of them are in both.
func ringUnion(a, b []int) ([]int, int) {
	ret := make([]int, len(a), len(a)+len(b))
	copy(ret, a)
	shared := 0
	for _, j := range b {
		in := false
		for _, i := range a {
			if i == j {
				in = true
				break
			}
		}
		if in {
			shared++
			continue
		}
		ret = append(ret, j)
	}
	return ret, shared
}

//piElectrons returns the electrons that the ring atom at gives to a conjugated
//ring, and false if at breaks the conjugation.
func piElectrons(at *Atom, rings *RingInfo) (int, bool) {
	if at.Aromatic {
		return aromaticPiElectrons(at), true
	}
	var endo, exo *Bond
	for _, b := range at.Bonds {
		if b.Aromatic {
			endo = b
			continue
		}
		switch b.Order {
		case Single:
		case Double:
			if !rings.BondInRing(b.Index) {
				if exo != nil {
					return 0, false
				}
				exo = b
				continue
			}
			if endo != nil {
				return 0, false
			}
			endo = b
		default:
			return 0, false
		}
	}
	switch {
	case endo != nil && exo != nil:
		return 0, false
	case endo != nil:
		return 1, true
	case exo != nil:
		//a carbonyl-like carbon keeps its p orbital, but it is empty.
		if at.Symbol == "C" && electronegative(exo.Cross(at)) {
			return 0, true
		}
		return 0, false
	}
	switch at.Symbol {
	case "C":
		switch at.Charge {
		case -1:
			return 2, true
		case 1:
			return 0, true
		}
		return 0, false
	case "B":
		return 0, at.Charge == 0 && at.Degree()+at.Hydrogens == 3
	}
	//a saturated heteroatom, like the N of pyrrole or the O of furan, gives a lone pair.
	v, known := DefaultValence(at.Symbol)
	if !known || at.Charge != 0 || at.BondSum()+at.Hydrogens != v {
		return 0, false
	}
	return 2, true
}

//aromaticPiElectrons is piElectrons for atoms that were given as aromatic.
func aromaticPiElectrons(at *Atom) int {
	switch at.Symbol {
	case "C":
		if at.HasMultipleBond("O", "N", "S") {
			return 0
		}
		return 1 - at.Charge
	case "B":
		return 0
	case "N", "P", "As":
		if at.Charge == 0 && (at.TotalHydrogens() > 0 || at.Degree() == 3) {
			return 2
		}
		return 1
	}
	return 2 - at.Charge
}

func electronegative(at *Atom) bool {
	switch at.Symbol {
	case "O", "N", "S":
		return true
	}
	return false
}
