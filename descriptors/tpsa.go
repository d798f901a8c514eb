/*
 * tpsa.go, part of chemdex.
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

package descriptors

import (
	chem "github.com/rmera/chemdex"
)

//TPSA returns the topological polar surface area of mol, in Å², as the
//sum of the fragment contributions of its N and O atoms
//(P. Ertl, B. Rohde, P. Selzer, J. Med. Chem. 2000, 43, 3714).
//rings can be nil.
func TPSA(mol *chem.Molecule, rings *chem.RingInfo) float64 {
	total := 0.0
	for _, c := range TPSAContributions(mol, rings) {
		total += c
	}
	return total
}

//TPSAContributions returns the contribution of each atom to the polar surface area.
//Only N and O atoms contribute.
func TPSAContributions(mol *chem.Molecule, rings *chem.RingInfo) []float64 {
	if rings == nil {
		rings = mol.Rings()
	}
	ret := make([]float64, mol.Len())
	for i, a := range mol.Atoms {
		switch a.Symbol {
		case "N":
			ret[i] = nitrogenPSA(a, rings)
		case "O":
			ret[i] = oxygenPSA(a, rings)
		}
	}
	return ret
}

func nitrogenPSA(a *chem.Atom, rings *chem.RingInfo) float64 {
	n := countBonds(a)
	h := a.TotalHydrogens()
	ring3 := inSmallRing(rings, a.Index)
	if a.Aromatic {
		switch {
		case a.Charge == 0 && h == 0 && n.aromatic == 2 && n.heavy() == 2:
			return 12.89
		case a.Charge == 0 && h == 0 && n.aromatic == 3 && n.heavy() == 3:
			return 4.41
		case a.Charge == 0 && h == 0 && n.aromatic == 2 && n.single == 1 && n.heavy() == 3:
			return 4.93
		case a.Charge == 0 && h == 0 && n.aromatic == 2 && n.double == 1 && n.heavy() == 3:
			return 8.39
		case a.Charge == 0 && h == 1 && n.aromatic == 2 && n.heavy() == 2:
			return 15.79
		case a.Charge == 1 && h == 0 && n.aromatic == 3 && n.heavy() == 3:
			return 4.10
		case a.Charge == 1 && h == 0 && n.aromatic == 2 && n.single == 1 && n.heavy() == 3:
			return 3.88
		case a.Charge == 1 && h == 1 && n.aromatic == 2 && n.heavy() == 2:
			return 14.14
		}
		return defaultNitrogenPSA(n, h)
	}
	if n.aromatic > 0 {
		return defaultNitrogenPSA(n, h)
	}
	switch a.Charge {
	case 0:
		switch {
		case h == 0 && n.single == 3 && n.heavy() == 3:
			if ring3 {
				return 3.01
			}
			return 3.24
		case h == 0 && n.single == 1 && n.double == 1 && n.heavy() == 2:
			return 12.36
		case h == 0 && n.triple == 1 && n.heavy() == 1:
			return 23.79
		case h == 0 && n.single == 1 && n.double == 2 && n.heavy() == 3:
			return 11.68
		case h == 0 && n.double == 1 && n.triple == 1 && n.heavy() == 2:
			return 13.60
		case h == 0 && n.double == 2 && n.heavy() == 2:
			//middle N of azides written without charges
			return 13.60
		case h == 1 && n.single == 2 && n.heavy() == 2:
			if ring3 {
				return 21.94
			}
			return 12.03
		case h == 1 && n.double == 1 && n.heavy() == 1:
			return 23.85
		case h == 2 && n.single == 1 && n.heavy() == 1:
			return 26.02
		}
	case 1:
		switch {
		case h == 0 && n.single == 4 && n.heavy() == 4:
			return 0.00
		case h == 0 && n.single == 2 && n.double == 1 && n.heavy() == 3:
			return 3.01
		case h == 0 && n.single == 1 && n.triple == 1 && n.heavy() == 2:
			return 4.36
		case h == 0 && n.double == 2 && n.heavy() == 2:
			//=[N+]= in azides
			return 4.36
		case h == 1 && n.single == 3 && n.heavy() == 3:
			return 4.44
		case h == 1 && n.single == 1 && n.double == 1 && n.heavy() == 2:
			return 13.97
		case h == 2 && n.single == 2 && n.heavy() == 2:
			return 16.61
		case h == 2 && n.double == 1 && n.heavy() == 1:
			return 25.59
		case h == 3 && n.single == 1 && n.heavy() == 1:
			return 27.64
		}
	case -1:
		if h == 0 && n.double == 1 && n.heavy() == 1 {
			//terminal N of azides
			return 2.94
		}
	}
	return defaultNitrogenPSA(n, h)
}

//defaultNitrogenPSA is used for the nitrogen environments not in the table.
func defaultNitrogenPSA(n neighborCounts, h int) float64 {
	v := 30.5 - 8.2*float64(n.heavy()) + 1.5*float64(h)
	if v < 0 {
		return 0
	}
	return v
}

func oxygenPSA(a *chem.Atom, rings *chem.RingInfo) float64 {
	n := countBonds(a)
	h := a.TotalHydrogens()
	if a.Aromatic {
		if a.Charge == 0 && h == 0 && n.aromatic == 2 && n.heavy() == 2 {
			return 13.14
		}
		return defaultOxygenPSA(n, h)
	}
	switch a.Charge {
	case 0:
		switch {
		case h == 0 && n.single == 2 && n.heavy() == 2:
			if inSmallRing(rings, a.Index) {
				return 12.53
			}
			return 9.23
		case h == 0 && n.double == 1 && n.heavy() == 1:
			return 17.07
		case h == 1 && n.single == 1 && n.heavy() == 1:
			return 20.23
		}
	case -1:
		if h == 0 && n.single == 1 && n.heavy() == 1 {
			return 23.06
		}
	}
	return defaultOxygenPSA(n, h)
}

//defaultOxygenPSA is used for the oxygen environments not in the table, e.g. water.
func defaultOxygenPSA(n neighborCounts, h int) float64 {
	v := 28.5 - 8.6*float64(n.heavy()) + 1.5*float64(h)
	if v < 0 {
		return 0
	}
	return v
}
