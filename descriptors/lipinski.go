/*
 * lipinski.go, part of chemdex.
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

//Donors counts the N and O atoms with at least one hydrogen.
//Oxygens must be neutral or negative, nitrogens neutral or +1.
func Donors(mol *chem.Molecule) int {
	n := 0
	for _, a := range mol.Atoms {
		if a.TotalHydrogens() == 0 {
			continue
		}
		switch a.Symbol {
		case "O":
			if a.Charge <= 0 {
				n++
			}
		case "N":
			if a.Charge == 0 || a.Charge == 1 {
				n++
			}
		}
	}
	return n
}

//Acceptors counts the N and O atoms with an available lone pair:
//oxygens that are not positively charged and are not the hydroxyl of an acid,
//neutral trivalent nitrogens that are not amide-like (bonded to an atom with a double bond
//to O, N, P or S outside rings), and pyridine-like nitrogens: neutral, aromatic, with
//two heavy neighbors and no hydrogen. The N of an N-substituted pyrrole gives its
//lone pair to the ring and is not counted.
func Acceptors(mol *chem.Molecule, rings *chem.RingInfo) int {
	if rings == nil {
		rings = mol.Rings()
	}
	n := 0
	for _, a := range mol.Atoms {
		switch a.Symbol {
		case "O":
			if a.Charge > 0 || isAcidHydroxyl(a) {
				continue
			}
			n++
		case "N":
			if a.Charge != 0 {
				continue
			}
			if a.Aromatic {
				if a.TotalHydrogens() == 0 && a.HeavyDegree() == 2 {
					n++
				}
				continue
			}
			if a.BondSum()+a.Hydrogens != 3 || amideLike(a, rings) {
				continue
			}
			n++
		}
	}
	return n
}

//isAcidHydroxyl returns true for the OH of a carboxylic, sulfonic or phosphoric acid.
func isAcidHydroxyl(o *chem.Atom) bool {
	if o.TotalHydrogens() == 0 || o.HeavyDegree() != 1 {
		return false
	}
	for _, b := range o.Bonds {
		nb := b.Cross(o)
		if !nb.IsHeavy() {
			continue
		}
		switch nb.Symbol {
		case "C", "S", "P":
			return nb.HasMultipleBond("O")
		}
	}
	return false
}

//amideLike returns true if the nitrogen is bonded to an atom that has a
//non-ring double bond to O, N, P or S.
func amideLike(n *chem.Atom, rings *chem.RingInfo) bool {
	for _, b := range n.Bonds {
		if !b.IsSingle() {
			continue
		}
		nb := b.Cross(n)
		for _, b2 := range nb.Bonds {
			if b2.Aromatic || b2.Order != chem.Double || rings.BondInRing(b2.Index) {
				continue
			}
			o := b2.Cross(nb)
			if o.Index == n.Index {
				continue
			}
			switch o.Symbol {
			case "O", "N", "P", "S":
				return true
			}
		}
	}
	return false
}

//Rotatable counts the single, non-aromatic bonds outside rings between two heavy
//atoms that are both bonded to at least another heavy atom.
//The count doesn't depend on the numbering of the atoms.
func Rotatable(mol *chem.Molecule, rings *chem.RingInfo) int {
	if rings == nil {
		rings = mol.Rings()
	}
	n := 0
	for _, b := range mol.Bonds {
		if !b.IsSingle() || rings.BondInRing(b.Index) {
			continue
		}
		if !b.At1.IsHeavy() || !b.At2.IsHeavy() {
			continue
		}
		if b.At1.HeavyDegree() > 1 && b.At2.HeavyDegree() > 1 {
			n++
		}
	}
	return n
}
