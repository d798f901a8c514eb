/*
 * crippen.go, part of chemdex.
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

//Atom-type contributions to logP, from S. A. Wildman and G. M. Crippen,
//J. Chem. Inf. Comput. Sci. 1999, 39, 868. Only the types needed for
//small organic molecules are kept, other environments fall back to the
//closest type.
const (
	cPrimary       = 0.1441  //C1: CH4, CH3R, CH2R2
	cQuaternary    = 0.0     //C2: CHR3, CR4
	cPrimaryX      = -0.2035 //C3: CH3X, CH2RX, CH2X2
	cQuaternaryX   = -0.2051 //C4: CHR2X, CHRX2, CR3X...
	cHeteroDouble  = -0.2783 //C5: C=heteroatom
	cDouble        = 0.1551  //C6: C=C aliphatic
	cTriple        = 0.0017  //C7: acetylene and allene carbons
	cMethylArom    = 0.08452 //C8: CH3 on aromatic
	cMethyleneArom = -0.0516 //C10: CH2 on aromatic
	cMethineArom   = 0.1193  //C11: CH on aromatic
	cQuatArom      = -0.0967 //C12: C on aromatic

	caH        = 0.1581 //C18: aromatic CH
	caBridge   = 0.2955 //C19: aromatic bridgehead
	caBiaryl   = 0.2713 //C20: 4-aromatic
	caCarbon   = 0.1360 //C21: c-C
	caNitrogen = 0.4619 //C22: c-N
	caOxygen   = 0.5437 //C23: c-O
	caSulfur   = 0.1893 //C24: c-S
	caHalogen  = 0.2148 //C14: c-X

	hCarbon = 0.1230  //H1: hydrocarbon
	hAlc    = -0.2677 //H2: alcohol
	hAmine  = 0.2142  //H3: amine
	hAcid   = 0.2980  //H4: acid
	hOther  = 0.1125  //HS: other heteroatoms

	nPrimary   = -1.0190 //N1: primary amine
	nSecondary = -0.7096 //N2: secondary amine
	nTertiary  = -0.3187 //N3: tertiary amine
	nAniline   = -0.4458 //N4-N6: amines on aromatic or conjugated carbons
	nImine     = -0.3239 //N9-N10: imines and nitriles
	nArom      = -0.4806 //N11: aromatic n
	nCharged   = -0.1053 //N13: quaternary and charged N

	oArom         = 0.1552  //O1: aromatic o
	oAlcohol      = -0.2893 //O2: alcohol
	oEther        = -0.0684 //O3: aliphatic ether
	oAromEther    = -0.4195 //O4: aromatic ether
	oCarbonyl     = -0.1526 //O9: carbonyl aliphatic
	oCarbonylArom = 0.1129  //O10: carbonyl aromatic
	oCarbonylHet  = 0.4833  //O11: carbonyl heteroatom
	oAcid         = -1.3260 //O12: acid (charged)

	fluorine = 0.4202
	chlorine = 0.6895
	bromine  = 0.8456
	iodine   = 0.8857
	sulfur   = 0.6482
	sArom    = 0.6237
	phosph   = 0.8612
)

//CrippenLogP returns the octanol/water partition coefficient of mol estimated
//as the sum of atomic contributions (Wildman-Crippen).
func CrippenLogP(mol *chem.Molecule) float64 {
	total := 0.0
	for _, c := range CrippenContributions(mol) {
		total += c
	}
	return total
}

//CrippenContributions returns, for each atom, its contribution to logP plus that of its hydrogens.
//Hydrogen atoms present in the graph contribute nothing by themselves, they are
//counted with the atom they are bonded to.
func CrippenContributions(mol *chem.Molecule) []float64 {
	ret := make([]float64, mol.Len())
	for i, a := range mol.Atoms {
		if !a.IsHeavy() {
			continue
		}
		ret[i] = heavyContribution(a) + float64(a.TotalHydrogens())*hydrogenContribution(a)
	}
	return ret
}

func hydrogenContribution(a *chem.Atom) float64 {
	switch a.Symbol {
	case "C":
		return hCarbon
	case "N":
		return hAmine
	case "O":
		if isAcidHydroxyl(a) {
			return hAcid
		}
		return hAlc
	}
	return hOther
}

func heavyContribution(a *chem.Atom) float64 {
	switch a.Symbol {
	case "C":
		if a.Aromatic {
			return aromaticCarbon(a)
		}
		return aliphaticCarbon(a)
	case "N":
		return nitrogen(a)
	case "O":
		return oxygen(a)
	case "F":
		return fluorine
	case "Cl":
		return chlorine
	case "Br":
		return bromine
	case "I":
		return iodine
	case "S":
		if a.Aromatic {
			return sArom
		}
		return sulfur
	case "P":
		return phosph
	}
	return 0
}

func isHetero(a *chem.Atom) bool {
	return a.IsHeavy() && a.Symbol != "C"
}

func aliphaticCarbon(a *chem.Atom) float64 {
	n := countBonds(a)
	if n.triple > 0 || n.double > 1 {
		return cTriple
	}
	if n.double == 1 {
		for _, b := range a.Bonds {
			if b.Order == chem.Double && !b.Aromatic && isHetero(b.Cross(a)) {
				return cHeteroDouble
			}
		}
		return cDouble
	}
	hetero := 0
	arom := false
	for _, nb := range a.Neighbors() {
		if isHetero(nb) {
			hetero++
		}
		if nb.Aromatic {
			arom = true
		}
	}
	h := a.TotalHydrogens()
	if arom {
		switch {
		case h >= 3:
			return cMethylArom
		case h == 2:
			return cMethyleneArom
		case h == 1:
			return cMethineArom
		}
		return cQuatArom
	}
	if hetero == 0 {
		if h >= 2 {
			return cPrimary
		}
		return cQuaternary
	}
	if h >= 2 {
		return cPrimaryX
	}
	return cQuaternaryX
}

func aromaticCarbon(a *chem.Atom) float64 {
	if a.TotalHydrogens() > 0 {
		return caH
	}
	n := countBonds(a)
	if n.aromatic >= 3 {
		return caBridge
	}
	for _, b := range a.Bonds {
		if b.Aromatic {
			continue
		}
		nb := b.Cross(a)
		switch {
		case nb.Aromatic:
			return caBiaryl
		case nb.Symbol == "N":
			return caNitrogen
		case nb.Symbol == "O":
			return caOxygen
		case nb.Symbol == "S":
			return caSulfur
		case nb.Symbol == "F" || nb.Symbol == "Cl" || nb.Symbol == "Br" || nb.Symbol == "I":
			return caHalogen
		}
	}
	return caCarbon
}

func nitrogen(a *chem.Atom) float64 {
	if a.Charge != 0 {
		return nCharged
	}
	if a.Aromatic {
		return nArom
	}
	n := countBonds(a)
	if n.double > 0 || n.triple > 0 {
		return nImine
	}
	for _, nb := range a.Neighbors() {
		if nb.Aromatic || nb.HasMultipleBond() {
			return nAniline
		}
	}
	switch a.TotalHydrogens() {
	case 0:
		return nTertiary
	case 1:
		return nSecondary
	}
	return nPrimary
}

func oxygen(a *chem.Atom) float64 {
	if a.Aromatic {
		return oArom
	}
	if a.Charge < 0 {
		return oAcid
	}
	n := countBonds(a)
	if n.double > 0 {
		for _, b := range a.Bonds {
			nb := b.Cross(a)
			if b.Order != chem.Double {
				continue
			}
			switch {
			case nb.Symbol != "C":
				return oCarbonylHet
			case isAromaticSubstituted(nb):
				return oCarbonylArom
			}
		}
		return oCarbonyl
	}
	if a.TotalHydrogens() > 0 {
		return oAlcohol
	}
	for _, nb := range a.Neighbors() {
		if nb.Aromatic {
			return oAromEther
		}
	}
	return oEther
}

//isAromaticSubstituted returns true if the atom is bonded to an aromatic atom.
func isAromaticSubstituted(a *chem.Atom) bool {
	for _, nb := range a.Neighbors() {
		if nb.Aromatic {
			return true
		}
	}
	return false
}
