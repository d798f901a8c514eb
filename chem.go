/*
 * chem.go, part of chemdex.
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
 */

package chem

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. The panics are related to using the function on a nil object or trying to access out-of bounds
 * fields. Nothing that depends on user input panics.**/

//Atom contains the information for one atom of a molecular graph.
type Atom struct {
	Symbol    string //element symbol, always capitalized ("C", not "c")
	Index     int    //position of the atom in its Molecule
	Charge    int
	Hydrogens int //implicit or bracket hydrogens, not counting H atoms present in the graph.
	Isotope   int //0 means natural abundance
	Aromatic  bool
	Bracket   bool //the atom was written in brackets in the SMILES it came from
	Bonds     []*Bond
}

//Atom methods

//Copy returns a copy of the Atom object, without bonds.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Symbol = A.Symbol
	Newat.Index = A.Index
	Newat.Charge = A.Charge
	Newat.Hydrogens = A.Hydrogens
	Newat.Isotope = A.Isotope
	Newat.Aromatic = A.Aromatic
	Newat.Bracket = A.Bracket
	return Newat
}

//IsHeavy returns true for any atom that is not a hydrogen.
func (A *Atom) IsHeavy() bool {
	return A.Symbol != "H"
}

//Degree returns the number of atoms bonded to A in the graph.
func (A *Atom) Degree() int {
	return len(A.Bonds)
}

//HeavyDegree returns the number of non-hydrogen atoms bonded to A.
func (A *Atom) HeavyDegree() int {
	n := 0
	for _, b := range A.Bonds {
		if b.Cross(A).IsHeavy() {
			n++
		}
	}
	return n
}

//TotalHydrogens returns the implicit hydrogens of A plus the
//hydrogen atoms bonded to it.
func (A *Atom) TotalHydrogens() int {
	n := A.Hydrogens
	for _, b := range A.Bonds {
		if !b.Cross(A).IsHeavy() {
			n++
		}
	}
	return n
}

//Neighbors returns the atoms bonded to A, in bond order.
func (A *Atom) Neighbors() []*Atom {
	ret := make([]*Atom, 0, len(A.Bonds))
	for _, b := range A.Bonds {
		ret = append(ret, b.Cross(A))
	}
	return ret
}

//BondSum returns the sum of the orders of the bonds of A.
//aromatic bonds count as 1.
func (A *Atom) BondSum() int {
	s := 0
	for _, b := range A.Bonds {
		if b.Aromatic {
			s++
			continue
		}
		s += int(b.Order)
	}
	return s
}

//HasMultipleBond returns true if A has a non-aromatic double or triple bond to an
//atom whose symbol is one of symbols (to any atom if no symbol is given).
func (A *Atom) HasMultipleBond(symbols ...string) bool {
	for _, b := range A.Bonds {
		if b.Aromatic || b.Order < Double {
			continue
		}
		if len(symbols) == 0 || isInString(symbols, b.Cross(A).Symbol) {
			return true
		}
	}
	return false
}

//Mass returns the mass of the atom plus that of its implicit hydrogens.
func (A *Atom) Mass() float64 {
	return symbolMass[A.Symbol] + float64(A.Hydrogens)*symbolMass["H"]
}

func (A *Atom) String() string {
	return fmt.Sprintf("%s%d", A.Symbol, A.Index)
}

/*****Molecule type***/

//Molecule is a molecular graph: a set of atoms and the bonds between them.
//It has no coordinates. A Molecule returned by this library is never
//changed by it afterwards, so it can be shared read-only.
type Molecule struct {
	Atoms []*Atom
	Bonds []*Bond
}

//NewMolecule returns an empty molecule.
func NewMolecule() *Molecule {
	return &Molecule{Atoms: make([]*Atom, 0, 20), Bonds: make([]*Bond, 0, 20)}
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//NBonds returns the number of bonds in the molecule.
func (M *Molecule) NBonds() int {
	return len(M.Bonds)
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Molecule. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() || i < 0 {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Bond returns the bond with index i. Panics if out of range.
func (M *Molecule) Bond(i int) *Bond {
	if i >= M.NBonds() || i < 0 {
		panic("Molecule: Requested Bond out of bounds")
	}
	return M.Bonds[i]
}

//AddAtom appends at to the molecule, setting its Index.
func (M *Molecule) AddAtom(at *Atom) *Atom {
	at.Index = len(M.Atoms)
	M.Atoms = append(M.Atoms, at)
	return at
}

//AddBond bonds the atoms with indexes i and j. It returns an error
//if one of the indexes is out of range, if i==j or if the atoms
//are already bonded.
func (M *Molecule) AddBond(i, j int, order BondOrder, aromatic bool) (*Bond, error) {
	if i < 0 || j < 0 || i >= M.Len() || j >= M.Len() {
		return nil, &CError{fmt.Sprintf("bond %d-%d out of range", i, j), []string{"AddBond"}}
	}
	if i == j {
		return nil, &CError{fmt.Sprintf("atom %d can't be bonded to itself", i), []string{"AddBond"}}
	}
	if M.BondBetween(i, j) != nil {
		return nil, &CError{fmt.Sprintf("atoms %d and %d are already bonded", i, j), []string{"AddBond"}}
	}
	b := &Bond{Index: len(M.Bonds), At1: M.Atoms[i], At2: M.Atoms[j], Order: order, Aromatic: aromatic}
	M.Bonds = append(M.Bonds, b)
	b.At1.Bonds = append(b.At1.Bonds, b)
	b.At2.Bonds = append(b.At2.Bonds, b)
	return b, nil
}

//BondBetween returns the bond between the atoms with
//indexes i and j, or nil if they are not bonded.
func (M *Molecule) BondBetween(i, j int) *Bond {
	if i < 0 || i >= M.Len() {
		return nil
	}
	for _, b := range M.Atoms[i].Bonds {
		if b.Cross(M.Atoms[i]).Index == j {
			return b
		}
	}
	return nil
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	n := &Molecule{Atoms: make([]*Atom, 0, M.Len()), Bonds: make([]*Bond, 0, M.NBonds())}
	for _, a := range M.Atoms {
		n.AddAtom(a.Copy())
	}
	for _, b := range M.Bonds {
		//can't fail, the original was consistent.
		n.AddBond(b.At1.Index, b.At2.Index, b.Order, b.Aromatic)
	}
	return n
}

//Charge returns the total formal charge.
func (M *Molecule) Charge() int {
	c := 0
	for _, a := range M.Atoms {
		c += a.Charge
	}
	return c
}

//ElementCounts returns the number of atoms of each element,
//including the implicit hydrogens.
func (M *Molecule) ElementCounts() map[string]int {
	counts := make(map[string]int)
	for _, a := range M.Atoms {
		counts[a.Symbol]++
		if a.Hydrogens > 0 {
			counts["H"] += a.Hydrogens
		}
	}
	return counts
}

//Formula returns the molecular formula in Hill order: C first,
//then H, then the rest alphabetically. Without carbon, all elements
//are sorted alphabetically. A non-zero total charge is appended ("+", "2-").
func (M *Molecule) Formula() string {
	counts := M.ElementCounts()
	syms := make([]string, 0, len(counts))
	for s := range counts {
		syms = append(syms, s)
	}
	_, hasC := counts["C"]
	sort.Slice(syms, func(i, j int) bool {
		if hasC {
			ri, rj := hillRank(syms[i]), hillRank(syms[j])
			if ri != rj {
				return ri < rj
			}
		}
		return syms[i] < syms[j]
	})
	var sb strings.Builder
	for _, s := range syms {
		sb.WriteString(s)
		if counts[s] > 1 {
			sb.WriteString(strconv.Itoa(counts[s]))
		}
	}
	if c := M.Charge(); c != 0 {
		if abs(c) > 1 {
			sb.WriteString(strconv.Itoa(abs(c)))
		}
		if c > 0 {
			sb.WriteString("+")
		} else {
			sb.WriteString("-")
		}
	}
	return sb.String()
}

func hillRank(s string) int {
	switch s {
	case "C":
		return 0
	case "H":
		return 1
	}
	return 2
}

//isIn is a helper function,
//returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
