/*
 * descriptors.go, part of chemdex.
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

//Package descriptors computes a fixed set of molecular descriptors
//(molecular weight, Crippen LogP, hydrogen bond donors and acceptors,
//rotatable bonds and topological polar surface area) from a molecular graph.
//All the functions are pure and can be called concurrently.
package descriptors

import (
	"fmt"

	chem "github.com/rmera/chemdex"
	"gonum.org/v1/gonum/floats/scalar"
)

//Descriptor names, in the order in which they are reported.
const (
	MolecularWeight  = "Molecular Weight"
	LogP             = "LogP"
	HBondDonors      = "H-Bond Donors"
	HBondAcceptors   = "H-Bond Acceptors"
	RotatableBonds   = "Rotatable Bonds"
	PolarSurfaceArea = "Polar Surface Area"
)

//Names returns the descriptor names in report order.
func Names() []string {
	return []string{MolecularWeight, LogP, HBondDonors, HBondAcceptors, RotatableBonds, PolarSurfaceArea}
}

//Decimals is the number of decimal places used for display.
const Decimals = 2

//Set contains the descriptors of one molecule.
type Set struct {
	MolecularWeight  float64 `json:"molecular_weight"`
	LogP             float64 `json:"logp"`
	HBondDonors      int     `json:"hbond_donors"`
	HBondAcceptors   int     `json:"hbond_acceptors"`
	RotatableBonds   int     `json:"rotatable_bonds"`
	PolarSurfaceArea float64 `json:"polar_surface_area"`
}

//Entry is one named descriptor value.
type Entry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Count bool    `json:"count,omitempty"`
}

//String formats the value for display, with two decimals and
//its unit, or as an integer for counts.
func (E Entry) String() string {
	if E.Count {
		return fmt.Sprintf("%d", int(E.Value))
	}
	if E.Unit == "" {
		return fmt.Sprintf("%.*f", Decimals, E.Value)
	}
	return fmt.Sprintf("%.*f %s", Decimals, E.Value, E.Unit)
}

//Compute returns the descriptor set for mol. It fails with a
//*chem.EmptyStructureError if the molecule has no atoms.
func Compute(mol *chem.Molecule) (Set, error) {
	if mol == nil || mol.Len() == 0 {
		return Set{}, chem.NewEmptyStructureError("descriptors.Compute")
	}
	rings := mol.Rings()
	return Set{
		MolecularWeight:  MolWeight(mol),
		LogP:             CrippenLogP(mol),
		HBondDonors:      Donors(mol),
		HBondAcceptors:   Acceptors(mol, rings),
		RotatableBonds:   Rotatable(mol, rings),
		PolarSurfaceArea: TPSA(mol, rings),
	}, nil
}

//Entries returns the raw descriptor values in report order.
func (S Set) Entries() []Entry {
	return []Entry{
		{Name: MolecularWeight, Value: S.MolecularWeight, Unit: "g/mol"},
		{Name: LogP, Value: S.LogP},
		{Name: HBondDonors, Value: float64(S.HBondDonors), Count: true},
		{Name: HBondAcceptors, Value: float64(S.HBondAcceptors), Count: true},
		{Name: RotatableBonds, Value: float64(S.RotatableBonds), Count: true},
		{Name: PolarSurfaceArea, Value: S.PolarSurfaceArea, Unit: "Å²"},
	}
}

//Rounded returns a copy of the set with the real-valued
//descriptors rounded to two decimal places.
func (S Set) Rounded() Set {
	S.MolecularWeight = round(S.MolecularWeight)
	S.LogP = round(S.LogP)
	S.PolarSurfaceArea = round(S.PolarSurfaceArea)
	return S
}

//Display returns the rounded entries, ready to be shown.
func (S Set) Display() []Entry {
	return S.Rounded().Entries()
}

//Map returns the rounded descriptors keyed by name.
func (S Set) Map() map[string]float64 {
	ret := make(map[string]float64, 6)
	for _, e := range S.Display() {
		ret[e.Name] = e.Value
	}
	return ret
}

//round rounds to the display precision, without negative zeros.
func round(x float64) float64 {
	r := scalar.Round(x, Decimals)
	if r == 0 {
		return 0
	}
	return r
}

//MolWeight returns the sum of the standard atomic weights of all the
//atoms in mol, implicit hydrogens included.
func MolWeight(mol *chem.Molecule) float64 {
	w := 0.0
	for _, a := range mol.Atoms {
		w += a.Mass()
	}
	return w
}

//neighborCounts classifies the bonds of an atom to heavy atoms.
type neighborCounts struct {
	single, double, triple, aromatic int
}

func (n neighborCounts) heavy() int {
	return n.single + n.double + n.triple + n.aromatic
}

func countBonds(at *chem.Atom) neighborCounts {
	var n neighborCounts
	for _, b := range at.Bonds {
		if !b.Cross(at).IsHeavy() {
			continue
		}
		switch {
		case b.Aromatic:
			n.aromatic++
		case b.Order == chem.Double:
			n.double++
		case b.Order >= chem.Triple:
			n.triple++
		default:
			n.single++
		}
	}
	return n
}

//inSmallRing returns true if the atom is in a three-membered ring.
func inSmallRing(rings *chem.RingInfo, i int) bool {
	return rings.InRingOfSize(i, 3)
}
