/*
 * json.go, part of chemdex.
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/chemdex"
	"gonum.org/v1/gonum/spatial/r2"
)

//A ready-to-serialize container for an atom.
type Atom struct {
	Symbol    string    `json:"symbol"`
	Charge    int       `json:"charge,omitempty"`
	Hydrogens int       `json:"hydrogens"`
	Isotope   int       `json:"isotope,omitempty"`
	Aromatic  bool      `json:"aromatic,omitempty"`
	Coords    []float64 `json:"coords,omitempty"` //x and y, in bond lengths
}

//A ready-to-serialize container for a bond, which refers to
//its atoms by their index.
type Bond struct {
	At1      int  `json:"at1"`
	At2      int  `json:"at2"`
	Order    int  `json:"order"`
	Aromatic bool `json:"aromatic,omitempty"`
}

//Structure is a molecule, with its 2D layout if available,
//ready to be sent to a program that can't read SMILES.
type Structure struct {
	Name    string `json:"name,omitempty"`
	SMILES  string `json:"smiles"`
	Formula string `json:"formula"`
	Atoms   []Atom `json:"atoms"`
	Bonds   []Bond `json:"bonds"`
}

//An easily JSON-serializable error type,
type Error struct {
	deco     []string
	IsError  bool   `json:"is_error"` //If this is false (no error) all the other fields will be at their zero-values.
	InDecode bool   `json:"in_decode,omitempty"`
	InEncode bool   `json:"in_encode,omitempty"`
	Atom     int    `json:"atom,omitempty"`
	Function string `json:"function"` //which go function gave the error
	Message  string `json:"message"`  //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "decode":
		jerr.InDecode = true
	default:
		jerr.InEncode = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.Decorate(function)
	return jerr
}

//FromMolecule builds a Structure from mol. coords can be nil, otherwise
//it must contain one point per atom.
func FromMolecule(name string, mol *chem.Molecule, coords []r2.Vec) (*Structure, *Error) {
	const funcname = "FromMolecule"
	if coords != nil && len(coords) != mol.Len() {
		return nil, NewError("encode", funcname, fmt.Errorf("%d coordinates for %d atoms", len(coords), mol.Len()))
	}
	S := &Structure{
		Name:    name,
		SMILES:  chem.WriteSMILES(mol),
		Formula: mol.Formula(),
		Atoms:   make([]Atom, 0, mol.Len()),
		Bonds:   make([]Bond, 0, mol.NBonds()),
	}
	for i, a := range mol.Atoms {
		ja := Atom{Symbol: a.Symbol, Charge: a.Charge, Hydrogens: a.Hydrogens, Isotope: a.Isotope, Aromatic: a.Aromatic}
		if coords != nil {
			ja.Coords = []float64{coords[i].X, coords[i].Y}
		}
		S.Atoms = append(S.Atoms, ja)
	}
	for _, b := range mol.Bonds {
		S.Bonds = append(S.Bonds, Bond{At1: b.At1.Index, At2: b.At2.Index, Order: int(b.Order), Aromatic: b.Aromatic})
	}
	return S, nil
}

//Molecule rebuilds the molecular graph contained in the structure,
//and returns it with the coordinates, if the structure has them.
func (S *Structure) Molecule() (*chem.Molecule, []r2.Vec, *Error) {
	const funcname = "Structure.Molecule"
	mol := chem.NewMolecule()
	var coords []r2.Vec
	for i, a := range S.Atoms {
		if !chem.IsElement(a.Symbol) {
			jerr := NewError("decode", funcname, fmt.Errorf("unknown element %q", a.Symbol))
			jerr.Atom = i
			return nil, nil, jerr
		}
		mol.AddAtom(&chem.Atom{Symbol: a.Symbol, Charge: a.Charge, Hydrogens: a.Hydrogens, Isotope: a.Isotope, Aromatic: a.Aromatic})
		switch {
		case len(a.Coords) == 2:
			coords = append(coords, r2.Vec{X: a.Coords[0], Y: a.Coords[1]})
		case len(a.Coords) != 0:
			jerr := NewError("decode", funcname, fmt.Errorf("atom has %d coordinates, 2 expected", len(a.Coords)))
			jerr.Atom = i
			return nil, nil, jerr
		}
	}
	if len(coords) != 0 && len(coords) != mol.Len() {
		return nil, nil, NewError("decode", funcname, fmt.Errorf("only %d of %d atoms have coordinates", len(coords), mol.Len()))
	}
	for _, b := range S.Bonds {
		if b.Order < int(chem.Single) || b.Order > int(chem.Quadruple) {
			return nil, nil, NewError("decode", funcname, fmt.Errorf("invalid bond order %d", b.Order))
		}
		if _, err := mol.AddBond(b.At1, b.At2, chem.BondOrder(b.Order), b.Aromatic); err != nil {
			return nil, nil, NewError("decode", funcname, err)
		}
	}
	return mol, coords, nil
}

//Send Marshals the structure and writes to out, returns an error or nil
func (S *Structure) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(S); err != nil {
		return NewError("encode", "Structure.Send", err)
	}
	return nil
}

//DecodeStructure reads one JSON structure from in.
func DecodeStructure(in io.Reader) (*Structure, *Error) {
	S := new(Structure)
	if err := json.NewDecoder(in).Decode(S); err != nil {
		return nil, NewError("decode", "DecodeStructure", err)
	}
	return S, nil
}
