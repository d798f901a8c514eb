/*
 * catalog.go, part of chemdex.
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

//Package catalog holds the substance records, with their metadata
//and structures, and looks them up by name.
package catalog

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	chem "github.com/rmera/chemdex"
)

//PubChemBase is the address of a compound page in PubChem, without the CID.
const PubChemBase = "https://pubchem.ncbi.nlm.nih.gov/compound/"

//Record contains everything that is known about a substance.
//Records are values, and are never modified by the catalog.
type Record struct {
	Name        string   `yaml:"name" json:"name"`
	IUPAC       string   `yaml:"iupac" json:"iupac"`
	SMILES      string   `yaml:"smiles" json:"smiles"`
	Formula     string   `yaml:"formula" json:"formula"`
	Weight      float64  `yaml:"weight" json:"weight"` //nominal, as given by the source, in g/mol
	Category    string   `yaml:"category" json:"category"`
	Uses        []string `yaml:"uses" json:"uses"`
	Precautions []string `yaml:"precautions" json:"precautions"`
	SideEffects []string `yaml:"side_effects" json:"side_effects"`
	Symptoms    []string `yaml:"symptoms" json:"symptoms"` //of overdose
	Toxicity    string   `yaml:"toxicity" json:"toxicity"`
	PubChemCID  string   `yaml:"pubchem_cid" json:"pubchem_cid"`
}

//PubChemURL returns the address of the PubChem page for the substance,
//or an empty string if the record has no CID.
func (R Record) PubChemURL() string {
	if R.PubChemCID == "" {
		return ""
	}
	return PubChemBase + R.PubChemCID
}

//Clone returns a copy of R that shares no memory with it.
func (R Record) Clone() Record {
	R.Uses = slices.Clone(R.Uses)
	R.Precautions = slices.Clone(R.Precautions)
	R.SideEffects = slices.Clone(R.SideEffects)
	R.Symptoms = slices.Clone(R.Symptoms)
	return R
}

//Catalog is an immutable, ordered set of records with unique names.
//All its methods are safe for concurrent use.
type Catalog struct {
	records  []Record
	byName   map[string]int
	mols     []*chem.Molecule
	problems []error
}

//New builds a catalog with the given records, in the given order, and parses
//their structures. It returns an error if a name is empty or repeated.
//Records whose SMILES can't be parsed are kept; see Problem.
func New(records ...Record) (*Catalog, error) {
	C := &Catalog{
		records:  make([]Record, 0, len(records)),
		byName:   make(map[string]int, len(records)),
		mols:     make([]*chem.Molecule, 0, len(records)),
		problems: make([]error, 0, len(records)),
	}
	for i, r := range records {
		if strings.TrimSpace(r.Name) == "" {
			return nil, &RecordError{Index: i, Reason: "empty name", deco: []string{"New"}}
		}
		if _, ok := C.byName[r.Name]; ok {
			return nil, &RecordError{Index: i, Name: r.Name, Reason: "duplicated name", deco: []string{"New"}}
		}
		C.byName[r.Name] = len(C.records)
		C.records = append(C.records, r.Clone())
		mol, err := chem.ParseSMILES(r.SMILES)
		if err == nil && mol.Len() == 0 {
			err = chem.NewEmptyStructureError("catalog.New")
		}
		if err != nil {
			mol = nil
			err = fmt.Errorf("structure of %s: %w", r.Name, err)
		}
		C.mols = append(C.mols, mol)
		C.problems = append(C.problems, err)
	}
	return C, nil
}

//Len returns the number of records.
func (C *Catalog) Len() int {
	return len(C.records)
}

//FindByName returns the record with exactly the given name (no case folding or
//trimming is done). If there is none, a *NotFoundError is returned.
func (C *Catalog) FindByName(name string) (Record, error) {
	i, ok := C.byName[name]
	if !ok {
		return Record{}, &NotFoundError{Name: name, deco: []string{"FindByName"}}
	}
	return C.records[i].Clone(), nil
}

//ListNames returns the names of all records, sorted
//in case-sensitive lexicographic order.
func (C *Catalog) ListNames() []string {
	ret := make([]string, 0, len(C.records))
	for _, r := range C.records {
		ret = append(ret, r.Name)
	}
	sort.Strings(ret)
	return ret
}

//Records returns a copy of the records, in the order in which they were given.
func (C *Catalog) Records() []Record {
	ret := make([]Record, 0, len(C.records))
	for _, r := range C.records {
		ret = append(ret, r.Clone())
	}
	return ret
}

//Problem returns the error found when parsing the structure of the substance
//name, or nil if the structure is fine. It returns a *NotFoundError if there is
//no such substance.
func (C *Catalog) Problem(name string) error {
	i, ok := C.byName[name]
	if !ok {
		return &NotFoundError{Name: name, deco: []string{"Problem"}}
	}
	return C.problems[i]
}

//Molecule returns a copy of the parsed structure of the substance name.
//It returns the same errors as Problem.
func (C *Catalog) Molecule(name string) (*chem.Molecule, error) {
	if err := C.Problem(name); err != nil {
		return nil, err
	}
	return C.mols[C.byName[name]].Copy(), nil
}
