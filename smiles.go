/*
 * smiles.go, part of chemdex.
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
	"fmt"
	"sort"
)

//pendingBond is a bond symbol that has been read but not yet
//used to join two atoms.
type pendingBond struct {
	set      bool
	order    BondOrder
	aromatic bool
	pos      int
}

//ringOpening is an atom waiting for its ring closure digit to appear again.
type ringOpening struct {
	atom int
	bond pendingBond
	pos  int
}

type smilesParser struct {
	s          string
	pos        int
	mol        *Molecule
	prev       int   //atom to bond from, -1 if none
	branch     []int //stack of atoms to go back to at the end of each branch
	opened     []int //position of each open parenthesis, to report errors
	rings      map[int]ringOpening
	bond       pendingBond
	justOpened bool //the last thing read was a '('
}

//ParseSMILES reads a SMILES string and returns the corresponding molecular graph.
//It supports the organic subset, bracket atoms (isotopes, hydrogen counts and charges;
//chirality and atom classes are accepted and ignored), all bond symbols,
//branches, ring closures (including %nn) and disconnected structures ('.').
//Implicit hydrogens are assigned to atoms outside brackets from their standard valences.
//Rings written in Kekulé form that follow Hückel's rule are then marked aromatic.
//Parsing stops at the first whitespace, so a name may follow the SMILES.
//On error, it returns a *ParseError and no molecule.
//The empty string gives an empty molecule and no error.
func ParseSMILES(smiles string) (*Molecule, error) {
	p := &smilesParser{s: smiles, mol: NewMolecule(), prev: -1, rings: make(map[int]ringOpening)}
	if err := p.parse(); err != nil {
		return nil, errDecorate(err, "ParseSMILES")
	}
	p.assignHydrogens()
	perceiveAromaticity(p.mol)
	return p.mol, nil
}

//MustParseSMILES is like ParseSMILES but panics on error. It is meant for
//SMILES that are constants in a program.
func MustParseSMILES(smiles string) *Molecule {
	mol, err := ParseSMILES(smiles)
	if err != nil {
		panic(err.Error())
	}
	return mol
}

func (p *smilesParser) errorf(pos int, format string, args ...interface{}) error {
	return &ParseError{Notation: p.s, Pos: pos, Reason: fmt.Sprintf(format, args...), deco: []string{"smilesParser"}}
}

func (p *smilesParser) parse() error {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			//what comes after the SMILES is a title, which we don't care about.
			return p.finish()
		case c == '[' || isLetter(c) || c == '*':
			start := p.pos
			var at *Atom
			var err error
			if c == '[' {
				at, err = p.bracketAtom()
			} else {
				at, err = p.organicAtom()
			}
			if err != nil {
				return err
			}
			p.mol.AddAtom(at)
			if p.prev >= 0 {
				if err := p.join(p.prev, at.Index, p.bond, start); err != nil {
					return err
				}
			}
			p.bond = pendingBond{}
			p.prev = at.Index
			p.justOpened = false
		case isBondSymbol(c):
			if p.prev < 0 {
				return p.errorf(p.pos, "bond '%c' has no atom before it", c)
			}
			if p.bond.set {
				return p.errorf(p.pos, "two consecutive bond symbols")
			}
			p.bond = bondFromSymbol(c, p.pos)
			p.pos++
			p.justOpened = false
		case c == '(':
			if p.prev < 0 {
				return p.errorf(p.pos, "branch has no atom to start from")
			}
			if p.bond.set {
				return p.errorf(p.bond.pos, "bond '%c' is not followed by an atom", p.s[p.bond.pos])
			}
			if p.justOpened {
				return p.errorf(p.pos, "branch has no atom to start from")
			}
			p.branch = append(p.branch, p.prev)
			p.opened = append(p.opened, p.pos)
			p.pos++
			p.justOpened = true
		case c == ')':
			if len(p.branch) == 0 {
				return p.errorf(p.pos, "')' without matching '('")
			}
			if p.bond.set {
				return p.errorf(p.bond.pos, "bond '%c' is not followed by an atom", p.s[p.bond.pos])
			}
			if p.justOpened {
				return p.errorf(p.pos, "empty branch")
			}
			p.prev = p.branch[len(p.branch)-1]
			p.branch = p.branch[:len(p.branch)-1]
			p.opened = p.opened[:len(p.opened)-1]
			p.pos++
		case isDigit(c) || c == '%':
			if err := p.ringClosure(); err != nil {
				return err
			}
			p.justOpened = false
		case c == '.':
			if p.bond.set {
				return p.errorf(p.bond.pos, "bond '%c' is not followed by an atom", p.s[p.bond.pos])
			}
			if p.prev < 0 {
				return p.errorf(p.pos, "'.' has no atom before it")
			}
			p.prev = -1
			p.pos++
		default:
			return p.errorf(p.pos, "unexpected character '%c'", c)
		}
	}
	return p.finish()
}

//finish checks that nothing was left open.
func (p *smilesParser) finish() error {
	if p.bond.set {
		return p.errorf(p.bond.pos, "bond '%c' is not followed by an atom", p.s[p.bond.pos])
	}
	if len(p.branch) > 0 {
		return p.errorf(p.opened[len(p.opened)-1], "unclosed branch")
	}
	if p.prev < 0 && p.mol.Len() > 0 {
		return p.errorf(p.pos, "'.' is not followed by an atom")
	}
	if len(p.rings) > 0 {
		digits := make([]int, 0, len(p.rings))
		for d := range p.rings {
			digits = append(digits, d)
		}
		sort.Ints(digits)
		return p.errorf(p.rings[digits[0]].pos, "ring closure %d is never closed", digits[0])
	}
	return nil
}

//join bonds atoms i and j. Without an explicit bond symbol the bond is
//aromatic if both atoms are aromatic, and single otherwise.
func (p *smilesParser) join(i, j int, bond pendingBond, pos int) error {
	order := Single
	aromatic := p.mol.Atoms[i].Aromatic && p.mol.Atoms[j].Aromatic
	if bond.set {
		order = bond.order
		aromatic = bond.aromatic
	}
	if _, err := p.mol.AddBond(i, j, order, aromatic); err != nil {
		return p.errorf(pos, "%s", err.Error())
	}
	return nil
}

func (p *smilesParser) ringClosure() error {
	start := p.pos
	if p.prev < 0 {
		return p.errorf(p.pos, "ring closure has no atom before it")
	}
	var num int
	if p.s[p.pos] == '%' {
		if p.pos+2 >= len(p.s) || !isDigit(p.s[p.pos+1]) || !isDigit(p.s[p.pos+2]) {
			return p.errorf(p.pos, "'%%' must be followed by two digits")
		}
		num = int(p.s[p.pos+1]-'0')*10 + int(p.s[p.pos+2]-'0')
		p.pos += 3
	} else {
		num = int(p.s[p.pos] - '0')
		p.pos++
	}
	open, ok := p.rings[num]
	if !ok {
		p.rings[num] = ringOpening{atom: p.prev, bond: p.bond, pos: start}
		p.bond = pendingBond{}
		return nil
	}
	delete(p.rings, num)
	if open.atom == p.prev {
		return p.errorf(start, "ring closure %d bonds an atom to itself", num)
	}
	bond := open.bond
	if p.bond.set {
		if bond.set && (bond.order != p.bond.order || bond.aromatic != p.bond.aromatic) {
			return p.errorf(start, "ring closure %d has conflicting bond symbols", num)
		}
		bond = p.bond
	}
	p.bond = pendingBond{}
	if p.mol.BondBetween(open.atom, p.prev) != nil {
		return p.errorf(start, "ring closure %d duplicates an existing bond", num)
	}
	return p.join(open.atom, p.prev, bond, start)
}

//organicAtom reads an atom of the organic subset.
func (p *smilesParser) organicAtom() (*Atom, error) {
	c := p.s[p.pos]
	if c == '*' {
		return nil, p.errorf(p.pos, "wildcard atoms are not supported")
	}
	if p.pos+1 < len(p.s) {
		two := p.s[p.pos : p.pos+2]
		if two == "Cl" || two == "Br" {
			p.pos += 2
			return &Atom{Symbol: two}, nil
		}
	}
	sym := string(c)
	if organicSubset[sym] {
		p.pos++
		return &Atom{Symbol: sym}, nil
	}
	if el, ok := aromaticSymbols[sym]; ok {
		p.pos++
		return &Atom{Symbol: el, Aromatic: true}, nil
	}
	if isUpper(c) && p.pos+1 < len(p.s) && isLower(p.s[p.pos+1]) && IsElement(p.s[p.pos:p.pos+2]) {
		return nil, p.errorf(p.pos, "element %s must be written in brackets", p.s[p.pos:p.pos+2])
	}
	if IsElement(sym) {
		return nil, p.errorf(p.pos, "element %s must be written in brackets", sym)
	}
	return nil, p.errorf(p.pos, "unknown element '%s'", sym)
}

//bracketAtom reads an atom in the form [isotope symbol chirality hcount charge class].
func (p *smilesParser) bracketAtom() (*Atom, error) {
	start := p.pos
	end := -1
	for i := p.pos + 1; i < len(p.s); i++ {
		if p.s[i] == ']' {
			end = i
			break
		}
		if p.s[i] == '[' {
			break
		}
	}
	if end < 0 {
		return nil, p.errorf(start, "unterminated bracket atom")
	}
	in := p.s[start+1 : end]
	i := 0
	at := &Atom{Bracket: true}
	//isotope
	for i < len(in) && isDigit(in[i]) {
		at.Isotope = at.Isotope*10 + int(in[i]-'0')
		i++
	}
	//element
	if i >= len(in) {
		return nil, p.errorf(start, "bracket atom without element")
	}
	switch {
	case i+1 < len(in) && isLower(in[i]) && aromaticSymbols[in[i:i+2]] != "":
		at.Symbol = aromaticSymbols[in[i:i+2]]
		at.Aromatic = true
		i += 2
	case isLower(in[i]) && aromaticSymbols[in[i:i+1]] != "":
		at.Symbol = aromaticSymbols[in[i:i+1]]
		at.Aromatic = true
		i++
	case isUpper(in[i]):
		if i+1 < len(in) && isLower(in[i+1]) && IsElement(in[i:i+2]) {
			at.Symbol = in[i : i+2]
			i += 2
		} else if IsElement(in[i : i+1]) {
			at.Symbol = in[i : i+1]
			i++
		} else {
			return nil, p.errorf(start+1+i, "unknown element in bracket atom [%s]", in)
		}
	case in[i] == '*':
		return nil, p.errorf(start+1+i, "wildcard atoms are not supported")
	default:
		return nil, p.errorf(start+1+i, "unknown element in bracket atom [%s]", in)
	}
	//chirality, ignored
	if i < len(in) && in[i] == '@' {
		i++
		if i < len(in) && in[i] == '@' {
			i++
		} else if i+1 < len(in) && chiralClasses[in[i:i+2]] {
			i += 2
			for i < len(in) && isDigit(in[i]) {
				i++
			}
		}
	}
	//hydrogens
	if i < len(in) && in[i] == 'H' {
		i++
		at.Hydrogens = 1
		if i < len(in) && isDigit(in[i]) {
			at.Hydrogens = 0
			for i < len(in) && isDigit(in[i]) {
				at.Hydrogens = at.Hydrogens*10 + int(in[i]-'0')
				i++
			}
		}
	}
	//charge
	if i < len(in) && (in[i] == '+' || in[i] == '-') {
		sign := 1
		if in[i] == '-' {
			sign = -1
		}
		sym := in[i]
		i++
		if i < len(in) && isDigit(in[i]) {
			n := 0
			for i < len(in) && isDigit(in[i]) {
				n = n*10 + int(in[i]-'0')
				i++
			}
			at.Charge = sign * n
		} else {
			n := 1
			for i < len(in) && in[i] == sym {
				n++
				i++
			}
			at.Charge = sign * n
		}
	}
	//atom class, ignored
	if i < len(in) && in[i] == ':' {
		i++
		if i >= len(in) || !isDigit(in[i]) {
			return nil, p.errorf(start+1+i, "atom class must be a number")
		}
		for i < len(in) && isDigit(in[i]) {
			i++
		}
	}
	if i != len(in) {
		return nil, p.errorf(start+1+i, "unexpected '%c' in bracket atom [%s]", in[i], in)
	}
	p.pos = end + 1
	return at, nil
}

//assignHydrogens sets the implicit hydrogens of the atoms outside brackets:
//the lowest standard valence not smaller than the sum of bond orders,
//minus that sum, clamped at zero. Aromatic atoms add one to the sum.
func (p *smilesParser) assignHydrogens() {
	for _, at := range p.mol.Atoms {
		if at.Bracket {
			continue
		}
		sum := at.BondSum()
		if at.Aromatic {
			sum++
		}
		at.Hydrogens = implicitHydrogens(at.Symbol, sum, at.Charge)
	}
}

var chiralClasses = map[string]bool{"TH": true, "AL": true, "SP": true, "TB": true, "OH": true}

func bondFromSymbol(c byte, pos int) pendingBond {
	b := pendingBond{set: true, order: Single, pos: pos}
	switch c {
	case '=':
		b.order = Double
	case '#':
		b.order = Triple
	case '$':
		b.order = Quadruple
	case ':':
		b.aromatic = true
	}
	return b
}

func isBondSymbol(c byte) bool {
	switch c {
	case '-', '=', '#', '$', ':', '/', '\\':
		return true
	}
	return false
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isLetter(c byte) bool { return isUpper(c) || isLower(c) }
