/*
 * smileswrite.go, part of chemdex.
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
	"strconv"
	"strings"
)

//smilesWriter keeps the state of WriteSMILES. The spanning tree and the
//ring closures are found in a first depth-first pass, and the string is
//written in a second one that follows the same order.
type smilesWriter struct {
	mol      *Molecule
	visited  []bool
	children [][]*Bond //tree bonds leaving each atom, in DFS order
	closures [][]*Bond //ring closure bonds of each atom, in the order they must be written
	digits   map[int]int
	used     map[int]bool
	sb       strings.Builder
}

//WriteSMILES returns a SMILES string for mol. Reading the string back with
//ParseSMILES gives a molecule with the same atoms (element, charge,
//isotope, hydrogens and aromaticity) and the same bonds, although atoms
//may be numbered differently. Chirality is not written.
func WriteSMILES(mol *Molecule) string {
	w := &smilesWriter{
		mol:      mol,
		visited:  make([]bool, mol.Len()),
		children: make([][]*Bond, mol.Len()),
		closures: make([][]*Bond, mol.Len()),
		digits:   make(map[int]int),
		used:     make(map[int]bool),
	}
	roots := make([]int, 0, 1)
	for i := range mol.Atoms {
		if !w.visited[i] {
			roots = append(roots, i)
			w.spanning(i, -1)
		}
	}
	for n, r := range roots {
		if n > 0 {
			w.sb.WriteString(".")
		}
		w.write(r, nil)
	}
	return w.sb.String()
}

//sortedBonds returns the bonds of at sorted by the index of the atom at their other end.
func sortedBonds(at *Atom) []*Bond {
	bonds := make([]*Bond, len(at.Bonds))
	copy(bonds, at.Bonds)
	sort.Slice(bonds, func(i, j int) bool { return bonds[i].Cross(at).Index < bonds[j].Cross(at).Index })
	return bonds
}

func (w *smilesWriter) spanning(i, parentBond int) {
	w.visited[i] = true
	at := w.mol.Atoms[i]
	for _, b := range sortedBonds(at) {
		if b.Index == parentBond {
			continue
		}
		n := b.Cross(at).Index
		if w.visited[n] {
			//a back edge, seen first from the descendant (i). Unless
			//it is already registered, from the ancestor (n) side.
			if !containsBond(w.closures[n], b) {
				w.closures[n] = append(w.closures[n], b)
				w.closures[i] = append(w.closures[i], b)
			}
			continue
		}
		w.children[i] = append(w.children[i], b)
		w.spanning(n, b.Index)
	}
}

func containsBond(bonds []*Bond, b *Bond) bool {
	for _, v := range bonds {
		if v.Index == b.Index {
			return true
		}
	}
	return false
}

func (w *smilesWriter) write(i int, from *Bond) {
	at := w.mol.Atoms[i]
	if from != nil {
		w.sb.WriteString(bondSymbol(from))
	}
	w.sb.WriteString(atomSymbol(at))
	for _, b := range w.closures[i] {
		if d, ok := w.digits[b.Index]; ok {
			//closing
			w.sb.WriteString(digitString(d))
			delete(w.digits, b.Index)
			delete(w.used, d)
			continue
		}
		d := w.freeDigit()
		w.digits[b.Index] = d
		w.used[d] = true
		w.sb.WriteString(bondSymbol(b))
		w.sb.WriteString(digitString(d))
	}
	ch := w.children[i]
	for n, b := range ch {
		next := b.Cross(at).Index
		if n < len(ch)-1 {
			w.sb.WriteString("(")
			w.write(next, b)
			w.sb.WriteString(")")
			continue
		}
		w.write(next, b)
	}
}

func (w *smilesWriter) freeDigit() int {
	for d := 1; ; d++ {
		if !w.used[d] {
			return d
		}
	}
}

func digitString(d int) string {
	if d < 10 {
		return strconv.Itoa(d)
	}
	return fmt.Sprintf("%%%02d", d)
}

//bondSymbol returns the symbol that needs to be written for b, which
//might be nothing.
func bondSymbol(b *Bond) string {
	bothAromatic := b.At1.Aromatic && b.At2.Aromatic
	if b.Aromatic {
		if bothAromatic {
			return ""
		}
		return ":"
	}
	if b.Order == Single {
		if bothAromatic {
			return "-"
		}
		return ""
	}
	return b.Order.Symbol()
}

//atomSymbol returns the atom as it should appear in a SMILES,
//in brackets when the organic subset rules would not give back the
//same atom.
func atomSymbol(at *Atom) string {
	sym := at.Symbol
	if at.Aromatic {
		sym = strings.ToLower(sym)
	}
	if organicSubset[at.Symbol] && at.Charge == 0 && at.Isotope == 0 {
		sum := at.BondSum()
		if at.Aromatic {
			sum++
		}
		_, aromok := aromaticSymbols[sym]
		if implicitHydrogens(at.Symbol, sum, 0) == at.Hydrogens && (!at.Aromatic || aromok) {
			return sym
		}
	}
	var sb strings.Builder
	sb.WriteString("[")
	if at.Isotope > 0 {
		sb.WriteString(strconv.Itoa(at.Isotope))
	}
	sb.WriteString(sym)
	if at.Hydrogens > 0 {
		sb.WriteString("H")
		if at.Hydrogens > 1 {
			sb.WriteString(strconv.Itoa(at.Hydrogens))
		}
	}
	if at.Charge != 0 {
		if at.Charge > 0 {
			sb.WriteString("+")
		} else {
			sb.WriteString("-")
		}
		if abs(at.Charge) > 1 {
			sb.WriteString(strconv.Itoa(abs(at.Charge)))
		}
	}
	sb.WriteString("]")
	return sb.String()
}
