/*
 * doc.go, part of chemdex.
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

/*
Package chem is the main package of chemdex. It provides the atom, bond and
molecule structures used by the rest of the library, a SMILES reader and
writer, and ring perception.

	**chemdex Capabilities**

	Reads SMILES strings into a molecular graph (ParseSMILES), including
	bracket atoms, charges, ring closures, branches and aromatic atoms.
	Implicit hydrogens are assigned from standard valences.

	Writes a molecular graph back to SMILES (WriteSMILES).

	Finds the smallest set of smallest rings of a molecule (Rings).

	Computes molecular formulas in Hill order.

	The descriptors subpackage computes molecular weight, LogP, hydrogen bond
	donors and acceptors, rotatable bonds and polar surface area.

	The depict subpackage produces 2D layouts and PNG depictions.

	The catalog and navigation subpackages hold a read-only collection of
	substances and the list/detail view model used to browse it.

All the functions in this package are pure: they never keep state between
calls, so they can be used concurrently on different molecules. A Molecule
can be shared among goroutines as long as nobody modifies it.
*/
package chem
