/*
 * doc.go, part of gosire.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * gosire is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

/*Package mol is the core of gosire. It provides a versioned, immutable representation of molecules,
views onto parts of them, and editors to change their structure.


	**gosire Capabilities**


    Molecules are organized in atoms, CutGroups, residues, chains and segments. The layout of
	one version of a molecule (MoleculeInfo) maps names, numbers and indexes to positions and
	positions to parents and children.

    MoleculeData is never changed once built. Moving atoms or setting properties gives a new
	minor version; changing the structure gives a new major version.

    Views (Atom, CutGroup, Residue, Chain, Segment, Molecule, PartialMolecule, ViewsOfMol and
	Selector) narrow a molecule to a subset of its atoms, represented by an AtomSelection.

    StructureEditor and the typed editors (AtomStructureEditor, ResStructureEditor, etc.) stage
	structural changes. Entities are addressed by UIDs that survive reordering and removals of
	other entities, so editor handles can be chained freely before committing.

    Molecules and MoleculeGroup collect many molecules and views. MoleculeGroup keeps the order
	in which things were added and tracks membership (major) and content (minor) versions.

    Molecules, collections and groups can be written to and read from versioned binary streams.

Errors returned by the package implement the Error interface. Their kind (missing, duplicate,
invalid index, incompatible...) can be obtained with KindOf, or tested with errors.Is and
the Err* sentinels.

The pdb sub-package reads PDB files into this representation, molgraph builds the covalent
connectivity of a molecule, and molplot plots per-residue properties.
*/
package mol
