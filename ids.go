/*
 * ids.go, part of gosire.
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

package mol

import (
	"fmt"
)

//Position indexes. They are dense, start at 0, and are only stable for a given MoleculeInfo.
type (
	AtomIdx  int
	CGIdx    int
	ResIdx   int
	ChainIdx int
	SegIdx   int
)

//Names and numbers. They need not be unique.
type (
	AtomName  string
	AtomNum   int
	CGName    string
	ResName   string
	ResNum    int
	ChainName string
	SegName   string
	MolName   string
)

//MolNum identifies a molecule. Unique numbers are obtained with NewMolNum.
type MolNum int64

//Idx is the set of index kinds a Selector can hold.
type Idx interface {
	AtomIdx | CGIdx | ResIdx | ChainIdx | SegIdx
	kind() string
	count(info *MoleculeInfo) int
	atoms(info *MoleculeInfo) []AtomIdx
}

//ID is a query that identifies zero or more entities of one kind in a molecule.
//Map returns the matching indexes in increasing order. It fails with a Missing error if
//nothing matches and with an InvalidIndex error for out-of-range indexes.
type ID[I Idx] interface {
	Map(info *MoleculeInfo) ([]I, error)
	String() string
}

type (
	AtomID  = ID[AtomIdx]
	CGID    = ID[CGIdx]
	ResID   = ID[ResIdx]
	ChainID = ID[ChainIdx]
	SegID   = ID[SegIdx]
)

func (AtomIdx) kind() string  { return "atom" }
func (CGIdx) kind() string    { return "CutGroup" }
func (ResIdx) kind() string   { return "residue" }
func (ChainIdx) kind() string { return "chain" }
func (SegIdx) kind() string   { return "segment" }

func (AtomIdx) count(info *MoleculeInfo) int  { return info.NAtoms() }
func (CGIdx) count(info *MoleculeInfo) int    { return info.NCutGroups() }
func (ResIdx) count(info *MoleculeInfo) int   { return info.NResidues() }
func (ChainIdx) count(info *MoleculeInfo) int { return info.NChains() }
func (SegIdx) count(info *MoleculeInfo) int   { return info.NSegments() }

func (i AtomIdx) atoms(info *MoleculeInfo) []AtomIdx  { return []AtomIdx{i} }
func (i CGIdx) atoms(info *MoleculeInfo) []AtomIdx    { return info.AtomsInCutGroup(i) }
func (i ResIdx) atoms(info *MoleculeInfo) []AtomIdx   { return info.AtomsInResidue(i) }
func (i ChainIdx) atoms(info *MoleculeInfo) []AtomIdx { return info.AtomsInChain(i) }
func (i SegIdx) atoms(info *MoleculeInfo) []AtomIdx   { return info.AtomsInSegment(i) }

//wrapIndex maps a possibly negative ("from the end") index into [0,n).
func wrapIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return i, false
	}
	return i, true
}

func mapIdx[I Idx](i I, info *MoleculeInfo) ([]I, error) {
	n := i.count(info)
	j, ok := wrapIndex(int(i), n)
	if !ok {
		return nil, indexErr(i.kind(), "Map", int(i), n)
	}
	return []I{I(j)}, nil
}

func (i AtomIdx) Map(info *MoleculeInfo) ([]AtomIdx, error)   { return mapIdx(i, info) }
func (i CGIdx) Map(info *MoleculeInfo) ([]CGIdx, error)       { return mapIdx(i, info) }
func (i ResIdx) Map(info *MoleculeInfo) ([]ResIdx, error)     { return mapIdx(i, info) }
func (i ChainIdx) Map(info *MoleculeInfo) ([]ChainIdx, error) { return mapIdx(i, info) }
func (i SegIdx) Map(info *MoleculeInfo) ([]SegIdx, error)     { return mapIdx(i, info) }
func (i AtomIdx) String() string                              { return fmt.Sprintf("AtomIdx(%d)", int(i)) }
func (i CGIdx) String() string                                { return fmt.Sprintf("CGIdx(%d)", int(i)) }
func (i ResIdx) String() string                               { return fmt.Sprintf("ResIdx(%d)", int(i)) }
func (i ChainIdx) String() string                             { return fmt.Sprintf("ChainIdx(%d)", int(i)) }
func (i SegIdx) String() string                               { return fmt.Sprintf("SegIdx(%d)", int(i)) }
func (n AtomName) String() string                             { return fmt.Sprintf("AtomName('%s')", string(n)) }
func (n AtomNum) String() string                              { return fmt.Sprintf("AtomNum(%d)", int(n)) }
func (n CGName) String() string                               { return fmt.Sprintf("CGName('%s')", string(n)) }
func (n ResName) String() string                              { return fmt.Sprintf("ResName('%s')", string(n)) }
func (n ResNum) String() string                               { return fmt.Sprintf("ResNum(%d)", int(n)) }
func (n ChainName) String() string                            { return fmt.Sprintf("ChainName('%s')", string(n)) }
func (n SegName) String() string                              { return fmt.Sprintf("SegName('%s')", string(n)) }

func lookup[K comparable, I Idx](m map[K][]I, key K, entity, id string) ([]I, error) {
	ret := m[key]
	if len(ret) == 0 {
		return nil, missingErr(entity, "Map", "no %s matches %s", entity, id)
	}
	return append([]I(nil), ret...), nil
}

func (n AtomName) Map(info *MoleculeInfo) ([]AtomIdx, error) {
	return lookup(info.atomsByName, n, "atom", n.String())
}

func (n AtomNum) Map(info *MoleculeInfo) ([]AtomIdx, error) {
	return lookup(info.atomsByNum, n, "atom", n.String())
}

func (n CGName) Map(info *MoleculeInfo) ([]CGIdx, error) {
	return lookup(info.cgsByName, n, "CutGroup", n.String())
}

func (n ResName) Map(info *MoleculeInfo) ([]ResIdx, error) {
	return lookup(info.resByName, n, "residue", n.String())
}

func (n ResNum) Map(info *MoleculeInfo) ([]ResIdx, error) {
	return lookup(info.resByNum, n, "residue", n.String())
}

func (n ChainName) Map(info *MoleculeInfo) ([]ChainIdx, error) {
	return lookup(info.chainsByName, n, "chain", n.String())
}

func (n SegName) Map(info *MoleculeInfo) ([]SegIdx, error) {
	return lookup(info.segsByName, n, "segment", n.String())
}

//ResAtom identifies the atoms matching Atom that belong to the residues matching Res.
type ResAtom struct {
	Res  ResID
	Atom AtomID
}

func (r ResAtom) String() string { return fmt.Sprintf("%s + %s", r.Res, r.Atom) }

func (r ResAtom) Map(info *MoleculeInfo) ([]AtomIdx, error) {
	residues, err := r.Res.Map(info)
	if err != nil {
		return nil, errDecorate(err, "ResAtom.Map")
	}
	atoms, err := r.Atom.Map(info)
	if err != nil {
		return nil, errDecorate(err, "ResAtom.Map")
	}
	in := make(map[ResIdx]bool, len(residues))
	for _, v := range residues {
		in[v] = true
	}
	ret := make([]AtomIdx, 0, len(atoms))
	for _, a := range atoms {
		if res, ok := info.residueOf(a); ok && in[res] {
			ret = append(ret, a)
		}
	}
	if len(ret) == 0 {
		return nil, missingErr("atom", "ResAtom.Map", "no atom matches %s", r)
	}
	return ret, nil
}

//ChainRes identifies the residues matching Res that belong to the chains matching Chain.
type ChainRes struct {
	Chain ChainID
	Res   ResID
}

func (c ChainRes) String() string { return fmt.Sprintf("%s + %s", c.Chain, c.Res) }

func (c ChainRes) Map(info *MoleculeInfo) ([]ResIdx, error) {
	chains, err := c.Chain.Map(info)
	if err != nil {
		return nil, errDecorate(err, "ChainRes.Map")
	}
	residues, err := c.Res.Map(info)
	if err != nil {
		return nil, errDecorate(err, "ChainRes.Map")
	}
	in := make(map[ChainIdx]bool, len(chains))
	for _, v := range chains {
		in[v] = true
	}
	ret := make([]ResIdx, 0, len(residues))
	for _, r := range residues {
		if ch, ok := info.chainOf(r); ok && in[ch] {
			ret = append(ret, r)
		}
	}
	if len(ret) == 0 {
		return nil, missingErr("residue", "ChainRes.Map", "no residue matches %s", c)
	}
	return ret, nil
}

//unique resolves id to exactly one index.
func unique[I Idx](info *MoleculeInfo, id ID[I]) (I, error) {
	idxs, err := id.Map(info)
	if err != nil {
		return 0, errDecorate(err, "unique")
	}
	if len(idxs) > 1 {
		var z I
		return 0, duplicateErr(z.kind(), "unique", "%d %ss match %s", len(idxs), z.kind(), id)
	}
	return idxs[0], nil
}

//uniqueWithin resolves id to exactly one index among those for which allowed returns true.
func uniqueWithin[I Idx](info *MoleculeInfo, id ID[I], allowed func(I) bool) (I, error) {
	var z I
	idxs, err := id.Map(info)
	if err != nil {
		return 0, errDecorate(err, "uniqueWithin")
	}
	ret := make([]I, 0, 1)
	for _, v := range idxs {
		if allowed(v) {
			ret = append(ret, v)
		}
	}
	switch len(ret) {
	case 0:
		return 0, missingErr(z.kind(), "uniqueWithin", "no %s in this view matches %s", z.kind(), id)
	case 1:
		return ret[0], nil
	}
	return 0, duplicateErr(z.kind(), "uniqueWithin", "%d %ss in this view match %s", len(ret), z.kind(), id)
}
