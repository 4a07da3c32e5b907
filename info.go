/*
 * info.go, part of gosire.
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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

type atomInfo struct {
	name AtomName
	num  AtomNum
	cg   CGIdx
	res  ResIdx
	seg  SegIdx
}

type cgInfo struct {
	name  CGName
	atoms []AtomIdx
}

type resInfo struct {
	name  ResName
	num   ResNum
	chain ChainIdx
	atoms []AtomIdx
}

type chainInfo struct {
	name     ChainName
	residues []ResIdx
}

type segInfo struct {
	name  SegName
	atoms []AtomIdx
}

//MoleculeInfo is the read-only layout of one version of a molecule: which atoms there are,
//how they are grouped into CutGroups, residues and segments, and how residues are grouped into chains.
//A negative parent index means "no parent". It is never modified after construction, so it can be
//shared freely, also between goroutines.
type MoleculeInfo struct {
	atoms    []atomInfo
	cgs      []cgInfo
	residues []resInfo
	chains   []chainInfo
	segs     []segInfo

	atomsByName  map[AtomName][]AtomIdx
	atomsByNum   map[AtomNum][]AtomIdx
	cgsByName    map[CGName][]CGIdx
	resByName    map[ResName][]ResIdx
	resByNum     map[ResNum][]ResIdx
	chainsByName map[ChainName][]ChainIdx
	segsByName   map[SegName][]SegIdx

	fingerprint uint64
}

//newMoleculeInfo assembles a MoleculeInfo. The children lists of cgs, residues, chains and segs are filled here
//from the parent indexes of atoms and residues, in index order. If strict is true, every atom must be
//in a CutGroup. Out of range parents are program bugs.
func newMoleculeInfo(atoms []atomInfo, cgs []CGName, residues []resInfo, chains []ChainName, segs []SegName, strict bool) (*MoleculeInfo, error) {
	info := &MoleculeInfo{
		atoms:        atoms,
		cgs:          make([]cgInfo, len(cgs)),
		residues:     residues,
		chains:       make([]chainInfo, len(chains)),
		segs:         make([]segInfo, len(segs)),
		atomsByName:  make(map[AtomName][]AtomIdx),
		atomsByNum:   make(map[AtomNum][]AtomIdx),
		cgsByName:    make(map[CGName][]CGIdx),
		resByName:    make(map[ResName][]ResIdx),
		resByNum:     make(map[ResNum][]ResIdx),
		chainsByName: make(map[ChainName][]ChainIdx),
		segsByName:   make(map[SegName][]SegIdx),
	}
	for i, v := range cgs {
		info.cgs[i].name = v
		info.cgsByName[v] = append(info.cgsByName[v], CGIdx(i))
	}
	for i, v := range chains {
		info.chains[i].name = v
		info.chainsByName[v] = append(info.chainsByName[v], ChainIdx(i))
	}
	for i, v := range segs {
		info.segs[i].name = v
		info.segsByName[v] = append(info.segsByName[v], SegIdx(i))
	}
	for i := range info.residues {
		r := &info.residues[i]
		r.atoms = nil
		info.resByName[r.name] = append(info.resByName[r.name], ResIdx(i))
		info.resByNum[r.num] = append(info.resByNum[r.num], ResIdx(i))
		if r.chain >= 0 {
			if int(r.chain) >= len(info.chains) {
				bug("newMoleculeInfo", "residue %d is in chain %d, but there are %d chains", i, r.chain, len(info.chains))
			}
			info.chains[r.chain].residues = append(info.chains[r.chain].residues, ResIdx(i))
		}
	}
	for i, a := range info.atoms {
		idx := AtomIdx(i)
		info.atomsByName[a.name] = append(info.atomsByName[a.name], idx)
		info.atomsByNum[a.num] = append(info.atomsByNum[a.num], idx)
		if a.cg >= 0 {
			if int(a.cg) >= len(info.cgs) {
				bug("newMoleculeInfo", "atom %d is in CutGroup %d, but there are %d CutGroups", i, a.cg, len(info.cgs))
			}
			info.cgs[a.cg].atoms = append(info.cgs[a.cg].atoms, idx)
		} else if strict {
			return nil, incompatibleErr("newMoleculeInfo", "atom %d (%s) is not in any CutGroup", i, a.name)
		}
		if a.res >= 0 {
			if int(a.res) >= len(info.residues) {
				bug("newMoleculeInfo", "atom %d is in residue %d, but there are %d residues", i, a.res, len(info.residues))
			}
			info.residues[a.res].atoms = append(info.residues[a.res].atoms, idx)
		}
		if a.seg >= 0 {
			if int(a.seg) >= len(info.segs) {
				bug("newMoleculeInfo", "atom %d is in segment %d, but there are %d segments", i, a.seg, len(info.segs))
			}
			info.segs[a.seg].atoms = append(info.segs[a.seg].atoms, idx)
		}
	}
	info.fingerprint = info.layoutHash()
	return info, nil
}

//layoutHash hashes the number of atoms and the sizes of the CutGroups.
func (info *MoleculeInfo) layoutHash() uint64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(info.atoms)))
	h.Write(buf[:])
	for _, cg := range info.cgs {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(cg.atoms)))
		h.Write(buf[:])
	}
	return h.Sum64()
}

//Fingerprint returns a hash of the atom layout (number of atoms and CutGroup sizes).
func (info *MoleculeInfo) Fingerprint() uint64 { return info.fingerprint }

//IsCompatibleWith returns true if atom selections made on info can be used on other.
func (info *MoleculeInfo) IsCompatibleWith(other *MoleculeInfo) bool {
	if info == other {
		return true
	}
	if info == nil || other == nil {
		return false
	}
	return len(info.atoms) == len(other.atoms) && info.fingerprint == other.fingerprint
}

func (info *MoleculeInfo) NAtoms() int {
	if info == nil {
		return 0
	}
	return len(info.atoms)
}

func (info *MoleculeInfo) NCutGroups() int {
	if info == nil {
		return 0
	}
	return len(info.cgs)
}

func (info *MoleculeInfo) NResidues() int {
	if info == nil {
		return 0
	}
	return len(info.residues)
}

func (info *MoleculeInfo) NChains() int {
	if info == nil {
		return 0
	}
	return len(info.chains)
}

func (info *MoleculeInfo) NSegments() int {
	if info == nil {
		return 0
	}
	return len(info.segs)
}

//The following accessors panic if the index is out of range, as a slice would.
//Use the Map method of the index (or a view) to validate indexes first.

func (info *MoleculeInfo) AtomName(i AtomIdx) AtomName    { return info.atoms[i].name }
func (info *MoleculeInfo) AtomNum(i AtomIdx) AtomNum      { return info.atoms[i].num }
func (info *MoleculeInfo) CGName(i CGIdx) CGName          { return info.cgs[i].name }
func (info *MoleculeInfo) ResName(i ResIdx) ResName       { return info.residues[i].name }
func (info *MoleculeInfo) ResNum(i ResIdx) ResNum         { return info.residues[i].num }
func (info *MoleculeInfo) ChainName(i ChainIdx) ChainName { return info.chains[i].name }
func (info *MoleculeInfo) SegName(i SegIdx) SegName       { return info.segs[i].name }

func (info *MoleculeInfo) residueOf(i AtomIdx) (ResIdx, bool) {
	r := info.atoms[i].res
	return r, r >= 0
}

func (info *MoleculeInfo) chainOf(r ResIdx) (ChainIdx, bool) {
	c := info.residues[r].chain
	return c, c >= 0
}

//IsWithinResidue returns true if atom i belongs to a residue.
func (info *MoleculeInfo) IsWithinResidue(i AtomIdx) bool {
	_, ok := info.residueOf(i)
	return ok
}

//IsWithinSegment returns true if atom i belongs to a segment.
func (info *MoleculeInfo) IsWithinSegment(i AtomIdx) bool {
	return info.atoms[i].seg >= 0
}

//IsWithinChain returns true if residue r belongs to a chain.
func (info *MoleculeInfo) IsWithinChain(r ResIdx) bool {
	_, ok := info.chainOf(r)
	return ok
}

//IsAtomWithinChain returns true if atom i belongs to a residue that belongs to a chain.
func (info *MoleculeInfo) IsAtomWithinChain(i AtomIdx) bool {
	r, ok := info.residueOf(i)
	return ok && info.IsWithinChain(r)
}

//ParentResidue returns the residue atom i belongs to. Fails with a Missing error if there is none.
func (info *MoleculeInfo) ParentResidue(i AtomIdx) (ResIdx, error) {
	r, ok := info.residueOf(i)
	if !ok {
		return -1, missingErr("residue", "ParentResidue", "atom %d (%s) is not in a residue", i, info.atoms[i].name)
	}
	return r, nil
}

//ParentCutGroup returns the CutGroup atom i belongs to.
func (info *MoleculeInfo) ParentCutGroup(i AtomIdx) (CGIdx, error) {
	c := info.atoms[i].cg
	if c < 0 {
		return -1, missingErr("CutGroup", "ParentCutGroup", "atom %d (%s) is not in a CutGroup", i, info.atoms[i].name)
	}
	return c, nil
}

//ParentSegment returns the segment atom i belongs to.
func (info *MoleculeInfo) ParentSegment(i AtomIdx) (SegIdx, error) {
	s := info.atoms[i].seg
	if s < 0 {
		return -1, missingErr("segment", "ParentSegment", "atom %d (%s) is not in a segment", i, info.atoms[i].name)
	}
	return s, nil
}

//ParentChain returns the chain residue r belongs to.
func (info *MoleculeInfo) ParentChain(r ResIdx) (ChainIdx, error) {
	c, ok := info.chainOf(r)
	if !ok {
		return -1, missingErr("chain", "ParentChain", "residue %d (%s) is not in a chain", r, info.residues[r].name)
	}
	return c, nil
}

//AtomParentChain returns the chain of the residue of atom i.
func (info *MoleculeInfo) AtomParentChain(i AtomIdx) (ChainIdx, error) {
	r, err := info.ParentResidue(i)
	if err != nil {
		return -1, errDecorate(err, "AtomParentChain")
	}
	c, err := info.ParentChain(r)
	return c, errDecorate(err, "AtomParentChain")
}

//The children lists returned are copies.

func (info *MoleculeInfo) AtomsInCutGroup(i CGIdx) []AtomIdx {
	return append([]AtomIdx(nil), info.cgs[i].atoms...)
}

func (info *MoleculeInfo) AtomsInResidue(i ResIdx) []AtomIdx {
	return append([]AtomIdx(nil), info.residues[i].atoms...)
}

func (info *MoleculeInfo) AtomsInSegment(i SegIdx) []AtomIdx {
	return append([]AtomIdx(nil), info.segs[i].atoms...)
}

func (info *MoleculeInfo) ResiduesInChain(i ChainIdx) []ResIdx {
	return append([]ResIdx(nil), info.chains[i].residues...)
}

//AtomsInChain returns the atoms of all the residues in chain i, in residue order.
func (info *MoleculeInfo) AtomsInChain(i ChainIdx) []AtomIdx {
	ret := make([]AtomIdx, 0)
	for _, r := range info.chains[i].residues {
		ret = append(ret, info.residues[r].atoms...)
	}
	return ret
}

//NAtomsIn* return the sizes without copying.

func (info *MoleculeInfo) NAtomsInCutGroup(i CGIdx) int    { return len(info.cgs[i].atoms) }
func (info *MoleculeInfo) NAtomsInResidue(i ResIdx) int    { return len(info.residues[i].atoms) }
func (info *MoleculeInfo) NAtomsInSegment(i SegIdx) int    { return len(info.segs[i].atoms) }
func (info *MoleculeInfo) NResiduesInChain(i ChainIdx) int { return len(info.chains[i].residues) }

//AtomIdx resolves id to exactly one atom.
func (info *MoleculeInfo) AtomIdx(id AtomID) (AtomIdx, error) { return unique(info, id) }

//CGIdx resolves id to exactly one CutGroup.
func (info *MoleculeInfo) CGIdx(id CGID) (CGIdx, error) { return unique(info, id) }

//ResIdx resolves id to exactly one residue.
func (info *MoleculeInfo) ResIdx(id ResID) (ResIdx, error) { return unique(info, id) }

//ChainIdx resolves id to exactly one chain.
func (info *MoleculeInfo) ChainIdx(id ChainID) (ChainIdx, error) { return unique(info, id) }

//SegIdx resolves id to exactly one segment.
func (info *MoleculeInfo) SegIdx(id SegID) (SegIdx, error) { return unique(info, id) }
