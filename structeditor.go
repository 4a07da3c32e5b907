/*
 * structeditor.go, part of gosire.
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
	"slices"
)

//StructureEditor stages structural changes to a molecule. Entities are addressed by UID,
//which stays valid through any number of edits, while indexes are recomputed after each change.
//Copies of a StructureEditor, and all the typed editors obtained from it, share the same
//working data, so they all see each other's changes. Commit produces a new MoleculeData
//and leaves the editor usable. A StructureEditor must not be used from several goroutines at once.
type StructureEditor struct {
	d *editMolData
}

//NewStructureEditor starts an editing session on a copy of d.
func NewStructureEditor(d *MoleculeData) StructureEditor {
	return StructureEditor{d: editDataFrom(d)}
}

//newEmptyEditor starts an editing session for a new, empty molecule.
func newEmptyEditor(name MolName) StructureEditor {
	return StructureEditor{d: newEditMolData(NewMolNum(), name)}
}

func (e StructureEditor) MolNum() MolNum   { return e.d.number }
func (e StructureEditor) MolName() MolName { return e.d.name }
func (e StructureEditor) NAtoms() int      { return len(e.d.atomsByIndex) }
func (e StructureEditor) NCutGroups() int  { return len(e.d.cgsByIndex) }
func (e StructureEditor) NResidues() int   { return len(e.d.resByIndex) }
func (e StructureEditor) NChains() int     { return len(e.d.chainsByIndex) }
func (e StructureEditor) NSegments() int   { return len(e.d.segsByIndex) }

//Info returns the current layout of the molecule being edited. Atoms are not required to be in a CutGroup.
func (e StructureEditor) Info() *MoleculeInfo { return e.d.info() }

func uidFor[I Idx](e StructureEditor, id ID[I], byIndex []UID, caller string) (UID, error) {
	i, err := unique(e.d.info(), id)
	if err != nil {
		return UID{}, errDecorate(err, caller)
	}
	return byIndex[i], nil
}

//AtomUID returns the UID of the only atom that matches id.
func (e StructureEditor) AtomUID(id AtomID) (UID, error) {
	return uidFor(e, id, e.d.atomsByIndex, "AtomUID")
}

//CGUID returns the UID of the only CutGroup that matches id.
func (e StructureEditor) CGUID(id CGID) (UID, error) {
	return uidFor(e, id, e.d.cgsByIndex, "CGUID")
}

//ResUID returns the UID of the only residue that matches id.
func (e StructureEditor) ResUID(id ResID) (UID, error) {
	return uidFor(e, id, e.d.resByIndex, "ResUID")
}

//ChainUID returns the UID of the only chain that matches id.
func (e StructureEditor) ChainUID(id ChainID) (UID, error) {
	return uidFor(e, id, e.d.chainsByIndex, "ChainUID")
}

//SegUID returns the UID of the only segment that matches id.
func (e StructureEditor) SegUID(id SegID) (UID, error) {
	return uidFor(e, id, e.d.segsByIndex, "SegUID")
}

func indexFor(byIndex []UID, u UID, entity, caller string) (int, error) {
	i := slices.Index(byIndex, u)
	if i < 0 {
		return -1, missingErr(entity, caller, "there is no %s with UID %s", entity, u)
	}
	return i, nil
}

//AtomIdx returns the current index of the atom with UID u. It fails with
//a Missing error if the atom has been removed.
func (e StructureEditor) AtomIdx(u UID) (AtomIdx, error) {
	i, err := indexFor(e.d.atomsByIndex, u, "atom", "AtomIdx")
	return AtomIdx(i), err
}

func (e StructureEditor) CGIdx(u UID) (CGIdx, error) {
	i, err := indexFor(e.d.cgsByIndex, u, "CutGroup", "CGIdx")
	return CGIdx(i), err
}

func (e StructureEditor) ResIdx(u UID) (ResIdx, error) {
	i, err := indexFor(e.d.resByIndex, u, "residue", "ResIdx")
	return ResIdx(i), err
}

func (e StructureEditor) ChainIdx(u UID) (ChainIdx, error) {
	i, err := indexFor(e.d.chainsByIndex, u, "chain", "ChainIdx")
	return ChainIdx(i), err
}

func (e StructureEditor) SegIdx(u UID) (SegIdx, error) {
	i, err := indexFor(e.d.segsByIndex, u, "segment", "SegIdx")
	return SegIdx(i), err
}

//HasAtom is the non-failing counterpart of AtomIdx.
func (e StructureEditor) HasAtom(u UID) bool {
	_, ok := e.d.atoms[u]
	return ok
}

func (e StructureEditor) atom(u UID, caller string) (*editAtom, error) {
	a, ok := e.d.atoms[u]
	if !ok {
		return nil, missingErr("atom", caller, "there is no atom with UID %s", u)
	}
	return a, nil
}

func (e StructureEditor) cg(u UID, caller string) (*editCG, error) {
	c, ok := e.d.cgs[u]
	if !ok {
		return nil, missingErr("CutGroup", caller, "there is no CutGroup with UID %s", u)
	}
	return c, nil
}

func (e StructureEditor) residue(u UID, caller string) (*editRes, error) {
	r, ok := e.d.res[u]
	if !ok {
		return nil, missingErr("residue", caller, "there is no residue with UID %s", u)
	}
	return r, nil
}

func (e StructureEditor) chain(u UID, caller string) (*editChain, error) {
	c, ok := e.d.chains[u]
	if !ok {
		return nil, missingErr("chain", caller, "there is no chain with UID %s", u)
	}
	return c, nil
}

func (e StructureEditor) segment(u UID, caller string) (*editSeg, error) {
	s, ok := e.d.segs[u]
	if !ok {
		return nil, missingErr("segment", caller, "there is no segment with UID %s", u)
	}
	return s, nil
}

//Names and numbers.

func (e StructureEditor) AtomName(u UID) (AtomName, error) {
	a, err := e.atom(u, "AtomName")
	if err != nil {
		return "", err
	}
	return a.name, nil
}

func (e StructureEditor) AtomNum(u UID) (AtomNum, error) {
	a, err := e.atom(u, "AtomNum")
	if err != nil {
		return 0, err
	}
	return a.num, nil
}

func (e StructureEditor) CGName(u UID) (CGName, error) {
	c, err := e.cg(u, "CGName")
	if err != nil {
		return "", err
	}
	return c.name, nil
}

func (e StructureEditor) ResName(u UID) (ResName, error) {
	r, err := e.residue(u, "ResName")
	if err != nil {
		return "", err
	}
	return r.name, nil
}

func (e StructureEditor) ResNum(u UID) (ResNum, error) {
	r, err := e.residue(u, "ResNum")
	if err != nil {
		return 0, err
	}
	return r.num, nil
}

func (e StructureEditor) ChainName(u UID) (ChainName, error) {
	c, err := e.chain(u, "ChainName")
	if err != nil {
		return "", err
	}
	return c.name, nil
}

func (e StructureEditor) SegName(u UID) (SegName, error) {
	s, err := e.segment(u, "SegName")
	if err != nil {
		return "", err
	}
	return s.name, nil
}

//Renaming and renumbering have no structural consequences.

func (e StructureEditor) RenameMolecule(name MolName) { e.d.name = name }

func (e StructureEditor) RenameAtom(u UID, name AtomName) error {
	a, err := e.atom(u, "RenameAtom")
	if err != nil {
		return err
	}
	a.name = name
	e.d.touch()
	return nil
}

func (e StructureEditor) RenumberAtom(u UID, num AtomNum) error {
	a, err := e.atom(u, "RenumberAtom")
	if err != nil {
		return err
	}
	a.num = num
	e.d.touch()
	return nil
}

func (e StructureEditor) RenameCutGroup(u UID, name CGName) error {
	c, err := e.cg(u, "RenameCutGroup")
	if err != nil {
		return err
	}
	c.name = name
	e.d.touch()
	return nil
}

func (e StructureEditor) RenameResidue(u UID, name ResName) error {
	r, err := e.residue(u, "RenameResidue")
	if err != nil {
		return err
	}
	r.name = name
	e.d.touch()
	return nil
}

func (e StructureEditor) RenumberResidue(u UID, num ResNum) error {
	r, err := e.residue(u, "RenumberResidue")
	if err != nil {
		return err
	}
	r.num = num
	e.d.touch()
	return nil
}

func (e StructureEditor) RenameChain(u UID, name ChainName) error {
	c, err := e.chain(u, "RenameChain")
	if err != nil {
		return err
	}
	c.name = name
	e.d.touch()
	return nil
}

func (e StructureEditor) RenameSegment(u UID, name SegName) error {
	s, err := e.segment(u, "RenameSegment")
	if err != nil {
		return err
	}
	s.name = name
	e.d.touch()
	return nil
}

//Reindexing moves an entity to a new position. Negative positions count from the end, and
//positions out of range are clamped (to the first or the last position), never an error.

func (e StructureEditor) ReindexAtom(u UID, i AtomIdx) error {
	if _, err := e.atom(u, "ReindexAtom"); err != nil {
		return err
	}
	e.d.atomsByIndex = reindex(e.d.atomsByIndex, u, int(i))
	e.d.touch()
	return nil
}

func (e StructureEditor) ReindexCutGroup(u UID, i CGIdx) error {
	if _, err := e.cg(u, "ReindexCutGroup"); err != nil {
		return err
	}
	e.d.cgsByIndex = reindex(e.d.cgsByIndex, u, int(i))
	e.d.touch()
	return nil
}

func (e StructureEditor) ReindexResidue(u UID, i ResIdx) error {
	if _, err := e.residue(u, "ReindexResidue"); err != nil {
		return err
	}
	e.d.resByIndex = reindex(e.d.resByIndex, u, int(i))
	e.d.touch()
	return nil
}

func (e StructureEditor) ReindexChain(u UID, i ChainIdx) error {
	if _, err := e.chain(u, "ReindexChain"); err != nil {
		return err
	}
	e.d.chainsByIndex = reindex(e.d.chainsByIndex, u, int(i))
	e.d.touch()
	return nil
}

func (e StructureEditor) ReindexSegment(u UID, i SegIdx) error {
	if _, err := e.segment(u, "ReindexSegment"); err != nil {
		return err
	}
	e.d.segsByIndex = reindex(e.d.segsByIndex, u, int(i))
	e.d.touch()
	return nil
}

//Removing a container leaves its children without a parent. They are not moved anywhere else.

func (e StructureEditor) RemoveAtom(u UID) error {
	if _, err := e.atom(u, "RemoveAtom"); err != nil {
		return err
	}
	delete(e.d.atoms, u)
	e.d.atomsByIndex = removeUID(e.d.atomsByIndex, u)
	e.d.touch()
	return nil
}

func (e StructureEditor) RemoveCutGroup(u UID) error {
	if _, err := e.cg(u, "RemoveCutGroup"); err != nil {
		return err
	}
	delete(e.d.cgs, u)
	e.d.cgsByIndex = removeUID(e.d.cgsByIndex, u)
	for _, a := range e.d.atoms {
		if a.cg == u {
			a.cg = UID{}
		}
	}
	e.d.touch()
	return nil
}

func (e StructureEditor) RemoveResidue(u UID) error {
	if _, err := e.residue(u, "RemoveResidue"); err != nil {
		return err
	}
	delete(e.d.res, u)
	e.d.resByIndex = removeUID(e.d.resByIndex, u)
	for _, a := range e.d.atoms {
		if a.res == u {
			a.res = UID{}
		}
	}
	e.d.touch()
	return nil
}

func (e StructureEditor) RemoveChain(u UID) error {
	if _, err := e.chain(u, "RemoveChain"); err != nil {
		return err
	}
	delete(e.d.chains, u)
	e.d.chainsByIndex = removeUID(e.d.chainsByIndex, u)
	for _, r := range e.d.res {
		if r.chain == u {
			r.chain = UID{}
		}
	}
	e.d.touch()
	return nil
}

func (e StructureEditor) RemoveSegment(u UID) error {
	if _, err := e.segment(u, "RemoveSegment"); err != nil {
		return err
	}
	delete(e.d.segs, u)
	e.d.segsByIndex = removeUID(e.d.segsByIndex, u)
	for _, a := range e.d.atoms {
		if a.seg == u {
			a.seg = UID{}
		}
	}
	e.d.touch()
	return nil
}

//Reparenting only changes the parent of the entity; its own position doesn't change.

//SetAtomResidue puts the atom with UID u in the residue with UID res.
func (e StructureEditor) SetAtomResidue(u, res UID) error {
	a, err := e.atom(u, "SetAtomResidue")
	if err != nil {
		return err
	}
	if _, err := e.residue(res, "SetAtomResidue"); err != nil {
		return err
	}
	a.res = res
	e.d.touch()
	return nil
}

//SetAtomCutGroup puts the atom with UID u in the CutGroup with UID cg.
func (e StructureEditor) SetAtomCutGroup(u, cg UID) error {
	a, err := e.atom(u, "SetAtomCutGroup")
	if err != nil {
		return err
	}
	if _, err := e.cg(cg, "SetAtomCutGroup"); err != nil {
		return err
	}
	a.cg = cg
	e.d.touch()
	return nil
}

//SetAtomSegment puts the atom with UID u in the segment with UID seg.
func (e StructureEditor) SetAtomSegment(u, seg UID) error {
	a, err := e.atom(u, "SetAtomSegment")
	if err != nil {
		return err
	}
	if _, err := e.segment(seg, "SetAtomSegment"); err != nil {
		return err
	}
	a.seg = seg
	e.d.touch()
	return nil
}

//SetResidueChain puts the residue with UID u in the chain with UID chain.
func (e StructureEditor) SetResidueChain(u, chain UID) error {
	r, err := e.residue(u, "SetResidueChain")
	if err != nil {
		return err
	}
	if _, err := e.chain(chain, "SetResidueChain"); err != nil {
		return err
	}
	r.chain = chain
	e.d.touch()
	return nil
}

//ReparentAtomToResidue puts the atom with UID u in the only residue matching res.
func (e StructureEditor) ReparentAtomToResidue(u UID, res ResID) error {
	p, err := e.ResUID(res)
	if err != nil {
		return errDecorate(err, "ReparentAtomToResidue")
	}
	return errDecorate(e.SetAtomResidue(u, p), "ReparentAtomToResidue")
}

//ReparentAtomToCutGroup puts the atom with UID u in the only CutGroup matching cg.
func (e StructureEditor) ReparentAtomToCutGroup(u UID, cg CGID) error {
	p, err := e.CGUID(cg)
	if err != nil {
		return errDecorate(err, "ReparentAtomToCutGroup")
	}
	return errDecorate(e.SetAtomCutGroup(u, p), "ReparentAtomToCutGroup")
}

//ReparentAtomToSegment puts the atom with UID u in the only segment matching seg.
func (e StructureEditor) ReparentAtomToSegment(u UID, seg SegID) error {
	p, err := e.SegUID(seg)
	if err != nil {
		return errDecorate(err, "ReparentAtomToSegment")
	}
	return errDecorate(e.SetAtomSegment(u, p), "ReparentAtomToSegment")
}

//ReparentResidue puts the residue with UID u in the only chain matching chain.
func (e StructureEditor) ReparentResidue(u UID, chain ChainID) error {
	p, err := e.ChainUID(chain)
	if err != nil {
		return errDecorate(err, "ReparentResidue")
	}
	return errDecorate(e.SetResidueChain(u, p), "ReparentResidue")
}

//DetachAtomFromResidue leaves the atom with UID u without a residue.
func (e StructureEditor) DetachAtomFromResidue(u UID) error {
	a, err := e.atom(u, "DetachAtomFromResidue")
	if err != nil {
		return err
	}
	a.res = UID{}
	e.d.touch()
	return nil
}

//DetachAtomFromSegment leaves the atom with UID u without a segment.
func (e StructureEditor) DetachAtomFromSegment(u UID) error {
	a, err := e.atom(u, "DetachAtomFromSegment")
	if err != nil {
		return err
	}
	a.seg = UID{}
	e.d.touch()
	return nil
}

//DetachResidueFromChain leaves the residue with UID u without a chain.
func (e StructureEditor) DetachResidueFromChain(u UID) error {
	r, err := e.residue(u, "DetachResidueFromChain")
	if err != nil {
		return err
	}
	r.chain = UID{}
	e.d.touch()
	return nil
}

//Parent lookups fail with a Missing error when there is no parent, either because there never
//was one or because it was removed.

func (e StructureEditor) ResidueParentOfAtom(u UID) (UID, error) {
	a, err := e.atom(u, "ResidueParentOfAtom")
	if err != nil {
		return UID{}, err
	}
	if _, ok := e.d.res[a.res]; !ok {
		return UID{}, missingErr("residue", "ResidueParentOfAtom", "atom %s (%s) is not in a residue", a.name, u)
	}
	return a.res, nil
}

func (e StructureEditor) CutGroupParentOfAtom(u UID) (UID, error) {
	a, err := e.atom(u, "CutGroupParentOfAtom")
	if err != nil {
		return UID{}, err
	}
	if _, ok := e.d.cgs[a.cg]; !ok {
		return UID{}, missingErr("CutGroup", "CutGroupParentOfAtom", "atom %s (%s) is not in a CutGroup", a.name, u)
	}
	return a.cg, nil
}

func (e StructureEditor) SegmentParentOfAtom(u UID) (UID, error) {
	a, err := e.atom(u, "SegmentParentOfAtom")
	if err != nil {
		return UID{}, err
	}
	if _, ok := e.d.segs[a.seg]; !ok {
		return UID{}, missingErr("segment", "SegmentParentOfAtom", "atom %s (%s) is not in a segment", a.name, u)
	}
	return a.seg, nil
}

func (e StructureEditor) ChainParentOfResidue(u UID) (UID, error) {
	r, err := e.residue(u, "ChainParentOfResidue")
	if err != nil {
		return UID{}, err
	}
	if _, ok := e.d.chains[r.chain]; !ok {
		return UID{}, missingErr("chain", "ChainParentOfResidue", "residue %s (%s) is not in a chain", r.name, u)
	}
	return r.chain, nil
}

//AtomsInResidue returns the UIDs of the atoms of residue u, in position order.
func (e StructureEditor) AtomsInResidue(u UID) ([]UID, error) {
	if _, err := e.residue(u, "AtomsInResidue"); err != nil {
		return nil, err
	}
	return e.atomsWhere(func(a *editAtom) bool { return a.res == u }), nil
}

//AtomsInCutGroup returns the UIDs of the atoms of CutGroup u, in position order.
func (e StructureEditor) AtomsInCutGroup(u UID) ([]UID, error) {
	if _, err := e.cg(u, "AtomsInCutGroup"); err != nil {
		return nil, err
	}
	return e.atomsWhere(func(a *editAtom) bool { return a.cg == u }), nil
}

//AtomsInSegment returns the UIDs of the atoms of segment u, in position order.
func (e StructureEditor) AtomsInSegment(u UID) ([]UID, error) {
	if _, err := e.segment(u, "AtomsInSegment"); err != nil {
		return nil, err
	}
	return e.atomsWhere(func(a *editAtom) bool { return a.seg == u }), nil
}

//ResiduesInChain returns the UIDs of the residues of chain u, in position order.
func (e StructureEditor) ResiduesInChain(u UID) ([]UID, error) {
	if _, err := e.chain(u, "ResiduesInChain"); err != nil {
		return nil, err
	}
	ret := make([]UID, 0)
	for _, r := range e.d.resByIndex {
		if e.d.res[r].chain == u {
			ret = append(ret, r)
		}
	}
	return ret, nil
}

func (e StructureEditor) atomsWhere(f func(*editAtom) bool) []UID {
	ret := make([]UID, 0)
	for _, u := range e.d.atomsByIndex {
		if f(e.d.atoms[u]) {
			ret = append(ret, u)
		}
	}
	return ret
}

//New entities are appended at the end, with no name and no parents.

func (e StructureEditor) AddAtom() UID {
	u := newUID()
	e.d.atoms[u] = &editAtom{props: make(map[string]any)}
	e.d.atomsByIndex = append(e.d.atomsByIndex, u)
	e.d.touch()
	return u
}

func (e StructureEditor) AddCutGroup() UID {
	u := newUID()
	e.d.cgs[u] = &editCG{}
	e.d.cgsByIndex = append(e.d.cgsByIndex, u)
	e.d.touch()
	return u
}

func (e StructureEditor) AddResidue() UID {
	u := newUID()
	e.d.res[u] = &editRes{}
	e.d.resByIndex = append(e.d.resByIndex, u)
	e.d.touch()
	return u
}

func (e StructureEditor) AddChain() UID {
	u := newUID()
	e.d.chains[u] = &editChain{}
	e.d.chainsByIndex = append(e.d.chainsByIndex, u)
	e.d.touch()
	return u
}

func (e StructureEditor) AddSegment() UID {
	u := newUID()
	e.d.segs[u] = &editSeg{}
	e.d.segsByIndex = append(e.d.segsByIndex, u)
	e.d.touch()
	return u
}

//SetAtomProperty sets the value of the per-atom property key for the atom with UID u.
//If no atom has the property yet, the kind of property is chosen from the type of v, and
//the other atoms get the zero value.
func (e StructureEditor) SetAtomProperty(u UID, key string, v any) error {
	a, err := e.atom(u, "SetAtomProperty")
	if err != nil {
		return err
	}
	tmpl, ok := e.d.atomProps[key]
	if !ok {
		if e.d.props.HasProperty(key) {
			return incompatibleErr("SetAtomProperty", "%q is a molecule property, not a per-atom one", key)
		}
		tmpl, err = templateFor(key, v)
		if err != nil {
			return err
		}
		e.d.atomProps[key] = tmpl
	}
	if _, err := tmpl.rebuild([]any{v}); err != nil {
		return errDecorate(err, "SetAtomProperty")
	}
	a.props[key] = v
	return nil
}

//AtomProperty returns the value of the per-atom property key for the atom with UID u.
//Atoms added during the session have the zero value until they are given one.
func (e StructureEditor) AtomProperty(u UID, key string) (any, error) {
	a, err := e.atom(u, "AtomProperty")
	if err != nil {
		return nil, err
	}
	tmpl, ok := e.d.atomProps[key]
	if !ok {
		return nil, propertyErr("AtomProperty", key)
	}
	if v, ok := a.props[key]; ok && v != nil {
		return v, nil
	}
	p, err := tmpl.rebuild([]any{nil})
	if err != nil {
		return nil, errDecorate(err, "AtomProperty")
	}
	return p.AtomValue(0), nil
}

//SetProperty sets a molecule property. A per-atom property must have one value per atom, and
//its values are handed to the atoms in their current order.
func (e StructureEditor) SetProperty(key string, v any) error {
	if p, ok := v.(AtomProperty); ok {
		if p.NAtoms() != len(e.d.atomsByIndex) {
			return incompatibleErr("SetProperty", "property %q has %d values, the molecule has %d atoms", key, p.NAtoms(), len(e.d.atomsByIndex))
		}
		e.d.props = e.d.props.Without(key)
		e.d.atomProps[key] = p
		for i, u := range e.d.atomsByIndex {
			e.d.atoms[u].props[key] = p.AtomValue(i)
		}
		return nil
	}
	if _, ok := e.d.atomProps[key]; ok {
		e.removeAtomProperty(key)
	}
	e.d.props = e.d.props.With(key, v)
	return nil
}

//RemoveProperty removes a molecule or per-atom property.
func (e StructureEditor) RemoveProperty(key string) error {
	if _, ok := e.d.atomProps[key]; ok {
		e.removeAtomProperty(key)
		return nil
	}
	if !e.d.props.HasProperty(key) {
		return propertyErr("RemoveProperty", key)
	}
	e.d.props = e.d.props.Without(key)
	return nil
}

func (e StructureEditor) removeAtomProperty(key string) {
	delete(e.d.atomProps, key)
	for _, a := range e.d.atoms {
		delete(a.props, key)
	}
}

//Property returns a molecule property. Per-atom properties are returned as they would
//be after a commit.
func (e StructureEditor) Property(key string) (any, error) {
	if tmpl, ok := e.d.atomProps[key]; ok {
		vals := make([]any, len(e.d.atomsByIndex))
		for i, u := range e.d.atomsByIndex {
			vals[i] = e.d.atoms[u].props[key]
		}
		p, err := tmpl.rebuild(vals)
		return p, errDecorate(err, "Property")
	}
	p, err := e.d.props.Property(key)
	return p, errDecorate(err, "Property")
}

//Commit builds a new version of the molecule with a new major version number. Every atom
//must be in a CutGroup. The editor stays usable after committing.
func (e StructureEditor) Commit() (*MoleculeData, error) {
	d, err := e.d.commit()
	return d, errDecorate(err, "Commit")
}

func (e StructureEditor) String() string {
	return fmt.Sprintf("StructureEditor(%d '%s', %d atoms, %d residues, %d chains, %d segments, %d CutGroups)",
		e.d.number, e.d.name, e.NAtoms(), e.NResidues(), e.NChains(), e.NSegments(), e.NCutGroups())
}
