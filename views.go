/*
 * views.go, part of gosire.
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

//MoleculeView is a read-only lens onto part of one version of a molecule. The set of
//views is closed: Atom, CutGroup, Residue, Chain, Segment, Molecule, PartialMolecule,
//Selector and ViewsOfMol. Views never change; moving or editing them produces new data.
type MoleculeView interface {
	Data() *MoleculeData
	SelectedAtoms() AtomSelection
	MolNum() MolNum
	Version() Version
	isMoleculeView()
}

//molRef is the shared part of every view.
type molRef struct {
	d *MoleculeData
}

func (m molRef) Data() *MoleculeData { return m.d }
func (m molRef) MolNum() MolNum      { return m.d.number }
func (m molRef) Version() Version    { return m.d.version }
func (molRef) isMoleculeView()       {}

func (m molRef) info() *MoleculeInfo { return m.d.info }

func atomSelector(d *MoleculeData, atoms []AtomIdx) Selector[AtomIdx] {
	s, err := NewSelector(d, atoms...)
	if err != nil {
		bug("atomSelector", "indexes from the molecule layout are not valid: %v", err)
	}
	return s
}

func selectionOf(info *MoleculeInfo, atoms []AtomIdx) AtomSelection {
	s, err := SelectAtoms(info, atoms)
	if err != nil {
		bug("selectionOf", "indexes from the molecule layout are not valid: %v", err)
	}
	return s
}

//Atom is a view of one atom.
type Atom struct {
	molRef
	idx AtomIdx
}

//NewAtom returns the only atom of d that matches id.
func NewAtom(d *MoleculeData, id AtomID) (Atom, error) {
	i, err := unique(d.info, id)
	if err != nil {
		return Atom{}, errDecorate(err, "NewAtom")
	}
	return Atom{molRef{d}, i}, nil
}

func (a Atom) Index() AtomIdx                     { return a.idx }
func (a Atom) Name() AtomName                     { return a.d.info.AtomName(a.idx) }
func (a Atom) Number() AtomNum                    { return a.d.info.AtomNum(a.idx) }
func (a Atom) SelectedAtoms() AtomSelection       { return selectionOf(a.d.info, []AtomIdx{a.idx}) }
func (a Atom) IsWithinResidue() bool              { return a.d.info.IsWithinResidue(a.idx) }
func (a Atom) IsWithinSegment() bool              { return a.d.info.IsWithinSegment(a.idx) }
func (a Atom) Evaluate(pm ParameterMap) Evaluator { return newEvaluator(a.d, a.SelectedAtoms(), pm) }

//Residue returns the residue that contains the atom.
func (a Atom) Residue() (Residue, error) {
	r, err := a.d.info.ParentResidue(a.idx)
	if err != nil {
		return Residue{}, errDecorate(err, "Atom.Residue")
	}
	return Residue{a.molRef, r}, nil
}

//Chain returns the chain of the residue that contains the atom.
func (a Atom) Chain() (Chain, error) {
	c, err := a.d.info.AtomParentChain(a.idx)
	if err != nil {
		return Chain{}, errDecorate(err, "Atom.Chain")
	}
	return Chain{a.molRef, c}, nil
}

//CutGroup returns the CutGroup that contains the atom.
func (a Atom) CutGroup() (CutGroup, error) {
	c, err := a.d.info.ParentCutGroup(a.idx)
	if err != nil {
		return CutGroup{}, errDecorate(err, "Atom.CutGroup")
	}
	return CutGroup{a.molRef, c}, nil
}

//Segment returns the segment that contains the atom.
func (a Atom) Segment() (Segment, error) {
	s, err := a.d.info.ParentSegment(a.idx)
	if err != nil {
		return Segment{}, errDecorate(err, "Atom.Segment")
	}
	return Segment{a.molRef, s}, nil
}

//Property returns the value of the per-atom property key for this atom.
func (a Atom) Property(key string) (any, error) {
	p, err := a.d.props.Property(key)
	if err != nil {
		return nil, errDecorate(err, "Atom.Property")
	}
	ap, ok := p.(AtomProperty)
	if !ok {
		return nil, incompatibleErr("Atom.Property", "property %q is not a per-atom property", key)
	}
	return ap.AtomValue(int(a.idx)), nil
}

//Coordinates returns the position of the atom.
func (a Atom) Coordinates(pm ParameterMap) ([3]float64, error) {
	c, err := a.d.coords(pm)
	if err != nil {
		return [3]float64{}, errDecorate(err, "Atom.Coordinates")
	}
	return c.Vec(int(a.idx)), nil
}

//Move returns a Mover for this atom.
func (a Atom) Move(pm ParameterMap) (*Mover, error) { return newMover(a.d, a.SelectedAtoms(), pm) }

//Edit returns an editor for this atom, in a new editing session.
func (a Atom) Edit() *AtomStructureEditor {
	e := NewStructureEditor(a.d)
	return &AtomStructureEditor{StructureEditor: e, uid: e.d.atomsByIndex[a.idx]}
}

func (a Atom) String() string {
	return fmt.Sprintf("Atom(%s:%d)", a.Name(), a.Number())
}

//CutGroup is a view of one CutGroup.
type CutGroup struct {
	molRef
	idx CGIdx
}

//NewCutGroup returns the only CutGroup of d that matches id.
func NewCutGroup(d *MoleculeData, id CGID) (CutGroup, error) {
	i, err := unique(d.info, id)
	if err != nil {
		return CutGroup{}, errDecorate(err, "NewCutGroup")
	}
	return CutGroup{molRef{d}, i}, nil
}

func (c CutGroup) Index() CGIdx                 { return c.idx }
func (c CutGroup) Name() CGName                 { return c.d.info.CGName(c.idx) }
func (c CutGroup) NAtoms() int                  { return c.d.info.NAtomsInCutGroup(c.idx) }
func (c CutGroup) SelectedAtoms() AtomSelection { return selectionOf(c.d.info, c.d.info.AtomsInCutGroup(c.idx)) }
func (c CutGroup) Atoms() Selector[AtomIdx]     { return atomSelector(c.d, c.d.info.AtomsInCutGroup(c.idx)) }
func (c CutGroup) Evaluate(pm ParameterMap) Evaluator {
	return newEvaluator(c.d, c.SelectedAtoms(), pm)
}

//Atom returns the only atom of the CutGroup that matches id.
func (c CutGroup) Atom(id AtomID) (Atom, error) {
	i, err := uniqueWithin(c.d.info, id, func(a AtomIdx) bool { return c.d.info.atoms[a].cg == c.idx })
	if err != nil {
		return Atom{}, errDecorate(err, "CutGroup.Atom")
	}
	return Atom{c.molRef, i}, nil
}

func (c CutGroup) Move(pm ParameterMap) (*Mover, error) { return newMover(c.d, c.SelectedAtoms(), pm) }

//Edit returns an editor for this CutGroup, in a new editing session.
func (c CutGroup) Edit() *CGStructureEditor {
	e := NewStructureEditor(c.d)
	return &CGStructureEditor{StructureEditor: e, uid: e.d.cgsByIndex[c.idx]}
}

func (c CutGroup) String() string { return fmt.Sprintf("CutGroup('%s')", c.Name()) }

//Residue is a view of one residue.
type Residue struct {
	molRef
	idx ResIdx
}

//NewResidue returns the only residue of d that matches id.
func NewResidue(d *MoleculeData, id ResID) (Residue, error) {
	i, err := unique(d.info, id)
	if err != nil {
		return Residue{}, errDecorate(err, "NewResidue")
	}
	return Residue{molRef{d}, i}, nil
}

func (r Residue) Index() ResIdx                { return r.idx }
func (r Residue) Name() ResName                { return r.d.info.ResName(r.idx) }
func (r Residue) Number() ResNum               { return r.d.info.ResNum(r.idx) }
func (r Residue) NAtoms() int                  { return r.d.info.NAtomsInResidue(r.idx) }
func (r Residue) IsWithinChain() bool          { return r.d.info.IsWithinChain(r.idx) }
func (r Residue) SelectedAtoms() AtomSelection { return selectionOf(r.d.info, r.d.info.AtomsInResidue(r.idx)) }
func (r Residue) Atoms() Selector[AtomIdx]     { return atomSelector(r.d, r.d.info.AtomsInResidue(r.idx)) }
func (r Residue) Evaluate(pm ParameterMap) Evaluator {
	return newEvaluator(r.d, r.SelectedAtoms(), pm)
}

//Atom returns the only atom of the residue that matches id.
func (r Residue) Atom(id AtomID) (Atom, error) {
	i, err := uniqueWithin(r.d.info, id, func(a AtomIdx) bool { return r.d.info.atoms[a].res == r.idx })
	if err != nil {
		return Atom{}, errDecorate(err, "Residue.Atom")
	}
	return Atom{r.molRef, i}, nil
}

//Chain returns the chain that contains the residue.
func (r Residue) Chain() (Chain, error) {
	c, err := r.d.info.ParentChain(r.idx)
	if err != nil {
		return Chain{}, errDecorate(err, "Residue.Chain")
	}
	return Chain{r.molRef, c}, nil
}

func (r Residue) Move(pm ParameterMap) (*Mover, error) { return newMover(r.d, r.SelectedAtoms(), pm) }

//Edit returns an editor for this residue, in a new editing session.
func (r Residue) Edit() *ResStructureEditor {
	e := NewStructureEditor(r.d)
	return &ResStructureEditor{StructureEditor: e, uid: e.d.resByIndex[r.idx]}
}

func (r Residue) String() string { return fmt.Sprintf("Residue(%s:%d)", r.Name(), r.Number()) }

//Chain is a view of one chain.
type Chain struct {
	molRef
	idx ChainIdx
}

//NewChain returns the only chain of d that matches id.
func NewChain(d *MoleculeData, id ChainID) (Chain, error) {
	i, err := unique(d.info, id)
	if err != nil {
		return Chain{}, errDecorate(err, "NewChain")
	}
	return Chain{molRef{d}, i}, nil
}

func (c Chain) Index() ChainIdx              { return c.idx }
func (c Chain) Name() ChainName              { return c.d.info.ChainName(c.idx) }
func (c Chain) NResidues() int               { return c.d.info.NResiduesInChain(c.idx) }
func (c Chain) SelectedAtoms() AtomSelection { return selectionOf(c.d.info, c.d.info.AtomsInChain(c.idx)) }
func (c Chain) Atoms() Selector[AtomIdx]     { return atomSelector(c.d, c.d.info.AtomsInChain(c.idx)) }
func (c Chain) Evaluate(pm ParameterMap) Evaluator {
	return newEvaluator(c.d, c.SelectedAtoms(), pm)
}

//Residues returns the residues of the chain.
func (c Chain) Residues() Selector[ResIdx] {
	s, err := NewSelector(c.d, c.d.info.ResiduesInChain(c.idx)...)
	if err != nil {
		bug("Chain.Residues", "%v", err)
	}
	return s
}

//Residue returns the only residue of the chain that matches id.
func (c Chain) Residue(id ResID) (Residue, error) {
	i, err := uniqueWithin(c.d.info, id, func(r ResIdx) bool { return c.d.info.residues[r].chain == c.idx })
	if err != nil {
		return Residue{}, errDecorate(err, "Chain.Residue")
	}
	return Residue{c.molRef, i}, nil
}

//Atom returns the only atom of the chain that matches id.
func (c Chain) Atom(id AtomID) (Atom, error) {
	i, err := uniqueWithin(c.d.info, id, func(a AtomIdx) bool {
		r, ok := c.d.info.residueOf(a)
		return ok && c.d.info.residues[r].chain == c.idx
	})
	if err != nil {
		return Atom{}, errDecorate(err, "Chain.Atom")
	}
	return Atom{c.molRef, i}, nil
}

func (c Chain) Move(pm ParameterMap) (*Mover, error) { return newMover(c.d, c.SelectedAtoms(), pm) }

//Edit returns an editor for this chain, in a new editing session.
func (c Chain) Edit() *ChainStructureEditor {
	e := NewStructureEditor(c.d)
	return &ChainStructureEditor{StructureEditor: e, uid: e.d.chainsByIndex[c.idx]}
}

func (c Chain) String() string { return fmt.Sprintf("Chain('%s')", c.Name()) }

//Segment is a view of one segment.
type Segment struct {
	molRef
	idx SegIdx
}

//NewSegment returns the only segment of d that matches id.
func NewSegment(d *MoleculeData, id SegID) (Segment, error) {
	i, err := unique(d.info, id)
	if err != nil {
		return Segment{}, errDecorate(err, "NewSegment")
	}
	return Segment{molRef{d}, i}, nil
}

func (s Segment) Index() SegIdx                { return s.idx }
func (s Segment) Name() SegName                { return s.d.info.SegName(s.idx) }
func (s Segment) NAtoms() int                  { return s.d.info.NAtomsInSegment(s.idx) }
func (s Segment) SelectedAtoms() AtomSelection { return selectionOf(s.d.info, s.d.info.AtomsInSegment(s.idx)) }
func (s Segment) Atoms() Selector[AtomIdx]     { return atomSelector(s.d, s.d.info.AtomsInSegment(s.idx)) }
func (s Segment) Evaluate(pm ParameterMap) Evaluator {
	return newEvaluator(s.d, s.SelectedAtoms(), pm)
}

//Atom returns the only atom of the segment that matches id.
func (s Segment) Atom(id AtomID) (Atom, error) {
	i, err := uniqueWithin(s.d.info, id, func(a AtomIdx) bool { return s.d.info.atoms[a].seg == s.idx })
	if err != nil {
		return Atom{}, errDecorate(err, "Segment.Atom")
	}
	return Atom{s.molRef, i}, nil
}

func (s Segment) Move(pm ParameterMap) (*Mover, error) { return newMover(s.d, s.SelectedAtoms(), pm) }

//Edit returns an editor for this segment, in a new editing session.
func (s Segment) Edit() *SegStructureEditor {
	e := NewStructureEditor(s.d)
	return &SegStructureEditor{StructureEditor: e, uid: e.d.segsByIndex[s.idx]}
}

func (s Segment) String() string { return fmt.Sprintf("Segment('%s')", s.Name()) }

//Molecule is a view of a whole molecule.
type Molecule struct {
	molRef
}

//NewMolecule returns a view of all of d.
func NewMolecule(d *MoleculeData) Molecule { return Molecule{molRef{d}} }

func (m Molecule) Name() MolName                { return m.d.name }
func (m Molecule) Number() MolNum               { return m.d.number }
func (m Molecule) NAtoms() int                  { return m.d.info.NAtoms() }
func (m Molecule) NResidues() int               { return m.d.info.NResidues() }
func (m Molecule) NChains() int                 { return m.d.info.NChains() }
func (m Molecule) NSegments() int               { return m.d.info.NSegments() }
func (m Molecule) NCutGroups() int              { return m.d.info.NCutGroups() }
func (m Molecule) SelectedAtoms() AtomSelection { return SelectAll(m.d.info) }
func (m Molecule) Evaluate(pm ParameterMap) Evaluator {
	return newEvaluator(m.d, m.SelectedAtoms(), pm)
}

func (m Molecule) Atom(id AtomID) (Atom, error) {
	a, err := NewAtom(m.d, id)
	return a, errDecorate(err, "Molecule.Atom")
}

func (m Molecule) CutGroup(id CGID) (CutGroup, error) {
	c, err := NewCutGroup(m.d, id)
	return c, errDecorate(err, "Molecule.CutGroup")
}

func (m Molecule) Residue(id ResID) (Residue, error) {
	r, err := NewResidue(m.d, id)
	return r, errDecorate(err, "Molecule.Residue")
}

func (m Molecule) Chain(id ChainID) (Chain, error) {
	c, err := NewChain(m.d, id)
	return c, errDecorate(err, "Molecule.Chain")
}

func (m Molecule) Segment(id SegID) (Segment, error) {
	s, err := NewSegment(m.d, id)
	return s, errDecorate(err, "Molecule.Segment")
}

//Select returns a Selector with every entity of kind I that matches id.
//It can't be a method, as methods can't have type parameters.
func Select[I Idx](m MoleculeView, id ID[I]) (Selector[I], error) {
	s, err := NewSelector[I](m.Data())
	if err != nil {
		return s, errDecorate(err, "Select")
	}
	s, err = s.AddID(id)
	return s, errDecorate(err, "Select")
}

func (m Molecule) Atoms() Selector[AtomIdx]   { return SelectAllOf[AtomIdx](m.d) }
func (m Molecule) Residues() Selector[ResIdx] { return SelectAllOf[ResIdx](m.d) }
func (m Molecule) Chains() Selector[ChainIdx] { return SelectAllOf[ChainIdx](m.d) }
func (m Molecule) Segments() Selector[SegIdx] { return SelectAllOf[SegIdx](m.d) }
func (m Molecule) CutGroups() Selector[CGIdx] { return SelectAllOf[CGIdx](m.d) }

func (m Molecule) Move(pm ParameterMap) (*Mover, error) { return newMover(m.d, m.SelectedAtoms(), pm) }

//Edit starts a new editing session for the molecule.
func (m Molecule) Edit() *MolStructureEditor {
	return &MolStructureEditor{StructureEditor: NewStructureEditor(m.d)}
}

func (m Molecule) String() string { return m.d.String() }

//PartialMolecule is a view of an arbitrary set of atoms of a molecule.
type PartialMolecule struct {
	molRef
	sel AtomSelection
}

//NewPartialMolecule returns a view of the atoms of d in sel, which must refer to the layout of d.
func NewPartialMolecule(d *MoleculeData, sel AtomSelection) (PartialMolecule, error) {
	if !d.info.IsCompatibleWith(sel.info) {
		return PartialMolecule{}, incompatibleErr("NewPartialMolecule", "the selection has %d atoms, molecule %d has %d", sel.NAtoms(), d.number, d.info.NAtoms())
	}
	return PartialMolecule{molRef{d}, sel.rebind(d.info)}, nil
}

//PartialOf returns a PartialMolecule with the atoms of any view.
func PartialOf(v MoleculeView) PartialMolecule {
	return PartialMolecule{molRef{v.Data()}, v.SelectedAtoms()}
}

func (p PartialMolecule) SelectedAtoms() AtomSelection { return p.sel }
func (p PartialMolecule) NAtoms() int                  { return p.sel.NSelected() }
func (p PartialMolecule) IsEmpty() bool                { return p.sel.SelectedNone() }
func (p PartialMolecule) Molecule() Molecule           { return Molecule{p.molRef} }
func (p PartialMolecule) Evaluate(pm ParameterMap) Evaluator {
	return newEvaluator(p.d, p.sel, pm)
}

//Atom returns the only selected atom that matches id.
func (p PartialMolecule) Atom(id AtomID) (Atom, error) {
	i, err := uniqueWithin(p.d.info, id, p.sel.Selected)
	if err != nil {
		return Atom{}, errDecorate(err, "PartialMolecule.Atom")
	}
	return Atom{p.molRef, i}, nil
}

//Atoms returns the selected atoms.
func (p PartialMolecule) Atoms() Selector[AtomIdx] { return atomSelector(p.d, p.sel.Indexes()) }

func (p PartialMolecule) Move(pm ParameterMap) (*Mover, error) { return newMover(p.d, p.sel, pm) }

func (p PartialMolecule) String() string {
	return fmt.Sprintf("PartialMolecule(%d, %d of %d atoms)", p.d.number, p.sel.NSelected(), p.sel.NAtoms())
}

//SameView returns true if a and b are views of the same version of the same molecule and
//select exactly the same atoms.
func SameView(a, b MoleculeView) bool {
	return a.MolNum() == b.MolNum() && a.Version() == b.Version() && a.SelectedAtoms().Equal(b.SelectedAtoms())
}
