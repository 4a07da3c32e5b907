/*
 * editors.go, part of gosire.
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

//The typed editors are handles to one entity of an editing session. They hold only the
//UID of the entity and the shared session, so any number of them can be alive at once,
//and they stay valid through edits that change the position of their entity.

//AtomStructureEditor edits one atom.
type AtomStructureEditor struct {
	StructureEditor
	uid UID
}

func (a *AtomStructureEditor) UID() UID                   { return a.uid }
func (a *AtomStructureEditor) Index() (AtomIdx, error)    { return a.AtomIdx(a.uid) }
func (a *AtomStructureEditor) Name() (AtomName, error)    { return a.AtomName(a.uid) }
func (a *AtomStructureEditor) Number() (AtomNum, error)   { return a.AtomNum(a.uid) }
func (a *AtomStructureEditor) Rename(name AtomName) error { return a.RenameAtom(a.uid, name) }
func (a *AtomStructureEditor) Renumber(num AtomNum) error { return a.RenumberAtom(a.uid, num) }
func (a *AtomStructureEditor) Reindex(i AtomIdx) error    { return a.ReindexAtom(a.uid, i) }
func (a *AtomStructureEditor) Remove() error              { return a.RemoveAtom(a.uid) }
func (a *AtomStructureEditor) Reparent(res ResID) error   { return a.ReparentAtomToResidue(a.uid, res) }
func (a *AtomStructureEditor) ReparentToCutGroup(cg CGID) error {
	return a.ReparentAtomToCutGroup(a.uid, cg)
}
func (a *AtomStructureEditor) ReparentToSegment(seg SegID) error {
	return a.ReparentAtomToSegment(a.uid, seg)
}

//SetProperty sets the value of the per-atom property key for this atom.
func (a *AtomStructureEditor) SetProperty(key string, v any) error {
	return a.SetAtomProperty(a.uid, key, v)
}

//Property returns the value of the per-atom property key for this atom.
func (a *AtomStructureEditor) Property(key string) (any, error) {
	return a.AtomProperty(a.uid, key)
}

//Residue returns an editor for the residue that contains the atom.
func (a *AtomStructureEditor) Residue() (*ResStructureEditor, error) {
	u, err := a.ResidueParentOfAtom(a.uid)
	if err != nil {
		return nil, errDecorate(err, "AtomStructureEditor.Residue")
	}
	return &ResStructureEditor{a.StructureEditor, u}, nil
}

//CutGroup returns an editor for the CutGroup that contains the atom.
func (a *AtomStructureEditor) CutGroup() (*CGStructureEditor, error) {
	u, err := a.CutGroupParentOfAtom(a.uid)
	if err != nil {
		return nil, errDecorate(err, "AtomStructureEditor.CutGroup")
	}
	return &CGStructureEditor{a.StructureEditor, u}, nil
}

//Segment returns an editor for the segment that contains the atom.
func (a *AtomStructureEditor) Segment() (*SegStructureEditor, error) {
	u, err := a.SegmentParentOfAtom(a.uid)
	if err != nil {
		return nil, errDecorate(err, "AtomStructureEditor.Segment")
	}
	return &SegStructureEditor{a.StructureEditor, u}, nil
}

//Commit commits the whole session and returns a view of this atom in the new molecule.
func (a *AtomStructureEditor) Commit() (Atom, error) {
	i, err := a.AtomIdx(a.uid)
	if err != nil {
		return Atom{}, errDecorate(err, "AtomStructureEditor.Commit")
	}
	d, err := a.StructureEditor.Commit()
	if err != nil {
		return Atom{}, errDecorate(err, "AtomStructureEditor.Commit")
	}
	return Atom{molRef{d}, i}, nil
}

//CGStructureEditor edits one CutGroup.
type CGStructureEditor struct {
	StructureEditor
	uid UID
}

func (c *CGStructureEditor) UID() UID                 { return c.uid }
func (c *CGStructureEditor) Index() (CGIdx, error)    { return c.CGIdx(c.uid) }
func (c *CGStructureEditor) Name() (CGName, error)    { return c.CGName(c.uid) }
func (c *CGStructureEditor) Rename(name CGName) error { return c.RenameCutGroup(c.uid, name) }
func (c *CGStructureEditor) Reindex(i CGIdx) error    { return c.ReindexCutGroup(c.uid, i) }
func (c *CGStructureEditor) Remove() error            { return c.RemoveCutGroup(c.uid) }
func (c *CGStructureEditor) Atoms() ([]UID, error)    { return c.AtomsInCutGroup(c.uid) }

//Add moves the atom with UID u into this CutGroup.
func (c *CGStructureEditor) Add(u UID) error { return c.SetAtomCutGroup(u, c.uid) }

//AddAtom adds a new atom to the molecule, in this CutGroup.
func (c *CGStructureEditor) AddAtom() (*AtomStructureEditor, error) {
	a := &AtomStructureEditor{c.StructureEditor, c.StructureEditor.AddAtom()}
	if err := c.Add(a.uid); err != nil {
		a.Remove()
		return nil, errDecorate(err, "CGStructureEditor.AddAtom")
	}
	return a, nil
}

//Commit commits the whole session and returns a view of this CutGroup in the new molecule.
func (c *CGStructureEditor) Commit() (CutGroup, error) {
	i, err := c.CGIdx(c.uid)
	if err != nil {
		return CutGroup{}, errDecorate(err, "CGStructureEditor.Commit")
	}
	d, err := c.StructureEditor.Commit()
	if err != nil {
		return CutGroup{}, errDecorate(err, "CGStructureEditor.Commit")
	}
	return CutGroup{molRef{d}, i}, nil
}

//ResStructureEditor edits one residue.
type ResStructureEditor struct {
	StructureEditor
	uid UID
}

func (r *ResStructureEditor) UID() UID                     { return r.uid }
func (r *ResStructureEditor) Index() (ResIdx, error)       { return r.ResIdx(r.uid) }
func (r *ResStructureEditor) Name() (ResName, error)       { return r.ResName(r.uid) }
func (r *ResStructureEditor) Number() (ResNum, error)      { return r.ResNum(r.uid) }
func (r *ResStructureEditor) Rename(name ResName) error    { return r.RenameResidue(r.uid, name) }
func (r *ResStructureEditor) Renumber(num ResNum) error    { return r.RenumberResidue(r.uid, num) }
func (r *ResStructureEditor) Reindex(i ResIdx) error       { return r.ReindexResidue(r.uid, i) }
func (r *ResStructureEditor) Remove() error                { return r.RemoveResidue(r.uid) }
func (r *ResStructureEditor) Reparent(chain ChainID) error { return r.ReparentResidue(r.uid, chain) }
func (r *ResStructureEditor) Atoms() ([]UID, error)        { return r.AtomsInResidue(r.uid) }

//Chain returns an editor for the chain that contains the residue.
func (r *ResStructureEditor) Chain() (*ChainStructureEditor, error) {
	u, err := r.ChainParentOfResidue(r.uid)
	if err != nil {
		return nil, errDecorate(err, "ResStructureEditor.Chain")
	}
	return &ChainStructureEditor{r.StructureEditor, u}, nil
}

//Add moves the atom with UID u into this residue.
func (r *ResStructureEditor) Add(u UID) error { return r.SetAtomResidue(u, r.uid) }

//AddAtom adds a new atom to the molecule, in this residue.
func (r *ResStructureEditor) AddAtom() (*AtomStructureEditor, error) {
	a := &AtomStructureEditor{r.StructureEditor, r.StructureEditor.AddAtom()}
	if err := r.Add(a.uid); err != nil {
		a.Remove()
		return nil, errDecorate(err, "ResStructureEditor.AddAtom")
	}
	return a, nil
}

//Commit commits the whole session and returns a view of this residue in the new molecule.
func (r *ResStructureEditor) Commit() (Residue, error) {
	i, err := r.ResIdx(r.uid)
	if err != nil {
		return Residue{}, errDecorate(err, "ResStructureEditor.Commit")
	}
	d, err := r.StructureEditor.Commit()
	if err != nil {
		return Residue{}, errDecorate(err, "ResStructureEditor.Commit")
	}
	return Residue{molRef{d}, i}, nil
}

//ChainStructureEditor edits one chain.
type ChainStructureEditor struct {
	StructureEditor
	uid UID
}

func (c *ChainStructureEditor) UID() UID                    { return c.uid }
func (c *ChainStructureEditor) Index() (ChainIdx, error)    { return c.ChainIdx(c.uid) }
func (c *ChainStructureEditor) Name() (ChainName, error)    { return c.ChainName(c.uid) }
func (c *ChainStructureEditor) Rename(name ChainName) error { return c.RenameChain(c.uid, name) }
func (c *ChainStructureEditor) Reindex(i ChainIdx) error    { return c.ReindexChain(c.uid, i) }
func (c *ChainStructureEditor) Remove() error               { return c.RemoveChain(c.uid) }
func (c *ChainStructureEditor) Residues() ([]UID, error)    { return c.ResiduesInChain(c.uid) }

//Add moves the residue with UID u into this chain.
func (c *ChainStructureEditor) Add(u UID) error { return c.SetResidueChain(u, c.uid) }

//AddResidue adds a new residue to the molecule, in this chain.
func (c *ChainStructureEditor) AddResidue() (*ResStructureEditor, error) {
	r := &ResStructureEditor{c.StructureEditor, c.StructureEditor.AddResidue()}
	if err := c.Add(r.uid); err != nil {
		r.Remove()
		return nil, errDecorate(err, "ChainStructureEditor.AddResidue")
	}
	return r, nil
}

//Commit commits the whole session and returns a view of this chain in the new molecule.
func (c *ChainStructureEditor) Commit() (Chain, error) {
	i, err := c.ChainIdx(c.uid)
	if err != nil {
		return Chain{}, errDecorate(err, "ChainStructureEditor.Commit")
	}
	d, err := c.StructureEditor.Commit()
	if err != nil {
		return Chain{}, errDecorate(err, "ChainStructureEditor.Commit")
	}
	return Chain{molRef{d}, i}, nil
}

//SegStructureEditor edits one segment.
type SegStructureEditor struct {
	StructureEditor
	uid UID
}

func (s *SegStructureEditor) UID() UID                  { return s.uid }
func (s *SegStructureEditor) Index() (SegIdx, error)    { return s.SegIdx(s.uid) }
func (s *SegStructureEditor) Name() (SegName, error)    { return s.SegName(s.uid) }
func (s *SegStructureEditor) Rename(name SegName) error { return s.RenameSegment(s.uid, name) }
func (s *SegStructureEditor) Reindex(i SegIdx) error    { return s.ReindexSegment(s.uid, i) }
func (s *SegStructureEditor) Remove() error             { return s.RemoveSegment(s.uid) }
func (s *SegStructureEditor) Atoms() ([]UID, error)     { return s.AtomsInSegment(s.uid) }

//Add moves the atom with UID u into this segment.
func (s *SegStructureEditor) Add(u UID) error { return s.SetAtomSegment(u, s.uid) }

//AddAtom adds a new atom to the molecule, in this segment.
func (s *SegStructureEditor) AddAtom() (*AtomStructureEditor, error) {
	a := &AtomStructureEditor{s.StructureEditor, s.StructureEditor.AddAtom()}
	if err := s.Add(a.uid); err != nil {
		a.Remove()
		return nil, errDecorate(err, "SegStructureEditor.AddAtom")
	}
	return a, nil
}

//Commit commits the whole session and returns a view of this segment in the new molecule.
func (s *SegStructureEditor) Commit() (Segment, error) {
	i, err := s.SegIdx(s.uid)
	if err != nil {
		return Segment{}, errDecorate(err, "SegStructureEditor.Commit")
	}
	d, err := s.StructureEditor.Commit()
	if err != nil {
		return Segment{}, errDecorate(err, "SegStructureEditor.Commit")
	}
	return Segment{molRef{d}, i}, nil
}

//MolStructureEditor edits a whole molecule.
type MolStructureEditor struct {
	StructureEditor
}

//NewMolStructureEditor starts editing a new, empty molecule with a new molecule number.
func NewMolStructureEditor(name MolName) *MolStructureEditor {
	return &MolStructureEditor{newEmptyEditor(name)}
}

func (m *MolStructureEditor) Name() MolName       { return m.d.name }
func (m *MolStructureEditor) Number() MolNum      { return m.d.number }
func (m *MolStructureEditor) Rename(name MolName) { m.RenameMolecule(name) }

func (m *MolStructureEditor) AddAtom() *AtomStructureEditor {
	return &AtomStructureEditor{m.StructureEditor, m.StructureEditor.AddAtom()}
}

func (m *MolStructureEditor) AddCutGroup() *CGStructureEditor {
	return &CGStructureEditor{m.StructureEditor, m.StructureEditor.AddCutGroup()}
}

func (m *MolStructureEditor) AddResidue() *ResStructureEditor {
	return &ResStructureEditor{m.StructureEditor, m.StructureEditor.AddResidue()}
}

func (m *MolStructureEditor) AddChain() *ChainStructureEditor {
	return &ChainStructureEditor{m.StructureEditor, m.StructureEditor.AddChain()}
}

func (m *MolStructureEditor) AddSegment() *SegStructureEditor {
	return &SegStructureEditor{m.StructureEditor, m.StructureEditor.AddSegment()}
}

//Atom returns an editor for the only atom matching id.
func (m *MolStructureEditor) Atom(id AtomID) (*AtomStructureEditor, error) {
	u, err := m.AtomUID(id)
	if err != nil {
		return nil, errDecorate(err, "MolStructureEditor.Atom")
	}
	return &AtomStructureEditor{m.StructureEditor, u}, nil
}

//CutGroup returns an editor for the only CutGroup matching id.
func (m *MolStructureEditor) CutGroup(id CGID) (*CGStructureEditor, error) {
	u, err := m.CGUID(id)
	if err != nil {
		return nil, errDecorate(err, "MolStructureEditor.CutGroup")
	}
	return &CGStructureEditor{m.StructureEditor, u}, nil
}

//Residue returns an editor for the only residue matching id.
func (m *MolStructureEditor) Residue(id ResID) (*ResStructureEditor, error) {
	u, err := m.ResUID(id)
	if err != nil {
		return nil, errDecorate(err, "MolStructureEditor.Residue")
	}
	return &ResStructureEditor{m.StructureEditor, u}, nil
}

//Chain returns an editor for the only chain matching id.
func (m *MolStructureEditor) Chain(id ChainID) (*ChainStructureEditor, error) {
	u, err := m.ChainUID(id)
	if err != nil {
		return nil, errDecorate(err, "MolStructureEditor.Chain")
	}
	return &ChainStructureEditor{m.StructureEditor, u}, nil
}

//Segment returns an editor for the only segment matching id.
func (m *MolStructureEditor) Segment(id SegID) (*SegStructureEditor, error) {
	u, err := m.SegUID(id)
	if err != nil {
		return nil, errDecorate(err, "MolStructureEditor.Segment")
	}
	return &SegStructureEditor{m.StructureEditor, u}, nil
}

//AtomByUID returns an editor for the atom with UID u.
func (m *MolStructureEditor) AtomByUID(u UID) (*AtomStructureEditor, error) {
	if !m.HasAtom(u) {
		return nil, missingErr("atom", "MolStructureEditor.AtomByUID", "there is no atom with UID %s", u)
	}
	return &AtomStructureEditor{m.StructureEditor, u}, nil
}

//Commit commits the session and returns the new molecule.
func (m *MolStructureEditor) Commit() (Molecule, error) {
	d, err := m.StructureEditor.Commit()
	if err != nil {
		return Molecule{}, errDecorate(err, "MolStructureEditor.Commit")
	}
	return Molecule{molRef{d}}, nil
}
