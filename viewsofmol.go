/*
 * viewsofmol.go, part of gosire.
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

//ViewsOfMol holds any number of views (possibly overlapping, possibly repeated) of one molecule.
//While there is at most one view, only its selection is stored; the list of views is created
//when a second one is added and dropped again when only one is left.
//The zero value is not usable; use NewViewsOfMol.
type ViewsOfMol struct {
	d     *MoleculeData
	sel   AtomSelection   //union of all the views
	views []AtomSelection //nil unless there are two or more views
}

//NewViewsOfMol returns an empty set of views of d.
func NewViewsOfMol(d *MoleculeData) *ViewsOfMol {
	return &ViewsOfMol{d: d, sel: SelectNone(d.info)}
}

//ViewsOf returns a set with the given views, which must all be of the same molecule.
func ViewsOf(views ...MoleculeView) (*ViewsOfMol, error) {
	if len(views) == 0 {
		return nil, missingErr("view", "ViewsOf", "no views given")
	}
	v := NewViewsOfMol(views[0].Data())
	for _, w := range views {
		if err := v.Add(w); err != nil {
			return nil, errDecorate(err, "ViewsOf")
		}
	}
	return v, nil
}

func (v *ViewsOfMol) Data() *MoleculeData          { return v.d }
func (v *ViewsOfMol) MolNum() MolNum               { return v.d.number }
func (v *ViewsOfMol) Version() Version             { return v.d.version }
func (v *ViewsOfMol) SelectedAtoms() AtomSelection { return v.sel }
func (*ViewsOfMol) isMoleculeView()                {}

//NViews returns the number of views, counting repeated ones.
func (v *ViewsOfMol) NViews() int {
	if v.views != nil {
		return len(v.views)
	}
	if v.sel.SelectedNone() {
		return 0
	}
	return 1
}

func (v *ViewsOfMol) IsEmpty() bool { return v.NViews() == 0 }

func (v *ViewsOfMol) selections() []AtomSelection {
	if v.views != nil {
		return v.views
	}
	if v.sel.SelectedNone() {
		return nil
	}
	return []AtomSelection{v.sel}
}

func (v *ViewsOfMol) check(view MoleculeView, caller string) (AtomSelection, error) {
	if view.MolNum() != v.d.number {
		return AtomSelection{}, incompatibleErr(caller, "view of molecule %d added to views of molecule %d", view.MolNum(), v.d.number)
	}
	sel := view.SelectedAtoms()
	if !sel.IsCompatible(v.sel) {
		return AtomSelection{}, incompatibleErr(caller, "view of molecule %d has a different layout (version %s, expected %s)", v.d.number, view.Version(), v.d.version)
	}
	return sel.rebind(v.d.info), nil
}

//Add appends view, even if an identical one is already there. Adding a view with no atoms does nothing.
func (v *ViewsOfMol) Add(view MoleculeView) error {
	sel, err := v.check(view, "ViewsOfMol.Add")
	if err != nil {
		return err
	}
	v.add(sel)
	return nil
}

func (v *ViewsOfMol) add(sel AtomSelection) {
	if sel.SelectedNone() {
		return
	}
	switch v.NViews() {
	case 0:
		v.sel = sel
		return
	case 1:
		v.views = []AtomSelection{v.sel}
	}
	v.views = append(v.views, sel)
	v.sel, _ = v.sel.Unite(sel)
}

//AddIfUnique adds view only if there is no identical one already. Returns true if it was added.
func (v *ViewsOfMol) AddIfUnique(view MoleculeView) (bool, error) {
	sel, err := v.check(view, "ViewsOfMol.AddIfUnique")
	if err != nil {
		return false, err
	}
	if sel.SelectedNone() || v.index(sel) >= 0 {
		return false, nil
	}
	v.add(sel)
	return true, nil
}

//AddAll appends every view in other, which must be of the same molecule.
func (v *ViewsOfMol) AddAll(other *ViewsOfMol) error {
	for _, s := range other.selections() {
		if err := v.Add(PartialMolecule{molRef{other.d}, s}); err != nil {
			return errDecorate(err, "ViewsOfMol.AddAll")
		}
	}
	return nil
}

func (v *ViewsOfMol) index(sel AtomSelection) int {
	for i, s := range v.selections() {
		if s.Equal(sel) {
			return i
		}
	}
	return -1
}

//Contains returns true if a view that selects exactly the same atoms as view is present.
func (v *ViewsOfMol) Contains(view MoleculeView) bool {
	sel, err := v.check(view, "ViewsOfMol.Contains")
	if err != nil {
		return false
	}
	return v.index(sel) >= 0
}

//Intersects returns true if any atom of view is selected by some view.
func (v *ViewsOfMol) Intersects(view MoleculeView) bool {
	sel, err := v.check(view, "ViewsOfMol.Intersects")
	if err != nil {
		return false
	}
	return v.sel.Intersects(sel)
}

//rebuild sets the list of views to sels, going back to a single selection if needed.
func (v *ViewsOfMol) rebuild(sels []AtomSelection) {
	v.views = nil
	v.sel = SelectNone(v.d.info)
	for _, s := range sels {
		v.add(s)
	}
}

//RemoveAt removes the ith view. Negative values count from the end.
func (v *ViewsOfMol) RemoveAt(i int) error {
	sels := v.selections()
	j, ok := wrapIndex(i, len(sels))
	if !ok {
		return indexErr("view", "ViewsOfMol.RemoveAt", i, len(sels))
	}
	rest := make([]AtomSelection, 0, len(sels)-1)
	rest = append(rest, sels[:j]...)
	rest = append(rest, sels[j+1:]...)
	v.rebuild(rest)
	return nil
}

//Remove removes the first view that selects exactly the same atoms as view.
//Returns false if there was none.
func (v *ViewsOfMol) Remove(view MoleculeView) (bool, error) {
	sel, err := v.check(view, "ViewsOfMol.Remove")
	if err != nil {
		return false, err
	}
	i := v.index(sel)
	if i < 0 {
		return false, nil
	}
	return true, v.RemoveAt(i)
}

//RemoveAll removes every view that selects exactly the same atoms as view. Views that only
//overlap with it are kept. Returns the positions the removed views had.
func (v *ViewsOfMol) RemoveAll(view MoleculeView) ([]int, error) {
	sel, err := v.check(view, "ViewsOfMol.RemoveAll")
	if err != nil {
		return nil, err
	}
	var removed []int
	sels := v.selections()
	rest := make([]AtomSelection, 0, len(sels))
	for i, s := range sels {
		if s.Equal(sel) {
			removed = append(removed, i)
			continue
		}
		rest = append(rest, s)
	}
	if len(removed) > 0 {
		v.rebuild(rest)
	}
	return removed, nil
}

//ViewAt returns the ith view. Negative values count from the end.
func (v *ViewsOfMol) ViewAt(i int) (PartialMolecule, error) {
	sels := v.selections()
	j, ok := wrapIndex(i, len(sels))
	if !ok {
		return PartialMolecule{}, indexErr("view", "ViewsOfMol.ViewAt", i, len(sels))
	}
	return PartialMolecule{molRef{v.d}, sels[j]}, nil
}

//Views returns all the views, in the order they were added.
func (v *ViewsOfMol) Views() []PartialMolecule {
	sels := v.selections()
	ret := make([]PartialMolecule, len(sels))
	for i, s := range sels {
		ret[i] = PartialMolecule{molRef{v.d}, s}
	}
	return ret
}

//Join returns a single view with the atoms of all the views.
func (v *ViewsOfMol) Join() PartialMolecule { return PartialMolecule{molRef{v.d}, v.sel} }

//All is the same as Join.
func (v *ViewsOfMol) All() PartialMolecule { return v.Join() }

//Update replaces the data of the molecule with d, which must be another version of the same
//molecule, with the same layout.
func (v *ViewsOfMol) Update(d *MoleculeData) error {
	if d.number != v.d.number {
		return incompatibleErr("ViewsOfMol.Update", "can't update molecule %d with data of molecule %d", v.d.number, d.number)
	}
	if !d.info.IsCompatibleWith(v.d.info) {
		return incompatibleErr("ViewsOfMol.Update", "version %s of molecule %d has a different layout than version %s", d.version, d.number, v.d.version)
	}
	v.d = d
	v.sel = v.sel.rebind(d.info)
	for i, s := range v.views {
		v.views[i] = s.rebind(d.info)
	}
	return nil
}

//Clone returns an independent copy of v.
func (v *ViewsOfMol) Clone() *ViewsOfMol {
	r := &ViewsOfMol{d: v.d, sel: v.sel}
	if v.views != nil {
		r.views = append([]AtomSelection(nil), v.views...)
	}
	return r
}

func (v *ViewsOfMol) String() string {
	return fmt.Sprintf("ViewsOfMol(%d, %d views, %d atoms)", v.d.number, v.NViews(), v.sel.NSelected())
}
