/*
 * molecules.go, part of gosire.
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

//Molecules is an unordered collection of molecules, each with one or more views.
//A molecule never stays in the collection without views. The zero value is an empty
//collection ready to use.
type Molecules struct {
	mols map[MolNum]*ViewsOfMol
}

//NewMolecules returns a collection with the given views.
func NewMolecules(views ...MoleculeView) (*Molecules, error) {
	m := &Molecules{}
	for _, v := range views {
		if err := m.Add(v); err != nil {
			return nil, errDecorate(err, "NewMolecules")
		}
	}
	return m, nil
}

func (m *Molecules) init() {
	if m.mols == nil {
		m.mols = make(map[MolNum]*ViewsOfMol)
	}
}

//Add adds view to the views of its molecule, or adds the molecule if it wasn't there.
//If view is a ViewsOfMol, all of its views are added. Existing views are never removed.
func (m *Molecules) Add(view MoleculeView) error {
	m.init()
	cur, ok := m.mols[view.MolNum()]
	if !ok {
		cur = NewViewsOfMol(view.Data())
	}
	var err error
	if vs, isviews := view.(*ViewsOfMol); isviews {
		err = cur.AddAll(vs)
	} else {
		err = cur.Add(view)
	}
	if err != nil {
		return errDecorate(err, "Molecules.Add")
	}
	if !cur.IsEmpty() {
		m.mols[view.MolNum()] = cur
	}
	return nil
}

//AddIfUnique adds view unless an identical view is already there. Returns true if it was added.
func (m *Molecules) AddIfUnique(view MoleculeView) (bool, error) {
	m.init()
	cur, ok := m.mols[view.MolNum()]
	if !ok {
		cur = NewViewsOfMol(view.Data())
	}
	added, err := cur.AddIfUnique(view)
	if err != nil {
		return false, errDecorate(err, "Molecules.AddIfUnique")
	}
	if added {
		m.mols[view.MolNum()] = cur
	}
	return added, nil
}

//AddMolecules adds all the views in other.
func (m *Molecules) AddMolecules(other *Molecules) error {
	for _, n := range other.MolNums() {
		if err := m.Add(other.mols[n]); err != nil {
			return errDecorate(err, "Molecules.AddMolecules")
		}
	}
	return nil
}

//Remove removes every copy of view. Views that select different atoms are kept, even if they
//overlap with view. If no views are left, the molecule is removed. Returns the number of
//views removed.
func (m *Molecules) Remove(view MoleculeView) (int, error) {
	cur, ok := m.mols[view.MolNum()]
	if !ok {
		return 0, nil
	}
	targets := []MoleculeView{view}
	if vs, isviews := view.(*ViewsOfMol); isviews {
		targets = targets[:0]
		for _, p := range vs.Views() {
			targets = append(targets, p)
		}
	}
	n := 0
	for _, t := range targets {
		removed, err := cur.RemoveAll(t)
		if err != nil {
			return n, errDecorate(err, "Molecules.Remove")
		}
		n += len(removed)
	}
	if cur.IsEmpty() {
		delete(m.mols, view.MolNum())
	}
	return n, nil
}

//RemoveMolNum removes all the views of molecule n. Returns false if it wasn't there.
func (m *Molecules) RemoveMolNum(n MolNum) bool {
	if _, ok := m.mols[n]; !ok {
		return false
	}
	delete(m.mols, n)
	return true
}

//RemoveMolecules removes every view in other.
func (m *Molecules) RemoveMolecules(other *Molecules) (int, error) {
	total := 0
	for _, n := range other.MolNums() {
		k, err := m.Remove(other.mols[n])
		total += k
		if err != nil {
			return total, errDecorate(err, "Molecules.RemoveMolecules")
		}
	}
	return total, nil
}

//Update replaces the data of the molecule with the number of d, if it is in the collection
//with a different version. Molecules that are not there are never added. Returns true if
//something changed.
func (m *Molecules) Update(d *MoleculeData) (bool, error) {
	cur, ok := m.mols[d.number]
	if !ok || cur.d.version == d.version {
		return false, nil
	}
	if err := cur.Update(d); err != nil {
		return false, errDecorate(err, "Molecules.Update")
	}
	return true, nil
}

//UpdateMolecules updates every molecule of m that is also in other. Returns the numbers of the
//molecules that changed.
func (m *Molecules) UpdateMolecules(other *Molecules) ([]MolNum, error) {
	var changed []MolNum
	for _, n := range other.MolNums() {
		ok, err := m.Update(other.mols[n].d)
		if err != nil {
			return changed, errDecorate(err, "Molecules.UpdateMolecules")
		}
		if ok {
			changed = append(changed, n)
		}
	}
	return changed, nil
}

//At returns a copy of the views of molecule n. Changes to the copy don't affect m.
func (m *Molecules) At(n MolNum) (*ViewsOfMol, error) {
	v, ok := m.mols[n]
	if !ok {
		return nil, missingErr("molecule", "Molecules.At", "there is no molecule with number %d", n)
	}
	return v.Clone(), nil
}

//Contains returns true if molecule n is in the collection.
func (m *Molecules) Contains(n MolNum) bool {
	_, ok := m.mols[n]
	return ok
}

//ContainsView returns true if a view identical to view is in the collection.
func (m *Molecules) ContainsView(view MoleculeView) bool {
	v, ok := m.mols[view.MolNum()]
	return ok && v.Contains(view)
}

//Count returns the number of molecules.
func (m *Molecules) Count() int { return len(m.mols) }

//NViews returns the total number of views.
func (m *Molecules) NViews() int {
	n := 0
	for _, v := range m.mols {
		n += v.NViews()
	}
	return n
}

func (m *Molecules) IsEmpty() bool { return len(m.mols) == 0 }

//MolNums returns the numbers of the molecules, sorted.
func (m *Molecules) MolNums() []MolNum {
	ret := make([]MolNum, 0, len(m.mols))
	for n := range m.mols {
		ret = append(ret, n)
	}
	slices.Sort(ret)
	return ret
}

//Clone returns an independent copy of m.
func (m *Molecules) Clone() *Molecules {
	r := &Molecules{}
	r.init()
	for n, v := range m.mols {
		r.mols[n] = v.Clone()
	}
	return r
}

func (m *Molecules) String() string {
	return fmt.Sprintf("Molecules(%d molecules, %d views)", m.Count(), m.NViews())
}
