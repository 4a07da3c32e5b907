/*
 * molgroup.go, part of gosire.
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
	"sync"
	"sync/atomic"
)

//MGNum identifies a MoleculeGroup.
type MGNum uint64

var lastMGNum atomic.Uint64

//NewMGNum returns a group number that has not been used before in this process.
func NewMGNum() MGNum { return MGNum(lastMGNum.Add(1)) }

type viewRef struct {
	num MolNum
	k   int //position in the views of the molecule
}

//MoleculeGroup is a named, ordered and versioned collection of molecules and their views.
//The major version goes up by one every time a view or molecule is added or removed, the minor
//version every time the data of a molecule is replaced by a different version. Operations that
//change nothing don't change the versions. A MoleculeGroup is safe for concurrent use.
type MoleculeGroup struct {
	mu        sync.RWMutex
	name      string
	number    MGNum
	major     uint64
	minor     uint64
	mols      Molecules
	molOrder  []MolNum  //molecules, in the order they were added
	viewOrder []viewRef //views, in the order they were added
}

//NewMoleculeGroup returns an empty group with a new number.
func NewMoleculeGroup(name string) *MoleculeGroup {
	g := &MoleculeGroup{name: name, number: NewMGNum()}
	g.mols.init()
	return g
}

func (g *MoleculeGroup) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

//SetName renames the group. This doesn't change the version.
func (g *MoleculeGroup) SetName(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.name = name
}

func (g *MoleculeGroup) Number() MGNum { return g.number }

func (g *MoleculeGroup) MajorVersion() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.major
}

func (g *MoleculeGroup) MinorVersion() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.minor
}

//Version returns both version numbers.
func (g *MoleculeGroup) Version() Version {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Version{Major: g.major, Minor: g.minor}
}

//add appends the selections of view to the molecule. Returns how many were added.
func (g *MoleculeGroup) add(view MoleculeView, unique bool) (int, error) {
	n := view.MolNum()
	cur, ok := g.mols.mols[n]
	if !ok {
		cur = NewViewsOfMol(view.Data())
	}
	targets := []MoleculeView{view}
	if vs, isviews := view.(*ViewsOfMol); isviews {
		targets = targets[:0]
		for _, p := range vs.Views() {
			targets = append(targets, p)
		}
	}
	added := 0
	for _, t := range targets {
		before := cur.NViews()
		if unique {
			if _, err := cur.AddIfUnique(t); err != nil {
				return added, err
			}
		} else if err := cur.Add(t); err != nil {
			return added, err
		}
		if cur.NViews() > before {
			if !ok {
				g.mols.mols[n] = cur
				g.molOrder = append(g.molOrder, n)
				ok = true
			}
			g.viewOrder = append(g.viewOrder, viewRef{num: n, k: before})
			added++
		}
	}
	return added, nil
}

//Add adds view (all of its views, if it is a ViewsOfMol). Identical views can be added
//several times. Adding a view with no atoms does nothing.
func (g *MoleculeGroup) Add(view MoleculeView) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	added, err := g.add(view, false)
	if added > 0 {
		g.major++
	}
	return errDecorate(err, "MoleculeGroup.Add")
}

//AddIfUnique adds view only if an identical one is not in the group yet. Returns true if
//something was added.
func (g *MoleculeGroup) AddIfUnique(view MoleculeView) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	added, err := g.add(view, true)
	if added > 0 {
		g.major++
	}
	return added > 0, errDecorate(err, "MoleculeGroup.AddIfUnique")
}

//AddMolecules adds all the views in mols.
func (g *MoleculeGroup) AddMolecules(mols *Molecules) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	total := 0
	var err error
	for _, n := range mols.MolNums() {
		var added int
		added, err = g.add(mols.mols[n], false)
		total += added
		if err != nil {
			break
		}
	}
	if total > 0 {
		g.major++
	}
	return errDecorate(err, "MoleculeGroup.AddMolecules")
}

//remove removes every copy of the views in view, keeping the order arrays in sync.
func (g *MoleculeGroup) remove(view MoleculeView) (int, error) {
	n := view.MolNum()
	cur, ok := g.mols.mols[n]
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
	total := 0
	for _, t := range targets {
		removed, err := cur.RemoveAll(t)
		if err != nil {
			return total, err
		}
		if len(removed) == 0 {
			continue
		}
		total += len(removed)
		g.viewOrder = slices.DeleteFunc(g.viewOrder, func(r viewRef) bool {
			return r.num == n && slices.Contains(removed, r.k)
		})
		for i, r := range g.viewOrder {
			if r.num != n {
				continue
			}
			shift := 0
			for _, k := range removed {
				if k < r.k {
					shift++
				}
			}
			g.viewOrder[i].k -= shift
		}
	}
	if cur.IsEmpty() {
		g.dropMolecule(n)
	}
	return total, nil
}

func (g *MoleculeGroup) dropMolecule(n MolNum) {
	delete(g.mols.mols, n)
	g.molOrder = slices.DeleteFunc(g.molOrder, func(m MolNum) bool { return m == n })
	g.viewOrder = slices.DeleteFunc(g.viewOrder, func(r viewRef) bool { return r.num == n })
}

//Remove removes every copy of view (of each of its views, if it is a ViewsOfMol). Views that
//only overlap with it are kept. Returns true if anything was removed.
func (g *MoleculeGroup) Remove(view MoleculeView) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	removed, err := g.remove(view)
	if removed > 0 {
		g.major++
	}
	return removed > 0, errDecorate(err, "MoleculeGroup.Remove")
}

//RemoveMolNum removes molecule n, with all its views. Returns true if it was in the group.
func (g *MoleculeGroup) RemoveMolNum(n MolNum) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.mols.mols[n]; !ok {
		return false
	}
	g.dropMolecule(n)
	g.major++
	return true
}

//Clear removes all the molecules.
func (g *MoleculeGroup) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.molOrder) == 0 {
		return
	}
	g.mols = Molecules{}
	g.mols.init()
	g.molOrder = nil
	g.viewOrder = nil
	g.major++
}

//Update replaces the data of the molecule with the number of d, if it is in the group with a
//different version. The minor version goes up only if something changed, which is also what
//the returned bool says.
func (g *MoleculeGroup) Update(d *MoleculeData) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	changed, err := g.mols.Update(d)
	if err != nil {
		return false, errDecorate(err, "MoleculeGroup.Update")
	}
	if changed {
		g.minor++
	}
	return changed, nil
}

//UpdateMolecules updates all the molecules of the group that are in mols. The minor version goes up
//once if any of them changed.
func (g *MoleculeGroup) UpdateMolecules(mols *Molecules) ([]MolNum, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	changed, err := g.mols.UpdateMolecules(mols)
	if len(changed) > 0 {
		g.minor++
	}
	return changed, errDecorate(err, "MoleculeGroup.UpdateMolecules")
}

func (g *MoleculeGroup) NMolecules() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.molOrder)
}

func (g *MoleculeGroup) NViews() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.viewOrder)
}

//MoleculeAt returns the views of the ith molecule added. Negative values of i count from the end.
func (g *MoleculeGroup) MoleculeAt(i int) (*ViewsOfMol, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	j, ok := wrapIndex(i, len(g.molOrder))
	if !ok {
		return nil, indexErr("molecule", "MoleculeGroup.MoleculeAt", i, len(g.molOrder))
	}
	return g.mols.mols[g.molOrder[j]].Clone(), nil
}

//ViewAt returns the ith view added. Negative values of i count from the end.
func (g *MoleculeGroup) ViewAt(i int) (PartialMolecule, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	j, ok := wrapIndex(i, len(g.viewOrder))
	if !ok {
		return PartialMolecule{}, indexErr("view", "MoleculeGroup.ViewAt", i, len(g.viewOrder))
	}
	r := g.viewOrder[j]
	v, err := g.mols.mols[r.num].ViewAt(r.k)
	if err != nil {
		bug("MoleculeGroup.ViewAt", "view order out of sync: %v", err)
	}
	return v, nil
}

//Contains returns true if molecule n is in the group.
func (g *MoleculeGroup) Contains(n MolNum) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mols.Contains(n)
}

//ContainsView returns true if a view identical to view is in the group.
func (g *MoleculeGroup) ContainsView(view MoleculeView) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mols.ContainsView(view)
}

//MolNums returns the numbers of the molecules, in the order they were added.
func (g *MoleculeGroup) MolNums() []MolNum {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]MolNum(nil), g.molOrder...)
}

//Molecules returns a copy of the molecules in the group.
func (g *MoleculeGroup) Molecules() *Molecules {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mols.Clone()
}

func (g *MoleculeGroup) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fmt.Sprintf("MoleculeGroup(%d '%s' v%d.%d, %d molecules, %d views)", g.number, g.name, g.major, g.minor, len(g.molOrder), len(g.viewOrder))
}
