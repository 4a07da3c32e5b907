/*
 * selector.go, part of gosire.
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
	"strings"
)

//IndexedView is a view of a single entity of kind I, such as an Atom or a Residue.
type IndexedView[I Idx] interface {
	MoleculeView
	Index() I
}

//Selector is an ordered set of entities of one kind (atoms, residues, chains...) of one molecule.
//There are no repeated indexes and all of them are valid in the molecule. A Selector is
//a value: every operation returns a new one.
type Selector[I Idx] struct {
	molRef
	idxs []I
	set  map[I]struct{}
}

//NewSelector returns a Selector with the given indexes, in order and without repetitions.
//Negative indexes count from the end.
func NewSelector[I Idx](d *MoleculeData, idxs ...I) (Selector[I], error) {
	s := Selector[I]{molRef: molRef{d}, set: make(map[I]struct{}, len(idxs))}
	var z I
	n := z.count(d.info)
	for _, v := range idxs {
		j, ok := wrapIndex(int(v), n)
		if !ok {
			return Selector[I]{}, indexErr(z.kind(), "NewSelector", int(v), n)
		}
		s.append(I(j))
	}
	return s, nil
}

//SelectAllOf returns a Selector with all the entities of kind I in d.
func SelectAllOf[I Idx](d *MoleculeData) Selector[I] {
	var z I
	n := z.count(d.info)
	s := Selector[I]{molRef: molRef{d}, idxs: make([]I, 0, n), set: make(map[I]struct{}, n)}
	for i := 0; i < n; i++ {
		s.append(I(i))
	}
	return s
}

func (s *Selector[I]) append(i I) {
	if _, ok := s.set[i]; ok {
		return
	}
	s.set[i] = struct{}{}
	s.idxs = append(s.idxs, i)
}

func (s Selector[I]) clone() Selector[I] {
	r := Selector[I]{molRef: s.molRef, idxs: append([]I(nil), s.idxs...), set: make(map[I]struct{}, len(s.idxs))}
	for _, v := range s.idxs {
		r.set[v] = struct{}{}
	}
	return r
}

func (s Selector[I]) assertSameMolecule(d *MoleculeData, caller string) error {
	if s.d.number != d.number {
		return incompatibleErr(caller, "selector is for molecule %d, the argument for molecule %d", s.d.number, d.number)
	}
	if !s.d.info.IsCompatibleWith(d.info) {
		return incompatibleErr(caller, "molecule %d has a different layout in versions %s and %s", d.number, s.d.version, d.version)
	}
	return nil
}

//Count returns the number of entities in the selector.
func (s Selector[I]) Count() int { return len(s.idxs) }

func (s Selector[I]) IsEmpty() bool { return len(s.idxs) == 0 }

//Indexes returns a copy of the indexes, in order.
func (s Selector[I]) Indexes() []I { return append([]I(nil), s.idxs...) }

//Add returns a selector that also has the entity i, appended at the end if it wasn't already there.
func (s Selector[I]) Add(i I) (Selector[I], error) {
	var z I
	j, ok := wrapIndex(int(i), z.count(s.d.info))
	if !ok {
		return s, indexErr(z.kind(), "Selector.Add", int(i), z.count(s.d.info))
	}
	r := s.clone()
	r.append(I(j))
	return r, nil
}

//AddView returns a selector that also has the entity viewed by v. v must be a view of
//the same molecule, with a compatible layout.
func (s Selector[I]) AddView(v IndexedView[I]) (Selector[I], error) {
	if err := s.assertSameMolecule(v.Data(), "Selector.AddView"); err != nil {
		return s, err
	}
	r := s.clone()
	r.append(v.Index())
	return r, nil
}

//AddID returns a selector that also has all the entities matching id.
func (s Selector[I]) AddID(id ID[I]) (Selector[I], error) {
	idxs, err := id.Map(s.d.info)
	if err != nil {
		return s, errDecorate(err, "Selector.AddID")
	}
	r := s.clone()
	for _, v := range idxs {
		r.append(v)
	}
	return r, nil
}

//AddSelector returns a selector with the entities of other appended. other must belong to the same molecule.
func (s Selector[I]) AddSelector(other Selector[I]) (Selector[I], error) {
	if err := s.assertSameMolecule(other.d, "Selector.AddSelector"); err != nil {
		return s, err
	}
	r := s.clone()
	for _, v := range other.idxs {
		r.append(v)
	}
	return r, nil
}

//Subtract returns a selector without the entities in other, keeping the order.
func (s Selector[I]) Subtract(other Selector[I]) (Selector[I], error) {
	if err := s.assertSameMolecule(other.d, "Selector.Subtract"); err != nil {
		return s, err
	}
	return s.filter(func(i I) bool { return !other.Contains(i) }), nil
}

//Intersection returns a selector with the entities that are also in other, in the order of s.
func (s Selector[I]) Intersection(other Selector[I]) (Selector[I], error) {
	if err := s.assertSameMolecule(other.d, "Selector.Intersection"); err != nil {
		return s, err
	}
	return s.filter(other.Contains), nil
}

//Invert returns a selector with all the entities of the molecule that are not in s, in index order.
func (s Selector[I]) Invert() Selector[I] {
	return SelectAllOf[I](s.d).filter(func(i I) bool { return !s.Contains(i) })
}

func (s Selector[I]) filter(keep func(I) bool) Selector[I] {
	r := Selector[I]{molRef: s.molRef, idxs: make([]I, 0, len(s.idxs)), set: make(map[I]struct{}, len(s.idxs))}
	for _, v := range s.idxs {
		if keep(v) {
			r.append(v)
		}
	}
	return r
}

//At returns the ith entity in the selector. Negative values of i count from the end.
func (s Selector[I]) At(i int) (I, error) {
	var z I
	j, ok := wrapIndex(i, len(s.idxs))
	if !ok {
		return z, indexErr(z.kind(), "Selector.At", i, len(s.idxs))
	}
	return s.idxs[j], nil
}

//Range returns the entities from position i to position j, both included. Negative positions
//count from the end and if, after that, i > j, the entities come in reverse order.
func (s Selector[I]) Range(i, j int) (Selector[I], error) {
	var z I
	a, ok := wrapIndex(i, len(s.idxs))
	if !ok {
		return s, indexErr(z.kind(), "Selector.Range", i, len(s.idxs))
	}
	b, ok := wrapIndex(j, len(s.idxs))
	if !ok {
		return s, indexErr(z.kind(), "Selector.Range", j, len(s.idxs))
	}
	r := Selector[I]{molRef: s.molRef, set: make(map[I]struct{})}
	if a <= b {
		for k := a; k <= b; k++ {
			r.append(s.idxs[k])
		}
	} else {
		for k := a; k >= b; k-- {
			r.append(s.idxs[k])
		}
	}
	return r, nil
}

//Contains returns true if the entity i is in the selector.
func (s Selector[I]) Contains(i I) bool {
	_, ok := s.set[i]
	return ok
}

//ContainsView returns true if the entity viewed by v is in the selector. It fails if v
//is a view of another molecule, or of an incompatible version of the same one.
func (s Selector[I]) ContainsView(v IndexedView[I]) (bool, error) {
	if err := s.assertSameMolecule(v.Data(), "Selector.ContainsView"); err != nil {
		return false, err
	}
	return s.Contains(v.Index()), nil
}

//ContainsID returns true if all the entities matching id are in the selector. It returns false if nothing matches.
func (s Selector[I]) ContainsID(id ID[I]) bool {
	idxs, err := id.Map(s.d.info)
	if err != nil {
		return false
	}
	for _, v := range idxs {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

//ContainsAll returns true if every entity of other is in s.
func (s Selector[I]) ContainsAll(other Selector[I]) bool {
	if s.assertSameMolecule(other.d, "") != nil {
		return false
	}
	for _, v := range other.idxs {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

//ContainsSome returns true if s and other share at least one entity.
func (s Selector[I]) ContainsSome(other Selector[I]) bool {
	if s.assertSameMolecule(other.d, "") != nil {
		return false
	}
	for _, v := range other.idxs {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

//Intersects returns true if any atom selected by s is also selected by view v.
func (s Selector[I]) Intersects(v MoleculeView) bool {
	if v.MolNum() != s.d.number {
		return false
	}
	return s.SelectedAtoms().Intersects(v.SelectedAtoms())
}

//SelectedAtoms returns the atoms of all the entities in the selector.
func (s Selector[I]) SelectedAtoms() AtomSelection {
	sel := SelectNone(s.d.info)
	for _, v := range s.idxs {
		for _, a := range v.atoms(s.d.info) {
			sel.bits.Set(uint(a))
		}
	}
	sel.n = int(sel.bits.Count())
	return sel
}

func (s Selector[I]) String() string {
	var z I
	parts := make([]string, 0, len(s.idxs))
	for _, v := range s.idxs {
		parts = append(parts, fmt.Sprint(int(v)))
	}
	return fmt.Sprintf("Selector<%s>(%d: [%s])", z.kind(), len(s.idxs), strings.Join(parts, " "))
}
