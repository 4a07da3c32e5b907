/*
 * selection.go, part of gosire.
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
	"github.com/bits-and-blooms/bitset"
)

//AtomSelection is a set of atoms of one molecule layout. It is a value type:
//every operation returns a new selection and leaves the receiver untouched.
type AtomSelection struct {
	info *MoleculeInfo
	bits *bitset.BitSet
	n    int //cached number of selected atoms
}

func newSelection(info *MoleculeInfo) AtomSelection {
	return AtomSelection{info: info, bits: bitset.New(uint(info.NAtoms()))}
}

//SelectNone returns an empty selection for info.
func SelectNone(info *MoleculeInfo) AtomSelection {
	return newSelection(info)
}

//SelectAll returns a selection with all the atoms of info.
func SelectAll(info *MoleculeInfo) AtomSelection {
	s := newSelection(info)
	for i := 0; i < info.NAtoms(); i++ {
		s.bits.Set(uint(i))
	}
	s.n = info.NAtoms()
	return s
}

//SelectAtoms returns a selection containing the given atoms.
func SelectAtoms(info *MoleculeInfo, atoms []AtomIdx) (AtomSelection, error) {
	s := newSelection(info)
	for _, a := range atoms {
		i, ok := wrapIndex(int(a), info.NAtoms())
		if !ok {
			return AtomSelection{}, indexErr("atom", "SelectAtoms", int(a), info.NAtoms())
		}
		s.bits.Set(uint(i))
	}
	s.n = int(s.bits.Count())
	return s, nil
}

func (s AtomSelection) clone() AtomSelection {
	r := AtomSelection{info: s.info, n: s.n}
	if s.bits != nil {
		r.bits = s.bits.Clone()
	} else {
		r.bits = bitset.New(0)
	}
	return r
}

//Info returns the layout the selection refers to.
func (s AtomSelection) Info() *MoleculeInfo { return s.info }

//NAtoms returns the number of atoms in the layout, selected or not.
func (s AtomSelection) NAtoms() int { return s.info.NAtoms() }

//NSelected returns the number of selected atoms.
func (s AtomSelection) NSelected() int { return s.n }

func (s AtomSelection) SelectedAll() bool  { return s.n == s.info.NAtoms() }
func (s AtomSelection) SelectedNone() bool { return s.n == 0 }

//Selected returns true if atom i is selected. Out of range indexes are never selected.
func (s AtomSelection) Selected(i AtomIdx) bool {
	j, ok := wrapIndex(int(i), s.info.NAtoms())
	if !ok || s.bits == nil {
		return false
	}
	return s.bits.Test(uint(j))
}

//Select returns a copy of s with atom i also selected.
func (s AtomSelection) Select(i AtomIdx) (AtomSelection, error) {
	j, ok := wrapIndex(int(i), s.info.NAtoms())
	if !ok {
		return s, indexErr("atom", "AtomSelection.Select", int(i), s.info.NAtoms())
	}
	r := s.clone()
	if !r.bits.Test(uint(j)) {
		r.bits.Set(uint(j))
		r.n++
	}
	return r, nil
}

//Deselect returns a copy of s with atom i not selected.
func (s AtomSelection) Deselect(i AtomIdx) (AtomSelection, error) {
	j, ok := wrapIndex(int(i), s.info.NAtoms())
	if !ok {
		return s, indexErr("atom", "AtomSelection.Deselect", int(i), s.info.NAtoms())
	}
	r := s.clone()
	if r.bits.Test(uint(j)) {
		r.bits.Clear(uint(j))
		r.n--
	}
	return r, nil
}

//Invert returns the complement of s.
func (s AtomSelection) Invert() AtomSelection {
	r := newSelection(s.info)
	for i := 0; i < s.info.NAtoms(); i++ {
		if !s.bits.Test(uint(i)) {
			r.bits.Set(uint(i))
		}
	}
	r.n = s.info.NAtoms() - s.n
	return r
}

//IsCompatible returns true if s and other refer to the same atom layout.
func (s AtomSelection) IsCompatible(other AtomSelection) bool {
	return s.info.IsCompatibleWith(other.info)
}

func (s AtomSelection) assertCompatible(other AtomSelection, caller string) error {
	if !s.IsCompatible(other) {
		return incompatibleErr(caller, "selections refer to different layouts (%d and %d atoms)", s.NAtoms(), other.NAtoms())
	}
	return nil
}

//Unite returns the union of s and other.
func (s AtomSelection) Unite(other AtomSelection) (AtomSelection, error) {
	if err := s.assertCompatible(other, "AtomSelection.Unite"); err != nil {
		return s, err
	}
	r := AtomSelection{info: s.info, bits: s.bits.Union(other.bits)}
	r.n = int(r.bits.Count())
	return r, nil
}

//Intersect returns the atoms selected in both s and other.
func (s AtomSelection) Intersect(other AtomSelection) (AtomSelection, error) {
	if err := s.assertCompatible(other, "AtomSelection.Intersect"); err != nil {
		return s, err
	}
	r := AtomSelection{info: s.info, bits: s.bits.Intersection(other.bits)}
	r.n = int(r.bits.Count())
	return r, nil
}

//Subtract returns the atoms selected in s but not in other.
func (s AtomSelection) Subtract(other AtomSelection) (AtomSelection, error) {
	if err := s.assertCompatible(other, "AtomSelection.Subtract"); err != nil {
		return s, err
	}
	r := AtomSelection{info: s.info, bits: s.bits.Difference(other.bits)}
	r.n = int(r.bits.Count())
	return r, nil
}

//Contains returns true if all the atoms in other are selected in s.
func (s AtomSelection) Contains(other AtomSelection) bool {
	if !s.IsCompatible(other) {
		return false
	}
	return s.bits.IsSuperSet(other.bits)
}

//Intersects returns true if s and other have at least one atom in common.
func (s AtomSelection) Intersects(other AtomSelection) bool {
	if !s.IsCompatible(other) {
		return false
	}
	return s.bits.IntersectionCardinality(other.bits) > 0
}

//Equal returns true if s and other refer to compatible layouts and select the same atoms.
func (s AtomSelection) Equal(other AtomSelection) bool {
	if !s.IsCompatible(other) || s.n != other.n {
		return false
	}
	return s.bits.Equal(other.bits)
}

//Indexes returns the selected atoms in increasing order.
func (s AtomSelection) Indexes() []AtomIdx {
	ret := make([]AtomIdx, 0, s.n)
	if s.bits == nil {
		return ret
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		ret = append(ret, AtomIdx(i))
	}
	return ret
}

//rebind returns the same selection, but referring to info, which must be compatible.
func (s AtomSelection) rebind(info *MoleculeInfo) AtomSelection {
	r := s.clone()
	r.info = info
	return r
}
