/*
 * selector_test.go, part of gosire.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector(Te *testing.T) {
	d := testMolecule(Te)
	s, err := NewSelector[AtomIdx](d, 0, 1, 2, 3, 4, 2)
	require.NoError(Te, err)
	assert.Equal(Te, 5, s.Count())

	last, err := s.At(-1)
	require.NoError(Te, err)
	assert.Equal(Te, AtomIdx(4), last)
	_, err = s.At(5)
	requireKind(Te, err, KindInvalidIndex)
	_, err = s.At(-6)
	requireKind(Te, err, KindInvalidIndex)

	r, err := s.Range(-1, -3)
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{4, 3, 2}, r.Indexes())
	r, err = s.Range(1, 2)
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{1, 2}, r.Indexes())
	_, err = s.Range(0, 7)
	requireKind(Te, err, KindInvalidIndex)

	again, err := s.Add(1)
	require.NoError(Te, err)
	assert.Equal(Te, s.Indexes(), again.Indexes())
	more, err := s.Add(-1)
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{0, 1, 2, 3, 4, 5}, more.Indexes())
	assert.Equal(Te, 5, s.Count(), "Add must not change the receiver")
	_, err = s.Add(6)
	requireKind(Te, err, KindInvalidIndex)

	assert.Equal(Te, []AtomIdx{5}, s.Invert().Indexes())
	assert.True(Te, s.Invert().Invert().ContainsAll(s))

	cas, err := s.Invert().AddID(AtomName("CA"))
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{5, 1, 4}, cas.Indexes())
	assert.True(Te, cas.ContainsID(AtomName("CA")))
	assert.False(Te, cas.ContainsID(AtomName("CB")))
	assert.False(Te, cas.ContainsID(AtomName("XX")))

	sub, err := s.Subtract(cas)
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{0, 2, 3}, sub.Indexes())
	inter, err := s.Intersection(cas)
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{1, 4}, inter.Indexes())
	assert.True(Te, s.ContainsSome(cas))
	assert.False(Te, s.ContainsAll(cas))
}

func TestSelectorKinds(Te *testing.T) {
	d := testMolecule(Te)
	m := d.Molecule()
	res, err := Select[ResIdx](m, ResName("GLY"))
	require.NoError(Te, err)
	assert.Equal(Te, []ResIdx{1}, res.Indexes())
	assert.Equal(Te, []AtomIdx{3, 4}, res.SelectedAtoms().Indexes())
	assert.Equal(Te, 3, m.CutGroups().Count())
	assert.Equal(Te, 2, m.Residues().Count())
	assert.Equal(Te, []AtomIdx{0, 1, 2, 3, 4}, m.Chains().SelectedAtoms().Indexes())
	_, err = Select[ChainIdx](m, ChainName("Z"))
	requireKind(Te, err, KindMissing)

	zn, err := m.Atom(AtomName("ZN"))
	require.NoError(Te, err)
	assert.True(Te, m.Residues().Intersects(m))
	assert.False(Te, m.Residues().Intersects(zn))

	other, err := NewSelector[ResIdx](testMolecule(Te), 0)
	require.NoError(Te, err)
	_, err = res.AddSelector(other)
	requireKind(Te, err, KindIncompatible)
	_, err = res.Subtract(other)
	requireKind(Te, err, KindIncompatible)
	assert.False(Te, res.ContainsAll(other))
}

func TestSelectorViews(Te *testing.T) {
	d := testMolecule(Te)
	m := d.Molecule()
	gly, err := m.Residue(ResName("GLY"))
	require.NoError(Te, err)
	ala, err := m.Residue(ResName("ALA"))
	require.NoError(Te, err)

	s, err := NewSelector[ResIdx](d)
	require.NoError(Te, err)
	s, err = s.AddView(gly)
	require.NoError(Te, err)
	assert.Equal(Te, []ResIdx{1}, s.Indexes())
	in, err := s.ContainsView(gly)
	require.NoError(Te, err)
	assert.True(Te, in)
	in, err = s.ContainsView(ala)
	require.NoError(Te, err)
	assert.False(Te, in)

	//Same layout, same residue index, but a different molecule.
	otherGly, err := testMolecule(Te).Molecule().Residue(ResName("GLY"))
	require.NoError(Te, err)
	_, err = s.AddView(otherGly)
	requireKind(Te, err, KindIncompatible)
	_, err = s.ContainsView(otherGly)
	requireKind(Te, err, KindIncompatible)
	assert.Equal(Te, 1, s.Count())

	//Same molecule, but a version with another layout.
	ed := NewStructureEditor(d)
	zn, err := ed.AtomUID(AtomName("ZN"))
	require.NoError(Te, err)
	require.NoError(Te, ed.RemoveAtom(zn))
	smaller, err := ed.Commit()
	require.NoError(Te, err)
	require.Equal(Te, d.Number(), smaller.Number())
	newGly, err := smaller.Molecule().Residue(ResName("GLY"))
	require.NoError(Te, err)
	_, err = s.AddView(newGly)
	requireKind(Te, err, KindIncompatible)
}
