/*
 * views_test.go, part of gosire.
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

func TestViews(Te *testing.T) {
	d := testMolecule(Te)
	m := d.Molecule()
	assert.Equal(Te, MolName("dipeptide"), m.Name())
	assert.Equal(Te, 6, m.NAtoms())

	_, err := m.Atom(AtomName("CA"))
	requireKind(Te, err, KindDuplicate)

	gly, err := m.Residue(ResNum(2))
	require.NoError(Te, err)
	assert.Equal(Te, ResName("GLY"), gly.Name())
	assert.Equal(Te, 2, gly.NAtoms())
	assert.True(Te, gly.IsWithinChain())
	ca, err := gly.Atom(AtomName("CA"))
	require.NoError(Te, err)
	assert.Equal(Te, AtomIdx(4), ca.Index())
	assert.Equal(Te, AtomNum(5), ca.Number())
	_, err = gly.Atom(AtomName("CB"))
	requireKind(Te, err, KindMissing)

	pos, err := ca.Coordinates(nil)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{4, 0, 0}, pos)
	el, err := ca.Property(ElementKey)
	require.NoError(Te, err)
	assert.Equal(Te, "C", el)
	_, err = ca.Property("nothing")
	requireKind(Te, err, KindMissingProperty)

	parent, err := ca.Residue()
	require.NoError(Te, err)
	assert.Equal(Te, gly.Index(), parent.Index())
	chain, err := ca.Chain()
	require.NoError(Te, err)
	assert.Equal(Te, ChainName("A"), chain.Name())
	assert.Equal(Te, 2, chain.NResidues())
	cg, err := ca.CutGroup()
	require.NoError(Te, err)
	assert.Equal(Te, CGName("GLY:2"), cg.Name())
	seg, err := ca.Segment()
	require.NoError(Te, err)
	assert.Equal(Te, 5, seg.NAtoms())

	_, err = chain.Atom(AtomName("CA"))
	requireKind(Te, err, KindDuplicate)
	cb, err := chain.Atom(AtomName("CB"))
	require.NoError(Te, err)
	assert.Equal(Te, AtomIdx(2), cb.Index())
	r, err := chain.Residue(ResName("ALA"))
	require.NoError(Te, err)
	assert.Equal(Te, ResIdx(0), r.Index())

	zn, err := m.Atom(AtomName("ZN"))
	require.NoError(Te, err)
	assert.False(Te, zn.IsWithinResidue())
	assert.False(Te, zn.IsWithinSegment())
	_, err = zn.Residue()
	requireKind(Te, err, KindMissing)
	_, err = zn.Chain()
	requireKind(Te, err, KindMissing)
	_, err = zn.Segment()
	requireKind(Te, err, KindMissing)
	_, err = chain.Atom(AtomName("ZN"))
	requireKind(Te, err, KindMissing)
	_, err = seg.Atom(AtomName("ZN"))
	requireKind(Te, err, KindMissing)
	noresidue, err := m.CutGroup(CGName("noresidue"))
	require.NoError(Te, err)
	z, err := noresidue.Atom(AtomIdx(5))
	require.NoError(Te, err)
	assert.Equal(Te, AtomName("ZN"), z.Name())
}

func TestPartialMolecule(Te *testing.T) {
	d := testMolecule(Te)
	m := d.Molecule()
	sel, err := SelectAtoms(d.Info(), []AtomIdx{1, 3, 4})
	require.NoError(Te, err)
	p, err := NewPartialMolecule(d, sel)
	require.NoError(Te, err)
	assert.Equal(Te, 3, p.NAtoms())
	assert.False(Te, p.IsEmpty())
	_, err = p.Atom(AtomName("CA"))
	requireKind(Te, err, KindDuplicate)
	n, err := p.Atom(AtomName("N"))
	require.NoError(Te, err)
	assert.Equal(Te, AtomIdx(3), n.Index())
	_, err = p.Atom(AtomName("CB"))
	requireKind(Te, err, KindMissing)
	assert.Equal(Te, []AtomIdx{1, 3, 4}, p.Atoms().Indexes())
	assert.Equal(Te, 6, p.Molecule().NAtoms())

	_, err = NewPartialMolecule(d, SelectAll(waterMolecule(Te).Info()))
	requireKind(Te, err, KindIncompatible)

	gly, err := m.Residue(ResName("GLY"))
	require.NoError(Te, err)
	sel, err = SelectAtoms(d.Info(), []AtomIdx{3, 4})
	require.NoError(Te, err)
	same, err := NewPartialMolecule(d, sel)
	require.NoError(Te, err)
	assert.True(Te, SameView(gly, same))
	assert.True(Te, SameView(gly, PartialOf(gly)))
	assert.False(Te, SameView(gly, p))
}
