/*
 * molgroup_test.go, part of gosire.
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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoleculeGroupVersions(Te *testing.T) {
	d := testMolecule(Te)
	w := waterMolecule(Te)
	ala, gly := residues(Te, d)
	g := NewMoleculeGroup("solute")
	assert.Equal(Te, Version{}, g.Version())

	require.NoError(Te, g.Add(d.Molecule()))
	assert.Equal(Te, uint64(1), g.MajorVersion())
	empty, err := NewPartialMolecule(d, SelectNone(d.Info()))
	require.NoError(Te, err)
	require.NoError(Te, g.Add(empty))
	assert.Equal(Te, uint64(1), g.MajorVersion())

	require.NoError(Te, g.Add(ala))
	require.NoError(Te, g.Add(w.Molecule()))
	require.NoError(Te, g.Add(gly))
	assert.Equal(Te, uint64(4), g.MajorVersion())
	assert.Equal(Te, 2, g.NMolecules())
	assert.Equal(Te, 4, g.NViews())

	added, err := g.AddIfUnique(gly)
	require.NoError(Te, err)
	assert.False(Te, added)
	assert.Equal(Te, uint64(4), g.MajorVersion())

	changed, err := g.Update(d)
	require.NoError(Te, err)
	assert.False(Te, changed)
	assert.Equal(Te, uint64(0), g.MinorVersion())
	nd, err := d.SetProperty("note", "updated")
	require.NoError(Te, err)
	changed, err = g.Update(nd)
	require.NoError(Te, err)
	assert.True(Te, changed)
	assert.Equal(Te, uint64(1), g.MinorVersion())
	changed, err = g.Update(nd)
	require.NoError(Te, err)
	assert.False(Te, changed)
	assert.Equal(Te, Version{Major: 4, Minor: 1}, g.Version())

	ed := d.Molecule().Edit()
	require.NoError(Te, MoleculeCutting{}.Cut(ed))
	m, err := ed.Commit()
	require.NoError(Te, err)
	_, err = g.Update(m.Data())
	requireKind(Te, err, KindIncompatible)
	assert.Equal(Te, Version{Major: 4, Minor: 1}, g.Version())
}

func TestMoleculeGroupOrder(Te *testing.T) {
	d := testMolecule(Te)
	w := waterMolecule(Te)
	ala, gly := residues(Te, d)
	g := NewMoleculeGroup("system")
	for _, v := range []MoleculeView{d.Molecule(), w.Molecule(), ala, gly, ala} {
		require.NoError(Te, g.Add(v))
	}
	assert.Equal(Te, []MolNum{d.Number(), w.Number()}, g.MolNums())
	first, err := g.MoleculeAt(0)
	require.NoError(Te, err)
	assert.Equal(Te, 4, first.NViews())
	lastmol, err := g.MoleculeAt(-1)
	require.NoError(Te, err)
	assert.Equal(Te, w.Number(), lastmol.MolNum())
	_, err = g.MoleculeAt(2)
	requireKind(Te, err, KindInvalidIndex)

	removed, err := g.Remove(ala)
	require.NoError(Te, err)
	assert.True(Te, removed)
	assert.Equal(Te, uint64(6), g.MajorVersion())
	require.Equal(Te, 3, g.NViews())
	want := []MoleculeView{d.Molecule(), w.Molecule(), gly}
	for i, v := range want {
		got, err := g.ViewAt(i)
		require.NoError(Te, err)
		assert.True(Te, SameView(PartialOf(v), got), "view %d", i)
	}
	_, err = g.ViewAt(3)
	requireKind(Te, err, KindInvalidIndex)

	removed, err = g.Remove(ala)
	require.NoError(Te, err)
	assert.False(Te, removed)
	assert.Equal(Te, uint64(6), g.MajorVersion())

	assert.True(Te, g.RemoveMolNum(w.Number()))
	assert.False(Te, g.RemoveMolNum(w.Number()))
	assert.Equal(Te, 1, g.NMolecules())
	assert.Equal(Te, 2, g.NViews())
	got, err := g.ViewAt(-1)
	require.NoError(Te, err)
	assert.True(Te, SameView(gly, got))

	g.Clear()
	assert.Equal(Te, 0, g.NMolecules())
	assert.Equal(Te, uint64(8), g.MajorVersion())
	g.Clear()
	assert.Equal(Te, uint64(8), g.MajorVersion())
}

func TestMoleculeGroupConcurrent(Te *testing.T) {
	g := NewMoleculeGroup("concurrent")
	mols := make([]*MoleculeData, 8)
	for i := range mols {
		mols[i] = waterMolecule(Te)
	}
	var wg sync.WaitGroup
	for _, d := range mols {
		wg.Add(1)
		go func(d *MoleculeData) {
			defer wg.Done()
			assert.NoError(Te, g.Add(d.Molecule()))
			_ = g.NViews()
		}(d)
	}
	wg.Wait()
	assert.Equal(Te, 8, g.NMolecules())
	assert.Equal(Te, uint64(8), g.MajorVersion())
	assert.NotEqual(Te, g.Number(), NewMoleculeGroup("other").Number())
}
