/*
 * molgraph_test.go, part of gosire.
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

package molgraph

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rmera/gosire"
	"github.com/rmera/gosire/pdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixAtom struct {
	name, res, chain string
	resseq           int
	x, y, z          float64
}

func fixture(Te *testing.T, opts pdb.Options, atoms ...fixAtom) *mol.MoleculeData {
	var b strings.Builder
	for i, a := range atoms {
		fmt.Fprintf(&b, "ATOM  %5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f  1.00  0.00\n", i+1, " "+a.name, a.res, a.chain, a.resseq, a.x, a.y, a.z)
	}
	mols, err := pdb.Read(strings.NewReader(b.String()), opts)
	require.NoError(Te, err)
	require.Len(Te, mols, 1)
	return mols[0]
}

var dipeptideWater = []fixAtom{
	{"N", "ALA", "A", 1, 0, 0, 0},
	{"CA", "ALA", "A", 1, 1.45, 0, 0},
	{"C", "ALA", "A", 1, 2.0, 1.4, 0},
	{"N", "GLY", "A", 2, 3.3, 1.5, 0},
	{"CA", "GLY", "A", 2, 4.0, 2.7, 0},
	{"O", "HOH", "B", 1, 10, 10, 10},
	{"H1", "HOH", "B", 1, 10.96, 10, 10},
	{"H2", "HOH", "B", 1, 9.76, 10.93, 10},
}

func TestBonds(Te *testing.T) {
	d := fixture(Te, pdb.Options{}, dipeptideWater...)
	t, err := New(d, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 6, t.NBonds())
	assert.True(Te, t.Bonded(0, 1))
	assert.True(Te, t.Bonded(2, 3))
	assert.False(Te, t.Bonded(0, 2))
	assert.False(Te, t.Bonded(6, 7))
	assert.False(Te, t.Bonded(1, 1))
	assert.Equal(Te, []mol.AtomIdx{1, 3}, t.BondsOf(2))
	l, ok := t.Length(0, 1)
	assert.True(Te, ok)
	assert.InDelta(Te, 1.45, l, 1e-3)
	_, ok = t.Length(0, 4)
	assert.False(Te, ok)
}

func TestAdjacency(Te *testing.T) {
	d := fixture(Te, pdb.Options{}, dipeptideWater...)
	t, err := New(d, nil)
	require.NoError(Te, err)
	assert.True(Te, t.ResiduesBonded(0, 1))
	assert.False(Te, t.ResiduesBonded(0, 0))
	assert.False(Te, t.ResiduesBonded(1, 2))
	assert.Equal(Te, []mol.ResIdx{1}, t.ConnectedResidues(0))
	assert.Empty(Te, t.ConnectedResidues(2))
	assert.False(Te, t.ChainsBonded(0, 1))
	assert.Equal(Te, [][]mol.AtomIdx{{0, 1, 2, 3, 4}, {5, 6, 7}}, t.Fragments())
	assert.Equal(Te, []mol.AtomIdx{0, 1, 2, 3, 4}, t.ShortestPath(0, 4))
	assert.Nil(Te, t.ShortestPath(0, 5))
}

func TestMaxBonds(Te *testing.T) {
	d := fixture(Te, pdb.Options{},
		fixAtom{"H", "LIG", "A", 1, 0, 0, 0},
		fixAtom{"C1", "LIG", "A", 1, 1.0, 0, 0},
		fixAtom{"C2", "LIG", "A", 1, -1.1, 0, 0},
	)
	t, err := New(d, nil)
	require.NoError(Te, err)
	assert.Equal(Te, []mol.AtomIdx{1}, t.BondsOf(0))
	assert.Equal(Te, 1, t.NBonds())
}

func TestUnknownElement(Te *testing.T) {
	d := fixture(Te, pdb.Options{}, fixAtom{"XX", "LIG", "A", 1, 0, 0, 0})
	_, err := New(d, nil)
	assert.Error(Te, err)
}

func TestFragmentCutting(Te *testing.T) {
	d := fixture(Te, pdb.Options{Cutting: FragmentCutting{}}, dipeptideWater...)
	info := d.Info()
	require.Equal(Te, 2, info.NCutGroups())
	assert.Equal(Te, mol.CGName("FRAG:1"), info.CGName(0))
	assert.Equal(Te, []mol.AtomIdx{0, 1, 2, 3, 4}, info.AtomsInCutGroup(0))
	assert.Equal(Te, []mol.AtomIdx{5, 6, 7}, info.AtomsInCutGroup(1))
}
