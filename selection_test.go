/*
 * selection_test.go, part of gosire.
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

func TestAtomSelection(Te *testing.T) {
	info := testMolecule(Te).Info()
	none := SelectNone(info)
	all := SelectAll(info)
	assert.True(Te, none.SelectedNone())
	assert.True(Te, all.SelectedAll())
	assert.Equal(Te, 6, all.NSelected())

	ala, err := SelectAtoms(info, []AtomIdx{0, 1, 2})
	require.NoError(Te, err)
	gly, err := SelectAtoms(info, []AtomIdx{3, -2})
	require.NoError(Te, err)
	assert.Equal(Te, []AtomIdx{3, 4}, gly.Indexes())
	_, err = SelectAtoms(info, []AtomIdx{6})
	requireKind(Te, err, KindInvalidIndex)

	u, err := ala.Unite(ala)
	require.NoError(Te, err)
	assert.True(Te, u.Equal(ala))
	u, err = ala.Unite(gly)
	require.NoError(Te, err)
	assert.Equal(Te, 5, u.NSelected())
	assert.True(Te, u.Contains(ala))
	assert.False(Te, ala.Contains(u))
	assert.False(Te, ala.Intersects(gly))
	assert.True(Te, u.Intersects(gly))

	i, err := u.Intersect(gly)
	require.NoError(Te, err)
	assert.True(Te, i.Equal(gly))
	s, err := u.Subtract(gly)
	require.NoError(Te, err)
	assert.True(Te, s.Equal(ala))
	assert.Equal(Te, []AtomIdx{5}, u.Invert().Indexes())
	assert.True(Te, all.Invert().SelectedNone())

	//Selections are values.
	zn, err := none.Select(-1)
	require.NoError(Te, err)
	assert.True(Te, zn.Selected(5))
	assert.False(Te, none.Selected(5))
	back, err := zn.Deselect(5)
	require.NoError(Te, err)
	assert.True(Te, back.SelectedNone())
	assert.Equal(Te, 1, zn.NSelected())
	_, err = none.Select(10)
	requireKind(Te, err, KindInvalidIndex)
	assert.False(Te, none.Selected(10))
}

func TestAtomSelectionLayouts(Te *testing.T) {
	a := SelectAll(testMolecule(Te).Info())
	b := SelectAll(waterMolecule(Te).Info())
	assert.False(Te, a.IsCompatible(b))
	_, err := a.Unite(b)
	requireKind(Te, err, KindIncompatible)
	_, err = a.Intersect(b)
	requireKind(Te, err, KindIncompatible)
	_, err = a.Subtract(b)
	requireKind(Te, err, KindIncompatible)
	assert.False(Te, a.Contains(b))
	assert.False(Te, a.Equal(b))

	//Another molecule with the same layout is compatible.
	c := SelectAll(testMolecule(Te).Info())
	assert.True(Te, a.IsCompatible(c))
	assert.True(Te, a.Equal(c))
}
