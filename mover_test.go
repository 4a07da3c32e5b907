/*
 * mover_test.go, part of gosire.
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
	"math"
	"testing"

	v3 "github.com/rmera/gosire/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMover(Te *testing.T) {
	d := testMolecule(Te)
	_, gly := residues(Te, d)
	mv, err := gly.Move(nil)
	require.NoError(Te, err)
	mv.Translate([3]float64{0, 1, 0})
	assert.Equal(Te, [3]float64{3, 1, 0}, mv.Coordinates().Vec(0))
	nd, err := mv.Commit()
	require.NoError(Te, err)
	assert.Equal(Te, d.Number(), nd.Number())
	assert.Equal(Te, d.Version().Major, nd.Version().Major)
	assert.Greater(Te, nd.Version().Minor, d.Version().Minor)
	assert.Same(Te, d.Info(), nd.Info())

	c, err := nd.Coordinates(nil)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{2, 0, 0}, c.Vec(2))
	assert.Equal(Te, [3]float64{3, 1, 0}, c.Vec(3))
	assert.Equal(Te, [3]float64{4, 1, 0}, c.Vec(4))
	old, err := d.Coordinates(nil)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{3, 0, 0}, old.Vec(3))
}

func TestMoverRotate(Te *testing.T) {
	d := testMolecule(Te)
	mv, err := d.Molecule().Move(nil)
	require.NoError(Te, err)
	center := [3]float64{1, 0, 0}
	require.NoError(Te, mv.Rotate([3]float64{0, 0, 1}, math.Pi/2, center))
	c := mv.Coordinates()
	for i := 0; i < c.NVecs(); i++ {
		v := c.Vec(i)
		dist := math.Hypot(v[0]-center[0], v[1]-center[1])
		assert.InDelta(Te, math.Abs(float64(i)-1), dist, 1e-9, "atom %d", i)
		assert.InDelta(Te, 1, v[0], 1e-9, "atom %d", i)
	}
	require.Error(Te, mv.Rotate([3]float64{}, 1, center))

	requireKind(Te, mv.SetCoordinates(v3.Zeros(2)), KindIncompatible)
	require.NoError(Te, mv.SetCoordinates(v3.Zeros(6)))
	nd, err := mv.Commit()
	require.NoError(Te, err)
	c, err = nd.Coordinates(nil)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{}, c.Vec(5))
}

func TestMoverNoCoordinates(Te *testing.T) {
	d, err := testMolecule(Te).RemoveProperty(CoordinatesKey)
	require.NoError(Te, err)
	_, err = d.Molecule().Move(nil)
	requireKind(Te, err, KindMissingProperty)

	//Coordinates can be read from another property.
	d2, err := testMolecule(Te).SetProperty("minimized", NewAtomCoords(v3.Zeros(6)))
	require.NoError(Te, err)
	pm := ParameterMap{}.With(CoordinatesKey, "minimized")
	mv, err := d2.Molecule().Move(pm)
	require.NoError(Te, err)
	mv.Translate([3]float64{1, 1, 1})
	nd, err := mv.Commit()
	require.NoError(Te, err)
	moved, err := nd.Coordinates(pm)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{1, 1, 1}, moved.Vec(0))
	orig, err := nd.Coordinates(nil)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{5, 0, 0}, orig.Vec(5))
}
