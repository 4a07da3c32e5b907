/*
 * evaluator_test.go, part of gosire.
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

func TestEvaluator(Te *testing.T) {
	d := testMolecule(Te)
	ala, _ := residues(Te, d)
	e := ala.Evaluate(nil)
	cog, err := e.CenterOfGeometry()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{1, 0, 0}, cog[:], 1e-9)
	m, err := e.Mass()
	require.NoError(Te, err)
	assert.InDelta(Te, 14.01+2*12.01, m, 1e-9)
	com, err := e.CenterOfMass()
	require.NoError(Te, err)
	assert.InDelta(Te, (12.01*1+12.01*2)/m, com[0], 1e-9)

	lo, hi, err := d.Molecule().Evaluate(nil).AABox()
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{0, 0, 0}, lo)
	assert.Equal(Te, [3]float64{5, 0, 0}, hi)

	empty, err := NewPartialMolecule(d, SelectNone(d.Info()))
	require.NoError(Te, err)
	_, err = empty.Evaluate(nil).CenterOfGeometry()
	requireKind(Te, err, KindMissing)
}

func TestEvaluatorGuessedMasses(Te *testing.T) {
	d, err := testMolecule(Te).RemoveProperty(ElementKey)
	require.NoError(Te, err)
	zn, err := d.Molecule().Atom(AtomName("ZN"))
	require.NoError(Te, err)
	masses, err := zn.Evaluate(nil).Masses()
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, []float64{65.38}, masses, 1e-9)

	w := waterMolecule(Te)
	m, err := w.Molecule().Evaluate(nil).Mass()
	require.NoError(Te, err)
	h, _ := Mass("H")
	o, _ := Mass("O")
	assert.InDelta(Te, o+2*h, m, 1e-9)
}
