/*
 * v3_test.go, part of gosire.
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

package v3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, [3]float64{4, 5, 6}, A.Vec(1))
	_, err = NewMatrix([]float64{1, 2})
	assert.Error(Te, err)
	assert.Equal(Te, 0, Zeros(0).NVecs())
}

func TestSomeAndSetVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1, 2, 2, 2})
	B := A.SomeVecs([]int{2, 0})
	assert.Equal(Te, [3]float64{2, 2, 2}, B.Vec(0))
	assert.Equal(Te, [3]float64{0, 0, 0}, B.Vec(1))
	C := A.Clone()
	C.SetVecs(B, []int{0, 1})
	assert.Equal(Te, [3]float64{2, 2, 2}, C.Vec(0))
	assert.Equal(Te, [3]float64{0, 0, 0}, C.Vec(1))
	//the original is not affected
	assert.Equal(Te, [3]float64{0, 0, 0}, A.Vec(0))
}

func TestTranslate(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	A.AddVec(A, [3]float64{1, 2, 3})
	assert.Equal(Te, [3]float64{2, 3, 4}, A.Vec(1))
	A.SubVec(A, [3]float64{1, 2, 3})
	assert.Equal(Te, [3]float64{1, 1, 1}, A.Vec(1))
	S := Stack(A, A)
	assert.Equal(Te, 4, S.NVecs())
}

//TestRotate rotates the X axis by 90 degrees around Z, which should give the Y axis.
func TestRotate(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 0, 0})
	R, err := RotatorAroundAxis([3]float64{0, 0, 2}, math.Pi/2)
	require.NoError(Te, err)
	A.Rotate(A, R)
	v := A.Vec(0)
	assert.InDelta(Te, 0, v[0], 1e-9)
	assert.InDelta(Te, 1, v[1], 1e-9)
	assert.InDelta(Te, 0, v[2], 1e-9)
	_, err = RotatorAroundAxis([3]float64{0, 0, 0}, 1)
	assert.Error(Te, err)
}

func TestCross(Te *testing.T) {
	assert.Equal(Te, [3]float64{0, 0, 1}, Cross([3]float64{1, 0, 0}, [3]float64{0, 1, 0}))
	assert.InDelta(Te, 5, Norm([3]float64{3, 4, 0}), 1e-12)
}
