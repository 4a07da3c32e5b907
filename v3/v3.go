/*
 * v3.go, part of gosire.
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
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //Everything equal or less than this is considered zero.

//Matrix is a set of vectors in 3D space. Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//Dense2Matrix wraps a gonum Dense with 3 columns. Panics if A doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	if vecs == 0 {
		return &Matrix{&mat.Dense{}}
	}
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	if l == 0 {
		return Zeros(0), nil
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil || F.Dense.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec sets the ith vector to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, v[0])
	F.Set(i, 1, v[1])
	F.Set(i, 2, v[2])
}

//VecView returns view of the given vector of the matrix.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	n := F.NVecs()
	ret := Zeros(n)
	if n > 0 {
		ret.Copy(F.Dense)
	}
	return ret
}

//SomeVecs returns a new matrix contaning all the ith vectors of matrix F,
//where i are the numbers in clist. The vectors are in the same order
//than the clist.
func (F *Matrix) SomeVecs(clist []int) *Matrix {
	ret := Zeros(len(clist))
	for key, val := range clist {
		ret.SetVec(key, F.Vec(val))
	}
	return ret
}

//SetVecs sets the vectors with index n = each value on clist, in the received, to the
//corresponding vector of A (in the order of clist).
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.SetVec(val, A.Vec(key))
	}
}

//AddVec adds the vector vec to each vector of A, putting the result in the receiver.
func (F *Matrix) AddVec(A *Matrix, vec [3]float64) {
	if F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		a := A.Vec(i)
		F.SetVec(i, [3]float64{a[0] + vec[0], a[1] + vec[1], a[2] + vec[2]})
	}
}

//SubVec subtracts the vector vec from each vector of A, putting the result in the receiver.
func (F *Matrix) SubVec(A *Matrix, vec [3]float64) {
	F.AddVec(A, [3]float64{-vec[0], -vec[1], -vec[2]})
}

//Stack puts A stacked over B in a new matrix.
func Stack(A, B *Matrix) *Matrix {
	ar, br := A.NVecs(), B.NVecs()
	F := Zeros(ar + br)
	for i := 0; i < ar; i++ {
		F.SetVec(i, A.Vec(i))
	}
	for i := 0; i < br; i++ {
		F.SetVec(i+ar, B.Vec(i))
	}
	return F
}

//Cross returns the cross product of a and b.
func Cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

//Norm returns the euclidean norm of v.
func Norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

//Unit returns v scaled to norm 1. Returns an error for a zero vector.
func Unit(v [3]float64) ([3]float64, error) {
	n := Norm(v)
	if n <= appzero {
		return v, Error{"Can't normalize a zero vector", []string{"Unit"}, true}
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}, nil
}

//RotatorAroundAxis returns the 3x3 matrix that rotates row vectors by angle radians
//around the given axis (which doesn't need to be normalized). Rotated=Orig*R.
func RotatorAroundAxis(axis [3]float64, angle float64) (*mat.Dense, error) {
	u, err := Unit(axis)
	if err != nil {
		return nil, errDecorate(err, "RotatorAroundAxis")
	}
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	x, y, z := u[0], u[1], u[2]
	//Rodrigues' matrix for column vectors, transposed so it acts on rows.
	R := mat.NewDense(3, 3, []float64{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c,
	})
	return R, nil
}

//Rotate puts in F the vectors of A rotated by the row-acting matrix R
func (F *Matrix) Rotate(A *Matrix, R mat.Matrix) {
	if A.NVecs() == 0 {
		return
	}
	r, c := R.Dims()
	if r != 3 || c != 3 {
		panic(ErrShape)
	}
	tmp := mat.NewDense(A.NVecs(), 3, nil)
	tmp.Mul(A.Dense, R)
	F.Copy(tmp)
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r+2)
	v = append(v, "[")
	for i := 0; i < r; i++ {
		row := F.Vec(i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}
