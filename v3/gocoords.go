/*
 * gocoords.go, part of gochem.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//METHODS

// SwapVecs swaps the vectors i and j of F.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic(ErrShape)
	}
	vi := F.Vec(i)
	F.SetVec(i, F.Vec(j))
	F.SetVec(j, vi)
}

// AddVec adds the row vector vec to each vector of A, putting the result on the receiver.
// Panics if the matrices are mismatched.
func (F *Matrix) AddVec(A *Matrix, vec r3.Vec) {
	ar := A.NVecs()
	if F.NVecs() != ar {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Add(A.Vec(i), vec))
	}
}

// SubVec subtracts the vector vec from each vector of A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A *Matrix, vec r3.Vec) {
	F.AddVec(A, r3.Scale(-1, vec))
}

// DelVec puts in F a copy of A without the vector i.
func (F *Matrix) DelVec(A *Matrix, i int) {
	ar := A.NVecs()
	if i >= ar || F.NVecs() != ar-1 {
		panic(ErrShape)
	}
	for j, k := 0, 0; j < ar; j++ {
		if j == i {
			continue
		}
		F.SetVec(k, A.Vec(j))
		k++
	}
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is an alias for NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// SetVecs sets the vectors whith index n = each value on clist, in the received to the
// n vector of A.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if F.NVecs() < len(clist) || A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.SetVec(val, A.Vec(key))
	}
}

// SomeVecs puts in F a matrix contaning all the ith vectors of matrix A,
// where i are the numbers in clist. The vectors are in the same order
// than the clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	ar := A.NVecs()
	for key, val := range clist {
		if val >= ar || val < 0 {
			panic(ErrNotEnoughElements)
		}
		F.SetVec(key, A.Vec(val))
	}
}

// SomeVecsSafe is the same as SomeVecs, but returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = Error{string(e), []string{"SomeVecsSafe"}, true}
			case mat.Error:
				err = Error{fmt.Sprintf("goChem/v3: Error in a gonum function: %s", e), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return err
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	for i := 0; i < r; i++ {
		row := F.Vec(i)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row.X, row.Y, row.Z)
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row.X, row.Y, row.Z)
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row.X, row.Y, row.Z)
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

// Cross puts the cross product of the first vecs of a and b in the first vec of F. Panics if error.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	F.SetVec(0, r3.Cross(a.Vec(0), b.Vec(0)))
}

// Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() r3.Vec {
	var c r3.Vec
	n := F.NVecs()
	if n == 0 {
		return c
	}
	for i := 0; i < n; i++ {
		c = r3.Add(c, F.Vec(i))
	}
	return r3.Scale(1/float64(n), c)
}

// BoundingBox returns the minimum and maximum corners of the box
// that contains all the vectors in F.
func (F *Matrix) BoundingBox() (min, max r3.Vec) {
	n := F.NVecs()
	if n == 0 {
		return
	}
	min = F.Vec(0)
	max = min
	for i := 1; i < n; i++ {
		v := F.Vec(i)
		min = r3.Vec{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y), Z: math.Min(min.Z, v.Z)}
		max = r3.Vec{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y), Z: math.Max(max.Z, v.Z)}
	}
	return min, max
}

// KronekerDelta is a naive implementation of the kroneker delta function.
func KronekerDelta(a, b, epsilon float64) float64 {
	if epsilon < 0 {
		epsilon = appzero
	}
	if math.Abs(a-b) <= epsilon {
		return 1
	}
	return 0
}
