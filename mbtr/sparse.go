/*
 * sparse.go, part of gochem.
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

package mbtr

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// SparseVector is a vector in coordinate format: only the non-zero values are stored,
// together with their positions, in ascending order.
type SparseVector struct {
	Dim     int       `json:"dim"`
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// NewSparseVector returns the sparse form of the dense vector d.
func NewSparseVector(d []float64) *SparseVector {
	ret := &SparseVector{Dim: len(d)}
	for i, v := range d {
		if v != 0 {
			ret.Indices = append(ret.Indices, i)
			ret.Values = append(ret.Values, v)
		}
	}
	return ret
}

// Nnz returns the number of stored values.
func (S *SparseVector) Nnz() int {
	return len(S.Values)
}

// At returns the ith element of the vector.
func (S *SparseVector) At(i int) float64 {
	if i < 0 || i >= S.Dim {
		panic(fmt.Sprintf("goChem/mbtr: Index %d out of range for a vector of dimension %d", i, S.Dim))
	}
	for j, idx := range S.Indices {
		if idx == i {
			return S.Values[j]
		}
		if idx > i {
			break
		}
	}
	return 0
}

// ToDense returns the vector in dense form.
func (S *SparseVector) ToDense() []float64 {
	ret := make([]float64, S.Dim)
	for j, idx := range S.Indices {
		ret[idx] = S.Values[j]
	}
	return ret
}

// Dot returns the dot product of S and o. It panics if the dimensions differ.
func (S *SparseVector) Dot(o *SparseVector) float64 {
	if S.Dim != o.Dim {
		panic(fmt.Sprintf("goChem/mbtr: Dot product of vectors with dimensions %d and %d", S.Dim, o.Dim))
	}
	var ret float64
	i, j := 0, 0
	for i < len(S.Indices) && j < len(o.Indices) {
		switch {
		case S.Indices[i] < o.Indices[j]:
			i++
		case S.Indices[i] > o.Indices[j]:
			j++
		default:
			ret += S.Values[i] * o.Values[j]
			i++
			j++
		}
	}
	return ret
}

// Norm returns the euclidean norm of the vector.
func (S *SparseVector) Norm() float64 {
	return floats.Norm(S.Values, 2)
}
