/*
 * histo_test.go, part of gochem.
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

package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxis(Te *testing.T) {
	a := Axis(-3, 11, 8)
	assert.Len(Te, a, 8)
	assert.Equal(Te, -3.0, a[0])
	assert.Equal(Te, 11.0, a[7])
	assert.InDelta(Te, 2.0, a[1]-a[0], 1e-12)
	assert.Panics(Te, func() { Axis(0, 1, 1) })
	assert.Panics(Te, func() { Axis(1, 1, 5) })
}

func TestSmearingIntegral(Te *testing.T) {
	axis := Axis(-3, 11, 500)
	n := NewData(axis, 1, true, 0)
	n.AddData(1, 2, 6)
	assert.InDelta(Te, 2, n.Integral(), 1e-3)
	u := NewData(axis, 1, false, 1)
	u.AddWeighted([]float64{2, 6}, []float64{1, 0.5})
	assert.InDelta(Te, 1.5*math.Sqrt(2*math.Pi), u.Integral(), 1e-2)
	x, peak := u.Peak()
	assert.InDelta(Te, 2, x, 0.05)
	assert.InDelta(Te, 1, peak, 1e-3)
	assert.Equal(Te, 2, u.Total())
	assert.Panics(Te, func() { u.AddWeighted([]float64{1}, nil) })
	assert.Panics(Te, func() { NewData(axis, 0, true) })
}

func TestGaussian(Te *testing.T) {
	assert.InDelta(Te, 1/math.Sqrt(2*math.Pi), Gaussian(0, 0, 1, true), 1e-15)
	assert.Equal(Te, 1.0, Gaussian(3, 3, 0.2, false))
	assert.InDelta(Te, math.Exp(-0.5), Gaussian(1, 0, 1, false), 1e-15)
}

func TestCopyScaleAdd(Te *testing.T) {
	axis := Axis(0, 1, 11)
	a := NewData(axis, 0.1, false)
	a.AddData(2, 0.5)
	b := a.Copy()
	b.Scale(0.5)
	_, pa := a.Peak()
	_, pb := b.Peak()
	assert.InDelta(Te, 2, pa, 1e-12)
	assert.InDelta(Te, 1, pb, 1e-12)
	c := NewData(axis, 0.1, false)
	c.Add(a, b)
	assert.InDelta(Te, a.Sum()+b.Sum(), c.Sum(), 1e-12)
	assert.Equal(Te, -1, a.ID())
}

func TestMatrixIO(Te *testing.T) {
	fmt.Println("Curve matrix JSON output test!")
	M := NewMatrix(2, 3, Axis(0, 8, 9), 0.5, true)
	M.AddData(0, 1, 1, 1, 6, 3)
	M.AddData(1, 2, 0.5, 4)
	v := M.View(0, 1)
	assert.Equal(Te, 3, v.Total())
	assert.Error(Te, M.Check(2, 0))
	d := M.Dense()
	r, c := d.Dims()
	assert.Equal(Te, 6, r)
	assert.Equal(Te, 9, c)
	assert.Equal(Te, v.View()[3], d.At(1, 3))
	j, err := json.Marshal(M)
	require.NoError(Te, err)
	M2 := new(Matrix)
	require.NoError(Te, json.Unmarshal(j, M2))
	r2, c2 := M2.Dims()
	assert.Equal(Te, 2, r2)
	assert.Equal(Te, 3, c2)
	assert.Equal(Te, M.View(1, 2).View(), M2.View(1, 2).View())
	sum := v.Sum()
	M.Scale(0.25)
	assert.InDelta(Te, sum/4, M.View(0, 1).Sum(), 1e-12)
	assert.Equal(Te, 0.0, M.View(0, 0).Sum())
}
