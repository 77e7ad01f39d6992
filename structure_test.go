/*
 * structure_test.go, part of gochem.
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

package chem

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	v3 "github.com/rmera/gochemdesc/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func water(Te *testing.T) *Structure {
	angle := Deg2Rad(76)
	coords, err := v3.NewMatrix([]float64{
		0, 0, 0,
		0.95, 0, 0,
		0.95 * (1 + math.Cos(angle)), 0.95 * math.Sin(angle), 0,
	})
	require.NoError(Te, err)
	ats := []*Atom{{Symbol: "H"}, {Symbol: "O"}, {Symbol: "H"}}
	s, err := NewStructure(ats, coords, nil, [3]bool{})
	require.NoError(Te, err)
	return s
}

func cubic(a float64) *v3.Matrix {
	cell, _ := v3.NewMatrix([]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	return cell
}

func TestSymbols(Te *testing.T) {
	z, err := SymbolToZ("cl")
	require.NoError(Te, err)
	assert.Equal(Te, 17, z)
	s, err := ZToSymbol(118)
	require.NoError(Te, err)
	assert.Equal(Te, "Og", s)
	_, err = SymbolToZ("Xx")
	assert.Error(Te, err)
	_, err = ZToSymbol(0)
	assert.Error(Te, err)
	assert.Equal(Te, 118, MaxZ())
}

func TestNewStructure(Te *testing.T) {
	s := water(Te)
	assert.Equal(Te, 3, s.Len())
	assert.Equal(Te, 8, s.Atom(1).Z)
	assert.Equal(Te, []int{1, 8}, s.Species())
	assert.Nil(Te, s.Cell())
	_, err := s.Volume()
	assert.Error(Te, err)

	coords, _ := v3.NewMatrix([]float64{0, 0, 0})
	_, err = NewStructure([]*Atom{{Z: 1}}, coords, nil, [3]bool{true, false, false})
	assert.Error(Te, err, "periodic axes need a cell")
	_, err = NewStructure([]*Atom{{Z: 1}, {Z: 1}}, coords, nil, [3]bool{})
	assert.Error(Te, err, "atom and coordinate counts differ")
	_, err = NewStructure([]*Atom{{}}, coords, nil, [3]bool{})
	assert.Error(Te, err, "atoms need an element")
}

func TestWrapRepeat(Te *testing.T) {
	scaled, _ := v3.NewMatrix([]float64{0.1, 0.5, 0.5, 0.9, 0.5, 0.5})
	s, err := NewStructureScaled([]*Atom{{Z: 1}, {Z: 6}}, scaled, cubic(10), [3]bool{true, true, true})
	require.NoError(Te, err)
	v, err := s.Volume()
	require.NoError(Te, err)
	assert.InDelta(Te, 1000, v, 1e-9)

	moved := s.Copy()
	moved.Translate(r3.Vec{X: 5})
	assert.InDelta(Te, 14, moved.Coords().At(1, 0), 1e-12)
	require.NoError(Te, moved.Wrap())
	assert.InDelta(Te, 4, moved.Coords().At(1, 0), 1e-9)
	assert.InDelta(Te, 6, moved.Coords().At(0, 0), 1e-9)
	assert.InDelta(Te, 1, s.Coords().At(0, 0), 1e-12, "the copy must not share coordinates")

	sup, err := s.Repeat([3]int{2, 2, 2})
	require.NoError(Te, err)
	assert.Equal(Te, 16, sup.Len())
	sv, _ := sup.Volume()
	assert.InDelta(Te, 8000, sv, 1e-6)
	_, err = s.Repeat([3]int{0, 1, 1})
	assert.Error(Te, err)

	sub, err := s.SomeAtoms([]int{1})
	require.NoError(Te, err)
	assert.Equal(Te, 6, sub.Atom(0).Z)
	assert.NotNil(Te, sub.Cell())
	_, err = s.SomeAtoms([]int{3})
	assert.Error(Te, err)
}

func TestRotate(Te *testing.T) {
	s := water(Te)
	d := r3.Norm(r3.Sub(s.Coords().Vec(0), s.Coords().Vec(2)))
	s.Rotate(r3.NewRotation(0.7, r3.Vec{X: 1, Y: 1, Z: 0}))
	d2 := r3.Norm(r3.Sub(s.Coords().Vec(0), s.Coords().Vec(2)))
	assert.InDelta(Te, d, d2, 1e-12)
}

func TestXYZ(Te *testing.T) {
	scaled, _ := v3.NewMatrix([]float64{0.1, 0.5, 0.5, 0.9, 0.5, 0.5})
	s, err := NewStructureScaled([]*Atom{{Z: 1}, {Z: 6}}, scaled, cubic(10), [3]bool{true, false, true})
	require.NoError(Te, err)
	var buf bytes.Buffer
	require.NoError(Te, XYZFileWrite(&buf, s))
	assert.True(Te, strings.Contains(buf.String(), `pbc="T F T"`))
	r, err := XYZFileRead(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, s.PBC(), r.PBC())
	assert.Equal(Te, "C", r.Atom(1).Symbol)
	assert.InDelta(Te, 9, r.Coords().At(1, 0), 1e-6)
	assert.InDelta(Te, 10, r.Cell().At(2, 2), 1e-12)

	name := filepath.Join(Te.TempDir(), "water.xyz")
	require.NoError(Te, XYZWrite(name, water(Te)))
	w, err := XYZRead(name)
	require.NoError(Te, err)
	assert.Nil(Te, w.Cell())
	assert.Equal(Te, 3, w.Len())

	lat, err := XYZFileRead(strings.NewReader("1\nLattice=\"5 0 0 0 5 0 0 0 5\"\n8 0.0 0.0 0.0\n"))
	require.NoError(Te, err)
	assert.Equal(Te, [3]bool{true, true, true}, lat.PBC())
	assert.Equal(Te, "O", lat.Atom(0).Symbol)

	_, err = XYZFileRead(strings.NewReader("2\n\nH 0 0 0\n"))
	assert.Error(Te, err)
	_, err = XYZFileRead(strings.NewReader("x\n\n"))
	assert.Error(Te, err)
}
