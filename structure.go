/*
 * structure.go, part of gochem.
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
	"fmt"
	"math"

	v3 "github.com/rmera/gochemdesc/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Structure is an atomic structure with one set of coordinates and, optionally,
// a cell. It implements Structurer.
type Structure struct {
	*Topology
	coords *v3.Matrix
	cell   *v3.Matrix
	pbc    [3]bool
}

// NewStructure builds a structure from atoms, coordinates (one row per atom),
// cell (lattice vectors as rows, or nil) and the periodicity of each cell axis.
// Setting a periodic axis without a cell is an error. The coordinates and cell
// are not copied.
func NewStructure(ats []*Atom, coords, cell *v3.Matrix, pbc [3]bool) (*Structure, error) {
	top, err := NewTopology(ats)
	if err != nil {
		return nil, errDecorate(err, "NewStructure")
	}
	if coords == nil {
		return nil, CError{"goChem: Nil coordinates", []string{"NewStructure"}}
	}
	if coords.NVecs() != top.Len() {
		return nil, CError{fmt.Sprintf("goChem: %d atoms but %d coordinates", top.Len(), coords.NVecs()), []string{"NewStructure"}}
	}
	if cell != nil && cell.NVecs() != 3 {
		return nil, CError{"goChem: The cell must have exactly 3 vectors", []string{"NewStructure"}}
	}
	if cell == nil && (pbc[0] || pbc[1] || pbc[2]) {
		return nil, CError{"goChem: Periodic axes given without a cell", []string{"NewStructure"}}
	}
	return &Structure{Topology: top, coords: coords, cell: cell, pbc: pbc}, nil
}

// NewStructureScaled is like NewStructure, but the positions are given in fractions of
// the cell vectors.
func NewStructureScaled(ats []*Atom, scaled, cell *v3.Matrix, pbc [3]bool) (*Structure, error) {
	if cell == nil || scaled == nil {
		return nil, CError{"goChem: Scaled positions need a cell", []string{"NewStructureScaled"}}
	}
	coords := v3.Zeros(scaled.NVecs())
	coords.Mul(scaled, cell)
	s, err := NewStructure(ats, coords, cell, pbc)
	if err != nil {
		return nil, errDecorate(err, "NewStructureScaled")
	}
	return s, nil
}

// Coords returns the cartesian coordinates of the structure.
func (S *Structure) Coords() *v3.Matrix { return S.coords }

// Cell returns the cell vectors, or nil.
func (S *Structure) Cell() *v3.Matrix { return S.cell }

// PBC returns the periodicity of each cell axis.
func (S *Structure) PBC() [3]bool { return S.pbc }

// SetPBC sets the periodicity flags. It panics if the structure
// has no cell and any flag is true.
func (S *Structure) SetPBC(pbc [3]bool) {
	if S.cell == nil && (pbc[0] || pbc[1] || pbc[2]) {
		panic(ErrNilData)
	}
	S.pbc = pbc
}

// Volume returns the absolute value of the determinant of the cell.
func (S *Structure) Volume() (float64, error) {
	if S.cell == nil {
		return 0, CError{"goChem: Structure has no cell", []string{"Volume"}}
	}
	return math.Abs(v3.Det(S.cell)), nil
}

// Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	ret := &Structure{Topology: &Topology{Atoms: S.CopyAtoms()}, pbc: S.pbc}
	ret.coords = v3.Zeros(S.coords.NVecs())
	ret.coords.Copy(S.coords)
	if S.cell != nil {
		ret.cell = v3.Zeros(3)
		ret.cell.Copy(S.cell)
	}
	return ret
}

// Translate moves all the atoms by t.
func (S *Structure) Translate(t r3.Vec) {
	S.coords.AddVec(S.coords, t)
}

// ScaledPositions returns the positions in fractions of the cell vectors.
func (S *Structure) ScaledPositions() (*v3.Matrix, error) {
	if S.cell == nil {
		return nil, CError{"goChem: Structure has no cell", []string{"ScaledPositions"}}
	}
	inv, err := v3.Inverse(S.cell, -1)
	if err != nil {
		return nil, errDecorate(err, "ScaledPositions")
	}
	scaled := v3.Zeros(S.coords.NVecs())
	scaled.Mul(S.coords, inv)
	return scaled, nil
}

// Wrap puts every atom back inside the cell along the periodic axes.
func (S *Structure) Wrap() error {
	scaled, err := S.ScaledPositions()
	if err != nil {
		return errDecorate(err, "Wrap")
	}
	r, _ := scaled.Dims()
	for i := 0; i < r; i++ {
		for k := 0; k < 3; k++ {
			if !S.pbc[k] {
				continue
			}
			f := scaled.At(i, k)
			f -= math.Floor(f)
			if f >= 1 {
				f = 0
			}
			scaled.Set(i, k, f)
		}
	}
	S.coords.Mul(scaled, S.cell)
	return nil
}

// Repeat builds a supercell with n[k] copies of the structure along the
// kth cell vector.
func (S *Structure) Repeat(n [3]int) (*Structure, error) {
	if S.cell == nil {
		return nil, CError{"goChem: Structure has no cell", []string{"Repeat"}}
	}
	if n[0] < 1 || n[1] < 1 || n[2] < 1 {
		return nil, CError{fmt.Sprintf("goChem: Invalid repetitions %v", n), []string{"Repeat"}}
	}
	nat := S.Len()
	reps := n[0] * n[1] * n[2]
	ats := make([]*Atom, 0, nat*reps)
	coords := v3.Zeros(nat * reps)
	a, b, c := S.cell.Vec(0), S.cell.Vec(1), S.cell.Vec(2)
	idx := 0
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			for k := 0; k < n[2]; k++ {
				t := r3.Add(r3.Add(r3.Scale(float64(i), a), r3.Scale(float64(j), b)), r3.Scale(float64(k), c))
				for l := 0; l < nat; l++ {
					ats = append(ats, S.Atom(l).Copy())
					coords.SetVec(idx, r3.Add(S.coords.Vec(l), t))
					idx++
				}
			}
		}
	}
	cell := v3.Zeros(3)
	cell.SetVec(0, r3.Scale(float64(n[0]), a))
	cell.SetVec(1, r3.Scale(float64(n[1]), b))
	cell.SetVec(2, r3.Scale(float64(n[2]), c))
	return &Structure{Topology: &Topology{Atoms: ats}, coords: coords, cell: cell, pbc: S.pbc}, nil
}

// SomeAtoms returns a new structure containing copies of the atoms in list, in that order.
// The cell and periodicity are kept.
func (S *Structure) SomeAtoms(list []int) (*Structure, error) {
	if len(list) == 0 {
		return nil, CError{"goChem: Empty atom list", []string{"SomeAtoms"}}
	}
	ats := make([]*Atom, len(list))
	for i, v := range list {
		if v < 0 || v >= S.Len() {
			return nil, CError{fmt.Sprintf("goChem: Atom index %d out of range", v), []string{"SomeAtoms"}}
		}
		ats[i] = S.Atom(v).Copy()
	}
	coords := v3.Zeros(len(list))
	coords.SomeVecs(S.coords, list)
	ret := &Structure{Topology: &Topology{Atoms: ats}, coords: coords, pbc: S.pbc}
	if S.cell != nil {
		ret.cell = v3.Dense2Matrix(mat.DenseCopyOf(S.cell.Dense))
	}
	return ret, nil
}

// Rotate applies the rotation r about the origin to all the atoms and to the cell vectors.
func (S *Structure) Rotate(r r3.Rotation) {
	for i := 0; i < S.coords.NVecs(); i++ {
		S.coords.SetVec(i, r.Rotate(S.coords.Vec(i)))
	}
	if S.cell != nil {
		for i := 0; i < 3; i++ {
			S.cell.SetVec(i, r.Rotate(S.cell.Vec(i)))
		}
	}
}
