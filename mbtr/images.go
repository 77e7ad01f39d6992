/*
 * images.go, part of gochem.
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
	"math"

	chem "github.com/rmera/gochemdesc"
	v3 "github.com/rmera/gochemdesc/v3"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// degenerate is the smallest cell volume accepted.
const degenerate = 1e-10

// site is an atom of the structure or one of its periodic images.
type site struct {
	atom int
	t    [3]int //translation, in cell vectors
	pos  r3.Vec
}

// translations returns the number of distinct translations among the given sites.
func translations(s ...site) int {
	n := 0
	for i := range s {
		seen := false
		for j := 0; j < i; j++ {
			if s[j].t == s[i].t {
				seen = true
				break
			}
		}
		if !seen {
			n++
		}
	}
	return n
}

// lattice is the periodic part of a structure.
type lattice struct {
	cell     *v3.Matrix
	inv      *v3.Matrix
	periodic [3]bool
	volume   float64
}

// newLattice returns the lattice of s. Periodic axes are those flagged in s, or all of them if s
// flags none. It returns an error if s has no cell or a degenerate one.
func newLattice(s chem.Structurer) (*lattice, error) {
	cell := s.Cell()
	if cell == nil {
		return nil, structureError("newLattice", "Periodic descriptor requested for a structure without a cell")
	}
	vol := math.Abs(v3.Det(cell))
	if vol <= degenerate {
		return nil, structureError("newLattice", "Degenerate cell, volume: %g", vol)
	}
	inv, err := v3.Inverse(cell, degenerate)
	if err != nil {
		return nil, structureError("newLattice", "Can't invert the cell: %s", err.Error())
	}
	pbc := s.PBC()
	if !pbc[0] && !pbc[1] && !pbc[2] {
		pbc = [3]bool{true, true, true}
	}
	return &lattice{cell: cell, inv: inv, periodic: pbc, volume: vol}, nil
}

// span returns, for each cell axis, the number of translations to explore so every image within
// reach of any of the primary atoms is found. The extent of the atoms, diag, is added to the reach.
// The inverse spacing between lattice planes of the kth family is the norm of the
// kth column of the inverse cell.
func (L *lattice) span(reach, diag float64) [3]int {
	var ret [3]int
	for k := 0; k < 3; k++ {
		if !L.periodic[k] {
			continue
		}
		col := r3.Vec{X: L.inv.At(0, k), Y: L.inv.At(1, k), Z: L.inv.At(2, k)}
		ret[k] = int(math.Ceil((reach + diag) * r3.Norm(col)))
	}
	return ret
}

// translate returns the cartesian vector for the translation t.
func (L *lattice) translate(t [3]int) r3.Vec {
	var ret r3.Vec
	for k := 0; k < 3; k++ {
		ret = r3.Add(ret, r3.Scale(float64(t[k]), L.cell.Vec(k)))
	}
	return ret
}

// primarySites returns one site per atom, without translation.
func primarySites(coords *v3.Matrix) []site {
	prim := coords.Vecs()
	ret := make([]site, len(prim), 2*len(prim))
	for i, p := range prim {
		ret[i] = site{atom: i, pos: p}
	}
	return ret
}

// sites returns the primary atoms, in order, followed by every periodic image whose distance to
// at least one primary atom is not larger than reach. If L is nil, only the primary atoms are returned.
func (L *lattice) sites(coords *v3.Matrix, reach float64, log *zap.Logger) []site {
	ret := primarySites(coords)
	n := len(ret)
	if L == nil || math.IsInf(reach, 1) {
		return ret
	}
	min, max := coords.BoundingBox()
	diag := r3.Norm(r3.Sub(max, min))
	s := L.span(reach, diag)
	reach2 := reach * reach
	for a := -s[0]; a <= s[0]; a++ {
		for b := -s[1]; b <= s[1]; b++ {
			for c := -s[2]; c <= s[2]; c++ {
				t := [3]int{a, b, c}
				if t == [3]int{} {
					continue
				}
				tv := L.translate(t)
				for j := 0; j < n; j++ {
					img := r3.Add(ret[j].pos, tv)
					for _, q := range ret[:n] {
						d := r3.Sub(img, q.pos)
						if r3.Dot(d, d) <= reach2 {
							ret = append(ret, site{atom: j, t: t, pos: img})
							break
						}
					}
				}
			}
		}
	}
	log.Debug("periodic images", zap.Int("atoms", n), zap.Int("sites", len(ret)), zap.Ints("translations", s[:]), zap.Float64("reach", reach))
	return ret
}
