/*
 * assemble.go, part of gochem.
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
	"github.com/rmera/gochemdesc/histo"
	"go.uber.org/zap"
)

// Block is the part of an unflattened output that shares an outer key: all the
// elements for k=1 (the outer key is empty), the pairs (i,j) with j>=i for k=2 (the outer
// key is (i)), and the neighbor pairs of a center c for k=3 (the outer key is (c)).
type Block struct {
	Outer  Key           `json:"outer"`
	Keys   []Key         `json:"keys"`
	Curves *histo.Matrix `json:"curves"` //one row per key, one column
}

// Output is the result of a descriptor. Exactly one of Dense, Sparse and
// Blocks is set, depending on the options of the descriptor.
type Output struct {
	Dense  []float64       `json:"dense,omitempty"`
	Sparse *SparseVector   `json:"sparse,omitempty"`
	Blocks map[int][]Block `json:"blocks,omitempty"`
}

// Vector returns the output as a dense vector, or nil if the output is not flattened.
func (o *Output) Vector() []float64 {
	switch {
	case o.Dense != nil:
		return o.Dense
	case o.Sparse != nil:
		return o.Sparse.ToDense()
	}
	return nil
}

// smear rasterizes each channel on the axis, splitting the channels among cpus gorutines.
func smear(obs []Observations, axis []float64, sigma float64, normalized bool, cpus int) []*histo.Data {
	ret := make([]*histo.Data, len(obs))
	if cpus > len(obs) {
		cpus = len(obs)
	}
	if cpus < 1 {
		cpus = 1
	}
	done := make([]chan bool, cpus)
	for i := range done {
		done[i] = make(chan bool, 1)
	}
	for i := 0; i < cpus; i++ {
		go func(w int) {
			for ch := w; ch < len(obs); ch += cpus {
				d := histo.NewData(axis, sigma, normalized, ch)
				d.AddWeighted(obs[ch].Geometry, obs[ch].Weight)
				ret[ch] = d
			}
			done[w] <- true
		}(i)
	}
	for _, d := range done {
		<-d
	}
	return ret
}

// assemble turns the snapshot into an output using the given grids.
func (m *MBTR) assemble(snap *Snapshot, grids map[int]Grid) (*Output, error) {
	O := m.opts
	scale := 1.0
	if O.NormalizeByVolume() {
		if snap.volume <= degenerate {
			return nil, structureError("assemble", "Volume normalization requested but the snapshot has no valid cell volume: %g", snap.volume)
		}
		scale = 1 / snap.volume
	}
	curves := make(map[int][]*histo.Data, len(m.k))
	for _, k := range m.k {
		g := grids[k]
		curves[k] = smear(snap.orders[k], g.Axis(), g.Sigma, O.NormalizeGaussians(), O.Cpus())
	}
	if !O.Flatten() {
		return &Output{Blocks: m.blocks(curves, grids, scale)}, nil
	}
	n := 0
	for _, k := range m.k {
		n += m.elems.Channels(k) * grids[k].N
	}
	dense := make([]float64, 0, n)
	for _, k := range m.k {
		for _, d := range curves[k] {
			if scale != 1 {
				d.Scale(scale)
			}
			dense = append(dense, d.View()...)
		}
	}
	O.Logger().Debug("assembled", zap.Int("features", len(dense)), zap.Bool("sparse", O.Sparse()))
	if O.Sparse() {
		return &Output{Sparse: NewSparseVector(dense)}, nil
	}
	return &Output{Dense: dense}, nil
}

// blocks groups the channels of each body order by their outer key, and scales
// every block by scale. Each channel belongs to exactly one block.
func (m *MBTR) blocks(curves map[int][]*histo.Data, grids map[int]Grid, scale float64) map[int][]Block {
	ret := make(map[int][]Block, len(curves))
	n := m.elems.Len()
	for _, k := range m.k {
		g := grids[k]
		c := curves[k]
		var outer []Key
		var members [][]int //the channels in each block
		switch k {
		case 1:
			outer = []Key{NewKey()}
			all := make([]int, n)
			for i := range all {
				all[i] = i
			}
			members = [][]int{all}
		case 2:
			for i := 0; i < n; i++ {
				outer = append(outer, NewKey(i))
				var chs []int
				for j := i; j < n; j++ {
					chs = append(chs, m.elems.Channel(NewKey(i, j)))
				}
				members = append(members, chs)
			}
		case 3:
			np := m.elems.Channels(2)
			for i := 0; i < n; i++ {
				outer = append(outer, NewKey(i))
				chs := make([]int, np)
				for p := range chs {
					chs[p] = i*np + p
				}
				members = append(members, chs)
			}
		}
		axis := c[0].Axis()
		for b, o := range outer {
			blk := Block{Outer: o, Keys: make([]Key, len(members[b]))}
			blk.Curves = histo.NewMatrix(len(members[b]), 1, axis, g.Sigma, m.opts.NormalizeGaussians())
			for r, ch := range members[b] {
				blk.Keys[r] = m.elems.Key(k, ch)
				blk.Curves.Set(r, 0, c[ch])
			}
			if scale != 1 {
				blk.Curves.Scale(scale)
			}
			ret[k] = append(ret[k], blk)
		}
	}
	return ret
}
