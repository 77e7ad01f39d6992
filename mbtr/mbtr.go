/*
 * mbtr.go, part of gochem.
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
	"sort"

	chem "github.com/rmera/gochemdesc"
	"go.uber.org/zap"
)

// MBTR is a many-body tensor representation descriptor. It is configured once,
// and can then be used, also concurrently, to compute the descriptor for any number of structures.
type MBTR struct {
	elems   *Elements
	k       []int
	grids   map[int]Grid
	weights map[int]Weighting
	opts    *Options
}

// New returns a descriptor for the given configuration. Only the first Options given is used.
// The Options are copied, so changing them later has no effect on the descriptor.
// All the configuration errors are detected here.
func New(cfg Config, opts ...*Options) (*MBTR, error) {
	o := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0].copy()
	}
	elems, err := NewElements(cfg.Species)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	m := &MBTR{elems: elems, grids: make(map[int]Grid), weights: make(map[int]Weighting), opts: o}
	if len(cfg.K) == 0 {
		return nil, configError("New", "No body orders given")
	}
	seen := make(map[int]bool, 3)
	for _, k := range cfg.K {
		if k < 1 || k > 3 {
			return nil, configError("New", "Invalid body order %d, valid orders are 1, 2 and 3", k)
		}
		if seen[k] {
			return nil, configError("New", "Body order %d given more than once", k)
		}
		seen[k] = true
		m.k = append(m.k, k)
	}
	sort.Ints(m.k)
	for _, k := range m.k {
		g, ok := cfg.Grids[k]
		if !ok {
			return nil, configError("New", "No grid given for k=%d", k)
		}
		if err := g.validate("New", k); err != nil {
			return nil, err
		}
		m.grids[k] = g
		w, ok := cfg.Weighting[k]
		if !ok || w == nil {
			w = Unity{}
		}
		if err := w.validate("New"); err != nil {
			return nil, err
		}
		if k == 1 {
			if _, ok := w.(Unity); !ok {
				return nil, configError("New", "k=1 only accepts the unity weighting, got %s", w.Name())
			}
			continue
		}
		if _, ok := w.(Unity); ok && o.Periodic() {
			return nil, configError("New", "Periodic descriptors need an exponential weighting for k=%d", k)
		}
		m.weights[k] = w
	}
	if o.Sparse() && !o.Flatten() {
		return nil, configError("New", "Sparse output requires a flattened output")
	}
	if o.NormalizeByVolume() && !o.Periodic() {
		return nil, configError("New", "Volume normalization requires a periodic descriptor")
	}
	return m, nil
}

// NumberOfFeatures returns the length of the flattened output. It depends only on
// the number of species, the body orders and the grids.
func (m *MBTR) NumberOfFeatures() int {
	n := 0
	for _, k := range m.k {
		n += m.elems.Channels(k) * m.grids[k].N
	}
	return n
}

// Elements returns the element map of the descriptor.
func (m *MBTR) Elements() *Elements {
	return m.elems
}

// K returns the body orders of the descriptor, in ascending order.
func (m *MBTR) K() []int {
	return append([]int(nil), m.k...)
}

// Grid returns the grid for the body order k, and whether k is one of the orders of the descriptor.
func (m *MBTR) Grid(k int) (Grid, bool) {
	g, ok := m.grids[k]
	return g, ok
}

// Axis returns the grid points for the body order k, or nil if k is not one of the orders of the descriptor.
func (m *MBTR) Axis(k int) []float64 {
	g, ok := m.grids[k]
	if !ok {
		return nil
	}
	return g.Axis()
}

// Keys returns the keys of the body order k, in the order in which their channels appear in the output.
func (m *MBTR) Keys(k int) []Key {
	return m.elems.Keys(k)
}

// Offset returns the position, in the flattened output, of the first
// value of the given channel of the body order k.
func (m *MBTR) Offset(k int, key Key) int {
	off := 0
	for _, o := range m.k {
		if o == k {
			return off + m.elems.Channel(key)*m.grids[k].N
		}
		off += m.elems.Channels(o) * m.grids[o].N
	}
	panic(fmt.Sprintf("goChem/mbtr: Body order %d not in the descriptor", k))
}

// prepare validates s and returns the geometry for each body order.
func (m *MBTR) prepare(s chem.Structurer) (map[int]*geometry, float64, error) {
	if s == nil || s.Len() == 0 {
		return nil, 0, structureError("prepare", "Empty structure")
	}
	idx, err := m.elems.Check(s)
	if err != nil {
		return nil, 0, errDecorate(err, "prepare")
	}
	var L *lattice
	var volume float64
	if m.opts.Periodic() {
		L, err = newLattice(s)
		if err != nil {
			return nil, 0, errDecorate(err, "prepare")
		}
		volume = L.volume
	}
	z := make([]int, s.Len())
	for i := range z {
		z[i] = s.Atom(i).Z
	}
	coords := s.Coords()
	if coords == nil || coords.NVecs() != s.Len() {
		return nil, 0, structureError("prepare", "The structure has %d atoms but its coordinates don't match", s.Len())
	}
	ret := make(map[int]*geometry, len(m.k))
	for _, k := range m.k {
		g := &geometry{k: k, elems: m.elems, idx: idx, z: z, channels: m.elems.Channels(k)}
		switch k {
		case 1:
			g.sites = primarySites(coords)
		case 2:
			g.w = m.weights[k]
			g.sites = L.sites(coords, g.w.Extent(), m.opts.Logger())
		case 3:
			g.w = m.weights[k]
			g.sites = L.sites(coords, g.w.Extent()/2, m.opts.Logger())
		}
		ret[k] = g
	}
	return ret, volume, nil
}

// Initialize runs the geometric pass of the descriptor on s, and returns its result.
// The snapshot can be given to Rasterize any number of times.
func (m *MBTR) Initialize(s chem.Structurer) (*Snapshot, error) {
	geos, volume, err := m.prepare(s)
	if err != nil {
		return nil, errDecorate(err, "Initialize")
	}
	snap := &Snapshot{species: m.elems.Species(), volume: volume, local: -1, orders: make(map[int][]Observations, len(m.k))}
	anchors := make([]int, s.Len())
	for i := range anchors {
		anchors[i] = i
	}
	for _, k := range m.k {
		var eval evaluator
		switch k {
		case 1:
			eval = (*geometry).k1
		case 2:
			eval = (*geometry).k2
		case 3:
			eval = (*geometry).k3
		}
		snap.orders[k] = geos[k].run(eval, anchors, m.opts.Cpus(), m.opts.Logger())
	}
	return snap, nil
}

// InitializeLocal runs the geometric pass of the local descriptor for each of the atoms
// in positions, and returns one snapshot per atom.
func (m *MBTR) InitializeLocal(s chem.Structurer, positions []int) ([]*Snapshot, error) {
	geos, volume, err := m.prepare(s)
	if err != nil {
		return nil, errDecorate(err, "InitializeLocal")
	}
	if len(positions) == 0 {
		return nil, structureError("InitializeLocal", "No positions given")
	}
	for _, p := range positions {
		if p < 0 || p >= s.Len() {
			return nil, structureError("InitializeLocal", "Position %d out of range for a structure with %d atoms", p, s.Len())
		}
	}
	ret := make([]*Snapshot, len(positions))
	for i, p := range positions {
		snap := &Snapshot{species: m.elems.Species(), volume: volume, local: p, orders: make(map[int][]Observations, len(m.k))}
		for _, k := range m.k {
			var eval evaluator
			switch k {
			case 1:
				eval = (*geometry).k1
			case 2:
				eval = (*geometry).localK2
			case 3:
				eval = (*geometry).localK3
			}
			snap.orders[k] = geos[k].run(eval, []int{p}, 1, m.opts.Logger())
		}
		ret[i] = snap
	}
	return ret, nil
}

// Rasterize smears the observations in snap on the grids of the descriptor, and assembles
// the output. If a map of grids is given, the grids in it replace those of the descriptor for
// the corresponding body orders. The geometric pass is not repeated.
func (m *MBTR) Rasterize(snap *Snapshot, grids ...map[int]Grid) (*Output, error) {
	if snap == nil {
		return nil, structureError("Rasterize", "Nil snapshot")
	}
	if !sameInts(snap.species, m.elems.species) {
		return nil, structureError("Rasterize", "The snapshot species %v don't match the descriptor species %v", snap.species, m.elems.species)
	}
	use := make(map[int]Grid, len(m.k))
	for _, k := range m.k {
		if len(snap.orders[k]) != m.elems.Channels(k) {
			return nil, structureError("Rasterize", "The snapshot has %d channels for k=%d, expected %d", len(snap.orders[k]), k, m.elems.Channels(k))
		}
		use[k] = m.grids[k]
		if len(grids) == 0 || grids[0] == nil {
			continue
		}
		if g, ok := grids[0][k]; ok {
			if err := g.validate("Rasterize", k); err != nil {
				return nil, err
			}
			use[k] = g
		}
	}
	out, err := m.assemble(snap, use)
	if err != nil {
		return nil, errDecorate(err, "Rasterize")
	}
	return out, nil
}

// Create returns the descriptor for the structure s.
func (m *MBTR) Create(s chem.Structurer) (*Output, error) {
	snap, err := m.Initialize(s)
	if err != nil {
		return nil, errDecorate(err, "Create")
	}
	m.opts.Logger().Debug("created", zap.Int("atoms", s.Len()), zap.Ints("k", m.k))
	return m.Rasterize(snap)
}

// CreateLocal returns the local descriptor for each atom in positions. The local
// descriptors have the same layout as the global one.
func (m *MBTR) CreateLocal(s chem.Structurer, positions []int) ([]*Output, error) {
	snaps, err := m.InitializeLocal(s, positions)
	if err != nil {
		return nil, errDecorate(err, "CreateLocal")
	}
	ret := make([]*Output, len(snaps))
	for i, snap := range snaps {
		ret[i], err = m.Rasterize(snap)
		if err != nil {
			return nil, errDecorate(err, "CreateLocal")
		}
	}
	return ret, nil
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
