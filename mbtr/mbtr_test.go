/*
 * mbtr_test.go, part of gochem.
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
	"bytes"
	"math"
	"testing"

	chem "github.com/rmera/gochemdesc"
	v3 "github.com/rmera/gochemdesc/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// build returns a structure with the given symbols and cartesian coordinates.
// A nil cell gives a finite structure.
func build(Te *testing.T, syms []string, coords, cell []float64, pbc [3]bool) *chem.Structure {
	ats := make([]*chem.Atom, len(syms))
	for i, s := range syms {
		ats[i] = &chem.Atom{Symbol: s}
	}
	c, err := v3.NewMatrix(coords)
	require.NoError(Te, err)
	var L *v3.Matrix
	if cell != nil {
		L, err = v3.NewMatrix(cell)
		require.NoError(Te, err)
	}
	s, err := chem.NewStructure(ats, c, L, pbc)
	require.NoError(Te, err)
	return s
}

// water has its two hydrogens at the same distance from the oxygen, with a 104 degree angle.
func water(Te *testing.T) *chem.Structure {
	a := 76 * math.Pi / 180
	return build(Te, []string{"H", "O", "H"}, []float64{
		0, 0, 0,
		0.95, 0, 0,
		0.95 * (1 + math.Cos(a)), 0.95 * math.Sin(a), 0,
	}, nil, [3]bool{})
}

func methanol(Te *testing.T) *chem.Structure {
	return build(Te, []string{"C", "O", "H", "H", "H", "H"}, []float64{
		0, 0, 0,
		1.43, 0, 0,
		-0.36, 1.03, 0.1,
		-0.4, -0.5, 0.9,
		-0.38, -0.52, -0.88,
		1.75, 0.9, 0.05,
	}, nil, [3]bool{})
}

func grids() map[int]Grid {
	return map[int]Grid{
		1: {Min: 0, Max: 10, N: 100, Sigma: 0.1},
		2: {Min: 0, Max: 1.5, N: 100, Sigma: 0.01},
		3: {Min: -1, Max: 1, N: 100, Sigma: 0.05},
	}
}

func baseConfig() Config {
	return Config{
		Species: []int{1, 8},
		K:       []int{1, 2, 3},
		Grids:   grids(),
		Weighting: map[int]Weighting{
			2: Exponential{Scale: 1, Cutoff: 1e-3},
			3: Exponential{Scale: 1, Cutoff: 1e-3},
		},
	}
}

func newDesc(Te *testing.T, cfg Config, O ...*Options) *MBTR {
	m, err := New(cfg, O...)
	require.NoError(Te, err)
	return m
}

func TestNumberOfFeatures(Te *testing.T) {
	m := newDesc(Te, baseConfig())
	assert.Equal(Te, 200+300+600, m.NumberOfFeatures())
	assert.Equal(Te, []int{1, 2, 3}, m.K())
	assert.Equal(Te, 200+100, m.Offset(2, NewKey(0, 1)))
	assert.Equal(Te, 500+3*100, m.Offset(3, NewKey(1, 0, 0)))
	assert.Len(Te, m.Axis(2), 100)
	assert.Nil(Te, m.Axis(4))
	out, err := m.Create(water(Te))
	require.NoError(Te, err)
	assert.Len(Te, out.Dense, m.NumberOfFeatures())
	assert.Nil(Te, out.Sparse)

	cfg := baseConfig()
	cfg.K = []int{3, 2}
	m = newDesc(Te, cfg)
	assert.Equal(Te, []int{2, 3}, m.K())
	assert.Equal(Te, 300+600, m.NumberOfFeatures())
	assert.Panics(Te, func() { m.Offset(1, NewKey(0)) })
	//the size doesn't depend on the structure
	out, err = m.Create(methanolAsHO(Te))
	require.NoError(Te, err)
	assert.Len(Te, out.Dense, m.NumberOfFeatures())
}

// methanolAsHO is methanol with the carbon replaced by an oxygen.
func methanolAsHO(Te *testing.T) *chem.Structure {
	s := methanol(Te)
	at := s.Atom(0)
	at.Z, at.Symbol, at.Mass = 8, "O", 0
	require.NoError(Te, at.Fill())
	return s
}

func TestConfigErrors(Te *testing.T) {
	cases := map[string]func(c *Config, O *Options){
		"no body orders":      func(c *Config, O *Options) { c.K = nil },
		"k=0":                 func(c *Config, O *Options) { c.K = []int{0} },
		"k=-1":                func(c *Config, O *Options) { c.K = []int{1, -1} },
		"k=4":                 func(c *Config, O *Options) { c.K = []int{4} },
		"repeated k":          func(c *Config, O *Options) { c.K = []int{2, 2} },
		"no species":          func(c *Config, O *Options) { c.Species = nil },
		"invalid species":     func(c *Config, O *Options) { c.Species = []int{1, 0} },
		"missing grid":        func(c *Config, O *Options) { delete(c.Grids, 3) },
		"one point grid":      func(c *Config, O *Options) { c.Grids[1] = Grid{Min: 0, Max: 1, N: 1, Sigma: 0.1} },
		"inverted grid":       func(c *Config, O *Options) { c.Grids[2] = Grid{Min: 1, Max: 0, N: 10, Sigma: 0.1} },
		"zero sigma":          func(c *Config, O *Options) { c.Grids[3] = Grid{Min: -1, Max: 1, N: 10} },
		"weighted k=1":        func(c *Config, O *Options) { c.Weighting[1] = Exponential{Scale: 1, Cutoff: 1e-3} },
		"zero scale":          func(c *Config, O *Options) { c.Weighting[2] = Exponential{Cutoff: 1e-3} },
		"cutoff of one":       func(c *Config, O *Options) { c.Weighting[3] = Exponential{Scale: 1, Cutoff: 1} },
		"periodic unity":      func(c *Config, O *Options) { O.Periodic(true); delete(c.Weighting, 2) },
		"sparse unflattened":  func(c *Config, O *Options) { O.Sparse(true); O.Flatten(false) },
		"volume non periodic": func(c *Config, O *Options) { O.NormalizeByVolume(true) },
	}
	for name, f := range cases {
		cfg := baseConfig()
		O := DefaultOptions()
		f(&cfg, O)
		m, err := New(cfg, O)
		assert.Nil(Te, m, name)
		assert.True(Te, IsConfigError(err), "%s: %v", name, err)
		assert.False(Te, IsStructureError(err), name)
	}
	//the same settings are fine when they are consistent
	cfg := baseConfig()
	O := DefaultOptions()
	O.Periodic(true)
	O.NormalizeByVolume(true)
	O.Sparse(true)
	_, err := New(cfg, O)
	assert.NoError(Te, err)
}

func TestOptionsAreCopied(Te *testing.T) {
	O := DefaultOptions()
	m := newDesc(Te, baseConfig(), O)
	O.Flatten(false)
	out, err := m.Create(water(Te))
	require.NoError(Te, err)
	assert.NotNil(Te, out.Dense)
	D := DefaultOptions()
	n := D.Cpus()
	assert.Equal(Te, n, D.Cpus(-3))
}

func TestFiniteObservations(Te *testing.T) {
	cfg := baseConfig()
	cfg.Weighting = nil
	m := newDesc(Te, cfg)
	w := water(Te)
	snap, err := m.Initialize(w)
	require.NoError(Te, err)
	assert.Equal(Te, -1, snap.Center())
	assert.Equal(Te, 0.0, snap.Volume())
	assert.Equal(Te, []int{1, 2, 3}, snap.Orders())
	assert.Equal(Te, []int{1, 8}, snap.Species())

	h := snap.Observations(1, 0)
	assert.Equal(Te, []float64{1, 1}, h.Geometry)
	assert.Equal(Te, []float64{1, 1}, h.Weight)
	o := snap.Observations(1, 1)
	assert.Equal(Te, []float64{8}, o.Geometry)
	assert.Equal(Te, []float64{1}, o.Weight)

	oh := snap.Observations(2, m.Elements().Channel(NewKey(0, 1)))
	require.Equal(Te, 2, oh.Len())
	for i := range oh.Geometry {
		assert.InDelta(Te, 1/0.95, oh.Geometry[i], 1e-12)
		assert.Equal(Te, 1.0, oh.Weight[i])
	}
	dhh := r3.Norm(r3.Sub(w.Coords().Vec(2), w.Coords().Vec(0)))
	hh := snap.Observations(2, m.Elements().Channel(NewKey(0, 0)))
	require.Equal(Te, 1, hh.Len())
	assert.InDelta(Te, 1/dhh, hh.Geometry[0], 1e-12)
	assert.Equal(Te, 0, snap.Observations(2, m.Elements().Channel(NewKey(1, 1))).Len())

	total := 0
	for ch := 0; ch < snap.Channels(3); ch++ {
		total += snap.Observations(3, ch).Len()
	}
	assert.Equal(Te, 3, total)
	hoh := snap.Observations(3, m.Elements().Channel(NewKey(1, 0, 0)))
	require.Equal(Te, 1, hoh.Len())
	assert.InDelta(Te, math.Cos(104*math.Pi/180), hoh.Geometry[0], 1e-12)
	ohh := snap.Observations(3, m.Elements().Channel(NewKey(0, 0, 1)))
	require.Equal(Te, 2, ohh.Len())
	assert.InDelta(Te, math.Cos(38*math.Pi/180), ohh.Geometry[0], 1e-12)
	assert.InDelta(Te, ohh.Geometry[0], ohh.Geometry[1], 1e-12)

	//the snapshot can't be changed from outside
	h.Geometry[0] = 100
	assert.Equal(Te, 1.0, snap.Observations(1, 0).Geometry[0])
}

func TestFiniteCounts(Te *testing.T) {
	cfg := baseConfig()
	cfg.Species = []int{1, 6, 8}
	cfg.Weighting = nil
	m := newDesc(Te, cfg)
	snap, err := m.Initialize(methanol(Te))
	require.NoError(Te, err)
	n := 6
	counts := map[int]int{}
	for _, k := range []int{1, 2, 3} {
		for ch := 0; ch < snap.Channels(k); ch++ {
			counts[k] += snap.Observations(k, ch).Len()
		}
	}
	assert.Equal(Te, n, counts[1])
	assert.Equal(Te, n*(n-1)/2, counts[2])
	assert.Equal(Te, n*(n-1)*(n-2)/2, counts[3])
}

func TestFiniteWeights(Te *testing.T) {
	cfg := baseConfig()
	cfg.Weighting = map[int]Weighting{2: Exponential{Scale: 0.5, Cutoff: 1e-3}, 3: Exponential{Scale: 0.5, Cutoff: 1e-3}}
	m := newDesc(Te, cfg)
	w := water(Te)
	snap, err := m.Initialize(w)
	require.NoError(Te, err)
	oh := snap.Observations(2, m.Elements().Channel(NewKey(0, 1)))
	for _, v := range oh.Weight {
		assert.InDelta(Te, math.Exp(-0.5*0.95), v, 1e-12)
	}
	dhh := r3.Norm(r3.Sub(w.Coords().Vec(2), w.Coords().Vec(0)))
	hoh := snap.Observations(3, m.Elements().Channel(NewKey(1, 0, 0)))
	assert.InDelta(Te, math.Exp(-0.5*(1.9+dhh)), hoh.Weight[0], 1e-12)

	//a cutoff short enough leaves out the H-H pair, and every triplet
	cfg.Weighting[2] = Exponential{Scale: 1, Cutoff: math.Exp(-1)}
	cfg.Weighting[3] = Exponential{Scale: 1, Cutoff: math.Exp(-1)}
	m = newDesc(Te, cfg)
	snap, err = m.Initialize(w)
	require.NoError(Te, err)
	assert.Equal(Te, 2, snap.Observations(2, m.Elements().Channel(NewKey(0, 1))).Len())
	assert.Equal(Te, 0, snap.Observations(2, m.Elements().Channel(NewKey(0, 0))).Len())
	for ch := 0; ch < snap.Channels(3); ch++ {
		assert.Equal(Te, 0, snap.Observations(3, ch).Len())
	}
}

func TestPermutationInvariance(Te *testing.T) {
	cfg := baseConfig()
	cfg.Species = []int{1, 6, 8}
	m := newDesc(Te, cfg)
	s := methanol(Te)
	p, err := s.SomeAtoms([]int{3, 0, 5, 1, 4, 2})
	require.NoError(Te, err)
	a, err := m.Create(s)
	require.NoError(Te, err)
	b, err := m.Create(p)
	require.NoError(Te, err)
	assert.Equal(Te, a.Dense, b.Dense)
}

func TestCpusInvariance(Te *testing.T) {
	cfg := baseConfig()
	cfg.Species = []int{1, 6, 8}
	O := DefaultOptions()
	O.Cpus(1)
	m1 := newDesc(Te, cfg, O)
	O.Cpus(4)
	m4 := newDesc(Te, cfg, O)
	a, err := m1.Create(methanol(Te))
	require.NoError(Te, err)
	b, err := m4.Create(methanol(Te))
	require.NoError(Te, err)
	assert.Equal(Te, a.Dense, b.Dense)
}

func TestRigidMotionInvariance(Te *testing.T) {
	cfg := baseConfig()
	cfg.Species = []int{1, 6, 8}
	m := newDesc(Te, cfg)
	s := methanol(Te)
	a, err := m.Create(s)
	require.NoError(Te, err)
	moved := s.Copy()
	moved.Rotate(r3.NewRotation(0.7, r3.Vec{X: 1, Y: 2, Z: 3}))
	moved.Translate(r3.Vec{X: 3, Y: -2, Z: 1})
	b, err := m.Create(moved)
	require.NoError(Te, err)
	assert.InDeltaSlice(Te, a.Dense, b.Dense, 1e-8)
}

func TestDisjointSpecies(Te *testing.T) {
	cfg := baseConfig()
	cfg.Weighting = nil
	m := newDesc(Te, cfg)
	h2 := build(Te, []string{"H", "H"}, []float64{0, 0, 0, 0.74, 0, 0}, nil, [3]bool{})
	o2 := build(Te, []string{"O", "O"}, []float64{0, 0, 0, 1.21, 0, 0}, nil, [3]bool{})
	a, err := m.Create(h2)
	require.NoError(Te, err)
	b, err := m.Create(o2)
	require.NoError(Te, err)
	assert.Equal(Te, 0.0, floats.Dot(a.Dense, b.Dense))
	assert.NotEqual(Te, 0.0, floats.Norm(a.Dense, 2))
}

func TestCoincidentAtoms(Te *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	O := DefaultOptions()
	O.Logger(zap.New(core))
	cfg := baseConfig()
	cfg.Weighting = nil
	m := newDesc(Te, cfg, O)
	s := build(Te, []string{"H", "H", "O"}, []float64{0, 0, 0, 0, 0, 0, 1, 0, 0}, nil, [3]bool{})
	snap, err := m.Initialize(s)
	require.NoError(Te, err)
	assert.Equal(Te, 0, snap.Observations(2, m.Elements().Channel(NewKey(0, 0))).Len())
	assert.Equal(Te, 2, snap.Observations(2, m.Elements().Channel(NewKey(0, 1))).Len())
	assert.NotZero(Te, logs.FilterMessage("coincident atoms skipped").Len())
}

func TestStructureErrors(Te *testing.T) {
	cfg := baseConfig()
	cfg.Species = []int{1, 6}
	m := newDesc(Te, cfg)
	_, err := m.Create(water(Te))
	assert.True(Te, IsStructureError(err), "%v", err)
	_, err = m.Create(nil)
	assert.True(Te, IsStructureError(err))

	O := DefaultOptions()
	O.Periodic(true)
	m = newDesc(Te, baseConfig(), O)
	_, err = m.Create(water(Te))
	assert.True(Te, IsStructureError(err), "no cell: %v", err)
	flat := build(Te, []string{"H"}, []float64{0, 0, 0}, []float64{1, 0, 0, 0, 1, 0, 2, 0, 0}, [3]bool{true, true, true})
	_, err = m.Create(flat)
	assert.True(Te, IsStructureError(err), "degenerate cell: %v", err)
}

func TestGaussianIntegral(Te *testing.T) {
	cfg := Config{Species: []int{1, 8}, K: []int{1}, Grids: map[int]Grid{1: {Min: -3, Max: 11, N: 1401, Sigma: 0.5}}}
	O := DefaultOptions()
	O.Flatten(false)
	m := newDesc(Te, cfg, O)
	out, err := m.Create(water(Te))
	require.NoError(Te, err)
	assert.Nil(Te, out.Vector())
	require.Len(Te, out.Blocks[1], 1)
	blk := out.Blocks[1][0]
	assert.Equal(Te, []Key{NewKey(0), NewKey(1)}, blk.Keys)
	assert.InDelta(Te, 2, blk.Curves.View(0, 0).Integral(), 1e-6)
	assert.InDelta(Te, 1, blk.Curves.View(1, 0).Integral(), 1e-6)

	O.NormalizeGaussians(false)
	m = newDesc(Te, cfg, O)
	out, err = m.Create(water(Te))
	require.NoError(Te, err)
	h := out.Blocks[1][0].Curves.View(0, 0)
	x, y := h.Peak()
	assert.InDelta(Te, 1, x, 1e-9)
	assert.InDelta(Te, 2, y, 1e-9)
	assert.InDelta(Te, 2*0.5*math.Sqrt(2*math.Pi), h.Integral(), 1e-6)
}

func TestBlocks(Te *testing.T) {
	cfg := baseConfig()
	m := newDesc(Te, cfg)
	O := DefaultOptions()
	O.Flatten(false)
	mb := newDesc(Te, cfg, O)
	flat, err := m.Create(water(Te))
	require.NoError(Te, err)
	out, err := mb.Create(water(Te))
	require.NoError(Te, err)
	assert.Nil(Te, out.Dense)

	require.Len(Te, out.Blocks[2], 2)
	assert.Equal(Te, NewKey(0), out.Blocks[2][0].Outer)
	assert.Equal(Te, []Key{NewKey(0, 0), NewKey(0, 1)}, out.Blocks[2][0].Keys)
	assert.Equal(Te, []Key{NewKey(1, 1)}, out.Blocks[2][1].Keys)
	require.Len(Te, out.Blocks[3], 2)
	for _, b := range out.Blocks[3] {
		assert.Len(Te, b.Keys, 3)
		r, c := b.Curves.Dims()
		assert.Equal(Te, 3, r)
		assert.Equal(Te, 1, c)
	}
	N := grids()[2].N
	off := m.Offset(2, NewKey(0, 1))
	assert.Equal(Te, flat.Dense[off:off+N], out.Blocks[2][0].Curves.View(1, 0).View())
	off = m.Offset(3, NewKey(1, 0, 0))
	assert.Equal(Te, flat.Dense[off:off+grids()[3].N], out.Blocks[3][1].Curves.View(0, 0).View())
}

func TestSparse(Te *testing.T) {
	cfg := baseConfig()
	m := newDesc(Te, cfg)
	O := DefaultOptions()
	O.Sparse(true)
	ms := newDesc(Te, cfg, O)
	d, err := m.Create(water(Te))
	require.NoError(Te, err)
	s, err := ms.Create(water(Te))
	require.NoError(Te, err)
	require.NotNil(Te, s.Sparse)
	assert.Nil(Te, s.Dense)
	assert.Equal(Te, m.NumberOfFeatures(), s.Sparse.Dim)
	assert.Less(Te, s.Sparse.Nnz(), s.Sparse.Dim)
	assert.Equal(Te, d.Dense, s.Vector())
	assert.InDelta(Te, floats.Dot(d.Dense, d.Dense), s.Sparse.Dot(s.Sparse), 1e-9)
}

func TestRegrid(Te *testing.T) {
	cfg := baseConfig()
	m := newDesc(Te, cfg)
	snap, err := m.Initialize(water(Te))
	require.NoError(Te, err)
	created, err := m.Create(water(Te))
	require.NoError(Te, err)
	same, err := m.Rasterize(snap)
	require.NoError(Te, err)
	assert.Equal(Te, created.Dense, same.Dense)

	g := cfg.Grids[2]
	g.Sigma = 0.009
	other, err := m.Rasterize(snap, map[int]Grid{2: g})
	require.NoError(Te, err)
	require.Len(Te, other.Dense, len(same.Dense))
	N := g.N
	maxdiff := 0.0
	for _, key := range m.Keys(2) {
		off := m.Offset(2, key)
		a, b := same.Dense[off:off+N], other.Dense[off:off+N]
		if floats.Max(a) == 0 {
			assert.Equal(Te, 0.0, floats.Max(b))
			continue
		}
		assert.Equal(Te, floats.MaxIdx(a), floats.MaxIdx(b), "peak of %v", key)
		for i := range a {
			maxdiff = math.Max(maxdiff, math.Abs(a[i]-b[i]))
		}
	}
	assert.Greater(Te, maxdiff, 1e-3)
	//the other body orders keep their grids
	off := m.Offset(3, NewKey(0, 0, 0))
	assert.Equal(Te, same.Dense[:m.Offset(2, NewKey(0, 0))], other.Dense[:m.Offset(2, NewKey(0, 0))])
	assert.Equal(Te, same.Dense[off:], other.Dense[off:])

	_, err = m.Rasterize(snap, map[int]Grid{2: {Min: 0, Max: 1, N: 10}})
	assert.True(Te, IsConfigError(err))
	_, err = m.Rasterize(nil)
	assert.True(Te, IsStructureError(err))

	cfg.Species = []int{1, 6}
	foreign := newDesc(Te, cfg)
	_, err = foreign.Rasterize(snap)
	assert.True(Te, IsStructureError(err))
}

func TestSnapshotIO(Te *testing.T) {
	m := newDesc(Te, baseConfig())
	snap, err := m.Initialize(water(Te))
	require.NoError(Te, err)
	var buf bytes.Buffer
	n, err := snap.WriteTo(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, int64(buf.Len()), n)
	read, err := ReadSnapshot(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, snap.Species(), read.Species())
	assert.Equal(Te, snap.Orders(), read.Orders())
	assert.Equal(Te, -1, read.Center())
	a, err := m.Rasterize(snap)
	require.NoError(Te, err)
	b, err := m.Rasterize(read)
	require.NoError(Te, err)
	assert.Equal(Te, a.Dense, b.Dense)

	_, err = ReadSnapshot(bytes.NewReader([]byte("not a snapshot")))
	assert.True(Te, IsStructureError(err))
}

func TestLocal(Te *testing.T) {
	cfg := baseConfig()
	cfg.Weighting = nil
	m := newDesc(Te, cfg)
	w := water(Te)
	snaps, err := m.InitializeLocal(w, []int{1})
	require.NoError(Te, err)
	snap := snaps[0]
	assert.Equal(Te, 1, snap.Center())
	assert.Equal(Te, 0, snap.Observations(1, 0).Len())
	assert.Equal(Te, []float64{8}, snap.Observations(1, 1).Geometry)
	oh := snap.Observations(2, m.Elements().Channel(NewKey(0, 1)))
	assert.Equal(Te, []float64{1, 1}, oh.Weight)
	assert.Equal(Te, 0, snap.Observations(2, m.Elements().Channel(NewKey(0, 0))).Len())
	assert.Equal(Te, 1, snap.Observations(3, m.Elements().Channel(NewKey(1, 0, 0))).Len())
	assert.Equal(Te, 2, snap.Observations(3, m.Elements().Channel(NewKey(0, 0, 1))).Len())

	//both hydrogens see the same environment
	outs, err := m.CreateLocal(w, []int{0, 2})
	require.NoError(Te, err)
	require.Len(Te, outs, 2)
	assert.Len(Te, outs[0].Dense, m.NumberOfFeatures())
	assert.InDeltaSlice(Te, outs[0].Dense, outs[1].Dense, 1e-9)

	_, err = m.CreateLocal(w, []int{3})
	assert.True(Te, IsStructureError(err))
	_, err = m.CreateLocal(w, nil)
	assert.True(Te, IsStructureError(err))
}
