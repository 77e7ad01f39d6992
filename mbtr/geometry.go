/*
 * geometry.go, part of gochem.
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
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// Observations contains the geometry values and weights gathered for one channel.
// Both slices have the same length.
type Observations struct {
	Geometry []float64 `json:"geometry"`
	Weight   []float64 `json:"weight"`
}

func (o *Observations) add(g, w float64) {
	o.Geometry = append(o.Geometry, g)
	o.Weight = append(o.Weight, w)
}

// Len returns the number of observations.
func (o Observations) Len() int { return len(o.Geometry) }

// Copy returns a deep copy of the observations.
func (o Observations) Copy() Observations {
	return Observations{Geometry: append([]float64(nil), o.Geometry...), Weight: append([]float64(nil), o.Weight...)}
}

// TotalWeight returns the sum of all the weights.
func (o Observations) TotalWeight() float64 {
	var s float64
	for _, w := range o.Weight {
		s += w
	}
	return s
}

// obsSorter sorts observations by geometry, then by weight.
type obsSorter Observations

func (o obsSorter) Len() int { return len(o.Geometry) }
func (o obsSorter) Less(i, j int) bool {
	if o.Geometry[i] != o.Geometry[j] {
		return o.Geometry[i] < o.Geometry[j]
	}
	return o.Weight[i] < o.Weight[j]
}
func (o obsSorter) Swap(i, j int) {
	o.Geometry[i], o.Geometry[j] = o.Geometry[j], o.Geometry[i]
	o.Weight[i], o.Weight[j] = o.Weight[j], o.Weight[i]
}

// geometry holds what the evaluators for one body order need.
type geometry struct {
	k        int
	elems    *Elements
	w        Weighting
	sites    []site
	idx      []int //element index of each atom
	z        []int //atomic number of each atom
	channels int
}

// tally counts the tuples skipped because of coincident atoms.
type tally struct {
	coincident int
}

func (g *geometry) index(s site) int {
	return g.idx[s.atom]
}

func dist(a, b site) float64 {
	return r3.Norm(r3.Sub(b.pos, a.pos))
}

// cosine returns the cosine of the angle at center, subtended by a and b.
func cosine(center, a, b site) float64 {
	u := r3.Sub(a.pos, center.pos)
	v := r3.Sub(b.pos, center.pos)
	c := r3.Dot(u, v) / (r3.Norm(u) * r3.Norm(v))
	return math.Max(-1, math.Min(1, c))
}

// perimeter adds the three legs from the smallest to the largest, so the result
// does not depend on the order in which the legs are given.
func perimeter(a, b, c float64) float64 {
	l := [3]float64{a, b, c}
	if l[0] > l[1] {
		l[0], l[1] = l[1], l[0]
	}
	if l[1] > l[2] {
		l[1], l[2] = l[2], l[1]
	}
	if l[0] > l[1] {
		l[0], l[1] = l[1], l[0]
	}
	return l[0] + l[1] + l[2]
}

// k1 adds the atom anchored at a.
func (g *geometry) k1(a int, out []Observations, t *tally) {
	s := g.sites[a]
	out[g.elems.Channel(NewKey(g.index(s)))].add(float64(g.z[s.atom]), 1)
}

// k2 adds every pair of sites whose first site is the primary atom a. A pair across
// the cell boundary is seen from both of its atoms, so each gets half the weight.
func (g *geometry) k2(a int, out []Observations, t *tally) {
	sa := g.sites[a]
	ext := g.w.Extent()
	for b := a + 1; b < len(g.sites); b++ {
		sb := g.sites[b]
		d := dist(sa, sb)
		if d == 0 {
			t.coincident++
			continue
		}
		if d > ext {
			continue
		}
		w := g.w.Weight(d) / float64(translations(sa, sb))
		out[g.elems.Channel(NewKey(g.index(sa), g.index(sb)))].add(1/d, w)
	}
}

// k3 adds the three angles of every triplet of sites whose first site is the primary atom a.
// The weight of each triplet is divided among the distinct translations of its sites, since the
// triplet is found once from the cell of each of them.
func (g *geometry) k3(a int, out []Observations, t *tally) {
	sa := g.sites[a]
	ext := g.w.Extent()
	n := len(g.sites)
	da := make([]float64, n)
	for b := a + 1; b < n; b++ {
		da[b] = dist(sa, g.sites[b])
	}
	for b := a + 1; b < n; b++ {
		if da[b] == 0 {
			t.coincident++
			continue
		}
		if 2*da[b] > ext {
			continue
		}
		sb := g.sites[b]
		for c := b + 1; c < n; c++ {
			if da[c] == 0 || 2*da[c] > ext {
				continue
			}
			sc := g.sites[c]
			dbc := dist(sb, sc)
			if dbc == 0 {
				t.coincident++
				continue
			}
			if 2*dbc > ext {
				continue
			}
			p := perimeter(da[b], da[c], dbc)
			if p > ext {
				continue
			}
			w := g.w.Weight(p) / float64(translations(sa, sb, sc))
			g.angles(sa, sb, sc, w, out)
		}
	}
}

// angles adds the angle at each of the three sites.
func (g *geometry) angles(a, b, c site, w float64, out []Observations) {
	ia, ib, ic := g.index(a), g.index(b), g.index(c)
	out[g.elems.Channel(NewKey(ia, ib, ic))].add(cosine(a, b, c), w)
	out[g.elems.Channel(NewKey(ib, ia, ic))].add(cosine(b, a, c), w)
	out[g.elems.Channel(NewKey(ic, ia, ib))].add(cosine(c, a, b), w)
}

// localK2 adds every pair formed by the primary atom a and any other site, with full weight.
func (g *geometry) localK2(a int, out []Observations, t *tally) {
	sa := g.sites[a]
	ext := g.w.Extent()
	for b, sb := range g.sites {
		if b == a {
			continue
		}
		d := dist(sa, sb)
		if d == 0 {
			t.coincident++
			continue
		}
		if d > ext {
			continue
		}
		out[g.elems.Channel(NewKey(g.index(sa), g.index(sb)))].add(1/d, g.w.Weight(d))
	}
}

// localK3 adds the three angles of every triplet that contains the primary atom a, with full weight.
func (g *geometry) localK3(a int, out []Observations, t *tally) {
	sa := g.sites[a]
	ext := g.w.Extent()
	n := len(g.sites)
	da := make([]float64, n)
	for b := range g.sites {
		da[b] = dist(sa, g.sites[b])
	}
	for b := 0; b < n; b++ {
		if b == a || 2*da[b] > ext {
			continue
		}
		if da[b] == 0 {
			t.coincident++
			continue
		}
		sb := g.sites[b]
		for c := b + 1; c < n; c++ {
			if c == a || da[c] == 0 || 2*da[c] > ext {
				continue
			}
			sc := g.sites[c]
			dbc := dist(sb, sc)
			if dbc == 0 {
				t.coincident++
				continue
			}
			if 2*dbc > ext {
				continue
			}
			p := perimeter(da[b], da[c], dbc)
			if p > ext {
				continue
			}
			g.angles(sa, sb, sc, g.w.Weight(p), out)
		}
	}
}

type evaluator func(g *geometry, a int, out []Observations, t *tally)

type partial struct {
	obs []Observations
	t   tally
}

// run applies eval to each anchor, splitting the anchors among cpus gorutines. The partial
// lists are concatenated and each channel is sorted, so the result doesn't depend on the number
// of gorutines, or on the order of the atoms in the structure.
func (g *geometry) run(eval evaluator, anchors []int, cpus int, log *zap.Logger) []Observations {
	if cpus > len(anchors) {
		cpus = len(anchors)
	}
	if cpus < 1 {
		cpus = 1
	}
	results := make([]chan *partial, cpus)
	for i := range results {
		results[i] = make(chan *partial, 1)
	}
	for i := 0; i < cpus; i++ {
		go func(w int) {
			p := &partial{obs: make([]Observations, g.channels)}
			for j := w; j < len(anchors); j += cpus {
				eval(g, anchors[j], p.obs, &p.t)
			}
			results[w] <- p
		}(i)
	}
	ret := make([]Observations, g.channels)
	var t tally
	for _, res := range results {
		p := <-res
		for ch := range ret {
			ret[ch].Geometry = append(ret[ch].Geometry, p.obs[ch].Geometry...)
			ret[ch].Weight = append(ret[ch].Weight, p.obs[ch].Weight...)
		}
		t.coincident += p.t.coincident
	}
	total := 0
	for ch := range ret {
		sort.Sort(obsSorter(ret[ch]))
		total += ret[ch].Len()
	}
	if t.coincident > 0 {
		log.Warn("coincident atoms skipped", zap.Int("k", g.k), zap.Int("tuples", t.coincident))
	}
	log.Debug("observations", zap.Int("k", g.k), zap.Int("sites", len(g.sites)), zap.Int("anchors", len(anchors)), zap.Int("observations", total))
	return ret
}
