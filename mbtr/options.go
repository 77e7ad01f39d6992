/*
 * options.go, part of gochem.
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
	"runtime"

	"github.com/rmera/gochemdesc/histo"
	"go.uber.org/zap"
)

// Grid defines N evenly spaced points on [Min,Max], where the observations
// of a body order are smeared with Gaussians of width Sigma.
type Grid struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	N     int     `json:"n"`
	Sigma float64 `json:"sigma"`
}

// Axis returns the grid points.
func (g Grid) Axis() []float64 {
	return histo.Axis(g.Min, g.Max, g.N)
}

func (g Grid) validate(caller string, k int) error {
	if g.N < 2 {
		return configError(caller, "The grid for k=%d needs at least 2 points, got %d", k, g.N)
	}
	if !(g.Min < g.Max) || math.IsInf(g.Min, 0) || math.IsInf(g.Max, 0) {
		return configError(caller, "Invalid grid range [%g,%g] for k=%d", g.Min, g.Max, k)
	}
	if !(g.Sigma > 0) || math.IsInf(g.Sigma, 0) {
		return configError(caller, "The grid for k=%d needs a positive sigma, got %g", k, g.Sigma)
	}
	return nil
}

// Config contains the settings that define a descriptor.
type Config struct {
	//Species are the accepted atomic numbers.
	Species []int

	//K are the body orders to compute, a non-empty subset of {1,2,3}.
	K []int

	//Grids contains one grid for each body order in K.
	Grids map[int]Grid

	//Weighting contains the weighting for k=2 and k=3. A missing weighting means Unity,
	//which is only valid for non-periodic descriptors.
	Weighting map[int]Weighting
}

// Options contains the settings that modify how the descriptor is computed.
type Options struct {
	periodic           bool
	flatten            bool
	sparse             bool
	normalizeGaussians bool
	normalizeByVolume  bool
	cpus               int
	logger             *zap.Logger
}

// DefaultOptions returns non-periodic, flattened, dense options, with normalized
// Gaussians, no volume normalization, all logical CPUs, and a logger that discards everything.
func DefaultOptions() *Options {
	r := new(Options)
	r.flatten = true
	r.normalizeGaussians = true
	r.cpus = runtime.NumCPU()
	r.logger = zap.NewNop()
	return r
}

// Periodic returns whether structures are treated as periodic,
// and sets it to a new value, if given.
func (O *Options) Periodic(b ...bool) bool {
	if len(b) > 0 {
		O.periodic = b[0]
	}
	return O.periodic
}

// Flatten returns whether the output is a 1D vector,
// and sets it to a new value, if given.
func (O *Options) Flatten(b ...bool) bool {
	if len(b) > 0 {
		O.flatten = b[0]
	}
	return O.flatten
}

// Sparse returns whether the output is a sparse vector,
// and sets it to a new value, if given.
func (O *Options) Sparse(b ...bool) bool {
	if len(b) > 0 {
		O.sparse = b[0]
	}
	return O.sparse
}

// NormalizeGaussians returns whether each Gaussian integrates to its weight (true),
// or has a peak equal to its weight (false), and sets it to a new value, if given.
func (O *Options) NormalizeGaussians(b ...bool) bool {
	if len(b) > 0 {
		O.normalizeGaussians = b[0]
	}
	return O.normalizeGaussians
}

// NormalizeByVolume returns whether the output is divided by the cell volume,
// and sets it to a new value, if given.
func (O *Options) NormalizeByVolume(b ...bool) bool {
	if len(b) > 0 {
		O.normalizeByVolume = b[0]
	}
	return O.normalizeByVolume
}

// Returns the number of gorutines to be used,
// and sets it to a new value, if given.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

// Logger returns the logger used by the descriptor,
// and sets it to a new value, if given and not nil.
func (O *Options) Logger(l ...*zap.Logger) *zap.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}

func (O *Options) copy() *Options {
	r := new(Options)
	*r = *O
	if r.cpus <= 0 {
		r.cpus = 1
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}
