/*
 * weighting.go, part of gochem.
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
	"strings"
)

// Weighting is a decay function applied to a geometric extent (a distance for k=2,
// the perimeter of a triplet for k=3). The only implementations are Unity and Exponential.
type Weighting interface {
	//Weight returns the weight for the extent x.
	Weight(x float64) float64

	//Extent returns the largest extent with a weight not below the cutoff.
	//It is +Inf for weightings without a cutoff.
	Extent() float64

	//Name returns the name used in configuration files.
	Name() string

	validate(caller string) error
}

// Unity weights every tuple with 1. It is only valid for finite structures.
type Unity struct{}

func (u Unity) Weight(x float64) float64 { return 1 }

func (u Unity) Extent() float64 { return math.Inf(1) }

func (u Unity) Name() string { return "unity" }

func (u Unity) validate(caller string) error { return nil }

// Exponential weights a tuple with exp(-Scale*x). Tuples with a weight below Cutoff
// are not included in the descriptor.
type Exponential struct {
	Scale  float64
	Cutoff float64
}

func (e Exponential) Weight(x float64) float64 {
	return math.Exp(-e.Scale * x)
}

// Extent returns -ln(Cutoff)/Scale.
func (e Exponential) Extent() float64 {
	return -math.Log(e.Cutoff) / e.Scale
}

func (e Exponential) Name() string { return "exponential" }

func (e Exponential) validate(caller string) error {
	if !(e.Scale > 0) || math.IsInf(e.Scale, 0) {
		return configError(caller, "Exponential weighting needs a positive scale, got %g", e.Scale)
	}
	if !(e.Cutoff > 0 && e.Cutoff < 1) {
		return configError(caller, "Exponential weighting needs a cutoff in (0,1), got %g", e.Cutoff)
	}
	return nil
}

// ParseWeighting returns the weighting with the given name ("unity" or "exponential").
// Scale and cutoff are required for the exponential weighting, and ignored otherwise.
func ParseWeighting(name string, scale, cutoff *float64) (Weighting, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unity":
		return Unity{}, nil
	case "exponential":
		if scale == nil || cutoff == nil {
			return nil, configError("ParseWeighting", "Exponential weighting needs both scale and cutoff")
		}
		e := Exponential{Scale: *scale, Cutoff: *cutoff}
		if err := e.validate("ParseWeighting"); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, configError("ParseWeighting", "Unknown weighting function %q", name)
}
