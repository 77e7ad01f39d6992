/*
 * doc.go, part of gochem.
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

/*
Package mbtr implements the many-body tensor representation (MBTR), a fixed-length
descriptor of atomic structures meant to be used as input for machine learning.

For the body orders k=1 (atoms), k=2 (pairs) and k=3 (triplets) the descriptor gathers,
for each combination of elements (a channel), one observation per tuple of atoms: the atomic
number for k=1, the inverse distance for k=2 and the cosine of the angle at the central
atom for k=3. Each observation carries a weight, which decays with the distance (k=2) or the
perimeter of the triplet (k=3) when an Exponential weighting is used. Periodic structures
include the images of their atoms within the cutoff of the weighting.

The observations of each channel are then smeared with Gaussians on an evenly spaced grid,
and the grids of all channels are concatenated, in ascending order of body order and key.

The geometric pass (Initialize) and the smearing pass (Rasterize) are separated, so a Snapshot
can be rasterized on different grids without repeating the, much more expensive, geometric pass.
Create does both.

A minimal use:

	cfg := mbtr.Config{
		Species: []int{1, 8},
		K:       []int{1, 2},
		Grids: map[int]mbtr.Grid{
			1: {Min: 0, Max: 10, N: 100, Sigma: 0.1},
			2: {Min: 0, Max: 1.5, N: 100, Sigma: 0.01},
		},
	}
	desc, err := mbtr.New(cfg)
	//handle err
	out, err := desc.Create(water)
	//out.Dense has desc.NumberOfFeatures() values.
*/
package mbtr
