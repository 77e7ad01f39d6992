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
Package chem is the main package of the goChem descriptors library. It provides atom and
structure types, the periodic table data needed to go from element symbols to atomic
numbers, and facilities for reading and writing (extended) XYZ files.

A Structure is a set of atoms with one set of cartesian coordinates and, optionally,
a cell given by three lattice vectors (rows of a v3.Matrix) and a periodicity flag per
cell axis. Structures can be wrapped into their cell, translated, rotated, and repeated
into supercells.

The descriptors themselves live in the mbtr package, which consumes anything implementing
the Structurer interface.

	**Other packages**

	v3: Nx3 matrices for coordinates and cells, built on gonum.

	histo: Gaussian-smeared curves on an evenly spaced grid.

	mbtr: The many-body tensor representation.

	chemjson: JSON encoding of structures.

	chemplot: Plots of descriptor spectra.
*/
package chem
