/*
 * chem.go, part of gochem.
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

import "fmt"

/**Note: Many funcitons here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and should
 * crash. Most panics are related to using the funciton on a nil object or trying to access out-of bounds
 * fields**/

// Atom contains the atoms read except for the coordinates, which will be in a matrix.
type Atom struct {
	Name   string
	Id     int
	Tag    int //Just added this for something that someone might want to keep that is not a float.
	Z      int //atomic number
	Mass   float64
	Charge float64
	Symbol string
}

//Atom methods

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	*Newat = *A
	return Newat
}

// Fill completes the Z, Symbol and Mass of the atom from whichever
// of Z or Symbol is set. It returns an error if neither is a known element.
func (A *Atom) Fill() error {
	var err error
	switch {
	case A.Z > 0:
		A.Symbol, err = ZToSymbol(A.Z)
	case A.Symbol != "":
		A.Symbol = normalizeSymbol(A.Symbol)
		A.Z, err = SymbolToZ(A.Symbol)
	default:
		err = CError{"goChem: Atom without symbol or atomic number", []string{}}
	}
	if err != nil {
		return errDecorate(err, "Atom.Fill")
	}
	if A.Mass == 0 {
		A.Mass = symbolMass[A.Symbol]
	}
	return nil
}

/*****Topology type***/

// Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates)
type Topology struct {
	Atoms []*Atom
}

// NewTopology builds a topology from ats. Each atom gets its missing element data filled in.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, CError{"goChem: Supplied a nil atom slice", []string{"NewTopology"}}
	}
	for i, at := range ats {
		if at == nil {
			return nil, CError{fmt.Sprintf("goChem: Atom %d is nil", i), []string{"NewTopology"}}
		}
		if err := at.Fill(); err != nil {
			return nil, errDecorate(err, fmt.Sprintf("NewTopology: atom %d", i))
		}
	}
	return &Topology{Atoms: ats}, nil
}

/*Topology methods*/

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic(ErrNoAtom)
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// CopyAtoms returns a deep copy of the atom slice.
func (T *Topology) CopyAtoms() []*Atom {
	ret := make([]*Atom, len(T.Atoms))
	for i, at := range T.Atoms {
		ret[i] = at.Copy()
	}
	return ret
}

// Species returns the sorted set of atomic numbers present in the topology.
func (T *Topology) Species() []int {
	seen := make(map[int]bool)
	ret := make([]int, 0, 4)
	for _, at := range T.Atoms {
		if !seen[at.Z] {
			seen[at.Z] = true
			ret = append(ret, at.Z)
		}
	}
	sortInts(ret)
	return ret
}
