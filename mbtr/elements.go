/*
 * elements.go, part of gochem.
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
	"strconv"
	"strings"

	chem "github.com/rmera/gochemdesc"
)

// Elements maps the accepted atomic numbers, sorted in ascending order, to the
// indexes 0..n-1. It also provides the layout of the channels for each body order.
// Two Elements built from the same set of atomic numbers are identical.
type Elements struct {
	species []int
	index   map[int]int
}

// NewElements returns the map for the given atomic numbers. Repetitions are ignored.
func NewElements(species []int) (*Elements, error) {
	if len(species) == 0 {
		return nil, configError("NewElements", "No species given")
	}
	set := make(map[int]bool, len(species))
	sp := make([]int, 0, len(species))
	for _, z := range species {
		if z <= 0 || z > chem.MaxZ() {
			return nil, configError("NewElements", "Invalid atomic number %d", z)
		}
		if !set[z] {
			set[z] = true
			sp = append(sp, z)
		}
	}
	sort.Ints(sp)
	E := &Elements{species: sp, index: make(map[int]int, len(sp))}
	for i, z := range sp {
		E.index[z] = i
	}
	return E, nil
}

// ParseSpecies returns the atomic numbers for the given names, each of which
// can be an element symbol or an atomic number.
func ParseSpecies(names []string) ([]int, error) {
	ret := make([]int, len(names))
	for i, n := range names {
		n = strings.TrimSpace(n)
		if z, err := strconv.Atoi(n); err == nil {
			ret[i] = z
			continue
		}
		z, err := chem.SymbolToZ(n)
		if err != nil {
			return nil, configError("ParseSpecies", "Unknown element %q", n)
		}
		ret[i] = z
	}
	return ret, nil
}

// Len returns the number of accepted elements.
func (E *Elements) Len() int {
	return len(E.species)
}

// Species returns a copy of the sorted accepted atomic numbers.
func (E *Elements) Species() []int {
	return append([]int(nil), E.species...)
}

// Index returns the index for the atomic number z, or an error if z is not accepted.
func (E *Elements) Index(z int) (int, error) {
	i, ok := E.index[z]
	if !ok {
		return -1, structureError("Elements.Index", "Unknown species %d, accepted species are %v", z, E.species)
	}
	return i, nil
}

// Check returns the element index of each atom in s, or an error
// if any of them is not accepted.
func (E *Elements) Check(s chem.Atomer) ([]int, error) {
	ret := make([]int, s.Len())
	var err error
	for i := range ret {
		ret[i], err = E.Index(s.Atom(i).Z)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Elements.Check: atom %d", i))
		}
	}
	return ret, nil
}

// Channels returns the number of keys (channels) for the body order k.
func (E *Elements) Channels(k int) int {
	n := len(E.species)
	switch k {
	case 1:
		return n
	case 2:
		return n * (n + 1) / 2
	case 3:
		return n * n * (n + 1) / 2
	}
	panic(fmt.Sprintf("goChem/mbtr: Invalid body order %d", k))
}

// pairIndex is the position of the pair i<=j among all the pairs, in lexicographic order.
func (E *Elements) pairIndex(i, j int) int {
	n := len(E.species)
	return i*n - i*(i-1)/2 + (j - i)
}

// Channel returns the position of the canonical key among all the keys
// of its body order. Keys are ordered lexicographically.
func (E *Elements) Channel(key Key) int {
	switch key.Len {
	case 1:
		return key.I[0]
	case 2:
		return E.pairIndex(key.I[0], key.I[1])
	case 3:
		return key.I[0]*E.Channels(2) + E.pairIndex(key.I[1], key.I[2])
	}
	panic(fmt.Sprintf("goChem/mbtr: Invalid key %v", key))
}

// Key returns the key in the position ch for the body order k. It is
// the inverse of Channel.
func (E *Elements) Key(k, ch int) Key {
	if ch < 0 || ch >= E.Channels(k) {
		panic(fmt.Sprintf("goChem/mbtr: Channel %d out of range for k=%d", ch, k))
	}
	n := len(E.species)
	pair := func(p int) (int, int) {
		for i := 0; i < n; i++ {
			if p < n-i {
				return i, i + p
			}
			p -= n - i
		}
		panic("goChem/mbtr: Pair index out of range")
	}
	switch k {
	case 1:
		return NewKey(ch)
	case 2:
		i, j := pair(ch)
		return NewKey(i, j)
	}
	np := E.Channels(2)
	i, j := pair(ch % np)
	return NewKey(ch/np, i, j)
}

// Keys returns all the keys for the body order k, in ascending order.
func (E *Elements) Keys(k int) []Key {
	ret := make([]Key, E.Channels(k))
	for i := range ret {
		ret[i] = E.Key(k, i)
	}
	return ret
}

// Label returns a human-readable name for the key, using element symbols,
// i.e. "O", "H-O" or "O:H-H", where the element before the colon is the center.
func (E *Elements) Label(key Key) string {
	sym := make([]string, key.Len)
	for i := range sym {
		sym[i], _ = chem.ZToSymbol(E.species[key.I[i]])
	}
	switch key.Len {
	case 1:
		return sym[0]
	case 2:
		return sym[0] + "-" + sym[1]
	case 3:
		return sym[0] + ":" + sym[1] + "-" + sym[2]
	}
	return ""
}
