/*
 * atomicdata.go, part of gochem.
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

import (
	"fmt"
	"strings"
)

// symbols holds the element symbols indexed by atomic number.
// Index 0 is a placeholder for dummy atoms.
var symbols = [...]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var symbolZ map[string]int

func init() {
	symbolZ = make(map[string]int, len(symbols))
	for z, s := range symbols {
		if z == 0 {
			continue
		}
		symbolZ[s] = z
	}
}

// A map for assigning mass to elements.
// Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

// normalizeSymbol turns "CL", "cl" or " Cl" into "Cl".
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// SymbolToZ returns the atomic number for the element symbol sym.
// The symbol is not case-sensitive.
func SymbolToZ(sym string) (int, error) {
	z, ok := symbolZ[normalizeSymbol(sym)]
	if !ok {
		return 0, CError{fmt.Sprintf("goChem: Unknown element symbol %q", sym), []string{"SymbolToZ"}}
	}
	return z, nil
}

// ZToSymbol returns the element symbol for the atomic number z.
func ZToSymbol(z int) (string, error) {
	if z <= 0 || z >= len(symbols) {
		return "", CError{fmt.Sprintf("goChem: Atomic number %d out of range", z), []string{"ZToSymbol"}}
	}
	return symbols[z], nil
}

// MaxZ is the largest atomic number goChem knows about.
func MaxZ() int {
	return len(symbols) - 1
}
