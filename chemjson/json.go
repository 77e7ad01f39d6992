/*
 * json.go, part of gochem.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/gochemdesc"
	v3 "github.com/rmera/gochemdesc/v3"
)

// A ready-to-serialize container for coordinates
type Coords struct {
	Coords []float64
}

// Header is the first line of a serialized structure.
type Header struct {
	Atoms int
	Cell  []float64 `json:",omitempty"` //the 3 lattice vectors, one after the other
	PBC   [3]bool
}

// An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InOptions     bool //If error, was it in parsing the options?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Atom          int    //which atom, if relevant, -1 otherwise
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	jerr.Atom = -1
	switch where {
	case "options":
		jerr.InOptions = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

// EncodeStructure writes S to out as one header line, one line per atom and one line per set
// of atomic coordinates.
func EncodeStructure(S chem.Structurer, out io.Writer) *Error {
	const funcname = "EncodeStructure"
	enc := json.NewEncoder(out)
	h := Header{Atoms: S.Len(), PBC: S.PBC()}
	if cell := S.Cell(); cell != nil {
		h.Cell = make([]float64, 0, 9)
		for i := 0; i < 3; i++ {
			v := cell.Vec(i)
			h.Cell = append(h.Cell, v.X, v.Y, v.Z)
		}
	}
	if err := enc.Encode(h); err != nil {
		return NewError("postprocess", funcname, err)
	}
	if err := EncodeAtoms(S, enc); err != nil {
		return err
	}
	return EncodeCoords(S.Coords(), enc)
}

// DecodeStructure reads a structure written by EncodeStructure.
func DecodeStructure(stream *bufio.Reader) (*chem.Structure, *Error) {
	const funcname = "DecodeStructure"
	line, err := stream.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, NewError("process", funcname, err)
	}
	h := new(Header)
	if err = json.Unmarshal(line, h); err != nil {
		return nil, NewError("process", funcname, err)
	}
	if h.Atoms <= 0 {
		return nil, NewError("process", funcname, fmt.Errorf("Invalid number of atoms: %d", h.Atoms))
	}
	atoms := make([]*chem.Atom, 0, h.Atoms)
	for i := 0; i < h.Atoms; i++ {
		line, err := stream.ReadBytes('\n') //Using this function allocates a lot without need.
		if err != nil && len(line) == 0 {
			jerr := NewError("process", funcname, fmt.Errorf("Structure ended at atom %d of %d", i, h.Atoms))
			jerr.Atom = i
			return nil, jerr
		}
		at := new(chem.Atom)
		if err = json.Unmarshal(line, at); err != nil {
			jerr := NewError("process", funcname, err)
			jerr.Atom = i
			return nil, jerr
		}
		atoms = append(atoms, at)
	}
	coords, jerr := DecodeCoords(stream, h.Atoms)
	if jerr != nil {
		jerr.Decorate(funcname)
		return nil, jerr
	}
	var cell *v3.Matrix
	if h.Cell != nil {
		cell, err = v3.NewMatrix(h.Cell)
		if err != nil || cell.NVecs() != 3 {
			return nil, NewError("process", funcname, fmt.Errorf("Invalid cell %v", h.Cell))
		}
	}
	s, err := chem.NewStructure(atoms, coords, cell, h.PBC)
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	return s, nil
}

// Decodecoords decodes streams from a bufio.Reader containing 3*atomnumber JSON floats into a v3.Matrix with atomnumber rows.
func DecodeCoords(stream *bufio.Reader, atomnumber int) (*v3.Matrix, *Error) {
	const funcname = "DecodeCoords"
	rawcoords := make([]float64, 0, 3*atomnumber)
	for i := 0; i < atomnumber; i++ {
		line, err := stream.ReadBytes('\n')
		if err != nil && len(line) == 0 {
			break
		}
		ctemp := new(Coords)
		if err = json.Unmarshal(line, ctemp); err != nil {
			jerr := NewError("process", funcname, err)
			jerr.Atom = i
			return nil, jerr
		}
		if len(ctemp.Coords) != 3 {
			jerr := NewError("process", funcname, fmt.Errorf("Atom %d has %d coordinates", i, len(ctemp.Coords)))
			jerr.Atom = i
			return nil, jerr
		}
		rawcoords = append(rawcoords, ctemp.Coords...)
	}
	if len(rawcoords) != 3*atomnumber {
		return nil, NewError("process", funcname, fmt.Errorf("Expected %d coordinates, got %d", 3*atomnumber, len(rawcoords)))
	}
	coords, err := v3.NewMatrix(rawcoords)
	if err != nil {
		return nil, NewError("process", funcname, err)
	}
	return coords, nil
}

// Encodes a goChem Atomer into a JSON
func EncodeAtoms(mol chem.Atomer, enc *json.Encoder) *Error {
	const funcname = "EncodeAtoms"
	if mol == nil {
		return nil //Its assumed to be intentional.
	}
	for i := 0; i < mol.Len(); i++ {
		if err := enc.Encode(mol.Atom(i)); err != nil {
			jerr := NewError("postprocess", funcname, err)
			jerr.Atom = i
			return jerr
		}
	}
	return nil
}

// Encodes a set of coordinates into JSON
func EncodeCoords(coords *v3.Matrix, enc *json.Encoder) *Error {
	c := new(Coords)
	t := make([]float64, 3)
	for i := 0; i < coords.NVecs(); i++ {
		c.Coords = vecRow(t, coords, i)
		if err := enc.Encode(c); err != nil {
			return NewError("postprocess", "chemjson.EncodeCoords", err)
		}
	}
	return nil
}

func vecRow(dst []float64, coords *v3.Matrix, i int) []float64 {
	v := coords.Vec(i)
	dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
	return dst
}
