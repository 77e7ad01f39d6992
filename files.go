/*
 * files.go, part of gochem.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/gochemdesc/v3"
)

// XYZRead reads an xyz file and returns a Structure.
// Extended-XYZ comment lines with Lattice="ax ay az bx by bz cx cy cz"
// and pbc="T T T" entries give the cell and its periodicity.
func XYZRead(xyzname string) (*Structure, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "XYZRead"}}
	}
	defer xyzfile.Close()
	s, err := XYZFileRead(xyzfile)
	if err != nil {
		return nil, errDecorate(err, "XYZRead "+xyzname)
	}
	return s, nil
}

// XYZFileRead reads the first frame of an xyz stream.
func XYZFileRead(xyzp io.Reader) (*Structure, error) {
	xyz := bufio.NewReader(xyzp)
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, CError{"goChem: Empty or unreadable XYZ file", []string{"XYZFileRead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, CError{"goChem: Ill formatted XYZ file, bad number of atoms", []string{"strconv.Atoi", "XYZFileRead"}}
	}
	comment, err := xyz.ReadString('\n')
	if err != nil {
		return nil, CError{"goChem: Ill formatted XYZ file, missing comment line", []string{"XYZFileRead"}}
	}
	cell, pbc, err := parseExtendedComment(comment)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	molecule := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return nil, CError{fmt.Sprintf("goChem: XYZ file ended at atom %d of %d", i, natoms), []string{"XYZFileRead"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, CError{fmt.Sprintf("goChem: Line number %d ill formed", i+3), []string{"XYZFileRead"}}
		}
		molecule[i] = new(Atom)
		if z, err := strconv.Atoi(fields[0]); err == nil {
			molecule[i].Z = z
		} else {
			molecule[i].Symbol = fields[0]
		}
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("goChem: Bad coordinate in line %d: %s", i+3, err.Error()), []string{"strconv.ParseFloat", "XYZFileRead"}}
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	s, err := NewStructure(molecule, mcoords, cell, pbc)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	return s, nil
}

// parseExtendedComment extracts the Lattice and pbc fields of an extended xyz comment line.
// A Lattice without pbc means periodic along all axes.
func parseExtendedComment(comment string) (*v3.Matrix, [3]bool, error) {
	var pbc [3]bool
	lat, ok := quotedField(comment, "Lattice")
	if !ok {
		return nil, pbc, nil
	}
	fields := strings.Fields(lat)
	if len(fields) != 9 {
		return nil, pbc, CError{"goChem: Lattice must have 9 numbers", []string{"parseExtendedComment"}}
	}
	data := make([]float64, 9)
	var err error
	for i, f := range fields {
		data[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, pbc, CError{"goChem: Bad Lattice value " + f, []string{"strconv.ParseFloat", "parseExtendedComment"}}
		}
	}
	cell, _ := v3.NewMatrix(data)
	p, ok := quotedField(comment, "pbc")
	if !ok {
		return cell, [3]bool{true, true, true}, nil
	}
	flags := strings.Fields(p)
	if len(flags) != 3 {
		return nil, pbc, CError{"goChem: pbc must have 3 flags", []string{"parseExtendedComment"}}
	}
	for i, f := range flags {
		switch strings.ToUpper(f) {
		case "T", "TRUE", "1":
			pbc[i] = true
		case "F", "FALSE", "0":
		default:
			return nil, pbc, CError{"goChem: Bad pbc flag " + f, []string{"parseExtendedComment"}}
		}
	}
	return cell, pbc, nil
}

// quotedField returns the value of key="value" in line.
func quotedField(line, key string) (string, bool) {
	lower := strings.ToLower(line)
	i := strings.Index(lower, strings.ToLower(key)+"=\"")
	if i < 0 {
		return "", false
	}
	rest := line[i+len(key)+2:]
	j := strings.Index(rest, "\"")
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}

// XYZWrite writes the structure in an XYZ file with name xyzname which will
// be created fot that. If the file exist it will be overwriten.
func XYZWrite(xyzname string, S Structurer) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "XYZWrite"}}
	}
	defer out.Close()
	if err = XYZFileWrite(out, S); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	return nil
}

// XYZFileWrite writes the structure to out in extended xyz format.
func XYZFileWrite(out io.Writer, S Structurer) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%-4d\n", S.Len())
	if cell := S.Cell(); cell != nil {
		l := make([]string, 0, 9)
		for i := 0; i < 3; i++ {
			v := cell.Vec(i)
			l = append(l, strconv.FormatFloat(v.X, 'f', -1, 64), strconv.FormatFloat(v.Y, 'f', -1, 64), strconv.FormatFloat(v.Z, 'f', -1, 64))
		}
		p := S.PBC()
		fmt.Fprintf(w, "Lattice=\"%s\" pbc=\"%s %s %s\"\n", strings.Join(l, " "), tf(p[0]), tf(p[1]), tf(p[2]))
	} else {
		fmt.Fprintf(w, "\n")
	}
	coords := S.Coords()
	for i := 0; i < S.Len(); i++ {
		c := coords.Vec(i)
		fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f \n", S.Atom(i).Symbol, c.X, c.Y, c.Z)
	}
	if err := w.Flush(); err != nil {
		return CError{err.Error(), []string{"bufio.Flush", "XYZFileWrite"}}
	}
	return nil
}

func tf(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
