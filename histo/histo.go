/*
 * histo.go, part of gochem.
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

//Package histo provides curves obtained by smearing weighted data points with Gaussians on an
//evenly spaced axis, and matrices of such curves sharing the same axis.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

var sqrt2pi = math.Sqrt(2 * math.Pi)

// Axis returns n evenly spaced points from min to max, both included.
// It panics if n < 2 or min >= max.
func Axis(min, max float64, n int) []float64 {
	if n < 2 || min >= max {
		panic(fmt.Sprintf("goChem/histo.Axis: Invalid axis min:%g max:%g n:%d", min, max, n))
	}
	return floats.Span(make([]float64, n), min, max)
}

// Gaussian returns the value at x of a Gaussian centered at mu with width sigma.
// if normalized is true, the Gaussian integrates to 1, otherwise, its peak is 1.
func Gaussian(x, mu, sigma float64, normalized bool) float64 {
	d := x - mu
	g := math.Exp(-d * d / (2 * sigma * sigma))
	if normalized {
		g /= sigma * sqrt2pi
	}
	return g
}

// A matrix of curves sharing the same axis, Gaussian width and normalization.
type Matrix struct {
	rows, cols int     //total
	d          []*Data //row-major
	axis       []float64
	sigma      float64
	normalized bool
}

// NewMatrix returns a new matrix of r rows and c columns filled with empty curves on axis.
func NewMatrix(r, c int, axis []float64, sigma float64, normalized bool) *Matrix {
	ret := new(Matrix)
	ret.rows = r
	ret.cols = c
	ret.d = make([]*Data, r*c)
	ret.axis = axis
	ret.sigma = sigma
	ret.normalized = normalized
	ret.Fill()
	return ret
}

func (M *Matrix) Dims() (int, int) {
	return M.rows, M.cols
}

// Axis returns the shared axis. It should not be modified.
func (M *Matrix) Axis() []float64 {
	return M.axis
}

func (M *Matrix) String() string {
	ret := fmt.Sprintf("rows:%d cols:%d | Data:\n", M.rows, M.cols)
	t := make([]string, 0, len(M.d))
	for _, v := range M.d {
		t = append(t, v.String())
	}
	return ret + strings.Join(t, "\n\n")
}

type jsonMatrix struct {
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	D          []*Data   `json:"data"`
	Axis       []float64 `json:"axis"`
	Sigma      float64   `json:"sigma"`
	Normalized bool      `json:"normalized"`
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMatrix{Rows: M.rows, Cols: M.cols, D: M.d, Axis: M.axis, Sigma: M.sigma, Normalized: M.normalized})
}

func (M *Matrix) UnmarshalJSON(b []byte) error {
	var a jsonMatrix
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.D) != a.Rows*a.Cols {
		return fmt.Errorf("goChem/histo.Matrix.UnmarshalJSON: %d curves for a %dx%d matrix", len(a.D), a.Rows, a.Cols)
	}
	M.rows = a.Rows
	M.cols = a.Cols
	M.d = a.D
	M.axis = a.Axis
	M.sigma = a.Sigma
	M.normalized = a.Normalized
	return nil
}

// returns the index in the []*Data slice of a matrix given
// the row and column indexes.
func (M *Matrix) rc2i(r, c int) int {
	M.Check(r, c, true)
	return M.cols*r + c
}

// Fill fills the matrix with empty curves
func (M *Matrix) Fill() {
	for i := 0; i < M.rows; i++ {
		for j := 0; j < M.cols; j++ {
			M.d[M.rc2i(i, j)] = NewData(M.axis, M.sigma, M.normalized, M.rc2i(i, j))
		}
	}
}

// Check checks if the given row and column indexes are within range.
// if pan is given and true, it panics if either is out of range,
// otherwise, it returns an error.
func (M *Matrix) Check(r, c int, pan ...bool) error {
	var err error
	if r >= M.rows || r < 0 {
		err = fmt.Errorf("goChem/Histo: Row out of range")
	}
	if c >= M.cols || c < 0 {
		err = fmt.Errorf("goChem/Histo: Column out of range")
	}
	if err != nil && len(pan) > 0 && pan[0] {
		panic(err.Error())
	}
	return err
}

// View Returns a view of the curve in the r,c position in the matrix
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

// Set puts D in the r,c position in the matrix. It panics if D doesn't have the axis of the matrix.
func (M *Matrix) Set(r, c int, D *Data) {
	if !floats.Equal(M.axis, D.axis) {
		panic("goChem/histo.Matrix.Set: The curve doesn't have the axis of the matrix")
	}
	M.d[M.rc2i(r, c)] = D
}

// AddData smears one or more data points, all with the given weight, onto the curve in the r,c position.
func (M *Matrix) AddData(r, c int, weight float64, point ...float64) {
	M.d[M.rc2i(r, c)].AddData(weight, point...)
}

// Scale multiplies every curve in the matrix by f.
func (M *Matrix) Scale(f float64) {
	for _, v := range M.d {
		v.Scale(f)
	}
}

// Dense returns a rows*cols x len(axis) gonum matrix with one curve per row,
// in row-major order of the curves.
func (M *Matrix) Dense() *mat.Dense {
	n := len(M.axis)
	data := make([]float64, 0, len(M.d)*n)
	for _, v := range M.d {
		data = append(data, v.curve...)
	}
	return mat.NewDense(len(M.d), n, data)
}

// Data is a curve on an evenly spaced axis, built by adding one
// weighted Gaussian per data point.
type Data struct {
	id         int
	normalized bool
	sigma      float64
	total      int
	axis       []float64
	curve      []float64
}

type jsonData struct {
	ID         int       `json:"id"`
	Normalized bool      `json:"normalized"`
	Sigma      float64   `json:"sigma"`
	Total      int       `json:"total"`
	Axis       []float64 `json:"axis"`
	Curve      []float64 `json:"curve"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{ID: D.id, Normalized: D.normalized, Sigma: D.sigma, Total: D.total, Axis: D.axis, Curve: D.curve})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	if len(a.Axis) != len(a.Curve) {
		return fmt.Errorf("goChem/histo.Data.UnmarshalJSON: axis and curve lengths differ")
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.sigma = a.Sigma
	D.total = a.Total
	D.axis = a.Axis
	D.curve = a.Curve
	return nil
}

// ID returns the ID of the curve
func (D *Data) ID() int {
	return D.id
}

// String prints a -hopefully- pretty string representation of
// the curve.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, Sigma: %g, TotalData: %d\n", D.id, D.normalized, D.sigma, D.total)
	d := make([]string, 0, len(D.axis))
	h := make([]string, 0, len(D.axis))
	for i, v := range D.curve {
		d = append(d, fmt.Sprintf("%9.3f", D.axis[i]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// NewData returns a new, empty curve on axis, which smears each point with a Gaussian of width sigma.
// If an ID for the curve is given, it will be set. If not, the ID will
// be set to -1. It panics if sigma is not positive.
func NewData(axis []float64, sigma float64, normalized bool, ID ...int) *Data {
	if sigma <= 0 {
		panic("goChem/histo.NewData: sigma must be positive")
	}
	d := new(Data)
	d.axis = axis
	d.sigma = sigma
	d.normalized = normalized
	d.curve = make([]float64, len(axis))
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

// AddData adds the given data point(s) to the curve, each smeared with a Gaussian scaled by weight.
func (D *Data) AddData(weight float64, point ...float64) {
	for _, v := range point {
		D.add(v, weight)
	}
}

// AddWeighted adds each point in points with the corresponding weight. It panics
// if the slices have different lengths.
func (D *Data) AddWeighted(points, weights []float64) {
	if len(points) != len(weights) {
		panic("goChem/histo.Data.AddWeighted: points and weights have different lengths")
	}
	for i, v := range points {
		D.add(v, weights[i])
	}
}

func (D *Data) add(x, w float64) {
	for j, g := range D.axis {
		D.curve[j] += w * Gaussian(g, x, D.sigma, D.normalized)
	}
	D.total++
}

// Total returns the number of data points added.
func (D *Data) Total() int {
	return D.total
}

// Sigma returns the Gaussian width of the curve.
func (D *Data) Sigma() float64 {
	return D.sigma
}

// Normalized returns whether the Gaussians added to the curve integrate to one.
func (D *Data) Normalized() bool {
	return D.normalized
}

// Axis returns the axis of the curve. It should not be modified.
func (D *Data) Axis() []float64 {
	return D.axis
}

// View returns the values of the curve. Changes on the returned slice are
// reflected on the curve.
func (D *Data) View() []float64 {
	return D.curve
}

// Integral returns the integral of the curve over its axis, by the trapezoidal rule.
func (D *Data) Integral() float64 {
	return integrate.Trapezoidal(D.axis, D.curve)
}

// Sum returns the sum of the values of the curve.
func (D *Data) Sum() float64 {
	return floats.Sum(D.curve)
}

// Scale multiplies the curve by f.
func (D *Data) Scale(f float64) {
	floats.Scale(f, D.curve)
}

// Peak returns the axis value where the curve is largest, and the value of the curve there.
func (D *Data) Peak() (float64, float64) {
	i := floats.MaxIdx(D.curve)
	return D.axis[i], D.curve[i]
}

// Copy returns a deep copy of the curve.
// The axis is shared, as it is never modified.
func (D *Data) Copy() *Data {
	r := new(Data)
	*r = *D
	r.curve = make([]float64, len(D.curve))
	copy(r.curve, D.curve)
	return r
}
