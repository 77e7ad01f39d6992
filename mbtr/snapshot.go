/*
 * snapshot.go, part of gochem.
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
	"encoding/json"
	"io"
	"sort"

	"github.com/klauspost/compress/zstd"
)

// Snapshot contains the observations gathered from one structure (or one atomic environment,
// for local descriptors), for each body order and channel. It is produced by the geometric pass,
// which is the expensive part of the descriptor, and can be rasterized on different grids
// without repeating it. A Snapshot is never modified after it is created.
type Snapshot struct {
	species []int
	volume  float64 //0 for non-periodic structures
	local   int     //the center atom for local snapshots, -1 otherwise
	orders  map[int][]Observations
}

// Species returns the accepted atomic numbers of the descriptor that produced the snapshot.
func (S *Snapshot) Species() []int {
	return append([]int(nil), S.species...)
}

// Volume returns the cell volume of the structure, or 0 if it was not treated as periodic.
func (S *Snapshot) Volume() float64 {
	return S.volume
}

// Center returns the index of the center atom of a local snapshot, or -1 for global ones.
func (S *Snapshot) Center() int {
	return S.local
}

// Orders returns the body orders present in the snapshot, in ascending order.
func (S *Snapshot) Orders() []int {
	ret := make([]int, 0, len(S.orders))
	for k := range S.orders {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

// Channels returns the number of channels for the body order k, or 0 if k is not present.
func (S *Snapshot) Channels(k int) int {
	return len(S.orders[k])
}

// Observations returns a copy of the observations in the channel ch of the body order k.
// It panics if the channel doesn't exist.
func (S *Snapshot) Observations(k, ch int) Observations {
	return S.orders[k][ch].Copy()
}

type jsonSnapshot struct {
	Species []int                  `json:"species"`
	Volume  float64                `json:"volume"`
	Local   int                    `json:"local"`
	Orders  map[int][]Observations `json:"orders"`
}

// countWriter counts the bytes written through it.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the snapshot to w as zstd-compressed JSON.
// It returns the number of compressed bytes written.
func (S *Snapshot) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return 0, structureError("Snapshot.WriteTo", "Can't create compressor: %s", err.Error())
	}
	js := jsonSnapshot{Species: S.species, Volume: S.volume, Local: S.local, Orders: S.orders}
	if err = json.NewEncoder(enc).Encode(js); err != nil {
		enc.Close()
		return cw.n, structureError("Snapshot.WriteTo", "Can't encode snapshot: %s", err.Error())
	}
	if err = enc.Close(); err != nil {
		return cw.n, structureError("Snapshot.WriteTo", "Can't write snapshot: %s", err.Error())
	}
	return cw.n, nil
}

// ReadSnapshot reads a snapshot written by Snapshot.WriteTo.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, structureError("ReadSnapshot", "Can't create decompressor: %s", err.Error())
	}
	defer dec.Close()
	var js jsonSnapshot
	if err = json.NewDecoder(dec).Decode(&js); err != nil {
		return nil, structureError("ReadSnapshot", "Can't decode snapshot: %s", err.Error())
	}
	if len(js.Species) == 0 {
		return nil, structureError("ReadSnapshot", "Snapshot without species")
	}
	for k, obs := range js.Orders {
		if k < 1 || k > 3 {
			return nil, structureError("ReadSnapshot", "Invalid body order %d in snapshot", k)
		}
		for ch, o := range obs {
			if len(o.Geometry) != len(o.Weight) {
				return nil, structureError("ReadSnapshot", "Channel %d of k=%d has %d geometry values and %d weights", ch, k, len(o.Geometry), len(o.Weight))
			}
		}
	}
	return &Snapshot{species: js.Species, volume: js.Volume, local: js.Local, orders: js.Orders}, nil
}
