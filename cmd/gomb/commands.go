/*
 * commands.go, part of gochem.
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

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	chem "github.com/rmera/gochemdesc"
	"github.com/rmera/gochemdesc/chemjson"
	"github.com/rmera/gochemdesc/chemplot"
	"github.com/rmera/gochemdesc/histo"
	"github.com/rmera/gochemdesc/mbtr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readStructure reads a goChem JSON file if name has a .json extension, and an
// extended XYZ file otherwise.
func readStructure(name string) (*chem.Structure, error) {
	if !strings.EqualFold(filepath.Ext(name), ".json") {
		return chem.XYZRead(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, jerr := chemjson.DecodeStructure(bufio.NewReader(f))
	if jerr != nil {
		return nil, jerr
	}
	return s, nil
}

// writeJSON writes v to the file path, or to w if path is empty.
func writeJSON(w io.Writer, path string, v interface{}) error {
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return json.NewEncoder(w).Encode(v)
}

// orderFromName returns the body order for names like "k2" or "2".
func orderFromName(name string) (int, error) {
	k, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "k"))
	if err != nil {
		return 0, fmt.Errorf("gomb: invalid body order %q", name)
	}
	return k, nil
}

func (a *app) createCmd() *cobra.Command {
	var local []int
	var out string
	cmd := &cobra.Command{
		Use:   "create structure",
		Short: "Computes the descriptor of a structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.cfg.Descriptor(a.log)
			if err != nil {
				return err
			}
			s, err := readStructure(args[0])
			if err != nil {
				return err
			}
			if len(local) > 0 {
				outs, err := m.CreateLocal(s, local)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), out, outs)
			}
			o, err := m.Create(s)
			if err != nil {
				return err
			}
			a.log.Info("descriptor created", zap.String("structure", args[0]), zap.Int("features", m.NumberOfFeatures()))
			return writeJSON(cmd.OutOrStdout(), out, o)
		},
	}
	cmd.Flags().IntSliceVar(&local, "local", nil, "compute the local descriptors centered on these atoms")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: standard output)")
	return cmd
}

func (a *app) featuresCmd() *cobra.Command {
	var keys bool
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Prints the layout of the descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.cfg.Descriptor(a.log)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, k := range m.K() {
				g, _ := m.Grid(k)
				fmt.Fprintf(w, "k=%d: %d channels x %d points\n", k, m.Elements().Channels(k), g.N)
				if !keys {
					continue
				}
				for _, key := range m.Keys(k) {
					fmt.Fprintf(w, "  %-10s %-8s offset %d\n", m.Elements().Label(key), key, m.Offset(k, key))
				}
			}
			fmt.Fprintf(w, "total: %d\n", m.NumberOfFeatures())
			return nil
		},
	}
	cmd.Flags().BoolVar(&keys, "keys", false, "also print every channel with its offset")
	return cmd
}

func (a *app) snapshotCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "snapshot structure",
		Short: "Stores the observations of a structure, to be rasterized later with regrid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("gomb: an output file is needed")
			}
			m, err := a.cfg.Descriptor(a.log)
			if err != nil {
				return err
			}
			s, err := readStructure(args[0])
			if err != nil {
				return err
			}
			snap, err := m.Initialize(s)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			n, err := snap.WriteTo(f)
			if err != nil {
				return err
			}
			a.log.Info("snapshot written", zap.String("file", out), zap.Int64("bytes", n))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "snapshot file")
	return cmd
}

func (a *app) regridCmd() *cobra.Command {
	var out string
	var sigmas map[string]string
	cmd := &cobra.Command{
		Use:   "regrid snapshot",
		Short: "Rasterizes a stored snapshot, optionally with other Gaussian widths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.cfg.Descriptor(a.log)
			if err != nil {
				return err
			}
			grids := make(map[int]mbtr.Grid, len(sigmas))
			for name, val := range sigmas {
				k, err := orderFromName(name)
				if err != nil {
					return err
				}
				g, ok := m.Grid(k)
				if !ok {
					return fmt.Errorf("gomb: body order %d not in the descriptor", k)
				}
				g.Sigma, err = strconv.ParseFloat(val, 64)
				if err != nil {
					return fmt.Errorf("gomb: invalid sigma %q for k=%d", val, k)
				}
				grids[k] = g
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			snap, err := mbtr.ReadSnapshot(f)
			if err != nil {
				return err
			}
			o, err := m.Rasterize(snap, grids)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out, o)
		},
	}
	cmd.Flags().StringToStringVar(&sigmas, "sigma", nil, "Gaussian width for a body order, i.e. k2=0.02")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: standard output)")
	return cmd
}

var xlabels = map[int]string{1: "Z", 2: "1/r (1/A)", 3: "cos(angle)"}

func (a *app) plotCmd() *cobra.Command {
	var out string
	var k int
	cmd := &cobra.Command{
		Use:   "plot structure",
		Short: "Plots every non-empty channel of one body order of the descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.cfg.Descriptor(a.log)
			if err != nil {
				return err
			}
			orders := m.K()
			if k == 0 {
				k = orders[len(orders)-1]
			}
			g, ok := m.Grid(k)
			if !ok {
				return fmt.Errorf("gomb: body order %d not in the descriptor", k)
			}
			s, err := readStructure(args[0])
			if err != nil {
				return err
			}
			o, err := m.Create(s)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s k=%d", filepath.Base(args[0]), k)
			E := m.Elements()
			if o.Blocks != nil {
				var curves []*histo.Data
				var names []string
				for _, b := range o.Blocks[k] {
					for r, key := range b.Keys {
						curves = append(curves, b.Curves.View(r, 0))
						names = append(names, E.Label(key))
					}
				}
				return chemplot.Spectra(curves, names, title, xlabels[k], out)
			}
			v := o.Vector()
			keys := m.Keys(k)
			ys := make([][]float64, len(keys))
			names := make([]string, len(keys))
			for i, key := range keys {
				off := m.Offset(k, key)
				ys[i] = v[off : off+g.N]
				names[i] = E.Label(key)
			}
			return chemplot.Curves(m.Axis(k), ys, names, title, xlabels[k], out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "spectrum.png", "plot file, its extension sets the format")
	cmd.Flags().IntVarP(&k, "order", "k", 0, "body order to plot (default: the highest)")
	return cmd
}
