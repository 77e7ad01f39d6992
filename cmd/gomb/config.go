/*
 * config.go, part of gochem.
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
	"fmt"
	"strings"

	"github.com/rmera/gochemdesc/mbtr"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// GridConfig is the grid for one body order, as given in the configuration file.
type GridConfig struct {
	Min   float64 `mapstructure:"min"`
	Max   float64 `mapstructure:"max"`
	N     int     `mapstructure:"n"`
	Sigma float64 `mapstructure:"sigma"`
}

// WeightingConfig is the weighting for one body order, as given in the configuration file.
type WeightingConfig struct {
	Function string   `mapstructure:"function"`
	Scale    *float64 `mapstructure:"scale"`
	Cutoff   *float64 `mapstructure:"cutoff"`
}

// OptionsConfig are the descriptor options.
type OptionsConfig struct {
	Periodic           bool `mapstructure:"periodic"`
	Flatten            bool `mapstructure:"flatten"`
	Sparse             bool `mapstructure:"sparse"`
	NormalizeGaussians bool `mapstructure:"normalize_gaussians"`
	NormalizeByVolume  bool `mapstructure:"normalize_by_volume"`
	Cpus               int  `mapstructure:"cpus"`
}

// FileConfig is the content of a descriptor configuration file, i.e.:
//
//	species: [H, O]
//	k: [1, 2]
//	grid:
//	  k1: {min: 0, max: 10, n: 100, sigma: 0.1}
//	  k2: {min: 0, max: 1.5, n: 100, sigma: 0.01}
//	weighting:
//	  k2: {function: exponential, scale: 0.5, cutoff: 1.0e-3}
//	options:
//	  periodic: false
type FileConfig struct {
	Species []string `mapstructure:"species"`
	K       []int    `mapstructure:"k"`
	Grid    struct {
		K1 *GridConfig `mapstructure:"k1"`
		K2 *GridConfig `mapstructure:"k2"`
		K3 *GridConfig `mapstructure:"k3"`
	} `mapstructure:"grid"`
	Weighting struct {
		K2 *WeightingConfig `mapstructure:"k2"`
		K3 *WeightingConfig `mapstructure:"k3"`
	} `mapstructure:"weighting"`
	Options OptionsConfig `mapstructure:"options"`
}

// LoadConfig reads the configuration file at path (YAML, JSON or TOML, by extension).
// Options can be overriden with environment variables, i.e. GOMB_OPTIONS_PERIODIC=true.
func LoadConfig(path string) (*FileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("GOMB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("options.periodic", false)
	v.SetDefault("options.flatten", true)
	v.SetDefault("options.sparse", false)
	v.SetDefault("options.normalize_gaussians", true)
	v.SetDefault("options.normalize_by_volume", false)
	v.SetDefault("options.cpus", 0)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("gomb: reading config file %s: %w", path, err)
	}
	F := new(FileConfig)
	if err := v.Unmarshal(F); err != nil {
		return nil, fmt.Errorf("gomb: decoding config file %s: %w", path, err)
	}
	return F, nil
}

// Config returns the descriptor configuration. Errors are mbtr configuration errors.
func (F *FileConfig) Config() (mbtr.Config, error) {
	species, err := mbtr.ParseSpecies(F.Species)
	if err != nil {
		return mbtr.Config{}, err
	}
	cfg := mbtr.Config{
		Species:   species,
		K:         append([]int(nil), F.K...),
		Grids:     make(map[int]mbtr.Grid, 3),
		Weighting: make(map[int]mbtr.Weighting, 2),
	}
	for k, g := range []*GridConfig{F.Grid.K1, F.Grid.K2, F.Grid.K3} {
		if g != nil {
			cfg.Grids[k+1] = mbtr.Grid{Min: g.Min, Max: g.Max, N: g.N, Sigma: g.Sigma}
		}
	}
	for k, w := range map[int]*WeightingConfig{2: F.Weighting.K2, 3: F.Weighting.K3} {
		if w == nil {
			continue
		}
		cfg.Weighting[k], err = mbtr.ParseWeighting(w.Function, w.Scale, w.Cutoff)
		if err != nil {
			return mbtr.Config{}, err
		}
	}
	return cfg, nil
}

// DescriptorOptions returns the descriptor options, which log to log.
func (F *FileConfig) DescriptorOptions(log *zap.Logger) *mbtr.Options {
	O := mbtr.DefaultOptions()
	O.Periodic(F.Options.Periodic)
	O.Flatten(F.Options.Flatten)
	O.Sparse(F.Options.Sparse)
	O.NormalizeGaussians(F.Options.NormalizeGaussians)
	O.NormalizeByVolume(F.Options.NormalizeByVolume)
	O.Cpus(F.Options.Cpus)
	O.Logger(log)
	return O
}

// Descriptor builds the descriptor for the configuration.
func (F *FileConfig) Descriptor(log *zap.Logger) (*mbtr.MBTR, error) {
	cfg, err := F.Config()
	if err != nil {
		return nil, err
	}
	return mbtr.New(cfg, F.DescriptorOptions(log))
}
