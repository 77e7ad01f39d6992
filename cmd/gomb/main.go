/*
 * main.go, part of gochem.
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

// gomb computes many-body tensor representations of the structures
// in extended XYZ or goChem JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds what the subcommands share.
type app struct {
	configPath string
	logLevel   string
	log        *zap.Logger
	cfg        *FileConfig
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("gomb: %w", err)
	}
	zc := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func (a *app) init() error {
	var err error
	a.log, err = newLogger(a.logLevel)
	if err != nil {
		return err
	}
	a.cfg, err = LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.log.Debug("configuration loaded", zap.String("file", a.configPath), zap.Strings("species", a.cfg.Species), zap.Ints("k", a.cfg.K))
	return nil
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "gomb",
		Short:         "Many-body tensor representation of atomic structures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "gomb.yaml", "descriptor configuration file")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.AddCommand(a.createCmd(), a.featuresCmd(), a.snapshotCmd(), a.regridCmd(), a.plotCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
