/*
 * errors.go, part of gochem.
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
	"errors"
	"fmt"
)

type errClass int

const (
	classConfig errClass = iota + 1
	classStructure
)

// Error is the error type returned by the mbtr package. Errors are either configuration
// errors, produced when a descriptor is built, or structure errors, produced when a structure
// (or a snapshot) is processed.
type Error struct {
	message  string
	class    errClass
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
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

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// Config returns true if the error was caused by an invalid descriptor configuration.
func (err Error) Config() bool { return err.class == classConfig }

// Structure returns true if the error was caused by the structure or snapshot given to the descriptor.
func (err Error) Structure() bool { return err.class == classStructure }

// IsConfigError returns true if err is, or wraps, a configuration Error.
func IsConfigError(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Config()
}

// IsStructureError returns true if err is, or wraps, a structure Error.
func IsStructureError(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Structure()
}

func configError(caller, format string, a ...interface{}) Error {
	return Error{"goChem/mbtr: " + fmt.Sprintf(format, a...), classConfig, []string{caller}, true}
}

func structureError(caller, format string, a ...interface{}) Error {
	return Error{"goChem/mbtr: " + fmt.Sprintf(format, a...), classStructure, []string{caller}, true}
}

// errDecorate adds the caller's name to the decoration of err, if err implements
// the goChem error interface. Other errors are returned as they are.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
