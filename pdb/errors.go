/*
 * errors.go, part of gosire.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * gosire is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package pdb

import (
	"fmt"

	"github.com/rmera/gosire"
)

//Error is the error type of the pdb package. Malformed records give errors that carry the
//number and text of the offending line, and that match mol.ErrParse with errors.Is.
type Error struct {
	message  string
	filename string
	line     int //0 if it doesn't apply
	text     string
	deco     []string
	critical bool
}

func newParseError(line int, text, format string, args ...any) *Error {
	return &Error{message: fmt.Sprintf(format, args...), line: line, text: text, deco: []string{"parse"}, critical: true}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	s := "pdb: "
	if err.filename != "" {
		s += err.filename + ": "
	}
	if err.line > 0 {
		s += fmt.Sprintf("line %d: ", err.line)
	}
	s += err.message
	if err.text != "" {
		s += fmt.Sprintf(" (%q)", err.text)
	}
	return s
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Line returns the number of the offending line, starting from 1.
func (err *Error) Line() int { return err.line }

//Text returns the offending line.
func (err *Error) Text() string { return err.text }

//FileName returns the name of the file being read, if known.
func (err *Error) FileName() string { return err.filename }

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//Is makes errors.Is(err, mol.ErrParse) true.
func (err *Error) Is(target error) bool { return target == mol.ErrParse }

//errDecorate is a helper function that asserts that the error
//implements mol.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(mol.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
