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

package mol

import (
	"errors"
	"fmt"
)

//ErrorKind classifies the failures of the data model. Callers branch on the kind, so
//the kinds are never conflated.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindMissing
	KindDuplicate
	KindInvalidIndex
	KindIncompatible
	KindParse
	KindProgramBug
	KindMissingProperty
	KindVersion
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissing:
		return "missing entity"
	case KindDuplicate:
		return "duplicate entity"
	case KindInvalidIndex:
		return "invalid index"
	case KindIncompatible:
		return "incompatible"
	case KindParse:
		return "parse error"
	case KindProgramBug:
		return "program bug"
	case KindMissingProperty:
		return "missing property"
	case KindVersion:
		return "version error"
	}
	return "unknown error"
}

//Sentinels to be used with errors.Is.
var (
	ErrMissing         = errors.New("missing entity")
	ErrDuplicate       = errors.New("duplicate entity")
	ErrInvalidIndex    = errors.New("invalid index")
	ErrIncompatible    = errors.New("incompatible")
	ErrParse           = errors.New("parse error")
	ErrProgramBug      = errors.New("program bug")
	ErrMissingProperty = errors.New("missing property")
	ErrVersion         = errors.New("version error")
)

var kindSentinel = map[ErrorKind]error{
	KindMissing:         ErrMissing,
	KindDuplicate:       ErrDuplicate,
	KindInvalidIndex:    ErrInvalidIndex,
	KindIncompatible:    ErrIncompatible,
	KindParse:           ErrParse,
	KindProgramBug:      ErrProgramBug,
	KindMissingProperty: ErrMissingProperty,
	KindVersion:         ErrVersion,
}

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the error type of the mol package.
type CError struct {
	msg      string
	kind     ErrorKind
	entity   string //atom, residue, chain... or empty if it doesn't apply
	deco     []string
	critical bool
}

func (err *CError) Error() string {
	if err.entity != "" {
		return fmt.Sprintf("%s (%s): %s", err.kind, err.entity, err.msg)
	}
	return fmt.Sprintf("%s: %s", err.kind, err.msg)
}

//Decorate Adds new information to the error
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Kind returns the kind of failure.
func (err *CError) Kind() ErrorKind { return err.kind }

//Entity returns the kind of structural entity involved, if any.
func (err *CError) Entity() string { return err.entity }

//Critical returns true if the error is critical, false otherwise
func (err *CError) Critical() bool { return err.critical }

//Is makes errors.Is(err, ErrMissing) and friends work.
func (err *CError) Is(target error) bool {
	if s, ok := kindSentinel[err.kind]; ok && s == target {
		return true
	}
	return false
}

//KindOf returns the kind of err, or KindUnknown if err doesn't belong to the library.
func KindOf(err error) ErrorKind {
	for k, s := range kindSentinel {
		if errors.Is(err, s) {
			return k
		}
	}
	return KindUnknown
}

func newError(kind ErrorKind, entity, caller, format string, args ...any) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), kind: kind, entity: entity, deco: []string{caller}, critical: true}
}

func missingErr(entity, caller, format string, args ...any) error {
	return newError(KindMissing, entity, caller, format, args...)
}

func duplicateErr(entity, caller, format string, args ...any) error {
	return newError(KindDuplicate, entity, caller, format, args...)
}

func indexErr(entity, caller string, i, n int) error {
	return newError(KindInvalidIndex, entity, caller, "index %d out of range (count %d)", i, n)
}

func incompatibleErr(caller, format string, args ...any) error {
	return newError(KindIncompatible, "", caller, format, args...)
}

func propertyErr(caller, key string) error {
	return newError(KindMissingProperty, "", caller, "no property %q", key)
}

//bug panics. Program bugs mean the assembled data broke an invariant, the program is wrong and should crash.
func bug(caller, format string, args ...any) {
	panic(newError(KindProgramBug, "", caller, format, args...))
}

//errDecorate is a helper function that asserts that the error
//implements Error and decorates the error with the caller's name before returning it.
//if used with a non-Error error, it will just return the error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
