/*
 * version.go, part of gosire.
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
	"fmt"
	"sync"
	"sync/atomic"
)

//Version identifies one state of a molecule. Major changes when the structure
//changes, Minor when only properties or coordinates change.
type Version struct {
	Major uint64
	Minor uint64
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

var lastMolNum atomic.Int64

//NewMolNum returns a molecule number that has not been used before in this process.
func NewMolNum() MolNum {
	return MolNum(lastMolNum.Add(1))
}

//observeMolNum makes sure that NewMolNum will not return n, or anything smaller.
func observeMolNum(n MolNum) {
	for {
		cur := lastMolNum.Load()
		if int64(n) <= cur || lastMolNum.CompareAndSwap(cur, int64(n)) {
			return
		}
	}
}

type versionState struct {
	major  uint64
	minors map[uint64]uint64 //last minor given for each major
}

//versions hands out versions for every molecule number, so two different snapshots of
//the same molecule never get the same version. An entry lives until ReleaseMolNum is
//called for its molecule, so long-running programs that create many molecules should
//release the numbers they are done with.
var versions = struct {
	sync.Mutex
	m map[MolNum]*versionState
}{m: make(map[MolNum]*versionState)}

func versionStateOf(n MolNum) *versionState {
	s, ok := versions.m[n]
	if !ok {
		s = &versionState{minors: make(map[uint64]uint64)}
		versions.m[n] = s
	}
	return s
}

//nextMajor returns a new version with a fresh major number for molecule n.
func nextMajor(n MolNum) Version {
	versions.Lock()
	defer versions.Unlock()
	s := versionStateOf(n)
	s.major++
	s.minors[s.major] = 0
	return Version{Major: s.major}
}

//nextMinor returns a new version of molecule n with the same major number as v.
func nextMinor(n MolNum, v Version) Version {
	versions.Lock()
	defer versions.Unlock()
	s := versionStateOf(n)
	m := s.minors[v.Major]
	if v.Minor > m {
		m = v.Minor
	}
	m++
	s.minors[v.Major] = m
	if v.Major > s.major {
		s.major = v.Major
	}
	return Version{Major: v.Major, Minor: m}
}

//observeVersion registers a version obtained from somewhere else (a stream) so that it is
//never handed out again.
func observeVersion(n MolNum, v Version) {
	observeMolNum(n)
	versions.Lock()
	defer versions.Unlock()
	s := versionStateOf(n)
	if v.Major > s.major {
		s.major = v.Major
	}
	if v.Minor > s.minors[v.Major] {
		s.minors[v.Major] = v.Minor
	}
}

//ReleaseMolNum forgets the version counters of molecule n. It must only be called once
//no snapshot of n is in use anymore: versions given to n afterwards may repeat old ones.
//The number itself is never handed out again by NewMolNum.
func ReleaseMolNum(n MolNum) {
	versions.Lock()
	defer versions.Unlock()
	delete(versions.m, n)
}
