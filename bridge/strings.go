// Copyright (C) 2025 citadelgo developers
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bridge

import (
	"strings"

	"citadelgo/mut"
)

// Str is a boundary-owned string handle. 0 is the null handle, negative
// handles are static messages that never leave the registry.
type Str int64

const StrNull Str = 0

// strStaticFallback is handed out when a message cannot cross the
// boundary. Reading it works like any owned handle, releasing it is a
// no-op.
const strStaticFallback Str = -1

var staticStrs = map[Str]string{
	strStaticFallback: "message cannot cross the boundary",
}

var strMut mut.RWMutex
var ownedStrs = map[Str]string{}
var nextStr Str = 1

// TransferOut moves a string into the registry and hands ownership of the
// returned handle to the caller. It fails on strings with an embedded NUL
// byte, which could not cross a C boundary either.
func TransferOut(s string) (Str, bool) {
	if strings.ContainsRune(s, 0) {
		return StrNull, false
	}

	strMut.Lock()
	defer strMut.Unlock()

	p := nextStr
	nextStr++
	ownedStrs[p] = s
	return p, true
}

// ReadStr resolves a handle without affecting ownership.
func ReadStr(p Str) (string, bool) {
	if s, ok := staticStrs[p]; ok {
		return s, true
	}

	strMut.RLock()
	defer strMut.RUnlock()

	s, ok := ownedStrs[p]
	return s, ok
}

// ReleaseStr reclaims a transferred-out handle. Exactly one release per
// handle: a second release, a never-transferred handle and the null
// handle all report false and do nothing. Static handles are not owned by
// the caller and releasing them is a safe no-op.
func ReleaseStr(p Str) bool {
	if _, ok := staticStrs[p]; ok {
		return false
	}

	strMut.Lock()
	defer strMut.Unlock()

	if _, ok := ownedStrs[p]; !ok {
		return false
	}
	delete(ownedStrs, p)
	return true
}

// IsStatic reports whether a handle points at a static message the caller
// must not release.
func IsStatic(p Str) bool {
	_, ok := staticStrs[p]
	return ok
}

// outstanding counts live transferred-out handles; tests use it to check
// the single-release discipline.
func outstanding() int {
	strMut.RLock()
	defer strMut.RUnlock()

	return len(ownedStrs)
}
