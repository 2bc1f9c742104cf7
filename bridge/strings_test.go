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
	"testing"
)

func TestTransferOutRelease(t *testing.T) {
	before := outstanding()

	p, ok := TransferOut("hello boundary")
	if !ok || p == StrNull {
		t.Fatal("transfer-out failed")
	}
	if outstanding() != before+1 {
		t.Fatal("transfer-out must register the handle")
	}

	s, ok := ReadStr(p)
	if !ok || s != "hello boundary" {
		t.Fatalf("expected the transferred string, got %q", s)
	}

	if !ReleaseStr(p) {
		t.Fatal("first release must succeed")
	}
	if outstanding() != before {
		t.Fatal("release must reclaim the handle")
	}

	// single-release discipline
	if ReleaseStr(p) {
		t.Fatal("second release must be rejected")
	}
	if _, ok := ReadStr(p); ok {
		t.Fatal("a released handle must not resolve")
	}
}

func TestReleaseForeignHandle(t *testing.T) {
	if ReleaseStr(Str(0x7fffffff)) {
		t.Fatal("a handle that was never transferred must not release")
	}
	if ReleaseStr(StrNull) {
		t.Fatal("the null handle must not release")
	}
}

func TestTransferOutNulByte(t *testing.T) {
	if _, ok := TransferOut("embedded\x00terminator"); ok {
		t.Fatal("strings with a NUL byte must not cross the boundary")
	}
}

func TestStaticFallback(t *testing.T) {
	if !IsStatic(strStaticFallback) {
		t.Fatal("the fallback handle must be static")
	}

	s, ok := ReadStr(strStaticFallback)
	if !ok || s == "" {
		t.Fatal("the static fallback must read like an owned string")
	}

	before := outstanding()
	if ReleaseStr(strStaticFallback) {
		t.Fatal("releasing a static handle must be a no-op")
	}
	if outstanding() != before {
		t.Fatal("a static release must not touch owned handles")
	}

	// statics survive any number of release attempts
	if _, ok := ReadStr(strStaticFallback); !ok {
		t.Fatal("the static fallback must remain readable")
	}
}

func TestWithValueMarshalFailure(t *testing.T) {
	info := withValue(BECH32_LNPBP_DATA, false, make(chan int))

	if info.Status != BECH32_ERR_INTERNAL {
		t.Fatalf("expected internal error status, got %d", info.Status)
	}
	if info.Category != BECH32_LNPBP_DATA {
		t.Fatal("a serialization failure must keep the detected category")
	}
	if !Release(info) {
		t.Fatal("the failure message must still be owned and releasable")
	}
}

func TestErrInfoNulFallback(t *testing.T) {
	info := errInfo(BECH32_ERR_PAYLOAD, "broken\x00message")

	if info.Status != BECH32_ERR_INTERNAL {
		t.Fatalf("expected internal error status, got %d", info.Status)
	}
	if !IsStatic(info.Details) {
		t.Fatal("the fallback details must be the static sentinel")
	}
	if Release(info) {
		t.Fatal("the fallback details must not be releasable")
	}
}
