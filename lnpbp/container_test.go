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

package lnpbp

import (
	"bytes"
	"testing"
)

func TestContainerRoundtrip(t *testing.T) {
	payload := []byte("arbitrary container payload \x01\x02\x03")

	token, err := Encode(HrpData, payload, false)
	if err != nil {
		t.Fatal(err)
	}

	t.Logf("token: %s", token)

	c, err := Decode(token)
	if err != nil {
		t.Fatal(err)
	}
	if c.Hrp != HrpData {
		t.Fatalf("expected hrp %s, got %s", HrpData, c.Hrp)
	}
	if c.Bech32m {
		t.Fatal("expected a legacy checksum")
	}
	if !bytes.Equal(c.Payload, payload) {
		t.Fatalf("expected %x, got %x", payload, c.Payload)
	}
}

func TestContainerBech32m(t *testing.T) {
	token, err := Encode(HrpId, []byte{0xaa, 0xbb}, true)
	if err != nil {
		t.Fatal(err)
	}

	c, err := Decode(token)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Bech32m {
		t.Fatal("expected the extended checksum to be reported")
	}
}

func TestContainerCodecError(t *testing.T) {
	_, err := Decode("id:qqqqqqqqqqqqqqqb")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Bech32 == nil {
		t.Fatal("codec faults must carry the codec error")
	}
}
