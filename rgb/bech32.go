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

package rgb

import (
	"citadelgo/lnpbp"
)

type Kind uint8

const (
	// KindGenesis means the payload parsed as a genesis record.
	KindGenesis Kind = iota

	// KindOther is any recognized container whose payload this layer does
	// not interpret; the tag and raw payload are kept for the caller.
	KindOther
)

// Bech32 is the tagged result of generic token classification: the decode
// only proves the payload shape, finer classification is the caller's job.
type Bech32 struct {
	Kind    Kind
	Genesis *Genesis

	Hrp     string
	Payload []byte
	Bech32m bool
}

// Decode checksum-verifies a token and, when the tag is the genesis tag,
// parses the payload into a genesis record. Every other tag is returned
// uninterpreted as KindOther.
func Decode(s string) (*Bech32, *Error) {
	c, cerr := lnpbp.Decode(s)
	if cerr != nil {
		return nil, &Error{Bech32: cerr.Bech32, Message: cerr.Message}
	}

	b := Bech32{
		Kind:    KindOther,
		Hrp:     c.Hrp,
		Payload: c.Payload,
		Bech32m: c.Bech32m,
	}

	if c.Hrp == HrpGenesis {
		genesis, gerr := GenesisFromPayload(c.Payload)
		if gerr != nil {
			return nil, gerr
		}
		b.Kind = KindGenesis
		b.Genesis = genesis
	}

	return &b, nil
}
