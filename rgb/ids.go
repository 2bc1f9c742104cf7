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

const (
	HrpSchemaId    = "sch"
	HrpContractId  = "rgb"
	HrpSchema      = "schema"
	HrpGenesis     = "genesis"
	HrpConsignment = "consignment"
)

// ContractId names a contract, it is the blake3 commitment to the
// contract's genesis.
type ContractId [32]byte

func (id ContractId) String() string {
	s, err := lnpbp.Encode(HrpContractId, id[:], false)
	if err != nil {
		// a 32-byte array always regroups cleanly
		panic(err)
	}
	return s
}

func (id ContractId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ContractId) UnmarshalText(b []byte) error {
	parsed, err := ContractIdFromString(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func ContractIdFromString(s string) (ContractId, *Error) {
	var id ContractId
	if err := decodeId(s, HrpContractId, id[:]); err != nil {
		return ContractId{}, err
	}
	return id, nil
}

// SchemaId names a contract schema.
type SchemaId [32]byte

func (id SchemaId) String() string {
	s, err := lnpbp.Encode(HrpSchemaId, id[:], false)
	if err != nil {
		panic(err)
	}
	return s
}

func (id SchemaId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *SchemaId) UnmarshalText(b []byte) error {
	parsed, err := SchemaIdFromString(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func SchemaIdFromString(s string) (SchemaId, *Error) {
	var id SchemaId
	if err := decodeId(s, HrpSchemaId, id[:]); err != nil {
		return SchemaId{}, err
	}
	return id, nil
}

func decodeId(s, wantHrp string, out []byte) *Error {
	c, err := lnpbp.Decode(s)
	if err != nil {
		return &Error{Bech32: err.Bech32, Message: err.Message}
	}
	if c.Hrp != wantHrp {
		return payloadErr("wrong identifier tag %q, expected %q", c.Hrp, wantHrp)
	}
	if len(c.Payload) != len(out) {
		return payloadErr("identifier payload must be %d bytes, got %d", len(out), len(c.Payload))
	}
	copy(out, c.Payload)
	return nil
}
