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
	"github.com/duggavo/serializer"
	"github.com/zeebo/blake3"

	"citadelgo/lnpbp"
)

// Well-known metadata field types. Schemas beyond rgb20 may define more,
// unknown fields are preserved as-is.
const (
	FieldTicker       = 0
	FieldName         = 1
	FieldDescription  = 2
	FieldPrecision    = 3
	FieldIssuedSupply = 4
)

type MetaField struct {
	Type  uint64 `json:"type"`
	Value string `json:"value"`
}

// Genesis is the root record of a tracked contract. Its serialized form is
// what the genesis token carries, and what the contract id commits to.
type Genesis struct {
	Version  uint16      `json:"version"`
	SchemaId SchemaId    `json:"schemaId"`
	Chain    string      `json:"chain"`
	Metadata []MetaField `json:"metadata"`
}

func (g *Genesis) Serialize() []byte {
	s := serializer.Serializer{}

	s.AddUvarint(uint64(g.Version))
	s.AddFixedByteArray(g.SchemaId[:], 32)
	s.AddString(g.Chain)
	s.AddUvarint(uint64(len(g.Metadata)))
	for _, f := range g.Metadata {
		s.AddUvarint(f.Type)
		s.AddString(f.Value)
	}

	return s.Data
}

func GenesisFromPayload(b []byte) (*Genesis, *Error) {
	d := serializer.Deserializer{
		Data: b,
	}

	g := Genesis{}
	g.Version = uint16(d.ReadUvarint())
	copy(g.SchemaId[:], d.ReadFixedByteArray(32))
	g.Chain = d.ReadString()

	numFields := d.ReadUvarint()
	if d.Error != nil {
		return nil, payloadErr("malformed genesis payload: %s", d.Error)
	}
	if numFields > uint64(len(b)) {
		return nil, payloadErr("malformed genesis payload: field count out of range")
	}
	for i := uint64(0); i < numFields; i++ {
		f := MetaField{
			Type:  d.ReadUvarint(),
			Value: d.ReadString(),
		}
		if d.Error != nil {
			return nil, payloadErr("malformed genesis payload: %s", d.Error)
		}
		g.Metadata = append(g.Metadata, f)
	}

	return &g, nil
}

// ContractId commits to the full serialized genesis.
func (g *Genesis) ContractId() ContractId {
	return ContractId(blake3.Sum256(g.Serialize()))
}

// Field returns the value of the first metadata field of the given type.
func (g *Genesis) Field(fieldType uint64) (string, bool) {
	for _, f := range g.Metadata {
		if f.Type == fieldType {
			return f.Value, true
		}
	}
	return "", false
}

// Encode returns the token form of the genesis.
func (g *Genesis) Encode() (string, error) {
	s, err := lnpbp.Encode(HrpGenesis, g.Serialize(), false)
	if err != nil {
		return "", err
	}
	return s, nil
}
