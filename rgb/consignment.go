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

	"citadelgo/lnpbp"
)

type Endpoint struct {
	NodeId [32]byte `json:"nodeId"`
	Txid   [32]byte `json:"txid"`
}

type Transition struct {
	Txid [32]byte `json:"txid"`
	Data string   `json:"data"`
}

type Extension struct {
	Data string `json:"data"`
}

// Consignment bundles a contract history: the genesis plus the state
// transitions and extensions leading to the endpoints.
type Consignment struct {
	Version     uint16       `json:"version"`
	Genesis     Genesis      `json:"genesis"`
	Endpoints   []Endpoint   `json:"endpoints"`
	Transitions []Transition `json:"transitions"`
	Extensions  []Extension  `json:"extensions"`
}

func (c *Consignment) Serialize() []byte {
	s := serializer.Serializer{}

	s.AddUvarint(uint64(c.Version))
	s.AddString(string(c.Genesis.Serialize()))

	s.AddUvarint(uint64(len(c.Endpoints)))
	for _, e := range c.Endpoints {
		s.AddFixedByteArray(e.NodeId[:], 32)
		s.AddFixedByteArray(e.Txid[:], 32)
	}

	s.AddUvarint(uint64(len(c.Transitions)))
	for _, t := range c.Transitions {
		s.AddFixedByteArray(t.Txid[:], 32)
		s.AddString(t.Data)
	}

	s.AddUvarint(uint64(len(c.Extensions)))
	for _, e := range c.Extensions {
		s.AddString(e.Data)
	}

	return s.Data
}

func ConsignmentFromPayload(b []byte) (*Consignment, *Error) {
	d := serializer.Deserializer{
		Data: b,
	}

	c := Consignment{}
	c.Version = uint16(d.ReadUvarint())

	genesisBin := d.ReadString()
	if d.Error != nil {
		return nil, payloadErr("malformed consignment payload: %s", d.Error)
	}
	genesis, gerr := GenesisFromPayload([]byte(genesisBin))
	if gerr != nil {
		return nil, gerr
	}
	c.Genesis = *genesis

	numEndpoints := d.ReadUvarint()
	if d.Error != nil || numEndpoints > uint64(len(b)) {
		return nil, payloadErr("malformed consignment payload: bad endpoint count")
	}
	for i := uint64(0); i < numEndpoints; i++ {
		e := Endpoint{}
		copy(e.NodeId[:], d.ReadFixedByteArray(32))
		copy(e.Txid[:], d.ReadFixedByteArray(32))
		if d.Error != nil {
			return nil, payloadErr("malformed consignment payload: %s", d.Error)
		}
		c.Endpoints = append(c.Endpoints, e)
	}

	numTransitions := d.ReadUvarint()
	if d.Error != nil || numTransitions > uint64(len(b)) {
		return nil, payloadErr("malformed consignment payload: bad transition count")
	}
	for i := uint64(0); i < numTransitions; i++ {
		t := Transition{}
		copy(t.Txid[:], d.ReadFixedByteArray(32))
		t.Data = d.ReadString()
		if d.Error != nil {
			return nil, payloadErr("malformed consignment payload: %s", d.Error)
		}
		c.Transitions = append(c.Transitions, t)
	}

	numExtensions := d.ReadUvarint()
	if d.Error != nil || numExtensions > uint64(len(b)) {
		return nil, payloadErr("malformed consignment payload: bad extension count")
	}
	for i := uint64(0); i < numExtensions; i++ {
		e := Extension{Data: d.ReadString()}
		if d.Error != nil {
			return nil, payloadErr("malformed consignment payload: %s", d.Error)
		}
		c.Extensions = append(c.Extensions, e)
	}

	return &c, nil
}

// Txids returns the distinct transaction ids touched by the consignment's
// transitions and endpoints.
func (c *Consignment) Txids() [][32]byte {
	seen := make(map[[32]byte]bool)
	var txids [][32]byte
	for _, t := range c.Transitions {
		if !seen[t.Txid] {
			seen[t.Txid] = true
			txids = append(txids, t.Txid)
		}
	}
	for _, e := range c.Endpoints {
		if !seen[e.Txid] {
			seen[e.Txid] = true
			txids = append(txids, e.Txid)
		}
	}
	return txids
}

// Encode returns the token form of the consignment.
func (c *Consignment) Encode() (string, error) {
	s, err := lnpbp.Encode(HrpConsignment, c.Serialize(), false)
	if err != nil {
		return "", err
	}
	return s, nil
}
