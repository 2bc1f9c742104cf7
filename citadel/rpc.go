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

package citadel

import (
	"encoding/json"

	"citadelgo/rgb"
)

// Reply is a typed RPC response. A *Failure is also a Reply: the server
// reported the call itself failed, which the boundary treats like any
// other call failure.
type Reply interface {
	reply()
}

// Failure is a server-reported failure carried inside a successful RPC
// exchange.
type Failure struct {
	Code uint16 `json:"code"`
	Info string `json:"info"`
}

func (f *Failure) reply() {}

func (f *Failure) String() string {
	return f.Info
}

type ContractMeta struct {
	Id       rgb.ContractId `json:"id"`
	SchemaId rgb.SchemaId   `json:"schemaId"`
	Chain    string         `json:"chain"`
	Imported uint64         `json:"imported"`
}

// Contracts answers contract.list.
type Contracts struct {
	Contracts []ContractMeta `json:"contracts"`
}

func (c *Contracts) reply() {}

// ContractState answers contract.state.
type ContractState struct {
	Meta    ContractMeta `json:"meta"`
	Genesis rgb.Genesis  `json:"genesis"`
}

func (c *ContractState) reply() {}

// Balance answers asset.balance. AssetId is nil when the balance spans
// all tracked assets.
type Balance struct {
	AssetId *rgb.ContractId `json:"assetId"`
	Total   uint64          `json:"total"`
}

func (b *Balance) reply() {}

// Imported answers contract.import.
type Imported struct {
	Id rgb.ContractId `json:"id"`
}

func (i *Imported) reply() {}

// envelope is the wire shape of every RPC result: either a carried
// failure or the method-specific data.
type envelope struct {
	Failure *Failure        `json:"failure,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func sealReply(r Reply) (envelope, error) {
	if f, ok := r.(*Failure); ok {
		return envelope{Failure: f}, nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return envelope{}, err
	}
	return envelope{Data: data}, nil
}

type listParams struct{}

type stateParams struct {
	Id string `json:"id"`
}

type balanceParams struct {
	AssetId string `json:"assetId,omitempty"`
}

type importParams struct {
	Genesis string `json:"genesis"`
}
