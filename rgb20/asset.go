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

// Package rgb20 gives a fungible-asset view over a genesis record. Not
// every genesis is an asset: extraction is schema-gated and its failure is
// a normal outcome, not a fault.
package rgb20

import (
	"strconv"

	"github.com/zeebo/blake3"

	"citadelgo/rgb"
)

// SchemaID is the id of the fungible-asset schema. Only geneses committed
// to this schema can be read as assets.
var SchemaID = rgb.SchemaId(blake3.Sum256([]byte("rgb20/fungible/v1")))

type Asset struct {
	Id           rgb.ContractId `json:"id"`
	Ticker       string         `json:"ticker"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Precision    uint8          `json:"precision"`
	IssuedSupply uint64         `json:"issuedSupply"`
	Chain        string         `json:"chain"`
}

type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func extractErr(msg string) *Error {
	return &Error{Message: msg}
}

// FromGenesis extracts the asset a genesis encodes, or reports why it is
// not a fungible asset.
func FromGenesis(g *rgb.Genesis) (*Asset, *Error) {
	if g.SchemaId != SchemaID {
		return nil, extractErr("genesis does not commit to the fungible-asset schema")
	}

	ticker, ok := g.Field(rgb.FieldTicker)
	if !ok {
		return nil, extractErr("genesis has no ticker field")
	}
	name, ok := g.Field(rgb.FieldName)
	if !ok {
		return nil, extractErr("genesis has no name field")
	}

	asset := Asset{
		Id:     g.ContractId(),
		Ticker: ticker,
		Name:   name,
		Chain:  g.Chain,
	}

	if description, ok := g.Field(rgb.FieldDescription); ok {
		asset.Description = description
	}

	precision, ok := g.Field(rgb.FieldPrecision)
	if !ok {
		return nil, extractErr("genesis has no precision field")
	}
	prec, err := strconv.ParseUint(precision, 10, 8)
	if err != nil {
		return nil, extractErr("genesis precision field is not a valid number")
	}
	asset.Precision = uint8(prec)

	supply, ok := g.Field(rgb.FieldIssuedSupply)
	if !ok {
		return nil, extractErr("genesis has no issued supply field")
	}
	issued, err := strconv.ParseUint(supply, 10, 64)
	if err != nil {
		return nil, extractErr("genesis issued supply field is not a valid number")
	}
	asset.IssuedSupply = issued

	return &asset, nil
}
