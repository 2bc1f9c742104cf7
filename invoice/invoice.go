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

package invoice

import (
	"github.com/duggavo/serializer"

	"citadelgo/lnpbp"
	"citadelgo/rgb"
)

const (
	flagContract = 1 << 0
	flagAmount   = 1 << 1
)

// Invoice is a payment request carried in an "i" container. The contract
// id is present when payment is requested in a tracked asset rather than
// the native coin.
type Invoice struct {
	Version     uint8           `json:"version"`
	Beneficiary string          `json:"beneficiary"`
	Amount      uint64          `json:"amount,omitempty"`
	ContractId  *rgb.ContractId `json:"-"`
}

func FromString(s string) (*Invoice, *lnpbp.Error) {
	c, cerr := lnpbp.Decode(s)
	if cerr != nil {
		return nil, cerr
	}
	if c.Hrp != lnpbp.HrpInvoice {
		return nil, lnpbp.PayloadError("token tag is not the invoice tag")
	}

	d := serializer.Deserializer{
		Data: c.Payload,
	}

	inv := Invoice{}
	inv.Version = d.ReadUint8()
	flags := d.ReadUint8()
	inv.Beneficiary = d.ReadString()

	if flags&flagAmount != 0 {
		inv.Amount = d.ReadUvarint()
	}
	if flags&flagContract != 0 {
		var id rgb.ContractId
		copy(id[:], d.ReadFixedByteArray(32))
		inv.ContractId = &id
	}

	if d.Error != nil {
		return nil, lnpbp.PayloadError("malformed invoice payload: " + d.Error.Error())
	}
	if inv.Beneficiary == "" {
		return nil, lnpbp.PayloadError("invoice has no beneficiary")
	}

	return &inv, nil
}

func (inv *Invoice) Serialize() []byte {
	var flags uint8
	if inv.ContractId != nil {
		flags |= flagContract
	}
	if inv.Amount != 0 {
		flags |= flagAmount
	}

	s := serializer.Serializer{
		Data: []byte{inv.Version, flags},
	}
	s.AddString(inv.Beneficiary)
	if inv.Amount != 0 {
		s.AddUvarint(inv.Amount)
	}
	if inv.ContractId != nil {
		s.AddFixedByteArray(inv.ContractId[:], 32)
	}

	return s.Data
}

// String returns the canonical token form of the invoice.
func (inv *Invoice) String() string {
	s, err := lnpbp.Encode(lnpbp.HrpInvoice, inv.Serialize(), false)
	if err != nil {
		panic(err)
	}
	return s
}

// RgbAsset returns the contract the invoice requests payment in, or nil
// for native-coin invoices.
func (inv *Invoice) RgbAsset() *rgb.ContractId {
	return inv.ContractId
}
