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
	"citadelgo/invoice"
	"citadelgo/lnpbp"
	"citadelgo/rgb"
	"citadelgo/rgb20"
)

// InvoiceInfo is the details record of a decoded invoice: the parsed
// fields, the canonical text form and the contract the invoice references,
// when it references one.
type InvoiceInfo struct {
	Version       uint8           `json:"version"`
	Beneficiary   string          `json:"beneficiary"`
	Amount        uint64          `json:"amount,omitempty"`
	InvoiceString string          `json:"invoiceString"`
	RgbContractId *rgb.ContractId `json:"rgbContractId"`
}

func newInvoiceInfo(inv *invoice.Invoice) InvoiceInfo {
	return InvoiceInfo{
		Version:       inv.Version,
		Beneficiary:   inv.Beneficiary,
		Amount:        inv.Amount,
		InvoiceString: inv.String(),
		RgbContractId: inv.RgbAsset(),
	}
}

// ConsignmentInfo is the summary record of a decoded consignment.
type ConsignmentInfo struct {
	Version           uint16       `json:"version"`
	Asset             *rgb20.Asset `json:"asset"`
	SchemaId          rgb.SchemaId `json:"schemaId"`
	EndpointsCount    int          `json:"endpointsCount"`
	TransactionsCount int          `json:"transactionsCount"`
	TransitionsCount  int          `json:"transitionsCount"`
	ExtensionsCount   int          `json:"extensionsCount"`
}

func newConsignmentInfo(c *rgb.Consignment) (*ConsignmentInfo, *rgb20.Error) {
	asset, err := rgb20.FromGenesis(&c.Genesis)
	if err != nil {
		return nil, err
	}

	return &ConsignmentInfo{
		Version:           c.Version,
		Asset:             asset,
		SchemaId:          c.Genesis.SchemaId,
		EndpointsCount:    len(c.Endpoints),
		TransactionsCount: len(c.Txids()),
		TransitionsCount:  len(c.Transitions),
		ExtensionsCount:   len(c.Extensions),
	}, nil
}

// Decode classifies one token into the result envelope. Classification is
// payload-shape driven: a genesis is first tried as a fungible asset and
// only then reported as a bare genesis, so the more specific reading
// always wins and its failure is not an error.
func Decode(token *string) Info {
	if token == nil {
		return withNullValue()
	}

	b, rerr := rgb.Decode(*token)
	if rerr != nil {
		return fromRGBError(rerr)
	}

	switch {
	case b.Kind == rgb.KindGenesis:
		if asset, aerr := rgb20.FromGenesis(b.Genesis); aerr == nil {
			return withValue(BECH32_RGB20_ASSET, b.Bech32m, asset)
		}
		return withValue(BECH32_RGB_GENESIS, b.Bech32m, b.Genesis)

	case b.Hrp == lnpbp.HrpInvoice:
		inv, ierr := invoice.FromString(*token)
		if ierr != nil {
			return fromLNPBPError(ierr)
		}
		return withValue(BECH32_LNPBP_INVOICE, b.Bech32m, newInvoiceInfo(inv))

	case b.Hrp == rgb.HrpConsignment:
		consignment, cerr := rgb.ConsignmentFromPayload(b.Payload)
		if cerr != nil {
			return fromRGBError(cerr)
		}
		info, derr := newConsignmentInfo(consignment)
		if derr != nil {
			// the consignment decoded but cannot be summarized
			return unsupported()
		}
		return withValue(BECH32_RGB_CONSIGNMENT, b.Bech32m, info)

	default:
		return unsupported()
	}
}
