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

// Package bridge is the host-facing boundary: it classifies checksummed
// tokens into a fixed result envelope and drives the node client through
// an opaque handle, using only stable integer codes and boundary-owned
// strings.
package bridge

import (
	"encoding/json"
	"fmt"
)

// Status codes, stable across versions.
const (
	BECH32_OK              int32 = 0
	BECH32_ERR_HRP         int32 = 1
	BECH32_ERR_CHECKSUM    int32 = 2
	BECH32_ERR_ENCODING    int32 = 3
	BECH32_ERR_PAYLOAD     int32 = 4
	BECH32_ERR_UNSUPPORTED int32 = 5
	BECH32_ERR_INTERNAL    int32 = 6
	BECH32_ERR_NULL        int32 = 7
)

// Category codes. The numeric namespace is sparse by family so new record
// kinds slot in without renumbering: 0x0100 bitcoin/lightning, 0x0200
// generic containers, 0x0300 rgb core objects, 0x0330 rgb20.
const (
	BECH32_UNKNOWN int32 = 0
	BECH32_URL     int32 = 1

	BECH32_BC_ADDRESS int32 = 0x0100
	BECH32_LN_BOLT11  int32 = 0x0101

	BECH32_LNPBP_ID      int32 = 0x0200
	BECH32_LNPBP_DATA    int32 = 0x0201
	BECH32_LNPBP_ZDATA   int32 = 0x0202
	BECH32_LNPBP_INVOICE int32 = 0x0210

	BECH32_RGB_SCHEMA_ID   int32 = 0x0300
	BECH32_RGB_CONTRACT_ID int32 = 0x0301
	BECH32_RGB_SCHEMA      int32 = 0x0310
	BECH32_RGB_GENESIS     int32 = 0x0311
	BECH32_RGB_CONSIGNMENT int32 = 0x0320

	BECH32_RGB20_ASSET int32 = 0x0330
)

// Info is the decode result envelope. Field order is part of the binary
// contract and must not change.
type Info struct {
	Status   int32 `json:"status"`
	Category int32 `json:"category"`
	Bech32m  bool  `json:"bech32m"`
	Details  Str   `json:"details"`
}

// withValue builds the success envelope: the record is serialized to JSON
// and transferred out. Serialization trouble is the one way a success
// path still fails, it comes back as an internal error.
func withValue(category int32, bech32m bool, value any) Info {
	data, err := json.Marshal(value)
	if err != nil {
		return errInfoKeepCategory(BECH32_ERR_INTERNAL, category, bech32m,
			fmt.Sprintf("Unable to encode details as JSON: %s", err))
	}

	details, ok := TransferOut(string(data))
	if !ok {
		return Info{
			Status:   BECH32_ERR_INTERNAL,
			Category: category,
			Bech32m:  bech32m,
			Details:  strStaticFallback,
		}
	}

	return Info{
		Status:   BECH32_OK,
		Category: category,
		Bech32m:  bech32m,
		Details:  details,
	}
}

func withNullValue() Info {
	return errInfo(BECH32_ERR_NULL, "Value must not be null")
}

func unsupported() Info {
	return errInfo(BECH32_ERR_UNSUPPORTED, "This specific kind of token is not yet supported")
}

// errInfo builds a failure envelope; failures are never attributable to a
// record type, so the category stays unknown.
func errInfo(status int32, msg string) Info {
	return errInfoKeepCategory(status, BECH32_UNKNOWN, false, msg)
}

func errInfoKeepCategory(status, category int32, bech32m bool, msg string) Info {
	details, ok := TransferOut(msg)
	if !ok {
		details = strStaticFallback
		status = BECH32_ERR_INTERNAL
	}
	return Info{
		Status:   status,
		Category: category,
		Bech32m:  bech32m,
		Details:  details,
	}
}

// Release reclaims the result's details string. Call it exactly once per
// decoded result.
func Release(info Info) bool {
	return ReleaseStr(info.Details)
}
