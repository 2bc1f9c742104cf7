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
	"citadelgo/bech32"
	"citadelgo/lnpbp"
	"citadelgo/rgb"
)

// statusOf is the single taxonomy table both error hierarchies reduce
// through: checksum and separator faults keep their own codes, every
// other codec fault is an encoding error.
func statusOf(err *bech32.Error) int32 {
	switch err.Kind {
	case bech32.KindChecksum:
		return BECH32_ERR_CHECKSUM
	case bech32.KindSeparator:
		return BECH32_ERR_HRP
	default:
		return BECH32_ERR_ENCODING
	}
}

func fromRGBError(err *rgb.Error) Info {
	status := BECH32_ERR_PAYLOAD
	if err.Bech32 != nil {
		status = statusOf(err.Bech32)
	}
	return errInfo(status, err.Error())
}

func fromLNPBPError(err *lnpbp.Error) Info {
	status := BECH32_ERR_PAYLOAD
	if err.Bech32 != nil {
		status = statusOf(err.Bech32)
	}
	return errInfo(status, err.Error())
}
