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

// Package lnpbp is the generic container layer over the bech32 codec: it
// knows the short family tags and regroups payloads into bytes, but does
// not interpret them.
package lnpbp

import (
	"errors"

	"citadelgo/bech32"
)

const (
	HrpId      = "id"
	HrpData    = "data"
	HrpZData   = "zdata"
	HrpInvoice = "i"
)

// Container is a checksum-verified token split into its family tag and
// byte payload.
type Container struct {
	Hrp     string
	Payload []byte
	Bech32m bool
}

func Decode(s string) (*Container, *Error) {
	hrp, data, version, err := bech32.Decode(s)
	if err != nil {
		return nil, wrap(err)
	}

	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, wrap(err)
	}

	return &Container{
		Hrp:     hrp,
		Payload: payload,
		Bech32m: version == bech32.VersionM,
	}, nil
}

func Encode(hrp string, payload []byte, bech32m bool) (string, *Error) {
	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", wrap(err)
	}

	version := bech32.Version0
	if bech32m {
		version = bech32.VersionM
	}

	s, err := bech32.Encode(hrp, data, version)
	if err != nil {
		return "", wrap(err)
	}
	return s, nil
}

// Error is the container-layer failure. Bech32 is set when the fault came
// from the codec itself, otherwise the payload was at fault.
type Error struct {
	Bech32  *bech32.Error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Bech32.Error()
}

func wrap(err error) *Error {
	var codecErr *bech32.Error
	if errors.As(err, &codecErr) {
		return &Error{Bech32: codecErr}
	}
	return &Error{Message: err.Error()}
}

// PayloadError reports a payload that decoded but does not match the
// structure its tag promises.
func PayloadError(msg string) *Error {
	return &Error{Message: msg}
}
