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
	"errors"
	"fmt"

	"citadelgo/bech32"
)

// Error mirrors the shape of lnpbp.Error on purpose: both hierarchies are
// reduced through the same status table at the boundary.
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

func wrapErr(err error) *Error {
	var codecErr *bech32.Error
	if errors.As(err, &codecErr) {
		return &Error{Bech32: codecErr}
	}
	return &Error{Message: err.Error()}
}

func payloadErr(format string, a ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}
