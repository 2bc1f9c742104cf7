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

package bech32

// ErrKind tells which codec rule a token violated. Callers branch on the
// kind, the message is for humans.
type ErrKind uint8

const (
	KindChecksum ErrKind = iota
	KindSeparator
	KindHrp
	KindCharacter
	KindMixedCase
	KindPadding
)

type Error struct {
	Kind    ErrKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrKind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}
