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
	"github.com/gorilla/websocket"
)

// wsChannel adapts a websocket connection to the jrpc2 channel interface,
// one RPC message per websocket text frame.
type wsChannel struct {
	conn *websocket.Conn
}

func (c wsChannel) Send(msg []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

func (c wsChannel) Recv() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

func (c wsChannel) Close() error {
	return c.conn.Close()
}
