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

// Package citadel is the node client. It speaks JSON-RPC to a remote node
// over tcp, unix or websocket transports, or to an embedded in-process
// node backed by a local vault.
package citadel

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/gorilla/websocket"

	"citadelgo/config"
	"citadelgo/log"
	"citadelgo/rgb"
)

type Client struct {
	endpoint string
	cli      *jrpc2.Client

	// non-nil for embedded clients, stops the in-process node
	shutdown func()
}

// Connect dials a remote node. Supported endpoints are tcp://host:port,
// unix://path and ws://host:port/path (wss likewise).
func Connect(endpoint string) (*Client, error) {
	scheme, rest, found := strings.Cut(endpoint, "://")
	if !found {
		return nil, newError(Transport, "endpoint %q has no transport scheme", endpoint)
	}

	var ch channel.Channel

	switch scheme {
	case "tcp", "unix":
		conn, err := net.Dial(scheme, rest)
		if err != nil {
			return nil, newError(Networking, "cannot reach node at %s: %s", endpoint, err)
		}
		ch = channel.Line(conn, conn)
	case "ws", "wss":
		conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
		if err != nil {
			return nil, newError(Networking, "cannot reach node at %s: %s", endpoint, err)
		}
		ch = wsChannel{conn: conn}
	default:
		return nil, newError(NotSupported, "transport %q is not supported", scheme)
	}

	log.Netf("connected to node at %s", endpoint)

	return &Client{
		endpoint: endpoint,
		cli:      jrpc2.NewClient(ch, nil),
	}, nil
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Close() error {
	err := c.cli.Close()
	if c.shutdown != nil {
		c.shutdown()
	}
	return err
}

// call runs one RPC exchange and unwraps the result envelope. A carried
// failure comes back as (*Failure, nil).
func (c *Client) call(method string, params any) (*envelope, error) {
	ctx, cancel := context.WithTimeout(context.Background(), config.RPC_TIMEOUT*time.Second)
	defer cancel()

	log.Netf(">>> %s", method)

	rsp, err := c.cli.Call(ctx, method, params)
	if err != nil {
		var rpcErr *jrpc2.Error
		if errors.As(err, &rpcErr) {
			return nil, newError(Rpc, "%s: %s", method, rpcErr.Message)
		}
		return nil, newError(Transport, "%s: %s", method, err)
	}

	env := envelope{}
	if err := rsp.UnmarshalResult(&env); err != nil {
		return nil, newError(Rpc, "%s: malformed result: %s", method, err)
	}
	return &env, nil
}

func unseal[R Reply](env *envelope, zero R) (Reply, error) {
	if env.Failure != nil {
		return env.Failure, nil
	}
	if err := json.Unmarshal(env.Data, zero); err != nil {
		return nil, newError(Rpc, "malformed reply data: %s", err)
	}
	return zero, nil
}

func (c *Client) ListContracts() (Reply, error) {
	env, err := c.call("contract.list", listParams{})
	if err != nil {
		return nil, err
	}
	return unseal(env, &Contracts{})
}

func (c *Client) ContractState(id rgb.ContractId) (Reply, error) {
	env, err := c.call("contract.state", stateParams{Id: id.String()})
	if err != nil {
		return nil, err
	}
	return unseal(env, &ContractState{})
}

// Balance sums issued supply over the tracked contracts; assetId narrows
// it to a single asset.
func (c *Client) Balance(assetId *rgb.ContractId) (Reply, error) {
	params := balanceParams{}
	if assetId != nil {
		params.AssetId = assetId.String()
	}
	env, err := c.call("asset.balance", params)
	if err != nil {
		return nil, err
	}
	return unseal(env, &Balance{})
}

// ImportContract hands a genesis token to the node for tracking.
func (c *Client) ImportContract(genesisToken string) (Reply, error) {
	env, err := c.call("contract.import", importParams{Genesis: genesisToken})
	if err != nil {
		return nil, err
	}
	return unseal(env, &Imported{})
}
