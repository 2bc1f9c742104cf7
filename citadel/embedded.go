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
	"context"
	"net"
	"os"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"

	"citadelgo/log"
	"citadelgo/rgb"
	"citadelgo/rgb20"
)

// Server-carried failure codes.
const (
	FAILURE_UNKNOWN_CONTRACT uint16 = 1
	FAILURE_BAD_GENESIS      uint16 = 2
)

// RunEmbedded starts an in-process node over a pipe and returns a client
// connected to it. The caller owns the client; closing it stops the node.
func RunEmbedded(dataDir string, key [32]byte) (*Client, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, newError(EmbeddedNodeInit, "cannot prepare data directory %s: %s", dataDir, err)
	}

	v, verr := openVault(dataDir, key)
	if verr != nil {
		return nil, verr
	}

	node := embeddedNode{vault: v}

	srvConn, cliConn := net.Pipe()

	srv := jrpc2.NewServer(handler.Map{
		"contract.list":   handler.New(node.handleList),
		"contract.state":  handler.New(node.handleState),
		"contract.import": handler.New(node.handleImport),
		"asset.balance":   handler.New(node.handleBalance),
	}, nil)
	srv.Start(channel.Line(srvConn, srvConn))

	log.Infof("embedded node running, data dir: %s", dataDir)

	return &Client{
		endpoint: "embedded:" + dataDir,
		cli:      jrpc2.NewClient(channel.Line(cliConn, cliConn), nil),
		shutdown: func() {
			srv.Stop()
			v.close()
		},
	}, nil
}

type embeddedNode struct {
	vault *vault
}

func (n embeddedNode) handleList(ctx context.Context, params listParams) (envelope, error) {
	reply := Contracts{Contracts: []ContractMeta{}}

	err := n.vault.forEachContract(func(id rgb.ContractId, r *contractRecord) error {
		reply.Contracts = append(reply.Contracts, ContractMeta{
			Id:       id,
			SchemaId: r.Genesis.SchemaId,
			Chain:    r.Genesis.Chain,
			Imported: r.Imported,
		})
		return nil
	})
	if err != nil {
		return envelope{}, err
	}

	return sealReply(&reply)
}

func (n embeddedNode) handleState(ctx context.Context, params stateParams) (envelope, error) {
	id, perr := rgb.ContractIdFromString(params.Id)
	if perr != nil {
		return sealReply(&Failure{Code: FAILURE_UNKNOWN_CONTRACT, Info: "invalid contract id: " + perr.Error()})
	}

	record, found, err := n.vault.contract(id)
	if err != nil {
		return envelope{}, err
	}
	if !found {
		return sealReply(&Failure{Code: FAILURE_UNKNOWN_CONTRACT, Info: "contract is not tracked: " + params.Id})
	}

	return sealReply(&ContractState{
		Meta: ContractMeta{
			Id:       id,
			SchemaId: record.Genesis.SchemaId,
			Chain:    record.Genesis.Chain,
			Imported: record.Imported,
		},
		Genesis: record.Genesis,
	})
}

func (n embeddedNode) handleImport(ctx context.Context, params importParams) (envelope, error) {
	b, derr := rgb.Decode(params.Genesis)
	if derr != nil || b.Kind != rgb.KindGenesis {
		return sealReply(&Failure{Code: FAILURE_BAD_GENESIS, Info: "import needs a genesis token"})
	}

	id, err := n.vault.putContract(b.Genesis)
	if err != nil {
		return envelope{}, err
	}

	log.Infof("tracking contract %s", id)

	return sealReply(&Imported{Id: id})
}

func (n embeddedNode) handleBalance(ctx context.Context, params balanceParams) (envelope, error) {
	reply := Balance{}

	if params.AssetId != "" {
		id, perr := rgb.ContractIdFromString(params.AssetId)
		if perr != nil {
			return sealReply(&Failure{Code: FAILURE_UNKNOWN_CONTRACT, Info: "invalid asset id: " + perr.Error()})
		}
		reply.AssetId = &id
	}

	err := n.vault.forEachContract(func(id rgb.ContractId, r *contractRecord) error {
		if reply.AssetId != nil && id != *reply.AssetId {
			return nil
		}
		asset, aerr := rgb20.FromGenesis(&r.Genesis)
		if aerr != nil {
			// non-asset contracts hold no fungible balance
			return nil
		}
		reply.Total += asset.IssuedSupply
		return nil
	})
	if err != nil {
		return envelope{}, err
	}

	return sealReply(&reply)
}
