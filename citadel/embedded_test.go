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
	"testing"

	"citadelgo/rgb"
	"citadelgo/rgb20"
)

var testKey = [32]byte{0xa5, 0x5a}

func testGenesis() *rgb.Genesis {
	return &rgb.Genesis{
		Version:  0,
		SchemaId: rgb20.SchemaID,
		Chain:    "testnet",
		Metadata: []rgb.MetaField{
			{Type: rgb.FieldTicker, Value: "USDT"},
			{Type: rgb.FieldName, Value: "Tether"},
			{Type: rgb.FieldPrecision, Value: "8"},
			{Type: rgb.FieldIssuedSupply, Value: "1000000"},
		},
	}
}

func importGenesis(t *testing.T, c *Client, g *rgb.Genesis) rgb.ContractId {
	t.Helper()

	token, err := g.Encode()
	if err != nil {
		t.Fatal(err)
	}

	reply, cerr := c.ImportContract(token)
	if cerr != nil {
		t.Fatal(cerr)
	}
	imported, ok := reply.(*Imported)
	if !ok {
		t.Fatalf("expected an import reply, got %T", reply)
	}
	return imported.Id
}

func TestEmbeddedImportAndState(t *testing.T) {
	c, err := RunEmbedded(t.TempDir(), testKey)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	g := testGenesis()
	id := importGenesis(t, c, g)
	if id != g.ContractId() {
		t.Fatal("import must answer with the derived contract id")
	}

	reply, cerr := c.ContractState(id)
	if cerr != nil {
		t.Fatal(cerr)
	}
	state, ok := reply.(*ContractState)
	if !ok {
		t.Fatalf("expected a state reply, got %T", reply)
	}
	if state.Meta.Id != id || state.Meta.SchemaId != g.SchemaId {
		t.Fatalf("state meta does not match: %+v", state.Meta)
	}
	if state.Genesis.ContractId() != id {
		t.Fatal("the stored genesis must derive the same id")
	}
}

func TestEmbeddedUnknownContract(t *testing.T) {
	c, err := RunEmbedded(t.TempDir(), testKey)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	reply, cerr := c.ContractState(rgb.ContractId{0xff})
	if cerr != nil {
		t.Fatal(cerr)
	}
	failure, ok := reply.(*Failure)
	if !ok {
		t.Fatalf("expected a carried failure, got %T", reply)
	}
	if failure.Code != FAILURE_UNKNOWN_CONTRACT {
		t.Fatalf("unexpected failure code %d", failure.Code)
	}
}

func TestEmbeddedBadGenesis(t *testing.T) {
	c, err := RunEmbedded(t.TempDir(), testKey)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	reply, cerr := c.ImportContract("i:notagenesis")
	if cerr != nil {
		t.Fatal(cerr)
	}
	failure, ok := reply.(*Failure)
	if !ok {
		t.Fatalf("expected a carried failure, got %T", reply)
	}
	if failure.Code != FAILURE_BAD_GENESIS {
		t.Fatalf("unexpected failure code %d", failure.Code)
	}
}

func TestEmbeddedBalance(t *testing.T) {
	c, err := RunEmbedded(t.TempDir(), testKey)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	id := importGenesis(t, c, testGenesis())

	other := testGenesis()
	other.Metadata[0].Value = "USDC"
	other.Metadata[3].Value = "500"
	otherId := importGenesis(t, c, other)

	reply, cerr := c.Balance(nil)
	if cerr != nil {
		t.Fatal(cerr)
	}
	balance := reply.(*Balance)
	if balance.Total != 1000500 {
		t.Fatalf("expected the combined supply, got %d", balance.Total)
	}

	reply, cerr = c.Balance(&otherId)
	if cerr != nil {
		t.Fatal(cerr)
	}
	balance = reply.(*Balance)
	if balance.Total != 500 || balance.AssetId == nil || *balance.AssetId != otherId {
		t.Fatalf("unexpected scoped balance: %+v", balance)
	}
	if otherId == id {
		t.Fatal("distinct geneses must derive distinct ids")
	}
}

func TestEmbeddedVaultPersistence(t *testing.T) {
	dir := t.TempDir()

	c, err := RunEmbedded(dir, testKey)
	if err != nil {
		t.Fatal(err)
	}
	id := importGenesis(t, c, testGenesis())
	c.Close()

	// same directory, same key: the vault must come back with the contract
	c, err = RunEmbedded(dir, testKey)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	reply, cerr := c.ListContracts()
	if cerr != nil {
		t.Fatal(cerr)
	}
	contracts := reply.(*Contracts)
	if len(contracts.Contracts) != 1 || contracts.Contracts[0].Id != id {
		t.Fatalf("the contract did not survive the reopen: %+v", contracts)
	}
}
