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
	"encoding/json"
	"strings"
	"testing"

	"citadelgo/citadel"
	"citadelgo/rgb"
)

func embeddedHandle(t *testing.T) *Client {
	t.Helper()

	inner, err := citadel.RunEmbedded(t.TempDir(), [32]byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}

	c := With(inner)
	t.Cleanup(c.Close)
	return c
}

func readResult(t *testing.T, c *Client, p Str) string {
	t.Helper()

	if c.ErrNo() != SUCCESS {
		msg, _ := ReadStr(c.Message())
		t.Fatalf("call failed with errno %d: %s", c.ErrNo(), msg)
	}
	s, ok := ReadStr(p)
	if !ok {
		t.Fatal("result handle must resolve")
	}
	ReleaseStr(p)
	return s
}

func TestHandleFromError(t *testing.T) {
	c := FromError(&citadel.Error{Kind: citadel.Networking, Message: "connection refused"})
	defer c.Close()

	if c.ErrNo() != ERRNO_NET {
		t.Fatalf("expected net errno, got %d", c.ErrNo())
	}
	if !c.HasErr() || c.IsOK() {
		t.Fatal("a startup failure must leave the handle in error state")
	}

	msg, _ := ReadStr(c.Message())
	if msg != "connection refused" {
		t.Fatalf("unexpected message %q", msg)
	}

	// no inner client, so calls fail before anything is attempted
	if p := c.ListContracts(); p != StrNull {
		t.Fatal("a call without an inner client must return null")
	}
	if c.ErrNo() != ERRNO_UNINIT {
		t.Fatalf("expected uninitialized errno, got %d", c.ErrNo())
	}
}

func TestHandleFromCustomError(t *testing.T) {
	c := FromCustomError(ERRNO_IO, "disk on fire")
	defer c.Close()

	if c.ErrNo() != ERRNO_IO {
		t.Fatalf("expected io errno, got %d", c.ErrNo())
	}
	msg, _ := ReadStr(c.Message())
	if msg != "disk on fire" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestHandleEmbeddedFlow(t *testing.T) {
	c := embeddedHandle(t)

	// an empty node lists no contracts
	var contracts citadel.Contracts
	if err := json.Unmarshal([]byte(readResult(t, c, c.ListContracts())), &contracts); err != nil {
		t.Fatal(err)
	}
	if len(contracts.Contracts) != 0 {
		t.Fatalf("expected no contracts, got %d", len(contracts.Contracts))
	}

	g := assetGenesis()
	token := mustToken(t, g)

	var imported citadel.Imported
	if err := json.Unmarshal([]byte(readResult(t, c, c.ImportContract(&token))), &imported); err != nil {
		t.Fatal(err)
	}
	if imported.Id != g.ContractId() {
		t.Fatal("import must answer with the derived contract id")
	}
	if !c.IsOK() {
		t.Fatal("a successful call must leave the handle clean")
	}

	idStr := imported.Id.String()

	var state citadel.ContractState
	if err := json.Unmarshal([]byte(readResult(t, c, c.ContractState(&idStr))), &state); err != nil {
		t.Fatal(err)
	}
	if state.Meta.Id != imported.Id || state.Genesis.Chain != g.Chain {
		t.Fatalf("state does not match the imported genesis: %+v", state)
	}

	var scoped citadel.Balance
	if err := json.Unmarshal([]byte(readResult(t, c, c.Balance(&idStr))), &scoped); err != nil {
		t.Fatal(err)
	}
	if scoped.AssetId == nil || *scoped.AssetId != imported.Id || scoped.Total != 1000000 {
		t.Fatalf("unexpected scoped balance: %+v", scoped)
	}
}

func TestHandleServerFailure(t *testing.T) {
	c := embeddedHandle(t)

	unknown := rgb.ContractId{0xff}.String()
	if p := c.ContractState(&unknown); p != StrNull {
		t.Fatal("a server-carried failure must return null")
	}
	if c.ErrNo() != ERRNO_SERVERFAIL {
		t.Fatalf("expected server failure errno, got %d", c.ErrNo())
	}

	msg, _ := ReadStr(c.Message())
	if !strings.Contains(msg, "not tracked") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestHandleSuccessClearsError(t *testing.T) {
	c := embeddedHandle(t)

	unknown := rgb.ContractId{0xff}.String()
	c.ContractState(&unknown)
	if !c.HasErr() {
		t.Fatal("expected the handle in error state")
	}

	p := c.ListContracts()
	if !c.IsOK() {
		t.Fatal("a later success must clear the error state")
	}
	if c.Message() != StrNull {
		t.Fatal("the old message must be dropped")
	}
	ReleaseStr(p)
}

func TestHandleArgumentValidation(t *testing.T) {
	c := embeddedHandle(t)

	if p := c.ContractState(nil); p != StrNull {
		t.Fatal("a null contract id must not reach the client")
	}
	if c.ErrNo() != ERRNO_NULL {
		t.Fatalf("expected null errno, got %d", c.ErrNo())
	}

	bad := "rgb1notavalidid"
	c.ContractState(&bad)
	if c.ErrNo() != ERRNO_PARSE {
		t.Fatalf("expected parse errno, got %d", c.ErrNo())
	}
	msg, _ := ReadStr(c.Message())
	if !strings.Contains(msg, "contract id") {
		t.Fatalf("the message must name the argument, got %q", msg)
	}

	if p := c.Balance(nil); p != StrNull {
		t.Fatal("a null asset id must not reach the client")
	}
	if c.ErrNo() != ERRNO_NULL {
		t.Fatalf("expected null errno, got %d", c.ErrNo())
	}
	msg, _ = ReadStr(c.Message())
	if !strings.Contains(msg, "asset id") {
		t.Fatalf("the message must name the argument, got %q", msg)
	}
}

func TestHandleTakeInner(t *testing.T) {
	c := embeddedHandle(t)

	inner := c.TakeInner()
	if inner == nil {
		t.Fatal("the inner client must move out")
	}
	defer inner.Close()

	if p := c.ListContracts(); p != StrNull {
		t.Fatal("a call after the move must return null")
	}
	if c.ErrNo() != ERRNO_UNINIT {
		t.Fatalf("expected uninitialized errno, got %d", c.ErrNo())
	}

	// the moved-out client keeps working on its own
	if _, err := inner.ListContracts(); err != nil {
		t.Fatal(err)
	}
}

func TestHandleNoMessageLeaks(t *testing.T) {
	before := outstanding()

	c := embeddedHandle(t)
	unknown := rgb.ContractId{0xff}.String()
	for i := 0; i < 8; i++ {
		c.ContractState(&unknown)
		p := c.ListContracts()
		ReleaseStr(p)
	}
	c.Close()

	if outstanding() != before {
		t.Fatalf("leaked %d handles", outstanding()-before)
	}
}
