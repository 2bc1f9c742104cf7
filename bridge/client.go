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
	"errors"
	"fmt"
	"math"

	"citadelgo/citadel"
	"citadelgo/rgb"
)

// Errno table of the call handle, stable across versions. Disjoint from
// the decode status codes on purpose: the two call surfaces fail in
// different ways.
const (
	SUCCESS            int32 = 0
	ERRNO_UNINIT       int32 = 1
	ERRNO_IO           int32 = 2
	ERRNO_RPC          int32 = 3
	ERRNO_NET          int32 = 4
	ERRNO_TRANSPORT    int32 = 5
	ERRNO_NOTSUPPORTED int32 = 6
	ERRNO_STORAGE      int32 = 7
	ERRNO_SERVERFAIL   int32 = 8
	ERRNO_EMBEDDEDFAIL int32 = 9
	ERRNO_JSON         int32 = 10
	ERRNO_NULL         int32 = 11
	ERRNO_PARSE        int32 = 12

	ERRNO_UNKNOWN int32 = math.MaxInt32
)

// Client is the opaque call handle the host drives. Every call rewrites
// the errno/message pair before returning its own result, so the handle
// always describes the outcome of the last call. One call in flight per
// handle; the host provides the synchronization.
type Client struct {
	inner *citadel.Client

	errNo   int32
	message Str
}

// With wraps a ready node client.
func With(inner *citadel.Client) *Client {
	return &Client{
		inner: inner,
		errNo: SUCCESS,
	}
}

// FromError builds a handle that carries a startup failure. The handle
// has no inner client: every call on it fails as uninitialized.
func FromError(err error) *Client {
	c := &Client{errNo: ERRNO_UNKNOWN}
	c.setError(err)
	return c
}

func FromCustomError(errNo int32, msg string) *Client {
	c := &Client{}
	c.setErrorDetails(errNo, msg)
	return c
}

func (c *Client) ErrNo() int32 {
	return c.errNo
}

// Message is the description of the last failure. The returned handle
// stays owned by the call handle: it is dropped when the state changes or
// the handle is closed, the host only reads it.
func (c *Client) Message() Str {
	return c.message
}

func (c *Client) IsOK() bool {
	return c.errNo == SUCCESS && c.message == StrNull
}

func (c *Client) HasErr() bool {
	return c.errNo != SUCCESS && c.message != StrNull
}

func (c *Client) dropMessage() {
	ReleaseStr(c.message)
	c.message = StrNull
}

func (c *Client) setSuccess() {
	c.errNo = SUCCESS
	c.dropMessage()
}

func (c *Client) setErrorDetails(errNo int32, msg string) {
	c.errNo = errNo
	c.dropMessage()

	p, ok := TransferOut(msg)
	if !ok {
		p = strStaticFallback
	}
	c.message = p
}

func (c *Client) setErrorNo(errNo int32) {
	message := "Other error"
	if errNo == ERRNO_UNINIT {
		message = "Node client is not yet initialized"
	}
	c.setErrorDetails(errNo, message)
}

// setError folds a client error into the errno table; one code per
// failure family.
func (c *Client) setError(err error) {
	errNo := ERRNO_UNKNOWN

	var clientErr *citadel.Error
	if errors.As(err, &clientErr) {
		switch clientErr.Kind {
		case citadel.Io:
			errNo = ERRNO_IO
		case citadel.Rpc:
			errNo = ERRNO_RPC
		case citadel.Networking:
			errNo = ERRNO_NET
		case citadel.Transport:
			errNo = ERRNO_TRANSPORT
		case citadel.NotSupported:
			errNo = ERRNO_NOTSUPPORTED
		case citadel.StorageDriver:
			errNo = ERRNO_STORAGE
		case citadel.ServerFailure:
			errNo = ERRNO_SERVERFAIL
		case citadel.EmbeddedNodeInit:
			errNo = ERRNO_EMBEDDEDFAIL
		}
	}

	c.setErrorDetails(errNo, err.Error())
}

func (c *Client) setFailure(failure *citadel.Failure) {
	c.setErrorDetails(ERRNO_SERVERFAIL, failure.String())
}

// useInner guards calls that need the inner client: without one the call
// fails as uninitialized before anything is attempted.
func (c *Client) useInner() (*citadel.Client, bool) {
	if c.inner == nil {
		c.setErrorNo(ERRNO_UNINIT)
		return nil, false
	}
	return c.inner, true
}

// TakeInner moves the inner client out to the host. Single-use escape
// hatch: the handle keeps its errno/message state, but calls that need
// the inner client fail as uninitialized from here on.
func (c *Client) TakeInner() *citadel.Client {
	inner := c.inner
	c.inner = nil
	return inner
}

// Close destroys the handle: drops the message and shuts down the inner
// client when the handle still owns one.
func (c *Client) Close() {
	c.dropMessage()
	c.errNo = ERRNO_UNINIT
	if c.inner != nil {
		c.inner.Close()
		c.inner = nil
	}
}

// ProcessResponse folds one call outcome into the handle and returns the
// JSON form of a successful reply as a transferred-out string, or null
// with the handle describing the failure.
func (c *Client) ProcessResponse(reply citadel.Reply, err error) Str {
	if err != nil {
		c.setError(err)
		return StrNull
	}

	if failure, ok := reply.(*citadel.Failure); ok {
		c.setFailure(failure)
		return StrNull
	}

	data, jerr := json.Marshal(reply)
	if jerr != nil {
		c.setErrorDetails(ERRNO_JSON, fmt.Sprintf("Unable to JSON-encode response: %s", jerr))
		return StrNull
	}

	c.setSuccess()
	p, ok := TransferOut(string(data))
	if !ok {
		c.setErrorDetails(ERRNO_JSON, "response contains a NUL byte")
		return StrNull
	}
	return p
}

// ListContracts returns the tracked contracts as a transferred-out JSON
// string.
func (c *Client) ListContracts() Str {
	inner, ok := c.useInner()
	if !ok {
		return StrNull
	}
	return c.ProcessResponse(inner.ListContracts())
}

func (c *Client) ContractState(contractId *string) Str {
	id, ok := c.ParseContractId(contractId)
	if !ok {
		return StrNull
	}
	inner, ok := c.useInner()
	if !ok {
		return StrNull
	}
	return c.ProcessResponse(inner.ContractState(id))
}

func (c *Client) Balance(assetId *string) Str {
	id, ok := c.ParseAssetId(assetId)
	if !ok {
		return StrNull
	}
	inner, ok := c.useInner()
	if !ok {
		return StrNull
	}
	return c.ProcessResponse(inner.Balance(id))
}

func (c *Client) ImportContract(genesis *string) Str {
	token, ok := c.ParseString(genesis, "genesis")
	if !ok {
		return StrNull
	}
	inner, ok := c.useInner()
	if !ok {
		return StrNull
	}
	return c.ProcessResponse(inner.ImportContract(token))
}

// ParseString validates a nullable argument. These helpers are argument
// validation, not client calls: they leave the handle untouched on
// success and record a typed error naming the argument on failure.
func (c *Client) ParseString(s *string, argName string) (string, bool) {
	if s == nil {
		c.setErrorDetails(ERRNO_NULL, fmt.Sprintf("%s can't be null", argName))
		return "", false
	}
	return *s, true
}

func (c *Client) ParseContractId(token *string) (rgb.ContractId, bool) {
	if token == nil {
		c.setErrorDetails(ERRNO_NULL, "null value instead of valid contract id")
		return rgb.ContractId{}, false
	}

	id, err := rgb.ContractIdFromString(*token)
	if err != nil {
		c.setErrorDetails(ERRNO_PARSE, fmt.Sprintf("invalid contract id: %s", err))
		return rgb.ContractId{}, false
	}
	return id, true
}

func (c *Client) ParseAssetId(token *string) (*rgb.ContractId, bool) {
	if token == nil {
		c.setErrorDetails(ERRNO_NULL, "null value instead of valid asset id")
		return nil, false
	}

	id, err := rgb.ContractIdFromString(*token)
	if err != nil {
		c.setErrorDetails(ERRNO_PARSE, fmt.Sprintf("invalid asset id: %s", err))
		return nil, false
	}
	return &id, true
}
