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

// Package api is the HTTP facade over the boundary. The call handle
// allows one call in flight at a time, so the server serializes handle
// access itself; decode calls are stateless and need no guard.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"citadelgo/bridge"
	"citadelgo/config"
	"citadelgo/log"
	"citadelgo/mut"
)

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Next()
	}
}

func limitBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MAX_REQUEST_SIZE)
		c.Next()
	}
}

type DecodeRequest struct {
	Token string `json:"token"`
}

type DecodeResponse struct {
	Status   int32           `json:"status"`
	Category int32           `json:"category"`
	Bech32m  bool            `json:"bech32m"`
	Details  json.RawMessage `json:"details"`
}

type CallResponse struct {
	ErrNo   int32           `json:"errNo"`
	Message string          `json:"message,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// Server owns the call handle on behalf of its HTTP clients.
type Server struct {
	handle *bridge.Client
	mut    mut.RWMutex
}

func NewServer(handle *bridge.Client) *Server {
	return &Server{handle: handle}
}

func (s *Server) Router() *gin.Engine {
	gin.SetMode("release")
	r := gin.Default()

	r.SetTrustedProxies([]string{
		"127.0.0.1",
	})

	r.Use(cors())
	r.Use(limitBody())

	r.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	r.POST("/decode", func(c *gin.Context) {
		var req DecodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(400, "invalid request")
			return
		}
		if len(req.Token) > config.MAX_TOKEN_SIZE {
			c.String(400, "token is too large")
			return
		}

		info := bridge.Decode(&req.Token)
		defer bridge.Release(info)

		details, _ := bridge.ReadStr(info.Details)

		resp := DecodeResponse{
			Status:   info.Status,
			Category: info.Category,
			Bech32m:  info.Bech32m,
		}
		if info.Status == bridge.BECH32_OK {
			resp.Details = json.RawMessage(details)
		} else {
			// failure details are a plain message, not JSON
			resp.Details, _ = json.Marshal(details)
		}

		c.JSON(200, resp)
	})

	r.GET("/contracts", func(c *gin.Context) {
		c.JSON(200, s.call(s.handle.ListContracts))
	})

	r.GET("/contract/:id", func(c *gin.Context) {
		id := c.Param("id")
		c.JSON(200, s.call(func() bridge.Str {
			return s.handle.ContractState(&id)
		}))
	})

	r.GET("/balance", func(c *gin.Context) {
		var assetId *string
		if query, ok := c.GetQuery("asset"); ok {
			assetId = &query
		}
		c.JSON(200, s.call(func() bridge.Str {
			return s.handle.Balance(assetId)
		}))
	})

	r.POST("/contracts", func(c *gin.Context) {
		var req DecodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(400, "invalid request")
			return
		}
		c.JSON(200, s.call(func() bridge.Str {
			return s.handle.ImportContract(&req.Token)
		}))
	})

	return r
}

func (s *Server) Run(bind string) {
	log.Info("API server listening on", bind)
	s.Router().Run(bind)
}

// call runs one handle operation and snapshots the resulting state as a
// single critical section: gin serves every request on its own goroutine
// while the handle supports only one call in flight, and the errNo and
// message it reports must belong to the call just made, not to a
// neighbor's.
func (s *Server) call(op func() bridge.Str) CallResponse {
	s.mut.Lock()
	defer s.mut.Unlock()

	result := op()

	resp := CallResponse{ErrNo: s.handle.ErrNo()}
	if msg, ok := bridge.ReadStr(s.handle.Message()); ok {
		resp.Message = msg
	}
	if data, ok := bridge.ReadStr(result); ok {
		resp.Result = json.RawMessage(data)
	}
	bridge.ReleaseStr(result)

	return resp
}
