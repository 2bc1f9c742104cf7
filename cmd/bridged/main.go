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

package main

import (
	"strconv"

	"citadelgo/api"
	"citadelgo/bridge"
	"citadelgo/cfg"
	"citadelgo/citadel"
	"citadelgo/config"
	"citadelgo/log"
	"citadelgo/util"
)

func main() {
	redacted := cfg.Cfg
	redacted.MasterPass = "***"
	log.Debug("config:", util.DumpJson(redacted))

	var inner *citadel.Client
	var err error

	if cfg.Cfg.Embedded {
		inner, err = citadel.RunEmbedded(cfg.Cfg.DataDir, cfg.MasterPass)
	} else {
		inner, err = citadel.Connect(cfg.Cfg.NodeEndpoint)
	}

	var handle *bridge.Client
	if err != nil {
		log.Err("node client failed to start:", err)
		handle = bridge.FromError(err)
	} else {
		handle = bridge.With(inner)
	}
	defer handle.Close()

	bind := config.API_HOST + ":" + strconv.FormatUint(uint64(cfg.Cfg.ApiPort), 10)
	api.NewServer(handle).Run(bind)
}
