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

package config

const MAX_TOKEN_SIZE = 64 * 1024 // 64 KiB, consignments can get large

const MAX_REQUEST_SIZE = 256 * 1024

// seconds
const RPC_TIMEOUT = 10

const API_HOST = "0.0.0.0"

const VAULT_FILE = "citadel.db"
