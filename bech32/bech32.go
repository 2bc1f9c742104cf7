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

import (
	"strings"
)

var CHARSET = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
var GENERATOR = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
var SEPARATOR = ':'

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, value := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(value)
		for i, item := range GENERATOR {
			if (top>>uint(i))&1 == 1 {
				chk ^= item
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	var result []byte
	for _, c := range hrp {
		result = append(result, byte(c>>5))
	}
	result = append(result, 0)
	for _, c := range hrp {
		result = append(result, byte(c&31))
	}
	return result
}

// verifyChecksum reports which checksum construction the data carries.
func verifyChecksum(hrp string, data []byte) (Version, bool) {
	vec := hrpExpand(hrp)
	vec = append(vec, data...)
	version, ok := ConstsToVersion[ChecksumConst(polymod(vec))]
	if !ok {
		return VersionUnknown, false
	}
	return version, true
}

func createChecksum(hrp string, data []byte, version Version) [6]byte {
	values := hrpExpand(hrp)
	values = append(values, data...)
	var result [6]byte
	values = append(values, result[:]...)
	polymodValue := polymod(values) ^ uint32(VersionToConsts[version])
	for i := 0; i < 6; i++ {
		result[i] = byte((polymodValue >> uint(5*(5-i)) & 31))
	}
	return result
}

func Encode(hrp string, data []byte, version Version) (string, error) {
	if len(hrp) == 0 {
		return "", newError(KindHrp, "Human readable part is empty")
	}
	for _, value := range hrp {
		if value < 33 || value > 126 {
			return "", newError(KindCharacter, "Invalid character value in human readable part")
		}
	}
	if strings.ToUpper(hrp) != hrp && strings.ToLower(hrp) != hrp {
		return "", newError(KindMixedCase, "Mix case is not allowed in human readable part")
	}
	hrp = strings.ToLower(hrp)
	createdChecksum := createChecksum(hrp, data, version)
	combined := append(data, createdChecksum[:]...)
	var result []byte
	result = append(result, []byte(hrp)...)
	result = append(result, byte(SEPARATOR))
	for _, value := range combined {
		if value > byte(len(CHARSET)) {
			return "", newError(KindCharacter, "Invalid value")
		}
		result = append(result, CHARSET[value])
	}
	return string(result), nil
}

// Decode splits and checksum-verifies a token. The returned data is still
// in 5-bit groups, without the checksum.
func Decode(bech string) (string, []byte, Version, error) {
	if strings.ToUpper(bech) != bech && strings.ToLower(bech) != bech {
		return "", nil, VersionUnknown, newError(KindMixedCase, "Mix case is not allowed in human readable part")
	}
	bech = strings.ToLower(bech)
	pos := strings.LastIndex(bech, string(SEPARATOR))
	if pos < 1 || pos+7 > len(bech) {
		return "", nil, VersionUnknown, newError(KindSeparator, "Invalid separator position")
	}
	hrp := bech[0:pos]
	for _, value := range hrp {
		if value < 33 || value > 126 {
			return "", nil, VersionUnknown, newError(KindCharacter, "Invalid character value in human readable part")
		}
	}
	var data []byte
	for i := pos + 1; i < len(bech); i++ {
		c := rune(bech[i])
		value := strings.IndexRune(CHARSET, c)
		if value == -1 {
			return "", nil, VersionUnknown, newError(KindCharacter, "Invalid value")
		}
		data = append(data, byte(value))
	}
	version, ok := verifyChecksum(hrp, data)
	if !ok {
		return "", nil, VersionUnknown, newError(KindChecksum, "Invalid checksum")
	}

	data = data[:len(data)-6]

	return hrp, data, version, nil
}

// ConvertBits regroups the data between 5-bit and 8-bit words. Encoding
// pads the final group, decoding rejects non-zero padding.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint8
	result := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)
	maxv := uint32(1<<toBits) - 1
	for _, value := range data {
		if value>>fromBits != 0 {
			return nil, newError(KindPadding, "Invalid data range")
		}
		acc = acc<<fromBits | uint32(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			result = append(result, byte(acc>>bits&maxv))
		}
	}
	if pad {
		if bits > 0 {
			result = append(result, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits {
		return nil, newError(KindPadding, "Illegal zero padding")
	} else if acc<<(toBits-bits)&maxv != 0 {
		return nil, newError(KindPadding, "Non-zero padding")
	}
	return result, nil
}
