// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const hexPrefix = "0x"

// EncodeHex returns the node "hex" encoding of [b]: a 0x prefixed hex string
// of [b] followed by its checksum.
func EncodeHex(b []byte) string {
	return hexPrefix + hex.EncodeToString(AddChecksum(b))
}

// DecodeHex parses a string produced by [EncodeHex] and verifies its checksum.
func DecodeHex(s string) ([]byte, error) {
	raw, err := DecodeRawHex(s)
	if err != nil {
		return nil, err
	}
	return RemoveChecksum(raw)
}

// DecodeRawHex parses a hex string with an optional 0x prefix. No checksum is
// expected.
func DecodeRawHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, hexPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHexDecoding, err)
	}
	return b, nil
}
