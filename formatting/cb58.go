// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// minCB58Len is the smallest decoded CB58 value: one payload byte plus the
// checksum.
const minCB58Len = consts.ChecksumLen + 1

// CB58Encode returns base58(b ++ SHA-256(SHA-256(b))[0:4]).
func CB58Encode(b []byte) string {
	return base58.Encode(appendChecksum(b, CB58Checksum))
}

// CB58Decode reverses [CB58Encode], rejecting inputs whose checksum does not
// match.
func CB58Decode(s string) ([]byte, error) {
	return cb58Decode(s, CB58Checksum)
}

// NodeCB58Encode returns the form nodes use to print IDs: base58 of [b]
// followed by the last 4 bytes of SHA-256(b).
func NodeCB58Encode(b []byte) string {
	return base58.Encode(AddChecksum(b))
}

// NodeCB58Decode reverses [NodeCB58Encode].
func NodeCB58Decode(s string) ([]byte, error) {
	return cb58Decode(s, Checksum)
}

func cb58Decode(s string, checksum func([]byte) []byte) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrTooShort
	}
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return nil, ErrBase58Decoding
	}
	if len(decoded) < minCB58Len {
		return nil, ErrTooShort
	}
	return stripChecksum(decoded, checksum)
}
