// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"

	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// Checksum returns the last [consts.ChecksumLen] bytes of the SHA-256 digest
// of [b]. Nodes append it to their hex and ID encodings.
func Checksum(b []byte) []byte {
	return hashing.Checksum(b, consts.ChecksumLen)
}

// CB58Checksum returns the first [consts.ChecksumLen] bytes of
// SHA-256(SHA-256(b)).
func CB58Checksum(b []byte) []byte {
	return hashing.ComputeHash256(hashing.ComputeHash256(b))[:consts.ChecksumLen]
}

// AddChecksum returns a new slice holding [b] followed by its node checksum.
func AddChecksum(b []byte) []byte {
	return appendChecksum(b, Checksum)
}

// RemoveChecksum verifies the trailing node checksum of [b] and returns the
// payload without it.
func RemoveChecksum(b []byte) ([]byte, error) {
	return stripChecksum(b, Checksum)
}

func appendChecksum(b []byte, checksum func([]byte) []byte) []byte {
	checked := make([]byte, len(b), len(b)+consts.ChecksumLen)
	copy(checked, b)
	return append(checked, checksum(b)...)
}

func stripChecksum(b []byte, checksum func([]byte) []byte) ([]byte, error) {
	if len(b) < consts.ChecksumLen {
		return nil, ErrTooShort
	}
	payload := b[:len(b)-consts.ChecksumLen]
	if !bytes.Equal(b[len(payload):], checksum(payload)) {
		return nil, ErrInvalidChecksum
	}
	return payload, nil
}
