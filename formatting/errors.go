// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import "errors"

var (
	ErrInvalidChecksum = errors.New("invalid checksum")
	ErrTooShort        = errors.New("input too short")
	ErrBase58Decoding  = errors.New("base58 decoding error")
	ErrHexDecoding     = errors.New("hex decoding error")
	ErrBech32Encoding  = errors.New("bech32 encoding error")
	ErrBech32Decoding  = errors.New("bech32 decoding error")
	ErrNoSeparator     = errors.New("no separator found in address")
	ErrUnexpectedHRP   = errors.New("unexpected human readable part")
)
