// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"github.com/ava-labs/avalanche-sdk-go/formatting"
	"github.com/ava-labs/avalanche-sdk-go/txs"
)

// ParseUTXO decodes a 0x prefixed hex UTXO, with or without the trailing
// checksum.
func ParseUTXO(s string) (*txs.UTXO, error) {
	return parseHex(s, txs.ParseUTXO)
}

// ParseSignedTx decodes a 0x prefixed hex signed transaction, with or
// without the trailing checksum.
func ParseSignedTx(s string) (*txs.SignedTx, error) {
	return parseHex(s, txs.ParseSignedTx)
}

func parseHex[T any](s string, parse func([]byte) (T, error)) (T, error) {
	if b, err := formatting.DecodeHex(s); err == nil {
		if v, err := parse(b); err == nil {
			return v, nil
		}
	}
	b, err := formatting.DecodeRawHex(s)
	if err != nil {
		var zero T
		return zero, err
	}
	return parse(b)
}
