// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/formatting"
)

func TestParseUTXO(t *testing.T) {
	raw, err := formatting.DecodeRawHex(testUTXOHex)
	require.NoError(t, err)

	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:  "checksummed",
			input: formatting.EncodeHex(raw),
		},
		{
			name:  "raw",
			input: testUTXOHex,
		},
		{
			name:        "truncated",
			input:       testUTXOHex[:len(testUTXOHex)-2],
			expectedErr: codec.ErrTruncatedInput,
		},
		{
			name:        "not hex",
			input:       "0xzz",
			expectedErr: formatting.ErrHexDecoding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			utxo, err := ParseUTXO(tt.input)
			require.ErrorIs(err, tt.expectedErr)
			if err != nil {
				return
			}
			require.Equal(uint64(12345), utxo.Out.Amount())

			b, err := codec.Marshal(utxo)
			require.NoError(err)
			require.Equal(raw, b)
		})
	}
}

func TestParseSignedTxRejectsGarbage(t *testing.T) {
	_, err := ParseSignedTx("0x0000")
	require.ErrorIs(t, err, codec.ErrTruncatedInput)
}
