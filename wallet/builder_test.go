// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/formatting"
	"github.com/ava-labs/avalanche-sdk-go/txs"
)

const testUTXOHex = "0x0000" +
	"f966750f438867c3c9828ddcdbe660e21ccdbb36a9276958f011ba472f75d4e7" +
	"00000000" +
	"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
	"00000007" +
	"0000000000003039" +
	"000000000000d431" +
	"00000001" +
	"00000001" +
	"3cb7d3842e8cee6a0ebd09f1fe884f6861e1b29c"

func mustAddress(t *testing.T, chain string, id codec.ShortID) string {
	addr, err := formatting.FormatAddress(chain, consts.MainnetHRP, id[:])
	require.NoError(t, err)
	return addr
}

func TestBuildUTXOBytesFixture(t *testing.T) {
	require := require.New(t)

	txID, err := codec.IDFromHex("f966750f438867c3c9828ddcdbe660e21ccdbb36a9276958f011ba472f75d4e7")
	require.NoError(err)
	assetID, err := codec.IDFromHex("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(err)
	owner, err := codec.ShortIDFromHex("3cb7d3842e8cee6a0ebd09f1fe884f6861e1b29c")
	require.NoError(err)

	utxoHex, err := BuildUTXOBytes(&UTXOParams{
		TxID:      txID.String(),
		AssetID:   assetID.String(),
		Amount:    "12345",
		Locktime:  54321,
		Threshold: 1,
		Addresses: []string{mustAddress(t, consts.PChainAlias, owner)},
	})
	require.NoError(err)

	raw, err := formatting.DecodeRawHex(testUTXOHex)
	require.NoError(err)
	require.Equal(formatting.EncodeHex(raw), utxoHex)
}

func TestBuildUTXO(t *testing.T) {
	low := codec.ShortID{0x01}
	high := codec.ShortID{0xff}

	tests := []struct {
		name              string
		addresses         []string
		stakeableLocktime uint64
	}{
		{
			name:      "unsorted addresses",
			addresses: []string{mustAddress(t, consts.XChainAlias, high), mustAddress(t, consts.XChainAlias, low)},
		},
		{
			name: "addresses without chain prefix",
			addresses: []string{
				formatting.StripChainAlias(mustAddress(t, consts.PChainAlias, low)),
				formatting.StripChainAlias(mustAddress(t, consts.PChainAlias, high)),
			},
		},
		{
			name:              "stakeable",
			addresses:         []string{mustAddress(t, consts.PChainAlias, high), mustAddress(t, consts.PChainAlias, low)},
			stakeableLocktime: 1_700_000_000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			params := &UTXOParams{
				TxID:              codec.ID{0x01}.String(),
				OutputIndex:       3,
				AssetID:           codec.ID{0x02}.String(),
				Amount:            "18446744073709551615",
				Threshold:         2,
				Addresses:         tt.addresses,
				StakeableLocktime: tt.stakeableLocktime,
			}
			utxo, err := BuildUTXO(params)
			require.NoError(err)
			require.Equal(codec.ID{0x01}, utxo.TxID)
			require.Equal(uint32(3), utxo.OutputIndex)
			require.Equal(codec.ID{0x02}, utxo.Asset)
			require.Equal(consts.MaxUint64, utxo.Out.Amount())

			out := utxo.Out
			if tt.stakeableLocktime != 0 {
				lock, ok := out.(*txs.StakeableLockOut)
				require.True(ok)
				require.Equal(tt.stakeableLocktime, lock.Locktime)
				out = lock.TransferableOut
			}
			transfer, ok := out.(*txs.TransferOutput)
			require.True(ok)
			require.Equal([]codec.ShortID{low, high}, transfer.Addrs)
			require.NoError(utxo.Out.Verify())

			utxoHex, err := BuildUTXOBytes(params)
			require.NoError(err)
			parsed, err := ParseUTXO(utxoHex)
			require.NoError(err)
			require.Equal(utxo, parsed)
		})
	}
}

func TestBuildUTXOErrors(t *testing.T) {
	addr := mustAddress(t, consts.PChainAlias, codec.ShortID{0x01})

	tests := []struct {
		name        string
		amount      string
		address     string
		expectedErr error
	}{
		{
			name:        "amount overflow",
			amount:      "18446744073709551616",
			address:     addr,
			expectedErr: codec.ErrEncodingOverflow,
		},
		{
			name:        "negative amount",
			amount:      "-1",
			address:     addr,
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "decimal amount",
			amount:      "1.5",
			address:     addr,
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "bad address",
			amount:      "1",
			address:     "P-avax1notanaddress",
			expectedErr: ErrInvalidAddress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildUTXOBytes(&UTXOParams{
				TxID:      codec.ID{}.String(),
				AssetID:   codec.ID{}.String(),
				Amount:    tt.amount,
				Threshold: 1,
				Addresses: []string{tt.address},
			})
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
