// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

func TestParseUTXO(t *testing.T) {
	require := require.New(t)

	raw := mustHex(t, testUTXO)
	utxo := &UTXO{}
	rest, err := codec.Unmarshal(raw, utxo)
	require.NoError(err)
	require.Empty(rest)

	require.Equal(uint16(0), utxo.CodecVersion)
	require.Equal(mustID(t, "f966750f438867c3c9828ddcdbe660e21ccdbb36a9276958f011ba472f75d4e7"), utxo.TxID)
	require.Equal(uint32(0), utxo.OutputIndex)
	require.Equal(mustID(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"), utxo.Asset)

	out, ok := utxo.Out.(*TransferOutput)
	require.True(ok)
	require.Equal(consts.TransferOutputTypeID, out.TypeID())
	require.Equal(uint64(12345), out.Amt)
	require.Equal(uint64(54321), out.Locktime)
	require.Equal(uint32(1), out.Threshold)
	require.Equal([]codec.ShortID{mustShortID(t, "3cb7d3842e8cee6a0ebd09f1fe884f6861e1b29c")}, out.Addrs)

	encoded, err := codec.Marshal(utxo)
	require.NoError(err)
	require.Equal(raw, encoded)
	require.Equal(testUTXO, codec.ToHex(encoded))
}

func TestParseUTXOErrors(t *testing.T) {
	raw := mustHex(t, testUTXO)

	unknownType := make([]byte, len(raw))
	copy(unknownType, raw)
	// Output type ID sits after version, txID, index and assetID.
	unknownType[consts.ShortLen+consts.IDLen+consts.IntLen+consts.IDLen+consts.IntLen-1] = 0x08

	lockedBytes, err := codec.Marshal(&UTXO{
		Asset: mustID(t, testAssetHex),
		Out: &StakeableLockOut{
			Locktime: 10,
			TransferableOut: &TransferOutput{
				Amt: 5,
				OutputOwners: OutputOwners{
					Threshold: 1,
					Addrs:     []codec.ShortID{mustShortID(t, testAddrHex)},
				},
			},
		},
	})
	require.NoError(t, err)
	// The wrapped output's type ID follows the lock's type ID and locktime.
	innerTypeOffset := consts.ShortLen + consts.IDLen + consts.IntLen + consts.IDLen + consts.IntLen + consts.LongLen

	unknownInner := make([]byte, len(lockedBytes))
	copy(unknownInner, lockedBytes)
	unknownInner[innerTypeOffset+consts.IntLen-1] = 0xff

	tests := []struct {
		name        string
		input       []byte
		expectedErr error
	}{
		{
			name:        "truncated",
			input:       raw[:len(raw)-1],
			expectedErr: codec.ErrTruncatedInput,
		},
		{
			name:        "trailing",
			input:       append(append([]byte{}, raw...), 0x00),
			expectedErr: codec.ErrTrailingBytes,
		},
		{
			name:        "unknown output",
			input:       unknownType,
			expectedErr: codec.ErrUnknownTypeID,
		},
		{
			name:        "unknown output inside stakeable lock",
			input:       unknownInner,
			expectedErr: codec.ErrUnknownTypeID,
		},
		{
			name:        "truncated inside stakeable lock",
			input:       lockedBytes[:innerTypeOffset+consts.IntLen+consts.IntLen],
			expectedErr: codec.ErrTruncatedInput,
		},
		{
			name:        "missing stakeable lock output",
			input:       lockedBytes[:innerTypeOffset+consts.ShortLen],
			expectedErr: codec.ErrTruncatedInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUTXO(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestUTXOCodecVersionRoundTrip(t *testing.T) {
	require := require.New(t)

	utxo := &UTXO{
		CodecVersion: 1,
		Out: &TransferOutput{
			Amt: 1,
			OutputOwners: OutputOwners{
				Threshold: 1,
				Addrs:     []codec.ShortID{mustShortID(t, testAddrHex)},
			},
		},
	}
	b, err := codec.Marshal(utxo)
	require.NoError(err)
	require.Equal([]byte{0x00, 0x01}, b[:consts.ShortLen])

	parsed, err := ParseUTXO(b)
	require.NoError(err)
	require.Equal(utxo, parsed)
}

func TestStakeableLockInDispatchErrors(t *testing.T) {
	b, err := codec.Marshal(&TransferableInput{
		Asset: mustID(t, testAssetHex),
		In: &StakeableLockIn{
			Locktime: 10,
			TransferableIn: &TransferInput{
				Amt:        5,
				SigIndices: SigIndices{Indices: []uint32{0}},
			},
		},
	})
	require.NoError(t, err)
	innerTypeOffset := consts.IDLen + consts.IntLen + consts.IDLen + consts.IntLen + consts.LongLen

	unknownInner := make([]byte, len(b))
	copy(unknownInner, b)
	unknownInner[innerTypeOffset+consts.IntLen-1] = 0xff

	tests := []struct {
		name        string
		input       []byte
		expectedErr error
	}{
		{
			name:        "unknown input inside stakeable lock",
			input:       unknownInner,
			expectedErr: codec.ErrUnknownTypeID,
		},
		{
			name:        "truncated inside stakeable lock",
			input:       b[:innerTypeOffset+consts.IntLen+consts.IntLen],
			expectedErr: codec.ErrTruncatedInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := codec.UnmarshalExact(tt.input, &TransferableInput{})
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestStakeableLockOutDispatch(t *testing.T) {
	require := require.New(t)

	addr := mustShortID(t, testAddrHex)
	utxo := &UTXO{
		UTXOID: UTXOID{
			TxID:        mustID(t, testInputTxHex),
			OutputIndex: 3,
		},
		Asset: mustID(t, testAssetHex),
		Out: &StakeableLockOut{
			Locktime: 1_700_000_000,
			TransferableOut: &TransferOutput{
				Amt: 25,
				OutputOwners: OutputOwners{
					Threshold: 1,
					Addrs:     []codec.ShortID{addr},
				},
			},
		},
	}
	b, err := codec.Marshal(utxo)
	require.NoError(err)

	parsed, err := ParseUTXO(b)
	require.NoError(err)
	require.Equal(utxo, parsed)

	lock, ok := parsed.Out.(*StakeableLockOut)
	require.True(ok)
	require.Equal(consts.StakeableLockOutTypeID, lock.TypeID())
	require.Equal(uint64(25), lock.Amount())
	require.NoError(lock.Verify())
	require.Equal("0x"+"00000016", codec.ToHex(b[consts.ShortLen+consts.IDLen+consts.IntLen+consts.IDLen:][:consts.IntLen]))
}

func TestUTXOIDString(t *testing.T) {
	id := UTXOID{OutputIndex: 2}
	require.Equal(t, codec.EmptyID.String()+":2", id.String())
}
