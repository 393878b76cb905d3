// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

func TestUnsignedTxRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		typeID uint32
	}{
		{"base", testBaseTx, consts.BaseTxTypeID},
		{"add validator", testAddValidatorTx, consts.AddValidatorTxTypeID},
		{"import", testImportTx, consts.ImportTxTypeID},
		{"export", testExportTx, consts.ExportTxTypeID},
		{"remove subnet validator", testRemoveSubnetValidatorTx, consts.RemoveSubnetValidatorTxID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			raw := mustHex(t, tt.hex)
			tx, err := ParseUnsignedTx(raw)
			require.NoError(err)
			require.Equal(tt.typeID, tx.TypeID())
			require.NoError(tx.Verify())

			encoded, err := MarshalUnsignedTx(tx)
			require.NoError(err)
			require.Equal(raw, encoded)
		})
	}
}

func checkBaseTx(t *testing.T, tx *BaseTx) {
	require := require.New(t)

	require.Equal(consts.LocalID, tx.NetworkID)
	require.Equal(codec.EmptyID, tx.BlockchainID)
	require.Empty(tx.Memo)

	require.Len(tx.Outs, 1)
	require.Equal(mustID(t, testAssetHex), tx.Outs[0].Asset)
	out, ok := tx.Outs[0].Out.(*TransferOutput)
	require.True(ok)
	require.Equal(uint64(3_999_000_000), out.Amt)
	require.Equal(uint32(1), out.Threshold)
	require.Equal([]codec.ShortID{mustShortID(t, testAddrHex)}, out.Addrs)

	require.Len(tx.Ins, 1)
	require.Equal(mustID(t, testInputTxHex), tx.Ins[0].TxID)
	require.Equal(uint32(1), tx.Ins[0].OutputIndex)
	in, ok := tx.Ins[0].In.(*TransferInput)
	require.True(ok)
	require.Equal(uint64(4_000_000_000), in.Amt)
	require.Equal([]uint32{0}, in.Indices)

	assetID := mustID(t, testAssetHex)
	require.Equal(uint64(4_000_000_000), tx.Consumed(assetID))
	require.Equal(uint64(3_999_000_000), tx.Produced(assetID))
}

func TestBaseTxFields(t *testing.T) {
	tx, err := ParseUnsignedTx(mustHex(t, testBaseTx))
	require.NoError(t, err)
	checkBaseTx(t, tx.Base())
}

func TestAddValidatorTxFields(t *testing.T) {
	require := require.New(t)

	utx, err := ParseUnsignedTx(mustHex(t, testAddValidatorTx))
	require.NoError(err)
	tx, ok := utx.(*AddValidatorTx)
	require.True(ok)
	checkBaseTx(t, tx.Base())

	require.Equal("e9094f73698002fd52c90819b457b9fbc866ab80", tx.Validator.NodeID.Hex()[2:])
	require.Equal(uint64(1_596_060_445), tx.Validator.Start)
	require.Equal(uint64(1_598_651_846), tx.Validator.End)
	require.Equal(uint64(54321), tx.Validator.Wght)

	require.Len(tx.StakeOuts, 1)
	require.Equal(uint64(2_000_000_000_000), tx.StakeOuts[0].Out.Amount())

	require.NotNil(tx.RewardsOwner)
	require.Equal(uint32(1), tx.RewardsOwner.Threshold)
	require.Equal([]codec.ShortID{mustShortID(t, testAddrHex)}, tx.RewardsOwner.Addrs)
	require.Equal(uint32(100), tx.DelegationShares)
}

func TestImportTxFields(t *testing.T) {
	require := require.New(t)

	utx, err := ParseUnsignedTx(mustHex(t, testImportTx))
	require.NoError(err)
	tx, ok := utx.(*ImportTx)
	require.True(ok)
	require.Equal(mustID(t, "787cd3243c002e9bf5bbbaea8a42a16c1a19cc105047c66996807cbf16acee10"), tx.SourceChain)
	require.Len(tx.ImportedInputs, 1)
	require.Equal(uint64(4_000_000_000), tx.ImportedInputs[0].In.Amount())
}

func TestExportTxFields(t *testing.T) {
	require := require.New(t)

	utx, err := ParseUnsignedTx(mustHex(t, testExportTx))
	require.NoError(err)
	tx, ok := utx.(*ExportTx)
	require.True(ok)
	require.Equal(codec.EmptyID, tx.DestinationChain)
	require.Len(tx.ExportedOutputs, 1)
	require.Equal(uint64(3_999_000_000), tx.ExportedOutputs[0].Out.Amount())
}

func TestRemoveSubnetValidatorTxFields(t *testing.T) {
	require := require.New(t)

	utx, err := ParseUnsignedTx(mustHex(t, testRemoveSubnetValidatorTx))
	require.NoError(err)
	tx, ok := utx.(*RemoveSubnetValidatorTx)
	require.True(ok)
	require.Equal(mustID(t, "4a177205df5c29929d06db9d941f83d5ea985de302015e99252d16469a6610db"), tx.Subnet)
	auth, ok := tx.SubnetAuth.(*SubnetAuth)
	require.True(ok)
	require.Equal([]uint32{0}, auth.Indices)
}

func TestTransferableInputFixture(t *testing.T) {
	require := require.New(t)

	raw := mustHex(t, testTransferableInput)
	in := &TransferableInput{}
	require.NoError(codec.UnmarshalExact(raw, in))
	require.Equal(mustID(t, testInputTxHex), in.TxID)
	require.Equal(uint32(1), in.OutputIndex)
	require.Equal(mustID(t, testAssetHex), in.Asset)
	require.Equal(consts.TransferInputTypeID, in.In.TypeID())

	encoded, err := codec.Marshal(in)
	require.NoError(err)
	require.Equal(raw, encoded)
}

func TestUnknownTxType(t *testing.T) {
	raw := mustHex(t, testBaseTx)
	raw[3] = 0x63
	_, err := ParseUnsignedTx(raw)
	require.ErrorIs(t, err, codec.ErrUnknownTypeID)
}

func TestStakeableLockInRoundTrip(t *testing.T) {
	require := require.New(t)

	in := &TransferableInput{
		UTXOID: UTXOID{TxID: codec.ID{1}, OutputIndex: 2},
		Asset:  codec.ID{3},
		In: &StakeableLockIn{
			Locktime: 99,
			TransferableIn: &TransferInput{
				Amt:        7,
				SigIndices: SigIndices{Indices: []uint32{0, 1}},
			},
		},
	}
	b, err := codec.Marshal(in)
	require.NoError(err)

	parsed := &TransferableInput{}
	require.NoError(codec.UnmarshalExact(b, parsed))
	require.Equal(in, parsed)
	require.Equal(uint64(7), parsed.In.Amount())
	require.NoError(parsed.Verify())

	nested := &StakeableLockIn{TransferableIn: &StakeableLockIn{}}
	require.ErrorIs(nested.Verify(), ErrNestedStakeableLock)
}

func TestBaseTxVerify(t *testing.T) {
	require := require.New(t)

	tx := &BaseTx{Memo: make([]byte, consts.MaxMemoSize+1)}
	require.ErrorIs(tx.Verify(), ErrMemoTooLarge)

	tx = &BaseTx{
		Ins: []*TransferableInput{{
			In: &TransferInput{Amt: 1, SigIndices: SigIndices{Indices: []uint32{1, 0}}},
		}},
	}
	require.ErrorIs(tx.Verify(), ErrSigIndicesNotSorted)

	tx = &BaseTx{
		Outs: []*TransferableOutput{{Out: &TransferOutput{}}},
	}
	require.ErrorIs(tx.Verify(), ErrZeroAmount)
}

func TestUTXOIDCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        UTXOID
		b        UTXOID
		expected int
	}{
		{"equal", UTXOID{TxID: codec.ID{1}, OutputIndex: 2}, UTXOID{TxID: codec.ID{1}, OutputIndex: 2}, 0},
		{"tx id first", UTXOID{TxID: codec.ID{1}, OutputIndex: 9}, UTXOID{TxID: codec.ID{2}}, -1},
		{"output index", UTXOID{TxID: codec.ID{1}, OutputIndex: 3}, UTXOID{TxID: codec.ID{1}, OutputIndex: 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.a.Compare(tt.b))
		})
	}
}

func TestSortTransferables(t *testing.T) {
	require := require.New(t)

	input := func(tx byte, index uint32) *TransferableInput {
		return &TransferableInput{
			UTXOID: UTXOID{TxID: codec.ID{tx}, OutputIndex: index},
			In: &TransferInput{
				Amt:        1,
				SigIndices: SigIndices{Indices: []uint32{0}},
			},
		}
	}
	ins := []*TransferableInput{input(2, 0), input(1, 1), input(1, 0)}
	SortTransferableInputs(ins)
	require.Equal([]*TransferableInput{input(1, 0), input(1, 1), input(2, 0)}, ins)

	output := func(asset byte, amount uint64) *TransferableOutput {
		return &TransferableOutput{
			Asset: codec.ID{asset},
			Out: &TransferOutput{
				Amt:          amount,
				OutputOwners: OutputOwners{Threshold: 1, Addrs: []codec.ShortID{{1}}},
			},
		}
	}
	outs := []*TransferableOutput{output(2, 1), output(1, 300), output(1, 20)}
	require.NoError(SortTransferableOutputs(outs))
	require.Equal([]*TransferableOutput{output(1, 20), output(1, 300), output(2, 1)}, outs)

	require.ErrorIs(SortTransferableOutputs([]*TransferableOutput{output(1, 1), nil}), ErrNilOutput)
}
