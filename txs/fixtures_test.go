// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/codec"
)

const (
	testAssetHex   = "6870b7d66ac32540311379e5b5dbad28ec7eb8ddbfc8f4d67299ebb48475907a"
	testAddrHex    = "da2bee01be82ecc00c34f361eda8eb30fb5a715c"
	testInputTxHex = "dfafbdf5c81f635c9257824ff21c8e3e6f7b632ac306e11446ee540d34711a15"

	// Body shared by every transaction fixture, starting at the network ID.
	testBaseTxBody = "00003039" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"00000001" +
		testAssetHex +
		"00000007" +
		"00000000ee5be5c0" +
		"0000000000000000" +
		"00000001" +
		"00000001" +
		testAddrHex +
		"00000001" +
		testTransferableInput +
		"00000000"

	testTransferableInput = testInputTxHex +
		"00000001" +
		testAssetHex +
		"00000005" +
		"00000000ee6b2800" +
		"00000001" +
		"00000000"

	testBaseTx = "0x00000022" + testBaseTxBody

	testAddValidatorTx = "0x0000000c" + testBaseTxBody +
		"e9094f73698002fd52c90819b457b9fbc866ab80" +
		"000000005f21f31d" +
		"000000005f497dc6" +
		"000000000000d431" +
		"00000001" +
		"39c33a499ce4c33a3b09cdd2cfa01ae70dbf2d18b2d7d168524440e55d550088" +
		"00000007" +
		"000001d1a94a2000" +
		"0000000000000000" +
		"00000001" +
		"00000001" +
		"3cb7d3842e8cee6a0ebd09f1fe884f6861e1b29c" +
		"0000000b" +
		"0000000000000000" +
		"00000001" +
		"00000001" +
		testAddrHex +
		"00000064"

	testImportTx = "0x00000011" + testBaseTxBody +
		"787cd3243c002e9bf5bbbaea8a42a16c1a19cc105047c66996807cbf16acee10" +
		"00000001" +
		testTransferableInput

	testExportTx = "0x00000012" + testBaseTxBody +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"00000001" +
		testAssetHex +
		"00000007" +
		"00000000ee5be5c0" +
		"0000000000000000" +
		"00000001" +
		"00000001" +
		testAddrHex

	testRemoveSubnetValidatorTx = "0x00000017" + testBaseTxBody +
		"e902a9a86640bfdb1cd0e36c0cc982b83e5765fa" +
		"4a177205df5c29929d06db9d941f83d5ea985de302015e99252d16469a6610db" +
		"0000000a" +
		"00000001" +
		"00000000"

	testUTXO = "0x0000" +
		"f966750f438867c3c9828ddcdbe660e21ccdbb36a9276958f011ba472f75d4e7" +
		"00000000" +
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
		"00000007" +
		"0000000000003039" +
		"000000000000d431" +
		"00000001" +
		"00000001" +
		"3cb7d3842e8cee6a0ebd09f1fe884f6861e1b29c"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := codec.LoadHex(s, -1)
	require.NoError(t, err)
	return b
}

func mustID(t *testing.T, s string) codec.ID {
	t.Helper()
	id, err := codec.IDFromHex(s)
	require.NoError(t, err)
	return id
}

func mustShortID(t *testing.T, s string) codec.ShortID {
	t.Helper()
	id, err := codec.ShortIDFromHex(s)
	require.NoError(t, err)
	return id
}
