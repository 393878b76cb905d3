// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen      = 1
	ShortLen     = 2
	IntLen       = 4
	LongLen      = 8
	IDLen        = 32
	ShortIDLen   = 20
	NodeIDLen    = 20
	SignatureLen = 65
	ChecksumLen  = 4

	MaxUint8     = ^uint8(0)
	MaxUint16    = ^uint16(0)
	MaxUint32    = ^uint32(0)
	MaxUint64    = ^uint64(0)
	MaxUint      = ^uint(0)
	MaxInt       = int(MaxUint >> 1)
	MaxStringLen = int(MaxUint16)

	// CodecVersion prefixes every serialized UTXO and signed transaction.
	CodecVersion uint16 = 0

	// MaxMemoSize is the largest memo a BaseTx may carry.
	MaxMemoSize = 256
)

// Type IDs shared by the Platform and Exchange chain codecs.
const (
	TransferInputTypeID       uint32 = 5
	TransferOutputTypeID      uint32 = 7
	CredentialTypeID          uint32 = 9
	SubnetAuthTypeID          uint32 = 10
	OutputOwnersTypeID        uint32 = 11
	AddValidatorTxTypeID      uint32 = 12
	CreateSubnetTxTypeID      uint32 = 16
	ImportTxTypeID            uint32 = 17
	ExportTxTypeID            uint32 = 18
	StakeableLockInTypeID     uint32 = 21
	StakeableLockOutTypeID    uint32 = 22
	RemoveSubnetValidatorTxID uint32 = 23
	BaseTxTypeID              uint32 = 34
)

const (
	MainnetID uint32 = 1
	FujiID    uint32 = 5
	LocalID   uint32 = 12345

	MainnetHRP  = "avax"
	FujiHRP     = "fuji"
	LocalHRP    = "local"
	FallbackHRP = "custom"

	PChainAlias = "P"
	XChainAlias = "X"
	CChainAlias = "C"

	MainnetAPI = "https://api.avax.network"
	FujiAPI    = "https://api.avax-test.network"
	LocalAPI   = "http://127.0.0.1:9650"
)

// NetworkHRPs maps well known network IDs to their bech32 human readable part.
var NetworkHRPs = map[uint32]string{
	MainnetID: MainnetHRP,
	FujiID:    FujiHRP,
	LocalID:   LocalHRP,
}
