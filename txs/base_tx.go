// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

const defaultTxSize = 1024

// BaseTx moves funds within a chain. Every other transaction starts with the
// same fields.
type BaseTx struct {
	NetworkID    uint32                `json:"networkID"`
	BlockchainID codec.ID              `json:"blockchainID"`
	Outs         []*TransferableOutput `json:"outputs"`
	Ins          []*TransferableInput  `json:"inputs"`
	Memo         codec.Bytes           `json:"memo"`
}

// TypeID implements UnsignedTx.
func (*BaseTx) TypeID() uint32 {
	return consts.BaseTxTypeID
}

// Base implements UnsignedTx.
func (tx *BaseTx) Base() *BaseTx {
	return tx
}

// Marshal implements codec.Marshaler.
func (tx *BaseTx) Marshal(p *codec.Packer) {
	p.PackInt(tx.NetworkID)
	p.PackID(tx.BlockchainID)
	packTransferableOutputs(p, tx.Outs)
	packTransferableInputs(p, tx.Ins)
	p.PackBytes(tx.Memo)
}

// Unmarshal implements codec.Unmarshaler.
func (tx *BaseTx) Unmarshal(p *codec.Packer) {
	tx.NetworkID = p.UnpackInt()
	p.UnpackID(&tx.BlockchainID)
	tx.Outs = unpackTransferableOutputs(p)
	tx.Ins = unpackTransferableInputs(p)
	tx.Memo = p.UnpackBytes()
}

// Verify implements UnsignedTx.
func (tx *BaseTx) Verify() error {
	if len(tx.Memo) > consts.MaxMemoSize {
		return fmt.Errorf("%w: %d bytes", ErrMemoTooLarge, len(tx.Memo))
	}
	return verifyTransferables(tx.Outs, tx.Ins)
}

// Produced sums the outputs of [assetID].
func (tx *BaseTx) Produced(assetID codec.ID) uint64 {
	var total uint64
	for _, out := range tx.Outs {
		if out != nil && out.Asset == assetID && out.Out != nil {
			total += out.Out.Amount()
		}
	}
	return total
}

// Consumed sums the inputs of [assetID].
func (tx *BaseTx) Consumed(assetID codec.ID) uint64 {
	var total uint64
	for _, in := range tx.Ins {
		if in != nil && in.Asset == assetID && in.In != nil {
			total += in.In.Amount()
		}
	}
	return total
}
