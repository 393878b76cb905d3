// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// ExportTx moves [ExportedOutputs] into the shared memory of
// [DestinationChain].
type ExportTx struct {
	BaseTx `json:"baseTx"`

	DestinationChain codec.ID              `json:"destinationChain"`
	ExportedOutputs  []*TransferableOutput `json:"exportedOutputs"`
}

// TypeID implements UnsignedTx.
func (*ExportTx) TypeID() uint32 {
	return consts.ExportTxTypeID
}

// Marshal implements codec.Marshaler.
func (tx *ExportTx) Marshal(p *codec.Packer) {
	tx.BaseTx.Marshal(p)
	p.PackID(tx.DestinationChain)
	packTransferableOutputs(p, tx.ExportedOutputs)
}

// Unmarshal implements codec.Unmarshaler.
func (tx *ExportTx) Unmarshal(p *codec.Packer) {
	tx.BaseTx.Unmarshal(p)
	p.UnpackID(&tx.DestinationChain)
	tx.ExportedOutputs = unpackTransferableOutputs(p)
}

// Verify implements UnsignedTx.
func (tx *ExportTx) Verify() error {
	if err := tx.BaseTx.Verify(); err != nil {
		return err
	}
	return verifyTransferables(tx.ExportedOutputs, nil)
}
