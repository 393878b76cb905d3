// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// ImportTx consumes UTXOs exported to this chain from [SourceChain].
type ImportTx struct {
	BaseTx `json:"baseTx"`

	SourceChain    codec.ID             `json:"sourceChain"`
	ImportedInputs []*TransferableInput `json:"importedInputs"`
}

// TypeID implements UnsignedTx.
func (*ImportTx) TypeID() uint32 {
	return consts.ImportTxTypeID
}

// Marshal implements codec.Marshaler.
func (tx *ImportTx) Marshal(p *codec.Packer) {
	tx.BaseTx.Marshal(p)
	p.PackID(tx.SourceChain)
	packTransferableInputs(p, tx.ImportedInputs)
}

// Unmarshal implements codec.Unmarshaler.
func (tx *ImportTx) Unmarshal(p *codec.Packer) {
	tx.BaseTx.Unmarshal(p)
	p.UnpackID(&tx.SourceChain)
	tx.ImportedInputs = unpackTransferableInputs(p)
}

// Verify implements UnsignedTx.
func (tx *ImportTx) Verify() error {
	if err := tx.BaseTx.Verify(); err != nil {
		return err
	}
	return verifyTransferables(nil, tx.ImportedInputs)
}
