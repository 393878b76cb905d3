// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// CreateSubnetTx creates a subnet controlled by [Owner].
type CreateSubnetTx struct {
	BaseTx `json:"baseTx"`

	Owner *OutputOwners `json:"owner"`
}

// TypeID implements UnsignedTx.
func (*CreateSubnetTx) TypeID() uint32 {
	return consts.CreateSubnetTxTypeID
}

// Marshal implements codec.Marshaler.
func (tx *CreateSubnetTx) Marshal(p *codec.Packer) {
	tx.BaseTx.Marshal(p)
	if tx.Owner == nil {
		p.AddErr(ErrNilOutput)
		return
	}
	PackOutput(p, tx.Owner)
}

// Unmarshal implements codec.Unmarshaler.
func (tx *CreateSubnetTx) Unmarshal(p *codec.Packer) {
	tx.BaseTx.Unmarshal(p)
	tx.Owner = UnpackOwner(p)
}

// Verify implements UnsignedTx.
func (tx *CreateSubnetTx) Verify() error {
	if err := tx.BaseTx.Verify(); err != nil {
		return err
	}
	if tx.Owner == nil {
		return ErrNilOutput
	}
	return tx.Owner.Verify()
}
