// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// RemoveSubnetValidatorTx removes [NodeID] from the validator set of [Subnet].
type RemoveSubnetValidatorTx struct {
	BaseTx `json:"baseTx"`

	NodeID     codec.NodeID `json:"nodeID"`
	Subnet     codec.ID     `json:"subnetID"`
	SubnetAuth Input        `json:"subnetAuthorization"`
}

// TypeID implements UnsignedTx.
func (*RemoveSubnetValidatorTx) TypeID() uint32 {
	return consts.RemoveSubnetValidatorTxID
}

// Marshal implements codec.Marshaler.
func (tx *RemoveSubnetValidatorTx) Marshal(p *codec.Packer) {
	tx.BaseTx.Marshal(p)
	p.PackNodeID(tx.NodeID)
	p.PackID(tx.Subnet)
	PackInput(p, tx.SubnetAuth)
}

// Unmarshal implements codec.Unmarshaler.
func (tx *RemoveSubnetValidatorTx) Unmarshal(p *codec.Packer) {
	tx.BaseTx.Unmarshal(p)
	p.UnpackNodeID(&tx.NodeID)
	p.UnpackID(&tx.Subnet)
	tx.SubnetAuth = UnpackInput(p)
}

// Verify implements UnsignedTx.
func (tx *RemoveSubnetValidatorTx) Verify() error {
	if err := tx.BaseTx.Verify(); err != nil {
		return err
	}
	if _, ok := tx.SubnetAuth.(*SubnetAuth); !ok {
		return ErrWrongTypeID
	}
	return tx.SubnetAuth.Verify()
}
