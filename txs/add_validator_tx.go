// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// MaxDelegationShares is 100% expressed in parts per million.
const MaxDelegationShares = 1_000_000

type AddValidatorTx struct {
	BaseTx `json:"baseTx"`

	Validator        Validator             `json:"validator"`
	StakeOuts        []*TransferableOutput `json:"stake"`
	RewardsOwner     *OutputOwners         `json:"rewardsOwner"`
	DelegationShares uint32                `json:"shares"`
}

// TypeID implements UnsignedTx.
func (*AddValidatorTx) TypeID() uint32 {
	return consts.AddValidatorTxTypeID
}

// Marshal implements codec.Marshaler.
func (tx *AddValidatorTx) Marshal(p *codec.Packer) {
	tx.BaseTx.Marshal(p)
	tx.Validator.Marshal(p)
	packTransferableOutputs(p, tx.StakeOuts)
	if tx.RewardsOwner == nil {
		p.AddErr(ErrNilOutput)
		return
	}
	PackOutput(p, tx.RewardsOwner)
	p.PackInt(tx.DelegationShares)
}

// Unmarshal implements codec.Unmarshaler.
func (tx *AddValidatorTx) Unmarshal(p *codec.Packer) {
	tx.BaseTx.Unmarshal(p)
	tx.Validator.Unmarshal(p)
	tx.StakeOuts = unpackTransferableOutputs(p)
	tx.RewardsOwner = UnpackOwner(p)
	tx.DelegationShares = p.UnpackInt()
}

// Verify implements UnsignedTx.
func (tx *AddValidatorTx) Verify() error {
	if err := tx.BaseTx.Verify(); err != nil {
		return err
	}
	if err := tx.Validator.Verify(); err != nil {
		return err
	}
	if tx.DelegationShares > MaxDelegationShares {
		return ErrTooManyShares
	}
	if tx.RewardsOwner == nil {
		return ErrNilOutput
	}
	if err := tx.RewardsOwner.Verify(); err != nil {
		return err
	}
	return verifyTransferables(tx.StakeOuts, nil)
}
