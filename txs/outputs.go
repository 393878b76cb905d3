// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

var (
	_ Output = (*TransferOutput)(nil)
	_ Output = (*StakeableLockOut)(nil)
)

// Output is the tagged union of output variants. The 4 byte type ID is
// written by [PackOutput] and read by [UnpackOutput]; a variant's own
// Marshal and Unmarshal only handle its body.
type Output interface {
	codec.Marshaler
	codec.Unmarshaler

	TypeID() uint32
	Amount() uint64
	Verify() error
}

// TransferOutput sends [Amt] of an asset to [OutputOwners].
type TransferOutput struct {
	Amt uint64 `json:"amount"`

	OutputOwners `json:"outputOwners"`
}

// TypeID implements Output.
func (*TransferOutput) TypeID() uint32 {
	return consts.TransferOutputTypeID
}

// Amount implements Output.
func (o *TransferOutput) Amount() uint64 {
	return o.Amt
}

// Marshal implements codec.Marshaler.
func (o *TransferOutput) Marshal(p *codec.Packer) {
	p.PackLong(o.Amt)
	o.OutputOwners.Marshal(p)
}

// Unmarshal implements codec.Unmarshaler.
func (o *TransferOutput) Unmarshal(p *codec.Packer) {
	o.Amt = p.UnpackLong()
	o.OutputOwners.Unmarshal(p)
}

// Verify implements Output.
func (o *TransferOutput) Verify() error {
	if o.Amt == 0 {
		return ErrZeroAmount
	}
	return o.OutputOwners.Verify()
}

// StakeableLockOut locks [TransferableOut] for staking until [Locktime].
type StakeableLockOut struct {
	Locktime        uint64 `json:"locktime"`
	TransferableOut Output `json:"output"`
}

// TypeID implements Output.
func (*StakeableLockOut) TypeID() uint32 {
	return consts.StakeableLockOutTypeID
}

// Amount implements Output.
func (o *StakeableLockOut) Amount() uint64 {
	if o.TransferableOut == nil {
		return 0
	}
	return o.TransferableOut.Amount()
}

// Marshal implements codec.Marshaler.
func (o *StakeableLockOut) Marshal(p *codec.Packer) {
	p.PackLong(o.Locktime)
	PackOutput(p, o.TransferableOut)
}

// Unmarshal implements codec.Unmarshaler.
func (o *StakeableLockOut) Unmarshal(p *codec.Packer) {
	o.Locktime = p.UnpackLong()
	o.TransferableOut = UnpackOutput(p)
}

// Verify implements Output.
func (o *StakeableLockOut) Verify() error {
	switch o.TransferableOut.(type) {
	case nil:
		return ErrNilOutput
	case *StakeableLockOut:
		return ErrNestedStakeableLock
	}
	return o.TransferableOut.Verify()
}

// NewOutput returns an empty output for [typeID].
func NewOutput(typeID uint32) (Output, error) {
	switch typeID {
	case consts.TransferOutputTypeID:
		return &TransferOutput{}, nil
	case consts.OutputOwnersTypeID:
		return &OutputOwners{}, nil
	case consts.StakeableLockOutTypeID:
		return &StakeableLockOut{}, nil
	default:
		return nil, fmt.Errorf("%w: %d is not an output", codec.ErrUnknownTypeID, typeID)
	}
}

// PackOutput writes the type ID of [out] followed by its body.
func PackOutput(p *codec.Packer, out Output) {
	if out == nil {
		p.AddErr(ErrNilOutput)
		return
	}
	p.PackInt(out.TypeID())
	out.Marshal(p)
}

// UnpackOutput reads a type ID and decodes the matching output variant.
func UnpackOutput(p *codec.Packer) Output {
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil
	}
	out, err := NewOutput(typeID)
	if err != nil {
		p.AddErr(err)
		return nil
	}
	out.Unmarshal(p)
	return out
}

// UnpackOwner reads a tagged output that must be an OutputOwners.
func UnpackOwner(p *codec.Packer) *OutputOwners {
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil
	}
	if typeID != consts.OutputOwnersTypeID {
		p.AddErr(fmt.Errorf("%w: %d is not an owner", codec.ErrUnknownTypeID, typeID))
		return nil
	}
	owners := &OutputOwners{}
	owners.Unmarshal(p)
	return owners
}
