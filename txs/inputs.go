// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

var (
	_ Input = (*TransferInput)(nil)
	_ Input = (*StakeableLockIn)(nil)
	_ Input = (*SubnetAuth)(nil)
)

// Input is the tagged union of input variants.
type Input interface {
	codec.Marshaler
	codec.Unmarshaler

	TypeID() uint32
	Amount() uint64
	Verify() error
}

// SigIndices lists which owner addresses sign for an input.
type SigIndices struct {
	Indices []uint32 `json:"signatureIndices"`
}

// Marshal implements codec.Marshaler.
func (s *SigIndices) Marshal(p *codec.Packer) {
	p.PackInts(s.Indices)
}

// Unmarshal implements codec.Unmarshaler.
func (s *SigIndices) Unmarshal(p *codec.Packer) {
	s.Indices = p.UnpackInts()
}

func (s *SigIndices) Verify() error {
	if !isSortedAndUniqueInts(s.Indices) {
		return ErrSigIndicesNotSorted
	}
	return nil
}

// TransferInput consumes [Amt] from a UTXO.
type TransferInput struct {
	Amt uint64 `json:"amount"`

	SigIndices `json:"input"`
}

// TypeID implements Input.
func (*TransferInput) TypeID() uint32 {
	return consts.TransferInputTypeID
}

// Amount implements Input.
func (i *TransferInput) Amount() uint64 {
	return i.Amt
}

// Marshal implements codec.Marshaler.
func (i *TransferInput) Marshal(p *codec.Packer) {
	p.PackLong(i.Amt)
	i.SigIndices.Marshal(p)
}

// Unmarshal implements codec.Unmarshaler.
func (i *TransferInput) Unmarshal(p *codec.Packer) {
	i.Amt = p.UnpackLong()
	i.SigIndices.Unmarshal(p)
}

// Verify implements Input.
func (i *TransferInput) Verify() error {
	if i.Amt == 0 {
		return ErrZeroAmount
	}
	return i.SigIndices.Verify()
}

// StakeableLockIn spends a StakeableLockOut.
type StakeableLockIn struct {
	Locktime       uint64 `json:"locktime"`
	TransferableIn Input  `json:"input"`
}

// TypeID implements Input.
func (*StakeableLockIn) TypeID() uint32 {
	return consts.StakeableLockInTypeID
}

// Amount implements Input.
func (i *StakeableLockIn) Amount() uint64 {
	if i.TransferableIn == nil {
		return 0
	}
	return i.TransferableIn.Amount()
}

// Marshal implements codec.Marshaler.
func (i *StakeableLockIn) Marshal(p *codec.Packer) {
	p.PackLong(i.Locktime)
	PackInput(p, i.TransferableIn)
}

// Unmarshal implements codec.Unmarshaler.
func (i *StakeableLockIn) Unmarshal(p *codec.Packer) {
	i.Locktime = p.UnpackLong()
	i.TransferableIn = UnpackInput(p)
}

// Verify implements Input.
func (i *StakeableLockIn) Verify() error {
	switch i.TransferableIn.(type) {
	case nil:
		return ErrNilInput
	case *StakeableLockIn:
		return ErrNestedStakeableLock
	}
	return i.TransferableIn.Verify()
}

// SubnetAuth authorizes a subnet operation with signatures from the subnet
// owners.
type SubnetAuth struct {
	SigIndices
}

// TypeID implements Input.
func (*SubnetAuth) TypeID() uint32 {
	return consts.SubnetAuthTypeID
}

// Amount implements Input.
func (*SubnetAuth) Amount() uint64 {
	return 0
}

// NewInput returns an empty input for [typeID].
func NewInput(typeID uint32) (Input, error) {
	switch typeID {
	case consts.TransferInputTypeID:
		return &TransferInput{}, nil
	case consts.StakeableLockInTypeID:
		return &StakeableLockIn{}, nil
	case consts.SubnetAuthTypeID:
		return &SubnetAuth{}, nil
	default:
		return nil, fmt.Errorf("%w: %d is not an input", codec.ErrUnknownTypeID, typeID)
	}
}

// PackInput writes the type ID of [in] followed by its body.
func PackInput(p *codec.Packer, in Input) {
	if in == nil {
		p.AddErr(ErrNilInput)
		return
	}
	p.PackInt(in.TypeID())
	in.Marshal(p)
}

// UnpackInput reads a type ID and decodes the matching input variant.
func UnpackInput(p *codec.Packer) Input {
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil
	}
	in, err := NewInput(typeID)
	if err != nil {
		p.AddErr(err)
		return nil
	}
	in.Unmarshal(p)
	return in
}
