// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

const (
	minTransferableOutputLen = consts.IDLen + consts.IntLen
	minTransferableInputLen  = consts.IDLen + consts.IntLen + consts.IDLen + consts.IntLen
)

// UTXOID identifies a UTXO by the transaction that produced it and its index
// in that transaction's outputs.
type UTXOID struct {
	TxID        codec.ID `json:"txID"`
	OutputIndex uint32   `json:"outputIndex"`
}

func (u UTXOID) String() string {
	return fmt.Sprintf("%s:%d", u.TxID, u.OutputIndex)
}

// Compare orders UTXOIDs by transaction ID, then output index.
func (u UTXOID) Compare(other UTXOID) int {
	if c := u.TxID.Compare(other.TxID); c != 0 {
		return c
	}
	switch {
	case u.OutputIndex < other.OutputIndex:
		return -1
	case u.OutputIndex > other.OutputIndex:
		return 1
	default:
		return 0
	}
}

// Marshal implements codec.Marshaler.
func (u *UTXOID) Marshal(p *codec.Packer) {
	p.PackID(u.TxID)
	p.PackInt(u.OutputIndex)
}

// Unmarshal implements codec.Unmarshaler.
func (u *UTXOID) Unmarshal(p *codec.Packer) {
	p.UnpackID(&u.TxID)
	u.OutputIndex = p.UnpackInt()
}

// TransferableOutput is an output of a specific asset.
type TransferableOutput struct {
	Asset codec.ID `json:"assetID"`
	Out   Output   `json:"output"`
}

// Marshal implements codec.Marshaler.
func (t *TransferableOutput) Marshal(p *codec.Packer) {
	p.PackID(t.Asset)
	PackOutput(p, t.Out)
}

// Unmarshal implements codec.Unmarshaler.
func (t *TransferableOutput) Unmarshal(p *codec.Packer) {
	p.UnpackID(&t.Asset)
	t.Out = UnpackOutput(p)
}

func (t *TransferableOutput) Verify() error {
	if t == nil || t.Out == nil {
		return ErrNilOutput
	}
	return t.Out.Verify()
}

// TransferableInput spends the UTXO named by [UTXOID].
type TransferableInput struct {
	UTXOID `json:"utxoID"`

	Asset codec.ID `json:"assetID"`
	In    Input    `json:"input"`
}

// Marshal implements codec.Marshaler.
func (t *TransferableInput) Marshal(p *codec.Packer) {
	t.UTXOID.Marshal(p)
	p.PackID(t.Asset)
	PackInput(p, t.In)
}

// Unmarshal implements codec.Unmarshaler.
func (t *TransferableInput) Unmarshal(p *codec.Packer) {
	t.UTXOID.Unmarshal(p)
	p.UnpackID(&t.Asset)
	t.In = UnpackInput(p)
}

func (t *TransferableInput) Verify() error {
	if t == nil || t.In == nil {
		return ErrNilInput
	}
	return t.In.Verify()
}

func packTransferableOutputs(p *codec.Packer, outs []*TransferableOutput) {
	p.PackCount(len(outs))
	for _, out := range outs {
		if out == nil {
			p.AddErr(ErrNilOutput)
			return
		}
		out.Marshal(p)
	}
}

func unpackTransferableOutputs(p *codec.Packer) []*TransferableOutput {
	count := p.UnpackCount(minTransferableOutputLen)
	outs := make([]*TransferableOutput, 0, count)
	for i := 0; i < count && !p.Errored(); i++ {
		out := &TransferableOutput{}
		out.Unmarshal(p)
		outs = append(outs, out)
	}
	return outs
}

func packTransferableInputs(p *codec.Packer, ins []*TransferableInput) {
	p.PackCount(len(ins))
	for _, in := range ins {
		if in == nil {
			p.AddErr(ErrNilInput)
			return
		}
		in.Marshal(p)
	}
}

func unpackTransferableInputs(p *codec.Packer) []*TransferableInput {
	count := p.UnpackCount(minTransferableInputLen)
	ins := make([]*TransferableInput, 0, count)
	for i := 0; i < count && !p.Errored(); i++ {
		in := &TransferableInput{}
		in.Unmarshal(p)
		ins = append(ins, in)
	}
	return ins
}

func verifyTransferables(outs []*TransferableOutput, ins []*TransferableInput) error {
	for i, out := range outs {
		if err := out.Verify(); err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
	}
	for i, in := range ins {
		if err := in.Verify(); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
	}
	return nil
}

// SortTransferableInputs orders [ins] by the UTXO they spend.
func SortTransferableInputs(ins []*TransferableInput) {
	slices.SortFunc(ins, func(a, b *TransferableInput) int {
		return a.UTXOID.Compare(b.UTXOID)
	})
}

// SortTransferableOutputs orders [outs] by their encoding.
func SortTransferableOutputs(outs []*TransferableOutput) error {
	encoded := make(map[*TransferableOutput][]byte, len(outs))
	for _, out := range outs {
		if out == nil {
			return ErrNilOutput
		}
		b, err := codec.Marshal(out)
		if err != nil {
			return err
		}
		encoded[out] = b
	}
	slices.SortFunc(outs, func(a, b *TransferableOutput) int {
		return bytes.Compare(encoded[a], encoded[b])
	})
	return nil
}
