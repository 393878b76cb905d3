// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/ava-labs/avalanche-sdk-go/codec"

// Validator is a staking period for a node.
type Validator struct {
	NodeID codec.NodeID `json:"nodeID"`
	Start  uint64       `json:"start"`
	End    uint64       `json:"end"`
	Wght   uint64       `json:"weight"`
}

// Marshal implements codec.Marshaler.
func (v *Validator) Marshal(p *codec.Packer) {
	p.PackNodeID(v.NodeID)
	p.PackLong(v.Start)
	p.PackLong(v.End)
	p.PackLong(v.Wght)
}

// Unmarshal implements codec.Unmarshaler.
func (v *Validator) Unmarshal(p *codec.Packer) {
	p.UnpackNodeID(&v.NodeID)
	v.Start = p.UnpackLong()
	v.End = p.UnpackLong()
	v.Wght = p.UnpackLong()
}

func (v *Validator) Verify() error {
	switch {
	case v.Wght == 0:
		return ErrZeroWeight
	case v.End <= v.Start:
		return ErrInvalidValidatorRange
	default:
		return nil
	}
}
