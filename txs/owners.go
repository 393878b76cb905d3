// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"golang.org/x/exp/slices"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

var _ Output = (*OutputOwners)(nil)

// OutputOwners is the set of addresses that may spend an output once
// [Locktime] has passed. [Threshold] signatures are required.
type OutputOwners struct {
	Locktime  uint64          `json:"locktime"`
	Threshold uint32          `json:"threshold"`
	Addrs     []codec.ShortID `json:"addresses"`
}

// TypeID implements Output.
func (*OutputOwners) TypeID() uint32 {
	return consts.OutputOwnersTypeID
}

// Amount implements Output. Owners carry no value.
func (*OutputOwners) Amount() uint64 {
	return 0
}

// Marshal implements codec.Marshaler.
func (o *OutputOwners) Marshal(p *codec.Packer) {
	p.PackLong(o.Locktime)
	p.PackInt(o.Threshold)
	p.PackShortIDs(o.Addrs)
}

// Unmarshal implements codec.Unmarshaler.
func (o *OutputOwners) Unmarshal(p *codec.Packer) {
	o.Locktime = p.UnpackLong()
	o.Threshold = p.UnpackInt()
	o.Addrs = p.UnpackShortIDs()
}

// Verify checks the ownership rules the node enforces. The codec never calls
// it.
func (o *OutputOwners) Verify() error {
	return verifyOwnership(o.Threshold, o.Addrs)
}

// Sort orders the addresses so that the owners pass [Verify].
func (o *OutputOwners) Sort() {
	sortShortIDs(o.Addrs)
}

// PChainOwner is the threshold and address set that controls an L1 validator
// balance or deactivation. Unlike OutputOwners it has no locktime.
type PChainOwner struct {
	Threshold uint32          `json:"threshold"`
	Addrs     []codec.ShortID `json:"addresses"`
}

// Marshal implements codec.Marshaler.
func (o *PChainOwner) Marshal(p *codec.Packer) {
	p.PackInt(o.Threshold)
	p.PackShortIDs(o.Addrs)
}

// Unmarshal implements codec.Unmarshaler.
func (o *PChainOwner) Unmarshal(p *codec.Packer) {
	o.Threshold = p.UnpackInt()
	o.Addrs = p.UnpackShortIDs()
}

func (o *PChainOwner) Verify() error {
	return verifyOwnership(o.Threshold, o.Addrs)
}

func verifyOwnership(threshold uint32, addrs []codec.ShortID) error {
	switch {
	case uint64(threshold) > uint64(len(addrs)):
		return ErrThresholdTooHigh
	case threshold == 0 && len(addrs) > 0:
		return ErrZeroThreshold
	case !isSortedAndUniqueShortIDs(addrs):
		return ErrAddressesNotSorted
	default:
		return nil
	}
}

func sortShortIDs(addrs []codec.ShortID) {
	slices.SortFunc(addrs, func(a, b codec.ShortID) int {
		return a.Compare(b)
	})
}

func isSortedAndUniqueShortIDs(addrs []codec.ShortID) bool {
	for i := 1; i < len(addrs); i++ {
		if addrs[i-1].Compare(addrs[i]) >= 0 {
			return false
		}
	}
	return true
}

func isSortedAndUniqueInts(vs []uint32) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i-1] >= vs[i] {
			return false
		}
	}
	return true
}
