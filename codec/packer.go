// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// Packer reads and writes the big-endian wire format used by Avalanche
// transactions and UTXOs.
//
// A Packer is a cursor over a byte slice. Once an error is recorded every
// later call is a no-op, so a decoder can unpack a whole structure and check
// [Packer.Err] once at the end.
type Packer struct {
	p *wrappers.Packer
}

// NewReader returns a Packer that reads from [src]. Writes are bounded by
// [limit].
func NewReader(src []byte, limit int) *Packer {
	return &Packer{
		p: &wrappers.Packer{
			Bytes:   src,
			MaxSize: limit,
		},
	}
}

// NewWriter returns a Packer with [initial] bytes of capacity that grows up to
// [limit] bytes.
func NewWriter(initial, limit int) *Packer {
	return &Packer{
		p: &wrappers.Packer{
			Bytes:   make([]byte, 0, initial),
			MaxSize: limit,
		},
	}
}

// Bytes returns the bytes written so far, or the source of a reader.
func (p *Packer) Bytes() []byte {
	return p.p.Bytes
}

func (p *Packer) Offset() int {
	return p.p.Offset
}

// Remaining returns the bytes a reader has not consumed yet.
func (p *Packer) Remaining() []byte {
	if p.p.Offset >= len(p.p.Bytes) {
		return []byte{}
	}
	return p.p.Bytes[p.p.Offset:]
}

// Empty reports whether every byte of a reader has been consumed.
func (p *Packer) Empty() bool {
	return p.p.Offset == len(p.p.Bytes)
}

func (p *Packer) Err() error {
	return p.p.Err
}

func (p *Packer) Errored() bool {
	return p.p.Errored()
}

// AddErr records [err] if no error has been recorded yet.
func (p *Packer) AddErr(err error) {
	p.p.Add(err)
}

// checkSpace records ErrTruncatedInput when fewer than [n] bytes remain.
func (p *Packer) checkSpace(n int) bool {
	if p.p.Errored() {
		return false
	}
	if n < 0 || len(p.p.Bytes)-p.p.Offset < n {
		p.p.Add(fmt.Errorf(
			"%w: need %d bytes at offset %d, have %d: %w",
			ErrTruncatedInput,
			n,
			p.p.Offset,
			len(p.p.Bytes)-p.p.Offset,
			wrappers.ErrInsufficientLength,
		))
		return false
	}
	return true
}

func (p *Packer) PackByte(b byte) {
	p.p.PackByte(b)
}

func (p *Packer) UnpackByte() byte {
	if !p.checkSpace(consts.ByteLen) {
		return 0
	}
	return p.p.UnpackByte()
}

func (p *Packer) PackShort(v uint16) {
	p.p.PackShort(v)
}

func (p *Packer) UnpackShort() uint16 {
	if !p.checkSpace(consts.ShortLen) {
		return 0
	}
	return p.p.UnpackShort()
}

func (p *Packer) PackInt(v uint32) {
	p.p.PackInt(v)
}

func (p *Packer) UnpackInt() uint32 {
	if !p.checkSpace(consts.IntLen) {
		return 0
	}
	return p.p.UnpackInt()
}

func (p *Packer) PackLong(v uint64) {
	p.p.PackLong(v)
}

func (p *Packer) UnpackLong() uint64 {
	if !p.checkSpace(consts.LongLen) {
		return 0
	}
	return p.p.UnpackLong()
}

// PackBigInt writes [v] as an unsigned 8 byte integer. Negative values and
// values wider than 64 bits are rejected instead of truncated.
func (p *Packer) PackBigInt(v *big.Int) {
	if p.p.Errored() {
		return
	}
	u, err := Uint64FromBig(v)
	if err != nil {
		p.p.Add(err)
		return
	}
	p.p.PackLong(u)
}

// Uint64FromBig returns [v] if it fits in an unsigned 8 byte integer.
func Uint64FromBig(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: big int", ErrNilValue)
	}
	if v.Sign() < 0 || v.BitLen() > 64 {
		return 0, fmt.Errorf("%w: %s does not fit in %d bytes", ErrEncodingOverflow, v, consts.LongLen)
	}
	return v.Uint64(), nil
}

func (p *Packer) UnpackBigInt() *big.Int {
	return new(big.Int).SetUint64(p.UnpackLong())
}

// PackString writes [s] with a 2 byte length prefix.
func (p *Packer) PackString(s string) {
	if len(s) > consts.MaxStringLen {
		p.p.Add(fmt.Errorf("%w: string of %d bytes", ErrInvalidSize, len(s)))
		return
	}
	p.p.PackStr(s)
}

func (p *Packer) UnpackString() string {
	size := int(p.UnpackShort())
	if !p.checkSpace(size) {
		return ""
	}
	return string(p.p.UnpackFixedBytes(size))
}

// PackFixedBytes writes [b] with no length prefix.
func (p *Packer) PackFixedBytes(b []byte) {
	p.p.PackFixedBytes(b)
}

// UnpackFixedBytes reads exactly [size] bytes. The result does not alias the
// source buffer.
func (p *Packer) UnpackFixedBytes(size int) []byte {
	if !p.checkSpace(size) {
		return nil
	}
	return copyBytes(p.p.UnpackFixedBytes(size))
}

// PackBytes writes [b] with a 4 byte length prefix.
func (p *Packer) PackBytes(b []byte) {
	p.p.PackBytes(b)
}

func (p *Packer) UnpackBytes() []byte {
	size := p.UnpackInt()
	if p.p.Errored() {
		return nil
	}
	if uint64(size) > uint64(len(p.p.Bytes)-p.p.Offset) {
		p.checkSpace(int(min(uint64(size), uint64(consts.MaxInt))))
		return nil
	}
	return p.UnpackFixedBytes(int(size))
}

func (p *Packer) PackID(id ID) {
	p.p.PackFixedBytes(id[:])
}

func (p *Packer) UnpackID(dest *ID) {
	if !p.checkSpace(consts.IDLen) {
		return
	}
	copy(dest[:], p.p.UnpackFixedBytes(consts.IDLen))
}

func (p *Packer) PackShortID(id ShortID) {
	p.p.PackFixedBytes(id[:])
}

func (p *Packer) UnpackShortID(dest *ShortID) {
	if !p.checkSpace(consts.ShortIDLen) {
		return
	}
	copy(dest[:], p.p.UnpackFixedBytes(consts.ShortIDLen))
}

func (p *Packer) PackNodeID(id NodeID) {
	p.p.PackFixedBytes(id[:])
}

func (p *Packer) UnpackNodeID(dest *NodeID) {
	if !p.checkSpace(consts.NodeIDLen) {
		return
	}
	copy(dest[:], p.p.UnpackFixedBytes(consts.NodeIDLen))
}

func (p *Packer) PackSignature(sig Signature) {
	p.p.PackFixedBytes(sig[:])
}

func (p *Packer) UnpackSignature(dest *Signature) {
	if !p.checkSpace(consts.SignatureLen) {
		return
	}
	copy(dest[:], p.p.UnpackFixedBytes(consts.SignatureLen))
}

// PackCount writes the 4 byte element count that precedes every array.
func (p *Packer) PackCount(n int) {
	if n < 0 || uint64(n) > uint64(consts.MaxUint32) {
		p.p.Add(fmt.Errorf("%w: %d elements", ErrTooManyItems, n))
		return
	}
	p.p.PackInt(uint32(n))
}

// UnpackCount reads an array count and checks that [minElemSize] bytes per
// element are still available. A corrupt count therefore fails before
// anything is allocated.
func (p *Packer) UnpackCount(minElemSize int) int {
	count := p.UnpackInt()
	if p.p.Errored() {
		return 0
	}
	if p.p.MaxSize > 0 && uint64(count) > uint64(p.p.MaxSize) {
		p.p.Add(fmt.Errorf("%w: %d exceeds limit %d", ErrTooManyItems, count, p.p.MaxSize))
		return 0
	}
	need := uint64(count) * uint64(minElemSize)
	if need > uint64(len(p.p.Bytes)-p.p.Offset) {
		p.checkSpace(int(min(need, uint64(consts.MaxInt))))
		return 0
	}
	return int(count)
}

// PackInts writes a counted array of 4 byte integers, such as signature
// indices.
func (p *Packer) PackInts(vs []uint32) {
	p.PackCount(len(vs))
	for _, v := range vs {
		p.p.PackInt(v)
	}
}

func (p *Packer) UnpackInts() []uint32 {
	count := p.UnpackCount(consts.IntLen)
	if p.p.Errored() {
		return nil
	}
	vs := make([]uint32, count)
	for i := range vs {
		vs[i] = p.p.UnpackInt()
	}
	return vs
}

// PackShortIDs writes a counted array of 20 byte addresses.
func (p *Packer) PackShortIDs(ids []ShortID) {
	p.PackCount(len(ids))
	for _, id := range ids {
		p.PackShortID(id)
	}
}

func (p *Packer) UnpackShortIDs() []ShortID {
	count := p.UnpackCount(consts.ShortIDLen)
	if p.p.Errored() {
		return nil
	}
	ids := make([]ShortID, count)
	for i := range ids {
		p.UnpackShortID(&ids[i])
	}
	return ids
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
