// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

var (
	_ UnsignedTx = (*BaseTx)(nil)
	_ UnsignedTx = (*AddValidatorTx)(nil)
	_ UnsignedTx = (*CreateSubnetTx)(nil)
	_ UnsignedTx = (*ImportTx)(nil)
	_ UnsignedTx = (*ExportTx)(nil)
	_ UnsignedTx = (*RemoveSubnetValidatorTx)(nil)
)

// UnsignedTx is the tagged union of Platform chain transaction bodies.
type UnsignedTx interface {
	codec.Marshaler
	codec.Unmarshaler

	TypeID() uint32
	// Base returns the fields every transaction shares.
	Base() *BaseTx
	Verify() error
}

// NewUnsignedTx returns an empty transaction for [typeID].
func NewUnsignedTx(typeID uint32) (UnsignedTx, error) {
	switch typeID {
	case consts.BaseTxTypeID:
		return &BaseTx{}, nil
	case consts.AddValidatorTxTypeID:
		return &AddValidatorTx{}, nil
	case consts.CreateSubnetTxTypeID:
		return &CreateSubnetTx{}, nil
	case consts.ImportTxTypeID:
		return &ImportTx{}, nil
	case consts.ExportTxTypeID:
		return &ExportTx{}, nil
	case consts.RemoveSubnetValidatorTxID:
		return &RemoveSubnetValidatorTx{}, nil
	default:
		return nil, fmt.Errorf("%w: %d is not a transaction", codec.ErrUnknownTypeID, typeID)
	}
}

// PackUnsignedTx writes the type ID of [tx] followed by its body.
func PackUnsignedTx(p *codec.Packer, tx UnsignedTx) {
	if tx == nil {
		p.AddErr(ErrNilTx)
		return
	}
	p.PackInt(tx.TypeID())
	tx.Marshal(p)
}

func UnpackUnsignedTx(p *codec.Packer) UnsignedTx {
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil
	}
	tx, err := NewUnsignedTx(typeID)
	if err != nil {
		p.AddErr(err)
		return nil
	}
	tx.Unmarshal(p)
	return tx
}

// MarshalUnsignedTx returns the tagged encoding of [tx] without a codec
// version.
func MarshalUnsignedTx(tx UnsignedTx) ([]byte, error) {
	p := codec.NewWriter(defaultTxSize, consts.MaxInt)
	PackUnsignedTx(p, tx)
	return p.Bytes(), p.Err()
}

// ParseUnsignedTx decodes a tagged transaction that must span all of [b].
func ParseUnsignedTx(b []byte) (UnsignedTx, error) {
	p := codec.NewReader(b, consts.MaxInt)
	tx := UnpackUnsignedTx(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: %d bytes", codec.ErrTrailingBytes, len(p.Remaining()))
	}
	return tx, nil
}
