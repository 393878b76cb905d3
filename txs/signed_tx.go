// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

// SignedTx is a transaction ready to be issued: a codec version, the tagged
// unsigned transaction and one credential per input.
type SignedTx struct {
	Unsigned UnsignedTx    `json:"unsignedTx"`
	Creds    []*Credential `json:"credentials"`
}

// Marshal implements codec.Marshaler.
func (tx *SignedTx) Marshal(p *codec.Packer) {
	p.PackShort(consts.CodecVersion)
	PackUnsignedTx(p, tx.Unsigned)
	p.PackCount(len(tx.Creds))
	for _, cred := range tx.Creds {
		PackCredential(p, cred)
	}
}

// Unmarshal implements codec.Unmarshaler.
func (tx *SignedTx) Unmarshal(p *codec.Packer) {
	version := p.UnpackShort()
	if !p.Errored() && version != consts.CodecVersion {
		p.AddErr(fmt.Errorf("%w: %d", ErrUnsupportedCodec, version))
		return
	}
	tx.Unsigned = UnpackUnsignedTx(p)
	count := p.UnpackCount(minCredentialLen)
	tx.Creds = make([]*Credential, 0, count)
	for i := 0; i < count && !p.Errored(); i++ {
		tx.Creds = append(tx.Creds, UnpackCredential(p))
	}
}

// Bytes returns the signed encoding of tx.
func (tx *SignedTx) Bytes() ([]byte, error) {
	return codec.Marshal(tx)
}

// UnsignedBytes returns the bytes covered by the credentials' signatures.
func (tx *SignedTx) UnsignedBytes() ([]byte, error) {
	p := codec.NewWriter(defaultTxSize, consts.MaxInt)
	p.PackShort(consts.CodecVersion)
	PackUnsignedTx(p, tx.Unsigned)
	return p.Bytes(), p.Err()
}

// ID is the SHA-256 hash of the signed encoding, as assigned by the node.
func (tx *SignedTx) ID() (codec.ID, error) {
	b, err := tx.Bytes()
	if err != nil {
		return codec.EmptyID, err
	}
	return codec.ID(hashing.ComputeHash256Array(b)), nil
}

// Verify checks the transaction and that every input has a credential.
func (tx *SignedTx) Verify() error {
	if tx.Unsigned == nil {
		return ErrNilTx
	}
	if err := tx.Unsigned.Verify(); err != nil {
		return err
	}
	want := len(tx.Unsigned.Base().Ins)
	switch utx := tx.Unsigned.(type) {
	case *ImportTx:
		want += len(utx.ImportedInputs)
	case *RemoveSubnetValidatorTx:
		want++
	}
	if len(tx.Creds) != want {
		return fmt.Errorf("%w: %d credentials for %d inputs", ErrWrongCredentialCount, len(tx.Creds), want)
	}
	return nil
}

// ParseSignedTx decodes a signed transaction that must span all of [b].
func ParseSignedTx(b []byte) (*SignedTx, error) {
	tx := &SignedTx{}
	if err := codec.UnmarshalExact(b, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
