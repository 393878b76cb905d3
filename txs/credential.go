// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

const minCredentialLen = consts.IntLen + consts.IntLen

// Credential holds the secp256k1 signatures for one input, in the order of
// that input's signature indices.
type Credential struct {
	Sigs []codec.Signature `json:"signatures"`
}

func (*Credential) TypeID() uint32 {
	return consts.CredentialTypeID
}

// Marshal implements codec.Marshaler.
func (c *Credential) Marshal(p *codec.Packer) {
	p.PackCount(len(c.Sigs))
	for _, sig := range c.Sigs {
		p.PackSignature(sig)
	}
}

// Unmarshal implements codec.Unmarshaler.
func (c *Credential) Unmarshal(p *codec.Packer) {
	count := p.UnpackCount(consts.SignatureLen)
	if p.Errored() {
		return
	}
	c.Sigs = make([]codec.Signature, count)
	for i := range c.Sigs {
		p.UnpackSignature(&c.Sigs[i])
	}
}

// PackCredential writes the credential type ID followed by [c].
func PackCredential(p *codec.Packer, c *Credential) {
	if c == nil {
		p.AddErr(ErrNilCredential)
		return
	}
	p.PackInt(c.TypeID())
	c.Marshal(p)
}

func UnpackCredential(p *codec.Packer) *Credential {
	typeID := p.UnpackInt()
	if p.Errored() {
		return nil
	}
	if typeID != consts.CredentialTypeID {
		p.AddErr(fmt.Errorf("%w: %d is not a credential", codec.ErrUnknownTypeID, typeID))
		return nil
	}
	c := &Credential{}
	c.Unmarshal(p)
	return c
}
