// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/ava-labs/avalanche-sdk-go/codec"

// UTXO is an unspent output as returned by a node's getUTXOs. It is
// identified by its [UTXOID]. Nodes write codec version 0; other versions
// are carried through unchanged.
type UTXO struct {
	CodecVersion uint16 `json:"codecVersion"`

	UTXOID `json:"utxoID"`

	Asset codec.ID `json:"assetID"`
	Out   Output   `json:"output"`
}

// Marshal implements codec.Marshaler.
func (u *UTXO) Marshal(p *codec.Packer) {
	p.PackShort(u.CodecVersion)
	u.UTXOID.Marshal(p)
	p.PackID(u.Asset)
	PackOutput(p, u.Out)
}

// Unmarshal implements codec.Unmarshaler.
func (u *UTXO) Unmarshal(p *codec.Packer) {
	u.CodecVersion = p.UnpackShort()
	u.UTXOID.Unmarshal(p)
	p.UnpackID(&u.Asset)
	u.Out = UnpackOutput(p)
}

// ParseUTXO decodes a UTXO that must span all of [b].
func ParseUTXO(b []byte) (*UTXO, error) {
	utxo := &UTXO{}
	if err := codec.UnmarshalExact(b, utxo); err != nil {
		return nil, err
	}
	return utxo, nil
}
