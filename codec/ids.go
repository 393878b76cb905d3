// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/formatting"
)

const NodeIDPrefix = "NodeID-"

// ID is a 32 byte identifier such as a transaction, asset or chain ID.
type ID [consts.IDLen]byte

// ShortID is a 20 byte identifier. Addresses are ShortIDs.
type ShortID [consts.ShortIDLen]byte

// NodeID identifies a validator.
type NodeID [consts.NodeIDLen]byte

// Signature is a 65 byte recoverable secp256k1 signature.
type Signature [consts.SignatureLen]byte

var (
	EmptyID      = ID{}
	EmptyShortID = ShortID{}
	EmptyNodeID  = NodeID{}
)

// String returns the CB58 form of id.
func (id ID) String() string {
	return formatting.NodeCB58Encode(id[:])
}

func (id ID) Hex() string {
	return ToHex(id[:])
}

func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := IDFromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// IDFromString parses a CB58 encoded ID.
func IDFromString(s string) (ID, error) {
	var id ID
	err := fromCB58(s, id[:])
	return id, err
}

// IDFromHex parses a 0x prefixed hex encoded ID.
func IDFromHex(s string) (ID, error) {
	var id ID
	err := fromHex(s, id[:])
	return id, err
}

func (id ShortID) String() string {
	return formatting.NodeCB58Encode(id[:])
}

func (id ShortID) Hex() string {
	return ToHex(id[:])
}

func (id ShortID) Compare(other ShortID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ShortID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ShortID) UnmarshalText(text []byte) error {
	parsed, err := ShortIDFromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func ShortIDFromString(s string) (ShortID, error) {
	var id ShortID
	err := fromCB58(s, id[:])
	return id, err
}

func ShortIDFromHex(s string) (ShortID, error) {
	var id ShortID
	err := fromHex(s, id[:])
	return id, err
}

// String returns the NodeID- prefixed CB58 form of id.
func (id NodeID) String() string {
	return NodeIDPrefix + formatting.NodeCB58Encode(id[:])
}

func (id NodeID) Hex() string {
	return ToHex(id[:])
}

func (id NodeID) Compare(other NodeID) int {
	return bytes.Compare(id[:], other[:])
}

func (id NodeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := NodeIDFromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NodeIDFromString parses a NodeID. The NodeID- prefix is required.
func NodeIDFromString(s string) (NodeID, error) {
	var id NodeID
	raw, ok := strings.CutPrefix(s, NodeIDPrefix)
	if !ok {
		return id, fmt.Errorf("%w: missing %q prefix", ErrInvalidSize, NodeIDPrefix)
	}
	err := fromCB58(raw, id[:])
	return id, err
}

func NodeIDFromHex(s string) (NodeID, error) {
	var id NodeID
	err := fromHex(s, id[:])
	return id, err
}

func (s Signature) String() string {
	return ToHex(s[:])
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	return fromHex(string(text), s[:])
}

func fromCB58(s string, dest []byte) error {
	b, err := formatting.NodeCB58Decode(s)
	if err != nil {
		return err
	}
	if len(b) != len(dest) {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSize, len(dest), len(b))
	}
	copy(dest, b)
	return nil
}

func fromHex(s string, dest []byte) error {
	b, err := LoadHex(s, len(dest))
	if err != nil {
		return err
	}
	copy(dest, b)
	return nil
}
