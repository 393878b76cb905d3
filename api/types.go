// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	stdjson "encoding/json"

	"github.com/ava-labs/avalanchego/utils/json"
)

// Encodings accepted by the node for binary payloads.
const (
	EncodingHex  = "hex"
	EncodingJSON = "json"
)

// EmptyReply is returned by methods with no result.
type EmptyReply struct{}

// SuccessReply is returned by methods that only report success.
type SuccessReply struct {
	Success bool `json:"success"`
}

// Index is a pagination cursor for getUTXOs.
type Index struct {
	Address string `json:"address"`
	UTXO    string `json:"utxo"`
}

type UTXOsArgs struct {
	Addresses   []string    `json:"addresses"`
	SourceChain string      `json:"sourceChain,omitempty"`
	Limit       json.Uint32 `json:"limit,omitempty"`
	StartIndex  Index       `json:"startIndex"`
	Encoding    string      `json:"encoding,omitempty"`
}

type UTXOsReply struct {
	NumFetched json.Uint64 `json:"numFetched"`
	UTXOs      []string    `json:"utxos"`
	EndIndex   Index       `json:"endIndex"`
	Encoding   string      `json:"encoding"`
}

type TxIDArgs struct {
	TxID string `json:"txID"`
}

type GetTxArgs struct {
	TxID     string `json:"txID"`
	Encoding string `json:"encoding,omitempty"`
}

// GetTxReply holds either a hex string or a JSON object depending on the
// requested encoding.
type GetTxReply struct {
	Tx       stdjson.RawMessage `json:"tx"`
	Encoding string             `json:"encoding"`
}

type TxStatusReply struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type IssueTxArgs struct {
	Tx       string `json:"tx"`
	Encoding string `json:"encoding,omitempty"`
}

type IssueTxReply struct {
	TxID string `json:"txID"`
}

type GetBlockArgs struct {
	BlockID  string `json:"blockID"`
	Encoding string `json:"encoding,omitempty"`
}

type GetBlockByHeightArgs struct {
	Height   json.Uint64 `json:"height"`
	Encoding string      `json:"encoding,omitempty"`
}

type GetBlockReply struct {
	Block    stdjson.RawMessage `json:"block"`
	Encoding string             `json:"encoding"`
}

type HeightReply struct {
	Height json.Uint64 `json:"height"`
}

// Owner is the JSON form of an output owner set.
type Owner struct {
	Locktime  json.Uint64 `json:"locktime"`
	Threshold json.Uint32 `json:"threshold"`
	Addresses []string    `json:"addresses"`
}

// HexString decodes a JSON string payload from a GetTxReply or GetBlockReply.
func HexString(raw stdjson.RawMessage) (string, error) {
	var s string
	err := stdjson.Unmarshal(raw, &s)
	return s, err
}
