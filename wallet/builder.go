// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/formatting"
	"github.com/ava-labs/avalanche-sdk-go/txs"
)

// UTXOParams describes a transfer UTXO in the text forms a node returns.
type UTXOParams struct {
	// TxID and AssetID are CB58 encoded.
	TxID        string
	OutputIndex uint32
	AssetID     string
	// Amount is a base 10 integer.
	Amount    string
	Locktime  uint64
	Threshold uint32
	// Addresses are bech32, with or without a chain prefix.
	Addresses []string
	// StakeableLocktime wraps the output in a StakeableLockOut when non-zero.
	StakeableLocktime uint64
}

// BuildUTXO returns the UTXO described by [params]. Owner addresses are
// sorted. No ownership rule is verified.
func BuildUTXO(params *UTXOParams) (*txs.UTXO, error) {
	txID, err := codec.IDFromString(params.TxID)
	if err != nil {
		return nil, fmt.Errorf("invalid tx id: %w", err)
	}
	assetID, err := codec.IDFromString(params.AssetID)
	if err != nil {
		return nil, fmt.Errorf("invalid asset id: %w", err)
	}
	amount, err := api.ParseBigInt(params.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	amt, err := codec.Uint64FromBig(amount.Big())
	if err != nil {
		return nil, err
	}

	addrs, err := parseAddresses(params.Addresses)
	if err != nil {
		return nil, err
	}
	owners := txs.OutputOwners{
		Locktime:  params.Locktime,
		Threshold: params.Threshold,
		Addrs:     addrs,
	}
	owners.Sort()

	var out txs.Output = &txs.TransferOutput{
		Amt:          amt,
		OutputOwners: owners,
	}
	if params.StakeableLocktime != 0 {
		out = &txs.StakeableLockOut{
			Locktime:        params.StakeableLocktime,
			TransferableOut: out,
		}
	}
	return &txs.UTXO{
		CodecVersion: consts.CodecVersion,
		UTXOID: txs.UTXOID{
			TxID:        txID,
			OutputIndex: params.OutputIndex,
		},
		Asset: assetID,
		Out:   out,
	}, nil
}

// BuildUTXOBytes returns the checksummed hex encoding of the UTXO described
// by [params], as found in a getUTXOs reply.
func BuildUTXOBytes(params *UTXOParams) (string, error) {
	utxo, err := BuildUTXO(params)
	if err != nil {
		return "", err
	}
	b, err := codec.Marshal(utxo)
	if err != nil {
		return "", err
	}
	return formatting.EncodeHex(b), nil
}

// parseAddresses decodes bech32 addresses with or without a chain alias.
func parseAddresses(addrs []string) ([]codec.ShortID, error) {
	ids := make([]codec.ShortID, len(addrs))
	for i, s := range addrs {
		_, payload, err := formatting.ParseBech32(formatting.StripChainAlias(s))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, err)
		}
		if len(payload) != consts.ShortIDLen {
			return nil, fmt.Errorf("%w %q: payload is %d bytes", ErrInvalidAddress, s, len(payload))
		}
		copy(ids[i][:], payload)
	}
	return ids, nil
}
