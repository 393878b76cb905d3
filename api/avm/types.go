// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/avalanche-sdk-go/api"
)

type UTXOID struct {
	TxID        string      `json:"txID"`
	OutputIndex json.Uint32 `json:"outputIndex"`
}

type GetBalanceArgs struct {
	Address        string `json:"address"`
	AssetID        string `json:"assetID"`
	IncludePartial bool   `json:"includePartial"`
}

type GetBalanceReply struct {
	Balance api.BigInt `json:"balance"`
	UTXOIDs []UTXOID   `json:"utxoIDs"`
}

type GetAllBalancesArgs struct {
	Address        string `json:"address"`
	IncludePartial bool   `json:"includePartial"`
}

type Balance struct {
	AssetID string     `json:"asset"`
	Balance api.BigInt `json:"balance"`
}

type GetAllBalancesReply struct {
	Balances []Balance `json:"balances"`
}

type GetAssetDescriptionArgs struct {
	AssetID string `json:"assetID"`
}

type GetAssetDescriptionReply struct {
	AssetID      string     `json:"assetID"`
	Name         string     `json:"name"`
	Symbol       string     `json:"symbol"`
	Denomination json.Uint8 `json:"denomination"`
}

type GetTxFeeReply struct {
	TxFee            api.BigInt `json:"txFee"`
	CreateAssetTxFee api.BigInt `json:"createAssetTxFee"`
}

// BuildGenesisArgs carries a JSON genesis description for the AVM.
type BuildGenesisArgs struct {
	NetworkID   json.Uint32                `json:"networkID"`
	GenesisData map[string]AssetDefinition `json:"genesisData"`
	Encoding    string                     `json:"encoding"`
}

type AssetDefinition struct {
	Name         string                   `json:"name"`
	Symbol       string                   `json:"symbol"`
	Denomination json.Uint8               `json:"denomination"`
	InitialState map[string][]interface{} `json:"initialState"`
	Memo         string                   `json:"memo"`
}

type BuildGenesisReply struct {
	Bytes    string `json:"bytes"`
	Encoding string `json:"encoding"`
}
