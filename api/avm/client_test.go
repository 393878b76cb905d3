// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"context"
	stdjson "encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/api/apitest"
)

type AVMService struct {
	utxoArgs    api.UTXOsArgs
	genesisArgs BuildGenesisArgs
}

func (*AVMService) GetHeight(_ *http.Request, _ *struct{}, reply *api.HeightReply) error {
	reply.Height = 77
	return nil
}

func (*AVMService) GetBalance(_ *http.Request, args *GetBalanceArgs, reply *stdjson.RawMessage) error {
	if args.AssetID != "AVAX" {
		*reply = stdjson.RawMessage(`{"balance":"0","utxoIDs":[]}`)
		return nil
	}
	*reply = stdjson.RawMessage(`{"balance":299999999999900,"utxoIDs":[{"txID":"tx","outputIndex":1}]}`)
	return nil
}

func (*AVMService) GetAllBalances(_ *http.Request, _ *GetAllBalancesArgs, reply *stdjson.RawMessage) error {
	*reply = stdjson.RawMessage(`{"balances":[{"asset":"AVAX","balance":"102"},{"asset":"2sdnziCz37Jov3QSNMXcFRGFJ1tgauaj6L7qfk7yUcRPfQMC79","balance":"10000"}]}`)
	return nil
}

func (*AVMService) GetAssetDescription(_ *http.Request, _ *GetAssetDescriptionArgs, reply *stdjson.RawMessage) error {
	*reply = stdjson.RawMessage(`{"assetID":"FvwEAhmxKfeiG8SnEvq42hc6whRyY3EFYAvebMqDNDGCgxN5Z","name":"Avalanche","symbol":"AVAX","denomination":"9"}`)
	return nil
}

func (s *AVMService) GetUTXOs(_ *http.Request, args *api.UTXOsArgs, reply *api.UTXOsReply) error {
	s.utxoArgs = *args
	reply.NumFetched = 1
	reply.UTXOs = []string{"0x00"}
	reply.EndIndex = api.Index{Address: "X-avax1abc", UTXO: "utxo"}
	reply.Encoding = api.EncodingHex
	return nil
}

func (*AVMService) GetTxStatus(_ *http.Request, _ *api.TxIDArgs, reply *api.TxStatusReply) error {
	reply.Status = api.Processing
	return nil
}

func (*AVMService) GetTxFee(_ *http.Request, _ *struct{}, reply *stdjson.RawMessage) error {
	*reply = stdjson.RawMessage(`{"txFee":"1000000","createAssetTxFee":10000000}`)
	return nil
}

func (*AVMService) GetTx(_ *http.Request, args *api.GetTxArgs, reply *stdjson.RawMessage) error {
	if args.Encoding == api.EncodingJSON {
		*reply = stdjson.RawMessage(`{"tx":{"unsignedTx":{"networkID":1}},"encoding":"json"}`)
		return nil
	}
	*reply = stdjson.RawMessage(`{"tx":"0x0000","encoding":"hex"}`)
	return nil
}

func (s *AVMService) BuildGenesis(_ *http.Request, args *BuildGenesisArgs, reply *BuildGenesisReply) error {
	s.genesisArgs = *args
	reply.Bytes = "0x1234"
	reply.Encoding = args.Encoding
	return nil
}

func newTestClient(t *testing.T) (*Client, *AVMService) {
	service := &AVMService{}
	uri := apitest.NewServer(t, apitest.Service{
		Path:    Endpoint,
		Name:    Name,
		Service: service,
	})
	return NewClient(uri), service
}

func TestBalances(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	client, _ := newTestClient(t)

	height, err := client.GetHeight(ctx)
	require.NoError(err)
	require.Equal(uint64(77), height)

	balance, err := client.GetBalance(ctx, "X-avax1abc", "AVAX", false)
	require.NoError(err)
	require.Equal("299999999999900", balance.Balance.String())
	require.Equal([]UTXOID{{TxID: "tx", OutputIndex: 1}}, balance.UTXOIDs)

	balance, err = client.GetBalance(ctx, "X-avax1abc", "other", false)
	require.NoError(err)
	require.Equal("0", balance.Balance.String())
	require.Empty(balance.UTXOIDs)

	balances, err := client.GetAllBalances(ctx, "X-avax1abc", false)
	require.NoError(err)
	require.Len(balances, 2)
	require.Equal("AVAX", balances[0].AssetID)
	require.Equal("10000", balances[1].Balance.String())
}

func TestGetAssetDescription(t *testing.T) {
	require := require.New(t)
	client, _ := newTestClient(t)

	desc, err := client.GetAssetDescription(context.Background(), "AVAX")
	require.NoError(err)
	require.Equal("Avalanche", desc.Name)
	require.Equal("AVAX", desc.Symbol)
	require.Equal(uint8(9), uint8(desc.Denomination))
}

func TestGetUTXOs(t *testing.T) {
	require := require.New(t)
	client, service := newTestClient(t)

	reply, err := client.GetUTXOs(context.Background(), &api.UTXOsArgs{
		Addresses:   []string{"X-avax1abc"},
		SourceChain: "P",
		Limit:       10,
		Encoding:    api.EncodingHex,
	})
	require.NoError(err)
	require.Equal([]string{"X-avax1abc"}, service.utxoArgs.Addresses)
	require.Equal("P", service.utxoArgs.SourceChain)
	require.Equal(uint32(10), uint32(service.utxoArgs.Limit))

	require.Equal(uint64(1), uint64(reply.NumFetched))
	require.Equal([]string{"0x00"}, reply.UTXOs)
	require.Equal("utxo", reply.EndIndex.UTXO)
}

func TestTxs(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	client, _ := newTestClient(t)

	status, err := client.GetTxStatus(ctx, "tx")
	require.NoError(err)
	require.Equal(api.Processing, status)

	fees, err := client.GetTxFee(ctx)
	require.NoError(err)
	require.Equal("1000000", fees.TxFee.String())
	require.Equal("10000000", fees.CreateAssetTxFee.String())

	tx, err := client.GetTx(ctx, "tx", api.EncodingHex)
	require.NoError(err)
	hexTx, err := api.HexString(tx.Tx)
	require.NoError(err)
	require.Equal("0x0000", hexTx)

	tx, err = client.GetTx(ctx, "tx", api.EncodingJSON)
	require.NoError(err)
	require.JSONEq(`{"unsignedTx":{"networkID":1}}`, string(tx.Tx))
}

func TestBuildGenesis(t *testing.T) {
	require := require.New(t)
	client, service := newTestClient(t)

	genesis, err := client.BuildGenesis(context.Background(), &BuildGenesisArgs{
		NetworkID: 12345,
		GenesisData: map[string]AssetDefinition{
			"asset1": {
				Name:         "asset1",
				Symbol:       "MFCA",
				Denomination: 1,
				InitialState: map[string][]interface{}{
					"fixedCap": {
						map[string]interface{}{
							"amount":  100000,
							"address": "local18jma8ppw3nhx5r4ap8clazz0dps7rv5u00z96u",
						},
					},
				},
			},
		},
	})
	require.NoError(err)
	require.Equal("0x1234", genesis)
	require.Equal(api.EncodingHex, service.genesisArgs.Encoding)
	require.Equal("MFCA", service.genesisArgs.GenesisData["asset1"].Symbol)
}
