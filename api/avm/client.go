// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avm

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/requester"
)

const (
	Name     = "avm"
	Endpoint = "/ext/bc/X"
)

// Client calls the avm.* API of the X-Chain.
type Client struct {
	requester *requester.EndpointRequester
}

func NewClient(uri string, opts ...requester.Option) *Client {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint
	return &Client{requester: requester.New(uri, Name, opts...)}
}

func (c *Client) GetHeight(ctx context.Context) (uint64, error) {
	resp := new(api.HeightReply)
	err := c.requester.SendRequest(ctx, "getHeight", nil, resp)
	return uint64(resp.Height), err
}

func (c *Client) GetBalance(
	ctx context.Context,
	addr string,
	assetID string,
	includePartial bool,
) (*GetBalanceReply, error) {
	resp := new(GetBalanceReply)
	err := c.requester.SendRequest(
		ctx,
		"getBalance",
		&GetBalanceArgs{
			Address:        addr,
			AssetID:        assetID,
			IncludePartial: includePartial,
		},
		resp,
	)
	return resp, err
}

func (c *Client) GetAllBalances(ctx context.Context, addr string, includePartial bool) ([]Balance, error) {
	resp := new(GetAllBalancesReply)
	err := c.requester.SendRequest(
		ctx,
		"getAllBalances",
		&GetAllBalancesArgs{
			Address:        addr,
			IncludePartial: includePartial,
		},
		resp,
	)
	return resp.Balances, err
}

// GetAssetDescription accepts either an asset ID or its alias, e.g. "AVAX".
func (c *Client) GetAssetDescription(ctx context.Context, assetID string) (*GetAssetDescriptionReply, error) {
	resp := new(GetAssetDescriptionReply)
	err := c.requester.SendRequest(
		ctx,
		"getAssetDescription",
		&GetAssetDescriptionArgs{AssetID: assetID},
		resp,
	)
	return resp, err
}

func (c *Client) GetUTXOs(ctx context.Context, args *api.UTXOsArgs) (*api.UTXOsReply, error) {
	resp := new(api.UTXOsReply)
	err := c.requester.SendRequest(ctx, "getUTXOs", args, resp)
	return resp, err
}

func (c *Client) GetTx(ctx context.Context, txID string, encoding string) (*api.GetTxReply, error) {
	resp := new(api.GetTxReply)
	err := c.requester.SendRequest(
		ctx,
		"getTx",
		&api.GetTxArgs{
			TxID:     txID,
			Encoding: encoding,
		},
		resp,
	)
	return resp, err
}

func (c *Client) GetTxStatus(ctx context.Context, txID string) (api.Status, error) {
	resp := new(api.TxStatusReply)
	err := c.requester.SendRequest(
		ctx,
		"getTxStatus",
		&api.TxIDArgs{TxID: txID},
		resp,
	)
	return resp.Status, err
}

func (c *Client) GetTxFee(ctx context.Context) (*GetTxFeeReply, error) {
	resp := new(GetTxFeeReply)
	err := c.requester.SendRequest(ctx, "getTxFee", nil, resp)
	return resp, err
}

func (c *Client) IssueTx(ctx context.Context, tx string) (string, error) {
	resp := new(api.IssueTxReply)
	err := c.requester.SendRequest(
		ctx,
		"issueTx",
		&api.IssueTxArgs{
			Tx:       tx,
			Encoding: api.EncodingHex,
		},
		resp,
	)
	return resp.TxID, err
}

func (c *Client) GetBlock(ctx context.Context, blockID string, encoding string) (*api.GetBlockReply, error) {
	resp := new(api.GetBlockReply)
	err := c.requester.SendRequest(
		ctx,
		"getBlock",
		&api.GetBlockArgs{
			BlockID:  blockID,
			Encoding: encoding,
		},
		resp,
	)
	return resp, err
}

func (c *Client) GetBlockByHeight(ctx context.Context, height uint64, encoding string) (*api.GetBlockReply, error) {
	resp := new(api.GetBlockReply)
	err := c.requester.SendRequest(
		ctx,
		"getBlockByHeight",
		&api.GetBlockByHeightArgs{
			Height:   json.Uint64(height),
			Encoding: encoding,
		},
		resp,
	)
	return resp, err
}

// BuildGenesis returns the hex encoded genesis bytes for [args].
func (c *Client) BuildGenesis(ctx context.Context, args *BuildGenesisArgs) (string, error) {
	if args.Encoding == "" {
		args.Encoding = api.EncodingHex
	}
	resp := new(BuildGenesisReply)
	err := c.requester.SendRequest(ctx, "buildGenesis", args, resp)
	return resp.Bytes, err
}
