// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package avax calls the atomic transaction API of the C-Chain.
package avax

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/requester"
)

const (
	Name     = "avax"
	Endpoint = "/ext/bc/C/avax"
)

type GetAtomicTxStatusReply struct {
	Status      api.Status   `json:"status"`
	BlockHeight *json.Uint64 `json:"blockHeight,omitempty"`
}

type GetAtomicTxReply struct {
	Tx          string       `json:"tx"`
	Encoding    string       `json:"encoding"`
	BlockHeight *json.Uint64 `json:"blockHeight,omitempty"`
}

type Client struct {
	requester *requester.EndpointRequester
}

func NewClient(uri string, opts ...requester.Option) *Client {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint
	return &Client{requester: requester.New(uri, Name, opts...)}
}

// GetUTXOs returns atomic UTXOs exported to the C-Chain from
// [args.SourceChain].
func (c *Client) GetUTXOs(ctx context.Context, args *api.UTXOsArgs) (*api.UTXOsReply, error) {
	resp := new(api.UTXOsReply)
	err := c.requester.SendRequest(ctx, "getUTXOs", args, resp)
	return resp, err
}

func (c *Client) GetAtomicTx(ctx context.Context, txID string) (*GetAtomicTxReply, error) {
	resp := new(GetAtomicTxReply)
	err := c.requester.SendRequest(
		ctx,
		"getAtomicTx",
		&api.GetTxArgs{
			TxID:     txID,
			Encoding: api.EncodingHex,
		},
		resp,
	)
	return resp, err
}

func (c *Client) GetAtomicTxStatus(ctx context.Context, txID string) (*GetAtomicTxStatusReply, error) {
	resp := new(GetAtomicTxStatusReply)
	err := c.requester.SendRequest(
		ctx,
		"getAtomicTxStatus",
		&api.TxIDArgs{TxID: txID},
		resp,
	)
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
