// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package proposervm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/requester"
)

const Name = "proposervm"

// Endpoint returns the proposervm path of [chain], e.g. "/ext/bc/C/proposervm".
func Endpoint(chain string) string {
	return fmt.Sprintf("/ext/bc/%s/proposervm", chain)
}

type GetCurrentEpochReply struct {
	Number       json.Uint64 `json:"number"`
	StartTime    json.Uint64 `json:"startTime"`
	PChainHeight json.Uint64 `json:"pChainHeight"`
}

type Client struct {
	requester *requester.EndpointRequester
}

func NewClient(uri, chain string, opts ...requester.Option) *Client {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint(chain)
	return &Client{requester: requester.New(uri, Name, opts...)}
}

// GetProposedHeight returns the P-Chain height the node would use when
// proposing a block on this chain.
func (c *Client) GetProposedHeight(ctx context.Context) (uint64, error) {
	resp := new(api.HeightReply)
	err := c.requester.SendRequest(ctx, "getProposedHeight", nil, resp)
	return uint64(resp.Height), err
}

func (c *Client) GetCurrentEpoch(ctx context.Context) (*GetCurrentEpochReply, error) {
	resp := new(GetCurrentEpochReply)
	err := c.requester.SendRequest(ctx, "getCurrentEpoch", nil, resp)
	return resp, err
}
