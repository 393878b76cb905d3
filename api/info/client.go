// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanche-sdk-go/requester"
)

const (
	Name     = "info"
	Endpoint = "/ext/info"
)

// Client calls the info.* API of a node.
type Client struct {
	requester *requester.EndpointRequester
}

func NewClient(uri string, opts ...requester.Option) *Client {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint
	return &Client{requester: requester.New(uri, Name, opts...)}
}

func (c *Client) GetNodeVersion(ctx context.Context) (*GetNodeVersionReply, error) {
	resp := new(GetNodeVersionReply)
	err := c.requester.SendRequest(ctx, "getNodeVersion", nil, resp)
	return resp, err
}

func (c *Client) GetNodeID(ctx context.Context) (*GetNodeIDReply, error) {
	resp := new(GetNodeIDReply)
	err := c.requester.SendRequest(ctx, "getNodeID", nil, resp)
	return resp, err
}

func (c *Client) GetNodeIP(ctx context.Context) (string, error) {
	resp := new(GetNodeIPReply)
	err := c.requester.SendRequest(ctx, "getNodeIP", nil, resp)
	return resp.IP, err
}

func (c *Client) GetNetworkID(ctx context.Context) (uint32, error) {
	resp := new(GetNetworkIDReply)
	err := c.requester.SendRequest(ctx, "getNetworkID", nil, resp)
	return uint32(resp.NetworkID), err
}

func (c *Client) GetNetworkName(ctx context.Context) (string, error) {
	resp := new(GetNetworkNameReply)
	err := c.requester.SendRequest(ctx, "getNetworkName", nil, resp)
	return resp.NetworkName, err
}

// GetBlockchainID resolves a chain alias such as "X" to its ID.
func (c *Client) GetBlockchainID(ctx context.Context, alias string) (string, error) {
	resp := new(GetBlockchainIDReply)
	err := c.requester.SendRequest(
		ctx,
		"getBlockchainID",
		&GetBlockchainIDArgs{Alias: alias},
		resp,
	)
	return resp.BlockchainID, err
}

func (c *Client) GetTxFee(ctx context.Context) (*GetTxFeeReply, error) {
	resp := new(GetTxFeeReply)
	err := c.requester.SendRequest(ctx, "getTxFee", nil, resp)
	return resp, err
}

func (c *Client) GetVMs(ctx context.Context) (*GetVMsReply, error) {
	resp := new(GetVMsReply)
	err := c.requester.SendRequest(ctx, "getVMs", nil, resp)
	return resp, err
}

func (c *Client) IsBootstrapped(ctx context.Context, chain string) (bool, error) {
	resp := new(IsBootstrappedReply)
	err := c.requester.SendRequest(
		ctx,
		"isBootstrapped",
		&IsBootstrappedArgs{Chain: chain},
		resp,
	)
	return resp.IsBootstrapped, err
}

// Peers returns the connected peers, filtered to [nodeIDs] when it is not
// empty.
func (c *Client) Peers(ctx context.Context, nodeIDs []string) (*PeersReply, error) {
	resp := new(PeersReply)
	err := c.requester.SendRequest(
		ctx,
		"peers",
		&PeersArgs{NodeIDs: nodeIDs},
		resp,
	)
	return resp, err
}

func (c *Client) Upgrades(ctx context.Context) (*UpgradesReply, error) {
	resp := new(UpgradesReply)
	err := c.requester.SendRequest(ctx, "upgrades", nil, resp)
	return resp, err
}

func (c *Client) Uptime(ctx context.Context, subnetID string) (*UptimeReply, error) {
	resp := new(UptimeReply)
	err := c.requester.SendRequest(
		ctx,
		"uptime",
		&UptimeArgs{SubnetID: subnetID},
		resp,
	)
	return resp, err
}

func (c *Client) ACPs(ctx context.Context) (map[uint32]ACP, error) {
	resp := new(ACPsReply)
	err := c.requester.SendRequest(ctx, "acps", nil, resp)
	return resp.ACPs, err
}
