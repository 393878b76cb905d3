// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package platform

import (
	"context"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/requester"
)

const (
	Name     = "platform"
	Endpoint = "/ext/bc/P"
)

// Client calls the platform.* API of the P-Chain.
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

func (c *Client) GetProposedHeight(ctx context.Context) (uint64, error) {
	resp := new(api.HeightReply)
	err := c.requester.SendRequest(ctx, "getProposedHeight", nil, resp)
	return uint64(resp.Height), err
}

func (c *Client) GetBalance(ctx context.Context, addrs []string) (*GetBalanceReply, error) {
	resp := new(GetBalanceReply)
	err := c.requester.SendRequest(
		ctx,
		"getBalance",
		&AddressesArgs{Addresses: addrs},
		resp,
	)
	return resp, err
}

// GetUTXOs returns one page of UTXOs. [args.SourceChain] selects atomic UTXOs
// exported from another chain.
func (c *Client) GetUTXOs(ctx context.Context, args *api.UTXOsArgs) (*api.UTXOsReply, error) {
	resp := new(api.UTXOsReply)
	err := c.requester.SendRequest(ctx, "getUTXOs", args, resp)
	return resp, err
}

func (c *Client) GetRewardUTXOs(ctx context.Context, txID string) (*GetRewardUTXOsReply, error) {
	resp := new(GetRewardUTXOsReply)
	err := c.requester.SendRequest(
		ctx,
		"getRewardUTXOs",
		&api.GetTxArgs{TxID: txID, Encoding: api.EncodingHex},
		resp,
	)
	return resp, err
}

func (c *Client) GetCurrentValidators(
	ctx context.Context,
	subnetID string,
	nodeIDs []string,
) ([]Validator, error) {
	resp := new(GetCurrentValidatorsReply)
	err := c.requester.SendRequest(
		ctx,
		"getCurrentValidators",
		&GetCurrentValidatorsArgs{
			SubnetID: subnetID,
			NodeIDs:  nodeIDs,
		},
		resp,
	)
	return resp.Validators, err
}

// GetValidatorsAt returns the weight of every validator of [subnetID] at
// P-Chain [height].
func (c *Client) GetValidatorsAt(
	ctx context.Context,
	subnetID string,
	height uint64,
) (map[string]api.BigInt, error) {
	resp := new(GetValidatorsAtReply)
	err := c.requester.SendRequest(
		ctx,
		"getValidatorsAt",
		&GetValidatorsAtArgs{
			Height:   json.Uint64(height),
			SubnetID: subnetID,
		},
		resp,
	)
	return resp.Validators, err
}

func (c *Client) GetAllValidatorsAt(ctx context.Context, height uint64) (map[string]ValidatorSet, error) {
	resp := new(GetAllValidatorsAtReply)
	err := c.requester.SendRequest(
		ctx,
		"getAllValidatorsAt",
		&GetAllValidatorsAtArgs{Height: json.Uint64(height)},
		resp,
	)
	return resp.ValidatorSets, err
}

func (c *Client) SampleValidators(ctx context.Context, subnetID string, size uint16) ([]string, error) {
	resp := new(SampleValidatorsReply)
	err := c.requester.SendRequest(
		ctx,
		"sampleValidators",
		&SampleValidatorsArgs{
			Size:     json.Uint16(size),
			SubnetID: subnetID,
		},
		resp,
	)
	return resp.Validators, err
}

func (c *Client) GetCurrentSupply(ctx context.Context, subnetID string) (*GetCurrentSupplyReply, error) {
	resp := new(GetCurrentSupplyReply)
	err := c.requester.SendRequest(
		ctx,
		"getCurrentSupply",
		&SubnetArgs{SubnetID: subnetID},
		resp,
	)
	return resp, err
}

func (c *Client) GetStake(
	ctx context.Context,
	addrs []string,
	validatorsOnly bool,
) (*GetStakeReply, error) {
	resp := new(GetStakeReply)
	err := c.requester.SendRequest(
		ctx,
		"getStake",
		&GetStakeArgs{
			Addresses:      addrs,
			ValidatorsOnly: validatorsOnly,
			Encoding:       api.EncodingHex,
		},
		resp,
	)
	return resp, err
}

func (c *Client) GetTotalStake(ctx context.Context, subnetID string) (*GetTotalStakeReply, error) {
	resp := new(GetTotalStakeReply)
	err := c.requester.SendRequest(
		ctx,
		"getTotalStake",
		&SubnetArgs{SubnetID: subnetID},
		resp,
	)
	return resp, err
}

func (c *Client) GetMinStake(ctx context.Context, subnetID string) (*GetMinStakeReply, error) {
	resp := new(GetMinStakeReply)
	err := c.requester.SendRequest(
		ctx,
		"getMinStake",
		&SubnetArgs{SubnetID: subnetID},
		resp,
	)
	return resp, err
}

func (c *Client) GetStakingAssetID(ctx context.Context, subnetID string) (string, error) {
	resp := new(GetStakingAssetIDReply)
	err := c.requester.SendRequest(
		ctx,
		"getStakingAssetID",
		&SubnetArgs{SubnetID: subnetID},
		resp,
	)
	return resp.AssetID, err
}

func (c *Client) GetSubnet(ctx context.Context, subnetID string) (*GetSubnetReply, error) {
	resp := new(GetSubnetReply)
	err := c.requester.SendRequest(
		ctx,
		"getSubnet",
		&SubnetArgs{SubnetID: subnetID},
		resp,
	)
	return resp, err
}

// GetSubnets returns the subnets named by [ids], or every subnet if [ids] is
// empty.
func (c *Client) GetSubnets(ctx context.Context, ids []string) ([]Subnet, error) {
	resp := new(GetSubnetsReply)
	err := c.requester.SendRequest(
		ctx,
		"getSubnets",
		&GetSubnetsArgs{IDs: ids},
		resp,
	)
	return resp.Subnets, err
}

func (c *Client) GetBlockchains(ctx context.Context) ([]Blockchain, error) {
	resp := new(GetBlockchainsReply)
	err := c.requester.SendRequest(ctx, "getBlockchains", nil, resp)
	return resp.Blockchains, err
}

func (c *Client) GetBlockchainStatus(ctx context.Context, blockchainID string) (api.BlockchainStatus, error) {
	resp := new(GetBlockchainStatusReply)
	err := c.requester.SendRequest(
		ctx,
		"getBlockchainStatus",
		&BlockchainIDArgs{BlockchainID: blockchainID},
		resp,
	)
	return resp.Status, err
}

func (c *Client) GetTimestamp(ctx context.Context) (time.Time, error) {
	resp := new(GetTimestampReply)
	err := c.requester.SendRequest(ctx, "getTimestamp", nil, resp)
	return resp.Timestamp, err
}

// GetTx returns the transaction in [encoding]. Hex transactions carry the
// node checksum.
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

func (c *Client) GetTxStatus(ctx context.Context, txID string) (*api.TxStatusReply, error) {
	resp := new(api.TxStatusReply)
	err := c.requester.SendRequest(
		ctx,
		"getTxStatus",
		&api.TxIDArgs{TxID: txID},
		resp,
	)
	return resp, err
}

// IssueTx submits a hex encoded signed transaction and returns its ID.
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

func (c *Client) GetFeeConfig(ctx context.Context) (*GetFeeConfigReply, error) {
	resp := new(GetFeeConfigReply)
	err := c.requester.SendRequest(ctx, "getFeeConfig", nil, resp)
	return resp, err
}

func (c *Client) GetFeeState(ctx context.Context) (*GetFeeStateReply, error) {
	resp := new(GetFeeStateReply)
	err := c.requester.SendRequest(ctx, "getFeeState", nil, resp)
	return resp, err
}

func (c *Client) GetL1Validator(ctx context.Context, validationID string) (*GetL1ValidatorReply, error) {
	resp := new(GetL1ValidatorReply)
	err := c.requester.SendRequest(
		ctx,
		"getL1Validator",
		&GetL1ValidatorArgs{ValidationID: validationID},
		resp,
	)
	return resp, err
}

// ValidatedBy returns the subnet that validates [blockchainID].
func (c *Client) ValidatedBy(ctx context.Context, blockchainID string) (string, error) {
	resp := new(ValidatedByReply)
	err := c.requester.SendRequest(
		ctx,
		"validatedBy",
		&BlockchainIDArgs{BlockchainID: blockchainID},
		resp,
	)
	return resp.SubnetID, err
}

// Validates returns the blockchains validated by [subnetID].
func (c *Client) Validates(ctx context.Context, subnetID string) ([]string, error) {
	resp := new(ValidatesReply)
	err := c.requester.SendRequest(
		ctx,
		"validates",
		&SubnetArgs{SubnetID: subnetID},
		resp,
	)
	return resp.BlockchainIDs, err
}
