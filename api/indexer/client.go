// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package indexer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/formatting"
	"github.com/ava-labs/avalanche-sdk-go/requester"
)

const Name = "index"

// Kinds of containers a chain may index.
const (
	Blocks       = "block"
	Transactions = "tx"
	Vertices     = "vtx"
)

// Endpoint returns the path of the [kind] index of [chain], e.g.
// "/ext/index/P/block".
func Endpoint(chain, kind string) string {
	return fmt.Sprintf("/ext/index/%s/%s", chain, kind)
}

type Container struct {
	ID        string      `json:"id"`
	Bytes     string      `json:"bytes"`
	Timestamp time.Time   `json:"timestamp"`
	Encoding  string      `json:"encoding"`
	Index     json.Uint64 `json:"index"`
}

// Decode returns the raw container bytes.
func (c *Container) Decode() ([]byte, error) {
	return formatting.DecodeHex(c.Bytes)
}

type EncodingArgs struct {
	Encoding string `json:"encoding"`
}

type GetContainerByIndexArgs struct {
	Index    json.Uint64 `json:"index"`
	Encoding string      `json:"encoding"`
}

type GetContainerRangeArgs struct {
	StartIndex json.Uint64 `json:"startIndex"`
	NumToFetch json.Uint64 `json:"numToFetch"`
	Encoding   string      `json:"encoding"`
}

type GetContainerRangeReply struct {
	Containers []Container `json:"containers"`
}

type IDArgs struct {
	ID       string `json:"id"`
	Encoding string `json:"encoding,omitempty"`
}

type GetIndexReply struct {
	Index json.Uint64 `json:"index"`
}

type IsAcceptedReply struct {
	IsAccepted bool `json:"isAccepted"`
}

// Client calls the index.* API of one chain index. Containers are always
// requested hex encoded.
type Client struct {
	requester *requester.EndpointRequester
}

func NewClient(uri, chain, kind string, opts ...requester.Option) *Client {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint(chain, kind)
	return &Client{requester: requester.New(uri, Name, opts...)}
}

func (c *Client) GetLastAccepted(ctx context.Context) (*Container, error) {
	resp := new(Container)
	err := c.requester.SendRequest(
		ctx,
		"getLastAccepted",
		&EncodingArgs{Encoding: api.EncodingHex},
		resp,
	)
	return resp, err
}

func (c *Client) GetContainerByIndex(ctx context.Context, index uint64) (*Container, error) {
	resp := new(Container)
	err := c.requester.SendRequest(
		ctx,
		"getContainerByIndex",
		&GetContainerByIndexArgs{
			Index:    json.Uint64(index),
			Encoding: api.EncodingHex,
		},
		resp,
	)
	return resp, err
}

func (c *Client) GetContainerByID(ctx context.Context, id string) (*Container, error) {
	resp := new(Container)
	err := c.requester.SendRequest(
		ctx,
		"getContainerByID",
		&IDArgs{
			ID:       id,
			Encoding: api.EncodingHex,
		},
		resp,
	)
	return resp, err
}

// GetContainerRange returns up to [numToFetch] containers starting at
// [startIndex]. The node caps [numToFetch] at 1024.
func (c *Client) GetContainerRange(ctx context.Context, startIndex, numToFetch uint64) ([]Container, error) {
	resp := new(GetContainerRangeReply)
	err := c.requester.SendRequest(
		ctx,
		"getContainerRange",
		&GetContainerRangeArgs{
			StartIndex: json.Uint64(startIndex),
			NumToFetch: json.Uint64(numToFetch),
			Encoding:   api.EncodingHex,
		},
		resp,
	)
	return resp.Containers, err
}

func (c *Client) GetIndex(ctx context.Context, id string) (uint64, error) {
	resp := new(GetIndexReply)
	err := c.requester.SendRequest(
		ctx,
		"getIndex",
		&IDArgs{ID: id},
		resp,
	)
	return uint64(resp.Index), err
}

func (c *Client) IsAccepted(ctx context.Context, id string) (bool, error) {
	resp := new(IsAcceptedReply)
	err := c.requester.SendRequest(
		ctx,
		"isAccepted",
		&IDArgs{ID: id},
		resp,
	)
	return resp.IsAccepted, err
}
