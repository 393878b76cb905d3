// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package admin

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/requester"
)

const (
	Name     = "admin"
	Endpoint = "/ext/admin"
)

type AliasArgs struct {
	Endpoint string `json:"endpoint"`
	Alias    string `json:"alias"`
}

type AliasChainArgs struct {
	Chain string `json:"chain"`
	Alias string `json:"alias"`
}

type GetChainAliasesArgs struct {
	Chain string `json:"chain"`
}

type GetChainAliasesReply struct {
	Aliases []string `json:"aliases"`
}

type LogAndDisplayLevels struct {
	LogLevel     string `json:"logLevel"`
	DisplayLevel string `json:"displayLevel"`
}

type GetLoggerLevelArgs struct {
	LoggerName string `json:"loggerName,omitempty"`
}

type SetLoggerLevelArgs struct {
	LoggerName   string `json:"loggerName,omitempty"`
	LogLevel     string `json:"logLevel,omitempty"`
	DisplayLevel string `json:"displayLevel,omitempty"`
}

type LoggerLevelReply struct {
	LoggerLevels map[string]LogAndDisplayLevels `json:"loggerLevels"`
}

type LoadVMsReply struct {
	NewVMs    map[string][]string `json:"newVMs"`
	FailedVMs map[string]string   `json:"failedVMs,omitempty"`
}

// Client calls the admin.* API of a node. The API is disabled unless the
// node runs with --api-admin-enabled.
type Client struct {
	requester *requester.EndpointRequester
}

func NewClient(uri string, opts ...requester.Option) *Client {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint
	return &Client{requester: requester.New(uri, Name, opts...)}
}

// Alias serves the API [endpoint] under [alias] as well.
func (c *Client) Alias(ctx context.Context, endpoint, alias string) error {
	return c.requester.SendRequest(
		ctx,
		"alias",
		&AliasArgs{
			Endpoint: endpoint,
			Alias:    alias,
		},
		&api.EmptyReply{},
	)
}

func (c *Client) AliasChain(ctx context.Context, chain, alias string) error {
	return c.requester.SendRequest(
		ctx,
		"aliasChain",
		&AliasChainArgs{
			Chain: chain,
			Alias: alias,
		},
		&api.EmptyReply{},
	)
}

func (c *Client) GetChainAliases(ctx context.Context, chain string) ([]string, error) {
	resp := new(GetChainAliasesReply)
	err := c.requester.SendRequest(
		ctx,
		"getChainAliases",
		&GetChainAliasesArgs{Chain: chain},
		resp,
	)
	return resp.Aliases, err
}

// GetLoggerLevel returns the levels of [loggerName], or of every logger if
// it is empty.
func (c *Client) GetLoggerLevel(ctx context.Context, loggerName string) (map[string]LogAndDisplayLevels, error) {
	resp := new(LoggerLevelReply)
	err := c.requester.SendRequest(
		ctx,
		"getLoggerLevel",
		&GetLoggerLevelArgs{LoggerName: loggerName},
		resp,
	)
	return resp.LoggerLevels, err
}

// SetLoggerLevel changes the levels of [loggerName]. Empty levels are left
// unchanged. Nodes that reply with the new levels have them returned.
func (c *Client) SetLoggerLevel(
	ctx context.Context,
	loggerName string,
	logLevel string,
	displayLevel string,
) (map[string]LogAndDisplayLevels, error) {
	resp := new(LoggerLevelReply)
	err := c.requester.SendRequest(
		ctx,
		"setLoggerLevel",
		&SetLoggerLevelArgs{
			LoggerName:   loggerName,
			LogLevel:     logLevel,
			DisplayLevel: displayLevel,
		},
		resp,
	)
	return resp.LoggerLevels, err
}

func (c *Client) LoadVMs(ctx context.Context) (*LoadVMsReply, error) {
	resp := new(LoadVMsReply)
	err := c.requester.SendRequest(ctx, "loadVMs", nil, resp)
	return resp, err
}

// LockProfile writes a mutex profile to lock.profile in the node's working
// directory.
func (c *Client) LockProfile(ctx context.Context) error {
	return c.requester.SendRequest(ctx, "lockProfile", nil, &api.EmptyReply{})
}

func (c *Client) MemoryProfile(ctx context.Context) error {
	return c.requester.SendRequest(ctx, "memoryProfile", nil, &api.EmptyReply{})
}

func (c *Client) StartCPUProfiler(ctx context.Context) error {
	return c.requester.SendRequest(ctx, "startCPUProfiler", nil, &api.EmptyReply{})
}

func (c *Client) StopCPUProfiler(ctx context.Context) error {
	return c.requester.SendRequest(ctx, "stopCPUProfiler", nil, &api.EmptyReply{})
}
