// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/avalanche-sdk-go/api/avax"
	"github.com/ava-labs/avalanche-sdk-go/api/avm"
	"github.com/ava-labs/avalanche-sdk-go/api/platform"
	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/requester"
	"github.com/ava-labs/avalanche-sdk-go/wallet"
)

const requestTimeout = 30 * time.Second

func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func requesterOptions() []requester.Option {
	return []requester.Option{
		requester.WithLogger(log),
		requester.WithTracer(tracer),
	}
}

// chainClients returns the client of the chain named by [alias]; the other
// two are nil.
func chainClients(cmd *cobra.Command, alias string) (*platform.Client, *avm.Client, *avax.Client, error) {
	endpoint, err := getEndpoint(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get endpoint: %w", err)
	}
	opts := requesterOptions()
	switch alias {
	case consts.PChainAlias:
		return platform.NewClient(endpoint, opts...), nil, nil, nil
	case consts.XChainAlias:
		return nil, avm.NewClient(endpoint, opts...), nil, nil
	case consts.CChainAlias:
		return nil, nil, avax.NewClient(endpoint, opts...), nil
	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", wallet.ErrUnknownChain, alias)
	}
}

func statusChecker(cmd *cobra.Command, alias string) (wallet.StatusChecker, error) {
	p, x, c, err := chainClients(cmd, alias)
	if err != nil {
		return nil, err
	}
	return wallet.ChainStatusChecker(alias, p, x, c)
}

func utxoFetcher(cmd *cobra.Command, alias string) (wallet.UTXOFetcher, error) {
	p, x, c, err := chainClients(cmd, alias)
	if err != nil {
		return nil, err
	}
	switch {
	case p != nil:
		return p, nil
	case x != nil:
		return x, nil
	default:
		return c, nil
	}
}
