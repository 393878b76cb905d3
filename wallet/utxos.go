// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/txs"
)

const (
	// PageSize is the number of UTXOs a node returns for a full page.
	PageSize = 1024

	DefaultMaxUTXOs    = 5000
	DefaultConcurrency = 4
)

// UTXOFetcher is implemented by the platform, avm and avax clients.
type UTXOFetcher interface {
	GetUTXOs(ctx context.Context, args *api.UTXOsArgs) (*api.UTXOsReply, error)
}

type utxoConfig struct {
	sourceChain string
	maxUTXOs    int
	concurrency int
	log         logging.Logger
}

type UTXOOption func(*utxoConfig)

// WithSourceChain fetches UTXOs exported from [chain] to the fetcher's chain.
func WithSourceChain(chain string) UTXOOption {
	return func(c *utxoConfig) {
		c.sourceChain = chain
	}
}

// WithMaxUTXOs sets the count after which no further page is requested.
func WithMaxUTXOs(n int) UTXOOption {
	return func(c *utxoConfig) {
		if n > 0 {
			c.maxUTXOs = n
		}
	}
}

func WithConcurrency(n int) UTXOOption {
	return func(c *utxoConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func WithUTXOLogger(log logging.Logger) UTXOOption {
	return func(c *utxoConfig) {
		c.log = log
	}
}

func newUTXOConfig(opts []UTXOOption) *utxoConfig {
	cfg := &utxoConfig{
		maxUTXOs:    DefaultMaxUTXOs,
		concurrency: DefaultConcurrency,
		log:         logging.NoLog{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// GetUTXOsForAddresses pages through the UTXOs owned by any of [addrs].
//
// A page shorter than PageSize is the last one. Once the configured maximum
// is reached a warning is logged and the UTXOs fetched so far are returned.
// The node may return a UTXO on two pages when it is owned by several of
// [addrs].
func GetUTXOsForAddresses(
	ctx context.Context,
	fetcher UTXOFetcher,
	addrs []string,
	opts ...UTXOOption,
) ([]*txs.UTXO, error) {
	cfg := newUTXOConfig(opts)
	return getUTXOs(ctx, fetcher, addrs, cfg)
}

func getUTXOs(
	ctx context.Context,
	fetcher UTXOFetcher,
	addrs []string,
	cfg *utxoConfig,
) ([]*txs.UTXO, error) {
	var (
		utxos      []*txs.UTXO
		startIndex api.Index
	)
	for {
		reply, err := fetcher.GetUTXOs(ctx, &api.UTXOsArgs{
			Addresses:   addrs,
			SourceChain: cfg.sourceChain,
			Limit:       json.Uint32(PageSize),
			StartIndex:  startIndex,
			Encoding:    api.EncodingHex,
		})
		if err != nil {
			return nil, err
		}
		for _, s := range reply.UTXOs {
			utxo, err := ParseUTXO(s)
			if err != nil {
				return nil, fmt.Errorf("failed to parse utxo: %w", err)
			}
			utxos = append(utxos, utxo)
		}
		if reply.NumFetched < PageSize {
			return utxos, nil
		}
		if len(utxos) >= cfg.maxUTXOs {
			cfg.log.Warn("utxo limit reached, returning partial result",
				zap.Strings("addresses", addrs),
				zap.Int("fetched", len(utxos)),
				zap.Int("limit", cfg.maxUTXOs),
			)
			return utxos, nil
		}
		startIndex = reply.EndIndex
	}
}

// GetUTXOsForAddressSet fetches the UTXOs of every address in [addrs]
// concurrently. UTXOs owned by several addresses are returned once, sorted
// by transaction ID and output index.
func GetUTXOsForAddressSet(
	ctx context.Context,
	fetcher UTXOFetcher,
	addrs []string,
	opts ...UTXOOption,
) ([]*txs.UTXO, error) {
	cfg := newUTXOConfig(opts)

	results := make([][]*txs.UTXO, len(addrs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, addr := range addrs {
		i, addr := i, addr
		g.Go(func() error {
			utxos, err := getUTXOs(gctx, fetcher, []string{addr}, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", addr, err)
			}
			results[i] = utxos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*txs.UTXO
	for _, page := range results {
		all = append(all, page...)
	}
	utxos := dedupeUTXOs(all)
	slices.SortFunc(utxos, func(a, b *txs.UTXO) int {
		return a.UTXOID.Compare(b.UTXOID)
	})
	return utxos, nil
}
