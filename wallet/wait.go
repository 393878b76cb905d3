// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

//go:generate go run go.uber.org/mock/mockgen -package=wallettest -destination=wallettest/mocks.go . StatusChecker,UTXOFetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/api/avax"
	"github.com/ava-labs/avalanche-sdk-go/api/avm"
	"github.com/ava-labs/avalanche-sdk-go/api/platform"
	"github.com/ava-labs/avalanche-sdk-go/consts"
)

const (
	DefaultPollInterval = 500 * time.Millisecond
	DefaultMaxRetries   = 20
)

// StatusChecker reports the status of a transaction on one chain.
type StatusChecker interface {
	TxStatus(ctx context.Context, txID string) (api.Status, error)
}

type StatusCheckerFunc func(ctx context.Context, txID string) (api.Status, error)

func (f StatusCheckerFunc) TxStatus(ctx context.Context, txID string) (api.Status, error) {
	return f(ctx, txID)
}

type waitConfig struct {
	interval   time.Duration
	maxRetries int
	log        logging.Logger
}

type WaitOption func(*waitConfig)

// WithInterval sets the time slept between two polls.
func WithInterval(d time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.interval = d
	}
}

// WithMaxRetries sets the number of polls after which WaitForTx gives up.
// Values below 1 are ignored.
func WithMaxRetries(n int) WaitOption {
	return func(c *waitConfig) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

func WithLogger(log logging.Logger) WaitOption {
	return func(c *waitConfig) {
		c.log = log
	}
}

// WaitForTx polls [checker] until [txID] is accepted or committed.
//
// Polls never overlap. A rejected or dropped transaction fails immediately
// with a *RejectedError. If no decision is observed after the configured
// number of polls ErrTxTimeout is returned. Errors from [checker] and context
// cancellation end the wait unchanged.
func WaitForTx(ctx context.Context, checker StatusChecker, txID string, opts ...WaitOption) error {
	cfg := waitConfig{
		interval:   DefaultPollInterval,
		maxRetries: DefaultMaxRetries,
		log:        logging.NoLog{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		polls  int
		status api.Status
	)
	b := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(cfg.interval),
			uint64(cfg.maxRetries-1),
		),
		ctx,
	)
	err := backoff.RetryNotify(
		func() error {
			if err := ctx.Err(); err != nil {
				return backoff.Permanent(err)
			}
			polls++
			s, err := checker.TxStatus(ctx, txID)
			if err != nil {
				return backoff.Permanent(err)
			}
			status = s
			switch {
			case s.Succeeded():
				return nil
			case s.Failed():
				return backoff.Permanent(&RejectedError{
					TxID:   txID,
					Status: s,
				})
			default:
				return errNotDecided
			}
		},
		b,
		func(_ error, next time.Duration) {
			cfg.log.Debug("transaction not decided",
				zap.String("txID", txID),
				zap.Stringer("status", status),
				zap.Int("polls", polls),
				zap.Duration("retryIn", next),
			)
		},
	)
	if err == errNotDecided {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s still %s after %d polls", ErrTxTimeout, txID, status, polls)
	}
	if err != nil {
		return err
	}
	cfg.log.Debug("transaction decided",
		zap.String("txID", txID),
		zap.Stringer("status", status),
		zap.Int("polls", polls),
	)
	return nil
}

// ChainStatusChecker returns the status checker of the chain named by
// [alias]. Only the client of that chain needs to be set.
func ChainStatusChecker(
	alias string,
	p *platform.Client,
	x *avm.Client,
	c *avax.Client,
) (StatusChecker, error) {
	switch alias {
	case consts.PChainAlias:
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingClient, alias)
		}
		return StatusCheckerFunc(func(ctx context.Context, txID string) (api.Status, error) {
			reply, err := p.GetTxStatus(ctx, txID)
			if err != nil {
				return "", err
			}
			return reply.Status, nil
		}), nil
	case consts.XChainAlias:
		if x == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingClient, alias)
		}
		return StatusCheckerFunc(x.GetTxStatus), nil
	case consts.CChainAlias:
		if c == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingClient, alias)
		}
		return StatusCheckerFunc(func(ctx context.Context, txID string) (api.Status, error) {
			reply, err := c.GetAtomicTxStatus(ctx, txID)
			if err != nil {
				return "", err
			}
			return reply.Status, nil
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChain, alias)
	}
}
