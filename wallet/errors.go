// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/api"
)

var (
	ErrTxRejected     = errors.New("transaction rejected")
	ErrTxTimeout      = errors.New("timed out waiting for transaction")
	ErrUnknownChain   = errors.New("unknown chain alias")
	ErrMissingClient  = errors.New("missing client")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidAddress = errors.New("invalid address")

	errNotDecided = errors.New("transaction not decided")
)

// RejectedError reports a transaction that reached a failed status. It
// matches ErrTxRejected.
type RejectedError struct {
	TxID   string
	Status api.Status
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transaction %s rejected with status %s", e.TxID, e.Status)
}

func (*RejectedError) Is(target error) bool {
	return target == ErrTxRejected
}
