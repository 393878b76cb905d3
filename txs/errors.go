// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "errors"

var (
	ErrNilOutput             = errors.New("nil output")
	ErrNilInput              = errors.New("nil input")
	ErrNilTx                 = errors.New("nil transaction")
	ErrNilCredential         = errors.New("nil credential")
	ErrZeroAmount            = errors.New("amount must be positive")
	ErrThresholdTooHigh      = errors.New("threshold exceeds number of addresses")
	ErrZeroThreshold         = errors.New("threshold is zero with addresses present")
	ErrAddressesNotSorted    = errors.New("addresses not sorted and unique")
	ErrSigIndicesNotSorted   = errors.New("signature indices not sorted and unique")
	ErrNestedStakeableLock   = errors.New("stakeable lock cannot wrap another stakeable lock")
	ErrMemoTooLarge          = errors.New("memo too large")
	ErrWrongTypeID           = errors.New("wrong type id")
	ErrInvalidValidatorRange = errors.New("validator end time must be after start time")
	ErrZeroWeight            = errors.New("validator weight must be positive")
	ErrUnsupportedCodec      = errors.New("unsupported codec version")
	ErrTooManyShares         = errors.New("delegation shares exceed 100%")
	ErrWrongCredentialCount  = errors.New("wrong number of credentials")
)
