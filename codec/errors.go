// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrTruncatedInput   = errors.New("truncated input")
	ErrUnknownTypeID    = errors.New("unknown type id")
	ErrEncodingOverflow = errors.New("value does not fit encoding width")
	ErrTrailingBytes    = errors.New("trailing bytes")
	ErrTooManyItems     = errors.New("too many items")
	ErrInvalidSize      = errors.New("invalid size")
	ErrNilValue         = errors.New("nil value")
)
