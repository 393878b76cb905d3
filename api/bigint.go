// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

var (
	ErrInvalidBigInt = errors.New("invalid integer")
	ErrNegative      = errors.New("negative integer")
	ErrOverflow      = errors.New("integer overflows uint64")

	null = []byte("null")
)

// BigInt is an unsigned amount reported by a node. It decodes from a JSON
// decimal string or a JSON number and encodes as a decimal string, so every
// amount, fee, stake and supply field is coerced once, when it is decoded.
//
// The zero value is 0.
type BigInt struct {
	v *big.Int
}

func NewBigInt(v *big.Int) BigInt {
	if v == nil {
		return BigInt{}
	}
	return BigInt{v: new(big.Int).Set(v)}
}

func BigIntFromUint64(v uint64) BigInt {
	return BigInt{v: new(big.Int).SetUint64(v)}
}

// ParseBigInt parses a base 10 unsigned integer.
func ParseBigInt(s string) (BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("%w: %q", ErrInvalidBigInt, s)
	}
	if v.Sign() < 0 {
		return BigInt{}, fmt.Errorf("%w: %q", ErrNegative, s)
	}
	return BigInt{v: v}, nil
}

// Big returns a copy of the value. It is never nil.
func (b BigInt) Big() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.v)
}

// Uint64 returns the value if it fits in 64 bits.
func (b BigInt) Uint64() (uint64, error) {
	if b.v == nil {
		return 0, nil
	}
	if !b.v.IsUint64() {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, b.v)
	}
	return b.v.Uint64(), nil
}

func (b BigInt) Cmp(other BigInt) int {
	return b.Big().Cmp(other.Big())
}

func (b BigInt) String() string {
	if b.v == nil {
		return "0"
	}
	return b.v.String()
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(b.String())), nil
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		*b = BigInt{}
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseBigInt(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
