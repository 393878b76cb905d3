// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ava-labs/avalanchego/utils/units"

	"github.com/ava-labs/avalanche-sdk-go/codec"
)

const (
	// NativeDecimals is the number of decimals of nAVAX, the unit used on the
	// Platform and Exchange chains.
	NativeDecimals = 9

	// WeiPerNanoAvax converts between nAVAX and wei, the unit used on the
	// Contract chain.
	WeiPerNanoAvax = 1_000_000_000
)

var ErrInvalidBalance = errors.New("invalid balance")

var (
	bigAvax           = new(big.Int).SetUint64(units.Avax)
	bigWeiPerNanoAvax = big.NewInt(WeiPerNanoAvax)
)

// FormatBalance renders [bal] nAVAX as AVAX with every decimal.
func FormatBalance(bal uint64) string {
	return fmt.Sprintf("%d.%09d", bal/units.Avax, bal%units.Avax)
}

// ParseBalance converts a decimal AVAX amount into nAVAX. Amounts with more
// than [NativeDecimals] decimals are rejected.
func ParseBalance(bal string) (uint64, error) {
	n, err := parseDecimal(bal, bigAvax)
	if err != nil {
		return 0, err
	}
	return codec.Uint64FromBig(n)
}

// AvaxToWei converts a decimal AVAX amount into wei.
func AvaxToWei(avax string) (*big.Int, error) {
	n, err := parseDecimal(avax, new(big.Int).Mul(bigAvax, bigWeiPerNanoAvax))
	if err != nil {
		return nil, err
	}
	return n, nil
}

// WeiToAvax renders [wei] as AVAX, truncated to [NativeDecimals] decimals.
func WeiToAvax(wei *big.Int) string {
	whole, frac := new(big.Int).QuoRem(WeiToNanoAvax(wei), bigAvax, new(big.Int))
	return fmt.Sprintf("%s.%09d", whole, frac.Uint64())
}

// NanoAvaxToWei converts nAVAX into wei.
func NanoAvaxToWei(nAvax uint64) *big.Int {
	n := new(big.Int).SetUint64(nAvax)
	return n.Mul(n, bigWeiPerNanoAvax)
}

// WeiToNanoAvax converts wei into nAVAX, dropping the remainder.
func WeiToNanoAvax(wei *big.Int) *big.Int {
	return new(big.Int).Quo(wei, bigWeiPerNanoAvax)
}

func parseDecimal(s string, unit *big.Int) (*big.Int, error) {
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("%w: %q is negative", ErrInvalidBalance, s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBalance, s)
	}
	r.Mul(r, new(big.Rat).SetInt(unit))
	if !r.IsInt() {
		return nil, fmt.Errorf("%w: %q has too many decimals", ErrInvalidBalance, s)
	}
	return new(big.Int).Set(r.Num()), nil
}
