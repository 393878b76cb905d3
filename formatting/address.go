// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/ava-labs/avalanche-sdk-go/consts"
)

const addressSep = "-"

// HRPForNetwork returns the bech32 human readable part used by [networkID].
func HRPForNetwork(networkID uint32) string {
	if hrp, ok := consts.NetworkHRPs[networkID]; ok {
		return hrp
	}
	return consts.FallbackHRP
}

// FormatBech32 encodes [payload] as a bech32 string with prefix [hrp].
func FormatBech32(hrp string, payload []byte) (string, error) {
	fiveBits, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBech32Encoding, err)
	}
	s, err := bech32.Encode(hrp, fiveBits)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBech32Encoding, err)
	}
	return s, nil
}

// ParseBech32 decodes a bech32 string into its human readable part and
// payload. The human readable part is returned as found; callers that care
// about the network use [ParseAddressWithHRP].
func ParseBech32(s string) (string, []byte, error) {
	hrp, fiveBits, err := bech32.Decode(s)
	if err != nil {
		var checksumErr bech32.ErrInvalidChecksum
		if errors.As(err, &checksumErr) {
			return "", nil, fmt.Errorf("%w: %w", ErrInvalidChecksum, err)
		}
		return "", nil, fmt.Errorf("%w: %w", ErrBech32Decoding, err)
	}
	payload, err := bech32.ConvertBits(fiveBits, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBech32Decoding, err)
	}
	return hrp, payload, nil
}

// FormatAddress returns the chain qualified address, e.g. "P-avax1...".
func FormatAddress(chainAlias, hrp string, payload []byte) (string, error) {
	addr, err := FormatBech32(hrp, payload)
	if err != nil {
		return "", err
	}
	return chainAlias + addressSep + addr, nil
}

// ParseAddress splits a chain qualified address into its chain alias, human
// readable part and payload.
func ParseAddress(s string) (string, string, []byte, error) {
	chainAlias, rawAddr, ok := strings.Cut(s, addressSep)
	if !ok {
		return "", "", nil, ErrNoSeparator
	}
	hrp, payload, err := ParseBech32(rawAddr)
	return chainAlias, hrp, payload, err
}

// ParseAddressWithHRP behaves like [ParseAddress] but fails if the embedded
// human readable part is not [expectedHRP].
func ParseAddressWithHRP(s, expectedHRP string) (string, []byte, error) {
	chainAlias, hrp, payload, err := ParseAddress(s)
	if err != nil {
		return "", nil, err
	}
	if hrp != expectedHRP {
		return "", nil, fmt.Errorf("%w: expected %q, got %q", ErrUnexpectedHRP, expectedHRP, hrp)
	}
	return chainAlias, payload, nil
}

// StripChainAlias removes a leading "P-", "X-" or "C-" from [s].
func StripChainAlias(s string) string {
	for _, alias := range []string{consts.PChainAlias, consts.XChainAlias, consts.CChainAlias} {
		if rest, ok := strings.CutPrefix(s, alias+addressSep); ok {
			return rest
		}
	}
	return s
}
