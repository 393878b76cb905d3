// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/consts"
)

var (
	ErrInvalidNetworkID  = errors.New("invalid network id")
	ErrInvalidChainAlias = errors.New("invalid chain alias")
)

// The Platform chain ID is the zero ID on every network.
const PChainID = "11111111111111111111111111111111LpoYY"

var chainIDs = map[uint32]map[string]string{
	consts.MainnetID: {
		consts.PChainAlias: PChainID,
		consts.XChainAlias: "2oYMBNV4eNHyqk2fjjV5nVQLDbtmNJzq5s3qs3Lo6ftnC6FByM",
		consts.CChainAlias: "2q9e4r6Mu3U68nU1fYjgbR6JvwrRx36CohpAX5UQxse55x1Q5",
	},
	consts.FujiID: {
		consts.PChainAlias: PChainID,
		consts.XChainAlias: "2JVSBoinj9C2J33VntvzYtVJNZdN2NKiwwKjcumHUWEb5DbBrm",
		consts.CChainAlias: "yH8D7ThNJkxmtkuv2jgBa4P1Rn3Qpr4pPr7QYNfcdoS6k6HWp",
	},
}

// ChainID returns the CB58 blockchain ID of the primary network chain
// [alias] on mainnet or fuji.
func ChainID(alias string, networkID uint32) (string, error) {
	chains, ok := chainIDs[networkID]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidNetworkID, networkID)
	}
	id, ok := chains[alias]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidChainAlias, alias)
	}
	return id, nil
}
