// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package platform

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/avalanche-sdk-go/api"
)

type AddressesArgs struct {
	Addresses []string `json:"addresses"`
}

type SubnetArgs struct {
	SubnetID string `json:"subnetID,omitempty"`
}

type UTXOID struct {
	TxID        string      `json:"txID"`
	OutputIndex json.Uint32 `json:"outputIndex"`
}

type GetBalanceReply struct {
	Balance            api.BigInt            `json:"balance"`
	Unlocked           api.BigInt            `json:"unlocked"`
	LockedStakeable    api.BigInt            `json:"lockedStakeable"`
	LockedNotStakeable api.BigInt            `json:"lockedNotStakeable"`
	Balances           map[string]api.BigInt `json:"balances,omitempty"`
	Unlockeds          map[string]api.BigInt `json:"unlockeds,omitempty"`
	UTXOIDs            []UTXOID              `json:"utxoIDs"`
}

type GetRewardUTXOsReply struct {
	NumFetched json.Uint64 `json:"numFetched"`
	UTXOs      []string    `json:"utxos"`
	Encoding   string      `json:"encoding"`
}

type GetCurrentValidatorsArgs struct {
	SubnetID string   `json:"subnetID,omitempty"`
	NodeIDs  []string `json:"nodeIDs,omitempty"`
}

type Signer struct {
	PublicKey         string `json:"publicKey"`
	ProofOfPossession string `json:"proofOfPossession"`
}

type Delegator struct {
	TxID            string      `json:"txID"`
	StartTime       json.Uint64 `json:"startTime"`
	EndTime         json.Uint64 `json:"endTime"`
	StakeAmount     api.BigInt  `json:"stakeAmount"`
	NodeID          string      `json:"nodeID"`
	RewardOwner     *api.Owner  `json:"rewardOwner,omitempty"`
	PotentialReward api.BigInt  `json:"potentialReward"`
}

// Validator is one entry of platform.getCurrentValidators. Fields after
// Weight are only reported for the primary network.
type Validator struct {
	TxID                   string        `json:"txID"`
	StartTime              json.Uint64   `json:"startTime"`
	EndTime                json.Uint64   `json:"endTime,omitempty"`
	StakeAmount            api.BigInt    `json:"stakeAmount"`
	NodeID                 string        `json:"nodeID"`
	Weight                 api.BigInt    `json:"weight"`
	ValidationRewardOwner  *api.Owner    `json:"validationRewardOwner,omitempty"`
	DelegationRewardOwner  *api.Owner    `json:"delegationRewardOwner,omitempty"`
	Signer                 *Signer       `json:"signer,omitempty"`
	DelegatorCount         *json.Uint64  `json:"delegatorCount,omitempty"`
	DelegatorWeight        api.BigInt    `json:"delegatorWeight"`
	PotentialReward        api.BigInt    `json:"potentialReward"`
	AccruedDelegateeReward api.BigInt    `json:"accruedDelegateeReward"`
	DelegationFee          json.Float32  `json:"delegationFee"`
	Uptime                 *json.Float32 `json:"uptime,omitempty"`
	Connected              bool          `json:"connected"`
	Delegators             []Delegator   `json:"delegators,omitempty"`
}

type GetCurrentValidatorsReply struct {
	Validators []Validator `json:"validators"`
}

type GetValidatorsAtArgs struct {
	Height   json.Uint64 `json:"height"`
	SubnetID string      `json:"subnetID,omitempty"`
}

// GetValidatorsAtReply maps node IDs to their weight.
type GetValidatorsAtReply struct {
	Validators map[string]api.BigInt `json:"validators"`
}

type GetAllValidatorsAtArgs struct {
	Height json.Uint64 `json:"height"`
}

type WarpValidator struct {
	PublicKey string     `json:"publicKey"`
	Weight    api.BigInt `json:"weight"`
	NodeIDs   []string   `json:"nodeIDs"`
}

type ValidatorSet struct {
	Validators  []WarpValidator `json:"validators"`
	TotalWeight api.BigInt      `json:"totalWeight"`
}

type GetAllValidatorsAtReply struct {
	ValidatorSets map[string]ValidatorSet `json:"validatorSets"`
}

type SampleValidatorsArgs struct {
	Size     json.Uint16 `json:"size"`
	SubnetID string      `json:"subnetID,omitempty"`
}

type SampleValidatorsReply struct {
	Validators []string `json:"validators"`
}

type GetCurrentSupplyReply struct {
	Supply api.BigInt  `json:"supply"`
	Height json.Uint64 `json:"height"`
}

type GetStakeArgs struct {
	Addresses      []string `json:"addresses"`
	ValidatorsOnly bool     `json:"validatorsOnly"`
	Encoding       string   `json:"encoding,omitempty"`
}

type GetStakeReply struct {
	Staked        api.BigInt            `json:"staked"`
	Stakeds       map[string]api.BigInt `json:"stakeds"`
	StakedOutputs []string              `json:"stakedOutputs"`
	Encoding      string                `json:"encoding"`
}

type GetTotalStakeReply struct {
	Stake  api.BigInt `json:"stake"`
	Weight api.BigInt `json:"weight"`
}

type GetMinStakeReply struct {
	MinValidatorStake api.BigInt `json:"minValidatorStake"`
	MinDelegatorStake api.BigInt `json:"minDelegatorStake"`
}

type GetStakingAssetIDReply struct {
	AssetID string `json:"assetID"`
}

type GetSubnetReply struct {
	IsPermissioned           bool        `json:"isPermissioned"`
	ControlKeys              []string    `json:"controlKeys"`
	Threshold                json.Uint32 `json:"threshold"`
	Locktime                 json.Uint64 `json:"locktime"`
	SubnetTransformationTxID string      `json:"subnetTransformationTxID"`
	ConversionID             string      `json:"conversionID"`
	ManagerChainID           string      `json:"managerChainID"`
	ManagerAddress           string      `json:"managerAddress"`
}

type GetSubnetsArgs struct {
	IDs []string `json:"ids"`
}

type Subnet struct {
	ID          string      `json:"id"`
	ControlKeys []string    `json:"controlKeys"`
	Threshold   json.Uint32 `json:"threshold"`
}

type GetSubnetsReply struct {
	Subnets []Subnet `json:"subnets"`
}

type Blockchain struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SubnetID string `json:"subnetID"`
	VMID     string `json:"vmID"`
}

type GetBlockchainsReply struct {
	Blockchains []Blockchain `json:"blockchains"`
}

type BlockchainIDArgs struct {
	BlockchainID string `json:"blockchainID"`
}

type GetBlockchainStatusReply struct {
	Status api.BlockchainStatus `json:"status"`
}

type GetTimestampReply struct {
	Timestamp time.Time `json:"timestamp"`
}

type GetFeeConfigReply struct {
	Weights                  []json.Uint64 `json:"weights"`
	MaxCapacity              api.BigInt    `json:"maxCapacity"`
	MaxPerSecond             api.BigInt    `json:"maxPerSecond"`
	TargetPerSecond          api.BigInt    `json:"targetPerSecond"`
	MinPrice                 api.BigInt    `json:"minPrice"`
	ExcessConversionConstant api.BigInt    `json:"excessConversionConstant"`
}

type GetFeeStateReply struct {
	Capacity  api.BigInt `json:"capacity"`
	Excess    api.BigInt `json:"excess"`
	Price     api.BigInt `json:"price"`
	Timestamp time.Time  `json:"timestamp"`
}

type GetL1ValidatorArgs struct {
	ValidationID string `json:"validationID"`
}

type GetL1ValidatorReply struct {
	SubnetID              string     `json:"subnetID"`
	NodeID                string     `json:"nodeID"`
	PublicKey             string     `json:"publicKey"`
	RemainingBalanceOwner api.Owner  `json:"remainingBalanceOwner"`
	DeactivationOwner     api.Owner  `json:"deactivationOwner"`
	StartTime             api.BigInt `json:"startTime"`
	Weight                api.BigInt `json:"weight"`
	MinNonce              api.BigInt `json:"minNonce"`
	Balance               api.BigInt `json:"balance"`
	Height                api.BigInt `json:"height"`
}

type ValidatedByReply struct {
	SubnetID string `json:"subnetID"`
}

type ValidatesReply struct {
	BlockchainIDs []string `json:"blockchainIDs"`
}
