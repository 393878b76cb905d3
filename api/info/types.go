// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/json"

	"github.com/ava-labs/avalanche-sdk-go/api"
)

type GetNodeVersionReply struct {
	Version            string            `json:"version"`
	DatabaseVersion    string            `json:"databaseVersion"`
	RPCProtocolVersion json.Uint32       `json:"rpcProtocolVersion"`
	GitCommit          string            `json:"gitCommit"`
	VMVersions         map[string]string `json:"vmVersions"`
}

type ProofOfPossession struct {
	PublicKey         string `json:"publicKey"`
	ProofOfPossession string `json:"proofOfPossession"`
}

type GetNodeIDReply struct {
	NodeID  string             `json:"nodeID"`
	NodePOP *ProofOfPossession `json:"nodePOP,omitempty"`
}

type GetNodeIPReply struct {
	IP string `json:"ip"`
}

type GetNetworkIDReply struct {
	NetworkID json.Uint32 `json:"networkID"`
}

type GetNetworkNameReply struct {
	NetworkName string `json:"networkName"`
}

type GetBlockchainIDArgs struct {
	Alias string `json:"alias"`
}

type GetBlockchainIDReply struct {
	BlockchainID string `json:"blockchainID"`
}

type GetTxFeeReply struct {
	TxFee                         api.BigInt `json:"txFee"`
	CreateAssetTxFee              api.BigInt `json:"createAssetTxFee"`
	CreateSubnetTxFee             api.BigInt `json:"createSubnetTxFee"`
	TransformSubnetTxFee          api.BigInt `json:"transformSubnetTxFee"`
	CreateBlockchainTxFee         api.BigInt `json:"createBlockchainTxFee"`
	AddPrimaryNetworkValidatorFee api.BigInt `json:"addPrimaryNetworkValidatorFee"`
	AddPrimaryNetworkDelegatorFee api.BigInt `json:"addPrimaryNetworkDelegatorFee"`
	AddSubnetValidatorFee         api.BigInt `json:"addSubnetValidatorFee"`
	AddSubnetDelegatorFee         api.BigInt `json:"addSubnetDelegatorFee"`
}

type GetVMsReply struct {
	VMs map[string][]string `json:"vms"`
	Fxs map[string]string   `json:"fxs"`
}

type IsBootstrappedArgs struct {
	Chain string `json:"chain"`
}

type IsBootstrappedReply struct {
	IsBootstrapped bool `json:"isBootstrapped"`
}

type PeersArgs struct {
	NodeIDs []string `json:"nodeIDs,omitempty"`
}

type Peer struct {
	IP             string      `json:"ip"`
	PublicIP       string      `json:"publicIP"`
	NodeID         string      `json:"nodeID"`
	Version        string      `json:"version"`
	LastSent       time.Time   `json:"lastSent"`
	LastReceived   time.Time   `json:"lastReceived"`
	Benched        []string    `json:"benched"`
	ObservedUptime json.Uint32 `json:"observedUptime"`
}

type PeersReply struct {
	NumPeers json.Uint64 `json:"numPeers"`
	Peers    []Peer      `json:"peers"`
}

// UpgradesReply holds the activation times of every network upgrade.
type UpgradesReply struct {
	ApricotPhase1Time            time.Time   `json:"apricotPhase1Time"`
	ApricotPhase2Time            time.Time   `json:"apricotPhase2Time"`
	ApricotPhase3Time            time.Time   `json:"apricotPhase3Time"`
	ApricotPhase4Time            time.Time   `json:"apricotPhase4Time"`
	ApricotPhase4MinPChainHeight json.Uint64 `json:"apricotPhase4MinPChainHeight"`
	ApricotPhase5Time            time.Time   `json:"apricotPhase5Time"`
	ApricotPhasePre6Time         time.Time   `json:"apricotPhasePre6Time"`
	ApricotPhase6Time            time.Time   `json:"apricotPhase6Time"`
	ApricotPhasePost6Time        time.Time   `json:"apricotPhasePost6Time"`
	BanffTime                    time.Time   `json:"banffTime"`
	CortinaTime                  time.Time   `json:"cortinaTime"`
	CortinaXChainStopVertexID    string      `json:"cortinaXChainStopVertexID"`
	DurangoTime                  time.Time   `json:"durangoTime"`
	EtnaTime                     time.Time   `json:"etnaTime"`
}

type UptimeArgs struct {
	SubnetID string `json:"subnetID,omitempty"`
}

type UptimeReply struct {
	RewardingStakePercentage  json.Float64 `json:"rewardingStakePercentage"`
	WeightedAveragePercentage json.Float64 `json:"weightedAveragePercentage"`
}

// ACP is the local node's view of the votes for one Avalanche Community
// Proposal.
type ACP struct {
	SupportWeight api.BigInt `json:"supportWeight"`
	Supporters    []string   `json:"supporters"`
	ObjectWeight  api.BigInt `json:"objectWeight"`
	Objectors     []string   `json:"objectors"`
	AbstainWeight api.BigInt `json:"abstainWeight"`
}

type ACPsReply struct {
	ACPs map[uint32]ACP `json:"acps"`
}
