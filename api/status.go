// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

// Status of a transaction as reported by a chain's getTxStatus.
type Status string

const (
	Accepted   Status = "Accepted"
	Committed  Status = "Committed"
	Processing Status = "Processing"
	Pending    Status = "Pending"
	Rejected   Status = "Rejected"
	Dropped    Status = "Dropped"
	Unknown    Status = "Unknown"
)

// Succeeded reports whether the transaction was accepted.
func (s Status) Succeeded() bool {
	return s == Accepted || s == Committed
}

// Failed reports whether the transaction will never be accepted.
func (s Status) Failed() bool {
	return s == Rejected || s == Dropped
}

// Decided reports whether polling can stop.
func (s Status) Decided() bool {
	return s.Succeeded() || s.Failed()
}

func (s Status) String() string {
	return string(s)
}

// BlockchainStatus is the status reported by platform.getBlockchainStatus.
type BlockchainStatus string

const (
	Validating BlockchainStatus = "Validating"
	Created    BlockchainStatus = "Created"
	Preferred  BlockchainStatus = "Preferred"
	Syncing    BlockchainStatus = "Syncing"
	UnknownBC  BlockchainStatus = "Unknown"
)
