// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/avalanche-sdk-go/codec"
	"github.com/ava-labs/avalanche-sdk-go/txs"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoImportableUTXOs = errors.New("no importable utxos")
	ErrNoAddresses       = errors.New("no addresses")
)

// TxContext describes the chain transactions are prepared for.
type TxContext struct {
	NetworkID    uint32
	BlockchainID codec.ID
	AVAXAssetID  codec.ID

	// BaseTxFee is the amount of AVAX burned by every prepared transaction.
	BaseTxFee uint64
}

type prepareConfig struct {
	changeOwner  *txs.OutputOwners
	memo         []byte
	issuanceTime uint64
}

type PrepareOption func(*prepareConfig)

// WithChangeOwner sends change to [owner] instead of the first address of
// the builder.
func WithChangeOwner(owner *txs.OutputOwners) PrepareOption {
	return func(c *prepareConfig) {
		c.changeOwner = owner
	}
}

func WithMemo(memo []byte) PrepareOption {
	return func(c *prepareConfig) {
		c.memo = memo
	}
}

// WithIssuanceTime sets the time UTXO locktimes are compared against.
// Defaults to now.
func WithIssuanceTime(t time.Time) PrepareOption {
	return func(c *prepareConfig) {
		c.issuanceTime = uint64(t.Unix())
	}
}

// TxBuilder prepares unsigned Platform chain transactions that spend the
// UTXOs of a set of addresses. It never signs.
type TxBuilder struct {
	fetcher  UTXOFetcher
	chain    TxContext
	addrs    []string
	owned    []codec.ShortID
	utxoOpts []UTXOOption
	log      logging.Logger
}

// NewTxBuilder returns a builder spending the UTXOs of [addrs], fetched
// through [fetcher]. Addresses are bech32, with or without a chain alias.
func NewTxBuilder(
	fetcher UTXOFetcher,
	chain TxContext,
	addrs []string,
	opts ...UTXOOption,
) (*TxBuilder, error) {
	if len(addrs) == 0 {
		return nil, ErrNoAddresses
	}
	owned, err := parseAddresses(addrs)
	if err != nil {
		return nil, err
	}
	return &TxBuilder{
		fetcher:  fetcher,
		chain:    chain,
		addrs:    addrs,
		owned:    owned,
		utxoOpts: opts,
		log:      newUTXOConfig(opts).log,
	}, nil
}

func (b *TxBuilder) newConfig(opts []PrepareOption) *prepareConfig {
	cfg := &prepareConfig{
		changeOwner: &txs.OutputOwners{
			Threshold: 1,
			Addrs:     []codec.ShortID{b.owned[0]},
		},
		issuanceTime: uint64(time.Now().Unix()),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// PrepareBaseTx returns a BaseTx paying [outs]. The builder's UTXOs cover
// the outputs and the fee, and any excess is returned as change.
func (b *TxBuilder) PrepareBaseTx(
	ctx context.Context,
	outs []*txs.TransferableOutput,
	opts ...PrepareOption,
) (*txs.BaseTx, error) {
	cfg := b.newConfig(opts)
	toBurn, err := b.amountsToBurn(outs)
	if err != nil {
		return nil, err
	}
	ins, change, err := b.spendOwned(ctx, toBurn, cfg)
	if err != nil {
		return nil, err
	}
	allOuts := append(append(make([]*txs.TransferableOutput, 0, len(outs)+len(change)), outs...), change...)
	if err := txs.SortTransferableOutputs(allOuts); err != nil {
		return nil, err
	}
	tx := b.baseTx(allOuts, ins, cfg)
	return tx, tx.Verify()
}

// PrepareExportTx returns an ExportTx moving [outs] to [destinationChain].
// Change stays on this chain.
func (b *TxBuilder) PrepareExportTx(
	ctx context.Context,
	destinationChain codec.ID,
	outs []*txs.TransferableOutput,
	opts ...PrepareOption,
) (*txs.ExportTx, error) {
	cfg := b.newConfig(opts)
	toBurn, err := b.amountsToBurn(outs)
	if err != nil {
		return nil, err
	}
	ins, change, err := b.spendOwned(ctx, toBurn, cfg)
	if err != nil {
		return nil, err
	}
	exported := append(make([]*txs.TransferableOutput, 0, len(outs)), outs...)
	if err := txs.SortTransferableOutputs(exported); err != nil {
		return nil, err
	}
	if err := txs.SortTransferableOutputs(change); err != nil {
		return nil, err
	}
	tx := &txs.ExportTx{
		BaseTx:           *b.baseTx(change, ins, cfg),
		DestinationChain: destinationChain,
		ExportedOutputs:  exported,
	}
	return tx, tx.Verify()
}

// PrepareImportTx returns an ImportTx consuming every UTXO exported from
// [sourceChain] to the builder's addresses and paying it to [to]. The fee is
// taken from the imported AVAX, or from the builder's UTXOs on this chain
// when not enough AVAX was imported. A nil [to] pays the change owner.
func (b *TxBuilder) PrepareImportTx(
	ctx context.Context,
	sourceChain codec.ID,
	to *txs.OutputOwners,
	opts ...PrepareOption,
) (*txs.ImportTx, error) {
	cfg := b.newConfig(opts)
	if to == nil {
		to = cfg.changeOwner
	}
	atomicUTXOs, err := GetUTXOsForAddresses(
		ctx,
		b.fetcher,
		b.addrs,
		append(slices.Clone(b.utxoOpts), WithSourceChain(sourceChain.String()))...,
	)
	if err != nil {
		return nil, err
	}

	imported := make(map[codec.ID]uint64)
	importedIns := make([]*txs.TransferableInput, 0, len(atomicUTXOs))
	for _, utxo := range dedupeUTXOs(atomicUTXOs) {
		in, ok := b.spendableInput(utxo, cfg.issuanceTime)
		if !ok {
			continue
		}
		total, err := smath.Add64(imported[utxo.Asset], in.In.Amount())
		if err != nil {
			return nil, fmt.Errorf("imported %s: %w", utxo.Asset, err)
		}
		imported[utxo.Asset] = total
		importedIns = append(importedIns, in)
	}
	if len(importedIns) == 0 {
		return nil, fmt.Errorf("%w from %s", ErrNoImportableUTXOs, sourceChain)
	}
	txs.SortTransferableInputs(importedIns)

	var (
		ins    []*txs.TransferableInput
		change []*txs.TransferableOutput
		fee    = b.chain.BaseTxFee
		avax   = b.chain.AVAXAssetID
	)
	if imported[avax] >= fee {
		imported[avax] -= fee
	} else {
		missing := fee - imported[avax]
		imported[avax] = 0
		ins, change, err = b.spendOwned(ctx, map[codec.ID]uint64{avax: missing}, cfg)
		if err != nil {
			return nil, err
		}
	}

	outs := change
	for asset, amount := range imported {
		if amount == 0 {
			continue
		}
		outs = append(outs, &txs.TransferableOutput{
			Asset: asset,
			Out: &txs.TransferOutput{
				Amt:          amount,
				OutputOwners: *to,
			},
		})
	}
	if err := txs.SortTransferableOutputs(outs); err != nil {
		return nil, err
	}
	tx := &txs.ImportTx{
		BaseTx:         *b.baseTx(outs, ins, cfg),
		SourceChain:    sourceChain,
		ImportedInputs: importedIns,
	}
	return tx, tx.Verify()
}

func (b *TxBuilder) baseTx(
	outs []*txs.TransferableOutput,
	ins []*txs.TransferableInput,
	cfg *prepareConfig,
) *txs.BaseTx {
	return &txs.BaseTx{
		NetworkID:    b.chain.NetworkID,
		BlockchainID: b.chain.BlockchainID,
		Outs:         outs,
		Ins:          ins,
		Memo:         cfg.memo,
	}
}

// amountsToBurn sums [outs] per asset and adds the fee.
func (b *TxBuilder) amountsToBurn(outs []*txs.TransferableOutput) (map[codec.ID]uint64, error) {
	toBurn := map[codec.ID]uint64{
		b.chain.AVAXAssetID: b.chain.BaseTxFee,
	}
	for i, out := range outs {
		if err := out.Verify(); err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		total, err := smath.Add64(toBurn[out.Asset], out.Out.Amount())
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		toBurn[out.Asset] = total
	}
	return toBurn, nil
}

func (b *TxBuilder) spendOwned(
	ctx context.Context,
	toBurn map[codec.ID]uint64,
	cfg *prepareConfig,
) ([]*txs.TransferableInput, []*txs.TransferableOutput, error) {
	utxos, err := GetUTXOsForAddresses(ctx, b.fetcher, b.addrs, b.utxoOpts...)
	if err != nil {
		return nil, nil, err
	}
	ins, change, err := b.spend(utxos, toBurn, cfg)
	if err != nil {
		return nil, nil, err
	}
	b.log.Debug("selected utxos",
		zap.Int("available", len(utxos)),
		zap.Int("inputs", len(ins)),
		zap.Int("changeOutputs", len(change)),
	)
	return ins, change, nil
}

// spend consumes [utxos] in order until every amount of [toBurn] is covered.
// The excess of the last UTXO of each asset becomes a change output.
func (b *TxBuilder) spend(
	utxos []*txs.UTXO,
	toBurn map[codec.ID]uint64,
	cfg *prepareConfig,
) ([]*txs.TransferableInput, []*txs.TransferableOutput, error) {
	remaining := make(map[codec.ID]uint64, len(toBurn))
	for asset, amount := range toBurn {
		if amount > 0 {
			remaining[asset] = amount
		}
	}

	var (
		ins    []*txs.TransferableInput
		excess = make(map[codec.ID]uint64)
	)
	for _, utxo := range dedupeUTXOs(utxos) {
		if len(remaining) == 0 {
			break
		}
		needed, ok := remaining[utxo.Asset]
		if !ok {
			continue
		}
		in, ok := b.spendableInput(utxo, cfg.issuanceTime)
		if !ok {
			continue
		}
		ins = append(ins, in)

		amount := in.In.Amount()
		if amount < needed {
			remaining[utxo.Asset] = needed - amount
			continue
		}
		delete(remaining, utxo.Asset)
		excess[utxo.Asset] = amount - needed
	}
	if len(remaining) != 0 {
		assets := maps.Keys(remaining)
		slices.SortFunc(assets, codec.ID.Compare)
		return nil, nil, fmt.Errorf("%w: missing %d of asset %s", ErrInsufficientFunds, remaining[assets[0]], assets[0])
	}

	var change []*txs.TransferableOutput
	for asset, amount := range excess {
		if amount == 0 {
			continue
		}
		change = append(change, &txs.TransferableOutput{
			Asset: asset,
			Out: &txs.TransferOutput{
				Amt:          amount,
				OutputOwners: *cfg.changeOwner,
			},
		})
	}
	txs.SortTransferableInputs(ins)
	return ins, change, nil
}

// spendableInput returns the input spending [utxo] if it is an unlocked
// transfer output the builder's addresses can sign for. Stakeable locked
// UTXOs are never spent.
func (b *TxBuilder) spendableInput(utxo *txs.UTXO, now uint64) (*txs.TransferableInput, bool) {
	out, ok := utxo.Out.(*txs.TransferOutput)
	if !ok || out.Locktime > now {
		return nil, false
	}
	indices := make([]uint32, 0, out.Threshold)
	for i, addr := range out.Addrs {
		if uint32(len(indices)) == out.Threshold {
			break
		}
		if b.owns(addr) {
			indices = append(indices, uint32(i))
		}
	}
	if uint32(len(indices)) < out.Threshold {
		return nil, false
	}
	return &txs.TransferableInput{
		UTXOID: utxo.UTXOID,
		Asset:  utxo.Asset,
		In: &txs.TransferInput{
			Amt:        out.Amt,
			SigIndices: txs.SigIndices{Indices: indices},
		},
	}, true
}

func (b *TxBuilder) owns(addr codec.ShortID) bool {
	for _, owned := range b.owned {
		if owned == addr {
			return true
		}
	}
	return false
}

func dedupeUTXOs(utxos []*txs.UTXO) []*txs.UTXO {
	seen := make(map[txs.UTXOID]struct{}, len(utxos))
	unique := make([]*txs.UTXO, 0, len(utxos))
	for _, utxo := range utxos {
		if _, ok := seen[utxo.UTXOID]; ok {
			continue
		}
		seen[utxo.UTXOID] = struct{}{}
		unique = append(unique, utxo)
	}
	return unique
}
