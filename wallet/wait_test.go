// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/avalanche-sdk-go/api"
	"github.com/ava-labs/avalanche-sdk-go/api/apitest"
	"github.com/ava-labs/avalanche-sdk-go/api/avax"
	"github.com/ava-labs/avalanche-sdk-go/api/avm"
	"github.com/ava-labs/avalanche-sdk-go/api/platform"
	"github.com/ava-labs/avalanche-sdk-go/consts"
	"github.com/ava-labs/avalanche-sdk-go/wallet/wallettest"
)

const testTxID = "2QouvFWUbjuySRxeX5xMbNCuAaKWfbk5FeEa2JmoF85RKLk2dD"

var errTest = errors.New("test error")

func TestWaitForTx(t *testing.T) {
	tests := []struct {
		name        string
		statuses    []api.Status
		maxRetries  int
		expectedErr error
	}{
		{
			name:     "accepted",
			statuses: []api.Status{api.Accepted},
		},
		{
			name:     "committed after processing",
			statuses: []api.Status{api.Processing, api.Unknown, api.Committed},
		},
		{
			name:        "rejected",
			statuses:    []api.Status{api.Processing, api.Rejected},
			expectedErr: ErrTxRejected,
		},
		{
			name:        "dropped",
			statuses:    []api.Status{api.Dropped},
			expectedErr: ErrTxRejected,
		},
		{
			name:        "timeout",
			statuses:    []api.Status{api.Processing, api.Processing, api.Processing},
			maxRetries:  3,
			expectedErr: ErrTxTimeout,
		},
		{
			name:        "single poll",
			statuses:    []api.Status{api.Unknown},
			maxRetries:  1,
			expectedErr: ErrTxTimeout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			checker := wallettest.NewMockStatusChecker(ctrl)
			calls := make([]any, 0, len(tt.statuses))
			for _, status := range tt.statuses {
				calls = append(calls, checker.EXPECT().TxStatus(gomock.Any(), testTxID).Return(status, nil))
			}
			gomock.InOrder(calls...)

			opts := []WaitOption{WithInterval(time.Millisecond)}
			if tt.maxRetries > 0 {
				opts = append(opts, WithMaxRetries(tt.maxRetries))
			}
			err := WaitForTx(context.Background(), checker, testTxID, opts...)
			require.ErrorIs(err, tt.expectedErr)
		})
	}
}

func TestWaitForTxDefaultRetries(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	checker := wallettest.NewMockStatusChecker(ctrl)
	checker.EXPECT().TxStatus(gomock.Any(), testTxID).Return(api.Processing, nil).Times(DefaultMaxRetries)

	err := WaitForTx(
		context.Background(),
		checker,
		testTxID,
		WithInterval(time.Millisecond),
		WithMaxRetries(0),
	)
	require.ErrorIs(err, ErrTxTimeout)
}

func TestWaitForTxRejectedError(t *testing.T) {
	require := require.New(t)

	checker := StatusCheckerFunc(func(context.Context, string) (api.Status, error) {
		return api.Rejected, nil
	})
	err := WaitForTx(context.Background(), checker, testTxID)
	require.ErrorIs(err, ErrTxRejected)

	var rejected *RejectedError
	require.ErrorAs(err, &rejected)
	require.Equal(api.Rejected, rejected.Status)
	require.Equal("transaction "+testTxID+" rejected with status Rejected", err.Error())
}

func TestWaitForTxCheckerError(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	checker := wallettest.NewMockStatusChecker(ctrl)
	gomock.InOrder(
		checker.EXPECT().TxStatus(gomock.Any(), testTxID).Return(api.Processing, nil),
		checker.EXPECT().TxStatus(gomock.Any(), testTxID).Return(api.Status(""), errTest),
	)

	err := WaitForTx(context.Background(), checker, testTxID, WithInterval(time.Millisecond))
	require.ErrorIs(err, errTest)
}

func TestWaitForTxCanceled(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checker := wallettest.NewMockStatusChecker(ctrl)
	checker.EXPECT().TxStatus(gomock.Any(), testTxID).DoAndReturn(
		func(context.Context, string) (api.Status, error) {
			cancel()
			return api.Processing, nil
		},
	)

	err := WaitForTx(ctx, checker, testTxID, WithInterval(time.Hour))
	require.ErrorIs(err, context.Canceled)
}

func TestWaitForTxSequentialPolls(t *testing.T) {
	require := require.New(t)

	var (
		inFlight atomic.Int32
		maxSeen  atomic.Int32
		polls    atomic.Int32
	)
	checker := StatusCheckerFunc(func(context.Context, string) (api.Status, error) {
		n := inFlight.Inc()
		defer inFlight.Dec()
		if n > maxSeen.Load() {
			maxSeen.Store(n)
		}
		time.Sleep(2 * time.Millisecond)
		if polls.Inc() == 5 {
			return api.Accepted, nil
		}
		return api.Processing, nil
	})

	require.NoError(WaitForTx(context.Background(), checker, testTxID, WithInterval(time.Millisecond)))
	require.Equal(int32(5), polls.Load())
	require.Equal(int32(1), maxSeen.Load())
}

type StatusService struct {
	status api.Status
}

func (s *StatusService) GetTxStatus(_ *http.Request, _ *api.TxIDArgs, reply *api.TxStatusReply) error {
	reply.Status = s.status
	return nil
}

func (s *StatusService) GetAtomicTxStatus(_ *http.Request, _ *api.TxIDArgs, reply *avax.GetAtomicTxStatusReply) error {
	reply.Status = s.status
	return nil
}

func TestChainStatusChecker(t *testing.T) {
	uri := apitest.NewServer(t,
		apitest.Service{Path: platform.Endpoint, Name: platform.Name, Service: &StatusService{status: api.Committed}},
		apitest.Service{Path: avm.Endpoint, Name: avm.Name, Service: &StatusService{status: api.Accepted}},
		apitest.Service{Path: avax.Endpoint, Name: avax.Name, Service: &StatusService{status: api.Processing}},
	)
	p := platform.NewClient(uri)
	x := avm.NewClient(uri)
	c := avax.NewClient(uri)

	tests := []struct {
		alias          string
		expectedStatus api.Status
	}{
		{
			alias:          consts.PChainAlias,
			expectedStatus: api.Committed,
		},
		{
			alias:          consts.XChainAlias,
			expectedStatus: api.Accepted,
		},
		{
			alias:          consts.CChainAlias,
			expectedStatus: api.Processing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			require := require.New(t)

			checker, err := ChainStatusChecker(tt.alias, p, x, c)
			require.NoError(err)
			status, err := checker.TxStatus(context.Background(), testTxID)
			require.NoError(err)
			require.Equal(tt.expectedStatus, status)
		})
	}
}

func TestChainStatusCheckerErrors(t *testing.T) {
	require := require.New(t)

	_, err := ChainStatusChecker("Q", nil, nil, nil)
	require.ErrorIs(err, ErrUnknownChain)

	_, err = ChainStatusChecker(consts.PChainAlias, nil, avm.NewClient("http://localhost"), nil)
	require.ErrorIs(err, ErrMissingClient)
}
