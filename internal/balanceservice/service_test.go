package balanceservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/pkg/errorspkg"
	"github.com/go-petr/pocket-ledger/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func testBalance(username, initial string) domain.Balance {
	return domain.Balance{
		Username:  username,
		Initial:   initial,
		Current:   initial,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	username := randompkg.Username()

	testCases := []struct {
		name          string
		username      string
		initial       string
		buildStubs    func(repo *MockRepo)
		checkResponse func(balance domain.Balance, err error)
	}{
		{
			name:     "OK",
			username: username,
			initial:  "100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Init(gomock.Any(), gomock.Eq(username), gomock.Eq("100")).
					Times(1).
					Return(testBalance(username, "100"), nil)
			},
			checkResponse: func(balance domain.Balance, err error) {
				require.NoError(t, err)
				require.Equal(t, "100", balance.Current)
			},
		},
		{
			name:     "ZeroInitialIsValid",
			username: username,
			initial:  "0",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Init(gomock.Any(), gomock.Eq(username), gomock.Eq("0")).
					Times(1).
					Return(testBalance(username, "0"), nil)
			},
			checkResponse: func(balance domain.Balance, err error) {
				require.NoError(t, err)
				require.Equal(t, "0", balance.Current)
			},
		},
		{
			name:     "EmptyUsername",
			username: "",
			initial:  "100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Init(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(balance domain.Balance, err error) {
				require.Empty(t, balance)
				require.ErrorIs(t, err, domain.ErrInvalidUsername)
			},
		},
		{
			name:     "InvalidInitial",
			username: username,
			initial:  "one hundred",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Init(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(balance domain.Balance, err error) {
				require.Empty(t, balance)
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
		{
			name:     "NegativeInitial",
			username: username,
			initial:  "-1",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Init(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(balance domain.Balance, err error) {
				require.Empty(t, balance)
				require.ErrorIs(t, err, domain.ErrNegativeAmount)
			},
		},
		{
			name:     "AlreadyInitialized",
			username: username,
			initial:  "100",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Init(gomock.Any(), gomock.Eq(username), gomock.Eq("100")).
					Times(1).
					Return(domain.Balance{}, domain.ErrBalanceAlreadyInitialized)
			},
			checkResponse: func(balance domain.Balance, err error) {
				require.Empty(t, balance)
				require.ErrorIs(t, err, domain.ErrBalanceAlreadyInitialized)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			balance, err := service.Initialize(context.Background(), tc.username, tc.initial)
			tc.checkResponse(balance, err)
		})
	}
}

func TestRead(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	username := randompkg.Username()

	repo.EXPECT().
		Get(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(testBalance(username, "130"), nil)

	balance, err := service.Read(context.Background(), username)
	require.NoError(t, err)
	require.Equal(t, "130", balance.Current)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(domain.Balance{}, domain.ErrBalanceNotFound)

	_, err = service.Read(context.Background(), username)
	require.ErrorIs(t, err, domain.ErrBalanceNotFound)
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	username := randompkg.Username()

	repo.EXPECT().
		Reconcile(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(testBalance(username, "130"), nil)

	balance, err := service.Reconcile(context.Background(), username)
	require.NoError(t, err)
	require.Equal(t, "130", balance.Current)

	repo.EXPECT().
		Reconcile(gomock.Any(), gomock.Eq(username)).
		Times(1).
		Return(domain.Balance{}, errorspkg.ErrInternal)

	_, err = service.Reconcile(context.Background(), username)
	require.ErrorIs(t, err, errorspkg.ErrInternal)
}
