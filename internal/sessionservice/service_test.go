package sessionservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/pkg/configpkg"
	"github.com/go-petr/pocket-ledger/pkg/randompkg"
	"github.com/go-petr/pocket-ledger/pkg/tokenpkg"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Parallel()

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	config := configpkg.Config{AccessTokenDuration: time.Minute}
	service := New(config, tokenMaker)

	username := randompkg.Username()

	token, payload, err := service.Create(context.Background(), username)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, username, payload.Username)
	require.WithinDuration(t, time.Now().Add(time.Minute), payload.ExpiredAt, time.Second)

	verified, err := tokenMaker.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, username, verified.Username)
}

func TestCreateInvalidUsername(t *testing.T) {
	t.Parallel()

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	config := configpkg.Config{AccessTokenDuration: time.Minute}
	service := New(config, tokenMaker)

	_, _, err = service.Create(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidUsername)

	_, _, err = service.Create(context.Background(), randompkg.String(domain.MaxNameLength+1))
	require.ErrorIs(t, err, domain.ErrInvalidUsername)
}
