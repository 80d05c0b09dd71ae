// Package sessionservice issues tokens that identify a user namespace.
//
// There is no authentication involved: a session token only carries the
// username that every ledger call is partitioned by.
package sessionservice

import (
	"context"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/pkg/configpkg"
	"github.com/go-petr/pocket-ledger/pkg/tokenpkg"

	"github.com/rs/zerolog"
)

// Service facilitates session service layer logic.
type Service struct {
	TokenMaker tokenpkg.Maker
	config     configpkg.Config
}

// New returns session service struct to issue identification tokens.
func New(config configpkg.Config, tokenMaker tokenpkg.Maker) *Service {
	return &Service{
		TokenMaker: tokenMaker,
		config:     config,
	}
}

// Create issues an access token for the given username.
func (s *Service) Create(ctx context.Context, username string) (string, *tokenpkg.Payload, error) {
	l := zerolog.Ctx(ctx)

	if username == "" || len(username) > domain.MaxNameLength {
		return "", nil, domain.ErrInvalidUsername
	}

	token, payload, err := s.TokenMaker.CreateToken(username, s.config.AccessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return "", nil, err
	}

	return token, payload, nil
}
