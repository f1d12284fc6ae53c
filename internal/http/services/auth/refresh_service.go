package auth

import (
	"errors"

	"github.com/dropDatabas3/learnhub/internal/metrics"
	"github.com/dropDatabas3/learnhub/internal/token"
)

// ErrRefreshRejected covers every refresh failure. The caller never learns
// whether the token was malformed, expired or forged.
var ErrRefreshRejected = errors.New("auth: refresh token rejected")

// RefreshService exchanges a valid refresh token for a fresh pair.
type RefreshService interface {
	Refresh(refreshToken string) (token.Pair, error)
}

type refreshService struct {
	issuer *token.Issuer
}

func (s *refreshService) Refresh(refreshToken string) (token.Pair, error) {
	if refreshToken == "" {
		return token.Pair{}, ErrRefreshRejected
	}
	pair := s.issuer.Refresh(refreshToken)
	if pair == nil {
		return token.Pair{}, ErrRefreshRejected
	}
	metrics.TokensIssued.WithLabelValues("access").Inc()
	metrics.TokensIssued.WithLabelValues("refresh").Inc()
	return *pair, nil
}
