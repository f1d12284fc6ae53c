package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dropDatabas3/learnhub/internal/cache"
	"github.com/dropDatabas3/learnhub/internal/metrics"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
	"github.com/dropDatabas3/learnhub/internal/providers"
	"github.com/dropDatabas3/learnhub/internal/store"
	"github.com/dropDatabas3/learnhub/internal/token"
)

// Service-level sentinel errors. Controllers map them to HTTP statuses.
var (
	ErrUnknownProvider = errors.New("auth: unknown provider")
	ErrMissingCode     = errors.New("auth: code is required")
	ErrInvalidState    = errors.New("auth: invalid or expired state")
)

// StartResult carries the provider redirect target.
type StartResult struct {
	RedirectURL string
}

// CallbackRequest carries the callback query parameters.
type CallbackRequest struct {
	Provider string
	Code     string
	State    string
}

// LoginService drives the social login flow: the redirect to the provider
// and the callback that turns a code into an application token pair.
type LoginService interface {
	Start(ctx context.Context, provider string) (StartResult, error)
	Callback(ctx context.Context, req CallbackRequest) (token.Pair, error)

	// Providers lists the enabled provider names, sorted.
	Providers() []string
}

type loginService struct {
	registry *providers.Registry
	cache    cache.Client
	users    store.UserStore
	issuer   *token.Issuer
	stateTTL time.Duration
}

// stateKey namespaces login state records in the shared cache.
func stateKey(state string) string {
	return "login:state:" + state
}

// newState returns 32 random bytes hex encoded.
func newState() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

func (s *loginService) Providers() []string {
	return s.registry.Names()
}

func (s *loginService) Start(ctx context.Context, provider string) (StartResult, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("LoginService.Start"))

	p, ok := s.registry.Get(provider)
	if !ok {
		return StartResult{}, ErrUnknownProvider
	}

	state, err := newState()
	if err != nil {
		return StartResult{}, err
	}

	// The state record pins the provider so a callback cannot replay a
	// state minted for a different one.
	if err := s.cache.Set(ctx, stateKey(state), provider, s.stateTTL); err != nil {
		return StartResult{}, fmt.Errorf("persist state: %w", err)
	}

	log.Debug("login started", logger.Provider(provider))

	return StartResult{RedirectURL: p.AuthURL(state)}, nil
}

func (s *loginService) Callback(ctx context.Context, req CallbackRequest) (token.Pair, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("LoginService.Callback"))

	p, ok := s.registry.Get(req.Provider)
	if !ok {
		// Constant label: the raw path segment would grow cardinality
		// without bound under path scanning.
		metrics.LoginAttempts.WithLabelValues("unknown", "unknown_provider").Inc()
		return token.Pair{}, ErrUnknownProvider
	}

	// Code first: a missing code must fail before any network or cache
	// traffic happens.
	if req.Code == "" {
		metrics.LoginAttempts.WithLabelValues(req.Provider, "missing_code").Inc()
		return token.Pair{}, ErrMissingCode
	}

	// One-time state consumption: a second callback with the same state
	// finds nothing and is rejected.
	owner, err := s.cache.TakeOne(ctx, stateKey(req.State))
	if err != nil || owner != req.Provider {
		if err != nil && !errors.Is(err, cache.ErrNotFound) {
			log.Error("state lookup failed", logger.Provider(req.Provider), logger.Err(err))
		}
		metrics.LoginAttempts.WithLabelValues(req.Provider, "invalid_state").Inc()
		return token.Pair{}, ErrInvalidState
	}

	start := time.Now()
	profile, err := p.UserData(ctx, req.Code)
	metrics.ProviderLatency.WithLabelValues(req.Provider).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		log.Error("provider exchange failed", logger.Provider(req.Provider), logger.Err(err))
		metrics.LoginAttempts.WithLabelValues(req.Provider, providers.KindOf(err).String()).Inc()
		return token.Pair{}, err
	}

	user, err := s.users.FindOrCreate(ctx, store.NewSocialUser{
		Name:   profile.Name,
		Email:  profile.Email,
		Avatar: profile.Picture,
		Link: store.ProviderLink{
			Provider:   profile.Provider,
			ProviderID: profile.ID,
		},
	})
	if err != nil {
		log.Error("find or create user failed", logger.Provider(req.Provider), logger.Err(err))
		metrics.LoginAttempts.WithLabelValues(req.Provider, "store_error").Inc()
		return token.Pair{}, fmt.Errorf("find or create user: %w", err)
	}

	pair, err := s.issuer.IssuePair(token.Claims{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Avatar,
	})
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(req.Provider, "token_error").Inc()
		return token.Pair{}, fmt.Errorf("issue token pair: %w", err)
	}

	metrics.LoginAttempts.WithLabelValues(req.Provider, "success").Inc()
	metrics.TokensIssued.WithLabelValues("access").Inc()
	metrics.TokensIssued.WithLabelValues("refresh").Inc()

	log.Info("login completed",
		logger.Provider(req.Provider),
		logger.UserID(user.ID),
	)

	return pair, nil
}
