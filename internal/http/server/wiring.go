// Package server wires the whole service together and runs the HTTP
// server. Every dependency is constructed explicitly here; there is no
// container, what you read is what runs.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	rdb "github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/learnhub/internal/cache"
	memcache "github.com/dropDatabas3/learnhub/internal/cache/memory"
	redcache "github.com/dropDatabas3/learnhub/internal/cache/redis"
	"github.com/dropDatabas3/learnhub/internal/config"
	"github.com/dropDatabas3/learnhub/internal/http/controllers"
	healthctrl "github.com/dropDatabas3/learnhub/internal/http/controllers/health"
	"github.com/dropDatabas3/learnhub/internal/http/router"
	authsvc "github.com/dropDatabas3/learnhub/internal/http/services/auth"
	catalogsvc "github.com/dropDatabas3/learnhub/internal/http/services/catalog"
	mesvc "github.com/dropDatabas3/learnhub/internal/http/services/me"
	"github.com/dropDatabas3/learnhub/internal/metrics"
	"github.com/dropDatabas3/learnhub/internal/observability/logger"
	"github.com/dropDatabas3/learnhub/internal/providers"
	"github.com/dropDatabas3/learnhub/internal/providers/facebook"
	"github.com/dropDatabas3/learnhub/internal/providers/github"
	"github.com/dropDatabas3/learnhub/internal/providers/google"
	"github.com/dropDatabas3/learnhub/internal/rate"
	"github.com/dropDatabas3/learnhub/internal/store/mongo"
	"github.com/dropDatabas3/learnhub/internal/token"
)

// Build constructs the HTTP handler with all dependencies wired from cfg.
// The returned cleanup closes mongo and the cache backend; callers must
// run it on shutdown.
func Build(ctx context.Context, cfg *config.Config) (http.Handler, func() error, error) {
	log := logger.L().With(logger.Layer("wiring"))

	// 1. Storage
	st, err := mongo.Connect(ctx, cfg.Storage.Mongo.URI, cfg.Storage.Mongo.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := st.EnsureIndexes(ctx); err != nil {
		_ = st.Close(context.Background())
		return nil, nil, fmt.Errorf("ensure indexes: %w", err)
	}

	// 2. Cache (login state) and optional rate limiter
	var (
		cacheClient cache.Client
		limiter     rate.Limiter
	)
	switch cfg.Cache.Kind {
	case "redis":
		rc := redcache.New(cfg.Cache.Redis.Addr, cfg.Cache.Redis.DB, cfg.Cache.Redis.Prefix)
		if err := rc.Ping(ctx); err != nil {
			_ = st.Close(context.Background())
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		cacheClient = rc
		if cfg.Rate.Enabled {
			limiter = rate.NewRedisLimiter(
				rdb.NewClient(&rdb.Options{Addr: cfg.Cache.Redis.Addr, DB: cfg.Cache.Redis.DB}),
				cfg.Cache.Redis.Prefix+"rl:",
				cfg.Rate.MaxRequests,
				cfg.RateWindow(),
			)
		}
	default:
		cacheClient = memcache.New(cfg.MemoryTTL())
		if cfg.Rate.Enabled {
			log.Warn("rate limiting requires the redis cache backend, disabled")
		}
	}

	cleanup := func() error {
		cerr := cacheClient.Close()
		if err := st.Close(context.Background()); err != nil {
			return err
		}
		return cerr
	}

	// 3. Token issuer
	issuer, err := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.RefreshSecret, cfg.AccessTTL(), cfg.RefreshTTL())
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("token issuer: %w", err)
	}

	// 4. Provider registry from the enabled providers
	registry, err := buildRegistry(cfg)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	log.Info("providers enabled", logger.Any("providers", registry.Names()))

	// 5. Metrics on a dedicated registry, so /metrics only exposes ours
	promReg := prometheus.NewRegistry()
	if err := metrics.Register(promReg); err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("register metrics: %w", err)
	}

	// 6. Services
	svcs := controllers.Services{
		Auth: authsvc.NewServices(authsvc.Deps{
			Registry: registry,
			Cache:    cacheClient,
			Users:    st.Users,
			Issuer:   issuer,
			StateTTL: cfg.StateTTL(),
		}),
		Me: mesvc.NewServices(mesvc.Deps{
			Users:    st.Users,
			Payments: st.Payments,
		}),
		Catalog: catalogsvc.NewServices(catalogsvc.Deps{
			Courses: st.Courses,
			Content: st.Content,
		}),
	}

	// 7. Controllers
	ctrls := controllers.New(svcs, map[string]healthctrl.Pinger{
		"mongo": st,
		"cache": pingerFunc(cacheClient.Ping),
	})

	// 8. Routes
	mux := http.NewServeMux()
	router.Register(router.Deps{
		Mux:         mux,
		Controllers: ctrls,
		Issuer:      issuer,
		RateLimiter: limiter,
		CORSOrigins: cfg.Server.CORSAllowedOrigins,
		Metrics:     promReg,
	})

	return mux, cleanup, nil
}

// buildRegistry constructs one adapter per enabled provider. A provider
// with incomplete credentials already failed config validation, so New
// errors here mean a bug, not bad input.
func buildRegistry(cfg *config.Config) (*providers.Registry, error) {
	var list []providers.Provider

	if p := cfg.Providers.GitHub; p.Enabled {
		gh, err := github.New(providers.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURI:  p.RedirectURI,
		})
		if err != nil {
			return nil, fmt.Errorf("github provider: %w", err)
		}
		list = append(list, gh)
	}
	if p := cfg.Providers.Google; p.Enabled {
		gg, err := google.New(providers.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURI:  p.RedirectURI,
		})
		if err != nil {
			return nil, fmt.Errorf("google provider: %w", err)
		}
		list = append(list, gg)
	}
	if p := cfg.Providers.Facebook; p.Enabled {
		fb, err := facebook.New(providers.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURI:  p.RedirectURI,
		})
		if err != nil {
			return nil, fmt.Errorf("facebook provider: %w", err)
		}
		list = append(list, fb)
	}

	return providers.NewRegistry(list...), nil
}

// pingerFunc adapts a plain ping func to the health.Pinger interface.
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }
