package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/heartmarshall/lifelog-timeline/internal/adapter/kafka"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres"
	archiverepo "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/archive"
	entryrepo "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/entry"
	sourcerepo "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/source"
	userrepo "github.com/heartmarshall/lifelog-timeline/internal/adapter/postgres/user"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/redis"
	"github.com/heartmarshall/lifelog-timeline/internal/adapter/redis/entrycache"
	"github.com/heartmarshall/lifelog-timeline/internal/auth"
	"github.com/heartmarshall/lifelog-timeline/internal/config"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	archivesvc "github.com/heartmarshall/lifelog-timeline/internal/service/archive"
	authsvc "github.com/heartmarshall/lifelog-timeline/internal/service/auth"
	sourcesvc "github.com/heartmarshall/lifelog-timeline/internal/service/source"
	"github.com/heartmarshall/lifelog-timeline/internal/service/timeline"
	"github.com/heartmarshall/lifelog-timeline/internal/transport/dataloader"
	"github.com/heartmarshall/lifelog-timeline/internal/transport/middleware"
	"github.com/heartmarshall/lifelog-timeline/internal/transport/rest"
)

// entryStore is the entry repository shared by every service. It is the
// plain postgres repository or its cache-backed wrapper.
type entryStore interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySource(ctx context.Context, source string) (int64, error)
	CountBySources(ctx context.Context, sources []string) (map[string]int, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.EntryEvent) error
	Close() error
}

func provideLogger(cfg *config.Config) *slog.Logger {
	return NewLogger(cfg.Log)
}

func providePool(lc fx.Lifecycle, cfg *config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(pool.Close))
	return pool, nil
}

func provideTxManager(pool *pgxpool.Pool) *postgres.TxManager {
	return postgres.NewTxManager(pool)
}

// provideCache returns nil when no redis address is configured.
func provideCache(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled() {
		return nil
	}
	c := redis.NewClient(cfg.Redis)
	lc.Append(fx.StopHook(c.Close))
	return c
}

func provideEntryStore(pool *pgxpool.Pool, cache *redis.Client, cfg *config.Config, log *slog.Logger) entryStore {
	repo := entryrepo.New(pool)
	if cache == nil {
		return repo
	}
	return entrycache.New(repo, cache, cfg.Timeline.Location, log)
}

func provideArchiveRepo(pool *pgxpool.Pool) *archiverepo.Repo { return archiverepo.New(pool) }

func provideSourceRepo(pool *pgxpool.Pool) *sourcerepo.Repo { return sourcerepo.New(pool) }

func provideUserRepo(pool *pgxpool.Pool) *userrepo.Repo { return userrepo.New(pool) }

func providePublisher(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (eventPublisher, error) {
	if !cfg.Kafka.Enabled() {
		return kafka.Nop{}, nil
	}
	p, err := kafka.NewPublisher(cfg.Kafka, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(p.Close))
	return p, nil
}

func provideJWTManager(cfg *config.Config) *auth.JWTManager {
	return auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
}

// provideCodeStore runs a sweeper that drops expired authorization codes
// once per code lifetime.
func provideCodeStore(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) *auth.CodeStore {
	store := auth.NewCodeStore()
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go sweepCodes(store, cfg.Auth.CodeTTL, done, log)
			return nil
		},
		OnStop: func(context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}

func sweepCodes(store *auth.CodeStore, every time.Duration, done <-chan struct{}, log *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				log.Debug("expired auth codes swept", slog.Int("count", n))
			}
		}
	}
}

func provideTimelineService(log *slog.Logger, entries entryStore, events eventPublisher, cfg *config.Config) *timeline.Service {
	return timeline.NewService(log, entries, events, cfg.Timeline)
}

func provideArchiveService(log *slog.Logger, repo *archiverepo.Repo, entries entryStore, tx *postgres.TxManager) *archivesvc.Service {
	return archivesvc.NewService(log, repo, entries, tx)
}

func provideSourceService(log *slog.Logger, repo *sourcerepo.Repo, entries entryStore, tx *postgres.TxManager) *sourcesvc.Service {
	return sourcesvc.NewService(log, repo, entries, tx)
}

func provideAuthService(
	log *slog.Logger,
	users *userrepo.Repo,
	codes *auth.CodeStore,
	jwt *auth.JWTManager,
	cfg *config.Config,
) *authsvc.Service {
	return authsvc.NewService(log, users, codes, jwt, cfg.Auth)
}

type handlerDeps struct {
	fx.In

	Log      *slog.Logger
	Config   *config.Config
	Pool     *pgxpool.Pool
	Cache    *redis.Client
	Timeline *timeline.Service
	Archive  *archivesvc.Service
	Source   *sourcesvc.Service
	Auth     *authsvc.Service
}

func provideHandlers(d handlerDeps) rest.Handlers {
	health := rest.NewHealthHandler(d.Pool, BuildVersion()).WithTimezone(d.Config.Timeline.Location)
	if d.Cache != nil {
		health = health.WithCache(d.Cache)
	}

	return rest.Handlers{
		Health:   health,
		Timeline: rest.NewTimelineHandler(d.Timeline, d.Log),
		Archive:  rest.NewArchiveHandler(d.Archive, d.Log),
		Source:   rest.NewSourceHandler(d.Source, d.Log),
		OAuth:    rest.NewOAuthHandler(d.Auth, d.Log),
	}
}

type httpDeps struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Log       *slog.Logger
	Handlers  rest.Handlers
	Auth      *authsvc.Service
	Archives  *archiverepo.Repo
	Entries   entryStore
}

// provideHTTPHandler wraps the router in the middleware chain. Probes bypass
// the api chain.
func provideHTTPHandler(d httpDeps) http.Handler {
	limiter := middleware.NewRateLimiter(d.Config.Server.RateCleanup)
	d.Lifecycle.Append(fx.StopHook(limiter.Stop))

	api := middleware.Chain(
		middleware.Timezone,
		middleware.Auth(d.Auth),
		dataloader.Middleware(&dataloader.Repos{
			ArchiveFile: d.Archives,
			EntryCount:  d.Entries,
		}),
	)

	outer := middleware.Chain(
		middleware.Recovery(d.Log),
		middleware.RequestID,
		middleware.Logger(d.Log),
		middleware.CORS(d.Config.CORS),
		middleware.Unless(middleware.IsProbe, limiter.Limit(middleware.RatePolicy{
			PerMinute:      d.Config.Server.RateLimit,
			OAuthPerMinute: d.Config.Server.OAuthRateLimit,
		})),
	)

	return outer(rest.NewRouter(d.Handlers, api, middleware.RequireAuth))
}

func provideServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}

// startServer binds the listener on start so port conflicts fail the
// start phase, and drains in-flight requests on stop.
func startServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	srv *http.Server,
	cfg *config.Config,
	log *slog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var lcfg net.ListenConfig
			ln, err := lcfg.Listen(ctx, "tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}

			log.Info("http server started",
				slog.String("addr", ln.Addr().String()),
				slog.String("version", BuildVersion()),
			)

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server failed", slog.String("error", err.Error()))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()

			log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}
