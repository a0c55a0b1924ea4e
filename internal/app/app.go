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

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres"
	languagerepo "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres/language"
	textrepo "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres/text"
	userwordrepo "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres/userword"
	wordrepo "github.com/heartmarshall/wordtrail-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/wordtrail-backend/internal/auth"
	"github.com/heartmarshall/wordtrail-backend/internal/config"
	matchsvc "github.com/heartmarshall/wordtrail-backend/internal/service/match"
	textsvc "github.com/heartmarshall/wordtrail-backend/internal/service/text"
	vocabsvc "github.com/heartmarshall/wordtrail-backend/internal/service/vocabulary"
	"github.com/heartmarshall/wordtrail-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordtrail-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes the
// logger and the connection pool, wires repositories and services, and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	languages := languagerepo.New(pool)
	words := wordrepo.New(pool)
	userWords := userwordrepo.New(pool)
	texts := textrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services.
	vocabulary := vocabsvc.NewService(logger, words, userWords, languages, txManager)
	textStore := textsvc.NewService(logger, texts, languages)
	matcher := matchsvc.NewService(logger, texts, words)

	// Transport.
	validator := auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:     logger,
		Vocabulary: vocabulary,
		Texts:      textStore,
		Matcher:    matcher,
		DB:         pool,
		Version:    BuildVersion(),
	})

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RequestsPerMin),
		middleware.Auth(validator),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      chain(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
