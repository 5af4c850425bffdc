package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "nova_estates/internal/adapters/http_server"
	"nova_estates/internal/adapters/observability"
	"nova_estates/internal/app"
	"nova_estates/internal/auth"
	"nova_estates/internal/shared"
	"nova_estates/internal/storage/mongodb"
)

func main() {
	shared.LoadDotenv()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// store: nothing works without it, so a failure here is fatal
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := mongodb.Open(connectCtx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	log.Info().Str("db", cfg.MongoDB).Msg("database connection ok")

	// deps
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	q := app.NewQueryService(store)
	c := app.NewCommandService(store, tokens)

	// http
	srv := server.New(cfg.CORSOrigin)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:      q,
		C:      c,
		Tokens: tokens,
		Diag: server.Diagnostics{
			HasStore:        true,
			DatabaseURLSet:  cfg.DatabaseURLSet,
			DatabaseNameSet: cfg.DatabaseNameSet,
		},
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		return store.Close(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("shut down cleanly")
}
