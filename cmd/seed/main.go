// Command seed bootstraps a fresh deployment: it creates the default admin
// account and the settings singleton, then exits. Safe to run repeatedly.
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"nova_estates/internal/adapters/observability"
	"nova_estates/internal/app"
	"nova_estates/internal/auth"
	"nova_estates/internal/shared"
	"nova_estates/internal/storage/mongodb"
)

func main() {
	shared.LoadDotenv()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := mongodb.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = store.Close(ctx) }()

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	commands := app.NewCommandService(store, tokens)
	queries := app.NewQueryService(store)

	res, err := commands.SeedAdmin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	if res.Created {
		log.Info().Str("email", res.Email).Str("password", res.Password).Msg("admin created")
	} else {
		log.Info().Msg("admin already present")
	}

	settings, err := queries.GetSettings(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("ensure settings failed")
	}
	log.Info().Str("site_name", settings.SiteName).Msg("settings ready")
}
