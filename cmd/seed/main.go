package main

import (
	"context"

	"github.com/joho/godotenv"

	"oilsaas/internal/config"
	"oilsaas/internal/logger"
	"oilsaas/internal/service"
	"oilsaas/internal/store"
)

// Seeds the pricing plan collection with the three default plans. Safe to run
// repeatedly: nothing is inserted while any plan exists.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required to seed")
	}

	st, err := store.Open(store.Options{
		URL:       cfg.DatabaseURL,
		Namespace: cfg.Namespace,
		Database:  cfg.DatabaseName,
		User:      cfg.DatabaseUser,
		Pass:      cfg.DatabasePass,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect document store")
	}
	defer st.Close()

	pricingService := service.NewPricingService(st, log)

	inserted, err := pricingService.Seed(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("seed pricing plans")
	}

	if inserted == 0 {
		log.Info().Msg("pricing plans already present, nothing to do")
	} else {
		log.Info().Int("inserted", inserted).Msg("seed completed")
	}
}
