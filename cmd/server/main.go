package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	_ "oilsaas/docs" // swagger docs

	"oilsaas/internal/config"
	"oilsaas/internal/handler"
	"oilsaas/internal/logger"
	"oilsaas/internal/router"
	"oilsaas/internal/service"
	"oilsaas/internal/store"
)

// @title Oil SaaS API
// @version 1.0.0
// @description Backend for the marketing site: auth, blog, contact and pricing endpoints backed by a document store.
// @BasePath /
// @schemes http
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env)

	st, err := store.Open(store.Options{
		URL:       cfg.DatabaseURL,
		Namespace: cfg.Namespace,
		Database:  cfg.DatabaseName,
		User:      cfg.DatabaseUser,
		Pass:      cfg.DatabasePass,
	}, log)
	if err != nil {
		// The API stays up without a database; reads return empty results.
		log.Warn().Err(err).Msg("document store unavailable, continuing without it")
		st = store.NewDisabled(log)
	}
	defer st.Close()

	authService := service.NewAuthService(st, log)
	blogService := service.NewBlogService(st, log)
	contactService := service.NewContactService(st, log)
	pricingService := service.NewPricingService(st, log)
	statusService := service.NewStatusService(st, log)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		handler.NewAuthHandler(authService),
		handler.NewBlogHandler(blogService),
		handler.NewContactHandler(contactService),
		handler.NewPricingHandler(pricingService),
		handler.NewStatusHandler(statusService),
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
