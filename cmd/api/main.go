package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/middleware"
	"server/internal/providers/completion"
	"server/internal/providers/imagegen"
	"server/internal/sentiment"
	"server/internal/service"
	"server/internal/session"
	"server/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	users, err := storage.NewUserStore(cfg.UsersFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open users store")
	}
	projects, err := storage.NewProjectStore(cfg.ProjectsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open projects store")
	}
	assets, err := storage.NewFileStore(cfg.AssetsDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open asset store")
	}

	completions, err := completion.NewGroqClient(completion.Options{
		APIKey:  cfg.GroqAPIKey,
		Model:   cfg.GroqModel,
		BaseURL: cfg.GroqBaseURL,
		HTTPClient: &http.Client{
			Timeout: cfg.GroqTimeout,
		},
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure completion client")
	}

	// Image generation is optional: without an HF token the logo endpoints
	// answer 502 and the rest of the product still works.
	var images imagegen.Generator
	if cfg.HFAPIToken != "" {
		images, err = imagegen.NewSDXLClient(imagegen.Options{
			APIToken: cfg.HFAPIToken,
			Endpoint: cfg.HFSDXLURL,
			HTTPClient: &http.Client{
				Timeout: cfg.HFTimeout,
			},
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure image client")
		}
	} else {
		logger.Warn().Msg("HF_API_TOKEN not set, logo generation disabled")
	}

	sessions := session.NewStore(session.Options{TTL: cfg.SessionTTL})
	brand := service.NewBrandService(completions, images, sentiment.NewAnalyzer(), sessions, logger)

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable")
	} else if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	app := &handlers.App{
		Config:   cfg,
		Logger:   logger,
		Brand:    brand,
		Users:    users,
		Projects: projects,
		Assets:   assets,
	}

	server := infra.NewHTTPServer(cfg, httpapi.NewRouter(app, lookup))

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
