package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/archive"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/config"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/events"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/httpapi"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/proxy"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/seller"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/session"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/validate"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	setupLogger(cfg.App)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	generator := seller.New(seller.Config{
		BppID:       cfg.Identity.BppID,
		BppURI:      cfg.Identity.BppURI,
		BapID:       cfg.Identity.BapID,
		BapURI:      cfg.Identity.BapURI,
		Country:     cfg.Identity.Country,
		City:        cfg.Identity.City,
		CoreVersion: cfg.Identity.CoreVersion,
	})

	gate, err := validate.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("schema gate init failed")
	}

	writer := archive.NewWriter(cfg.Archive.Dir)

	var publisher *events.Publisher
	if cfg.Kafka.Enabled {
		publisher = events.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.GeneratedTopic)
		go func() {
			err := events.ConsumeGenerated(ctx, cfg.Kafka.Broker, cfg.Kafka.GeneratedTopic, cfg.Kafka.ConsumerGroup,
				func(_ context.Context, evt model.CatalogGenerated) error {
					return writer.WritePayload(evt)
				})
			if err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("archive consumer stopped")
			}
		}()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		// Sessions degrade to per-request errors; generation keeps working.
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, session store degraded")
	}
	pingCancel()

	r := mux.NewRouter()
	httpapi.NewServer(generator, gate, publisher, writer).RegisterRoutes(r)
	session.NewStore(rdb, cfg.Redis.SessionTTL).RegisterRoutes(r)
	archive.NewQueryService(cfg.Archive.Dir).RegisterRoutes(r)
	proxy.RegisterRoutes(r,
		proxy.New("mock", cfg.Upstream.MockServiceURL, cfg.Upstream.Timeout),
		proxy.New("registry", cfg.Upstream.RegistryURL, cfg.Upstream.Timeout),
	)

	server := &http.Server{
		Addr:    cfg.App.Addr,
		Handler: r,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		cancel()
		_ = server.Shutdown(context.Background())
	}()

	log.Info().Str("addr", cfg.App.Addr).Msg("workbench API listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func setupLogger(app config.AppConfig) {
	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if app.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}
