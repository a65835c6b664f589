package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcppubsub "cloud.google.com/go/pubsub"

	"vidlink/infrastructure/cache"
	"vidlink/infrastructure/clients/parseapi"
	"vidlink/infrastructure/configuration"
	"vidlink/infrastructure/logger"
	"vidlink/infrastructure/persistence"
	"vidlink/infrastructure/pubsub"
	"vidlink/infrastructure/servicebus"
	httpHandler "vidlink/interfaces/http"
	"vidlink/server"
	"vidlink/usecase"

	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	// Redis backs the video cache; fall back to an in-process store when it
	// is unavailable so parsing keeps working without memoization across
	// restarts.
	store, err := cache.NewRedisStore(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - using in-memory cache store")
		store = cache.NewMemoryStore()
	}
	videoCache := cache.NewVideoCache(
		store,
		time.Duration(configuration.C.Cache.TTLSeconds)*time.Second,
		configuration.C.Cache.MaxEntries,
	)

	mysqlDb, err := persistence.NewMySQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MySQL not available - continuing without parse history")
		mysqlDb = nil
	} else if err := persistence.EnsureParseHistorySchema(mysqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to ensure parse_history schema")
	}
	historyRepository := persistence.NewParseHistoryRepository(mysqlDb)

	parser := parseapi.NewClient(
		configuration.C.ParseAPI.BaseURL,
		configuration.C.ParseAPI.APIKey,
		time.Duration(configuration.C.ParseAPI.TimeoutSeconds)*time.Second,
	)

	parseUseCase := usecase.NewParseUseCase(parser).
		WithCache(videoCache).
		WithHistory(historyRepository)

	if projectID := configuration.C.Pubsub.ProjectID; projectID != "" {
		pubSubClient, err := gcppubsub.NewClient(ctx, projectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - continuing without parse events")
		} else {
			parseUseCase = parseUseCase.WithPublisher(
				pubsub.NewParseEventPublisher(pubSubClient, configuration.C.Pubsub.Topic),
			)
		}
	}
	if namespace := configuration.C.ServiceBus.Namespace; namespace != "" {
		serviceBusClient, err := servicebus.NewServiceBusClient(namespace)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without parse events")
		} else {
			parseUseCase = parseUseCase.WithPublisher(
				servicebus.NewParseEventPublisher(serviceBusClient, configuration.C.ServiceBus.Queue),
			)
		}
	}

	parseHandler := httpHandler.NewParseHandler(parseUseCase)
	platformHandler := httpHandler.NewPlatformHandler()
	cacheHandler := httpHandler.NewCacheHandler(usecase.NewCacheUseCase(videoCache))

	router := server.InitiateRouter(parseHandler, platformHandler, cacheHandler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.GetLogger().WithField("port", app.Port).Info("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-interrupt:
			logger.GetLogger().WithField("signal", sig.String()).Info("Shutdown signal received")
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server terminated with error")
	}
}
