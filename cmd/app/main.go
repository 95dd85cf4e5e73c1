package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendazap/slot-suggester/internal/adapters/in/http"
	"github.com/agendazap/slot-suggester/internal/adapters/in/rabbitmq"
	"github.com/agendazap/slot-suggester/internal/adapters/out/cache"
	"github.com/agendazap/slot-suggester/internal/adapters/out/logger"
	"github.com/agendazap/slot-suggester/internal/adapters/out/queue"
	"github.com/agendazap/slot-suggester/internal/adapters/out/relay"
	"github.com/agendazap/slot-suggester/internal/adapters/out/storage"
	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
	"github.com/agendazap/slot-suggester/internal/core/services/message_service"
	"github.com/agendazap/slot-suggester/internal/core/services/suggestion_service"
	"github.com/agendazap/slot-suggester/internal/core/services/upload_service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"queueEnabled":    cfg.Queue.Enabled,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var storageAdapter out.StoragePort
	if cfg.Storage.CloudinaryURL != "" {
		storageAdapter, err = storage.NewCloudinaryAdapter(cfg, logger.WithModule("CloudinaryAdapter"))
		if err != nil {
			logger.Error("app.storage.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Core services
	suggestionService := suggestion_service.NewSuggestionService(
		time.Now,
		logger.WithModule("SuggestionService"),
	)

	uploadService := upload_service.NewUploadService(storageAdapter, logger.WithModule("UploadService"))

	// HTTP server
	router := gin.Default()
	http.NewScheduleController(suggestionService, cfg, logger.WithModule("ScheduleController")).RegisterRoutes(router)
	if storageAdapter != nil {
		http.NewUploadController(uploadService, logger.WithModule("UploadController")).RegisterRoutes(router)
	}

	// The message intake pipeline needs the Redis queue; without it only
	// the schedule and upload endpoints are served.
	if cfg.Queue.Enabled {
		queueAdapter, err := queue.NewRedisQueueAdapter(cfg, logger.WithModule("QueueAdapter"))
		if err != nil {
			logger.Error("app.queue.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer queueAdapter.Close()

		sessionBuffer := queue.NewRedisSessionBuffer(queueAdapter.Client(), logger.WithModule("SessionBuffer"))

		var dedupPort out.DedupPort
		dedupAdapter, err := cache.NewDedupCacheAdapter(cfg, logger.WithModule("DedupCache"))
		if err != nil {
			logger.Error("app.dedup.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		if dedupAdapter != nil {
			dedupPort = dedupAdapter
		}

		automationAdapter := relay.NewAutomationAdapter(cfg, logger.WithModule("AutomationAdapter"))

		messageService := message_service.NewMessageService(
			queueAdapter,
			sessionBuffer,
			dedupPort,
			automationAdapter,
			cfg,
			logger,
		)
		go messageService.Run(ctx)

		http.NewWebhookController(messageService, logger.WithModule("WebhookController")).RegisterRoutes(router)

		if cfg.RabbitMQ.Enabled {
			listener, err := rabbitmq.NewMessageListener(
				messageService,
				cfg,
				logger.WithModule("RabbitMQListener"),
			)
			if err != nil {
				logger.Error("app.rabbitmq.init_failed", out.LogFields{
					"error": err.Error(),
				})
				os.Exit(1)
			}

			if err := listener.Start(ctx); err != nil {
				logger.Error("app.rabbitmq.start_failed", out.LogFields{
					"error": err.Error(),
				})
				os.Exit(1)
			}

			defer func() {
				if err := listener.Stop(); err != nil {
					logger.Error("app.rabbitmq.stop_failed", out.LogFields{
						"error": err.Error(),
					})
				}
			}()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
