package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/catalog"
	"github.com/botpilothq/console/internal/config"
	"github.com/botpilothq/console/internal/infra/http/handlers"
	"github.com/botpilothq/console/internal/infra/http/middleware"
	"github.com/botpilothq/console/internal/infra/integration/recordstore"
	"github.com/botpilothq/console/internal/infra/mail"
	"github.com/botpilothq/console/internal/infra/queue"
	"github.com/botpilothq/console/internal/infra/worker"
	"github.com/botpilothq/console/internal/pipeline"
	"github.com/botpilothq/console/internal/session"
	"github.com/botpilothq/console/internal/usecase"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Record store client (the only persistence this service knows).
	store := recordstore.NewClient(cfg.RecordStoreURL, cfg.RecordStoreToken, logger)

	// 2. Activity events. Without a broker the feed just goes quiet.
	var events pipeline.ActivityPublisher = queue.Discard{}
	var amqpConn *amqp.Connection
	if cfg.AMQPURL != "" {
		rmq, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			logger.Fatal("rabbitmq connect failed", zap.Error(err))
		}
		defer rmq.Close()
		events = queue.NewProducer(rmq)
		amqpConn = rmq.Conn
	} else {
		logger.Warn("AMQP_URL not set, lead activity events disabled")
	}

	// 3. Sessions: one pipeline per mounted view, evicted when idle.
	sessions := session.NewManager(store, pipeline.AnyTransition, events, cfg.SessionTTL, logger)
	go sessions.StartSweeper(ctx)

	// 4. Workers.
	stats := worker.NewStatsPoller(store, cfg.StatsInterval, logger)
	go stats.Start(ctx)

	if cfg.DigestTo != "" {
		sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
		followUp := worker.NewFollowUpWorker(store, sender, cfg.DigestTo, cfg.DigestInterval, logger)
		go followUp.Start(ctx)
	}

	// 5. Use cases and handlers.
	createLeadUC := usecase.NewCreateLeadUseCase(store, events, logger)

	viewHandler := handlers.NewViewHandler(sessions)
	leadHandler := handlers.NewLeadHandler(createLeadUC, sessions)
	recordsHandler := handlers.NewRecordsHandler(store, stats)
	catalogHandler := handlers.NewCatalogHandler(catalog.New(catalog.DefaultBots()))
	healthHandler := handlers.NewHealthHandler(cfg.RecordStoreURL, amqpConn, sessions)

	// 6. Router.
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/leads", leadHandler.Create)

	r.Route("/views", func(r chi.Router) {
		r.Post("/", viewHandler.Mount)
		r.Route("/{viewID}", func(r chi.Router) {
			r.Delete("/", viewHandler.Unmount)
			r.Post("/refresh", viewHandler.Refresh)
			r.Get("/board", viewHandler.Board)
			r.Get("/leads", viewHandler.Table)
			r.Post("/selection", viewHandler.Selection)
			r.Post("/bulk-status", viewHandler.BulkStatus)
			r.Get("/export", viewHandler.Export)
			r.Put("/leads/{leadID}", viewHandler.SaveDetail)
			r.Delete("/leads/{leadID}", viewHandler.DeleteLead)
			r.Get("/leads/{leadID}/activity", viewHandler.Activity)
		})
	})

	r.Get("/clients", recordsHandler.Clients)
	r.Get("/referrals", recordsHandler.Referrals)
	r.Get("/subscribers", recordsHandler.Subscribers)
	r.Get("/audit-checks", recordsHandler.AuditChecks)
	r.Get("/notifications", recordsHandler.Notifications)
	r.Get("/stats", recordsHandler.Stats)

	r.Route("/bots", func(r chi.Router) {
		r.Get("/", catalogHandler.List)
		r.Get("/categories", catalogHandler.Categories)
		r.Get("/compare", catalogHandler.Compare)
	})

	addr := ":" + cfg.Port
	logger.Info("console listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
