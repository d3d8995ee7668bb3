package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/config"
	"github.com/xavierca1/cargram-leads/internal/infra/database"
	"github.com/xavierca1/cargram-leads/internal/infra/http/handlers"
	"github.com/xavierca1/cargram-leads/internal/infra/http/middleware"
	"github.com/xavierca1/cargram-leads/internal/infra/logger"
	"github.com/xavierca1/cargram-leads/internal/infra/mail"
	"github.com/xavierca1/cargram-leads/internal/infra/queue"
	"github.com/xavierca1/cargram-leads/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Database
	db, err := database.NewDBConnection(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, db.DB, log); err != nil {
			return err
		}
	}

	// 2. Repositories
	subRepo := database.NewSubscriptionRepository(db)
	signupRepo := database.NewDealerSignupRepository(db)
	agentRepo := database.NewSalesAgentRepository(db)

	// 3. Notifications: inline SMTP, or through RabbitMQ when configured
	var (
		notifier usecase.SignupNotifier
		rabbit   *queue.RabbitMQ
		conn     *amqp091.Connection
	)

	if cfg.MailEnabled() {
		sender, err := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
		if err != nil {
			return err
		}
		dispatcher := mail.NewDispatcher(sender, cfg.StaffEmail, log)
		dispatcher.Observe = middleware.RecordNotification
		dispatcher.Agents = agentRepo
		notifier = dispatcher

		if cfg.QueueEnabled() {
			rabbit, err = queue.NewRabbitMQ(cfg.RabbitMQURL)
			if err != nil {
				return err
			}
			defer rabbit.Close()
			conn = rabbit.Conn

			worker := queue.NewWorker(rabbit.Ch, dispatcher, log)
			go func() {
				if err := worker.Start(ctx, queue.QueueName); err != nil {
					log.WithError(err).Error("notification worker stopped")
				}
			}()
			notifier = queue.NewProducer(rabbit.Ch, log)
		}
	} else {
		log.Warn("MAIL_HOST not set, dealer signup emails are disabled")
	}

	// Notifications run past the request; shutdown waits on them.
	var background sync.WaitGroup

	// 4. Use cases
	subscribeUC := usecase.NewSubscribeUseCase(subRepo, log)
	statsUC := usecase.NewSubscriptionStatsUseCase(subRepo)
	createSignupUC := usecase.NewCreateDealerSignupUseCase(signupRepo, notifier, log)
	createSignupUC.Background = &background
	listSignupsUC := usecase.NewListDealerSignupsUseCase(signupRepo)
	getSignupUC := usecase.NewGetDealerSignupUseCase(signupRepo)
	updateSignupUC := usecase.NewUpdateDealerSignupStatusUseCase(signupRepo, log)
	listAgentsUC := usecase.NewListSalesAgentsUseCase(agentRepo)

	// 5. Handlers
	subHandler := handlers.NewSubscriptionHandler(subscribeUC, statsUC, log)
	signupHandler := handlers.NewDealerSignupHandler(createSignupUC, listSignupsUC, getSignupUC, updateSignupUC, log)
	catalogHandler := handlers.NewCatalogHandler(listAgentsUC, log)
	clientLogHandler := handlers.NewClientLogHandler(log)
	healthHandler := handlers.NewHealthHandler(db, conn, cfg.MailEnabled(), log)

	// 6. Router
	router := newRouter(routes{
		health:            healthHandler.Handle,
		subscribe:         subHandler.Subscribe,
		subscriptionStats: subHandler.Stats,
		createSignup:      signupHandler.Create,
		listSignups:       signupHandler.List,
		getSignup:         signupHandler.Get,
		updateSignup:      signupHandler.UpdateStatus,
		salesAgents:       catalogHandler.SalesAgents,
		catalog:           catalogHandler.Catalog,
		clientLog:         clientLogHandler.Handle,
	}, routerConfig{
		AllowedOrigins:         cfg.AllowedOrigins(),
		IntakeRatePerMinute:    cfg.RateLimitPerMinute,
		ClientLogRatePerMinute: cfg.ClientLogRateLimitPerMinute,
		AdminUser:              cfg.AdminUser,
		AdminPassword:          cfg.AdminPassword,
		Log:                    log,
		Stop:                   ctx.Done(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("cargram leads API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)

	// The broker and database close in the deferred calls above, so pending
	// emails get their chance first.
	if !waitWithTimeout(&background, shutdownTimeout) {
		log.Warn("exiting with dealer signup notifications still in flight")
	}
	return err
}
