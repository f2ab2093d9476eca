package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eventory/config"
	"eventory/internal/adapters/auth"
	"eventory/internal/adapters/email"
	"eventory/internal/adapters/notify"
	deliveryhttp "eventory/internal/delivery/http"
	"eventory/internal/delivery/http/controllers"
	"eventory/internal/domain"
	"eventory/internal/repository"
	"eventory/internal/services"
)

// @title Eventory API
// @version 1.0
// @description Create events, customise their RSVP forms and collect guest responses.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := repository.New(ctx, repository.Config{
		Storage:     cfg.Storage,
		DatabaseURL: cfg.DBUrl,
		Migrate:     cfg.AutoMigrate,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.Error("failed to close storage", "err", err)
		}
	}()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	publisher, err := notify.NewPublisher(notify.Config{
		Provider: cfg.Notify.Provider,
		URL:      cfg.Notify.AMQPURL,
		Queue:    cfg.Notify.Queue,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close publisher", "err", err)
		}
	}()

	var verifier domain.TokenVerifier
	if cfg.JWTSecret != "" {
		verifier = auth.NewJWT(cfg.JWTSecret)
	} else {
		logger.Warn("JWT_SECRET is not set, every request is anonymous")
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	eventService := services.NewEventService(repos.Events, cfg.RequireIdentity, cfg.ContextTimeout)
	formService := services.NewFormService(repos.Forms, repos.Events, cfg.ContextTimeout)
	rsvpService := services.NewRsvpService(repos.Forms, repos.Events, repos.Responses, emailService, publisher, logger, cfg.ContextTimeout)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Events:   controllers.NewEventController(logger, eventService),
		Forms:    controllers.NewFormController(logger, formService),
		Rsvps:    controllers.NewRsvpController(logger, rsvpService),
		RsvpPage: controllers.NewRsvpPageController(logger, formService, rsvpService),
	})
	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: deliveryhttp.WithMiddleware(mux, deliveryhttp.MiddlewareConfig{
			Logger:         logger,
			Verifier:       verifier,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "storage", cfg.Storage)
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
