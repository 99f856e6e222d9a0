package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cmu-health/assets"
	"cmu-health/authentication"
	"cmu-health/configuration"
	"cmu-health/controllers"
	"cmu-health/models"
	"cmu-health/monitoring"
	"cmu-health/registry"
	"cmu-health/routes"
	"cmu-health/services"
)

func main() {
	cfg, err := configuration.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := configuration.NewLogger(cfg.App.LogLevel, cfg.App.Env)
	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, cleanup, err := Init(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize")
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: routes.UserRoutes(h),
	}

	go func() {
		log.WithFields(logrus.Fields{"addr": srv.Addr, "version": cfg.App.Version}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

// Init builds the registry and everything that hangs off it.
func Init(ctx context.Context, cfg *configuration.Config, log *logrus.Logger) (*controllers.Controller, func(), error) {
	cleanup := func() {}

	var store authentication.TokenStore = authentication.NewMemoryTokenStore()
	if cfg.Redis.Enabled {
		client, err := configuration.NewRedisClient(ctx, cfg, log)
		if err != nil {
			return nil, cleanup, err
		}
		store = authentication.NewRedisTokenStore(client)
		cleanup = func() { client.Close() }
	}

	reg := registry.New()
	admin, err := services.NewAdminService(reg, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, log)
	if err != nil {
		return nil, cleanup, err
	}

	logo, err := assets.LoadLogo(cfg.Assets.LogoPath)
	if err != nil {
		log.WithError(err).Warn("starting without logo")
	}

	h := &controllers.Controller{
		Booking:     services.NewBookingService(reg, log),
		Admin:       admin,
		AdminAuth:   authentication.NewAdminAuth(cfg.Auth.AdminKey, cfg.Auth.TokenTTL, store, log),
		PatientAuth: authentication.NewPatientAuth(cfg.Auth.PatientKey, cfg.Auth.TokenTTL, store, log),
		Metrics:     monitoring.NewMetrics(reg.Departments(), models.AvailabilityStatuses),
		Log:         log.WithField("component", "http"),
		Logo:        logo,
	}
	if cfg.MailEnabled() {
		h.Mailer = controllers.NewGomailMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	}
	return h, cleanup, nil
}
