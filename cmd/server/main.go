package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ovsienko/orderdesk/internal/config"
	"github.com/ovsienko/orderdesk/internal/db"
	"github.com/ovsienko/orderdesk/internal/es"
	"github.com/ovsienko/orderdesk/internal/httpserver"
	"github.com/ovsienko/orderdesk/internal/logging"
	authmw "github.com/ovsienko/orderdesk/internal/middleware/auth"
	loggingmw "github.com/ovsienko/orderdesk/internal/middleware/logging"
	"github.com/ovsienko/orderdesk/internal/mykafka"
	"github.com/ovsienko/orderdesk/internal/repo"
	"github.com/ovsienko/orderdesk/internal/service"
)

func main() {
	cfg := config.MustLoad()

	logger := logging.New(cfg.LogLevel)

	database, err := db.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = mykafka.NewProducer(cfg.KafkaBrokers)
	} else {
		logger.Warn("KAFKA_BROKERS not set, domain events disabled")
	}

	rp := &repo.GormRepo{DB: database}
	authSvc := &service.AuthService{Repo: rp, JWTSecret: cfg.JWTSecret}
	orderSvc := &service.OrderService{Repo: rp}
	adminSvc := &service.AdminService{Repo: rp}

	deps := &httpserver.Deps{
		AuthHandler:  &httpserver.AuthHTTP{Svc: authSvc, Producer: producer},
		OrderHandler: &httpserver.OrderHTTP{Svc: orderSvc, Producer: producer},
		AdminHandler: &httpserver.AdminHTTP{Svc: adminSvc, Producer: producer},
		AuthMW:       authmw.New(authSvc),
	}

	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		deps.OrderHandler.ES = esClient
		deps.SearchHandler = &httpserver.SearchHTTP{ES: esClient}
	} else {
		logger.Warn("ES_URL not set, order search disabled")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
