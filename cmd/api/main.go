package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fauzanhilmi/hostel-mart/internal/catalog"
	"github.com/fauzanhilmi/hostel-mart/internal/config"
	"github.com/fauzanhilmi/hostel-mart/internal/delivery"
	"github.com/fauzanhilmi/hostel-mart/internal/httpx"
	"github.com/fauzanhilmi/hostel-mart/internal/logging"
	"github.com/fauzanhilmi/hostel-mart/internal/notify"
	"github.com/fauzanhilmi/hostel-mart/internal/orders"
	"github.com/fauzanhilmi/hostel-mart/internal/postgres"
	"github.com/fauzanhilmi/hostel-mart/internal/redisx"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.ServiceName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Error("db migrate", "err", err)
		os.Exit(1)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Webhook notifier
	notifier := notify.New(cfg.WebhookURL, 1024, log)
	notifier.Start(ctx)
	if !notifier.Enabled() {
		log.Warn("WEBHOOK_URL not set, order notifications disabled")
	}

	// Repos & handlers
	router := httpx.NewRouter()
	ph := &httpx.ProductsHandler{Store: &catalog.Repo{DB: db}, Redis: rdb, Log: log}
	ph.Register(router)
	oh := &httpx.OrdersHandler{Store: &orders.Repo{DB: db}, Notifier: notifier, Log: log}
	oh.Register(router)
	sh := &httpx.StatusHandler{Store: &delivery.Repo{DB: db}, Redis: rdb, Log: log}
	sh.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", "err", err)
			os.Exit(1)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	notifier.Close() // close inbox -> flush queued notifications
	cancel()
	notifier.WaitClosed()
}
