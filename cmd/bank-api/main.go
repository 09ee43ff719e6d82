package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/bank-backoffice/internal/assistant"
	"github.com/pribylovaa/bank-backoffice/internal/config"
	"github.com/pribylovaa/bank-backoffice/internal/events"
	bankhttp "github.com/pribylovaa/bank-backoffice/internal/http"
	"github.com/pribylovaa/bank-backoffice/internal/http/handlers"
	"github.com/pribylovaa/bank-backoffice/internal/service"
	"github.com/pribylovaa/bank-backoffice/internal/session"
	"github.com/pribylovaa/bank-backoffice/internal/storage/postgres"
	"github.com/pribylovaa/bank-backoffice/internal/token"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting bank-api", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	storage, err := postgres.New(rootCtx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	log.Info("storage_initialized")

	sessions, err := session.NewRedisStore(rootCtx, cfg.Redis.RedisURL, cfg.Redis.KeyPrefix)
	if err != nil {
		log.Error("session_store_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := sessions.Close(); cerr != nil {
			log.Warn("session_store_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	log.Info("session_store_initialized")

	var publisher events.Publisher = events.Noop{}
	if cfg.RabbitMQ.URL != "" {
		rp, err := events.NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Error("publisher_init_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		publisher = rp
		log.Info("publisher_initialized", slog.String("exchange", cfg.RabbitMQ.Exchange))
	}
	defer publisher.Close()

	svc := service.New(storage, sessions, token.New(cfg.Auth), cfg.Auth, service.WithPublisher(publisher))

	h := &handlers.Handlers{
		Auth:      svc,
		Customers: svc,
		Accounts:  svc,
		Cookie: handlers.CookieConfig{
			Name:   cfg.Auth.RefreshCookie,
			Path:   path.Join("/", cfg.HTTP.BasePath, "auth"),
			Secure: cfg.Auth.CookieSecure,
		},
		ChatTimeout: cfg.Assistant.RequestTimeout,
	}

	if cfg.Assistant.Enabled {
		llm := assistant.NewClient(cfg.Assistant.BaseURL, cfg.Assistant.RequestTimeout)
		h.Assistant = assistant.New(llm, assistant.NewTools(storage), cfg.Assistant)
		log.Info("assistant_enabled", slog.String("model", cfg.Assistant.Model))
	}

	apiHandler := bankhttp.NewRouter(h, svc, bankhttp.Options{
		Logger:         log,
		Timeout:        cfg.Timeouts.Service,
		BasePath:       cfg.HTTP.BasePath,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		LoginRateLimit: cfg.Auth.LoginRateLimit,
	})

	var ready int32 // 0: not ready; 1, ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := storage.Ping(ctx); err != nil {
			log.Warn("healthz_db_failed", slog.String("err", err.Error()))
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		if err := sessions.Ping(ctx); err != nil {
			log.Warn("healthz_redis_failed", slog.String("err", err.Error()))
			http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("bank_api_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
