// Command storefrontd runs the storefront API server against the built-in
// demo catalog backend.
//
// Run:
//
//	go run ./cmd/storefrontd
//
// Generate the OpenAPI spec:
//
//	go run ./cmd/storefrontd -spec                   — print to stdout
//	go run ./cmd/storefrontd -spec -o openapi.json   — write to file
//
// Every data route requires the tenant header, e.g.:
//
//	curl -H 'x-shop-domain: demo.myshopify.com' http://localhost:8080/info
//	curl -H 'x-shop-domain: demo.myshopify.com' http://localhost:8080/products/all
//
// Configuration is read from the environment (a .env file is loaded if
// present): ADDR, CACHE_TTL, RATE_LIMIT, RATE_BURST, LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopgrid/storefront-api/api"
	"github.com/shopgrid/storefront-api/routes"
	"github.com/shopgrid/storefront-api/storefront"
	"github.com/shopgrid/storefront-api/storefront/cache"
	"github.com/shopgrid/storefront-api/storefront/storefronttest"
	"github.com/shopgrid/storefront-api/tenant"
)

type config struct {
	Addr      string
	CacheTTL  time.Duration
	RateLimit float64
	RateBurst int
	LogLevel  slog.Level
}

func loadConfig() config {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config{
		Addr:      envStr("ADDR", ":8080"),
		CacheTTL:  envDuration("CACHE_TTL", 5*time.Minute),
		RateLimit: envFloat("RATE_LIMIT", 50),
		RateBurst: envInt("RATE_BURST", 100),
		LogLevel:  slog.LevelInfo,
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			slog.Warn("invalid LOG_LEVEL, using info", "value", lvl)
		}
	}

	return cfg
}

func main() {
	specFlag := flag.Bool("spec", false, "Print the OpenAPI spec to stdout and exit")
	outFlag := flag.String("o", "", "Output file for the spec (requires -spec)")
	flag.Parse()

	cfg := loadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	r := newRouter(cfg, logger)

	if *specFlag {
		if err := writeSpec(r, *outFlag); err != nil {
			logger.Error("spec generation failed", "err", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting server", "addr", cfg.Addr, "cache_ttl", cfg.CacheTTL)

	if err := r.ListenAndServe(ctx, cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
	}

	logger.Info("server stopped")
}

func newRouter(cfg config, logger *slog.Logger) *api.Router {
	store := cache.NewStore()

	// Each request gets a fresh handle over the shared TTL cache; the demo
	// catalog stands in for a real storefront client.
	resolver := tenant.NewResolver(func(domain string, opts tenant.Options) storefront.Client {
		return store.Wrap(storefronttest.New(domain), opts.CacheTTL)
	}, tenant.Options{CacheTTL: cfg.CacheTTL})

	r := api.New(
		api.WithTitle("Storefront API"),
		api.WithVersion("1.0.0"),
	)

	metrics := api.NewMetrics(prometheus.NewRegistry())

	r.Use(api.Recovery())
	r.Use(api.RequestID())
	r.Use(api.Logger(logger))
	r.Use(metrics.Middleware())
	r.Use(api.RateLimit(api.RateLimitConfig{
		Rate:  cfg.RateLimit,
		Burst: cfg.RateBurst,
	}))

	routes.Mount(r, resolver)

	r.ServeSpec("/openapi.json")
	r.ServeSpecYAML("/openapi.yaml")
	r.Handle(http.MethodGet, "/metrics", metrics.Handler())

	api.Get(r, "/healthz", handleHealth,
		api.WithSummary("Health check"),
		api.WithTags("ops"),
	)

	return r
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func handleHealth(_ context.Context, _ *api.Void) (*healthResponse, error) {
	return &healthResponse{Status: "ok", Time: time.Now()}, nil
}

func writeSpec(r *api.Router, outFile string) error {
	w := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile) //nolint:gosec // user-provided CLI flag
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Error("failed to close output file", "err", err)
			}
		}()
		w = f
	}
	return r.WriteSpec(w)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
