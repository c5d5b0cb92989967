package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/cart-tracker/internal/apiclient"
	"github.com/rogerio-castellano/cart-tracker/internal/cart"
	"github.com/rogerio-castellano/cart-tracker/internal/config"
	"github.com/rogerio-castellano/cart-tracker/internal/db"
	api "github.com/rogerio-castellano/cart-tracker/internal/http"
	"github.com/rogerio-castellano/cart-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/cart-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/cart-tracker/internal/kv"
)

// @title Cart Tracker API
// @version 1.0
// @description REST API exposing the mobile shopping-cart state: persisted product-with-quantity records and add/increment/decrement operations.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()

	store, err := newKVStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up cart storage")
	}

	cartStore := cart.NewStore(store)
	if err := cartStore.Load(ctx); err != nil {
		logrus.WithError(err).Fatal("could not load persisted cart")
	}

	catalog := apiclient.New(cfg.APIBaseURL, cfg.Emulator)
	handlers.SetCatalogClient(catalog)
	logrus.WithField("base_url", catalog.BaseURL()).Info("catalog client configured")

	r := api.NewRouter(cartStore)
	logrus.WithField("addr", cfg.ListenAddr).Info("server running")
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		logrus.Fatal(err)
	}
}

func newKVStore(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.Storage {
	case "memory":
		return kv.NewInMemoryStore(), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("could not connect to redis: %w", err)
		}
		return kv.NewRedisStore(rdb), nil
	case "postgres":
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return kv.NewPostgresStore(database), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
