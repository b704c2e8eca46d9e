package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokerhands/internal/auth"
	"github.com/robalobadob/pokerhands/internal/httpserver"
	"github.com/robalobadob/pokerhands/internal/metrics"
	"github.com/robalobadob/pokerhands/internal/platform/config"
	"github.com/robalobadob/pokerhands/internal/store"
)

// main wires config, storage and the HTTP server, then blocks until an
// interrupt and drains in-flight requests.
func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	opts := httpserver.Options{
		Cookie:         auth.CookieConfig{Name: cfg.CookieName, Secure: cfg.SecureCookies},
		Metrics:        metrics.New(),
		ClientOrigin:   cfg.ClientOrigin,
		RequestTimeout: cfg.RequestTimeout,
	}

	var db *sql.DB
	switch cfg.Store {
	case "memory":
		// guests only; accounts need the users table
		opts.Store = store.NewMemoryStore()
	default:
		var err error
		db, err = store.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
		}
		opts.Store = store.NewSQLiteStore(db)
		opts.Users = auth.NewUsers(db)
		opts.Tokens = auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpserver.New(opts).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("store", cfg.Store).Msg("starting poker server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if db != nil {
		_ = db.Close()
	}
	log.Info().Msg("server stopped")
}
