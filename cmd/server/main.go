package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/guardiao/gestao/internal/app"
	"github.com/guardiao/gestao/internal/auth"
	"github.com/guardiao/gestao/internal/config"
	"github.com/guardiao/gestao/internal/db"
	"github.com/guardiao/gestao/internal/jobs"
	"github.com/guardiao/gestao/internal/logging"
	"github.com/guardiao/gestao/internal/observability"
)

const release = "guardiao-gestao@1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Closer()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		lg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		lg.Base.Fatal("database", zap.Error(err))
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		lg.Base.Fatal("migrate", zap.Error(err))
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			lg.Base.Fatal("hash admin password", zap.Error(err))
		}
		created, err := db.EnsureAdminUser(ctx, database, cfg.AdminEmail, cfg.AdminName, hash)
		if err != nil {
			lg.Base.Fatal("seed admin", zap.Error(err))
		}
		if created {
			lg.Sugar.Infow("admin account created", "email", cfg.AdminEmail)
		}
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)

	runner := jobs.New(ctx)
	runner.Every(time.Minute, "db_ping", jobs.DBPing(database))

	srv := app.New(cfg, lg.Named("http"), database, tokens)
	srv.Start(ctx)
	lg.Sugar.Infow("listening", "addr", cfg.HTTPAddr, "env", cfg.Env)

	<-ctx.Done()
	lg.Sugar.Info("shutting down")
}
