package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"parcelverge/internal/auth"
	"parcelverge/internal/cache"
	"parcelverge/internal/config"
	"parcelverge/internal/db"
	"parcelverge/internal/kafka"
	"parcelverge/internal/logger"
	"parcelverge/internal/repository/postgresql"
	"parcelverge/internal/server"
	"parcelverge/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	zl := logger.New(false)
	defer func() { _ = zl.Sync() }()

	database, err := db.Connect(ctx, cfg.DSN())
	if err != nil {
		zl.Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	parcelRepo := postgresql.NewParcelRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	reviewRepo := postgresql.NewReviewRepo(database)
	historyRepo := postgresql.NewHistoryRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo(database)

	profiles := cache.NewProfileCache()
	if err := profiles.Warm(ctx, userRepo, storage.RoleDeliveryPerson); err != nil {
		zl.Warn("profile cache warmup failed", zap.Error(err))
	}

	stg := storage.NewPostgresStorage(parcelRepo, userRepo, reviewRepo, historyRepo, profiles)

	issuer := auth.NewIssuer(cfg.JWTSecret)

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers)
	} else {
		zl.Warn("no kafka brokers configured, audit messages go to the log")
		producer = kafka.NewConsoleProducer(zl)
	}
	defer func() { _ = producer.Close() }()

	publisher := kafka.NewPublisher(database, outboxRepo, producer, zl)

	sink := server.NewOutboxSink(outboxRepo, cfg.KafkaAuditTopic)
	srv := server.New(stg, issuer, sink, zl)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run(groupCtx, cfg.HTTPPort)
	})

	group.Go(func() error {
		err := publisher.Run(groupCtx)
		if err == context.Canceled {
			return nil
		}
		return err
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		zl.Fatal("server exited with error", zap.Error(err))
	}
	zl.Info("server gracefully stopped")
}
