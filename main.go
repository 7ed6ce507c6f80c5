// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/stsysd/tabimap/api"
	"github.com/stsysd/tabimap/archive"
	"github.com/stsysd/tabimap/config"
	"github.com/stsysd/tabimap/db"
	"github.com/stsysd/tabimap/logger"
	"github.com/stsysd/tabimap/metrics"
	"github.com/stsysd/tabimap/state"
	"github.com/stsysd/tabimap/store"
	"github.com/stsysd/tabimap/tracker"
)

func main() {
	// .env があれば環境変数に読み込む
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// 設定の読み込み
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat, "tabimap")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()
	zap.ReplaceGlobals(lg)

	ctx := context.Background()

	visits, err := openVisitStore(ctx, cfg)
	if err != nil {
		lg.Fatal("Failed to initialize visit store", zap.Error(err))
	}
	defer visits.Close()

	stateStore, err := openStateStore(ctx, cfg)
	if err != nil {
		lg.Fatal("Failed to initialize state store", zap.Error(err))
	}
	defer stateStore.Close()

	m := metrics.New()
	tr, err := tracker.New(ctx, stateStore, lg.Named("tracker"), tracker.WithMetrics(m))
	if err != nil {
		lg.Fatal("Failed to initialize tracker", zap.Error(err))
	}

	sink, err := openArchiveSink(ctx, cfg)
	if err != nil {
		lg.Fatal("Failed to initialize archive sink", zap.Error(err))
	}

	// サーバーインスタンスの作成
	server := api.NewServer(visits, tr, cfg,
		api.WithLogger(lg.Named("api")),
		api.WithMetrics(m),
		api.WithArchive(sink),
	)

	// サーバーの起動
	if err := server.Run(":" + cfg.Port); err != nil {
		lg.Fatal("Server stopped", zap.Error(err))
	}
}

func openVisitStore(ctx context.Context, cfg *config.Config) (store.VisitStore, error) {
	if cfg.DBDriver == config.DriverPostgres {
		return store.NewPostgresStore(ctx, cfg.DatabaseURL)
	}
	// SQLiteストアの初期化（マイグレーション関数を渡す）
	return store.NewSQLiteStore(cfg.DataDir, db.Migrate)
}

func openStateStore(ctx context.Context, cfg *config.Config) (state.Store, error) {
	if cfg.StateBackend == config.StateBackendRedis {
		return state.NewRedisStore(ctx, state.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Key:      cfg.StateKey,
		})
	}
	return state.NewFileStore(cfg.DataDir, cfg.StateKey)
}

func openArchiveSink(ctx context.Context, cfg *config.Config) (archive.Sink, error) {
	if cfg.ArchiveS3Bucket != "" {
		return archive.NewS3Sink(ctx, archive.S3Config{
			Bucket:    cfg.ArchiveS3Bucket,
			Prefix:    cfg.ArchiveS3Prefix,
			Region:    cfg.ArchiveS3Region,
			Endpoint:  cfg.ArchiveS3Endpoint,
			PathStyle: cfg.ArchiveS3PathStyle,
		})
	}
	return archive.NewDirSink(cfg.ArchiveDir)
}
