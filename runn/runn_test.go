package runn

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/k1LoW/runn"
	"go.uber.org/zap"

	"github.com/stsysd/tabimap/api"
	"github.com/stsysd/tabimap/config"
	"github.com/stsysd/tabimap/db"
	"github.com/stsysd/tabimap/metrics"
	"github.com/stsysd/tabimap/state"
	"github.com/stsysd/tabimap/store"
	"github.com/stsysd/tabimap/tracker"
)

func TestRouter(t *testing.T) {
	t.Setenv("TABIMAP_DATA_DIR", t.TempDir())
	t.Setenv("TABIMAP_DB_DRIVER", config.DriverSQLite)
	t.Setenv("TABIMAP_STATE_BACKEND", config.StateBackendFile)

	// 設定の読み込み
	cfg, err := config.NewConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// SQLiteストアの初期化（マイグレーション関数を渡す）
	sqliteStore, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
	if err != nil {
		t.Fatalf("Failed to initialize SQLite store: %v", err)
	}
	defer sqliteStore.Close()

	stateStore, err := state.NewFileStore(cfg.DataDir, cfg.StateKey)
	if err != nil {
		t.Fatalf("Failed to initialize state store: %v", err)
	}
	defer stateStore.Close()

	ctx := context.Background()
	m := metrics.New()
	tr, err := tracker.New(ctx, stateStore, zap.NewNop(), tracker.WithMetrics(m))
	if err != nil {
		t.Fatalf("Failed to initialize tracker: %v", err)
	}

	// サーバーインスタンスの作成
	server := api.NewServer(sqliteStore, tr, cfg, api.WithMetrics(m))

	ts := httptest.NewServer(server)
	t.Cleanup(func() {
		ts.Close()
	})
	opts := []runn.Option{
		runn.T(t),
		runn.Runner("req", ts.URL),
	}
	o, err := runn.Load("./books/*.yml", opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err := o.RunN(ctx); err != nil {
		t.Fatal(err)
	}
}
