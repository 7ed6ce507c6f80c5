// Package config はアプリケーション設定を管理します。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// データベースドライバ
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// クライアント状態の保存先
const (
	StateBackendFile  = "file"
	StateBackendRedis = "redis"
)

// DefaultStateKey はクライアント状態を保存する固定キーです。
const DefaultStateKey = "japan-travel-prefectures"

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string

	// HTTPサーバーのポート
	Port string

	// 訪問記録DBのドライバとPostgreSQL接続文字列
	DBDriver    string
	DatabaseURL string

	// クライアント状態の保存先とキー
	StateBackend  string
	StateKey      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// エクスポートの保存先
	ArchiveDir      string
	ArchiveS3Bucket string
	ArchiveS3Prefix string
	// S3互換ストレージ用（未設定ならAWS既定）
	ArchiveS3Region    string
	ArchiveS3Endpoint  string
	ArchiveS3PathStyle bool

	// CORSで許可するオリジン
	CORSOrigin string

	// ビルド済みフロントエンドのディレクトリ（空なら配信しない）
	StaticDir string

	// ログ設定
	LogLevel  string
	LogFormat string
}

// LoadDotEnv は .env ファイルを環境変数に読み込みます。ファイルがなければ何もしません。
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// NewConfig は環境変数から設定を読み込み、Configインスタンスを生成します。
func NewConfig() (*Config, error) {
	// データディレクトリの設定
	dataDir := getenv("TABIMAP_DATA_DIR", filepath.Join(".", "data"))

	// ポートの設定（PORT は旧構成との互換用）
	port := getenv("TABIMAP_SERVER_PORT", getenv("PORT", "3001"))

	redisDB := 0
	if v := os.Getenv("TABIMAP_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid TABIMAP_REDIS_DB: %q", v)
		}
		redisDB = n
	}

	cfg := &Config{
		DataDir:            dataDir,
		Port:               port,
		DBDriver:           getenv("TABIMAP_DB_DRIVER", DriverSQLite),
		DatabaseURL:        os.Getenv("TABIMAP_DATABASE_URL"),
		StateBackend:       getenv("TABIMAP_STATE_BACKEND", StateBackendFile),
		StateKey:           getenv("TABIMAP_STATE_KEY", DefaultStateKey),
		RedisAddr:          getenv("TABIMAP_REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:      os.Getenv("TABIMAP_REDIS_PASSWORD"),
		RedisDB:            redisDB,
		ArchiveDir:         getenv("TABIMAP_ARCHIVE_DIR", filepath.Join(dataDir, "exports")),
		ArchiveS3Bucket:    os.Getenv("TABIMAP_ARCHIVE_S3_BUCKET"),
		ArchiveS3Prefix:    os.Getenv("TABIMAP_ARCHIVE_S3_PREFIX"),
		ArchiveS3Region:    os.Getenv("TABIMAP_ARCHIVE_S3_REGION"),
		ArchiveS3Endpoint:  os.Getenv("TABIMAP_ARCHIVE_S3_ENDPOINT"),
		ArchiveS3PathStyle: strings.EqualFold(os.Getenv("TABIMAP_ARCHIVE_S3_PATH_STYLE"), "true"),
		CORSOrigin:         getenv("TABIMAP_CORS_ORIGIN", "*"),
		StaticDir:          os.Getenv("TABIMAP_STATIC_DIR"),
		LogLevel:           getenv("TABIMAP_LOG_LEVEL", "info"),
		LogFormat:          getenv("TABIMAP_LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は列挙値と必須項目を検証します。
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("TABIMAP_DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown TABIMAP_DB_DRIVER: %q", c.DBDriver)
	}

	switch c.StateBackend {
	case StateBackendFile, StateBackendRedis:
	default:
		return fmt.Errorf("unknown TABIMAP_STATE_BACKEND: %q", c.StateBackend)
	}

	if c.StateKey == "" {
		return errors.New("TABIMAP_STATE_KEY must not be empty")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
