// Package db は訪問記録テーブルのマイグレーションとsqlcで生成したクエリを提供します。
package db

//go:generate go tool sqlc generate -f ../sqlc.yaml

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed schema/*.sql
var embedMigrations embed.FS

// Migrate はデータベースに対してマイグレーションを実行します。
func Migrate(conn *sql.DB) error {
	// 書き込み競合時に即時エラーにしない
	if _, err := conn.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// goose の設定
	goose.SetBaseFS(embedMigrations)

	// SQLite 用に goose を設定
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	// マイグレーションを実行
	if err := goose.Up(conn, "schema"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
