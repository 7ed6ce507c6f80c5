// Package store は、訪問記録の永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stsysd/tabimap/db"
	"github.com/stsysd/tabimap/model"
)

// MigrationFunc はデータベースのマイグレーションを実行する関数の型です。
type MigrationFunc func(*sql.DB) error

// SQLiteStore はSQLiteを使用したVisitStoreの実装です。
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
}

// NewSQLiteStore は新しいSQLiteStoreを作成します。
func NewSQLiteStore(dataDir string, migrate MigrationFunc) (*SQLiteStore, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// SQLiteデータベースファイルのパス
	dbPath := filepath.Join(dataDir, "visits.db")

	// SQLiteデータベースへの接続
	conn, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// マイグレーションの実行
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return NewSQLiteStoreWithConn(conn), nil
}

// NewSQLiteStoreWithConn は既存の接続からSQLiteStoreを作成します。
func NewSQLiteStoreWithConn(conn *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
	}
}

// ListVisits はすべての訪問記録を取得します。
func (s *SQLiteStore) ListVisits(ctx context.Context) ([]*model.Visit, error) {
	// sqlcで生成されたクエリを使用
	rows, err := s.queries.ListVisits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	// 結果の変換（空の場合も空スライスを返す）
	visits := make([]*model.Visit, 0, len(rows))
	for _, row := range rows {
		visit, err := model.LoadVisit(row.ID, row.CityID, row.VisitedAt, row.Notes)
		if err != nil {
			return nil, fmt.Errorf("failed to load visit: %w", err)
		}
		visits = append(visits, visit)
	}
	return visits, nil
}

// UpsertVisit は訪問記録を挿入または置換します。
func (s *SQLiteStore) UpsertVisit(ctx context.Context, cityID, notes string) (*model.Visit, error) {
	// トランザクションの開始
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// トランザクションをロールバックするための遅延関数
	defer func() {
		if tx != nil {
			tx.Rollback() // 成功した場合は既にnilになっているためエラーは無視
		}
	}()

	queriesWithTx := s.queries.WithTx(tx)

	// INSERT OR REPLACE は既存行を削除して新しい行を挿入する
	if _, err := queriesWithTx.UpsertVisit(ctx, db.UpsertVisitParams{
		CityID: cityID,
		Notes:  notes,
	}); err != nil {
		return nil, fmt.Errorf("failed to upsert visit: %w", err)
	}

	// 採番されたIDと既定の visited_at を読み戻す
	row, err := queriesWithTx.GetVisit(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("failed to read upserted visit: %w", err)
	}

	// トランザクションのコミット
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil // コミットが成功したのでnilにして遅延関数でのロールバックを防ぐ

	return model.LoadVisit(row.ID, row.CityID, row.VisitedAt, row.Notes)
}

// DeleteVisit は指定した都市の訪問記録を削除します。存在しない場合は0件を返します。
func (s *SQLiteStore) DeleteVisit(ctx context.Context, cityID string) (int64, error) {
	result, err := s.queries.DeleteVisit(ctx, cityID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete visit: %w", err)
	}

	// 削除された行数を確認
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}

// VisitExists は訪問記録の存在を確認します。
func (s *SQLiteStore) VisitExists(ctx context.Context, cityID string) (bool, error) {
	exists, err := s.queries.VisitExists(ctx, cityID)
	if err != nil {
		return false, fmt.Errorf("failed to check visit: %w", err)
	}
	return exists != 0, nil
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
