// Package store は、訪問記録の永続化機能を提供します。
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stsysd/tabimap/model"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS visits (
	id BIGSERIAL PRIMARY KEY,
	city_id TEXT NOT NULL UNIQUE,
	visited_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	notes TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_visits_visited_at ON visits (visited_at);
`

// 置換時もSQLiteの INSERT OR REPLACE と同様にIDと visited_at を振り直す
const postgresUpsert = `
INSERT INTO visits (city_id, notes)
VALUES ($1, $2)
ON CONFLICT (city_id) DO UPDATE
SET id = nextval(pg_get_serial_sequence('visits', 'id')),
	visited_at = now(),
	notes = EXCLUDED.notes
RETURNING id, city_id, visited_at, notes
`

// PostgresStore はPostgreSQLを使用したVisitStoreの実装です。
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore は接続プールを作成し、テーブルを初期化します。
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	s := NewPostgresStoreWithPool(pool)
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresStoreWithPool は既存の接続プールからPostgresStoreを作成します。
func NewPostgresStoreWithPool(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate は visits テーブルを作成します。
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to initialize visits table: %w", err)
	}
	return nil
}

// ListVisits はすべての訪問記録を取得します。
func (s *PostgresStore) ListVisits(ctx context.Context) ([]*model.Visit, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, city_id, visited_at, notes
		FROM visits
		ORDER BY visited_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	defer rows.Close()

	visits := make([]*model.Visit, 0)
	for rows.Next() {
		var v model.Visit
		if err := rows.Scan(&v.ID, &v.CityID, &v.VisitedAt, &v.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visits: %w", err)
	}
	return visits, nil
}

// UpsertVisit は訪問記録を挿入または置換します。
func (s *PostgresStore) UpsertVisit(ctx context.Context, cityID, notes string) (*model.Visit, error) {
	var v model.Visit
	err := s.pool.QueryRow(ctx, postgresUpsert, cityID, notes).Scan(&v.ID, &v.CityID, &v.VisitedAt, &v.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert visit: %w", err)
	}
	return &v, nil
}

// DeleteVisit は指定した都市の訪問記録を削除します。
func (s *PostgresStore) DeleteVisit(ctx context.Context, cityID string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM visits WHERE city_id = $1`, cityID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete visit: %w", err)
	}
	return tag.RowsAffected(), nil
}

// VisitExists は訪問記録の存在を確認します。
func (s *PostgresStore) VisitExists(ctx context.Context, cityID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM visits WHERE city_id = $1)`, cityID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check visit: %w", err)
	}
	return exists, nil
}

// Close は接続プールを閉じます。
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
