package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stsysd/tabimap/db"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// テスト用の一時ディレクトリに本番と同じマイグレーションで初期化
	store, err := NewSQLiteStore(t.TempDir(), db.Migrate)
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestUpsertAndListVisits(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	visit, err := store.UpsertVisit(ctx, "kyoto-1", "Kinkaku-ji")
	require.NoError(t, err)
	assert.Positive(t, visit.ID)
	assert.Equal(t, "kyoto-1", visit.CityID)
	assert.Equal(t, "Kinkaku-ji", visit.Notes)
	assert.False(t, visit.VisitedAt.IsZero())

	_, err = store.UpsertVisit(ctx, "osaka-1", "")
	require.NoError(t, err)

	visits, err := store.ListVisits(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	// 同一秒内では後から追加したものが先頭になること
	assert.Equal(t, "osaka-1", visits[0].CityID)
	assert.Equal(t, "kyoto-1", visits[1].CityID)
}

func TestListVisitsEmpty(t *testing.T) {
	store := setupTestStore(t)

	visits, err := store.ListVisits(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, visits)
	assert.Empty(t, visits)
}

func TestUpsertVisitReplacesRow(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first, err := store.UpsertVisit(ctx, "kyoto-1", "first")
	require.NoError(t, err)
	second, err := store.UpsertVisit(ctx, "kyoto-1", "second")
	require.NoError(t, err)

	// 同じ city_id は1行のみで、行ごと置き換わること
	visits, err := store.ListVisits(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "second", visits[0].Notes)
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, second.ID, visits[0].ID)
}

func TestDeleteVisit(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertVisit(ctx, "kyoto-1", "")
	require.NoError(t, err)

	changes, err := store.DeleteVisit(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	// 存在しない場合はエラーではなく0件
	changes, err = store.DeleteVisit(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
}

func TestVisitExists(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	exists, err := store.VisitExists(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.UpsertVisit(ctx, "kyoto-1", "")
	require.NoError(t, err)
	exists, err = store.VisitExists(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.DeleteVisit(ctx, "kyoto-1")
	require.NoError(t, err)
	exists, err = store.VisitExists(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestConcurrentUpsertsKeepOneRow(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.UpsertVisit(ctx, "tokyo-1", "race"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Logf("upsert error under contention: %v", err)
	}

	visits, err := store.ListVisits(ctx)
	require.NoError(t, err)
	assert.Len(t, visits, 1)
}

func TestSQLiteStoreStorageErrors(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	store := NewSQLiteStoreWithConn(conn)
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	mock.ExpectQuery(`SELECT id, city_id, visited_at, notes`).WillReturnError(boom)
	_, err = store.ListVisits(ctx)
	assert.ErrorIs(t, err, boom)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT OR REPLACE INTO visits`).
		WithArgs("kyoto-1", "").
		WillReturnError(boom)
	mock.ExpectRollback()
	_, err = store.UpsertVisit(ctx, "kyoto-1", "")
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec(`DELETE FROM visits`).WithArgs("kyoto-1").WillReturnError(boom)
	_, err = store.DeleteVisit(ctx, "kyoto-1")
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("kyoto-1").WillReturnError(boom)
	_, err = store.VisitExists(ctx, "kyoto-1")
	assert.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStoreDeleteReportsRowsAffected(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	store := NewSQLiteStoreWithConn(conn)

	mock.ExpectExec(`DELETE FROM visits`).
		WithArgs("kyoto-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	changes, err := store.DeleteVisit(context.Background(), "kyoto-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)
	require.NoError(t, mock.ExpectationsWereMet())
}
