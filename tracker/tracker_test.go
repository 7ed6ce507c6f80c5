package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stsysd/tabimap/catalog"
	"github.com/stsysd/tabimap/config"
	"github.com/stsysd/tabimap/metrics"
	"github.com/stsysd/tabimap/model"
	"github.com/stsysd/tabimap/state"
)

var fixedNow = time.Date(2024, 5, 3, 9, 30, 0, 0, time.UTC)

// failingStore は保存に常に失敗する状態ストアです。
type failingStore struct {
	loaded model.Collection
}

func (s *failingStore) Load(context.Context) (model.Collection, bool, error) {
	return s.loaded, s.loaded != nil, nil
}

func (s *failingStore) Save(context.Context, model.Collection) error {
	return errors.New("quota exceeded")
}

func (s *failingStore) Close() error { return nil }

func newFileTracker(t *testing.T, dir string, opts ...Option) (*Tracker, *state.FileStore) {
	t.Helper()
	store, err := state.NewFileStore(dir, config.DefaultStateKey)
	require.NoError(t, err)
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	tr, err := New(context.Background(), store, zap.NewNop(), opts...)
	require.NoError(t, err)
	return tr, store
}

func TestNewStartsFromInitial(t *testing.T) {
	tr, _ := newFileTracker(t, t.TempDir())
	assert.Equal(t, catalog.Initial(), tr.Snapshot())
}

func TestNewFallsBackOnCorruptState(t *testing.T) {
	dir := t.TempDir()
	store, err := state.NewFileStore(dir, config.DefaultStateKey)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte("not json"), 0644))

	tr, err := New(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, catalog.Initial(), tr.Snapshot())
}

func TestNewRestoresAllPrefectures(t *testing.T) {
	tests := map[string]string{
		"null": `null`,
		"空配列":  `[]`,
		"一部のみ": `[{"id":"tokyo","districts":[{"id":"tokyo-district-0","locations":[{"id":"l1","name":"Shibuya Crossing","visited":true}]}]}]`,
	}
	for name, blob := range tests {
		t.Run(name, func(t *testing.T) {
			store, err := state.NewFileStore(t.TempDir(), config.DefaultStateKey)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(store.Path(), []byte(blob), 0644))

			tr, err := New(context.Background(), store, zap.NewNop())
			require.NoError(t, err)
			assert.Len(t, tr.Snapshot(), 47)

			_, err = tr.Prefecture("tokyo")
			assert.NoError(t, err)
			_, err = tr.Prefecture("okinawa")
			assert.NoError(t, err)
		})
	}
}

func TestAddAndTogglePersist(t *testing.T) {
	dir := t.TempDir()
	tr, _ := newFileTracker(t, dir)
	ctx := context.Background()

	tokyo, loc, err := tr.AddLocation(ctx, "tokyo", "tokyo-district-0", "Shibuya Crossing")
	require.NoError(t, err)
	assert.True(t, loc.Visited)
	assert.Equal(t, model.StatusPartial, model.PrefectureStatus(tokyo))

	tokyo, err = tr.ToggleLocation(ctx, "tokyo", "tokyo-district-0", loc.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusUnvisited, model.PrefectureStatus(tokyo))

	// 別インスタンスで読み直しても同じ状態になること
	reloaded, _ := newFileTracker(t, dir)
	assert.Equal(t, tr.Snapshot(), reloaded.Snapshot())
	got, err := reloaded.Prefecture("tokyo")
	require.NoError(t, err)
	require.Len(t, got.Districts[0].Locations, 1)
	assert.False(t, got.Districts[0].Locations[0].Visited)
}

func TestUnknownIDs(t *testing.T) {
	tr, _ := newFileTracker(t, t.TempDir())
	ctx := context.Background()

	_, err := tr.Prefecture("atlantis")
	assert.ErrorIs(t, err, model.ErrPrefectureNotFound)

	_, err = tr.ToggleLocation(ctx, "atlantis", "x", "y")
	assert.ErrorIs(t, err, model.ErrPrefectureNotFound)
	_, err = tr.ToggleLocation(ctx, "tokyo", "x", "y")
	assert.ErrorIs(t, err, model.ErrDistrictNotFound)
	_, err = tr.ToggleLocation(ctx, "tokyo", "tokyo-district-0", "y")
	assert.ErrorIs(t, err, model.ErrLocationNotFound)

	_, _, err = tr.AddLocation(ctx, "tokyo", "tokyo-district-0", "   ")
	var validationErr *model.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	assert.Equal(t, catalog.Initial(), tr.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	tr, _ := newFileTracker(t, t.TempDir())
	_, _, err := tr.AddLocation(context.Background(), "tokyo", "tokyo-district-0", "Shibuya Crossing")
	require.NoError(t, err)

	snap := tr.Snapshot()
	for i := range snap {
		for j := range snap[i].Districts {
			for k := range snap[i].Districts[j].Locations {
				snap[i].Districts[j].Locations[k].Visited = false
			}
		}
	}
	assert.Equal(t, 1, tr.Summary().VisitedLocations)
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	tr, _ := newFileTracker(t, dir)
	ctx := context.Background()

	_, _, err := tr.AddLocation(ctx, "tokyo", "tokyo-district-0", "Shibuya Crossing")
	require.NoError(t, err)
	require.NoError(t, tr.Reset(ctx))
	assert.Equal(t, catalog.Initial(), tr.Snapshot())

	reloaded, _ := newFileTracker(t, dir)
	assert.Equal(t, catalog.Initial(), reloaded.Snapshot())
}

func TestExportImportRoundTrip(t *testing.T) {
	tr, _ := newFileTracker(t, t.TempDir())
	ctx := context.Background()
	_, _, err := tr.AddLocation(ctx, "kyoto", "kyoto-district-0", "Kinkaku-ji")
	require.NoError(t, err)

	name, data, err := tr.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, "japan-travel-data-2024-05-03.json", name)
	assert.True(t, json.Valid(data))
	exported := tr.Snapshot()

	require.NoError(t, tr.Reset(ctx))
	imported, err := tr.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, exported, imported)
	assert.Equal(t, exported, tr.Snapshot())
}

func TestImportInvalidLeavesState(t *testing.T) {
	tr, _ := newFileTracker(t, t.TempDir())
	ctx := context.Background()
	_, _, err := tr.AddLocation(ctx, "kyoto", "kyoto-district-0", "Kinkaku-ji")
	require.NoError(t, err)
	before := tr.Snapshot()

	_, err = tr.Import(ctx, []byte(`{"prefectures": `))
	assert.ErrorIs(t, err, model.ErrInvalidImport)
	_, err = tr.Import(ctx, []byte(`{"data": []}`))
	assert.ErrorIs(t, err, model.ErrInvalidImport)
	assert.Equal(t, before, tr.Snapshot())
}

func TestReport(t *testing.T) {
	tr, _ := newFileTracker(t, t.TempDir())
	_, _, err := tr.AddLocation(context.Background(), "kyoto", "kyoto-district-0", "Kinkaku-ji")
	require.NoError(t, err)

	name, text := tr.Report()
	assert.Equal(t, "japan-travel-report-2024-05-03.txt", name)
	assert.Contains(t, text, "Kinkaku-ji")
	assert.True(t, strings.Contains(text, "Kyoto (京都府) - Partially visited"))
}

func TestPersistFailureKeepsMutation(t *testing.T) {
	m := metrics.New()
	tr, err := New(context.Background(), &failingStore{}, zap.NewNop(), WithMetrics(m))
	require.NoError(t, err)

	tokyo, loc, err := tr.AddLocation(context.Background(), "tokyo", "tokyo-district-0", "Shibuya Crossing")
	assert.Error(t, err)
	assert.NotEmpty(t, loc.ID)
	assert.Equal(t, model.StatusPartial, model.PrefectureStatus(tokyo))

	// メモリ上の変更は巻き戻さない
	got, err := tr.Prefecture("tokyo")
	require.NoError(t, err)
	assert.Len(t, got.Districts[0].Locations, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("add_location")))
}

func TestConcurrentMutations(t *testing.T) {
	tr, _ := newFileTracker(t, t.TempDir())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := tr.AddLocation(ctx, "tokyo", "tokyo-district-0", "Spot")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := tr.Prefecture("tokyo")
	require.NoError(t, err)
	assert.Len(t, got.Districts[0].Locations, 20)
}
