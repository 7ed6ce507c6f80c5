package visitclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stsysd/tabimap/api"
	"github.com/stsysd/tabimap/config"
	"github.com/stsysd/tabimap/db"
	"github.com/stsysd/tabimap/state"
	"github.com/stsysd/tabimap/store"
	"github.com/stsysd/tabimap/tracker"
	"github.com/stsysd/tabimap/visitclient"
)

func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()

	visits, err := store.NewSQLiteStore(dir, db.Migrate)
	require.NoError(t, err)
	t.Cleanup(func() { visits.Close() })

	st, err := state.NewFileStore(dir, config.DefaultStateKey)
	require.NoError(t, err)
	tr, err := tracker.New(context.Background(), st, zap.NewNop())
	require.NoError(t, err)

	cfg := &config.Config{DataDir: dir, Port: "3001", CORSOrigin: "*"}
	ts := httptest.NewServer(api.NewServer(visits, tr, cfg))
	t.Cleanup(ts.Close)
	return ts
}

func TestClientVisitLifecycle(t *testing.T) {
	ts := newTestAPI(t)
	client := visitclient.New(ts.URL, ts.Client())
	ctx := context.Background()

	visits, err := client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, visits)

	added, err := client.Add(ctx, "kyoto-1", "Fushimi Inari")
	require.NoError(t, err)
	assert.Equal(t, "kyoto-1", added.CityID)
	assert.Equal(t, "Fushimi Inari", added.Notes)
	assert.NotZero(t, added.ID)

	_, err = client.Add(ctx, "osaka-1", "")
	require.NoError(t, err)

	visits, err = client.List(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "osaka-1", visits[0].CityID)

	visited, err := client.IsVisited(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.True(t, visited)

	changes, err := client.Remove(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	changes, err = client.Remove(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.Zero(t, changes)

	visited, err = client.IsVisited(ctx, "kyoto-1")
	require.NoError(t, err)
	assert.False(t, visited)
}

func TestClientHealth(t *testing.T) {
	ts := newTestAPI(t)
	client := visitclient.New(ts.URL+"/", nil)

	h, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
	assert.NotEmpty(t, h.Timestamp)
}

func TestClientStatusError(t *testing.T) {
	ts := newTestAPI(t)
	client := visitclient.New(ts.URL, ts.Client())

	_, err := client.Add(context.Background(), "", "")
	require.Error(t, err)

	var se *visitclient.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.NotEmpty(t, se.Message)
	assert.Contains(t, se.Error(), "failed to add visit")
}

func TestClientTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := visitclient.New(url, nil)
	_, err := client.Health(context.Background())
	require.Error(t, err)

	var se *visitclient.StatusError
	assert.False(t, errors.As(err, &se))
}

func TestNewFromEnv(t *testing.T) {
	ts := newTestAPI(t)
	t.Setenv("TABIMAP_API_URL", ts.URL)

	client := visitclient.NewFromEnv(nil)
	h, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
}
