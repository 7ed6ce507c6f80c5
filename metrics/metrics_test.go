package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandler(t *testing.T) {
	m := New()
	m.RequestsTotal.WithLabelValues("GET /api/health", "200").Inc()
	m.Mutations.WithLabelValues("toggle").Add(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Mutations.WithLabelValues("toggle")))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "tabimap_http_requests_total"))
	assert.True(t, strings.Contains(string(body), `kind="toggle"`))
}

func TestNewUsesIsolatedRegistry(t *testing.T) {
	// 同一プロセスで複数回生成しても登録が衝突しないこと
	a := New()
	b := New()
	a.PersistFailures.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.PersistFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.PersistFailures))
}
