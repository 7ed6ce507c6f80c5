// Package api はtabimapのAPIサーバー実装を提供します。
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/stsysd/tabimap/archive"
	"github.com/stsysd/tabimap/config"
	"github.com/stsysd/tabimap/metrics"
	"github.com/stsysd/tabimap/model"
	"github.com/stsysd/tabimap/store"
	"github.com/stsysd/tabimap/tracker"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	router  *http.ServeMux
	handler http.Handler
	visits  store.VisitStore
	tracker *tracker.Tracker
	sink    archive.Sink
	config  *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option は Server の任意設定です。
type Option func(*Server)

// WithLogger はリクエストログとエラーログの出力先を設定します。
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics はHTTPメトリクスの記録と /metrics を有効にします。
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithArchive は /api/archive の保存先を設定します。
func WithArchive(sink archive.Sink) Option {
	return func(s *Server) {
		s.sink = sink
	}
}

// WithClock はヘルスチェックの時刻に使う時計を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: message,
		Code:  statusCode,
	})
}

// writeJSON はJSON形式でレスポンスを返却します。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("Error encoding response", zap.Error(err))
	}
}

// writeError はエラーの種類に応じたステータスで返却します。
// 想定外のエラーはログに記録し、message のみを返します。
func (s *Server) writeError(w http.ResponseWriter, err error, message string) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSONError(w, validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidImport):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrPrefectureNotFound),
		errors.Is(err, model.ErrDistrictNotFound),
		errors.Is(err, model.ErrLocationNotFound):
		writeJSONError(w, err.Error(), http.StatusNotFound)
	default:
		s.logger.Error(message, zap.Error(err))
		writeJSONError(w, message, http.StatusInternalServerError)
	}
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(visits store.VisitStore, tr *tracker.Tracker, cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		router:  http.NewServeMux(),
		visits:  visits,
		tracker: tr,
		config:  cfg,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()

	// 外側から CORS → ログ → メトリクス の順に適用
	var h http.Handler = s.router
	if s.metrics != nil {
		h = s.metricsMiddleware(h)
	}
	h = s.loggingMiddleware(h)
	s.handler = s.corsMiddleware(h)
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	s.router.HandleFunc("GET /api/health", s.handleHealthCheck)

	// Visit endpoints
	s.router.HandleFunc("GET /api/visits", s.handleListVisits)
	s.router.HandleFunc("POST /api/visits", s.handleAddVisit)
	s.router.HandleFunc("GET /api/visits/{cityId}", s.handleGetVisit)
	s.router.HandleFunc("DELETE /api/visits/{cityId}", s.handleDeleteVisit)

	// Tracker endpoints
	s.router.HandleFunc("GET /api/prefectures", s.handleListPrefectures)
	s.router.HandleFunc("GET /api/prefectures/{prefectureId}", s.handleGetPrefecture)
	s.router.HandleFunc("POST /api/prefectures/{prefectureId}/districts/{districtId}/locations", s.handleAddLocation)
	s.router.HandleFunc("POST /api/prefectures/{prefectureId}/districts/{districtId}/locations/{locationId}/toggle", s.handleToggleLocation)
	s.router.HandleFunc("GET /api/stats", s.handleGetStats)
	s.router.HandleFunc("POST /api/reset", s.handleReset)

	// Import/Export endpoints
	s.router.HandleFunc("GET /api/export", s.handleExport)
	s.router.HandleFunc("GET /api/report", s.handleReport)
	s.router.HandleFunc("POST /api/import", s.handleImport)
	s.router.HandleFunc("POST /api/archive", s.handleArchive)

	// Map endpoints - support both with and without .svg extension
	s.router.HandleFunc("GET /map.svg", s.handleGetMap)
	s.router.HandleFunc("GET /map", s.handleGetMap)

	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics.Handler())
	}

	// ビルド済みフロントエンドの配信（未知のパスは index.html を返す）
	if s.config != nil && s.config.StaticDir != "" {
		s.router.HandleFunc("GET /", s.handleStatic)
	}
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
	})
}

// handleStatic は静的ファイルを返します。
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	dir := s.config.StaticDir
	path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(dir, "index.html"))
}

// Run はサーバーを起動します。
func (s *Server) Run(addr string) error {
	s.logger.Info("Server starting", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}
