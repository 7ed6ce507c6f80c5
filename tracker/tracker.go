// Package tracker は、訪問記録フローのアプリケーションルートを提供します。
// 現在のコレクションを保持し、変更のたびに状態ストアへ同期的に保存します。
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stsysd/tabimap/catalog"
	"github.com/stsysd/tabimap/exchange"
	"github.com/stsysd/tabimap/metrics"
	"github.com/stsysd/tabimap/model"
	"github.com/stsysd/tabimap/state"
)

// Tracker は都道府県コレクションの現在値を管理します。
type Tracker struct {
	mu         sync.Mutex
	collection model.Collection

	store   state.Store
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option は Tracker の任意設定です。
type Option func(*Tracker)

// WithMetrics は変更回数と保存失敗を記録するメトリクスを設定します。
func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}

// WithClock はエクスポート日時に使う時計を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New は保存済みのコレクションを読み込んで Tracker を作成します。
// 未保存または復元できない場合は初期状態から始めます。
func New(ctx context.Context, store state.Store, logger *zap.Logger, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	c, found, err := store.Load(ctx)
	switch {
	case errors.Is(err, state.ErrCorruptState):
		logger.Warn("Stored state is unreadable, starting from the initial collection", zap.Error(err))
		c = catalog.Initial()
	case err != nil:
		return nil, fmt.Errorf("failed to load state: %w", err)
	case !found:
		logger.Info("No stored state, starting from the initial collection")
		c = catalog.Initial()
	}
	t.collection = c
	return t, nil
}

// Snapshot は現在のコレクションのコピーを返します。
func (t *Tracker) Snapshot() model.Collection {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.collection.Clone()
}

// Prefecture は指定IDの都道府県を返します。
func (t *Tracker) Prefecture(prefectureID string) (model.Prefecture, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.collection.Find(prefectureID)
	if !ok {
		return model.Prefecture{}, fmt.Errorf("%w: %s", model.ErrPrefectureNotFound, prefectureID)
	}
	return p.Clone(), nil
}

// ToggleLocation は地点の訪問フラグを反転して保存します。
// 保存に失敗しても変更は残り、エラーを返します。
func (t *Tracker) ToggleLocation(ctx context.Context, prefectureID, districtID, locationID string) (model.Prefecture, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.collection.Find(prefectureID)
	if !ok {
		return model.Prefecture{}, fmt.Errorf("%w: %s", model.ErrPrefectureNotFound, prefectureID)
	}
	next, err := model.ToggleLocationVisited(p, districtID, locationID)
	if err != nil {
		return model.Prefecture{}, err
	}

	t.collection = t.collection.Replace(next)
	t.countMutation("toggle")
	return next.Clone(), t.persist(ctx)
}

// AddLocation は訪問済みの地点を追加して保存します。
func (t *Tracker) AddLocation(ctx context.Context, prefectureID, districtID, name string) (model.Prefecture, model.Location, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.collection.Find(prefectureID)
	if !ok {
		return model.Prefecture{}, model.Location{}, fmt.Errorf("%w: %s", model.ErrPrefectureNotFound, prefectureID)
	}
	next, loc, err := model.AddLocation(p, districtID, name)
	if err != nil {
		return model.Prefecture{}, model.Location{}, err
	}

	t.collection = t.collection.Replace(next)
	t.countMutation("add_location")
	return next.Clone(), loc, t.persist(ctx)
}

// Reset はコレクション全体を初期状態に戻して保存します。確認は呼び出し側の責任です。
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.collection = catalog.Initial()
	t.countMutation("reset")
	return t.persist(ctx)
}

// Import はエクスポート文書を現在のコレクションにマージして保存します。
// 文書が不正な場合はコレクションを変更しません。
func (t *Tracker) Import(ctx context.Context, raw []byte) (model.Collection, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	merged, err := exchange.Import(t.collection, raw)
	if err != nil {
		return nil, err
	}

	t.collection = merged
	t.countMutation("import")
	return merged.Clone(), t.persist(ctx)
}

// ExportJSON はエクスポート文書とそのファイル名を返します。
func (t *Tracker) ExportJSON() (string, []byte, error) {
	now := t.now()
	data, err := exchange.ExportJSON(t.Snapshot(), now)
	if err != nil {
		return "", nil, err
	}
	return exchange.DataFilename(now), data, nil
}

// Report はテキストレポートとそのファイル名を返します。
func (t *Tracker) Report() (string, string) {
	now := t.now()
	return exchange.ReportFilename(now), exchange.Report(t.Snapshot(), now)
}

// Summary は現在のコレクションから統計を再計算します。
func (t *Tracker) Summary() model.Summary {
	return model.Summarize(t.Snapshot())
}

// persist は t.mu を保持した状態で呼び出す
func (t *Tracker) persist(ctx context.Context) error {
	if err := t.store.Save(ctx, t.collection); err != nil {
		t.logger.Error("Failed to persist state", zap.Error(err))
		if t.metrics != nil {
			t.metrics.PersistFailures.Inc()
		}
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

func (t *Tracker) countMutation(kind string) {
	if t.metrics != nil {
		t.metrics.Mutations.WithLabelValues(kind).Inc()
	}
}
