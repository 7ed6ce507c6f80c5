// Package store は、訪問記録の永続化機能を提供します。
package store

import (
	"context"

	"github.com/stsysd/tabimap/model"
)

// VisitStore は訪問記録の保存と取得を行うインターフェースです。
type VisitStore interface {
	// ListVisits はすべての訪問記録を visited_at の降順で取得します。
	ListVisits(ctx context.Context) ([]*model.Visit, error)
	// UpsertVisit は city_id をキーに訪問記録を挿入または置換します。
	// 置換時はIDと visited_at も新しい値になります。
	UpsertVisit(ctx context.Context, cityID, notes string) (*model.Visit, error)
	// DeleteVisit は指定した都市の訪問記録を削除し、削除件数（0または1）を返します。
	DeleteVisit(ctx context.Context, cityID string) (int64, error)
	// VisitExists は指定した都市の訪問記録が存在するかを返します。
	VisitExists(ctx context.Context, cityID string) (bool, error)
	// Close はストアの接続を閉じます。
	Close() error
}
