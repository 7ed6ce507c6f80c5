// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"time"
)

// Visit はバックエンドに保存される訪問都市の記録です。
// 地点単位の訪問フラグとは独立したデータです。
type Visit struct {
	ID        int64     `json:"id"`
	CityID    string    `json:"city_id"`    // 都市ID（一意）
	VisitedAt time.Time `json:"visited_at"` // 記録日時
	Notes     string    `json:"notes"`      // メモ
}

// LoadVisit はDBから読み込んだ値でVisitインスタンスを作成します。
func LoadVisit(id int64, cityID string, visitedAt time.Time, notes string) (*Visit, error) {
	// LoadVisitはDBから読み込んだ行用なので、IDは必須
	if id <= 0 {
		return nil, errors.New("id is required for loaded visit")
	}
	v := &Visit{
		ID:        id,
		CityID:    cityID,
		VisitedAt: visitedAt,
		Notes:     notes,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate は訪問記録のデータバリデーションを行います。
func (v *Visit) Validate() error {
	if v.CityID == "" {
		return errors.New("city_id is required")
	}
	if v.VisitedAt.IsZero() {
		return errors.New("visited_at is required")
	}
	return nil
}
