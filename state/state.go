// Package state は、都道府県コレクション全体を固定キーで丸ごと保存する永続化ポートを提供します。
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stsysd/tabimap/catalog"
	"github.com/stsysd/tabimap/model"
)

// ErrCorruptState は保存済みデータを復元できない場合のエラーです。
var ErrCorruptState = errors.New("stored state is corrupt")

// Store はコレクションの読み書きを行う永続化ポートです。
// バージョン管理やマイグレーションは行わず、常に全体を置き換えます。
type Store interface {
	// Load は保存済みのコレクションを返します。未保存の場合は found が false になります。
	Load(ctx context.Context) (c model.Collection, found bool, err error)
	// Save はコレクション全体を保存します。
	Save(ctx context.Context, c model.Collection) error
	Close() error
}

func encode(c model.Collection) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

func decode(data []byte) (model.Collection, error) {
	var stored model.Collection
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: no collection", ErrCorruptState)
	}
	return normalize(stored), nil
}

// normalize は保存値を47都道府県の正規の並びに載せ替えます。
// 未知のIDは捨て、欠けている都道府県や地区のない都道府県は初期状態で補います。
func normalize(stored model.Collection) model.Collection {
	c := catalog.Initial()
	for i, initial := range c {
		p, ok := stored.Find(initial.ID)
		if !ok || len(p.Districts) == 0 {
			continue
		}
		districts := p.Districts
		// 保存形式は地点スライスを必ず持つ
		for j := range districts {
			if districts[j].Locations == nil {
				districts[j].Locations = []model.Location{}
			}
		}
		initial.Districts = districts
		c[i] = initial
	}
	return c
}
