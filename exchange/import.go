package exchange

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/stsysd/tabimap/catalog"
	"github.com/stsysd/tabimap/model"
)

// UnknownLocationName は名前のない地点に付ける名前です。
const UnknownLocationName = "Unknown"

// Import は任意のJSON文書を現在のコレクションにマージした新しいコレクションを返します。
//
// 都道府県はIDで対応付け、地区はIDで見つからなければ同じ位置の地区を使います。
// 古い形式の文書には安定した地区IDがないためです。
// 対応する地区がない場合は現在の状態をそのまま残します。
// エラー時は current に一切手を加えません。
func Import(current model.Collection, raw []byte) (model.Collection, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidImport, err)
	}
	prefectures, ok := doc["prefectures"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: prefectures array is required", model.ErrInvalidImport)
	}

	imported := make(map[string]map[string]any, len(prefectures))
	for _, v := range prefectures {
		p, ok := v.(map[string]any)
		if !ok {
			continue
		}
		id, ok := p["id"].(string)
		if !ok {
			continue
		}
		// 同じIDが複数ある場合は最初のものを使う
		if _, dup := imported[id]; !dup {
			imported[id] = p
		}
	}

	merged := make(model.Collection, 0, len(current))
	for _, initial := range catalog.Initial() {
		base, ok := current.Find(initial.ID)
		if !ok {
			base = initial
		}
		base = base.Clone()

		if p, ok := imported[initial.ID]; ok {
			base = mergePrefecture(base, p)
		}
		merged = append(merged, base)
	}
	return merged, nil
}

func mergePrefecture(base model.Prefecture, imported map[string]any) model.Prefecture {
	districts, _ := imported["districts"].([]any)

	for i, d := range base.Districts {
		src, ok := findDistrict(districts, d.ID, i)
		if !ok {
			continue
		}
		locations, ok := src["locations"].([]any)
		if !ok {
			continue
		}
		base.Districts[i].Locations = buildLocations(d.ID, locations)
	}
	return base
}

func findDistrict(districts []any, id string, index int) (map[string]any, bool) {
	for _, v := range districts {
		if d, ok := v.(map[string]any); ok && d["id"] == id {
			return d, true
		}
	}
	if index < len(districts) {
		d, ok := districts[index].(map[string]any)
		return d, ok
	}
	return nil, false
}

func buildLocations(districtID string, items []any) []model.Location {
	locations := make([]model.Location, 0, len(items))
	seen := make(map[string]bool, len(items))

	for i, v := range items {
		item, _ := v.(map[string]any)

		id := stringValue(item["id"])
		if id == "" {
			id = fmt.Sprintf("%s-loc-%d", districtID, i)
		}
		if seen[id] {
			id = model.NewLocationID(districtID)
		}
		seen[id] = true

		name := stringValue(item["name"])
		if name == "" {
			name = UnknownLocationName
		}

		locations = append(locations, model.Location{
			ID:      id,
			Name:    name,
			Visited: truthy(item["visited"]),
		})
	}
	return locations
}

// stringValue は文字列または数値を文字列にします。それ以外は空文字です。
func stringValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == 0 || math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

// truthy はJSON値を真偽値に変換します。
// false, 0, 空文字, null 以外はすべて true です。
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}
