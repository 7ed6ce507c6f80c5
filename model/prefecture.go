// Package model は、アプリケーションのデータモデル定義を提供します。
package model

// Location はユーザーが追加した訪問地点です。訪問フラグを直接持つ唯一のエンティティです。
type Location struct {
	ID      string `json:"id"`      // 地区内で一意
	Name    string `json:"name"`    // 地点名
	Visited bool   `json:"visited"` // 訪問済みフラグ
}

// District は都道府県内の地区です。訪問状態は常に Locations から導出します。
type District struct {
	ID        string     `json:"id"`     // 都道府県内で一意
	Name      string     `json:"name"`   // 英語名
	NameJp    string     `json:"nameJp"` // 日本語名
	Locations []Location `json:"locations"`
}

// Prefecture は都道府県です。47件が固定で、地区と地点のみが変化します。
type Prefecture struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	NameJp    string     `json:"nameJp"`
	Region    Region     `json:"region"`
	Districts []District `json:"districts"`
}

// Collection は全都道府県の集合です。
type Collection []Prefecture

// District は指定IDの地区を返します。
func (p Prefecture) District(districtID string) (District, bool) {
	for _, d := range p.Districts {
		if d.ID == districtID {
			return d, true
		}
	}
	return District{}, false
}

// Location は指定IDの地点を返します。
func (d District) Location(locationID string) (Location, bool) {
	for _, l := range d.Locations {
		if l.ID == locationID {
			return l, true
		}
	}
	return Location{}, false
}

// Find は指定IDの都道府県を返します。
func (c Collection) Find(prefectureID string) (Prefecture, bool) {
	for _, p := range c {
		if p.ID == prefectureID {
			return p, true
		}
	}
	return Prefecture{}, false
}

// Replace は同じIDの都道府県を差し替えた新しい Collection を返します。
// 該当IDがない場合は元の内容のコピーを返します。
func (c Collection) Replace(prefecture Prefecture) Collection {
	next := make(Collection, len(c))
	for i, p := range c {
		if p.ID == prefecture.ID {
			next[i] = prefecture
			continue
		}
		next[i] = p
	}
	return next
}

// ByRegion は指定地方に属する都道府県を元の順序で返します。
func (c Collection) ByRegion(region Region) Collection {
	var out Collection
	for _, p := range c {
		if p.Region == region {
			out = append(out, p)
		}
	}
	return out
}

// Clone は地点スライスまで複製した深いコピーを返します。
func (c Collection) Clone() Collection {
	next := make(Collection, len(c))
	for i, p := range c {
		next[i] = p.Clone()
	}
	return next
}

// Clone は地区と地点のスライスを複製したコピーを返します。
func (p Prefecture) Clone() Prefecture {
	districts := make([]District, len(p.Districts))
	for i, d := range p.Districts {
		districts[i] = d.clone()
	}
	p.Districts = districts
	return p
}

func (d District) clone() District {
	locations := make([]Location, len(d.Locations))
	copy(locations, d.Locations)
	d.Locations = locations
	return d
}
