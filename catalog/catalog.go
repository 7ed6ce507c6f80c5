// Package catalog は47都道府県と地区の初期データ、および表示用の名称表を提供します。
package catalog

import (
	"fmt"

	"github.com/stsysd/tabimap/model"
)

type districtEntry struct {
	Name   string
	NameJp string
}

type prefectureEntry struct {
	ID        string
	Name      string
	NameJp    string
	Region    model.Region
	GeoName   string // GeoJSON の nam 属性
	Districts []districtEntry
}

// RegionInfo は地方の表示名と配色です。
type RegionInfo struct {
	Name   string `json:"name"`
	NameJp string `json:"nameJp"`
	Color  string `json:"color"`
}

var regionInfo = map[model.Region]RegionInfo{
	model.RegionHokkaido: {Name: "Hokkaido", NameJp: "北海道", Color: "#FF6B6B"},
	model.RegionTohoku:   {Name: "Tohoku", NameJp: "東北", Color: "#4ECDC4"},
	model.RegionKanto:    {Name: "Kanto", NameJp: "関東", Color: "#45B7D1"},
	model.RegionChubu:    {Name: "Chubu", NameJp: "中部", Color: "#96CEB4"},
	model.RegionKinki:    {Name: "Kinki", NameJp: "近畿", Color: "#FFEAA7"},
	model.RegionChugoku:  {Name: "Chugoku", NameJp: "中国", Color: "#DDA0DD"},
	model.RegionShikoku:  {Name: "Shikoku", NameJp: "四国", Color: "#98D8C8"},
	model.RegionKyushu:   {Name: "Kyushu & Okinawa", NameJp: "九州・沖縄", Color: "#F7DC6F"},
}

var geoNameIndex = func() map[string]string {
	idx := make(map[string]string, len(prefectureTable))
	for _, p := range prefectureTable {
		idx[p.GeoName] = p.ID
	}
	return idx
}()

// Initial は地点が空の初期状態のコレクションを毎回新しく生成して返します。
func Initial() model.Collection {
	c := make(model.Collection, 0, len(prefectureTable))
	for _, p := range prefectureTable {
		c = append(c, p.build())
	}
	return c
}

// DistrictID は地区IDの採番規則です。
func DistrictID(prefectureID string, index int) string {
	return fmt.Sprintf("%s-district-%d", prefectureID, index)
}

// IDs は都道府県IDを定義順で返します。
func IDs() []string {
	ids := make([]string, len(prefectureTable))
	for i, p := range prefectureTable {
		ids[i] = p.ID
	}
	return ids
}

// IDByGeoName は地図データ上の名称（例: "Tokyo To"）を都道府県IDに変換します。
func IDByGeoName(geoName string) (string, bool) {
	id, ok := geoNameIndex[geoName]
	return id, ok
}

// Region は地方の表示情報を返します。
func Region(r model.Region) RegionInfo {
	return regionInfo[r]
}

func (p prefectureEntry) build() model.Prefecture {
	districts := make([]model.District, len(p.Districts))
	for i, d := range p.Districts {
		districts[i] = model.District{
			ID:        DistrictID(p.ID, i),
			Name:      d.Name,
			NameJp:    d.NameJp,
			Locations: []model.Location{},
		}
	}
	return model.Prefecture{
		ID:        p.ID,
		Name:      p.Name,
		NameJp:    p.NameJp,
		Region:    p.Region,
		Districts: districts,
	}
}
