// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"encoding/json"
	"fmt"
)

// Region は都道府県をまとめる8地方の区分です。
type Region string

// 地方区分の定義
const (
	RegionHokkaido Region = "hokkaido"
	RegionTohoku   Region = "tohoku"
	RegionKanto    Region = "kanto"
	RegionChubu    Region = "chubu"
	RegionKinki    Region = "kinki"
	RegionChugoku  Region = "chugoku"
	RegionShikoku  Region = "shikoku"
	RegionKyushu   Region = "kyushu"
)

// regionOrder は北から南への表示順です。
var regionOrder = []Region{
	RegionHokkaido,
	RegionTohoku,
	RegionKanto,
	RegionChubu,
	RegionKinki,
	RegionChugoku,
	RegionShikoku,
	RegionKyushu,
}

// Regions は地方区分を表示順で返します。
func Regions() []Region {
	regions := make([]Region, len(regionOrder))
	copy(regions, regionOrder)
	return regions
}

// ParseRegion は文字列を地方区分に変換します。
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	if !r.IsValid() {
		return "", NewValidationError(fmt.Sprintf("unknown region: %q", s))
	}
	return r, nil
}

// IsValid は定義済みの地方区分かどうかを判定します。
func (r Region) IsValid() bool {
	for _, known := range regionOrder {
		if r == known {
			return true
		}
	}
	return false
}

// String は地方区分の識別子を返します。
func (r Region) String() string {
	return string(r)
}

// UnmarshalJSON は未知の地方区分を拒否します。
func (r *Region) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
