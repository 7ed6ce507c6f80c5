// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ToggleLocationVisited は指定地点の訪問フラグを反転した新しい Prefecture を返します。
// IDが解決できない場合は入力をそのまま返し、ErrDistrictNotFound または ErrLocationNotFound を返します。
func ToggleLocationVisited(p Prefecture, districtID, locationID string) (Prefecture, error) {
	di := p.districtIndex(districtID)
	if di < 0 {
		return p, fmt.Errorf("%w: %s", ErrDistrictNotFound, districtID)
	}
	li := p.Districts[di].locationIndex(locationID)
	if li < 0 {
		return p, fmt.Errorf("%w: %s", ErrLocationNotFound, locationID)
	}

	next := p.withDistrictCopy(di)
	loc := &next.Districts[di].Locations[li]
	loc.Visited = !loc.Visited
	return next, nil
}

// AddLocation は指定地区の末尾に訪問済みの地点を追加した新しい Prefecture を返します。
// 名前が空白のみの場合は ValidationError を返します。
func AddLocation(p Prefecture, districtID, name string) (Prefecture, Location, error) {
	locName, err := NewLocationName(name)
	if err != nil {
		return p, Location{}, err
	}
	di := p.districtIndex(districtID)
	if di < 0 {
		return p, Location{}, fmt.Errorf("%w: %s", ErrDistrictNotFound, districtID)
	}

	loc := Location{
		ID:      NewLocationID(districtID),
		Name:    locName.String(),
		Visited: true,
	}
	next := p.withDistrictCopy(di)
	next.Districts[di].Locations = append(next.Districts[di].Locations, loc)
	return next, loc, nil
}

// NewLocationID は地区IDを接頭辞とした一意な地点IDを生成します。
func NewLocationID(districtID string) string {
	return districtID + "-loc-" + uuid.NewString()
}

// withDistrictCopy は指定地区の地点スライスだけを複製した Prefecture を返します。
// それ以外の地区は元の値を共有します。
func (p Prefecture) withDistrictCopy(di int) Prefecture {
	districts := make([]District, len(p.Districts))
	copy(districts, p.Districts)
	districts[di] = districts[di].clone()
	p.Districts = districts
	return p
}

func (p Prefecture) districtIndex(districtID string) int {
	for i, d := range p.Districts {
		if d.ID == districtID {
			return i
		}
	}
	return -1
}

func (d District) locationIndex(locationID string) int {
	for i, l := range d.Locations {
		if l.ID == locationID {
			return i
		}
	}
	return -1
}
