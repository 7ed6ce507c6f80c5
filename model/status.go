// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import "math"

// Status は訪問状況の集約結果です。
type Status string

// 訪問状況の定義
const (
	StatusUnvisited Status = "unvisited"
	StatusPartial   Status = "partial"
	StatusCompleted Status = "completed"
)

// HasVisitedLocations は訪問済みの地点が1件以上ある場合に true を返します。
func HasVisitedLocations(d District) bool {
	for _, l := range d.Locations {
		if l.Visited {
			return true
		}
	}
	return false
}

// IsFullyVisited は地点が1件以上あり、すべて訪問済みの場合に true を返します。
// 地点のない地区は訪問完了になりません。
func IsFullyVisited(d District) bool {
	if len(d.Locations) == 0 {
		return false
	}
	for _, l := range d.Locations {
		if !l.Visited {
			return false
		}
	}
	return true
}

// DistrictStatus は地区単位の訪問状況を返します。
func DistrictStatus(d District) Status {
	switch {
	case !HasVisitedLocations(d):
		return StatusUnvisited
	case IsFullyVisited(d):
		return StatusCompleted
	default:
		return StatusPartial
	}
}

// PrefectureStatus は地区の導出状態から都道府県の訪問状況を求めます。
func PrefectureStatus(p Prefecture) Status {
	visited := 0
	fully := 0
	for _, d := range p.Districts {
		if HasVisitedLocations(d) {
			visited++
		}
		if IsFullyVisited(d) {
			fully++
		}
	}

	if visited == 0 {
		return StatusUnvisited
	}
	if fully == len(p.Districts) {
		return StatusCompleted
	}
	return StatusPartial
}

// ProgressPercent は訪問地点を持つ地区の割合（0-100）を返します。
// 地点の網羅率ではなく地区の網羅率です。
func ProgressPercent(p Prefecture) float64 {
	if len(p.Districts) == 0 {
		return 0
	}
	visited := 0
	for _, d := range p.Districts {
		if HasVisitedLocations(d) {
			visited++
		}
	}
	return 100 * float64(visited) / float64(len(p.Districts))
}

// LocationCount は訪問済み地点数と総地点数の組です。
type LocationCount struct {
	Visited int `json:"visited"`
	Total   int `json:"total"`
}

// LocationProgress は都道府県内の地点数を集計します。
func LocationProgress(p Prefecture) LocationCount {
	var c LocationCount
	for _, d := range p.Districts {
		c.Total += len(d.Locations)
		for _, l := range d.Locations {
			if l.Visited {
				c.Visited++
			}
		}
	}
	return c
}

// VisitedDistrictCount は訪問地点を持つ地区の数を返します。
func VisitedDistrictCount(p Prefecture) int {
	n := 0
	for _, d := range p.Districts {
		if HasVisitedLocations(d) {
			n++
		}
	}
	return n
}

// RegionStats は地方ごとの達成状況です。
type RegionStats struct {
	Region    Region `json:"region"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Progress  int    `json:"progress"` // 完了した都道府県の割合（四捨五入）
}

// Summary は全体の統計です。描画のたびに現在のスナップショットから再計算します。
type Summary struct {
	TotalPrefectures     int           `json:"totalPrefectures"`
	CompletedPrefectures int           `json:"completedPrefectures"`
	PartialPrefectures   int           `json:"partialPrefectures"`
	CompletionRate       int           `json:"completionRate"`
	VisitedDistricts     int           `json:"visitedDistricts"`
	TotalDistricts       int           `json:"totalDistricts"`
	VisitedLocations     int           `json:"visitedLocations"`
	Regions              []RegionStats `json:"regions"`
}

// Summarize はコレクション全体を走査して統計を求めます。
func Summarize(c Collection) Summary {
	s := Summary{TotalPrefectures: len(c)}

	for _, p := range c {
		switch PrefectureStatus(p) {
		case StatusCompleted:
			s.CompletedPrefectures++
		case StatusPartial:
			s.PartialPrefectures++
		}
		s.VisitedDistricts += VisitedDistrictCount(p)
		s.TotalDistricts += len(p.Districts)
		s.VisitedLocations += LocationProgress(p).Visited
	}
	s.CompletionRate = roundPercent(s.CompletedPrefectures, s.TotalPrefectures)

	for _, region := range Regions() {
		prefectures := c.ByRegion(region)
		rs := RegionStats{Region: region, Total: len(prefectures)}
		for _, p := range prefectures {
			if PrefectureStatus(p) == StatusCompleted {
				rs.Completed++
			}
		}
		rs.Progress = roundPercent(rs.Completed, rs.Total)
		s.Regions = append(s.Regions, rs)
	}

	return s
}

func roundPercent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(total)))
}
