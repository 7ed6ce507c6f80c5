// Package exchange は、コレクションのJSONエクスポート・インポートとテキストレポートを提供します。
package exchange

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stsysd/tabimap/model"
)

// DocumentVersion はエクスポート文書の形式バージョンです。
const DocumentVersion = "1.0"

// ISO 8601（ミリ秒・UTC）
const exportDateLayout = "2006-01-02T15:04:05.000Z"

// Document はエクスポートJSONの文書です。
type Document struct {
	ExportDate  string           `json:"exportDate"`
	Version     string           `json:"version"`
	Summary     DocumentSummary  `json:"summary"`
	Prefectures model.Collection `json:"prefectures"`
}

// DocumentSummary はエクスポート時点の集計です。
type DocumentSummary struct {
	TotalPrefectures   int `json:"totalPrefectures"`
	VisitedPrefectures int `json:"visitedPrefectures"` // 訪問完了
	PartialPrefectures int `json:"partialPrefectures"`
}

// NewDocument は現在のコレクションからエクスポート文書を作成します。
func NewDocument(c model.Collection, now time.Time) Document {
	summary := model.Summarize(c)
	return Document{
		ExportDate: now.UTC().Format(exportDateLayout),
		Version:    DocumentVersion,
		Summary: DocumentSummary{
			TotalPrefectures:   summary.TotalPrefectures,
			VisitedPrefectures: summary.CompletedPrefectures,
			PartialPrefectures: summary.PartialPrefectures,
		},
		Prefectures: c.Clone(),
	}
}

// ExportJSON はエクスポート文書をインデント付きJSONで返します。
func ExportJSON(c model.Collection, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(c, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return data, nil
}

// DataFilename はエクスポートJSONのファイル名を返します。
func DataFilename(now time.Time) string {
	return "japan-travel-data-" + now.UTC().Format(time.DateOnly) + ".json"
}

// ReportFilename はテキストレポートのファイル名を返します。
func ReportFilename(now time.Time) string {
	return "japan-travel-report-" + now.UTC().Format(time.DateOnly) + ".txt"
}
