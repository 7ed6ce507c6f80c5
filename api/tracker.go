package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stsysd/tabimap/archive"
	"github.com/stsysd/tabimap/catalog"
	"github.com/stsysd/tabimap/model"
	"github.com/stsysd/tabimap/tilemap"
)

// インポート文書の上限サイズ
const maxImportBytes = 10 << 20

// DistrictView は導出状態付きの地区です。
type DistrictView struct {
	model.District
	Status model.Status `json:"status"`
}

// PrefectureView は導出状態付きの都道府県です。
type PrefectureView struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	NameJp           string              `json:"nameJp"`
	Region           model.Region        `json:"region"`
	RegionName       string              `json:"regionName"`
	Status           model.Status        `json:"status"`
	Progress         float64             `json:"progress"`
	LocationProgress model.LocationCount `json:"locationProgress"`
	Districts        []DistrictView      `json:"districts"`
}

// NewPrefectureView は都道府県の表示用データを作成します。
func NewPrefectureView(p model.Prefecture) PrefectureView {
	districts := make([]DistrictView, len(p.Districts))
	for i, d := range p.Districts {
		districts[i] = DistrictView{District: d, Status: model.DistrictStatus(d)}
	}
	return PrefectureView{
		ID:               p.ID,
		Name:             p.Name,
		NameJp:           p.NameJp,
		Region:           p.Region,
		RegionName:       catalog.Region(p.Region).Name,
		Status:           model.PrefectureStatus(p),
		Progress:         model.ProgressPercent(p),
		LocationProgress: model.LocationProgress(p),
		Districts:        districts,
	}
}

// RegionStatsView は表示名付きの地方別統計です。
type RegionStatsView struct {
	model.RegionStats
	Name   string `json:"name"`
	NameJp string `json:"nameJp"`
	Color  string `json:"color"`
}

// StatsView は全体統計のレスポンスです。
type StatsView struct {
	model.Summary
	Regions []RegionStatsView `json:"regions"`
}

// LocationParams represents the path of a district or location.
type LocationParams struct {
	PrefectureID string
	DistrictID   string
	LocationID   string
}

// NewLocationParams creates parameters from the request path.
func NewLocationParams(r *http.Request) *LocationParams {
	return &LocationParams{
		PrefectureID: r.PathValue("prefectureId"),
		DistrictID:   r.PathValue("districtId"),
		LocationID:   r.PathValue("locationId"),
	}
}

// handleListPrefectures は都道府県一覧のハンドラーです。
func (s *Server) handleListPrefectures(w http.ResponseWriter, r *http.Request) {
	snapshot := s.tracker.Snapshot()

	// region=kanto のように地方で絞り込み
	if q := r.URL.Query().Get("region"); q != "" {
		region, err := model.ParseRegion(q)
		if err != nil {
			s.writeError(w, err, "Invalid request")
			return
		}
		snapshot = snapshot.ByRegion(region)
	}

	views := make([]PrefectureView, 0, len(snapshot))
	for _, p := range snapshot {
		views = append(views, NewPrefectureView(p))
	}
	writeJSON(w, http.StatusOK, views)
}

// handleGetPrefecture は都道府県取得のハンドラーです。
func (s *Server) handleGetPrefecture(w http.ResponseWriter, r *http.Request) {
	p, err := s.tracker.Prefecture(r.PathValue("prefectureId"))
	if err != nil {
		s.writeError(w, err, "Failed to get prefecture")
		return
	}
	writeJSON(w, http.StatusOK, NewPrefectureView(p))
}

// AddLocationResponse は地点追加のレスポンスです。
type AddLocationResponse struct {
	Location   model.Location `json:"location"`
	Prefecture PrefectureView `json:"prefecture"`
}

// handleAddLocation は地点追加のハンドラーです。
func (s *Server) handleAddLocation(w http.ResponseWriter, r *http.Request) {
	params := NewLocationParams(r)

	var requestBody struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeJSONError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	p, loc, err := s.tracker.AddLocation(r.Context(), params.PrefectureID, params.DistrictID, requestBody.Name)
	if err != nil {
		s.writeError(w, err, "Failed to add location")
		return
	}
	writeJSON(w, http.StatusCreated, AddLocationResponse{Location: loc, Prefecture: NewPrefectureView(p)})
}

// handleToggleLocation は地点の訪問フラグ反転のハンドラーです。
func (s *Server) handleToggleLocation(w http.ResponseWriter, r *http.Request) {
	params := NewLocationParams(r)

	p, err := s.tracker.ToggleLocation(r.Context(), params.PrefectureID, params.DistrictID, params.LocationID)
	if err != nil {
		s.writeError(w, err, "Failed to toggle location")
		return
	}
	writeJSON(w, http.StatusOK, NewPrefectureView(p))
}

// handleGetStats は全体統計のハンドラーです。
func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	summary := s.tracker.Summary()

	regions := make([]RegionStatsView, len(summary.Regions))
	for i, rs := range summary.Regions {
		info := catalog.Region(rs.Region)
		regions[i] = RegionStatsView{RegionStats: rs, Name: info.Name, NameJp: info.NameJp, Color: info.Color}
	}
	writeJSON(w, http.StatusOK, StatsView{Summary: summary, Regions: regions})
}

// handleReset は全データ初期化のハンドラーです。破壊的操作のため明示的な確認を要求します。
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil || !requestBody.Confirm {
		writeJSONError(w, `reset requires {"confirm": true}`, http.StatusBadRequest)
		return
	}

	if err := s.tracker.Reset(r.Context()); err != nil {
		s.writeError(w, err, "Failed to reset data")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleExport はエクスポートJSONのダウンロードのハンドラーです。
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	name, data, err := s.tracker.ExportJSON()
	if err != nil {
		s.writeError(w, err, "Failed to export data")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Write(data)
}

// handleReport はテキストレポートのダウンロードのハンドラーです。
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	name, text := s.tracker.Report()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	io.WriteString(w, text)
}

// ImportResponse はインポート結果のレスポンスです。
type ImportResponse struct {
	Success bool          `json:"success"`
	Summary model.Summary `json:"summary"`
}

// handleImport はエクスポートJSONの取り込みのハンドラーです。
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		writeJSONError(w, fmt.Sprintf("failed to read request body: %v", err), http.StatusBadRequest)
		return
	}

	merged, err := s.tracker.Import(r.Context(), raw)
	if err != nil {
		s.writeError(w, err, "Failed to import data")
		return
	}
	writeJSON(w, http.StatusOK, ImportResponse{Success: true, Summary: model.Summarize(merged)})
}

// ArchiveResponse はアーカイブ結果のレスポンスです。
type ArchiveResponse struct {
	Success   bool     `json:"success"`
	Locations []string `json:"locations"`
}

// handleArchive はレポートとエクスポートJSONを保存先に書き出すハンドラーです。
func (s *Server) handleArchive(w http.ResponseWriter, r *http.Request) {
	if s.sink == nil {
		writeJSONError(w, "Archive is not configured", http.StatusServiceUnavailable)
		return
	}

	dataName, data, err := s.tracker.ExportJSON()
	if err != nil {
		s.writeError(w, err, "Failed to export data")
		return
	}
	reportName, report := s.tracker.Report()

	locations, err := archive.WriteAll(r.Context(), s.sink,
		archive.File{Name: reportName, ContentType: "text/plain; charset=utf-8", Body: []byte(report)},
		archive.File{Name: dataName, ContentType: "application/json", Body: data},
	)
	if err != nil {
		s.writeError(w, err, "Failed to archive data")
		return
	}
	s.logger.Info("Archived travel data")
	writeJSON(w, http.StatusOK, ArchiveResponse{Success: true, Locations: locations})
}

// handleGetMap は訪問状況のタイルマップSVGを返すハンドラーです。
func (s *Server) handleGetMap(w http.ResponseWriter, r *http.Request) {
	opts := tilemap.DefaultOptions()
	opts.LinkPrefix = r.URL.Query().Get("link")
	opts.Title = r.URL.Query().Get("title")

	svg := tilemap.Render(s.tracker.Snapshot(), opts)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	io.WriteString(w, svg)
}
