package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stsysd/tabimap/model"
)

// AddVisitParams represents parameters for adding a visit.
type AddVisitParams struct {
	CityID *model.CityID
	Notes  *model.Notes
}

// NewAddVisitParams creates parameters for visit creation from HTTP request.
func NewAddVisitParams(r *http.Request) (*AddVisitParams, error) {
	var requestBody struct {
		CityID string  `json:"cityId"`
		Notes  *string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		return nil, model.NewValidationError(fmt.Sprintf("invalid request body: %v", err))
	}

	cityID, err := model.NewCityID(requestBody.CityID)
	if err != nil {
		return nil, err
	}

	notes, err := model.NewNotes(requestBody.Notes)
	if err != nil {
		return nil, err
	}

	return &AddVisitParams{
		CityID: cityID,
		Notes:  notes,
	}, nil
}

// VisitParams represents a city id taken from the request path.
type VisitParams struct {
	CityID *model.CityID
}

// NewVisitParams creates parameters for visit lookups from HTTP request.
func NewVisitParams(r *http.Request) (*VisitParams, error) {
	cityID, err := model.NewCityID(r.PathValue("cityId"))
	if err != nil {
		return nil, err
	}
	return &VisitParams{CityID: cityID}, nil
}

// AddVisitResponse は訪問記録追加のレスポンスです。
type AddVisitResponse struct {
	Success bool         `json:"success"`
	Data    AddVisitData `json:"data"`
}

// AddVisitData は追加した訪問記録の要約です。
type AddVisitData struct {
	ID     int64  `json:"id"`
	CityID string `json:"city_id"`
	Notes  string `json:"notes"`
}

// DeleteVisitResponse は訪問記録削除のレスポンスです。
type DeleteVisitResponse struct {
	Success bool  `json:"success"`
	Changes int64 `json:"changes"`
}

// VisitStatusResponse は訪問有無のレスポンスです。
type VisitStatusResponse struct {
	CityID  string `json:"cityId"`
	Visited bool   `json:"visited"`
}

// handleListVisits は訪問記録一覧のハンドラーです。
func (s *Server) handleListVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := s.visits.ListVisits(r.Context())
	if err != nil {
		s.writeError(w, err, "Failed to get visits")
		return
	}
	writeJSON(w, http.StatusOK, visits)
}

// handleAddVisit は訪問記録追加のハンドラーです。同じ都市IDの記録は置き換えます。
func (s *Server) handleAddVisit(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewAddVisitParams(r)
	if err != nil {
		s.writeError(w, err, "Invalid request")
		return
	}

	visit, err := s.visits.UpsertVisit(r.Context(), params.CityID.String(), params.Notes.String())
	if err != nil {
		s.writeError(w, err, "Failed to add visit")
		return
	}

	writeJSON(w, http.StatusOK, AddVisitResponse{
		Success: true,
		Data: AddVisitData{
			ID:     visit.ID,
			CityID: visit.CityID,
			Notes:  visit.Notes,
		},
	})
}

// handleDeleteVisit は訪問記録削除のハンドラーです。存在しない場合も成功として0件を返します。
func (s *Server) handleDeleteVisit(w http.ResponseWriter, r *http.Request) {
	params, err := NewVisitParams(r)
	if err != nil {
		s.writeError(w, err, "Invalid request")
		return
	}

	changes, err := s.visits.DeleteVisit(r.Context(), params.CityID.String())
	if err != nil {
		s.writeError(w, err, "Failed to remove visit")
		return
	}

	writeJSON(w, http.StatusOK, DeleteVisitResponse{Success: true, Changes: changes})
}

// handleGetVisit は訪問有無の確認のハンドラーです。
func (s *Server) handleGetVisit(w http.ResponseWriter, r *http.Request) {
	params, err := NewVisitParams(r)
	if err != nil {
		s.writeError(w, err, "Invalid request")
		return
	}

	visited, err := s.visits.VisitExists(r.Context(), params.CityID.String())
	if err != nil {
		s.writeError(w, err, "Failed to check visit")
		return
	}

	writeJSON(w, http.StatusOK, VisitStatusResponse{CityID: params.CityID.String(), Visited: visited})
}
