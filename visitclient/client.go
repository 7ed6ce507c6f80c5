// Package visitclient は訪問記録APIのHTTPクライアントを提供します。
package visitclient

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stsysd/tabimap/model"
)

// DefaultBaseURL は TABIMAP_API_URL が未設定の場合の接続先です。
const DefaultBaseURL = "http://localhost:3001"

// Client は訪問記録APIのクライアントです。
type Client struct {
	http *resty.Client
}

// AddResult は訪問記録の追加結果です。
type AddResult struct {
	ID     int64  `json:"id"`
	CityID string `json:"city_id"`
	Notes  string `json:"notes"`
}

// Health はヘルスチェックの結果です。
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// StatusError は2xx以外のレスポンスです。
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (status: %d)", e.Op, e.StatusCode)
}

type errorBody struct {
	Error string `json:"error"`
}

// New は baseURL に接続するクライアントを作成します。httpClient が nil の場合は既定のクライアントを使います。
func New(baseURL string, httpClient *http.Client) *Client {
	var c *resty.Client
	if httpClient != nil {
		c = resty.NewWithClient(httpClient)
	} else {
		c = resty.New().SetTimeout(30 * time.Second)
	}
	c.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// NewFromEnv は TABIMAP_API_URL を接続先とするクライアントを作成します。
func NewFromEnv(httpClient *http.Client) *Client {
	baseURL := os.Getenv("TABIMAP_API_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return New(baseURL, httpClient)
}

// List はすべての訪問記録を新しい順に返します。
func (c *Client) List(ctx context.Context) ([]model.Visit, error) {
	var visits []model.Visit
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&visits).
		SetError(&errorBody{}).
		Get("/api/visits")
	if err := check("failed to fetch visits", resp, err); err != nil {
		return nil, err
	}
	return visits, nil
}

// Add は訪問記録を追加します。同じ都市IDの記録は置き換えられます。
func (c *Client) Add(ctx context.Context, cityID, notes string) (*AddResult, error) {
	var body struct {
		Success bool      `json:"success"`
		Data    AddResult `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"cityId": cityID, "notes": notes}).
		SetResult(&body).
		SetError(&errorBody{}).
		Post("/api/visits")
	if err := check("failed to add visit", resp, err); err != nil {
		return nil, err
	}
	return &body.Data, nil
}

// Remove は訪問記録を削除し、削除件数（0または1）を返します。
func (c *Client) Remove(ctx context.Context, cityID string) (int64, error) {
	var body struct {
		Success bool  `json:"success"`
		Changes int64 `json:"changes"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("cityId", cityID).
		SetResult(&body).
		SetError(&errorBody{}).
		Delete("/api/visits/{cityId}")
	if err := check("failed to remove visit", resp, err); err != nil {
		return 0, err
	}
	return body.Changes, nil
}

// IsVisited は都市の訪問記録があるかを返します。
func (c *Client) IsVisited(ctx context.Context, cityID string) (bool, error) {
	var body struct {
		CityID  string `json:"cityId"`
		Visited bool   `json:"visited"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("cityId", cityID).
		SetResult(&body).
		SetError(&errorBody{}).
		Get("/api/visits/{cityId}")
	if err := check("failed to check visit", resp, err); err != nil {
		return false, err
	}
	return body.Visited, nil
}

// Health はサーバーのヘルスチェックを行います。
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var body Health
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		SetError(&errorBody{}).
		Get("/api/health")
	if err := check("health check failed", resp, err); err != nil {
		return nil, err
	}
	return &body, nil
}

func check(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() || resp.StatusCode() >= 300 {
		se := &StatusError{Op: op, StatusCode: resp.StatusCode()}
		if body, ok := resp.Error().(*errorBody); ok && body != nil {
			se.Message = body.Error
		}
		return se
	}
	return nil
}
