package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/finpulse/finpulse/internal/domain/dto"
	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/report"
	"github.com/finpulse/finpulse/internal/service"
)

type mockReportService struct {
	page    *models.Page
	pageErr error
	txs     []models.Transaction
	txsErr  error
}

func (m *mockReportService) MainPage(_ context.Context, _ string) (*models.Page, error) {
	return m.page, m.pageErr
}

func (m *mockReportService) SpendingByCategory(_ context.Context, _, date string) ([]models.Transaction, error) {
	if m.txsErr != nil {
		return nil, m.txsErr
	}
	if date != "" {
		if _, _, err := report.CategoryWindow(date); err != nil {
			return nil, err
		}
	}
	return m.txs, nil
}

func (m *mockReportService) Search(_ context.Context, _ string) ([]models.Transaction, error) {
	return m.txs, m.txsErr
}

var _ service.ReportService = (*mockReportService)(nil)

func setupRouterWithMock(s service.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/page", h.GetPage)
	v1.GET("/reports/category", h.GetCategoryReport)
	v1.GET("/search", h.GetSearch)
	return r
}

func TestGetPage_TableDriven(t *testing.T) {
	okPage := &models.Page{
		Greeting: "Добрый день",
		Cards:    []models.CardSummary{{LastDigits: "1234", TotalSpent: 1000, Cashback: 10}},
	}

	cases := []struct {
		name   string
		svc    *mockReportService
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "success",
			svc:    &mockReportService{page: okPage},
			query:  "/api/v1/page?datetime=2024-10-19+14:15:10",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out models.Page
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Greeting != "Добрый день" || len(out.Cards) != 1 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "default datetime",
			svc:    &mockReportService{page: okPage},
			query:  "/api/v1/page",
			status: http.StatusOK,
		},
		{
			name:   "invalid timestamp becomes generic error",
			svc:    &mockReportService{pageErr: fmt.Errorf("wrap: %w", report.ErrInvalidDate)},
			query:  "/api/v1/page?datetime=invalid-date",
			status: http.StatusBadRequest,
			assert: func(t *testing.T, body []byte) {
				var out map[string]any
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out["error"] != service.GenericErrorMessage {
					t.Fatalf("expected generic error payload, got %v", out)
				}
				if _, leaked := out["details"]; leaked {
					t.Fatalf("internal details must not leak: %v", out)
				}
			},
		},
		{
			name:   "source failure becomes generic error",
			svc:    &mockReportService{pageErr: errors.New("open ./data/operations.xlsx: no such file")},
			query:  "/api/v1/page?datetime=2024-10-19+14:15:10",
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, body []byte) {
				var out dto.ErrorResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Message != service.GenericErrorMessage || out.Details != "" {
					t.Fatalf("raw error leaked: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetCategoryReport_TableDriven(t *testing.T) {
	txs := []models.Transaction{
		{Category: "Продукты", Amount: -1000, Description: "Покупка продуктов"},
		{Category: "Продукты", Amount: -1500, Description: "Покупка продуктов"},
	}

	cases := []struct {
		name   string
		svc    *mockReportService
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing category",
			svc:    &mockReportService{},
			query:  "/api/v1/reports/category",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid date",
			svc:    &mockReportService{},
			query:  "/api/v1/reports/category?category=Продукты&date=19.10.2024",
			status: http.StatusBadRequest,
		},
		{
			name:   "service failure",
			svc:    &mockReportService{txsErr: errors.New("boom")},
			query:  "/api/v1/reports/category?category=Продукты",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockReportService{txs: txs},
			query:  "/api/v1/reports/category?category=Продукты&date=2024-10-19",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.CategoryReportResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Category != "Продукты" || len(out.Transactions) != 2 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.From != "2024-07-21" || out.To != "2024-10-19" {
					t.Fatalf("window: from=%s to=%s", out.From, out.To)
				}
				if out.TotalSpent != 2500 {
					t.Fatalf("total=%v", out.TotalSpent)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetSearch(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Покупка в магазине", Category: "Продукты", Amount: 1000},
	}
	r := setupRouterWithMock(&mockReportService{txs: txs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search?query=магазин", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var out dto.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Count != 1 || out.Query != "магазин" || out.Results[0].Description != "Покупка в магазине" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestGetSearch_ServiceFailure(t *testing.T) {
	r := setupRouterWithMock(&mockReportService{txsErr: errors.New("boom")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search?query=x", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}
