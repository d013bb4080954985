package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finpulse/finpulse/internal/domain/dto"
	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/report"
	"github.com/finpulse/finpulse/internal/service"
)

// Handler provides HTTP handlers for the reporting endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Interact with the report service
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.ReportService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.ReportService) *Handler {
	return &Handler{svc: svc}
}

// GetPage handles GET /api/v1/page requests.
//
// The composer boundary rule applies here: any composition failure is
// converted to the generic error payload, never a raw internal error. An
// invalid reference timestamp is the caller's fault and maps to 400;
// everything else maps to 500.
//
// GetPage godoc
// @Summary      Main page report
// @Description  Greeting, card summaries, top transactions and market data for a reference timestamp
// @Tags         reports
// @Produce      json
// @Param        datetime  query     string  false  "Reference timestamp in YYYY-MM-DD HH:MM:SS (default: now)"  example(2024-10-19 14:15:10)
// @Success      200       {object}  models.Page            "Success"
// @Failure      400       {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500       {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/page [get]
func (h *Handler) GetPage(c *gin.Context) {
	datetime := strings.TrimSpace(c.Query("datetime"))
	if datetime == "" {
		datetime = time.Now().Format(models.PageDateTimeLayout)
	}

	page, err := h.svc.MainPage(c.Request.Context(), datetime)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, report.ErrInvalidDate) {
			status = http.StatusBadRequest
		}
		c.JSON(status, dto.NewErrorResponse(service.GenericErrorMessage, nil))
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetCategoryReport handles GET /api/v1/reports/category requests.
//
// GetCategoryReport godoc
// @Summary      Spending by category
// @Description  Transactions of one category within the 90 days preceding the reference date
// @Tags         reports
// @Produce      json
// @Param        category  query     string  true   "Category label (exact match)"  example(Супермаркеты)
// @Param        date      query     string  false  "Reference date in YYYY-MM-DD (default: today)"  example(2024-10-19)
// @Success      200       {object}  dto.CategoryReportResponse  "Success"
// @Failure      400       {object}  dto.ErrorResponse           "Bad Request"
// @Failure      500       {object}  dto.ErrorResponse           "Internal Error"
// @Router       /api/v1/reports/category [get]
func (h *Handler) GetCategoryReport(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("category is required", nil))
		return
	}
	date := strings.TrimSpace(c.Query("date"))

	txs, err := h.svc.SpendingByCategory(c.Request.Context(), category, date)
	if err != nil {
		if errors.Is(err, report.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build category report", nil))
		return
	}

	// The window was already validated by the service call above.
	start, end, _ := report.CategoryWindow(date)

	c.JSON(http.StatusOK, dto.CategoryReportResponse{
		Category:     category,
		From:         start.Format(models.ReportDateLayout),
		To:           end.Format(models.ReportDateLayout),
		Transactions: dto.NewTransactionResponses(txs),
		TotalSpent:   report.TotalOutgoing(txs),
	})
}

// GetSearch handles GET /api/v1/search requests.
//
// An empty query is legal and matches every transaction carrying any text.
//
// GetSearch godoc
// @Summary      Search transactions
// @Description  Case-insensitive literal substring search over description and category
// @Tags         reports
// @Produce      json
// @Param        query  query     string  false  "Search string"  example(магазин)
// @Success      200    {object}  dto.SearchResponse      "Success"
// @Failure      500    {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/search [get]
func (h *Handler) GetSearch(c *gin.Context) {
	query := c.Query("query")

	txs, err := h.svc.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to search transactions", nil))
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Query:   query,
		Count:   len(txs),
		Results: dto.NewTransactionResponses(txs),
	})
}
