package dto

import "github.com/finpulse/finpulse/internal/domain/models"

// TransactionResponse is the API projection of a single transaction row.
//
// Dates are rendered in the workbook layouts ("02.01.2006 15:04:05" for the
// operation date, "02.01.2006" for the payment date) and empty when absent.
type TransactionResponse struct {
	OperationDate string  `json:"operation_date" example:"31.12.2021 16:44:00"`
	PaymentDate   string  `json:"payment_date" example:"31.12.2021"`
	Amount        float64 `json:"amount" example:"-160.89"`
	Category      string  `json:"category" example:"Супермаркеты"`
	Description   string  `json:"description" example:"Колхоз"`
	CardNumber    string  `json:"card_number" example:"*7197"`
}

// NewTransactionResponse projects a domain transaction into its API shape.
func NewTransactionResponse(tx models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		Amount:      tx.Amount,
		Category:    tx.Category,
		Description: tx.Description,
		CardNumber:  tx.CardNumber,
	}
	if !tx.OperationDate.IsZero() {
		resp.OperationDate = tx.OperationDate.Format(models.OperationDateLayout)
	}
	if !tx.PaymentDate.IsZero() {
		resp.PaymentDate = tx.PaymentDate.Format(models.PaymentDateLayout)
	}
	return resp
}

// NewTransactionResponses maps a slice of rows, keeping their order.
func NewTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransactionResponse(tx))
	}
	return out
}

// CategoryReportResponse is returned by GET /api/v1/reports/category.
//
// Transactions preserve their original workbook order; TotalSpent sums the
// absolute values of the outgoing amounts among them.
type CategoryReportResponse struct {
	Category     string                `json:"category" example:"Супермаркеты"`
	From         string                `json:"from" example:"2024-07-21"`
	To           string                `json:"to" example:"2024-10-19"`
	Transactions []TransactionResponse `json:"transactions"`
	TotalSpent   float64               `json:"total_spent" example:"2800.00"`
}

// SearchResponse is returned by GET /api/v1/search.
type SearchResponse struct {
	Query   string                `json:"query" example:"магазин"`
	Count   int                   `json:"count" example:"2"`
	Results []TransactionResponse `json:"results"`
}
