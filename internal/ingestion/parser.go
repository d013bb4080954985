package ingestion

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/finpulse/finpulse/internal/domain/models"
)

// expectedHeaders lists the workbook columns the loader needs. The bank export
// carries more columns than these; extra ones are ignored, but every listed
// header must be present or the load fails.
var expectedHeaders = []string{
	"Дата операции",
	"Дата платежа",
	"Сумма платежа",
	"Категория",
	"Описание",
	"Номер карты",
}

// columns holds the resolved cell index of each required header.
type columns struct {
	operationDate int
	paymentDate   int
	amount        int
	category      int
	description   int
	cardNumber    int
}

// mapColumns resolves header names to cell indexes.
//
// Unlike the fixed-order B3 exports this loader grew out of, bank exports are
// not stable in column order, so headers are matched by name. A missing
// required header fails the whole load.
func mapColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, h := range expectedHeaders {
		if _, ok := idx[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing required columns: %v", missing)
	}

	return columns{
		operationDate: idx["Дата операции"],
		paymentDate:   idx["Дата платежа"],
		amount:        idx["Сумма платежа"],
		category:      idx["Категория"],
		description:   idx["Описание"],
		cardNumber:    idx["Номер карты"],
	}, nil
}

// recordToTransaction converts one workbook row into a models.Transaction.
//
// It is STRICT about the amount (always present and numeric, comma or dot
// decimal separator) and TOLERANT about everything else: empty or malformed
// dates become the zero time, which excludes the row from date-windowed
// reports without failing the load; empty text cells stay empty strings.
func recordToTransaction(rec []string, cols columns) (models.Transaction, error) {
	var t models.Transaction

	s := strings.TrimSpace(cell(rec, cols.amount))
	if s == "" {
		return t, fmt.Errorf("empty amount")
	}
	v, err := parseAmount(s)
	if err != nil {
		return t, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	t.Amount = v

	if s := strings.TrimSpace(cell(rec, cols.operationDate)); s != "" {
		if d, err := time.Parse(models.OperationDateLayout, s); err == nil {
			t.OperationDate = d
		}
	}
	if s := strings.TrimSpace(cell(rec, cols.paymentDate)); s != "" {
		if d, err := time.Parse(models.PaymentDateLayout, s); err == nil {
			t.PaymentDate = d
		}
	}

	t.Category = strings.TrimSpace(cell(rec, cols.category))
	t.Description = strings.TrimSpace(cell(rec, cols.description))
	t.CardNumber = strings.TrimSpace(cell(rec, cols.cardNumber))

	return t, nil
}

// cell returns the value at index i, or "" when the row is shorter than the
// header. excelize trims trailing empty cells from rows.
func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

// parseAmount parses a signed decimal that may use a comma as the decimal
// separator and spaces as thousands separators (both appear in bank exports).
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "") // non-breaking space
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
