package report

import (
	"strings"

	"github.com/finpulse/finpulse/internal/domain/models"
)

// Search returns every transaction whose description or category contains the
// query as a case-folded literal substring. No pattern syntax is interpreted.
//
// Absent text fields behave as empty strings and never cause a failure. An
// empty query matches every row that has a non-empty description or category.
// Original table order is preserved.
func Search(txs []models.Transaction, query string) []models.Transaction {
	q := strings.ToLower(query)

	var out []models.Transaction
	for _, tx := range txs {
		if matchField(tx.Description, q) || matchField(tx.Category, q) {
			out = append(out, tx)
		}
	}
	return out
}

func matchField(field, foldedQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), foldedQuery)
}
