package report

import (
	"math"
	"sort"

	"github.com/finpulse/finpulse/internal/domain/models"
)

// TopLimit is the number of transactions the top selection returns.
const TopLimit = 5

// TopTransactions returns the TopLimit transactions with the greatest
// absolute payment amount, fewer if the table is smaller.
//
// The sort is stable: among equal absolute amounts, original table order is
// preserved. The projection keeps the signed amount and renders the payment
// date in the workbook layout (empty string when the date is absent).
func TopTransactions(txs []models.Transaction) []models.TopTransaction {
	idx := make([]int, len(txs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return math.Abs(txs[idx[a]].Amount) > math.Abs(txs[idx[b]].Amount)
	})

	n := len(idx)
	if n > TopLimit {
		n = TopLimit
	}

	out := make([]models.TopTransaction, 0, n)
	for _, i := range idx[:n] {
		tx := txs[i]
		date := ""
		if !tx.PaymentDate.IsZero() {
			date = tx.PaymentDate.Format(models.PaymentDateLayout)
		}
		out = append(out, models.TopTransaction{
			Date:        date,
			Amount:      tx.Amount,
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	return out
}
