package report

import (
	"math"
	"strings"

	"github.com/finpulse/finpulse/internal/domain/models"
)

const cashbackShare = 0.01

// CardSummaries groups transactions by card number and computes per-card
// spending totals and cashback.
//
// Rows without a card number are ignored. For each card, TotalSpent is the
// sum of absolute values of outgoing (negative) amounts only; incoming
// amounts do not reduce it. A card seen only with incoming rows still gets a
// summary with zero totals. Cards appear in first-seen order.
func CardSummaries(txs []models.Transaction) []models.CardSummary {
	totals := make(map[string]float64)
	var order []string

	for _, tx := range txs {
		if tx.CardNumber == "" {
			continue
		}
		if _, seen := totals[tx.CardNumber]; !seen {
			totals[tx.CardNumber] = 0
			order = append(order, tx.CardNumber)
		}
		if tx.Amount < 0 {
			totals[tx.CardNumber] += -tx.Amount
		}
	}

	out := make([]models.CardSummary, 0, len(order))
	for _, card := range order {
		spent := round2(totals[card])
		out = append(out, models.CardSummary{
			LastDigits: maskCard(card),
			TotalSpent: spent,
			Cashback:   round2(spent * cashbackShare),
		})
	}
	return out
}

// TotalOutgoing sums the absolute values of outgoing (negative) amounts over
// the given rows, rounded to 2 decimals.
func TotalOutgoing(txs []models.Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Amount < 0 {
			total += -tx.Amount
		}
	}
	return round2(total)
}

// maskCard strips the "*" mask prefix the bank export uses ("*7197" → "7197").
// Identifiers without the prefix are reported as stored.
func maskCard(card string) string {
	return strings.TrimPrefix(card, "*")
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
