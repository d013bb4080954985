package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/domain/models"
)

// ErrInvalidDate marks a reference date or timestamp that does not parse
// under the expected layout. It is propagated to direct callers; only the
// page composer boundary converts it into a generic error payload.
var ErrInvalidDate = errors.New("invalid date")

// categoryWindowDays is the trailing window of the category report.
const categoryWindowDays = 90

// SpendingByCategory returns every transaction whose category equals the
// given label exactly and whose payment date falls in the closed interval
// [date−90d, date].
//
// date is an optional ISO date ("2006-01-02"); when empty, the current date
// is used. A malformed date fails with ErrInvalidDate. Rows without a parsed
// payment date are never in the window. Original table order is preserved;
// an empty result is not an error.
func SpendingByCategory(txs []models.Transaction, category string, date string) ([]models.Transaction, error) {
	end, err := resolveReportDate(date)
	if err != nil {
		return nil, err
	}
	start := end.AddDate(0, 0, -categoryWindowDays)

	var out []models.Transaction
	for _, tx := range txs {
		if tx.Category != category {
			continue
		}
		if tx.PaymentDate.IsZero() {
			continue
		}
		if tx.PaymentDate.Before(start) || tx.PaymentDate.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

// CategoryWindow reports the window bounds SpendingByCategory would use for
// the given reference date. Exposed for response building.
func CategoryWindow(date string) (start, end time.Time, err error) {
	end, err = resolveReportDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return end.AddDate(0, 0, -categoryWindowDays), end, nil
}

func resolveReportDate(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(models.ReportDateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a %s date", ErrInvalidDate, date, models.ReportDateLayout)
	}
	return d, nil
}
