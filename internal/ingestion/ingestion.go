package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/logger"
)

// ErrSourceUnavailable marks a failure to read or parse the operations
// workbook. Callers composing a full page response catch it at the composer
// boundary; direct callers may inspect it with errors.Is.
var ErrSourceUnavailable = errors.New("operations source unavailable")

// XLSXSource loads bank operations from an Excel workbook on disk.
//
// A fresh snapshot is read on every call: the service is stateless by design
// and never caches the table between requests.
type XLSXSource struct {
	path string
}

// NewXLSXSource returns a source bound to the given workbook path.
func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

// Path returns the workbook path the source reads from.
func (s *XLSXSource) Path() string { return s.path }

// Operations reads the workbook and returns all transaction rows in sheet
// order.
func (s *XLSXSource) Operations(ctx context.Context) ([]models.Transaction, error) {
	return LoadOperations(ctx, s.path)
}

// LoadOperations opens, validates and parses the operations workbook.
//
// It fails with a wrapped ErrSourceUnavailable on:
//   - an unreadable or missing file
//   - an empty workbook or a header row missing required columns
//   - a row whose amount cell is empty or non-numeric
//
// It tolerates empty or malformed optional cells (see recordToTransaction).
func LoadOperations(ctx context.Context, path string) ([]models.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSourceUnavailable)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read rows: %v", ErrSourceUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: workbook is empty", ErrSourceUnavailable)
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	out := make([]models.Transaction, 0, len(rows)-1)
	for i, rec := range rows[1:] {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Fully empty trailing rows happen in hand-edited workbooks.
		if isEmptyRow(rec) {
			continue
		}

		t, err := recordToTransaction(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrSourceUnavailable, i+2, err)
		}
		out = append(out, t)
	}

	logger.L().Debug().Str("path", path).Int("rows", len(out)).Msg("operations loaded")
	return out, nil
}

func isEmptyRow(rec []string) bool {
	for _, c := range rec {
		if c != "" {
			return false
		}
	}
	return true
}
