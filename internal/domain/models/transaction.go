package models

import "time"

// Layouts used by the operations workbook and the public API.
//
//   - OperationDateLayout: «Дата операции» cells, e.g. "31.12.2021 16:44:00".
//   - PaymentDateLayout:   «Дата платежа» cells, e.g. "31.12.2021".
//   - ReportDateLayout:    reference dates in report requests (ISO date).
//   - PageDateTimeLayout:  reference timestamp of the main page request.
const (
	OperationDateLayout = "02.01.2006 15:04:05"
	PaymentDateLayout   = "02.01.2006"
	ReportDateLayout    = "2006-01-02"
	PageDateTimeLayout  = "2006-01-02 15:04:05"
)

// Transaction represents a single row of the bank operations workbook.
//
// Amount is always present: rows with an unparsable amount are rejected at
// load time. Dates, category, description and card number are optional; a
// zero time or empty string marks an absent value. A transaction with a zero
// PaymentDate is excluded from date-windowed reports but still participates
// in card aggregation, top selection and text search.
type Transaction struct {
	OperationDate time.Time // «Дата операции», zero if absent or unparsable
	PaymentDate   time.Time // «Дата платежа», zero if absent or unparsable
	Amount        float64   // «Сумма платежа», negative = outgoing
	Category      string    // «Категория», empty if absent
	Description   string    // «Описание», empty if absent
	CardNumber    string    // «Номер карты», usually "*XXXX", empty if absent
}
