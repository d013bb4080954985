package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/finpulse/finpulse/internal/domain/models"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "oops"}
	if e.Error() != "oops" {
		t.Fatalf("want 'oops' got %q", e.Error())
	}
	e2 := ErrorResponse{Message: "oops", Details: "bad"}
	if e2.Error() != "oops: bad" {
		t.Fatalf("want 'oops: bad' got %q", e2.Error())
	}
}

func TestNewErrorResponse(t *testing.T) {
	// without inner error
	e := NewErrorResponse("msg", nil)
	if e.Message != "msg" || e.Details != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set")
	}

	// with inner error
	err := errors.New("boom")
	e2 := NewErrorResponse("msg", err)
	if e2.Details != "boom" || e2.Message != "msg" {
		t.Fatalf("unexpected %+v", e2)
	}
}

// The error payload contract is {"error": "..."}; the message must serialize
// under the "error" key.
func TestErrorResponse_JSONShape(t *testing.T) {
	raw, err := json.Marshal(NewErrorResponse("Произошла ошибка.", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["error"] != "Произошла ошибка." {
		t.Fatalf("unexpected shape: %s", raw)
	}
	if _, ok := out["details"]; ok {
		t.Fatalf("empty details must be omitted: %s", raw)
	}
}

func TestNewTransactionResponse(t *testing.T) {
	op := time.Date(2021, 12, 31, 16, 44, 0, 0, time.UTC)
	pay := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	tx := models.Transaction{
		OperationDate: op,
		PaymentDate:   pay,
		Amount:        -160.89,
		Category:      "Супермаркеты",
		Description:   "Колхоз",
		CardNumber:    "*7197",
	}

	resp := NewTransactionResponse(tx)
	if resp.OperationDate != "31.12.2021 16:44:00" || resp.PaymentDate != "31.12.2021" {
		t.Fatalf("dates: %+v", resp)
	}
	if resp.Amount != -160.89 || resp.CardNumber != "*7197" {
		t.Fatalf("fields: %+v", resp)
	}

	// Absent dates render as empty strings.
	empty := NewTransactionResponse(models.Transaction{Amount: 1})
	if empty.OperationDate != "" || empty.PaymentDate != "" {
		t.Fatalf("zero dates must render empty: %+v", empty)
	}
}

func TestNewTransactionResponses_KeepsOrder(t *testing.T) {
	txs := []models.Transaction{
		{Description: "a"},
		{Description: "b"},
	}
	// Amount zero is fine here; ordering is what matters.
	out := NewTransactionResponses(txs)
	if len(out) != 2 || out[0].Description != "a" || out[1].Description != "b" {
		t.Fatalf("unexpected: %+v", out)
	}
}
