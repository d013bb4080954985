package report

import (
	"testing"

	"github.com/finpulse/finpulse/internal/domain/models"
)

func searchFixture() []models.Transaction {
	return []models.Transaction{
		{Description: "Покупка в магазине", Category: "Продукты", Amount: 1000},
		{Description: "Оплата услуги", Category: "Услуги", Amount: -500},
		{Description: "Возврат товара", Category: "Возвраты", Amount: 1500},
		{Description: "Покупка онлайн", Category: "Интернет-магазин", Amount: 2000},
	}
}

func TestSearch_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantDescs []string
	}{
		{
			name:      "case-folded description match",
			query:     "покупка",
			wantDescs: []string{"Покупка в магазине", "Покупка онлайн"},
		},
		{
			name:      "no match",
			query:     "неизвестная строка",
			wantDescs: nil,
		},
		{
			name:      "single match",
			query:     "возврат",
			wantDescs: []string{"Возврат товара"},
		},
		{
			name:      "matches description or category",
			query:     "магазин",
			wantDescs: []string{"Покупка в магазине", "Покупка онлайн"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(searchFixture(), tc.query)
			if len(got) != len(tc.wantDescs) {
				t.Fatalf("len=%d, want %d (%+v)", len(got), len(tc.wantDescs), got)
			}
			for i, d := range tc.wantDescs {
				if got[i].Description != d {
					t.Fatalf("result %d = %q, want %q", i, got[i].Description, d)
				}
			}
		})
	}
}

func TestSearch_LiteralNotPattern(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Оплата a.b"},
		{Description: "Оплата axb"},
	}
	got := Search(txs, "a.b")
	if len(got) != 1 || got[0].Description != "Оплата a.b" {
		t.Fatalf("query must be treated literally: %+v", got)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Покупка", Category: ""},
		{Description: "", Category: "Продукты"},
		{Description: "", Category: "", Amount: 10}, // both fields absent
	}
	got := Search(txs, "")
	if len(got) != 2 {
		t.Fatalf("empty query matches rows with any text field set: %+v", got)
	}
}

func TestSearch_AbsentFieldsNeverFail(t *testing.T) {
	txs := []models.Transaction{
		{Description: "", Category: ""},
		{Description: "Билла", Category: ""},
	}
	got := Search(txs, "билла")
	if len(got) != 1 || got[0].Description != "Билла" {
		t.Fatalf("unexpected: %+v", got)
	}
}
