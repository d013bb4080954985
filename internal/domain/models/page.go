package models

// CardSummary is the per-card spending summary derived from the full
// transaction set. TotalSpent sums the absolute values of outgoing (negative)
// amounts only; Cashback is 1% of TotalSpent rounded to 2 decimals.
//
// swagger:model CardSummary
type CardSummary struct {
	LastDigits string  `json:"last_digits" example:"7197"`
	TotalSpent float64 `json:"total_spent" example:"1500.50"`
	Cashback   float64 `json:"cashback" example:"15.01"`
}

// TopTransaction is the projection of one of the transactions with the
// greatest absolute payment amount. Amount keeps its original sign.
//
// swagger:model TopTransaction
type TopTransaction struct {
	Date        string  `json:"date" example:"31.12.2021"`
	Amount      float64 `json:"amount" example:"-500.00"`
	Category    string  `json:"category" example:"Продукты"`
	Description string  `json:"description" example:"Магазин"`
}

// CurrencyRate is one exchange rate resolved for a user-configured currency.
//
// swagger:model CurrencyRate
type CurrencyRate struct {
	Currency string  `json:"currency" example:"USD"`
	Rate     float64 `json:"rate" example:"73.45"`
}

// Page is the aggregate produced for one main page request.
//
// CurrencyRates and StockPrices stay nil when the corresponding provider
// failed or no user settings were available; the rest of the page is still
// populated. A nil map value inside StockPrices means the provider could not
// resolve that particular symbol.
//
// swagger:model Page
type Page struct {
	Greeting        string              `json:"greeting" example:"Добрый день"`
	Cards           []CardSummary       `json:"cards"`
	TopTransactions []TopTransaction    `json:"top_transactions"`
	CurrencyRates   []CurrencyRate      `json:"currency_rates"`
	StockPrices     map[string]*float64 `json:"stock_prices"`
}

// UserSettings holds the symbol lists configured by the user for page
// enrichment.
type UserSettings struct {
	UserCurrencies []string `json:"user_currencies"`
	UserStocks     []string `json:"user_stocks"`
}
