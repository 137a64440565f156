package tinvest

import "time"

// Quotation is the API's split price encoding: integer units plus a
// fractional part in billionths. Units arrive as a JSON string.
type Quotation struct {
	Units int64 `json:"units,string"`
	Nano  int32 `json:"nano"`
}

// Value reconstructs the price as units + nano/1e9.
func (q Quotation) Value() float64 {
	return float64(q.Units) + float64(q.Nano)/1_000_000_000
}

// MoneyValue is a Quotation with a currency attached.
type MoneyValue struct {
	Currency string `json:"currency"`
	Units    int64  `json:"units,string"`
	Nano     int32  `json:"nano"`
}

func (m MoneyValue) Value() float64 {
	return float64(m.Units) + float64(m.Nano)/1_000_000_000
}

type Brand struct {
	LogoName string `json:"logoName"`
}

type Share struct {
	FIGI      string `json:"figi"`
	Ticker    string `json:"ticker"`
	ClassCode string `json:"classCode"`
	Currency  string `json:"currency"`
	Name      string `json:"name"`
	Brand     Brand  `json:"brand"`
}

type sharesResponse struct {
	Instruments []Share `json:"instruments"`
}

type lastPrice struct {
	FIGI  string    `json:"figi"`
	Price Quotation `json:"price"`
}

type lastPricesResponse struct {
	LastPrices []lastPrice `json:"lastPrices"`
}

type Dividend struct {
	DividendNet MoneyValue `json:"dividendNet"`
	LastBuyDate time.Time  `json:"lastBuyDate"`
}

type dividendsResponse struct {
	Dividends []Dividend `json:"dividends"`
}

type sharesRequest struct {
	InstrumentStatus string `json:"instrumentStatus"`
}

type lastPricesRequest struct {
	FIGI             []string `json:"figi"`
	InstrumentStatus string   `json:"instrumentStatus"`
}

type dividendsRequest struct {
	FIGI string `json:"figi"`
	From string `json:"from"`
	To   string `json:"to"`
}
