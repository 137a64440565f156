package schemas

import "time"

// RefreshResult is what every refresh trigger returns to its caller.
type RefreshResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DashboardRow is the per-holding tuple consumed by the web layer.
type DashboardRow struct {
	LogoURL       string    `json:"logoUrl"`
	BuyPrice      float64   `json:"buyPrice"`
	BuyCount      int       `json:"buyCount"`
	BuyDate       time.Time `json:"buyDate"`
	HoldingMonths int       `json:"holdingMonths"`
	CurrentPrice  float64   `json:"currentPrice"`
	PriceDiff     float64   `json:"priceDiff"`
	ExpectedPrice float64   `json:"expectedPrice"`
	CanSell       bool      `json:"canSell"`
	TargetPrice   float64   `json:"targetPrice"`
	IsDanger      bool      `json:"isDanger"`
	ID            int       `json:"id"`
}

type DashboardResponse struct {
	Rows             []DashboardRow `json:"rows"`
	TotalAssets      int            `json:"totalAssets"`
	TotalPrice       float64        `json:"totalPrice"`
	TotalProfit      float64        `json:"totalProfit"`
	MaxHoldingMonths int            `json:"maxHoldingMonths"`
}

// DividendRow is the per-event tuple of the dividends view.
type DividendRow struct {
	LogoURL       string    `json:"logoUrl"`
	CompanyName   string    `json:"companyName"`
	Payday        time.Time `json:"payday"`
	Dividend      float64   `json:"dividend"`
	Profitability float64   `json:"profitability"`
	Price         float64   `json:"price"`
	Priority      *int      `json:"priority"`
	MaxPart       *int      `json:"maxPart"`
	ID            int       `json:"id"`
	Ticker        string    `json:"ticker"`
}

type DividendsResponse struct {
	DateFrom time.Time     `json:"dateFrom"`
	DateTo   time.Time     `json:"dateTo"`
	Rows     []DividendRow `json:"rows"`
}

// CandidateRow is the per-candidate tuple of the candidates view.
type CandidateRow struct {
	LogoURL  string  `json:"logoUrl"`
	Ticker   string  `json:"ticker"`
	Price    float64 `json:"price"`
	Count    int     `json:"count"`
	Costs    float64 `json:"costs"`
	Share    float64 `json:"share"`
	Dividend float64 `json:"dividend"`
}

type CandidatesResponse struct {
	DateFrom      time.Time      `json:"dateFrom"`
	DateTo        time.Time      `json:"dateTo"`
	Rows          []CandidateRow `json:"rows"`
	TotalCount    int            `json:"totalCount"`
	TotalCosts    float64        `json:"totalCosts"`
	TotalShare    float64        `json:"totalShare"`
	TotalDividend float64        `json:"totalDividend"`
}
