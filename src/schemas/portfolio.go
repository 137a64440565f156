package schemas

// CreateUserRequest registers an account. Settings are created with defaults
// alongside it.
type CreateUserRequest struct {
	Username string `json:"username"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// SettingsUpdate carries a partial settings change. Nil fields are left
// untouched. Dates use the 2006-01-02 layout.
type SettingsUpdate struct {
	AvailableCapital  *int     `json:"availableCapital,omitempty"`
	BrokerCommission  *float64 `json:"brokerCommission,omitempty"`
	DividendTax       *float64 `json:"dividendTax,omitempty"`
	CentralBankRate   *float64 `json:"centralBankRate,omitempty"`
	DividendsFromDate *string  `json:"dividendsFromDate,omitempty"`
	DividendsToDate   *string  `json:"dividendsToDate,omitempty"`
	ChatID            *int64   `json:"chatId,omitempty"`
}

type SettingsResponse struct {
	AvailableCapital  int     `json:"availableCapital"`
	BrokerCommission  float64 `json:"brokerCommission"`
	DividendTax       float64 `json:"dividendTax"`
	CentralBankRate   float64 `json:"centralBankRate"`
	DividendsFromDate string  `json:"dividendsFromDate"`
	DividendsToDate   string  `json:"dividendsToDate"`
	ChatID            int64   `json:"chatId"`
}

// NewHoldingRequest adds a tracked position for an owner.
type NewHoldingRequest struct {
	Ticker      string  `json:"ticker"`
	BuyPrice    float64 `json:"buyPrice"`
	BuyCount    int     `json:"buyCount"`
	BuyDate     string  `json:"buyDate"`
	TargetPrice float64 `json:"targetPrice"`
}

// HoldingFieldUpdate changes exactly one of the user-editable holding fields.
// Field is one of buy_price, buy_count, buy_date, target_price.
type HoldingFieldUpdate struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PriorityUpdate assigns an investment priority to a dividend event.
type PriorityUpdate struct {
	Priority int `json:"priority"`
}
