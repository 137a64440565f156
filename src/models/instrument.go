package models

// InstrumentPrice is one row of the global price snapshot. The whole table is
// replaced on every refresh, so rows carry no identity across cycles.
type InstrumentPrice struct {
	ID        int    `db:"id"`
	Ticker    string `db:"ticker"`
	ClassCode string `db:"class_code"`
	Units     int64  `db:"units"`
	Nano      int32  `db:"nano"`
	LogoURL   string `db:"logo_url"`
}

// Price reconstructs the quotation as units + nano/1e9.
func (p *InstrumentPrice) Price() float64 {
	return float64(p.Units) + float64(p.Nano)/1_000_000_000
}
