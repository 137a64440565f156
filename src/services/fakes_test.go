package services_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"strategy/src/clients/tinvest"
	"strategy/src/models"
)

// In-memory stand-ins for the repositories and clients, enough for the
// service tests to run without Postgres or the external APIs.

type fakeHoldingRepo struct {
	holdings []models.Holding
	nextID   int
}

func (r *fakeHoldingRepo) find(id int) *models.Holding {
	for i := range r.holdings {
		if r.holdings[i].ID == id {
			return &r.holdings[i]
		}
	}
	return nil
}

func (r *fakeHoldingRepo) ListAll(context.Context) ([]models.Holding, error) {
	return append([]models.Holding(nil), r.holdings...), nil
}

func (r *fakeHoldingRepo) ListByOwner(_ context.Context, ownerID int) ([]models.Holding, error) {
	var out []models.Holding
	for _, h := range r.holdings {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHoldingRepo) Create(_ context.Context, h *models.Holding) error {
	r.nextID++
	h.ID = r.nextID
	r.holdings = append(r.holdings, *h)
	return nil
}

func (r *fakeHoldingRepo) Delete(_ context.Context, id int) error {
	for i, h := range r.holdings {
		if h.ID == id {
			r.holdings = append(r.holdings[:i], r.holdings[i+1:]...)
			return nil
		}
	}
	return errors.New("holding not found")
}

func (r *fakeHoldingRepo) UpdateCurrentPrice(_ context.Context, id int, price float64) error {
	if h := r.find(id); h != nil {
		h.CurrentPrice = price
		return nil
	}
	return errors.New("holding not found")
}

func (r *fakeHoldingRepo) SetNotified(_ context.Context, id int, notified bool) error {
	if h := r.find(id); h != nil {
		h.Notified = notified
		return nil
	}
	return errors.New("holding not found")
}

func (r *fakeHoldingRepo) UpdateBuyPrice(_ context.Context, id int, price float64) error {
	if h := r.find(id); h != nil {
		h.BuyPrice = price
		return nil
	}
	return errors.New("holding not found")
}

func (r *fakeHoldingRepo) UpdateBuyCount(_ context.Context, id int, count int) error {
	if h := r.find(id); h != nil {
		h.BuyCount = count
		return nil
	}
	return errors.New("holding not found")
}

func (r *fakeHoldingRepo) UpdateBuyDate(_ context.Context, id int, date time.Time) error {
	if h := r.find(id); h != nil {
		h.BuyDate = date
		return nil
	}
	return errors.New("holding not found")
}

func (r *fakeHoldingRepo) UpdateTargetPrice(_ context.Context, id int, price float64) error {
	if h := r.find(id); h != nil {
		h.TargetPrice = price
		return nil
	}
	return errors.New("holding not found")
}

type fakeUserRepo struct {
	users     []models.User
	createErr error
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = len(r.users) + 1
	user.CreatedAt = time.Now()
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, errors.New("user not found")
}

type fakeSettingsRepo struct {
	settings map[int]*models.UserSettings
}

func (r *fakeSettingsRepo) GetByOwner(_ context.Context, ownerID int) (*models.UserSettings, error) {
	s, ok := r.settings[ownerID]
	if !ok {
		return nil, fmt.Errorf("no settings for owner %d", ownerID)
	}
	return s, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s *models.UserSettings) error {
	r.settings[s.OwnerID] = s
	return nil
}

type fakePriceRepo struct {
	rows         []models.InstrumentPrice
	replaceCalls int
}

func (r *fakePriceRepo) ReplaceAll(_ context.Context, prices []models.InstrumentPrice) error {
	r.replaceCalls++
	r.rows = append([]models.InstrumentPrice(nil), prices...)
	return nil
}

func (r *fakePriceRepo) GetByTicker(_ context.Context, ticker string) (*models.InstrumentPrice, error) {
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].Ticker == ticker {
			return &r.rows[i], nil
		}
	}
	return nil, errors.New("ticker not found")
}

func (r *fakePriceRepo) MapByTicker(context.Context) (map[string]models.InstrumentPrice, error) {
	out := make(map[string]models.InstrumentPrice)
	for _, row := range r.rows {
		out[row.Ticker] = row
	}
	return out, nil
}

type fakeDividendRepo struct {
	events map[int][]models.DividendEvent
}

func (r *fakeDividendRepo) ReplaceByOwner(_ context.Context, ownerID int, events []models.DividendEvent) error {
	if r.events == nil {
		r.events = make(map[int][]models.DividendEvent)
	}
	r.events[ownerID] = append([]models.DividendEvent(nil), events...)
	return nil
}

func (r *fakeDividendRepo) ListByOwner(_ context.Context, ownerID int) ([]models.DividendEvent, error) {
	return r.events[ownerID], nil
}

func (r *fakeDividendRepo) SetPriority(_ context.Context, id int, priority int) error {
	maxParts := map[int]int{1: 1, 3: 10, 5: 20}
	maxPart, ok := maxParts[priority]
	if !ok {
		return fmt.Errorf("priority must be 1, 3 or 5, got %d", priority)
	}
	for ownerID := range r.events {
		for i := range r.events[ownerID] {
			if r.events[ownerID][i].ID == id {
				r.events[ownerID][i].Priority = &priority
				r.events[ownerID][i].MaxPart = &maxPart
				return nil
			}
		}
	}
	return errors.New("event not found")
}

type fakeCandidateRepo struct {
	candidates map[int][]models.Candidate
}

func (r *fakeCandidateRepo) ReplaceByOwner(_ context.Context, ownerID int, candidates []models.Candidate) error {
	if r.candidates == nil {
		r.candidates = make(map[int][]models.Candidate)
	}
	r.candidates[ownerID] = append([]models.Candidate(nil), candidates...)
	return nil
}

func (r *fakeCandidateRepo) ListByOwner(_ context.Context, ownerID int) ([]models.Candidate, error) {
	return r.candidates[ownerID], nil
}

type fakeMarketClient struct {
	shares     []tinvest.Share
	prices     map[string]tinvest.Quotation
	failFIGI   string
	dividends  map[string][]tinvest.Dividend
	sharesErr  error
	priceCalls int
}

func (c *fakeMarketClient) Shares(context.Context) ([]tinvest.Share, error) {
	if c.sharesErr != nil {
		return nil, c.sharesErr
	}
	return c.shares, nil
}

func (c *fakeMarketClient) LastPrices(_ context.Context, figis []string) (map[string]tinvest.Quotation, error) {
	c.priceCalls++
	out := make(map[string]tinvest.Quotation)
	for _, figi := range figis {
		if figi == c.failFIGI {
			return nil, errors.New("upstream batch failure")
		}
		if q, ok := c.prices[figi]; ok {
			out[figi] = q
		}
	}
	return out, nil
}

func (c *fakeMarketClient) Dividends(_ context.Context, figi string, _, _ time.Time) ([]tinvest.Dividend, error) {
	dividends, ok := c.dividends[figi]
	if !ok {
		return nil, nil
	}
	return dividends, nil
}

type fakeNotifier struct {
	runs int
}

func (n *fakeNotifier) Run(context.Context) error {
	n.runs++
	return nil
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeBot struct {
	sent    []sentMessage
	sendErr error
}

func (b *fakeBot) SendMessage(_ context.Context, chatID int64, text string) error {
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, sentMessage{chatID: chatID, text: text})
	return nil
}
