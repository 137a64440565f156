package tinvest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"strategy/src/config"
	"strategy/src/ratelimit"
	"strategy/src/utils"
	"strategy/src/utils/requests"
)

const (
	instrumentsService = "/tinkoff.public.invest.api.contract.v1.InstrumentsService"
	marketDataService  = "/tinkoff.public.invest.api.contract.v1.MarketDataService"

	// BatchSize is the number of FIGIs per last-prices request.
	BatchSize = 50

	sharesCacheTTL = 5 * time.Minute
)

type ServiceClientI interface {
	Shares(ctx context.Context) ([]Share, error)
	LastPrices(ctx context.Context, figis []string) (map[string]Quotation, error)
	Dividends(ctx context.Context, figi string, from, to time.Time) ([]Dividend, error)
}

// ServiceClient is a struct that uses ExternalAPIService to interact with the
// brokerage market-data API.
type ServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	Token   string

	limiter     *ratelimit.Limiter
	sharesCache *utils.Cache[[]Share]
}

// NewClient creates a new instance of ServiceClient
func NewClient(cfg *config.Config, limiter *ratelimit.Limiter) (*ServiceClient, error) {
	api := requests.NewExternalAPIService(nil)
	return &ServiceClient{
		API:         api,
		BaseURL:     cfg.ExternalClients.TInvest.BaseURL,
		Token:       cfg.ExternalClients.TInvest.Token,
		limiter:     limiter,
		sharesCache: utils.NewCache[[]Share](),
	}, nil
}

func (c *ServiceClient) post(ctx context.Context, endpoint string, body, out interface{}) error {
	if err := c.limiter.Acquire(ctx); err != nil {
		return err
	}

	resp, err := c.API.Post(ctx, c.BaseURL+endpoint, c.Token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("brokerage API returned %d for %s: %s", resp.StatusCode, endpoint, responseBody)
	}
	c.limiter.Record(ctx)

	return json.Unmarshal(responseBody, out)
}

// Shares fetches the full instrument list. The price and dividend refreshes
// both need it, so the result is cached for a short while.
func (c *ServiceClient) Shares(ctx context.Context) ([]Share, error) {
	if shares, ok := c.sharesCache.Get(); ok {
		return shares, nil
	}

	var response sharesResponse
	err := c.post(ctx, instrumentsService+"/Shares", sharesRequest{
		InstrumentStatus: "INSTRUMENT_STATUS_BASE",
	}, &response)
	if err != nil {
		return nil, err
	}

	c.sharesCache.Set(response.Instruments, sharesCacheTTL)
	return response.Instruments, nil
}

// LastPrices fetches the last known price for a batch of FIGIs. FIGIs missing
// from the response are simply absent from the returned map.
func (c *ServiceClient) LastPrices(ctx context.Context, figis []string) (map[string]Quotation, error) {
	var response lastPricesResponse
	err := c.post(ctx, marketDataService+"/GetLastPrices", lastPricesRequest{
		FIGI:             figis,
		InstrumentStatus: "INSTRUMENT_STATUS_ALL",
	}, &response)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]Quotation, len(response.LastPrices))
	for _, price := range response.LastPrices {
		prices[price.FIGI] = price.Price
	}
	return prices, nil
}

// Dividends fetches the dividend events for one instrument in a date range.
func (c *ServiceClient) Dividends(ctx context.Context, figi string, from, to time.Time) ([]Dividend, error) {
	var response dividendsResponse
	err := c.post(ctx, instrumentsService+"/GetDividends", dividendsRequest{
		FIGI: figi,
		From: from.Format(time.RFC3339),
		To:   to.Format(time.RFC3339),
	}, &response)
	if err != nil {
		return nil, err
	}
	return response.Dividends, nil
}

// LogoURL builds the CDN address of an instrument logo from its brand logo
// name ("MOEX.png" -> ".../MOEXx160.png"). Empty when the brand has no logo.
func LogoURL(brand Brand) string {
	if len(brand.LogoName) <= 4 {
		return ""
	}
	return fmt.Sprintf("https://invest-brands.cdn-tinkoff.ru/%sx160.png", brand.LogoName[:len(brand.LogoName)-4])
}
