package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"strategy/src/config"
	"strategy/src/utils/requests"

	"golang.org/x/time/rate"
)

// Telegram allows roughly 30 messages per second per bot.
const messagesPerSecond = 25

type BotClientI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// BotClient sends messages through the Telegram bot HTTP API.
type BotClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	Token   string

	limiter *rate.Limiter
}

// NewClient creates a new instance of BotClient
func NewClient(cfg *config.Config) (*BotClient, error) {
	api := requests.NewExternalAPIService(nil)
	return &BotClient{
		API:     api,
		BaseURL: cfg.ExternalClients.Telegram.BaseURL,
		Token:   cfg.ExternalClients.Telegram.Token,
		limiter: rate.NewLimiter(rate.Limit(messagesPerSecond), messagesPerSecond),
	}, nil
}

// SendMessage delivers text to a chat. Anything but HTTP 200 is an error; the
// caller decides whether to retry on a later cycle.
func (c *BotClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params := url.Values{}
	params.Add("chat_id", strconv.FormatInt(chatID, 10))
	params.Add("text", text)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.BaseURL, c.Token)
	resp, err := c.API.Get(ctx, endpoint, "", params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sendMessage returned status %d", resp.StatusCode)
	}
	return nil
}
