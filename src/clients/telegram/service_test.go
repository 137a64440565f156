package telegram_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"strategy/src/clients/telegram"
	"strategy/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T, handler http.HandlerFunc) *telegram.BotClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.ExternalClients.Telegram.BaseURL = server.URL
	cfg.ExternalClients.Telegram.Token = "bot-token"

	client, err := telegram.NewClient(cfg)
	require.NoError(t, err)
	return client
}

func TestSendMessage(t *testing.T) {
	t.Run("delivers chat id and text as query parameters", func(t *testing.T) {
		bot := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/botbot-token/sendMessage", r.URL.Path)
			assert.Equal(t, "42", r.URL.Query().Get("chat_id"))
			assert.Equal(t, "Stock SBER can be sold!", r.URL.Query().Get("text"))
			w.WriteHeader(http.StatusOK)
		})

		err := bot.SendMessage(context.Background(), 42, "Stock SBER can be sold!")
		assert.NoError(t, err)
	})

	t.Run("anything but 200 is an error", func(t *testing.T) {
		bot := newTestBot(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := bot.SendMessage(context.Background(), 42, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}
