package utils_test

import (
	"testing"
	"time"

	"strategy/src/utils"
)

func TestCache(t *testing.T) {
	t.Run("returns the cached value while valid", func(t *testing.T) {
		cache := utils.NewCache[[]string]()
		cache.Set([]string{"SBER", "GAZP"}, 1*time.Minute)

		value, found := cache.Get()
		if !found || len(value) != 2 {
			t.Error("expected two cached tickers, got", value)
		}
	})

	t.Run("misses before anything was set", func(t *testing.T) {
		cache := utils.NewCache[[]string]()

		if _, found := cache.Get(); found {
			t.Error("expected cache miss on a fresh cache")
		}
	})

	t.Run("misses after expiration", func(t *testing.T) {
		cache := utils.NewCache[[]string]()
		cache.Set([]string{"SBER"}, 10*time.Millisecond)
		time.Sleep(20 * time.Millisecond)

		if value, found := cache.Get(); found {
			t.Error("expected cache miss, got", value)
		}
	})

	t.Run("misses after clear", func(t *testing.T) {
		cache := utils.NewCache[[]string]()
		cache.Set([]string{"SBER"}, 1*time.Minute)
		cache.Clear()

		if value, found := cache.Get(); found {
			t.Error("expected cache miss after clear, got", value)
		}
	})
}
