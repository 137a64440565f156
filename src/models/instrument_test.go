package models_test

import (
	"testing"

	"strategy/src/models"

	"github.com/stretchr/testify/assert"
)

func TestInstrumentPrice(t *testing.T) {
	t.Run("reconstructs units and nano", func(t *testing.T) {
		cases := []struct {
			units    int64
			nano     int32
			expected float64
		}{
			{283, 500_000_000, 283.5},
			{0, 0, 0},
			{10, 250_000_000, 10.25},
			{1, 1, 1.000000001},
		}
		for _, c := range cases {
			p := models.InstrumentPrice{Units: c.units, Nano: c.nano}
			assert.InDelta(t, c.expected, p.Price(), 1e-12)
		}
	})

	t.Run("matches the encoding formula exactly", func(t *testing.T) {
		for nano := int32(0); nano < 1_000_000_000; nano += 111_111_111 {
			p := models.InstrumentPrice{Units: 42, Nano: nano}
			assert.Equal(t, float64(42)+float64(nano)/1_000_000_000, p.Price())
		}
	})
}
