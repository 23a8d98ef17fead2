package markets

import (
	"crypto-snapshot/services/coingecko"
	"encoding/json"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func sampleCoins() []coingecko.Coin {
	return []coingecko.Coin{
		{
			ID:            "bitcoin",
			Symbol:        "btc",
			Name:          "Bitcoin",
			MarketCapRank: 1,
			CurrentPrice:  ptr(64000.12),
			MarketCap:     ptr(1260000000000),
			TotalVolume:   ptr(35000000000),
		},
		{
			ID:            "ethereum",
			Symbol:        "eth",
			Name:          "Ethereum",
			MarketCapRank: 2,
			CurrentPrice:  ptr(3100.5),
			MarketCap:     ptr(372000000000),
		},
	}
}

func TestDisplay(t *testing.T) {
	var sb strings.Builder
	service := &Impl{writer: &sb}

	service.Display(sampleCoins())

	out := sb.String()
	assert.Contains(t, out, "Bitcoin")
	assert.Contains(t, out, "BTC")
	assert.Contains(t, out, "Ethereum")
	assert.Contains(t, out, "$64,000.12")
	assert.Contains(t, out, "$1,260,000,000,000")
}

func TestSaveJSON(t *testing.T) {
	t.Run("round-trips", func(t *testing.T) {
		filename := path.Join(t.TempDir(), "crypto_data.json")
		service := New()
		coins := sampleCoins()

		require.NoError(t, service.SaveJSON(coins, filename))

		content, err := os.ReadFile(filename)
		require.NoError(t, err)

		var decoded []coingecko.Coin
		require.NoError(t, json.Unmarshal(content, &decoded))
		assert.Equal(t, coins, decoded)
	})

	t.Run("pretty printed", func(t *testing.T) {
		filename := path.Join(t.TempDir(), "crypto_data.json")
		require.NoError(t, New().SaveJSON(sampleCoins(), filename))

		content, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Contains(t, string(content), "\n    ")
	})
}

func TestSaveCSV(t *testing.T) {
	filename := path.Join(t.TempDir(), "crypto_data.csv")
	service := New()

	require.NoError(t, service.SaveCSV(sampleCoins(), filename))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,symbol,name,current_price,market_cap,total_volume", lines[0])
	assert.Equal(t, "bitcoin,btc,Bitcoin,64000.12,1260000000000,35000000000", lines[1])

	// null volume falls back to an empty cell
	assert.Equal(t, "ethereum,eth,Ethereum,3100.5,372000000000,", lines[2])
}

func TestRenderChart(t *testing.T) {
	t.Run("writes a png", func(t *testing.T) {
		filename := path.Join(t.TempDir(), "crypto_chart.png")
		service := New()

		require.NoError(t, service.RenderChart(sampleCoins(), filename))

		content, err := os.ReadFile(filename)
		require.NoError(t, err)
		require.Greater(t, len(content), 8)
		assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), content[:8])
	})

	t.Run("no markets", func(t *testing.T) {
		filename := path.Join(t.TempDir(), "crypto_chart.png")
		err := New().RenderChart(nil, filename)
		require.Error(t, err)
	})
}
