package markets

import (
	"crypto-snapshot/services/coingecko"
	"io"
)

const (
	jsonIndent  = "    "
	chartTitle  = "Top Cryptocurrencies by Market Cap"
	chartWidth  = 1280
	chartHeight = 600
)

// csvRow keeps the CSV surface at the six fixed columns; the null
// pointers come out as empty cells.
type csvRow struct {
	ID           string   `csv:"id"`
	Symbol       string   `csv:"symbol"`
	Name         string   `csv:"name"`
	CurrentPrice *float64 `csv:"current_price"`
	MarketCap    *float64 `csv:"market_cap"`
	TotalVolume  *float64 `csv:"total_volume"`
}

type Service interface {
	Display(coins []coingecko.Coin)
	SaveJSON(coins []coingecko.Coin, filename string) error
	SaveCSV(coins []coingecko.Coin, filename string) error
	RenderChart(coins []coingecko.Coin, filename string) error
}

type Impl struct {
	writer io.Writer
}
