package markets

import (
	"crypto-snapshot/models/constants"
	"crypto-snapshot/services/coingecko"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	chart "github.com/wcharczuk/go-chart/v2"
)

func New() *Impl {
	return &Impl{writer: os.Stdout}
}

func (service *Impl) Display(coins []coingecko.Coin) {
	fmt.Fprintln(service.writer, "Top Cryptocurrencies:")

	table := tablewriter.NewWriter(service.writer)
	table.SetHeader([]string{"#", "Name", "Symbol", "Price", "Market Cap", "Volume"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, coin := range coins {
		table.Append([]string{
			fmt.Sprintf("%d", coin.MarketCapRank),
			coin.Name,
			strings.ToUpper(coin.Symbol),
			formatAmount(coin.CurrentPrice, 2),
			formatAmount(coin.MarketCap, 0),
			formatAmount(coin.TotalVolume, 0),
		})
	}

	table.Render()
}

func (service *Impl) SaveJSON(coins []coingecko.Coin, filename string) error {
	content, err := json.MarshalIndent(coins, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to encode markets: %w", err)
	}

	if errWrite := os.WriteFile(filename, content, 0644); errWrite != nil {
		return fmt.Errorf("failed to write %s: %w", filename, errWrite)
	}

	log.Info().Str(constants.LogFileName, filename).Msg("Markets saved to JSON")
	return nil
}

func (service *Impl) SaveCSV(coins []coingecko.Coin, filename string) error {
	rows := make([]*csvRow, 0, len(coins))
	for _, coin := range coins {
		rows = append(rows, &csvRow{
			ID:           coin.ID,
			Symbol:       coin.Symbol,
			Name:         coin.Name,
			CurrentPrice: coin.CurrentPrice,
			MarketCap:    coin.MarketCap,
			TotalVolume:  coin.TotalVolume,
		})
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	if errCsv := gocsv.MarshalFile(&rows, file); errCsv != nil {
		return fmt.Errorf("failed to write %s: %w", filename, errCsv)
	}

	log.Info().Str(constants.LogFileName, filename).Msg("Markets saved to CSV")
	return nil
}

func (service *Impl) RenderChart(coins []coingecko.Coin, filename string) error {
	if len(coins) == 0 {
		return fmt.Errorf("no markets to plot")
	}

	bars := make([]chart.Value, 0, len(coins))
	for _, coin := range coins {
		value := 0.0
		if coin.MarketCap != nil {
			value = *coin.MarketCap
		}
		bars = append(bars, chart.Value{Label: coin.Name, Value: value})
	}

	graph := chart.BarChart{
		Title:      chartTitle,
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		XAxis:      chart.Style{TextRotationDegrees: 45.0},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if typed, ok := v.(float64); ok {
					return fmt.Sprintf("$%s", humanize.CommafWithDigits(typed, 0))
				}
				return ""
			},
		},
		Bars: bars,
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	if errRender := graph.Render(chart.PNG, file); errRender != nil {
		return fmt.Errorf("failed to render chart: %w", errRender)
	}

	log.Info().Str(constants.LogFileName, filename).Msg("Market cap chart rendered")
	return nil
}

func formatAmount(value *float64, digits int) string {
	if value == nil {
		return ""
	}

	return fmt.Sprintf("$%s", humanize.CommafWithDigits(*value, digits))
}
