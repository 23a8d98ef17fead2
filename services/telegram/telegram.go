package telegram

import (
	"crypto-snapshot/models/constants"
	"crypto-snapshot/pkg/observer"
	snapshotRepo "crypto-snapshot/repositories/snapshot"
	cgService "crypto-snapshot/services/coingecko"
	"crypto-snapshot/utils/dates"
	"fmt"
	"strings"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

func New(token string, chatID int64, coingeckoService cgService.Service, snapRepo snapshotRepo.Repository) (*Impl, error) {
	if token == "" {
		return &Impl{}, ErrTokenIsMissing
	}

	b, err := gotgbot.NewBot(token, nil)
	if err != nil {
		return &Impl{}, ErrBotNotInitialized
	}

	return &Impl{bot: b, chatID: chatID, coingeckoService: coingeckoService, snapshotRepo: snapRepo}, nil
}

func (service *Impl) OnNotify(event observer.Event) {
	if event.E != observer.SnapshotEvent {
		return
	}

	if err := service.SendSnapshotSummary(); err != nil {
		log.Error().Err(err).Int64(constants.LogChatID, service.chatID).Msg("Failed to send snapshot summary")
	}
}

func (service *Impl) SendSnapshotSummary() error {
	if service.bot == nil {
		return ErrBotNotInitialized
	}

	coins, found := service.coingeckoService.LatestMarkets()
	if !found {
		return fmt.Errorf("no snapshot available yet")
	}

	log.Info().Int64(constants.LogChatID, service.chatID).Msg("Sending snapshot summary")
	_, err := service.bot.SendMessage(service.chatID, buildSummary(coins, service.yesterdayPrices()), &gotgbot.SendMessageOpts{ParseMode: "Markdown"})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (service *Impl) yesterdayPrices() map[string]float64 {
	if service.snapshotRepo == nil {
		return nil
	}

	yesterday := dates.DateToString(time.Now().AddDate(0, 0, -1), dates.DateFormat)
	snapshots, err := service.snapshotRepo.FetchForDay(yesterday)
	if err != nil {
		log.Error().Err(err).Str(constants.LogDay, yesterday).Msg("Failed to fetch archived snapshot")
		return nil
	}

	prices := make(map[string]float64, len(snapshots))
	for _, snapshot := range snapshots {
		prices[snapshot.CoinID] = snapshot.Price
	}

	return prices
}

func buildSummary(coins []cgService.Coin, yesterdayPrices map[string]float64) string {
	msg := "📊 *Top Cryptocurrencies*\n\n"
	for i, coin := range coins {
		if i == maxCoinsPerMessage {
			break
		}

		price := "n/a"
		if coin.CurrentPrice != nil {
			price = "$" + humanize.CommafWithDigits(*coin.CurrentPrice, 2)
		}
		marketcap := "n/a"
		if coin.MarketCap != nil {
			marketcap = "$" + humanize.CommafWithDigits(*coin.MarketCap, 0)
		}

		line := fmt.Sprintf("• *%s* (%s): %s | MCap: %s", coin.Name, strings.ToUpper(coin.Symbol), price, marketcap)
		if oldPrice, exists := yesterdayPrices[coin.ID]; exists && oldPrice > 0 && coin.CurrentPrice != nil {
			percentChange := (*coin.CurrentPrice - oldPrice) / oldPrice * 100
			line += fmt.Sprintf(" | 24h: %+.2f%%", percentChange)
		}

		msg += line + "\n"
	}

	return msg
}
