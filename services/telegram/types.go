package telegram

import (
	snapshotRepo "crypto-snapshot/repositories/snapshot"
	cgService "crypto-snapshot/services/coingecko"
	"errors"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

const maxCoinsPerMessage = 10

var (
	ErrTokenIsMissing    = errors.New("telegram token is missing")
	ErrBotNotInitialized = errors.New("telegram bot is not ready yet")
)

type Service interface {
	SendSnapshotSummary() error
}

type Impl struct {
	bot              *gotgbot.Bot
	chatID           int64
	coingeckoService cgService.Service
	snapshotRepo     snapshotRepo.Repository
}
