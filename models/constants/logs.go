package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogCoinID        = "coinID"
	LogCoinNumber    = "coinNumber"
	LogVsCurrency    = "vsCurrency"
	LogChatID        = "chatID"
	LogDay           = "day"
	LogSnapshotTotal = "snapshotTotal"
	LogLevelFallback = zerolog.InfoLevel
)
