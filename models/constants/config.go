package constants

import (
	"time"
)

const (
	ConfigFileName = ".env"

	// Currency the market values are quoted in.
	VsCurrency = "VS_CURRENCY"

	// Number of coins retrieved per call.
	PerPage = "PER_PAGE"

	// Page number, market-cap descending.
	Page = "PAGE"

	// Output file for the JSON dump.
	JSONFile = "JSON_FILE"

	// Output file for the CSV dump.
	CSVFile = "CSV_FILE"

	// Output file for the market-cap bar chart.
	ChartFile = "CHART_FILE"

	// SQLITE_URL URL.
	SqliteURL = "SQLITE_URL"

	// Coingecko cache. Duration type.
	CoingeckoCache = "COINGECKO_CACHE"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	// Boolean; keep running and snapshot on a schedule instead of one shot.
	Daemon = "DAEMON"

	// Cron tab to snapshot in daemon mode.
	SnapshotCronTab = "SNAPSHOT_CRON_TAB"

	// Cron tab to health.
	HealthCronTab = "HEALTH_CRON_TAB"

	// TELEGRAM BOT
	TelegramBotToken = "TELEGRAM_BOT_TOKEN"

	// Chat the snapshot summary is sent to.
	TelegramChatID = "TELEGRAM_CHAT_ID"

	defaultVsCurrency       = "usd"
	defaultPerPage          = 10
	defaultPage             = 1
	defaultJSONFile         = "crypto_data.json"
	defaultCSVFile          = "crypto_data.csv"
	defaultChartFile        = "crypto_chart.png"
	defaultSqliteURL        = "crypto-snapshot.db"
	defaultCoingeckoCache   = 5 * time.Minute
	defaultDaemon           = false
	defaultSnapshotCronTab  = "*/30 * * * *"
	defaultHealthCrontab    = "* * * * *"
	defaultTelegramBotToken = ""
	defaultTelegramChatID   = 0
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		VsCurrency:       defaultVsCurrency,
		PerPage:          defaultPerPage,
		Page:             defaultPage,
		JSONFile:         defaultJSONFile,
		CSVFile:          defaultCSVFile,
		ChartFile:        defaultChartFile,
		SqliteURL:        defaultSqliteURL,
		CoingeckoCache:   defaultCoingeckoCache,
		LogLevel:         LogLevelFallback.String(),
		Daemon:           defaultDaemon,
		SnapshotCronTab:  defaultSnapshotCronTab,
		HealthCronTab:    defaultHealthCrontab,
		TelegramBotToken: defaultTelegramBotToken,
		TelegramChatID:   defaultTelegramChatID,
	}
}
