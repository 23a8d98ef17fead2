package application

import (
	"crypto-snapshot/models/constants"
	"crypto-snapshot/models/entities"
	snapshotRepo "crypto-snapshot/repositories/snapshot"
	"crypto-snapshot/services/coingecko"
	"crypto-snapshot/services/health"
	"crypto-snapshot/services/markets"
	"crypto-snapshot/services/telegram"
	"crypto-snapshot/utils/databases"
	"crypto-snapshot/utils/dates"
	"errors"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func New() (*Impl, error) {
	db := databases.New()
	if errDB := db.Run(); errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.Snapshot{})
	if errMigration != nil {
		return nil, errMigration
	}

	coingeckoService := coingecko.New()
	marketsService := markets.New()
	snapRepo := snapshotRepo.New(db)

	app := &Impl{
		coingeckoService: coingeckoService,
		marketsService:   marketsService,
		snapshotRepo:     snapRepo,
		db:               db,
		daemon:           viper.GetBool(constants.Daemon),
	}

	telegramService, errTg := telegram.New(
		viper.GetString(constants.TelegramBotToken),
		viper.GetInt64(constants.TelegramChatID),
		coingeckoService,
		snapRepo)
	if errTg != nil {
		if !errors.Is(errTg, telegram.ErrTokenIsMissing) {
			return nil, errTg
		}
		log.Debug().Msg("Telegram notifier disabled, no token configured")
	} else {
		coingeckoService.RegisterObserver(telegramService)
	}

	if app.daemon {
		scheduler, errScheduler := gocron.NewScheduler()
		if errScheduler != nil {
			return nil, errScheduler
		}

		if _, errHealth := health.New(scheduler); errHealth != nil {
			return nil, errHealth
		}

		_, errJob := scheduler.NewJob(
			gocron.CronJob(viper.GetString(constants.SnapshotCronTab), true),
			gocron.NewTask(func() {
				if err := app.Snapshot(); err != nil {
					log.Error().Err(err).Msg("Snapshot pipeline failed")
				}
			}),
			gocron.WithName("Snapshot markets"),
		)
		if errJob != nil {
			return nil, errJob
		}

		app.scheduler = scheduler
	}

	return app, nil
}

func (app *Impl) IsDaemon() bool {
	return app.daemon
}

// Snapshot runs the whole pipeline once: fetch, display, dump to JSON
// and CSV, render the market cap chart, archive into Sqlite. The first
// failing step aborts the remaining ones.
func (app *Impl) Snapshot() error {
	coins, err := app.coingeckoService.FetchMarkets(
		viper.GetString(constants.VsCurrency),
		viper.GetInt(constants.PerPage),
		viper.GetInt(constants.Page))
	if err != nil {
		return err
	}

	app.marketsService.Display(coins)

	if errJSON := app.marketsService.SaveJSON(coins, viper.GetString(constants.JSONFile)); errJSON != nil {
		return errJSON
	}

	if errCSV := app.marketsService.SaveCSV(coins, viper.GetString(constants.CSVFile)); errCSV != nil {
		return errCSV
	}

	if errChart := app.marketsService.RenderChart(coins, viper.GetString(constants.ChartFile)); errChart != nil {
		return errChart
	}

	app.archive(coins)

	return nil
}

func (app *Impl) archive(coins []coingecko.Coin) {
	day := dates.DateToString(time.Now(), dates.DateFormat)
	for _, coin := range coins {
		snapshot := entities.Snapshot{CoinID: coin.ID, Day: day, Symbol: coin.Symbol, Name: coin.Name, Rank: coin.MarketCapRank}
		if coin.CurrentPrice != nil {
			snapshot.Price = *coin.CurrentPrice
		}
		if coin.MarketCap != nil {
			snapshot.Marketcap = *coin.MarketCap
		}
		if coin.TotalVolume != nil {
			snapshot.Volume = *coin.TotalVolume
		}

		if errSave := app.snapshotRepo.Save(snapshot); errSave != nil {
			log.Error().Err(errSave).Str(constants.LogCoinID, coin.ID).Msg("Failed to archive snapshot")
		}
	}

	log.Info().Str(constants.LogDay, day).Int(constants.LogCoinNumber, len(coins)).Int64(constants.LogSnapshotTotal, app.snapshotRepo.Count()).Msg("Snapshot archived")
}

func (app *Impl) Run() {
	if err := app.Snapshot(); err != nil {
		log.Error().Err(err).Msg("Snapshot pipeline failed")
	}

	app.scheduler.Start()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled at %v", job.Name(), scheduledTime)
		}
	}
}

func (app *Impl) Shutdown() {
	if app.scheduler != nil {
		if err := app.scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
		}
	}
	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
