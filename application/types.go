package application

import (
	snapshotRepo "crypto-snapshot/repositories/snapshot"
	cgService "crypto-snapshot/services/coingecko"
	marketsService "crypto-snapshot/services/markets"
	"crypto-snapshot/utils/databases"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Snapshot() error
	Run()
	Shutdown()
	IsDaemon() bool
}

type Impl struct {
	scheduler        gocron.Scheduler
	coingeckoService cgService.Service
	marketsService   marketsService.Service
	snapshotRepo     snapshotRepo.Repository
	db               databases.SqlConnection
	daemon           bool
}
