package snapshot

import (
	"crypto-snapshot/models/entities"
	"crypto-snapshot/utils/databases"
)

type Repository interface {
	Save(snapshot entities.Snapshot) error
	Count() int64
	FetchForDay(day string) ([]entities.Snapshot, error)
}

type Impl struct {
	db databases.SqlConnection
}
