package snapshot

import (
	"crypto-snapshot/models/entities"
	"crypto-snapshot/utils/databases"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) Save(snapshot entities.Snapshot) error {
	return repo.db.GetDB().Save(&snapshot).Error
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.Snapshot{}).Count(count)

	return *count
}

func (repo *Impl) FetchForDay(day string) ([]entities.Snapshot, error) {
	var snapshots []entities.Snapshot
	result := repo.db.GetDB().Where("day = ?", day).Order("rank").Find(&snapshots)

	return snapshots, result.Error
}
