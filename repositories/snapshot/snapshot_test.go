package snapshot

import (
	"crypto-snapshot/models/entities"
	"crypto-snapshot/utils/databases"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Impl {
	t.Helper()

	db := databases.NewWithDSN(":memory:")
	require.NoError(t, db.Run())
	require.NoError(t, db.GetDB().AutoMigrate(&entities.Snapshot{}))
	t.Cleanup(db.Shutdown)

	return New(db)
}

func TestSnapshotRepository(t *testing.T) {
	t.Run("save and count", func(t *testing.T) {
		repo := newTestRepo(t)

		require.NoError(t, repo.Save(entities.Snapshot{CoinID: "bitcoin", Day: "2026-08-31", Symbol: "btc", Name: "Bitcoin", Rank: 1, Price: 64000.12, Marketcap: 1.26e12}))
		require.NoError(t, repo.Save(entities.Snapshot{CoinID: "ethereum", Day: "2026-08-31", Symbol: "eth", Name: "Ethereum", Rank: 2, Price: 3100.5, Marketcap: 3.72e11}))
		assert.Equal(t, int64(2), repo.Count())
	})

	t.Run("saving the same coin and day twice keeps one row", func(t *testing.T) {
		repo := newTestRepo(t)

		require.NoError(t, repo.Save(entities.Snapshot{CoinID: "bitcoin", Day: "2026-08-31", Price: 64000.12}))
		require.NoError(t, repo.Save(entities.Snapshot{CoinID: "bitcoin", Day: "2026-08-31", Price: 65000}))
		assert.Equal(t, int64(1), repo.Count())

		saved, err := repo.FetchForDay("2026-08-31")
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, 65000.0, saved[0].Price)
	})

	t.Run("fetch for day is ordered by rank", func(t *testing.T) {
		repo := newTestRepo(t)

		require.NoError(t, repo.Save(entities.Snapshot{CoinID: "ethereum", Day: "2026-08-31", Rank: 2}))
		require.NoError(t, repo.Save(entities.Snapshot{CoinID: "bitcoin", Day: "2026-08-31", Rank: 1}))
		require.NoError(t, repo.Save(entities.Snapshot{CoinID: "tether", Day: "2026-08-30", Rank: 3}))

		snapshots, err := repo.FetchForDay("2026-08-31")
		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, "bitcoin", snapshots[0].CoinID)
		assert.Equal(t, "ethereum", snapshots[1].CoinID)
	})

	t.Run("day without rows", func(t *testing.T) {
		repo := newTestRepo(t)

		snapshots, err := repo.FetchForDay("2026-08-31")
		require.NoError(t, err)
		assert.Empty(t, snapshots)
	})
}
