package repositories

import (
	"code-racer/domain"
	"code-racer/errors"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Start_And_End_Race(t *testing.T) {
	req := require.New(t)
	repository := NewRaceRepository(openTestDB(t), slog.Default())
	ctx := context.Background()
	startedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	endedAt := startedAt.Add(90 * time.Second)

	// Given a race that started
	req.NoError(repository.StartRace(ctx, "R1", startedAt))

	record, err := repository.GetRace("R1")
	req.NoError(err)
	req.NotNil(record.StartedAt)
	req.True(startedAt.Equal(*record.StartedAt))
	req.Nil(record.EndedAt)

	// When the race ends
	req.NoError(repository.EndRace(ctx, "R1", endedAt))

	// Then both timestamps are stored
	record, err = repository.GetRace("R1")
	req.NoError(err)
	req.True(startedAt.Equal(*record.StartedAt))
	req.True(endedAt.Equal(*record.EndedAt))
}

func Test_Get_Unknown_Race(t *testing.T) {
	repository := NewRaceRepository(openTestDB(t), slog.Default())

	_, err := repository.GetRace("nope")

	require.ErrorIs(t, err, errors.ErrRaceNotFound)
}

func Test_End_Race_Without_Start(t *testing.T) {
	req := require.New(t)
	repository := NewRaceRepository(openTestDB(t), slog.Default())

	// An emptied room that never reached running is still finalized
	req.NoError(repository.EndRace(context.Background(), "R1", time.Now()))

	record, err := repository.GetRace("R1")
	req.NoError(err)
	req.Nil(record.StartedAt)
	req.NotNil(record.EndedAt)
}

func Test_List_Races(t *testing.T) {
	req := require.New(t)
	repository := NewRaceRepository(openTestDB(t), slog.Default())
	ctx := context.Background()
	at := time.Now().UTC()

	req.NoError(repository.StartRace(ctx, "b:with:colons", at))
	req.NoError(repository.StartRace(ctx, "a", at))
	req.NoError(repository.EndRace(ctx, "a", at.Add(time.Minute)))

	records, err := repository.ListRaces()
	req.NoError(err)
	req.Len(records, 2)
	req.Equal(domain.RaceID("a"), records[0].ID)
	req.NotNil(records[0].EndedAt)
	req.Equal(domain.RaceID("b:with:colons"), records[1].ID)
	req.Nil(records[1].EndedAt)
}

func Test_Canceled_Context(t *testing.T) {
	repository := NewRaceRepository(openTestDB(t), slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repository.StartRace(ctx, "R1", time.Now())

	require.ErrorIs(t, err, context.Canceled)
}

func TestRaceRecord_Phase(t *testing.T) {
	req := require.New(t)
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)

	req.Equal("finished", RaceRecord{StartedAt: &start, EndedAt: &end}.Phase())
	req.Equal("running", RaceRecord{StartedAt: &start}.Phase())
	req.Equal("abandoned", RaceRecord{EndedAt: &end}.Phase())
	req.Equal("unknown", RaceRecord{}.Phase())

	req.Equal(90*time.Second, RaceRecord{StartedAt: &start, EndedAt: &end}.Duration())
	req.Zero(RaceRecord{StartedAt: &start}.Duration())
}
