package repositories

import (
	"cmp"
	"code-racer/domain"
	"code-racer/errors"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	racePrefix     = "race:"
	fieldStartedAt = "started_at"
	fieldEndedAt   = "ended_at"
)

// RaceRecord is the persisted part of a race: when it started and when it ended.
type RaceRecord struct {
	ID        domain.RaceID
	StartedAt *time.Time
	EndedAt   *time.Time
}

// Phase reports what the stored timestamps say about the race.
// A race ended without ever starting was abandoned during its countdown or lobby.
func (r RaceRecord) Phase() string {
	switch {
	case r.StartedAt != nil && r.EndedAt != nil:
		return "finished"
	case r.StartedAt != nil:
		return "running"
	case r.EndedAt != nil:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Duration is zero unless the race both started and ended.
func (r RaceRecord) Duration() time.Duration {
	if r.StartedAt == nil || r.EndedAt == nil {
		return 0
	}
	return r.EndedAt.Sub(*r.StartedAt)
}

type RaceRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRaceRepository(db *badger.DB, log *slog.Logger) RaceRepository {
	return RaceRepository{db: db, log: log}
}

// StartRace stores the started timestamp of a race.
// Keys are formatted as "race:{race_id}:{field}" so a single prefix scan
// returns every field of every race.
func (r RaceRepository) StartRace(ctx context.Context, raceID domain.RaceID, at time.Time) error {
	return r.setTimestamp(ctx, raceID, fieldStartedAt, at)
}

func (r RaceRepository) EndRace(ctx context.Context, raceID domain.RaceID, at time.Time) error {
	return r.setTimestamp(ctx, raceID, fieldEndedAt, at)
}

func (r RaceRepository) setTimestamp(ctx context.Context, raceID domain.RaceID, field string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	bytes, err := proto.Marshal(timestamppb.New(at))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(raceKey(raceID, field)), bytes)
	})
}

// GetRace returns the stored record, or ErrRaceNotFound if nothing was ever stored for it.
func (r RaceRepository) GetRace(raceID domain.RaceID) (RaceRecord, error) {
	record := RaceRecord{ID: raceID}
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		for _, field := range []string{fieldStartedAt, fieldEndedAt} {
			item, err := txn.Get([]byte(raceKey(raceID, field)))
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}
			at, err := readTimestamp(item)
			if err != nil {
				return err
			}
			found = true
			assign(&record, field, at)
		}
		return nil
	})
	if err != nil {
		return RaceRecord{}, err
	}
	if !found {
		return RaceRecord{}, fmt.Errorf("%w: %s", errors.ErrRaceNotFound, raceID)
	}
	return record, nil
}

// ListRaces scans every stored race, sorted by race id.
func (r RaceRepository) ListRaces() ([]RaceRecord, error) {
	records := make(map[domain.RaceID]*RaceRecord)
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(racePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			raceID, field, ok := parseRaceKey(string(item.Key()))
			if !ok {
				r.log.Debug("Skipping malformed race key", "key", string(item.Key()))
				continue
			}
			at, err := readTimestamp(item)
			if err != nil {
				return err
			}
			record, exists := records[raceID]
			if !exists {
				record = &RaceRecord{ID: raceID}
				records[raceID] = record
			}
			assign(record, field, at)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := lo.Map(lo.Values(records), func(record *RaceRecord, _ int) RaceRecord {
		return *record
	})
	slices.SortFunc(result, func(a, b RaceRecord) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

func readTimestamp(item *badger.Item) (time.Time, error) {
	var ts timestamppb.Timestamp
	err := item.Value(func(value []byte) error {
		return proto.Unmarshal(value, &ts)
	})
	if err != nil {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}

func assign(record *RaceRecord, field string, at time.Time) {
	switch field {
	case fieldStartedAt:
		record.StartedAt = &at
	case fieldEndedAt:
		record.EndedAt = &at
	}
}

func raceKey(raceID domain.RaceID, field string) string {
	return fmt.Sprintf("%s%s:%s", racePrefix, raceID, field)
}

// parseRaceKey splits on the last colon, race ids may contain colons themselves.
func parseRaceKey(key string) (domain.RaceID, string, bool) {
	rest := strings.TrimPrefix(key, racePrefix)
	idx := strings.LastIndex(rest, ":")
	if idx <= 0 {
		return "", "", false
	}
	return domain.RaceID(rest[:idx]), rest[idx+1:], true
}
