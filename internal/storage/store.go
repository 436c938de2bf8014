package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// StateKey is the fixed key the whole game state is stored under.
const StateKey = "levelife_game_state"

// Store reads and writes the single state record.
type Store struct {
	kv  *KVRepo
	log *slog.Logger
	now func() time.Time
}

func NewStore(db *sql.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: NewKVRepo(db), log: log, now: time.Now}
}

// Load returns the stored state merged over defaults, or the pristine state
// when nothing has been stored yet.
func (s *Store) Load(ctx context.Context, now time.Time) (*game.State, error) {
	rec, err := s.kv.Get(ctx, StateKey)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return game.NewState(now), nil
	}
	return DecodeState(rec.Value, now, s.log), nil
}

func (s *Store) Save(ctx context.Context, st *game.State) error {
	data, err := EncodeState(st)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, StateKey, data, s.now())
}

// SetClock sets the clock used to stamp saved records.
func (s *Store) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}
