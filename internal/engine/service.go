package engine

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/storage"
)

// Persister receives every committed state. Implementations must not block
// on I/O and must not mutate the state.
type Persister interface {
	Save(st *game.State)
}

type nopPersister struct{}

func (nopPersister) Save(*game.State) {}

// Service owns the live game state. Every operation clones the current
// state, applies its change to the clone and commits it in one swap, so
// readers never observe a half-applied operation.
type Service struct {
	mu    sync.Mutex
	state *game.State

	now     func() time.Time
	newID   func() string
	log     *slog.Logger
	persist Persister

	closeFn func(ctx context.Context) error
}

type Option func(*Service)

// WithClock replaces time.Now. Calendar dates use the location of the
// returned times.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithPersister(p Persister) Option {
	return func(s *Service) { s.persist = p }
}

// WithIDs replaces the entity id generator.
func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func newService(opts []Option) *Service {
	s := &Service{
		now:     time.Now,
		newID:   game.NewID,
		log:     slog.Default(),
		persist: nopPersister{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewService wraps an already loaded state. A nil state starts fresh.
func NewService(st *game.State, opts ...Option) *Service {
	s := newService(opts)
	if st == nil {
		st = game.NewState(s.now())
	}
	s.state = st
	return s
}

// Open loads the state stored in the SQLite database at path, wires
// asynchronous persistence and runs the daily streak check.
func Open(ctx context.Context, path string, opts ...Option) (*Service, error) {
	s := newService(opts)

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	store := storage.NewStore(db, s.log)
	store.SetClock(s.now)
	st, err := store.Load(ctx, s.now())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	w := storage.NewWriter(store, s.log)
	s.state = st
	s.persist = w
	s.closeFn = func(ctx context.Context) error {
		return closeAll(ctx, w, db)
	}

	s.CheckDailyStreak()
	return s, nil
}

func closeAll(ctx context.Context, w *storage.Writer, db *sql.DB) error {
	werr := w.Close(ctx)
	return errors.Join(werr, db.Close())
}

// Close flushes pending persistence. Services built with NewService have
// nothing to close.
func (s *Service) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	fn := s.closeFn
	s.closeFn = nil
	return fn(ctx)
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() *game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// update applies fn to a clone of the state and commits it when fn succeeds.
// On error the live state is left untouched and nothing is persisted.
func (s *Service) update(fn func(st *game.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	s.persist.Save(next)
	return nil
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}
