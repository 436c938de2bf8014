package storage

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// Saver persists one committed state.
type Saver interface {
	Save(ctx context.Context, st *game.State) error
}

// Writer persists committed states off the caller's path. It keeps only the
// latest pending state; intermediate states that were never written are
// skipped. States handed to Save must not be mutated afterwards.
type Writer struct {
	saver   Saver
	log     *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	pending *game.State

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool
}

func NewWriter(saver Saver, log *slog.Logger) *Writer {
	if log == nil {
		log = slog.Default()
	}
	w := &Writer{
		saver:   saver,
		log:     log,
		timeout: 10 * time.Second,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop()
	}()
	return w
}

// Save queues st for writing and returns immediately.
func (w *Writer) Save(st *game.State) {
	if w.closed.Load() {
		w.log.Warn("state dropped: writer closed")
		return
	}
	w.mu.Lock()
	w.pending = st
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *Writer) loop() {
	for {
		select {
		case <-w.wake:
			w.flush()
		case <-w.done:
			w.flush()
			return
		}
	}
}

func (w *Writer) flush() {
	w.mu.Lock()
	st := w.pending
	w.pending = nil
	w.mu.Unlock()
	if st == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.saver.Save(ctx, st); err != nil {
		w.log.Error("persist state failed",
			slog.Duration("took", time.Since(start)),
			slog.Any("error", err))
		return
	}
	w.log.Debug("state persisted", slog.Duration("took", time.Since(start)))
}

// Close writes whatever is still pending and stops the writer. It returns
// ctx.Err() if the final write does not finish in time.
func (w *Writer) Close(ctx context.Context) error {
	w.once.Do(func() {
		w.closed.Store(true)
		close(w.done)
	})

	finished := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
