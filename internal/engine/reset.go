package engine

import (
	"log/slog"
	"time"

	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/storage"
)

// RecoveryWindow is how long a reset can be undone.
const RecoveryWindow = 30 * 24 * time.Hour

// ResetAllStats backs the whole state up into the deleted-data slot,
// replacing any earlier backup, and starts over from a pristine state.
func (s *Service) ResetAllStats() error {
	return s.update(func(st *game.State) error {
		data, err := storage.EncodeState(st)
		if err != nil {
			return err
		}
		now := s.now()
		fresh := game.NewState(now)
		fresh.DeletedData = &game.DeletedData{
			Data:      string(data),
			DeletedAt: now.UTC(),
		}
		*st = *fresh
		s.log.Info("stats reset", slog.Int("bytes", len(data)))
		return nil
	})
}

// RecoverDeletedData restores the state saved by the last reset if it is at
// most RecoveryWindow old. The restored state carries whatever deleted-data
// slot it had itself.
func (s *Service) RecoverDeletedData() error {
	return s.update(func(st *game.State) error {
		if st.DeletedData == nil || st.DeletedData.Data == "" {
			return ErrNoDeletedData
		}
		now := s.now()
		if now.Sub(st.DeletedData.DeletedAt) > RecoveryWindow {
			return RecoveryExpiredError{DeletedAt: st.DeletedData.DeletedAt, Window: RecoveryWindow}
		}
		*st = *storage.DecodeState([]byte(st.DeletedData.Data), now, s.log)
		return nil
	})
}

// Export writes the current state to an archive at path.
func (s *Service) Export(path string) (storage.ArchiveHeader, error) {
	st := s.Snapshot()
	now := s.now()
	if err := storage.WriteArchive(path, st, now); err != nil {
		return storage.ArchiveHeader{}, err
	}
	return storage.ArchiveHeader{
		Format:     storage.ArchiveFormat,
		ExportedAt: now.UTC(),
		Player:     st.Player.Name,
		Level:      st.Player.Level,
	}, nil
}

// Import replaces the whole live state with the one stored in the archive at
// path. Unlike recovery there is no age limit.
func (s *Service) Import(path string) (storage.ArchiveHeader, error) {
	hdr, data, err := storage.ReadArchive(path)
	if err != nil {
		return hdr, err
	}
	err = s.update(func(st *game.State) error {
		*st = *storage.DecodeState(data, s.now(), s.log)
		return nil
	})
	return hdr, err
}
