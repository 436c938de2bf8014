package engine

import (
	"log/slog"
	"time"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// CheckDailyStreak records today's visit. A visit the day after the last one
// extends the streak; any longer gap, or no previous visit, restarts it at 1.
// Further calls on the same day change nothing.
func (s *Service) CheckDailyStreak() int {
	s.mu.Lock()
	p := s.state.Player
	s.mu.Unlock()

	now := s.now()
	today := now.Format(time.DateOnly)
	if p.LastLoginDate == today {
		return p.DailyStreak
	}

	var streak int
	_ = s.update(func(st *game.State) error {
		yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)
		switch st.Player.LastLoginDate {
		case today:
		case yesterday:
			st.Player.DailyStreak++
		default:
			st.Player.DailyStreak = 1
		}
		st.Player.LastLoginDate = today
		streak = st.Player.DailyStreak
		return nil
	})
	s.log.Debug("daily streak", slog.String("date", today), slog.Int("streak", streak))
	return streak
}
