package engine

import (
	"github.com/levelifeofficial/levelife-922003/internal/config"
	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// UpdateSandboxSettings merges up into the settings. Existing quests keep the
// rewards they were priced with.
func (s *Service) UpdateSandboxSettings(up game.SettingsUpdate) (game.SandboxSettings, error) {
	var out game.SandboxSettings
	err := s.update(func(st *game.State) error {
		up.Apply(&st.SandboxSettings)
		out = st.SandboxSettings
		return nil
	})
	return out, err
}

// UpdateRank edits the rank at index and re-sorts the table if its level
// moved.
func (s *Service) UpdateRank(index int, up game.RankUpdate) error {
	return s.update(func(st *game.State) error {
		ranks := st.SandboxSettings.CustomRanks
		if index < 0 || index >= len(ranks) {
			return ErrRankIndexOutOfRange
		}
		if up.Apply(&ranks[index]) {
			game.SortRanks(ranks)
		}
		return nil
	})
}

// ApplyPreset loads a YAML settings preset from path and applies it.
func (s *Service) ApplyPreset(path string) (game.SandboxSettings, error) {
	up, err := config.LoadPreset(path)
	if err != nil {
		return game.SandboxSettings{}, err
	}
	return s.UpdateSandboxSettings(up)
}

// RankForLevel looks level up in the current rank table.
func (s *Service) RankForLevel(level int) game.RankConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return game.RankForLevel(level, s.state.SandboxSettings.CustomRanks)
}

// XPToNextLevel is the XP needed for every player level-up.
func (s *Service) XPToNextLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SandboxSettings.ExpPerLevel
}

// MaxReachableLevel is how many levels the current quest list is worth in
// total.
func (s *Service) MaxReachableLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return game.MaxReachableLevel(s.state.Quests, s.state.SandboxSettings.ExpPerLevel)
}
