package game

// SettingsUpdate carries a partial change to SandboxSettings. Nil fields are
// left alone.
type SettingsUpdate struct {
	ExpPerLevel           *int
	GoldPerQuest          *int
	ExpPerQuest           *int
	CustomRanks           []RankConfig
	ThemeColor            *string
	ProgressBarColor      *string
	ShowRankPhotos        *bool
	DifficultyMultipliers map[Difficulty]Multiplier
}

// Apply merges u into s. Multipliers merge per difficulty. An empty rank list
// is ignored; a non-empty one replaces the table sorted by level.
func (u SettingsUpdate) Apply(s *SandboxSettings) {
	if u.ExpPerLevel != nil {
		s.ExpPerLevel = *u.ExpPerLevel
	}
	if u.GoldPerQuest != nil {
		s.GoldPerQuest = *u.GoldPerQuest
	}
	if u.ExpPerQuest != nil {
		s.ExpPerQuest = *u.ExpPerQuest
	}
	if len(u.CustomRanks) > 0 {
		ranks := append([]RankConfig(nil), u.CustomRanks...)
		SortRanks(ranks)
		s.CustomRanks = ranks
	}
	if u.ThemeColor != nil {
		s.ThemeColor = *u.ThemeColor
	}
	if u.ProgressBarColor != nil {
		s.ProgressBarColor = *u.ProgressBarColor
	}
	if u.ShowRankPhotos != nil {
		s.ShowRankPhotos = *u.ShowRankPhotos
	}
	if len(u.DifficultyMultipliers) > 0 {
		if s.DifficultyMultipliers == nil {
			s.DifficultyMultipliers = DefaultMultipliers()
		}
		for d, m := range u.DifficultyMultipliers {
			if d.IsValid() {
				s.DifficultyMultipliers[d] = m
			}
		}
	}
}

// RankUpdate is a partial change to one rank entry.
type RankUpdate struct {
	Name  *string
	Level *int
	Color *string
	Image *string
}

// Apply reports whether the entry's level changed.
func (u RankUpdate) Apply(r *RankConfig) bool {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Color != nil {
		r.Color = *u.Color
	}
	if u.Image != nil {
		r.Image = *u.Image
	}
	if u.Level != nil && *u.Level != r.Level {
		r.Level = *u.Level
		return true
	}
	return false
}
