package game

const (
	DefaultExpPerLevel  = 1000
	DefaultExpPerQuest  = 250
	DefaultGoldPerQuest = 250

	DefaultThemeColor = "#FFFFFF"

	// LegacyThemeColor was the default accent before white; stored settings
	// still carrying it are migrated on load.
	LegacyThemeColor = "#FFD700"
)

// Multiplier scales the base quest rewards for one difficulty tier.
type Multiplier struct {
	XP   float64 `json:"xp"`
	Gold float64 `json:"gold"`
}

// SandboxSettings are the tunable progression parameters.
type SandboxSettings struct {
	ExpPerLevel  int `json:"expPerLevel"`
	GoldPerQuest int `json:"goldPerQuest"`
	ExpPerQuest  int `json:"expPerQuest"`

	// Carried for storage compatibility only.
	CustomLevelSystem bool           `json:"customLevelSystem"`
	CustomRankLevels  map[string]int `json:"customRankLevels"`

	CustomRanks           []RankConfig              `json:"customRanks"`
	ThemeColor            string                    `json:"themeColor"`
	ProgressBarColor      string                    `json:"progressBarColor"`
	ShowRankPhotos        bool                      `json:"showRankPhotos"`
	DifficultyMultipliers map[Difficulty]Multiplier `json:"difficultyMultipliers"`
}

func DefaultMultipliers() map[Difficulty]Multiplier {
	return map[Difficulty]Multiplier{
		DifficultyEasy:       {XP: 1, Gold: 1},
		DifficultyNormal:     {XP: 2, Gold: 2},
		DifficultyHard:       {XP: 4, Gold: 4},
		DifficultyExtreme:    {XP: 10, Gold: 10},
		DifficultyImpossible: {XP: 20, Gold: 20},
	}
}

func DefaultSandboxSettings() SandboxSettings {
	return SandboxSettings{
		ExpPerLevel:           DefaultExpPerLevel,
		GoldPerQuest:          DefaultGoldPerQuest,
		ExpPerQuest:           DefaultExpPerQuest,
		CustomRankLevels:      map[string]int{},
		CustomRanks:           DefaultRanks(),
		ThemeColor:            DefaultThemeColor,
		ProgressBarColor:      DefaultThemeColor,
		ShowRankPhotos:        false,
		DifficultyMultipliers: DefaultMultipliers(),
	}
}

func (s SandboxSettings) clone() SandboxSettings {
	out := s
	out.CustomRanks = append([]RankConfig(nil), s.CustomRanks...)
	out.CustomRankLevels = make(map[string]int, len(s.CustomRankLevels))
	for k, v := range s.CustomRankLevels {
		out.CustomRankLevels[k] = v
	}
	out.DifficultyMultipliers = make(map[Difficulty]Multiplier, len(s.DifficultyMultipliers))
	for k, v := range s.DifficultyMultipliers {
		out.DifficultyMultipliers[k] = v
	}
	return out
}
