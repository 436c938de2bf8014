package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// Preset is a YAML settings file. Every key is optional.
type Preset struct {
	ExpPerLevel           *int                      `yaml:"exp_per_level"`
	GoldPerQuest          *int                      `yaml:"gold_per_quest"`
	ExpPerQuest           *int                      `yaml:"exp_per_quest"`
	ThemeColor            *string                   `yaml:"theme_color"`
	ProgressBarColor      *string                   `yaml:"progress_bar_color"`
	ShowRankPhotos        *bool                     `yaml:"show_rank_photos"`
	DifficultyMultipliers map[string]MultiplierSpec `yaml:"difficulty_multipliers"`
	Ranks                 []RankSpec                `yaml:"ranks"`
}

type MultiplierSpec struct {
	XP   float64 `yaml:"xp"`
	Gold float64 `yaml:"gold"`
}

type RankSpec struct {
	Level int    `yaml:"level"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Image string `yaml:"image,omitempty"`
}

// Validate rejects values the engine would have to guess about.
func (p Preset) Validate() error {
	for name, v := range map[string]*int{
		"exp_per_level":  p.ExpPerLevel,
		"gold_per_quest": p.GoldPerQuest,
		"exp_per_quest":  p.ExpPerQuest,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	for k, m := range p.DifficultyMultipliers {
		if _, err := game.ParseDifficulty(k); err != nil {
			return fmt.Errorf("difficulty_multipliers: %w", err)
		}
		if m.XP < 0 || m.Gold < 0 {
			return fmt.Errorf("difficulty_multipliers.%s: must not be negative", k)
		}
	}
	for i, r := range p.Ranks {
		if r.Name == "" {
			return fmt.Errorf("ranks[%d]: name is required", i)
		}
	}
	return nil
}

// Update converts the preset to a settings update.
func (p Preset) Update() game.SettingsUpdate {
	up := game.SettingsUpdate{
		ExpPerLevel:      p.ExpPerLevel,
		GoldPerQuest:     p.GoldPerQuest,
		ExpPerQuest:      p.ExpPerQuest,
		ThemeColor:       p.ThemeColor,
		ProgressBarColor: p.ProgressBarColor,
		ShowRankPhotos:   p.ShowRankPhotos,
	}
	if len(p.DifficultyMultipliers) > 0 {
		up.DifficultyMultipliers = make(map[game.Difficulty]game.Multiplier, len(p.DifficultyMultipliers))
		for k, m := range p.DifficultyMultipliers {
			d, err := game.ParseDifficulty(k)
			if err != nil {
				continue
			}
			up.DifficultyMultipliers[d] = game.Multiplier{XP: m.XP, Gold: m.Gold}
		}
	}
	for _, r := range p.Ranks {
		up.CustomRanks = append(up.CustomRanks, game.RankConfig{
			Level: r.Level,
			Name:  r.Name,
			Color: r.Color,
			Image: r.Image,
		})
	}
	return up
}

// LoadPreset reads and validates the preset at path.
func LoadPreset(path string) (game.SettingsUpdate, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return game.SettingsUpdate{}, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(b, &p); err != nil {
		return game.SettingsUpdate{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return game.SettingsUpdate{}, fmt.Errorf("%s: %w", path, err)
	}
	return p.Update(), nil
}
