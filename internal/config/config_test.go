package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEVELIFE_DB_PATH", "")
	t.Setenv("LEVELIFE_LOG_LEVEL", "")
	t.Setenv("LEVELIFE_LOG_FORMAT", "")
	os.Unsetenv("LEVELIFE_LOG_LEVEL")
	os.Unsetenv("LEVELIFE_LOG_FORMAT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEVELIFE_DB_PATH", "/tmp/x.db")
	t.Setenv("LEVELIFE_LOG_LEVEL", "DEBUG")
	t.Setenv("LEVELIFE_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/x.db" || cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	t.Setenv("LEVELIFE_LOG_FORMAT", "xml")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestResolveDBPathPrecedence(t *testing.T) {
	cfg := Config{DBPath: "/env.db"}
	got, err := cfg.ResolveDBPath("/flag.db")
	if err != nil || got != "/flag.db" {
		t.Fatalf("flag should win, got %q (%v)", got, err)
	}
	got, err = cfg.ResolveDBPath("")
	if err != nil || got != "/env.db" {
		t.Fatalf("env should win over default, got %q (%v)", got, err)
	}

	t.Setenv("HOME", t.TempDir())
	got, err = Config{}.ResolveDBPath("")
	if err != nil {
		t.Fatalf("ResolveDBPath: %v", err)
	}
	if filepath.Base(got) != ".levelife.db" {
		t.Fatalf("unexpected default path %q", got)
	}
}

func writePreset(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "preset.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return p
}

func TestLoadPreset(t *testing.T) {
	p := writePreset(t, `
exp_per_level: 500
theme_color: "#00FF00"
difficulty_multipliers:
  hard: {xp: 5, gold: 3}
ranks:
  - {level: 10, name: Silver, color: "#C0C0C0"}
  - {level: 1, name: Bronze, color: "#8B4513"}
`)
	up, err := LoadPreset(p)
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if up.ExpPerLevel == nil || *up.ExpPerLevel != 500 {
		t.Fatalf("exp_per_level not read: %+v", up)
	}
	if up.GoldPerQuest != nil {
		t.Fatalf("absent key should stay nil")
	}
	if m := up.DifficultyMultipliers[game.DifficultyHard]; m.XP != 5 || m.Gold != 3 {
		t.Fatalf("multiplier not read: %+v", up.DifficultyMultipliers)
	}

	s := game.DefaultSandboxSettings()
	up.Apply(&s)
	if s.ExpPerLevel != 500 || s.ThemeColor != "#00FF00" {
		t.Fatalf("preset not applied: %+v", s)
	}
	if len(s.CustomRanks) != 2 || s.CustomRanks[0].Name != "Bronze" {
		t.Fatalf("ranks should be sorted by level: %+v", s.CustomRanks)
	}
	if s.DifficultyMultipliers[game.DifficultyEasy] != (game.Multiplier{XP: 1, Gold: 1}) {
		t.Fatalf("untouched multipliers should keep defaults")
	}
}

func TestLoadPresetRejectsInvalid(t *testing.T) {
	cases := []string{
		"exp_per_level: -1\n",
		"difficulty_multipliers:\n  brutal: {xp: 1, gold: 1}\n",
		"ranks:\n  - {level: 1}\n",
		"exp_per_level: [\n",
	}
	for _, body := range cases {
		if _, err := LoadPreset(writePreset(t, body)); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}
