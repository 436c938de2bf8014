package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// storedState splits the record per top-level field so one bad field only
// costs that field.
type storedState struct {
	Player          json.RawMessage `json:"player"`
	Quests          json.RawMessage `json:"quests"`
	Classes         json.RawMessage `json:"classes"`
	Subclasses      json.RawMessage `json:"subclasses"`
	Rewards         json.RawMessage `json:"rewards"`
	ProTips         json.RawMessage `json:"proTips"`
	ProgressHistory json.RawMessage `json:"progressHistory"`
	SandboxSettings json.RawMessage `json:"sandboxSettings"`
	DeletedData     json.RawMessage `json:"deletedData"`
	ShowQuestImages json.RawMessage `json:"showQuestImages"`
}

type storedSettings struct {
	ExpPerLevel           *int                                `json:"expPerLevel"`
	GoldPerQuest          *int                                `json:"goldPerQuest"`
	ExpPerQuest           *int                                `json:"expPerQuest"`
	CustomLevelSystem     *bool                               `json:"customLevelSystem"`
	CustomRankLevels      map[string]int                      `json:"customRankLevels"`
	CustomRanks           []game.RankConfig                   `json:"customRanks"`
	ThemeColor            *string                             `json:"themeColor"`
	ProgressBarColor      *string                             `json:"progressBarColor"`
	ShowRankPhotos        *bool                               `json:"showRankPhotos"`
	DifficultyMultipliers map[game.Difficulty]game.Multiplier `json:"difficultyMultipliers"`
}

// storedClass also accepts the legacy "image" field, which held the parent
// class id for subclasses.
type storedClass struct {
	game.Class
	Image string `json:"image"`
}

// EncodeState serializes the whole state as one JSON record.
func EncodeState(s *game.State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// DecodeState merges a stored record over the pristine state. Missing fields
// keep their defaults; fields that fail to decode are logged and keep their
// defaults too. It never fails.
func DecodeState(data []byte, now time.Time, log *slog.Logger) *game.State {
	if log == nil {
		log = slog.Default()
	}
	st := game.NewState(now)
	if len(bytes.TrimSpace(data)) == 0 {
		return st
	}

	var raw storedState
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("stored state unreadable, using defaults", slog.Any("error", err))
		return st
	}

	decode := func(field string, msg json.RawMessage, dst any) bool {
		if len(msg) == 0 || string(msg) == "null" {
			return false
		}
		if err := json.Unmarshal(msg, dst); err != nil {
			log.Warn("stored field unreadable, using default",
				slog.String("field", field),
				slog.Any("error", err))
			return false
		}
		return true
	}

	player := st.Player
	if decode("player", raw.Player, &player) {
		player.LastLoginDate = migrateLoginDate(player.LastLoginDate)
		st.Player = player
	}

	var quests []game.Quest
	if decode("quests", raw.Quests, &quests) && quests != nil {
		st.Quests = quests
	}

	var classes []storedClass
	if decode("classes", raw.Classes, &classes) {
		st.Classes = migrateClasses(classes, nil)
	}
	var subclasses []storedClass
	if decode("subclasses", raw.Subclasses, &subclasses) {
		st.Subclasses = migrateClasses(subclasses, st.Classes)
	}

	var rewards []game.Reward
	if decode("rewards", raw.Rewards, &rewards) && rewards != nil {
		st.Rewards = rewards
	}
	var tips []game.ProTip
	if decode("proTips", raw.ProTips, &tips) && tips != nil {
		st.ProTips = tips
	}
	var history []game.ProgressEntry
	if decode("progressHistory", raw.ProgressHistory, &history) && history != nil {
		st.ProgressHistory = history
	}

	var settings storedSettings
	if decode("sandboxSettings", raw.SandboxSettings, &settings) {
		st.SandboxSettings = mergeSettings(st.SandboxSettings, settings)
	}
	migrateColors(&st.SandboxSettings)

	var deleted game.DeletedData
	if decode("deletedData", raw.DeletedData, &deleted) {
		st.DeletedData = &deleted
	}

	var showImages bool
	if decode("showQuestImages", raw.ShowQuestImages, &showImages) {
		st.ShowQuestImages = showImages
	}

	return st
}

func mergeSettings(base game.SandboxSettings, in storedSettings) game.SandboxSettings {
	if in.ExpPerLevel != nil {
		base.ExpPerLevel = *in.ExpPerLevel
	}
	if in.GoldPerQuest != nil {
		base.GoldPerQuest = *in.GoldPerQuest
	}
	if in.ExpPerQuest != nil {
		base.ExpPerQuest = *in.ExpPerQuest
	}
	if in.CustomLevelSystem != nil {
		base.CustomLevelSystem = *in.CustomLevelSystem
	}
	if in.CustomRankLevels != nil {
		base.CustomRankLevels = in.CustomRankLevels
	}
	if len(in.CustomRanks) > 0 {
		base.CustomRanks = in.CustomRanks
		game.SortRanks(base.CustomRanks)
	}
	if in.ThemeColor != nil {
		base.ThemeColor = *in.ThemeColor
	}
	if in.ProgressBarColor != nil {
		base.ProgressBarColor = *in.ProgressBarColor
	}
	if in.ShowRankPhotos != nil {
		base.ShowRankPhotos = *in.ShowRankPhotos
	}
	for d, m := range in.DifficultyMultipliers {
		if d.IsValid() {
			base.DifficultyMultipliers[d] = m
		}
	}
	return base
}

// legacyDateLayout is the "Sat Mar 09 2024" form older records hold.
const legacyDateLayout = "Mon Jan 02 2006"

// migrateLoginDate rewrites a legacy login date as YYYY-MM-DD. Anything
// unparseable is kept and simply restarts the streak.
func migrateLoginDate(v string) string {
	if v == "" {
		return v
	}
	if _, err := time.Parse(time.DateOnly, v); err == nil {
		return v
	}
	if t, err := time.Parse(legacyDateLayout, v); err == nil {
		return t.Format(time.DateOnly)
	}
	return v
}

func migrateColors(s *game.SandboxSettings) {
	if s.ThemeColor == game.LegacyThemeColor {
		s.ThemeColor = game.DefaultThemeColor
	}
	if s.ProgressBarColor == game.LegacyThemeColor {
		s.ProgressBarColor = game.DefaultThemeColor
	}
}

// migrateClasses converts stored classes. When parents is non-nil the input
// are subclasses, and a legacy image equal to a parent id becomes ParentID.
func migrateClasses(in []storedClass, parents []game.Class) []game.Class {
	parentIDs := make(map[string]bool, len(parents))
	for _, p := range parents {
		parentIDs[p.ID] = true
	}

	out := make([]game.Class, 0, len(in))
	for _, sc := range in {
		c := sc.Class
		if sc.Image != "" {
			switch {
			case parents != nil && c.ParentID == "" && parentIDs[sc.Image]:
				c.ParentID = sc.Image
			case c.ImageURI == "":
				c.ImageURI = sc.Image
			}
		}
		out = append(out, c)
	}
	return out
}
