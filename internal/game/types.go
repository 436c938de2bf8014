package game

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy       Difficulty = "Easy"
	DifficultyNormal     Difficulty = "Normal"
	DifficultyHard       Difficulty = "Hard"
	DifficultyExtreme    Difficulty = "Extreme"
	DifficultyImpossible Difficulty = "Impossible"
)

// DefaultDifficulty is used when a quest is created without one.
const DefaultDifficulty = DifficultyNormal

// Difficulties returns every tier from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyEasy,
		DifficultyNormal,
		DifficultyHard,
		DifficultyExtreme,
		DifficultyImpossible,
	}
}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExtreme, DifficultyImpossible:
		return true
	default:
		return false
	}
}

// ParseDifficulty accepts any casing of a tier name.
func ParseDifficulty(input string) (Difficulty, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	for _, d := range Difficulties() {
		if strings.ToLower(string(d)) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty: %q", input)
}

type Player struct {
	Name            string    `json:"name"`
	Avatar          string    `json:"avatar,omitempty"`
	Banner          string    `json:"banner,omitempty"`
	Level           int       `json:"level"`
	XP              int       `json:"xp"`
	Gold            int       `json:"gold"`
	TotalXPEarned   int       `json:"totalXpEarned"`
	QuestsCompleted int       `json:"questsCompleted"`
	CreatedAt       time.Time `json:"createdAt"`
	DailyStreak     int       `json:"dailyStreak"`
	// LastLoginDate is a calendar date (YYYY-MM-DD); empty means never.
	LastLoginDate string `json:"lastLoginDate,omitempty"`
}

type Quest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Details     string     `json:"details"`
	Emoji       string     `json:"emoji"`
	Image       string     `json:"image,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	XPReward    int        `json:"xpReward"`
	GoldReward  int        `json:"goldReward"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DefaultClassXPToNextLevel is the fixed per-level XP of a new class.
const DefaultClassXPToNextLevel = 1000

// Class is a skill track. A subclass is a Class whose ParentID names a
// top-level class.
type Class struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Emoji          string   `json:"emoji"`
	ImageURI       string   `json:"imageUri,omitempty"`
	ParentID       string   `json:"parentId,omitempty"`
	Description    string   `json:"description"`
	Level          int      `json:"level"`
	XP             int      `json:"xp"`
	XPToNextLevel  int      `json:"xpToNextLevel"`
	LinkedQuestIDs []string `json:"linkedQuestIds,omitempty"`
}

func (c Class) IsSubclass() bool { return c.ParentID != "" }

// LinksQuest reports whether questID appears at least once in the links.
func (c Class) LinksQuest(questID string) bool {
	for _, id := range c.LinkedQuestIDs {
		if id == questID {
			return true
		}
	}
	return false
}

type Reward struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Emoji       string     `json:"emoji"`
	Image       string     `json:"image,omitempty"`
	GoldCost    int        `json:"goldCost"`
	Purchased   bool       `json:"purchased"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type TipType string

const (
	TipNote    TipType = "note"
	TipVideo   TipType = "video"
	TipArticle TipType = "article"
)

func (t TipType) IsValid() bool {
	switch t {
	case TipNote, TipVideo, TipArticle:
		return true
	default:
		return false
	}
}

type ProTip struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      TipType   `json:"type"`
	URL       string    `json:"url,omitempty"`
	Emoji     string    `json:"emoji,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProgressEntry is written once per quest completion and never changed.
type ProgressEntry struct {
	Date            time.Time `json:"date"`
	Level           int       `json:"level"`
	Rank            string    `json:"rank"`
	XP              int       `json:"xp"`
	Gold            int       `json:"gold"`
	QuestsCompleted int       `json:"questsCompleted"`
}

// DeletedData is the single recovery slot written by a full reset.
type DeletedData struct {
	Data      string    `json:"data"`
	DeletedAt time.Time `json:"deletedAt"`
}
