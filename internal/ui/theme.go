package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// Levelife theme (CLI + TUI).

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconGold    = "🪙"
	IconGift    = "🎁"
	IconClass   = "🧭"
	IconTip     = "💡"
	IconFire    = "🔥"
	IconUndo    = "↩️"
	IconScroll  = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Rank renders a rank name in its own colour.
func Rank(r game.RankConfig) string {
	if r.Name == "" {
		return Muted.Render("unranked")
	}
	st := lipgloss.NewStyle().Bold(true)
	if r.Color != "" {
		st = st.Foreground(lipgloss.Color(r.Color))
	}
	return st.Render(r.Name)
}

// XPBar draws value/total as a bar of width cells in the given hex colour.
func XPBar(value, total, width int, color string) string {
	if total <= 0 {
		total = 1
	}
	if width < 3 {
		width = 3
	}
	value = max(0, min(value, total))
	filled := value * width / total
	bar := strings.Repeat("█", filled)
	if color != "" {
		bar = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(bar)
	}
	return "[" + bar + Muted.Render(strings.Repeat("░", width-filled)) + "]"
}

func QuestStatus(completed bool) string {
	if completed {
		return Good.Render("done")
	}
	return Warn.Render("open")
}

func RewardStatus(purchased bool) string {
	if purchased {
		return Gold.Render("owned")
	}
	return Muted.Render("in shop")
}

// Difficulty colours tiers from calm to alarming.
func Difficulty(d game.Difficulty) string {
	switch d {
	case game.DifficultyEasy:
		return Good.Render(string(d))
	case game.DifficultyNormal:
		return H2.Render(string(d))
	case game.DifficultyHard:
		return Warn.Render(string(d))
	case game.DifficultyExtreme, game.DifficultyImpossible:
		return Bad.Render(string(d))
	default:
		return Muted.Render(string(d))
	}
}
