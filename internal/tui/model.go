package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

type pane int

const (
	paneQuests pane = iota
	paneRewards
)

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	state    *game.State
	pane     pane
	selected int

	lastLog string
}

type loadedMsg struct {
	state *game.State
}

// actionMsg reports the outcome of a quest or reward toggle.
type actionMsg struct {
	log string
	err error
}

func newBoardModel(svc *engine.Service) boardModel {
	return boardModel{
		svc:     svc,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: m.svc.Snapshot()}
	}
}

func (m boardModel) toggleQuestCmd(q game.Quest) tea.Cmd {
	return func() tea.Msg {
		if q.Completed {
			res, err := m.svc.UncompleteQuest(q.ID)
			if err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{log: fmt.Sprintf("Undid %q: -%d XP (level %d → %d)", q.Title, res.XPRemoved, res.LevelBefore, res.LevelAfter)}
		}
		res, err := m.svc.CompleteQuest(q.ID)
		if err != nil {
			return actionMsg{err: err}
		}
		log := fmt.Sprintf("Completed %q: +%d XP, +%d gold (level %d → %d)", q.Title, res.XPAwarded, res.GoldAwarded, res.LevelBefore, res.LevelAfter)
		if res.LevelUp {
			log += " " + ui.BadgeLevelUp
		}
		return actionMsg{log: log}
	}
}

func (m boardModel) toggleRewardCmd(r game.Reward) tea.Cmd {
	return func() tea.Msg {
		if r.Purchased {
			res, err := m.svc.UnpurchaseReward(r.ID)
			if err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{log: fmt.Sprintf("Returned %q: +%d gold (now %d)", r.Title, res.Cost, res.Gold)}
		}
		res, err := m.svc.PurchaseReward(r.ID)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{log: fmt.Sprintf("Bought %q: -%d gold (now %d)", r.Title, res.Cost, res.Gold)}
	}
}

func (m boardModel) rows() int {
	if m.state == nil {
		return 0
	}
	if m.pane == paneRewards {
		return len(m.state.Rewards)
	}
	return len(m.state.Quests)
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.state = msg.state
		m.selected = max(0, min(m.selected, m.rows()-1))
		return m, nil
	case actionMsg:
		if msg.err != nil {
			m.lastLog = "Failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab":
			if m.pane == paneQuests {
				m.pane = paneRewards
			} else {
				m.pane = paneQuests
			}
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.rows()-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= m.rows() {
				return m, nil
			}
			if m.pane == paneRewards {
				return m, m.toggleRewardCmd(m.state.Rewards[m.selected])
			}
			return m, m.toggleQuestCmd(m.state.Quests[m.selected])
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.state == nil {
		return "Levelife: loading…\n"
	}

	sidebar := m.renderSidebar()
	main := m.renderMain()

	leftW := 28
	if m.width > 0 {
		leftW = max(18, min(leftW, m.width/2))
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	n := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < n; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return m.renderHeader() + "\n\n" + body.String() + "\n" + m.lastLog
}

func (m boardModel) renderHeader() string {
	p := m.state.Player
	s := m.state.SandboxSettings
	bar := ui.XPBar(p.XP, s.ExpPerLevel, 30, s.ProgressBarColor)
	return fmt.Sprintf("%s | %s | Level %d %s | XP %d/%d %s | %s %d | %s %d",
		ui.Title.Render("Levelife"), p.Name, p.Level, ui.Rank(m.state.Rank()),
		p.XP, s.ExpPerLevel, bar, ui.IconGold, p.Gold, ui.IconFire, p.DailyStreak)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Classes"}
	tree, orphans := m.state.ClassTree()
	if len(tree) == 0 {
		lines = append(lines, "(none)")
	}
	for _, node := range tree {
		lines = append(lines, fmt.Sprintf("%s %s L%d", node.Class.Emoji, node.Class.Name, node.Class.Level))
		for _, sub := range node.Subclasses {
			lines = append(lines, fmt.Sprintf("  └ %s L%d", sub.Name, sub.Level))
		}
	}
	for _, o := range orphans {
		lines = append(lines, fmt.Sprintf("? %s L%d", o.Name, o.Level))
	}
	lines = append(lines,
		"",
		"Keys",
		"- ↑/↓ or j/k: move",
		"- tab: quests/rewards",
		"- c/space: toggle",
		"- r: refresh",
		"- q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	var out []string
	if m.pane == paneRewards {
		out = append(out, "Rewards")
		if len(m.state.Rewards) == 0 {
			out = append(out, "(empty)")
		}
		for i, r := range m.state.Rewards {
			out = append(out, fmt.Sprintf("%s%s %s (%d gold) %s", cursor(i == m.selected), r.Emoji, r.Title, r.GoldCost, ui.RewardStatus(r.Purchased)))
		}
		return strings.Join(out, "\n")
	}

	out = append(out, "Quests")
	if len(m.state.Quests) == 0 {
		out = append(out, "(empty)")
	}
	for i, q := range m.state.Quests {
		box := "[ ]"
		if q.Completed {
			box = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s %s (%s, +%d XP)", cursor(i == m.selected), box, q.Emoji, q.Title, ui.Difficulty(q.Difficulty), q.XPReward))
	}
	return strings.Join(out, "\n")
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
