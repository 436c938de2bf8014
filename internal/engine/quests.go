package engine

import (
	"fmt"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

type QuestInput struct {
	Title      string
	Details    string
	Emoji      string
	Image      string
	Difficulty game.Difficulty

	// Explicit rewards; nil means priced from the current settings.
	XPReward   *int
	GoldReward *int
}

// QuestUpdate changes only the non-nil fields.
type QuestUpdate struct {
	Title      *string
	Details    *string
	Emoji      *string
	Image      *string
	Difficulty *game.Difficulty
	XPReward   *int
	GoldReward *int
}

func resolveDifficulty(d game.Difficulty) (game.Difficulty, error) {
	if d == "" {
		return game.DefaultDifficulty, nil
	}
	if !d.IsValid() {
		return "", fmt.Errorf("invalid difficulty: %q", d)
	}
	return d, nil
}

func validateReward(name string, v *int) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s must not be negative", name)
	}
	return nil
}

// CreateQuest adds a quest. Its rewards are fixed now; later settings changes
// do not reprice it.
func (s *Service) CreateQuest(in QuestInput) (game.Quest, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return game.Quest{}, err
	}
	diff, err := resolveDifficulty(in.Difficulty)
	if err != nil {
		return game.Quest{}, err
	}
	if err := validateReward("xp reward", in.XPReward); err != nil {
		return game.Quest{}, err
	}
	if err := validateReward("gold reward", in.GoldReward); err != nil {
		return game.Quest{}, err
	}

	var created game.Quest
	err = s.update(func(st *game.State) error {
		xp, gold := game.QuestRewards(st.SandboxSettings, diff)
		if in.XPReward != nil {
			xp = *in.XPReward
		}
		if in.GoldReward != nil {
			gold = *in.GoldReward
		}
		created = game.Quest{
			ID:         s.newID(),
			Title:      title,
			Details:    in.Details,
			Emoji:      in.Emoji,
			Image:      in.Image,
			Difficulty: diff,
			XPReward:   xp,
			GoldReward: gold,
			CreatedAt:  s.now().UTC(),
		}
		st.Quests = append(st.Quests, created)
		return nil
	})
	return created, err
}

// UpdateQuest edits a quest. Changing the difficulty of an open quest
// reprices it from the current settings; other edits keep its rewards.
// Explicit rewards always win. Completion state is not editable here.
func (s *Service) UpdateQuest(id string, up QuestUpdate) (game.Quest, error) {
	var title string
	if up.Title != nil {
		t, err := normalizeTitle(*up.Title)
		if err != nil {
			return game.Quest{}, err
		}
		title = t
	}
	if up.Difficulty != nil && !up.Difficulty.IsValid() {
		return game.Quest{}, fmt.Errorf("invalid difficulty: %q", *up.Difficulty)
	}
	if err := validateReward("xp reward", up.XPReward); err != nil {
		return game.Quest{}, err
	}
	if err := validateReward("gold reward", up.GoldReward); err != nil {
		return game.Quest{}, err
	}

	var updated game.Quest
	err := s.update(func(st *game.State) error {
		i := st.QuestIndex(id)
		if i < 0 {
			return ErrQuestNotFound
		}
		q := &st.Quests[i]
		if up.Title != nil {
			q.Title = title
		}
		if up.Details != nil {
			q.Details = *up.Details
		}
		if up.Emoji != nil {
			q.Emoji = *up.Emoji
		}
		if up.Image != nil {
			q.Image = *up.Image
		}
		if up.Difficulty != nil && *up.Difficulty != q.Difficulty {
			q.Difficulty = *up.Difficulty
			// A completed quest keeps what it paid out so undo gives it back.
			if !q.Completed {
				q.XPReward, q.GoldReward = game.QuestRewards(st.SandboxSettings, q.Difficulty)
			}
		}
		if up.XPReward != nil {
			q.XPReward = *up.XPReward
		}
		if up.GoldReward != nil {
			q.GoldReward = *up.GoldReward
		}
		updated = *q
		return nil
	})
	return updated, err
}

// DeleteQuest removes a quest permanently. Class links to it are left as
// they are.
func (s *Service) DeleteQuest(id string) error {
	return s.update(func(st *game.State) error {
		i := st.QuestIndex(id)
		if i < 0 {
			return ErrQuestNotFound
		}
		st.Quests = append(st.Quests[:i], st.Quests[i+1:]...)
		return nil
	})
}
