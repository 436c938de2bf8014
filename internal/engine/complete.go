package engine

import (
	"github.com/levelifeofficial/levelife-922003/internal/game"
)

type CompleteResult struct {
	QuestID     string
	XPAwarded   int
	GoldAwarded int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Rank        game.RankConfig
	// ClassesLeveled lists linked classes/subclasses that gained a level.
	ClassesLeveled []string
}

type UncompleteResult struct {
	QuestID     string
	XPRemoved   int
	GoldRemoved int
	LevelBefore int
	LevelAfter  int
	LevelDown   bool
}

type UncompleteAllResult struct {
	Count       int
	XPRemoved   int
	GoldRemoved int
	LevelBefore int
	LevelAfter  int
}

// feedClasses applies fn to every class whose links mention questID. A quest
// linked twice is applied twice.
func feedClasses(classes []game.Class, questID string, fn func(c *game.Class)) {
	for i := range classes {
		for _, id := range classes[i].LinkedQuestIDs {
			if id == questID {
				fn(&classes[i])
			}
		}
	}
}

// CompleteQuest awards a quest's XP and gold, levels the player and every
// linked class, marks the quest done and appends a progress entry.
func (s *Service) CompleteQuest(id string) (*CompleteResult, error) {
	var res *CompleteResult
	err := s.update(func(st *game.State) error {
		i := st.QuestIndex(id)
		if i < 0 {
			return ErrQuestNotFound
		}
		q := &st.Quests[i]
		if q.Completed {
			return ErrQuestAlreadyCompleted
		}

		now := s.now().UTC()
		p := &st.Player
		levelBefore := p.Level

		p.Level, p.XP = game.GainXP(p.Level, p.XP, q.XPReward, st.SandboxSettings.ExpPerLevel)
		p.Gold += q.GoldReward
		p.TotalXPEarned += q.XPReward
		p.QuestsCompleted++

		var leveled []string
		gain := func(c *game.Class) {
			before := c.Level
			c.Level, c.XP = game.GainXP(c.Level, c.XP, q.XPReward, c.XPToNextLevel)
			if c.Level > before {
				leveled = append(leveled, c.Name)
			}
		}
		feedClasses(st.Classes, id, gain)
		feedClasses(st.Subclasses, id, gain)

		q.Completed = true
		q.CompletedAt = &now

		rank := st.Rank()
		st.ProgressHistory = append(st.ProgressHistory, game.ProgressEntry{
			Date:            now,
			Level:           p.Level,
			Rank:            rank.Name,
			XP:              p.XP,
			Gold:            p.Gold,
			QuestsCompleted: p.QuestsCompleted,
		})

		res = &CompleteResult{
			QuestID:        id,
			XPAwarded:      q.XPReward,
			GoldAwarded:    q.GoldReward,
			LevelBefore:    levelBefore,
			LevelAfter:     p.Level,
			LevelUp:        p.Level > levelBefore,
			Rank:           rank,
			ClassesLeveled: leveled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// UncompleteQuest reverses a completion as far as the level floors allow.
// The progress history is left alone.
func (s *Service) UncompleteQuest(id string) (*UncompleteResult, error) {
	var res *UncompleteResult
	err := s.update(func(st *game.State) error {
		i := st.QuestIndex(id)
		if i < 0 {
			return ErrQuestNotFound
		}
		q := &st.Quests[i]
		if !q.Completed {
			return ErrQuestNotCompleted
		}

		p := &st.Player
		levelBefore := p.Level
		goldBefore := p.Gold

		p.Level, p.XP = game.LoseXP(p.Level, p.XP, q.XPReward, st.SandboxSettings.ExpPerLevel, game.PlayerMinLevel)
		p.Gold = max(0, p.Gold-q.GoldReward)
		p.TotalXPEarned = max(0, p.TotalXPEarned-q.XPReward)
		p.QuestsCompleted = max(0, p.QuestsCompleted-1)

		lose := func(c *game.Class) {
			c.Level, c.XP = game.LoseXP(c.Level, c.XP, q.XPReward, c.XPToNextLevel, game.ClassMinLevel)
		}
		feedClasses(st.Classes, id, lose)
		feedClasses(st.Subclasses, id, lose)

		q.Completed = false
		q.CompletedAt = nil

		res = &UncompleteResult{
			QuestID:     id,
			XPRemoved:   q.XPReward,
			GoldRemoved: goldBefore - p.Gold,
			LevelBefore: levelBefore,
			LevelAfter:  p.Level,
			LevelDown:   p.Level < levelBefore,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// UncompleteAllQuests reverts every completed quest in one step: the summed
// rewards are removed once against the player. Linked classes keep the XP
// they gained from these quests.
func (s *Service) UncompleteAllQuests() (*UncompleteAllResult, error) {
	var res *UncompleteAllResult
	err := s.update(func(st *game.State) error {
		count, xp, gold := 0, 0, 0
		for i := range st.Quests {
			if st.Quests[i].Completed {
				count++
				xp += st.Quests[i].XPReward
				gold += st.Quests[i].GoldReward
			}
		}
		if count == 0 {
			return ErrNoCompletedQuests
		}

		p := &st.Player
		levelBefore := p.Level
		goldBefore := p.Gold

		p.Level, p.XP = game.LoseXP(p.Level, p.XP, xp, st.SandboxSettings.ExpPerLevel, game.PlayerMinLevel)
		p.Gold = max(0, p.Gold-gold)
		p.TotalXPEarned = max(0, p.TotalXPEarned-xp)
		p.QuestsCompleted = max(0, p.QuestsCompleted-count)

		for i := range st.Quests {
			if st.Quests[i].Completed {
				st.Quests[i].Completed = false
				st.Quests[i].CompletedAt = nil
			}
		}

		res = &UncompleteAllResult{
			Count:       count,
			XPRemoved:   xp,
			GoldRemoved: goldBefore - p.Gold,
			LevelBefore: levelBefore,
			LevelAfter:  p.Level,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
