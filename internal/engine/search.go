package engine

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

// questTitles implements fuzzy.Source over quest titles.
type questTitles []game.Quest

func (q questTitles) Len() int            { return len(q) }
func (q questTitles) String(i int) string { return strings.ToLower(q[i].Title) }

// FindQuests returns quests whose titles fuzzily match query, best first.
func (s *Service) FindQuests(query string) []game.Quest {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	quests := questTitles(s.Snapshot().Quests)
	matches := fuzzy.FindFrom(query, quests)
	out := make([]game.Quest, len(matches))
	for i, m := range matches {
		out[i] = quests[m.Index]
	}
	return out
}

// LookupQuest accepts a quest id or an exact title (ignoring case). It never
// guesses, so it is what destructive commands use.
func (s *Service) LookupQuest(ref string) (game.Quest, error) {
	ref = strings.TrimSpace(ref)
	st := s.Snapshot()
	if i := st.QuestIndex(ref); i >= 0 {
		return st.Quests[i], nil
	}
	for _, q := range st.Quests {
		if strings.EqualFold(q.Title, ref) {
			return q, nil
		}
	}
	return game.Quest{}, ErrQuestNotFound
}

// ResolveQuest is LookupQuest falling back to the best fuzzy title match.
func (s *Service) ResolveQuest(ref string) (game.Quest, error) {
	if q, err := s.LookupQuest(ref); err == nil {
		return q, nil
	}
	if found := s.FindQuests(ref); len(found) > 0 {
		return found[0], nil
	}
	return game.Quest{}, ErrQuestNotFound
}
