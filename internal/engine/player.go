package engine

import (
	"strings"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

type PlayerUpdate struct {
	Name   *string
	Avatar *string
	Banner *string
}

// UpdatePlayer edits profile fields. Progression fields are owned by the
// quest and reward operations.
func (s *Service) UpdatePlayer(up PlayerUpdate) (game.Player, error) {
	var name string
	if up.Name != nil {
		n, err := normalizeTitle(*up.Name)
		if err != nil {
			return game.Player{}, err
		}
		name = n
	}

	var out game.Player
	err := s.update(func(st *game.State) error {
		if up.Name != nil {
			st.Player.Name = name
		}
		if up.Avatar != nil {
			st.Player.Avatar = strings.TrimSpace(*up.Avatar)
		}
		if up.Banner != nil {
			st.Player.Banner = strings.TrimSpace(*up.Banner)
		}
		out = st.Player
		return nil
	})
	return out, err
}

// ToggleQuestImages flips quest image visibility and returns the new value.
func (s *Service) ToggleQuestImages() bool {
	var shown bool
	_ = s.update(func(st *game.State) error {
		st.ShowQuestImages = !st.ShowQuestImages
		shown = st.ShowQuestImages
		return nil
	})
	return shown
}
