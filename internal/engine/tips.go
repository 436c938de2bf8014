package engine

import (
	"fmt"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

type TipInput struct {
	Title   string
	Content string
	Type    game.TipType
	URL     string
	Emoji   string
}

type TipUpdate struct {
	Title   *string
	Content *string
	Type    *game.TipType
	URL     *string
	Emoji   *string
}

func resolveTipType(t game.TipType) (game.TipType, error) {
	if t == "" {
		return game.TipNote, nil
	}
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tip type: %q", t)
	}
	return t, nil
}

// CreateTip adds a tip. A URL is not required for video or article tips.
func (s *Service) CreateTip(in TipInput) (game.ProTip, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return game.ProTip{}, err
	}
	typ, err := resolveTipType(in.Type)
	if err != nil {
		return game.ProTip{}, err
	}

	var created game.ProTip
	err = s.update(func(st *game.State) error {
		created = game.ProTip{
			ID:        s.newID(),
			Title:     title,
			Content:   in.Content,
			Type:      typ,
			URL:       in.URL,
			Emoji:     in.Emoji,
			CreatedAt: s.now().UTC(),
		}
		st.ProTips = append(st.ProTips, created)
		return nil
	})
	return created, err
}

func (s *Service) UpdateTip(id string, up TipUpdate) (game.ProTip, error) {
	var title string
	if up.Title != nil {
		t, err := normalizeTitle(*up.Title)
		if err != nil {
			return game.ProTip{}, err
		}
		title = t
	}
	if up.Type != nil && !up.Type.IsValid() {
		return game.ProTip{}, fmt.Errorf("invalid tip type: %q", *up.Type)
	}

	var updated game.ProTip
	err := s.update(func(st *game.State) error {
		i := st.TipIndex(id)
		if i < 0 {
			return ErrTipNotFound
		}
		t := &st.ProTips[i]
		if up.Title != nil {
			t.Title = title
		}
		if up.Content != nil {
			t.Content = *up.Content
		}
		if up.Type != nil {
			t.Type = *up.Type
		}
		if up.URL != nil {
			t.URL = *up.URL
		}
		if up.Emoji != nil {
			t.Emoji = *up.Emoji
		}
		updated = *t
		return nil
	})
	return updated, err
}

func (s *Service) DeleteTip(id string) error {
	return s.update(func(st *game.State) error {
		i := st.TipIndex(id)
		if i < 0 {
			return ErrTipNotFound
		}
		st.ProTips = append(st.ProTips[:i], st.ProTips[i+1:]...)
		return nil
	})
}
