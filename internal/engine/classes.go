package engine

import (
	"errors"
	"strings"

	"github.com/levelifeofficial/levelife-922003/internal/game"
)

type ClassInput struct {
	Name        string
	Emoji       string
	ImageURI    string
	Description string
}

func newClass(id string, in ClassInput, parentID string) (game.Class, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return game.Class{}, errors.New("name is required")
	}
	return game.Class{
		ID:            id,
		Name:          name,
		Emoji:         in.Emoji,
		ImageURI:      in.ImageURI,
		ParentID:      parentID,
		Description:   in.Description,
		Level:         game.ClassMinLevel,
		XP:            0,
		XPToNextLevel: game.DefaultClassXPToNextLevel,
	}, nil
}

func (s *Service) CreateClass(in ClassInput) (game.Class, error) {
	var created game.Class
	err := s.update(func(st *game.State) error {
		c, err := newClass(s.newID(), in, "")
		if err != nil {
			return err
		}
		created = c
		st.Classes = append(st.Classes, c)
		return nil
	})
	return created, err
}

// CreateSubclass adds a subclass under the top-level class parentID.
func (s *Service) CreateSubclass(parentID string, in ClassInput) (game.Class, error) {
	var created game.Class
	err := s.update(func(st *game.State) error {
		found := false
		for _, c := range st.Classes {
			if c.ID == parentID {
				found = true
				break
			}
		}
		if !found {
			return ErrParentNotFound
		}
		c, err := newClass(s.newID(), in, parentID)
		if err != nil {
			return err
		}
		created = c
		st.Subclasses = append(st.Subclasses, c)
		return nil
	})
	return created, err
}

// LinkQuestToClass makes completions of questID also feed classID, which may
// be a class or a subclass. The id is appended even if already present, so
// linking twice counts the quest twice.
func (s *Service) LinkQuestToClass(classID, questID string) error {
	return s.update(func(st *game.State) error {
		c := st.FindClass(classID)
		if c == nil {
			return ErrClassNotFound
		}
		c.LinkedQuestIDs = append(c.LinkedQuestIDs, questID)
		return nil
	})
}

// UnlinkQuestFromClass drops every occurrence of questID from the class links.
func (s *Service) UnlinkQuestFromClass(classID, questID string) error {
	return s.update(func(st *game.State) error {
		c := st.FindClass(classID)
		if c == nil {
			return ErrClassNotFound
		}
		kept := c.LinkedQuestIDs[:0]
		for _, id := range c.LinkedQuestIDs {
			if id != questID {
				kept = append(kept, id)
			}
		}
		c.LinkedQuestIDs = kept
		return nil
	})
}

// ClassTree returns top-level classes with their subclasses, plus any
// subclasses whose parent no longer exists.
func (s *Service) ClassTree() ([]game.ClassNode, []game.Class) {
	return s.Snapshot().ClassTree()
}
