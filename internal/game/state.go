package game

import "time"

// DefaultPlayerName is the placeholder name of a fresh profile.
const DefaultPlayerName = "Your Name Here"

// State is the whole persisted game: one value, replaced wholesale on every
// change.
type State struct {
	Player          Player          `json:"player"`
	Quests          []Quest         `json:"quests"`
	Classes         []Class         `json:"classes"`
	Subclasses      []Class         `json:"subclasses"`
	Rewards         []Reward        `json:"rewards"`
	ProTips         []ProTip        `json:"proTips"`
	ProgressHistory []ProgressEntry `json:"progressHistory"`
	SandboxSettings SandboxSettings `json:"sandboxSettings"`
	DeletedData     *DeletedData    `json:"deletedData,omitempty"`
	ShowQuestImages bool            `json:"showQuestImages"`
}

func NewPlayer(now time.Time) Player {
	return Player{
		Name:      DefaultPlayerName,
		Level:     PlayerMinLevel,
		CreatedAt: now.UTC(),
	}
}

// NewState returns the pristine initial state.
func NewState(now time.Time) *State {
	return &State{
		Player:          NewPlayer(now),
		Quests:          []Quest{},
		Classes:         []Class{},
		Subclasses:      []Class{},
		Rewards:         []Reward{},
		ProTips:         []ProTip{},
		ProgressHistory: []ProgressEntry{},
		SandboxSettings: DefaultSandboxSettings(),
		ShowQuestImages: true,
	}
}

// Clone returns a deep copy; nothing in the copy aliases s.
func (s *State) Clone() *State {
	out := *s
	out.Quests = make([]Quest, len(s.Quests))
	for i, q := range s.Quests {
		q.CompletedAt = cloneTime(q.CompletedAt)
		out.Quests[i] = q
	}
	out.Classes = cloneClasses(s.Classes)
	out.Subclasses = cloneClasses(s.Subclasses)
	out.Rewards = make([]Reward, len(s.Rewards))
	for i, r := range s.Rewards {
		r.PurchasedAt = cloneTime(r.PurchasedAt)
		out.Rewards[i] = r
	}
	out.ProTips = append([]ProTip{}, s.ProTips...)
	out.ProgressHistory = append([]ProgressEntry{}, s.ProgressHistory...)
	out.SandboxSettings = s.SandboxSettings.clone()
	if s.DeletedData != nil {
		d := *s.DeletedData
		out.DeletedData = &d
	}
	return &out
}

func cloneClasses(in []Class) []Class {
	out := make([]Class, len(in))
	for i, c := range in {
		if c.LinkedQuestIDs != nil {
			c.LinkedQuestIDs = append([]string{}, c.LinkedQuestIDs...)
		}
		out[i] = c
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func (s *State) QuestIndex(id string) int {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) RewardIndex(id string) int {
	for i := range s.Rewards {
		if s.Rewards[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) TipIndex(id string) int {
	for i := range s.ProTips {
		if s.ProTips[i].ID == id {
			return i
		}
	}
	return -1
}

// FindClass looks id up among classes, then subclasses.
func (s *State) FindClass(id string) *Class {
	for i := range s.Classes {
		if s.Classes[i].ID == id {
			return &s.Classes[i]
		}
	}
	for i := range s.Subclasses {
		if s.Subclasses[i].ID == id {
			return &s.Subclasses[i]
		}
	}
	return nil
}

// Rank is the rank of the current player level.
func (s *State) Rank() RankConfig {
	return RankForLevel(s.Player.Level, s.SandboxSettings.CustomRanks)
}

// ClassNode is a top-level class with its subclasses.
type ClassNode struct {
	Class      Class
	Subclasses []Class
}

// ClassTree groups subclasses under their parents. Subclasses whose parent is
// missing are returned separately as orphans.
func (s *State) ClassTree() (tree []ClassNode, orphans []Class) {
	byID := make(map[string]int, len(s.Classes))
	tree = make([]ClassNode, len(s.Classes))
	for i, c := range s.Classes {
		byID[c.ID] = i
		tree[i] = ClassNode{Class: c}
	}
	for _, sc := range s.Subclasses {
		i, ok := byID[sc.ParentID]
		if !ok {
			orphans = append(orphans, sc)
			continue
		}
		tree[i].Subclasses = append(tree[i].Subclasses, sc)
	}
	return tree, orphans
}
