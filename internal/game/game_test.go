package game

import (
	"testing"
	"time"
)

func TestRankForLevel(t *testing.T) {
	ranks := DefaultRanks()

	cases := []struct {
		level int
		want  string
	}{
		{level: 0, want: "BRONZE 1 🟤"},
		{level: 1, want: "BRONZE 1 🟤"},
		{level: 3, want: "BRONZE 3 🟤🟤🟤"},
		{level: 10, want: "GOLD 4 🟡🟡🟡🟡"},
		{level: 29, want: "GRANDMASTER ⭐"},
		{level: 500, want: "GRANDMASTER ⭐"},
	}
	for _, c := range cases {
		if got := RankForLevel(c.level, ranks).Name; got != c.want {
			t.Fatalf("RankForLevel(%d)=%q, want %q", c.level, got, c.want)
		}
	}
}

func TestRankForLevelSingleEntryAndGaps(t *testing.T) {
	single := []RankConfig{{Level: 5, Name: "Only"}}
	if got := RankForLevel(1, single).Name; got != "Only" {
		t.Fatalf("below threshold=%q, want fallback to first", got)
	}
	if got := RankForLevel(99, single).Name; got != "Only" {
		t.Fatalf("above threshold=%q, want Only", got)
	}

	gaps := []RankConfig{{Level: 1, Name: "A"}, {Level: 10, Name: "B"}, {Level: 20, Name: "C"}}
	if got := RankForLevel(15, gaps).Name; got != "B" {
		t.Fatalf("RankForLevel(15)=%q, want B", got)
	}
	if got := RankForLevel(3, nil); got != (RankConfig{}) {
		t.Fatalf("empty table=%+v, want zero value", got)
	}
}

func TestGainXPRollsOverLevels(t *testing.T) {
	level, xp := GainXP(1, 800, 300, 1000)
	if level != 2 || xp != 100 {
		t.Fatalf("GainXP=(%d,%d), want (2,100)", level, xp)
	}

	level, xp = GainXP(3, 999, 2001, 1000)
	if level != 6 || xp != 0 {
		t.Fatalf("GainXP multi=(%d,%d), want (6,0)", level, xp)
	}

	level, xp = GainXP(1, 10, 5000, 0)
	if level != 1 || xp != 5010 {
		t.Fatalf("GainXP per=0 =(%d,%d), want (1,5010)", level, xp)
	}
}

func TestLoseXPBorrowsAndClamps(t *testing.T) {
	level, xp := LoseXP(2, 100, 300, 1000, PlayerMinLevel)
	if level != 1 || xp != 800 {
		t.Fatalf("LoseXP=(%d,%d), want (1,800)", level, xp)
	}

	level, xp = LoseXP(1, 100, 300, 1000, PlayerMinLevel)
	if level != 1 || xp != 0 {
		t.Fatalf("LoseXP at floor=(%d,%d), want (1,0)", level, xp)
	}

	level, xp = LoseXP(1, 100, 300, 1000, ClassMinLevel)
	if level != 0 || xp != 800 {
		t.Fatalf("LoseXP class floor=(%d,%d), want (0,800)", level, xp)
	}
}

func TestGainThenLoseRestoresAwayFromFloor(t *testing.T) {
	for _, gained := range []int{1, 250, 999, 1000, 4321} {
		l0, x0 := 4, 333
		l1, x1 := GainXP(l0, x0, gained, 1000)
		l2, x2 := LoseXP(l1, x1, gained, 1000, PlayerMinLevel)
		if l2 != l0 || x2 != x0 {
			t.Fatalf("gain/lose %d: got (%d,%d), want (%d,%d)", gained, l2, x2, l0, x0)
		}
	}
}

func TestQuestRewardsUsesMultipliers(t *testing.T) {
	s := DefaultSandboxSettings()
	xp, gold := QuestRewards(s, DifficultyHard)
	if xp != 1000 || gold != 1000 {
		t.Fatalf("Hard rewards=(%d,%d), want (1000,1000)", xp, gold)
	}

	s.ExpPerQuest = 5
	s.DifficultyMultipliers[DifficultyEasy] = Multiplier{XP: 1.5, Gold: 0.1}
	xp, gold = QuestRewards(s, DifficultyEasy)
	if xp != 8 || gold != 25 {
		t.Fatalf("Easy rewards=(%d,%d), want (8,25)", xp, gold)
	}
}

func TestMaxReachableLevel(t *testing.T) {
	quests := []Quest{{XPReward: 600}, {XPReward: 900}, {XPReward: 600}}
	if got := MaxReachableLevel(quests, 1000); got != 2 {
		t.Fatalf("MaxReachableLevel=%d, want 2", got)
	}
	if got := MaxReachableLevel(quests, 0); got != 0 {
		t.Fatalf("MaxReachableLevel per=0 =%d, want 0", got)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewState(now)
	s.Quests = append(s.Quests, Quest{ID: "q1", CompletedAt: &now})
	s.Classes = append(s.Classes, Class{ID: "c1", LinkedQuestIDs: []string{"q1"}})
	s.DeletedData = &DeletedData{Data: "{}", DeletedAt: now}

	c := s.Clone()
	c.Quests[0].Title = "changed"
	*c.Quests[0].CompletedAt = now.Add(time.Hour)
	c.Classes[0].LinkedQuestIDs[0] = "other"
	c.SandboxSettings.CustomRanks[0].Name = "renamed"
	c.SandboxSettings.DifficultyMultipliers[DifficultyEasy] = Multiplier{XP: 99}
	c.DeletedData.Data = "changed"

	if s.Quests[0].Title != "" || !s.Quests[0].CompletedAt.Equal(now) {
		t.Fatalf("quest aliased: %+v", s.Quests[0])
	}
	if s.Classes[0].LinkedQuestIDs[0] != "q1" {
		t.Fatalf("linked ids aliased")
	}
	if s.SandboxSettings.CustomRanks[0].Name != "BRONZE 1 🟤" {
		t.Fatalf("ranks aliased")
	}
	if s.SandboxSettings.DifficultyMultipliers[DifficultyEasy].XP != 1 {
		t.Fatalf("multipliers aliased")
	}
	if s.DeletedData.Data != "{}" {
		t.Fatalf("deleted data aliased")
	}
}

func TestClassTreeResolvesParents(t *testing.T) {
	s := NewState(time.Now())
	s.Classes = []Class{{ID: "warrior"}, {ID: "mage"}}
	s.Subclasses = []Class{
		{ID: "berserker", ParentID: "warrior"},
		{ID: "pyro", ParentID: "mage"},
		{ID: "lost", ParentID: "gone"},
	}

	tree, orphans := s.ClassTree()
	if len(tree) != 2 || len(tree[0].Subclasses) != 1 || tree[0].Subclasses[0].ID != "berserker" {
		t.Fatalf("unexpected tree: %+v", tree)
	}
	if len(orphans) != 1 || orphans[0].ID != "lost" {
		t.Fatalf("orphans=%+v, want [lost]", orphans)
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" extreme ")
	if err != nil || d != DifficultyExtreme {
		t.Fatalf("ParseDifficulty=%q,%v", d, err)
	}
	if _, err := ParseDifficulty("legendary"); err == nil {
		t.Fatalf("expected error for unknown difficulty")
	}
}
