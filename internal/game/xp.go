package game

import "math"

const (
	// PlayerMinLevel is the floor for player level-downs.
	PlayerMinLevel = 1

	// ClassMinLevel is the floor for class and subclass level-downs.
	ClassMinLevel = 0
)

// GainXP adds gained to xp and rolls whole levels over. The returned xp is in
// [0, per) whenever per > 0 and the inputs were at rest. A non-positive per
// never levels up.
func GainXP(level, xp, gained, per int) (int, int) {
	xp += gained
	if per <= 0 {
		return level, xp
	}
	for xp >= per {
		xp -= per
		level++
	}
	return level, xp
}

// LoseXP removes lost from xp, borrowing whole levels while xp is negative
// and level is above floor. Whatever cannot be borrowed is dropped: xp is
// clamped at 0.
func LoseXP(level, xp, lost, per, floor int) (int, int) {
	xp -= lost
	if per > 0 {
		for xp < 0 && level > floor {
			xp += per
			level--
		}
	}
	if xp < 0 {
		xp = 0
	}
	if level < floor {
		level = floor
	}
	return level, xp
}

// roundHalfUp rounds x to the nearest integer, halves towards +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// QuestRewards prices a quest of difficulty d under the given settings. The
// result is frozen on the quest; later settings changes do not touch it.
func QuestRewards(s SandboxSettings, d Difficulty) (xp int, gold int) {
	m, ok := s.DifficultyMultipliers[d]
	if !ok {
		m = DefaultMultipliers()[d]
	}
	return roundHalfUp(float64(s.ExpPerQuest) * m.XP), roundHalfUp(float64(s.GoldPerQuest) * m.Gold)
}

// MaxReachableLevel is how many levels the XP of every known quest adds up to.
func MaxReachableLevel(quests []Quest, expPerLevel int) int {
	if expPerLevel <= 0 {
		return 0
	}
	total := 0
	for _, q := range quests {
		total += q.XPReward
	}
	if total <= 0 {
		return 0
	}
	return total / expPerLevel
}
