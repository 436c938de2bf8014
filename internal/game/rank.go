package game

import "sort"

type RankConfig struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Image string `json:"image,omitempty"`
}

// DefaultRanks returns a fresh copy of the built-in rank table.
func DefaultRanks() []RankConfig {
	return []RankConfig{
		{Level: 1, Name: "BRONZE 1 🟤", Color: "#8B4513"},
		{Level: 2, Name: "BRONZE 2 🟤🟤", Color: "#8B4513"},
		{Level: 3, Name: "BRONZE 3 🟤🟤🟤", Color: "#8B4513"},
		{Level: 4, Name: "SILVER 1 🪙", Color: "#C0C0C0"},
		{Level: 5, Name: "SILVER 2 🪙🪙", Color: "#C0C0C0"},
		{Level: 6, Name: "SILVER 3 🪙🪙🪙", Color: "#C0C0C0"},
		{Level: 7, Name: "GOLD 1 🟡", Color: "#FFD700"},
		{Level: 8, Name: "GOLD 2 🟡🟡", Color: "#FFD700"},
		{Level: 9, Name: "GOLD 3 🟡🟡🟡", Color: "#FFD700"},
		{Level: 10, Name: "GOLD 4 🟡🟡🟡🟡", Color: "#FFD700"},
		{Level: 11, Name: "PLATINUM 1 💠", Color: "#4A90E2"},
		{Level: 12, Name: "PLATINUM 2 💠💠", Color: "#4A90E2"},
		{Level: 13, Name: "PLATINUM 3 💠💠💠", Color: "#4A90E2"},
		{Level: 14, Name: "PLATINUM 4 💠💠💠💠", Color: "#4A90E2"},
		{Level: 15, Name: "DIAMOND 1 💎", Color: "#B57EDC"},
		{Level: 16, Name: "DIAMOND 2 💎💎", Color: "#B57EDC"},
		{Level: 17, Name: "DIAMOND 3 💎💎💎", Color: "#B57EDC"},
		{Level: 18, Name: "DIAMOND 4 💎💎💎💎", Color: "#B57EDC"},
		{Level: 19, Name: "HEROIC 1 🔻", Color: "#E74C3C"},
		{Level: 20, Name: "HEROIC 2 🔻🔻", Color: "#E74C3C"},
		{Level: 21, Name: "HEROIC 3 🔻🔻🔻", Color: "#E74C3C"},
		{Level: 22, Name: "HEROIC 4 🔻🔻🔻🔻", Color: "#E74C3C"},
		{Level: 23, Name: "HEROIC 5 🔻🔻🔻🔻🔻", Color: "#E74C3C"},
		{Level: 24, Name: "MASTER 1 🎖️", Color: "#FF8C00"},
		{Level: 25, Name: "MASTER 2 🎖️🎖️", Color: "#FF8C00"},
		{Level: 26, Name: "MASTER 3 🎖️🎖️🎖️", Color: "#FF8C00"},
		{Level: 27, Name: "MASTER 4 🎖️🎖️🎖️🎖️", Color: "#FF8C00"},
		{Level: 28, Name: "MASTER 5 🎖️🎖️🎖️🎖️🎖️", Color: "#FF8C00"},
		{Level: 29, Name: "GRANDMASTER ⭐", Color: "#FFD700"},
	}
}

// RankForLevel returns the entry with the highest threshold not exceeding
// level. Levels below every threshold get the first entry. The table must be
// sorted ascending by Level.
func RankForLevel(level int, table []RankConfig) RankConfig {
	if len(table) == 0 {
		return RankConfig{}
	}
	for i := len(table) - 1; i >= 0; i-- {
		if level >= table[i].Level {
			return table[i]
		}
	}
	return table[0]
}

// SortRanks orders the table ascending by threshold, keeping the relative
// order of equal thresholds.
func SortRanks(table []RankConfig) {
	sort.SliceStable(table, func(i, j int) bool { return table[i].Level < table[j].Level })
}
