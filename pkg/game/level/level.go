// Package level defines the fixed level count and how each level scales the
// puzzle: word count, difficulty ceiling and reveals. The player never sees
// the total; they discover the end by completing the final level.
package level

import (
	"github.com/leonelquinteros/gotext"
)

// TotalLevels is the fixed number of levels (never shown to player).
const TotalLevels = 10

// MaxWords caps TargetWordCount on deep levels.
const MaxWords = 14

// IsFinalLevel returns true if the given level (1-based) is the last one.
func IsFinalLevel(level int) bool {
	return level >= TotalLevels
}

// NextLevel returns the level after current, or 0 if current is final.
func NextLevel(current int) int {
	if current <= 0 || current >= TotalLevels {
		return 0
	}
	return current + 1
}

// Clamp forces level into 1..TotalLevels
func Clamp(level int) int {
	if level < 1 {
		return 1
	}
	if level > TotalLevels {
		return TotalLevels
	}
	return level
}

// TargetWordCount returns how many words the builder should try to place.
func TargetWordCount(level int) int {
	n := 4 + Clamp(level)
	if n > MaxWords {
		n = MaxWords
	}
	return n
}

// MaxDifficulty returns the hardest word difficulty allowed on level. The
// final band returns -1, meaning no limit.
func MaxDifficulty(level int) int {
	switch l := Clamp(level); {
	case l <= 2:
		return 1
	case l <= 5:
		return 2
	case l <= 8:
		return 3
	default:
		return -1
	}
}

// RevealsForLevel returns how many letter reveals the player starts level with.
func RevealsForLevel(level int) int {
	switch l := Clamp(level); {
	case l <= 2:
		return 3
	case l <= 8:
		return 2
	default:
		return 1
	}
}

// FlavourKey returns the gettext message key for the level banner. Later
// levels use a bleaker tone.
func FlavourKey(level int) string {
	switch l := Clamp(level); {
	case l <= 2:
		return "LEVEL_FLAVOUR_EARLY"
	case l <= 5:
		return "LEVEL_FLAVOUR_MID"
	case l <= 8:
		return "LEVEL_FLAVOUR_LATE"
	default:
		return "LEVEL_FLAVOUR_FINAL"
	}
}

// FlavourText returns the translated banner for level. Uses gotext.Get with
// constant keys to satisfy vet.
func FlavourText(level int) string {
	switch FlavourKey(level) {
	case "LEVEL_FLAVOUR_MID":
		return gotext.Get("LEVEL_FLAVOUR_MID")
	case "LEVEL_FLAVOUR_LATE":
		return gotext.Get("LEVEL_FLAVOUR_LATE")
	case "LEVEL_FLAVOUR_FINAL":
		return gotext.Get("LEVEL_FLAVOUR_FINAL")
	default:
		return gotext.Get("LEVEL_FLAVOUR_EARLY")
	}
}
