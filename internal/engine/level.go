package engine

import "math"

// MaxLevel is the inclusive level cap.
const MaxLevel = 100

// xpPerLevelUnit is the constant from the level curve: the cumulative XP
// required to reach level L is L^2 * 100.
const xpPerLevelUnit = 100

// LevelForTotalXP returns floor(sqrt(totalXP / 100)) clamped to [0, MaxLevel].
func LevelForTotalXP(totalXP int) int {
	if totalXP <= 0 {
		return 0
	}
	level := int(math.Sqrt(float64(totalXP) / float64(xpPerLevelUnit)))
	// Guard against float rounding right at a threshold.
	for XPFloorForLevel(level+1) <= totalXP {
		level++
	}
	for level > 0 && XPFloorForLevel(level) > totalXP {
		level--
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// XPFloorForLevel returns the cumulative XP required to reach the given level.
func XPFloorForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return level * level * xpPerLevelUnit
}

// XPCeilingForLevel returns the cumulative XP at which the next level starts.
// At the level cap there is no further progress and the ceiling is 0.
func XPCeilingForLevel(level int) int {
	if level >= MaxLevel {
		return 0
	}
	return (level + 1) * (level + 1) * xpPerLevelUnit
}

// LevelProgress is the XP bar within a single level.
type LevelProgress struct {
	Current int
	Max     int
}

// ProgressWithinLevel computes the XP bar for the given total XP and level.
// Stateless: recomputing from any new total yields the same result as
// applying deltas incrementally.
func ProgressWithinLevel(totalXP, level int) LevelProgress {
	floor := XPFloorForLevel(level)
	ceiling := XPCeilingForLevel(level)
	if ceiling == 0 {
		// Level cap: the bar is full and frozen.
		return LevelProgress{Current: 0, Max: 0}
	}
	return LevelProgress{
		Current: totalXP - floor,
		Max:     ceiling - floor,
	}
}
