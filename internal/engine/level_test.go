package engine

import "testing"

func TestLevelBoundaries(t *testing.T) {
	if got := LevelForTotalXP(0); got != 0 {
		t.Fatalf("LevelForTotalXP(0)=%d, want 0", got)
	}
	if got := LevelForTotalXP(99); got != 0 {
		t.Fatalf("LevelForTotalXP(99)=%d, want 0", got)
	}
	if got := LevelForTotalXP(100); got != 1 {
		t.Fatalf("LevelForTotalXP(100)=%d, want 1", got)
	}
	if got := LevelForTotalXP(399); got != 1 {
		t.Fatalf("LevelForTotalXP(399)=%d, want 1", got)
	}
	if got := LevelForTotalXP(400); got != 2 {
		t.Fatalf("LevelForTotalXP(400)=%d, want 2", got)
	}
	if got := LevelForTotalXP(14400); got != 12 {
		t.Fatalf("LevelForTotalXP(14400)=%d, want 12", got)
	}
}

func TestLevelFloorCeilingBracket(t *testing.T) {
	for xp := 0; xp <= 30000; xp += 37 {
		level := LevelForTotalXP(xp)
		floor := XPFloorForLevel(level)
		if floor > xp {
			t.Fatalf("xp=%d: floor(%d)=%d above total", xp, level, floor)
		}
		if ceiling := XPCeilingForLevel(level); ceiling != 0 && ceiling <= xp {
			t.Fatalf("xp=%d: ceiling(%d)=%d not above total", xp, level, ceiling)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 50000; xp += 111 {
		level := LevelForTotalXP(xp)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}

func TestLevelCap(t *testing.T) {
	capXP := XPFloorForLevel(MaxLevel)
	if got := LevelForTotalXP(capXP); got != MaxLevel {
		t.Fatalf("LevelForTotalXP(capXP)=%d, want %d", got, MaxLevel)
	}
	if got := LevelForTotalXP(capXP * 10); got != MaxLevel {
		t.Fatalf("LevelForTotalXP(huge)=%d, want %d", got, MaxLevel)
	}
	if got := XPCeilingForLevel(MaxLevel); got != 0 {
		t.Fatalf("XPCeilingForLevel(cap)=%d, want 0", got)
	}
	p := ProgressWithinLevel(capXP*10, MaxLevel)
	if p.Current != 0 || p.Max != 0 {
		t.Fatalf("progress at cap=%+v, want frozen", p)
	}
}

func TestProgressWithinLevel(t *testing.T) {
	// Level 3 spans [900, 1600).
	p := ProgressWithinLevel(1150, 3)
	if p.Current != 250 {
		t.Fatalf("Current=%d, want 250", p.Current)
	}
	if p.Max != 700 {
		t.Fatalf("Max=%d, want 700", p.Max)
	}

	// Recomputing from a new total matches incrementally applied deltas.
	total := 1150 + 75
	p2 := ProgressWithinLevel(total, LevelForTotalXP(total))
	if p2.Current != 325 || p2.Max != 700 {
		t.Fatalf("after delta: %+v, want {325 700}", p2)
	}
}
