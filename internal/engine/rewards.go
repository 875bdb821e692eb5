package engine

import "math"

// Reward is the XP/coin delta granted for a task completion.
// The value is frozen on the task at creation time.
type Reward struct {
	XP    int
	Coins int
}

// Habit and daily rewards are keyed by difficulty only.
var habitDailyRewards = map[Difficulty]Reward{
	DifficultyEasy:   {XP: 10, Coins: 2},
	DifficultyMedium: {XP: 15, Coins: 3},
	DifficultyHard:   {XP: 20, Coins: 4},
}

// Todo rewards get a priority multiplier on top of the difficulty base.
var todoRewards = map[Difficulty]Reward{
	DifficultyEasy:   {XP: 15, Coins: 3},
	DifficultyMedium: {XP: 20, Coins: 4},
	DifficultyHard:   {XP: 25, Coins: 5},
}

var priorityFactors = map[Priority]float64{
	PriorityLow:    1.0,
	PriorityMedium: 1.2,
	PriorityHigh:   1.5,
}

// ComputeReward maps (kind, difficulty, priority) to an XP/coin reward.
// Priority is only consulted for todos and required there. Multiplied todo
// values are floored; the same rule applies at creation and on edit-time
// recompute. Deterministic, no shared state.
func ComputeReward(kind TaskKind, difficulty Difficulty, priority Priority) (Reward, error) {
	switch kind {
	case TaskKindHabit, TaskKindDaily:
		base, ok := habitDailyRewards[difficulty]
		if !ok {
			return Reward{}, ErrInvalidInput("difficulty", string(difficulty))
		}
		return base, nil
	case TaskKindTodo:
		base, ok := todoRewards[difficulty]
		if !ok {
			return Reward{}, ErrInvalidInput("difficulty", string(difficulty))
		}
		factor, ok := priorityFactors[priority]
		if !ok {
			return Reward{}, ErrInvalidInput("priority", string(priority))
		}
		return Reward{
			XP:    int(math.Floor(float64(base.XP) * factor)),
			Coins: int(math.Floor(float64(base.Coins) * factor)),
		}, nil
	default:
		return Reward{}, ErrInvalidInput("task kind", string(kind))
	}
}

// DisplayReward returns the level-adjusted value shown in task lists:
// reward * (1 + (level-1) * 0.1), floored. Presentation only; payouts
// always use the reward stored on the task.
func DisplayReward(stored, level int) int {
	if level <= 1 {
		return stored
	}
	return int(math.Floor(float64(stored) * (1 + float64(level-1)*0.1)))
}
