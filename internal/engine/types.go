package engine

// TaskKind distinguishes the three task families.
type TaskKind string

const (
	TaskKindHabit TaskKind = "habit"
	TaskKindDaily TaskKind = "daily"
	TaskKindTodo  TaskKind = "todo"
)

func (k TaskKind) IsValid() bool {
	switch k {
	case TaskKindHabit, TaskKindDaily, TaskKindTodo:
		return true
	default:
		return false
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Priority applies to todos only.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
