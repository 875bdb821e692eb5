package engine

import "strings"

// ParseTaskKind parses user input to a TaskKind.
func ParseTaskKind(input string) (TaskKind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "habit", "habits":
		return TaskKindHabit, nil
	case "daily", "dailies":
		return TaskKindDaily, nil
	case "todo", "todos":
		return TaskKindTodo, nil
	default:
		return "", ErrInvalidInput("task kind", input)
	}
}

// ParseDifficulty parses user input to a Difficulty.
// Unknown values are an error, never a silent default.
func ParseDifficulty(input string) (Difficulty, error) {
	d := Difficulty(strings.TrimSpace(strings.ToLower(input)))
	if !d.IsValid() {
		return "", ErrInvalidInput("difficulty", input)
	}
	return d, nil
}

// ParsePriority parses user input to a Priority.
func ParsePriority(input string) (Priority, error) {
	p := Priority(strings.TrimSpace(strings.ToLower(input)))
	if !p.IsValid() {
		return "", ErrInvalidInput("priority", input)
	}
	return p, nil
}
