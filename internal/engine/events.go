package engine

// EventKind names the semantic events the progression store feeds into the
// achievement engine.
type EventKind string

const (
	// EventTaskCompleted fires on every habit/daily/todo completion.
	EventTaskCompleted EventKind = "task-completed"
	// EventFirstTaskOfKind fires on the very first completion of a kind.
	EventFirstTaskOfKind EventKind = "first-task-of-kind"
	// EventLevelCrossed fires once per mutation that strictly raises the
	// level, carrying only the final level even when several are skipped.
	EventLevelCrossed EventKind = "level-crossed"
	// EventItemPurchased fires when a shop purchase succeeds.
	EventItemPurchased EventKind = "item-purchased"
	// EventHabitCreated fires when a new habit is added.
	EventHabitCreated EventKind = "habit-created"
)

// Event is a semantic game event. Only the fields relevant to the kind are
// populated.
type Event struct {
	Kind       EventKind
	TaskKind   TaskKind
	Difficulty Difficulty
	NewLevel   int
	ItemID     string
}

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// Notification categories, used by the presentation layer for styling.
const (
	NotifyXP          = "xp"
	NotifyCoins       = "coins"
	NotifyHP          = "hp"
	NotifyLevelUp     = "level-up"
	NotifyAchievement = "achievement"
	NotifyStreak      = "streak"
	NotifyReminder    = "reminder"
)

// Notification is a structured state-change description for the UI to
// render. The engine never formats display strings beyond these fields.
type Notification struct {
	Category string
	Severity Severity
	Title    string
	Detail   string
}
