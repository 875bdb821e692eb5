package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ReminderScheduler fires a notification shortly before a task's due time.
// Fire-and-forget: a reminder never mutates game state. Editing or deleting
// a task bumps its generation so an already-armed timer goes stale and is
// suppressed instead of firing with an outdated title.
type ReminderScheduler struct {
	mu     sync.Mutex
	lead   time.Duration
	notify func(Notification)
	logger *slog.Logger

	timers map[int64]*time.Timer
	gens   map[int64]uint64
}

func NewReminderScheduler(lead time.Duration, notify func(Notification), logger *slog.Logger) *ReminderScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderScheduler{
		lead:   lead,
		notify: notify,
		logger: logger,
		timers: map[int64]*time.Timer{},
		gens:   map[int64]uint64{},
	}
}

// Schedule arms a reminder for the task, replacing any pending one. Due
// times already inside the lead window fire immediately; past due times are
// ignored.
func (r *ReminderScheduler) Schedule(taskID int64, title string, due time.Time) {
	now := time.Now()
	if due.Before(now) {
		return
	}
	delay := due.Sub(now) - r.lead
	if delay < 0 {
		delay = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.timers[taskID]; ok {
		t.Stop()
	}
	r.gens[taskID]++
	gen := r.gens[taskID]

	r.timers[taskID] = time.AfterFunc(delay, func() {
		r.fire(taskID, gen, title, due)
	})
}

func (r *ReminderScheduler) fire(taskID int64, gen uint64, title string, due time.Time) {
	r.mu.Lock()
	current := r.gens[taskID] == gen
	if current {
		delete(r.timers, taskID)
	}
	r.mu.Unlock()

	if !current {
		// The task was edited or deleted after this timer was armed.
		return
	}

	r.logger.Debug("reminder fired", slog.Int64("task_id", taskID))
	r.notify(Notification{
		Category: NotifyReminder,
		Severity: SeverityInfo,
		Title:    title,
		Detail:   fmt.Sprintf("due at %s", due.Local().Format("15:04")),
	})
}

// Cancel drops any pending reminder for the task.
func (r *ReminderScheduler) Cancel(taskID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gens[taskID]++
	if t, ok := r.timers[taskID]; ok {
		t.Stop()
		delete(r.timers, taskID)
	}
}

// Stop cancels every pending reminder.
func (r *ReminderScheduler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
		r.gens[id]++
	}
}
