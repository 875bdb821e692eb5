package engine

import (
	"testing"
	"time"
)

func TestReminderFires(t *testing.T) {
	fired := make(chan Notification, 1)
	sched := NewReminderScheduler(time.Hour, func(n Notification) { fired <- n }, nil)
	defer sched.Stop()

	// Due inside the lead window: fires immediately.
	sched.Schedule(1, "Submit report", time.Now().Add(time.Minute))

	select {
	case n := <-fired:
		if n.Category != NotifyReminder {
			t.Fatalf("category=%q, want %q", n.Category, NotifyReminder)
		}
		if n.Title != "Submit report" {
			t.Fatalf("title=%q, want the task title", n.Title)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("reminder never fired")
	}
}

func TestReminderCancel(t *testing.T) {
	fired := make(chan Notification, 1)
	sched := NewReminderScheduler(10*time.Millisecond, func(n Notification) { fired <- n }, nil)
	defer sched.Stop()

	sched.Schedule(7, "Old title", time.Now().Add(time.Hour))
	sched.Cancel(7)

	select {
	case n := <-fired:
		t.Fatalf("cancelled reminder fired: %+v", n)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestReminderRescheduleSupersedes(t *testing.T) {
	fired := make(chan Notification, 2)
	sched := NewReminderScheduler(10*time.Millisecond, func(n Notification) { fired <- n }, nil)
	defer sched.Stop()

	// The first timer sits far out; the reschedule replaces it with a near one.
	sched.Schedule(3, "Old title", time.Now().Add(time.Hour))
	sched.Schedule(3, "New title", time.Now().Add(50*time.Millisecond))

	select {
	case n := <-fired:
		if n.Title != "New title" {
			t.Fatalf("stale reminder fired with title %q", n.Title)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("rescheduled reminder never fired")
	}

	select {
	case n := <-fired:
		t.Fatalf("superseded reminder also fired: %+v", n)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestReminderIgnoresPastDue(t *testing.T) {
	fired := make(chan Notification, 1)
	sched := NewReminderScheduler(time.Hour, func(n Notification) { fired <- n }, nil)
	defer sched.Stop()

	sched.Schedule(9, "Yesterday", time.Now().Add(-time.Hour))

	select {
	case n := <-fired:
		t.Fatalf("past-due reminder fired: %+v", n)
	case <-time.After(200 * time.Millisecond):
	}
}
