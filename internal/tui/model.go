package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifequest/internal/engine"
	"lifequest/internal/storage"
)

var tabKinds = []engine.TaskKind{engine.TaskKindHabit, engine.TaskKindDaily, engine.TaskKindTodo}

type dashModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snapshot *engine.Snapshot
	tasks    map[engine.TaskKind][]engine.TaskView

	tab      int
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snapshot *engine.Snapshot
	tasks    map[engine.TaskKind][]engine.TaskView
	err      error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

func newDashModel(ctx context.Context, svc *engine.Service) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		tasks:   map[engine.TaskKind][]engine.TaskView{},
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.Snapshot(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks := map[engine.TaskKind][]engine.TaskView{}
		for _, kind := range tabKinds {
			list, err := m.svc.ListTasks(m.ctx, kind)
			if err != nil {
				return loadedMsg{err: err}
			}
			tasks[kind] = list
		}
		return loadedMsg{snapshot: snap, tasks: tasks}
	}
}

func (m dashModel) completeCmd(kind engine.TaskKind, id int64, positive bool) tea.Cmd {
	return func() tea.Msg {
		var res *engine.CompleteResult
		var err error
		switch kind {
		case engine.TaskKindHabit:
			res, err = m.svc.CompleteHabit(m.ctx, id, positive)
		case engine.TaskKindDaily:
			res, err = m.svc.CompleteDaily(m.ctx, id)
		default:
			res, err = m.svc.CompleteTodo(m.ctx, id)
		}
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.tasks = msg.tasks
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = describeResult(msg.res)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab", "l", "right":
			m.tab = (m.tab + 1) % len(tabKinds)
			m.selected = 0
			return m, nil
		case "shift+tab", "h", "left":
			m.tab = (m.tab + len(tabKinds) - 1) % len(tabKinds)
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.currentTasks())-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ", "c", "+":
			t, ok := m.selectedTask()
			if !ok {
				return m, nil
			}
			if t.Completed {
				m.lastLog = "Already completed."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %d…", t.ID)
			return m, m.completeCmd(tabKinds[m.tab], t.ID, true)
		case "-":
			if tabKinds[m.tab] != engine.TaskKindHabit {
				return m, nil
			}
			t, ok := m.selectedTask()
			if !ok {
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Scoring %d down…", t.ID)
			return m, m.completeCmd(engine.TaskKindHabit, t.ID, false)
		}
	}
	return m, nil
}

func (m dashModel) currentTasks() []engine.TaskView {
	return m.tasks[tabKinds[m.tab]]
}

func (m dashModel) selectedTask() (engine.TaskView, bool) {
	list := m.currentTasks()
	if m.selected < 0 || m.selected >= len(list) {
		return engine.TaskView{}, false
	}
	return list[m.selected], true
}

func describeResult(res *engine.CompleteResult) string {
	parts := []string{fmt.Sprintf("Completed %d", res.TaskID)}
	if res.Reward.XP > 0 {
		parts = append(parts, fmt.Sprintf("+%d XP", res.Reward.XP))
	}
	if res.Reward.Coins > 0 {
		parts = append(parts, fmt.Sprintf("+%d coins", res.Reward.Coins))
	}
	if res.HPDelta != 0 {
		parts = append(parts, fmt.Sprintf("%+d HP", res.HPDelta))
	}
	if res.LevelUp {
		parts = append(parts, fmt.Sprintf("level %d → %d", res.LevelBefore, res.LevelAfter))
	}
	for _, a := range res.Unlocked {
		parts = append(parts, "unlocked "+a.Title)
	}
	return strings.Join(parts, ", ")
}

func taskLabel(t storage.Task) string {
	label := t.Title
	if t.Completed {
		label += " (done)"
	}
	if t.Kind == "habit" && t.Streak > 0 {
		label += fmt.Sprintf(" ×%d", t.Streak)
	}
	return label
}
