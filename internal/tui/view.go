package tui

import (
	"fmt"
	"strings"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func (m dashModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.snapshot == nil {
		return "Lifequest — loading…\n"
	}

	return m.renderHeader() + "\n" + m.renderTabs() + "\n" + m.renderTasks() + m.renderFooter()
}

func (m dashModel) renderHeader() string {
	st := m.snapshot.State
	name := m.snapshot.Profile.DisplayName
	if name == "" {
		name = "Adventurer"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconSparkle, name))
	b.WriteString("  ")
	b.WriteString(ui.Key.Render(fmt.Sprintf("Lv %d", st.Level)))
	b.WriteString("\n")
	b.WriteString(ui.IconHeart + " " + ui.Bad.Render(ui.Bar(st.HP, st.MaxHP, 20)))
	b.WriteString("\n")
	if m.snapshot.Progress.Max > 0 {
		b.WriteString(ui.IconBolt + " " + ui.Good.Render(ui.Bar(m.snapshot.Progress.Current, m.snapshot.Progress.Max, 20)))
	} else {
		b.WriteString(ui.IconBolt + " " + ui.Gold.Render("MAX"))
	}
	b.WriteString("   " + ui.IconCoin + " " + ui.Gold.Render(fmt.Sprintf("%d", st.Coins)))
	if st.Streak > 0 {
		b.WriteString("   🔥 " + ui.Warn.Render(fmt.Sprintf("%d", st.Streak)))
	}
	return b.String()
}

func (m dashModel) renderTabs() string {
	var parts []string
	for i, kind := range tabKinds {
		label := string(kind) + "s"
		if i == m.tab {
			parts = append(parts, ui.SelectedRow.Render(" "+label+" "))
		} else {
			parts = append(parts, ui.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m dashModel) renderTasks() string {
	list := m.currentTasks()
	if len(list) == 0 {
		return ui.Muted.Render("  nothing here yet") + "\n"
	}

	var b strings.Builder
	for i, t := range list {
		row := fmt.Sprintf("%s %-3d %s  %s",
			ui.KindIcon(t.Kind), t.ID, taskLabel(t.Task),
			ui.Muted.Render(fmt.Sprintf("%d xp / %d c", t.DisplayXP, t.DisplayCoins)))
		if i == m.selected {
			row = ui.SelectedRow.Render("▸ " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m dashModel) renderFooter() string {
	help := "enter complete · - score down · tab switch · r refresh · q quit"
	if tabKinds[m.tab] != engine.TaskKindHabit {
		help = "enter complete · tab switch · r refresh · q quit"
	}
	return "\n" + ui.Muted.Render(help) + "\n" + m.lastLog + "\n"
}
