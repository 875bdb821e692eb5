package root

import (
	"fmt"
	"io"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

// renderNotifications prints the structured events a store operation
// returned, one line each, styled by category.
func renderNotifications(w io.Writer, notes []engine.Notification) {
	for _, n := range notes {
		var line string
		switch n.Category {
		case engine.NotifyXP:
			line = ui.Good.Render(ui.IconBolt+" "+n.Detail) + " " + ui.Muted.Render(n.Title)
		case engine.NotifyCoins:
			line = ui.Gold.Render(ui.IconCoin+" "+n.Detail) + " " + ui.Muted.Render(n.Title)
		case engine.NotifyHP:
			style := ui.Good
			if n.Severity == engine.SeverityWarning {
				style = ui.Bad
			}
			line = style.Render(ui.IconHeart+" "+n.Detail) + " " + ui.Muted.Render(n.Title)
		case engine.NotifyLevelUp:
			line = ui.BadgeLevelUp + " " + ui.Gold.Render(n.Detail)
		case engine.NotifyAchievement:
			line = ui.Gold.Render(ui.IconTrophy+" "+n.Title) + " " + ui.Muted.Render(n.Detail)
		case engine.NotifyStreak:
			line = ui.Warn.Render("🔥 "+n.Detail) + " " + ui.Muted.Render(n.Title)
		default:
			line = n.Title + " " + ui.Muted.Render(n.Detail)
		}
		fmt.Fprintln(w, line)
	}
}
