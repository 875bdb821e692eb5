package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progression and unlocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			name := snap.Profile.DisplayName
			if name == "" {
				name = "Adventurer"
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, name))
			fmt.Fprintln(out, ui.LabelValue("Level", snap.State.Level))
			if snap.Progress.Max > 0 {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%s (total %d)",
					ui.Bar(snap.Progress.Current, snap.Progress.Max, 24), snap.State.TotalXP)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%s (total %d)", ui.Gold.Render("MAX"), snap.State.TotalXP)))
			}
			fmt.Fprintln(out, ui.LabelValue("HP", ui.Bar(snap.State.HP, snap.State.MaxHP, 24)))
			fmt.Fprintln(out, ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, snap.State.Coins)))
			if snap.State.Streak > 0 {
				fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("🔥 %d", snap.State.Streak)))
			}
			fmt.Fprintln(out, ui.LabelValue("Completed", fmt.Sprintf("%d habits, %d dailies, %d todos",
				snap.State.HabitsDone, snap.State.DailiesDone, snap.State.TodosDone)))
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%s %d/%d",
				ui.IconTrophy, snap.AchievementsUnlocked, snap.AchievementsTotal)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🔓 Unlocks"))
			for _, e := range snap.Entitlements {
				if e.Locked {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(e.Key+":"), ui.Bad.Render("locked"), ui.Muted.Render("("+e.Reason+")"))
				} else {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(e.Key+":"), ui.Good.Render("unlocked"))
				}
			}
			return nil
		},
	}

	return cmd
}
