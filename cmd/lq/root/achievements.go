package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "List achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			views, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			for _, v := range views {
				if !v.Unlocked && !all {
					continue
				}
				name := ui.RarityStyle(string(v.Rarity)).Render(v.Title)
				line := fmt.Sprintf("%s %s %s", v.Icon, name, ui.Muted.Render(v.Description))
				if v.Unlocked {
					line += " " + ui.Good.Render(ui.IconDone)
					if v.UnlockedAt != nil {
						line += " " + ui.Muted.Render(v.UnlockedAt.Local().Format("2006-01-02"))
					}
				} else if v.MaxProgress > 0 {
					line += " " + ui.Muted.Render(fmt.Sprintf("(%d/%d)", v.Progress, v.MaxProgress))
				} else {
					line += " " + ui.Muted.Render(ui.IconLock)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked achievements")
	return cmd
}
