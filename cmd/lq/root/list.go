package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [habits|dailies|todos]",
		Short: "List tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			kinds := []engine.TaskKind{engine.TaskKindHabit, engine.TaskKindDaily, engine.TaskKindTodo}
			if len(args) == 1 {
				kind, err := engine.ParseTaskKind(args[0])
				if err != nil {
					return err
				}
				kinds = []engine.TaskKind{kind}
			}

			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				tasks, err := svc.ListTasks(ctx, kind)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.H2.Render(ui.KindIcon(string(kind))+" "+string(kind)+"s"))
				if len(tasks) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("  (none)"))
					continue
				}
				for _, t := range tasks {
					line := fmt.Sprintf("  %-3d %s %s", t.ID, t.Title,
						ui.Muted.Render(fmt.Sprintf("[%s, %d xp / %d coins]", t.Difficulty, t.DisplayXP, t.DisplayCoins)))
					if t.Completed {
						line += " " + ui.Good.Render(ui.IconDone)
					}
					if t.Kind == "habit" && t.Streak > 0 {
						line += " " + ui.Warn.Render(fmt.Sprintf("🔥%d", t.Streak))
					}
					if t.DueAt != nil {
						due := "due " + t.DueAt.Local().Format("Jan 2 15:04")
						if t.Overdue {
							line += " " + ui.Bad.Render(due)
						} else {
							line += " " + ui.Muted.Render(due)
						}
					}
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	return cmd
}
