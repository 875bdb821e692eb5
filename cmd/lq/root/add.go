package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a habit, daily or to-do",
	}
	cmd.AddCommand(newAddHabitCmd(), newAddDailyCmd(), newAddTodoCmd())
	return cmd
}

func titleArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("title is required")
	}
	return args[0], nil
}

func newAddHabitCmd() *cobra.Command {
	var diff string
	var notes string
	var negative bool

	cmd := &cobra.Command{
		Use:   "habit <title>",
		Short: "Add a repeatable habit",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := titleArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			difficulty, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.AddHabit(ctx, engine.AddHabitInput{
				Title:      args[0],
				Notes:      notes,
				Difficulty: difficulty,
				Positive:   !negative,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n",
				ui.Good.Render(ui.IconLoop+" Habit added"), res.TaskID,
				ui.Muted.Render(fmt.Sprintf("(%d xp / %d coins per completion)", res.Reward.XP, res.Reward.Coins)))
			renderNotifications(cmd.OutOrStdout(), res.Notifications)
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|medium|hard)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	cmd.Flags().BoolVar(&negative, "negative", false, "Negative habit (scores HP down)")
	return cmd
}

func newAddDailyCmd() *cobra.Command {
	var diff string
	var notes string
	var due string

	cmd := &cobra.Command{
		Use:   "daily <title>",
		Short: "Add a recurring daily",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := titleArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			difficulty, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			dueAt, err := parseDue(due)
			if err != nil {
				return err
			}
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.AddDaily(ctx, engine.AddDailyInput{
				Title:      args[0],
				Notes:      notes,
				Difficulty: difficulty,
				DueTime:    dueAt,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n",
				ui.Good.Render(ui.IconCalendar+" Daily added"), res.TaskID,
				ui.Muted.Render(fmt.Sprintf("(%d xp / %d coins per completion)", res.Reward.XP, res.Reward.Coins)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|medium|hard)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	cmd.Flags().StringVar(&due, "due", "", "Due time (RFC 3339 or YYYY-MM-DD)")
	return cmd
}

func newAddTodoCmd() *cobra.Command {
	var diff string
	var prio string
	var notes string
	var due string

	cmd := &cobra.Command{
		Use:   "todo <title>",
		Short: "Add a one-off to-do",
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := titleArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			difficulty, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			priority, err := engine.ParsePriority(prio)
			if err != nil {
				return err
			}
			dueAt, err := parseDue(due)
			if err != nil {
				return err
			}
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.AddTodo(ctx, engine.AddTodoInput{
				Title:      args[0],
				Notes:      notes,
				Difficulty: difficulty,
				Priority:   priority,
				DueDate:    dueAt,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n",
				ui.Good.Render(ui.IconCheck+" To-do added"), res.TaskID,
				ui.Muted.Render(fmt.Sprintf("(%d xp / %d coins on completion)", res.Reward.XP, res.Reward.Coins)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|medium|hard)")
	cmd.Flags().StringVarP(&prio, "priority", "p", "low", "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	cmd.Flags().StringVar(&due, "due", "", "Due date (RFC 3339 or YYYY-MM-DD)")
	return cmd
}

func parseDue(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid due value %q (want RFC 3339 or YYYY-MM-DD)", s)
	}
	return &t, nil
}
