package root

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
)

func newDoCmd() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "do <habit|daily|todo> <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("kind and id are required")
			}
			if _, err := engine.ParseTaskKind(args[0]); err != nil {
				return err
			}
			if _, err := strconv.ParseInt(args[1], 10, 64); err != nil {
				return errors.New("id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			kind, _ := engine.ParseTaskKind(args[0])
			id, _ := strconv.ParseInt(args[1], 10, 64)

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var res *engine.CompleteResult
			switch kind {
			case engine.TaskKindHabit:
				res, err = svc.CompleteHabit(ctx, id, !down)
			case engine.TaskKindDaily:
				res, err = svc.CompleteDaily(ctx, id)
			case engine.TaskKindTodo:
				res, err = svc.CompleteTodo(ctx, id)
			}
			if err != nil {
				return err
			}

			renderNotifications(cmd.OutOrStdout(), res.Notifications)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Score a habit negatively")
	return cmd
}
