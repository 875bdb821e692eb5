package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <habit|daily|todo> <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := engine.ParseTaskKind(args[0])
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return engine.ErrInvalidInput("id", args[1])
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			switch kind {
			case engine.TaskKindHabit:
				err = svc.DeleteHabit(ctx, id)
			case engine.TaskKindDaily:
				err = svc.DeleteDaily(ctx, id)
			case engine.TaskKindTodo:
				err = svc.DeleteTodo(ctx, id)
			}
			if err != nil {
				if engine.IsNotFound(err) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s no %s with id %d\n", ui.IconWarn, kind, id)
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s removed %s #%d\n", ui.IconDone, kind, id)
			return nil
		},
	}
	return cmd
}
