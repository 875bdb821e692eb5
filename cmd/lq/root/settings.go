package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "List gated settings and their lock state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			views, err := svc.Settings(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("⚙️", "Settings"))
			for _, v := range views {
				switch {
				case v.Locked:
					fmt.Fprintf(out, "  %s %s %s\n",
						ui.IconLock, v.Key, ui.Muted.Render("("+v.Reason+")"))
				case v.Enabled:
					fmt.Fprintf(out, "  %s %s %s\n",
						ui.IconCheck, v.Key, ui.Good.Render("on"))
				default:
					fmt.Fprintf(out, "  %s %s %s\n",
						ui.IconCheck, v.Key, ui.Muted.Render("off"))
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newSettingsToggleCmd("on", true))
	cmd.AddCommand(newSettingsToggleCmd("off", false))
	return cmd
}

func newSettingsToggleCmd(name string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <key>",
		Short: "Turn a setting " + name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			key := args[0]
			if err := svc.ToggleSetting(ctx, key, enabled); err != nil {
				if missing := engine.MissingRequirements(err); len(missing) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s is locked: %s\n",
						ui.IconLock, key, missing[0])
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", ui.IconCheck, key, name)
			return nil
		},
	}
}
