package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit profile customization",
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
			p := snap.Profile
			fmt.Fprintln(out, ui.Heading("👤", "Profile"))
			fmt.Fprintln(out, ui.LabelValue("Name", orDefault(p.DisplayName)))
			fmt.Fprintln(out, ui.LabelValue("Avatar", orDefault(p.Avatar)))
			fmt.Fprintln(out, ui.LabelValue("Frame", orDefault(p.Frame)))
			fmt.Fprintln(out, ui.LabelValue("Name color", orDefault(p.NameColor)))
			fmt.Fprintln(out, ui.LabelValue("Background", orDefault(p.Background)))
			return nil
		},
	}

	cmd.AddCommand(newProfileSetCmd())
	return cmd
}

func newProfileSetCmd() *cobra.Command {
	var name, avatar, frame, color, background string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the profile (cosmetics must be owned shop items)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			err = svc.UpdateProfile(ctx, engine.ProfileInput{
				DisplayName: name,
				Avatar:      avatar,
				Frame:       frame,
				NameColor:   color,
				Background:  background,
			})
			if err != nil {
				if missing := engine.MissingRequirements(err); len(missing) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconLock+" Profile rejected:"))
					for _, m := range missing {
						fmt.Fprintln(cmd.OutOrStdout(), "  - "+m)
					}
					return nil
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Profile updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar item id")
	cmd.Flags().StringVar(&frame, "frame", "", "Frame item id")
	cmd.Flags().StringVar(&color, "color", "", "Name color item id")
	cmd.Flags().StringVar(&background, "background", "", "Background item id")
	return cmd
}

func orDefault(s string) string {
	if s == "" {
		return ui.Muted.Render("(default)")
	}
	return s
}
