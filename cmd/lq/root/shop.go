package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lifequest/internal/engine"
	"lifequest/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy cosmetics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := svc.ShopItems(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			for _, v := range items {
				name := ui.RarityStyle(string(v.Rarity)).Render(v.Name)
				line := fmt.Sprintf("%-16s %s %s", ui.Muted.Render(v.ID), name,
					ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconCoin, v.Price)))
				switch {
				case v.Owned:
					line += " " + ui.Good.Render("owned")
				case !v.XPMet || !v.AchMet:
					line += " " + ui.Bad.Render(ui.IconLock)
					if !v.XPMet {
						line += " " + ui.Muted.Render(fmt.Sprintf("needs %d XP", v.XPRequirement))
					}
					if !v.AchMet {
						line += " " + ui.Muted.Render(fmt.Sprintf("needs %q", v.RequiredAchievement))
					}
				case !v.Affordable:
					line += " " + ui.Warn.Render("can't afford")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.AddCommand(newShopBuyCmd())
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item_id>",
		Short: "Buy a shop item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.BuyShopItem(ctx, args[0])
			if err != nil {
				if missing := engine.MissingRequirements(err); len(missing) > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconLock+" Cannot buy yet:"))
					for _, m := range missing {
						fmt.Fprintln(cmd.OutOrStdout(), "  - "+m)
					}
					return nil
				}
				return err
			}
			if res.AlreadyOwned {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Muted.Render("Already owned:"), res.Item.Name)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconShop+" Bought"), res.Item.Name,
				ui.Muted.Render(fmt.Sprintf("(%d coins left)", res.CoinsRemaining)))
			renderNotifications(cmd.OutOrStdout(), res.Notifications)
			return nil
		},
	}

	return cmd
}
