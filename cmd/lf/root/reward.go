package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

func newRewardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reward",
		Aliases: []string{"r"},
		Short:   "Manage the reward shop",
	}
	cmd.AddCommand(
		newRewardAddCmd(a),
		newRewardListCmd(a),
		newRewardEditCmd(a),
		newRewardRmCmd(a),
		newRewardBuyCmd(a),
		newRewardReturnCmd(a),
	)
	return cmd
}

func addRewardFlags(cmd *cobra.Command) {
	cmd.Flags().String("desc", "", "Description")
	cmd.Flags().String("emoji", "", "Emoji")
	cmd.Flags().String("image", "", "Image URI")
	cmd.Flags().Int("cost", 0, "Gold cost")
}

func printReward(w io.Writer, r game.Reward) {
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		ui.RewardStatus(r.Purchased), r.Emoji, r.Title,
		ui.Gold.Render(fmt.Sprintf("%d gold", r.GoldCost)),
		ui.Muted.Render("["+r.ID+"]"))
}

func newRewardAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reward",
		Args:  exactArgs(1, "title"),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := engine.RewardInput{Title: args[0]}
			in.Description, _ = cmd.Flags().GetString("desc")
			in.Emoji, _ = cmd.Flags().GetString("emoji")
			in.Image, _ = cmd.Flags().GetString("image")
			in.GoldCost, _ = cmd.Flags().GetInt("cost")
			return a.withService(cmd, func(svc *engine.Service) error {
				r, err := svc.CreateReward(in)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.IconPlus+" ")
				printReward(cmd.OutOrStdout(), r)
				return nil
			})
		},
	}
	addRewardFlags(cmd)
	return cmd
}

func newRewardListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				st := svc.Snapshot()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconGift, "Rewards"), ui.Muted.Render(fmt.Sprintf("(you have %d gold)", st.Player.Gold)))
				if len(st.Rewards) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none)"))
				}
				for _, r := range st.Rewards {
					printReward(out, r)
				}
				return nil
			})
		},
	}
}

func newRewardEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <reward>",
		Short: "Edit a reward",
		Args:  exactArgs(1, "reward"),
		RunE: func(cmd *cobra.Command, args []string) error {
			up := engine.RewardUpdate{
				Title:       stringFlag(cmd, "title"),
				Description: stringFlag(cmd, "desc"),
				Emoji:       stringFlag(cmd, "emoji"),
				Image:       stringFlag(cmd, "image"),
				GoldCost:    intFlag(cmd, "cost"),
			}
			return a.withService(cmd, func(svc *engine.Service) error {
				r, err := findReward(svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				r, err = svc.UpdateReward(r.ID, up)
				if err != nil {
					return err
				}
				printReward(cmd.OutOrStdout(), r)
				return nil
			})
		},
	}
	cmd.Flags().String("title", "", "New title")
	addRewardFlags(cmd)
	return cmd
}

func newRewardRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <reward>",
		Short: "Delete a reward (no refund)",
		Args:  exactArgs(1, "reward"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				r, err := findReward(svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				if err := svc.DeleteReward(r.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted "+r.Title))
				return nil
			})
		},
	}
}

func newRewardBuyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <reward>",
		Short: "Spend gold on a reward",
		Args:  exactArgs(1, "reward"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				r, err := findReward(svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				res, err := svc.PurchaseReward(r.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s (now %d)\n", ui.IconGift, r.Title,
					ui.Gold.Render(fmt.Sprintf("-%d gold", res.Cost)), res.Gold)
				return nil
			})
		},
	}
}

func newRewardReturnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "return <reward>",
		Short: "Return a purchased reward for a full refund",
		Args:  exactArgs(1, "reward"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				r, err := findReward(svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				res, err := svc.UnpurchaseReward(r.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s (now %d)\n", ui.IconUndo, r.Title,
					ui.Gold.Render(fmt.Sprintf("+%d gold", res.Cost)), res.Gold)
				return nil
			})
		},
	}
}
