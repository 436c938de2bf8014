package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

func newTipCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Manage pro tips",
	}
	cmd.AddCommand(newTipAddCmd(a), newTipListCmd(a), newTipEditCmd(a), newTipRmCmd(a))
	return cmd
}

func addTipFlags(cmd *cobra.Command) {
	cmd.Flags().String("content", "", "Body text")
	cmd.Flags().String("type", string(game.TipNote), "note|video|article")
	cmd.Flags().String("url", "", "Link for video and article tips")
	cmd.Flags().String("emoji", "", "Emoji")
}

func tipLine(t game.ProTip) string {
	s := fmt.Sprintf("%s %s %s", t.Emoji, t.Title, ui.Muted.Render("("+string(t.Type)+") ["+t.ID+"]"))
	if t.Content != "" {
		s += "\n    " + t.Content
	}
	if t.URL != "" {
		s += "\n    " + ui.H2.Render(t.URL)
	}
	return s
}

func newTipAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a tip",
		Args:  exactArgs(1, "title"),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := engine.TipInput{Title: args[0]}
			in.Content, _ = cmd.Flags().GetString("content")
			typ, _ := cmd.Flags().GetString("type")
			in.Type = game.TipType(typ)
			in.URL, _ = cmd.Flags().GetString("url")
			in.Emoji, _ = cmd.Flags().GetString("emoji")
			return a.withService(cmd, func(svc *engine.Service) error {
				t, err := svc.CreateTip(in)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconPlus+" "+tipLine(t))
				return nil
			})
		},
	}
	addTipFlags(cmd)
	return cmd
}

func newTipListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tips",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				out := cmd.OutOrStdout()
				tips := svc.Snapshot().ProTips
				fmt.Fprintln(out, ui.Heading(ui.IconTip, "Tips"))
				if len(tips) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none)"))
				}
				for _, t := range tips {
					fmt.Fprintln(out, tipLine(t))
				}
				return nil
			})
		},
	}
}

func newTipEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <tip>",
		Short: "Edit a tip",
		Args:  exactArgs(1, "tip"),
		RunE: func(cmd *cobra.Command, args []string) error {
			up := engine.TipUpdate{
				Title:   stringFlag(cmd, "title"),
				Content: stringFlag(cmd, "content"),
				URL:     stringFlag(cmd, "url"),
				Emoji:   stringFlag(cmd, "emoji"),
			}
			if raw := stringFlag(cmd, "type"); raw != nil {
				typ := game.TipType(*raw)
				up.Type = &typ
			}
			return a.withService(cmd, func(svc *engine.Service) error {
				t, err := findTip(svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				t, err = svc.UpdateTip(t.ID, up)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), tipLine(t))
				return nil
			})
		},
	}
	cmd.Flags().String("title", "", "New title")
	addTipFlags(cmd)
	return cmd
}

func newTipRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <tip>",
		Short: "Delete a tip",
		Args:  exactArgs(1, "tip"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				t, err := findTip(svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				if err := svc.DeleteTip(t.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted "+t.Title))
				return nil
			})
		},
	}
}
