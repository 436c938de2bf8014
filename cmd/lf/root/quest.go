package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

func newQuestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quest",
		Aliases: []string{"q"},
		Short:   "Manage quests",
	}
	cmd.AddCommand(
		newQuestAddCmd(a),
		newQuestListCmd(a),
		newQuestEditCmd(a),
		newQuestRmCmd(a),
		newQuestDoCmd(a),
		newQuestUndoCmd(a),
		newQuestUndoAllCmd(a),
		newQuestFindCmd(a),
	)
	return cmd
}

func addQuestFlags(cmd *cobra.Command) {
	cmd.Flags().String("details", "", "Details")
	cmd.Flags().String("emoji", "", "Emoji")
	cmd.Flags().String("image", "", "Image URI")
	cmd.Flags().StringP("diff", "d", string(game.DefaultDifficulty), "Difficulty (easy|normal|hard|extreme|impossible)")
	cmd.Flags().Int("xp", 0, "XP reward (default: priced from settings)")
	cmd.Flags().Int("gold", 0, "Gold reward (default: priced from settings)")
}

func difficultyFlag(cmd *cobra.Command) (*game.Difficulty, error) {
	raw := stringFlag(cmd, "diff")
	if raw == nil {
		return nil, nil
	}
	d, err := game.ParseDifficulty(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func printQuest(w io.Writer, q game.Quest) {
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		ui.QuestStatus(q.Completed), q.Emoji, q.Title,
		ui.Difficulty(q.Difficulty),
		ui.Muted.Render(fmt.Sprintf("+%d XP +%d gold [%s]", q.XPReward, q.GoldReward, q.ID)))
}

func newQuestAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args:  exactArgs(1, "title"),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := difficultyFlag(cmd)
			if err != nil {
				return err
			}
			in := engine.QuestInput{
				Title:      args[0],
				XPReward:   intFlag(cmd, "xp"),
				GoldReward: intFlag(cmd, "gold"),
			}
			in.Details, _ = cmd.Flags().GetString("details")
			in.Emoji, _ = cmd.Flags().GetString("emoji")
			in.Image, _ = cmd.Flags().GetString("image")
			if diff != nil {
				in.Difficulty = *diff
			}
			return a.withService(cmd, func(svc *engine.Service) error {
				q, err := svc.CreateQuest(in)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.IconPlus+" ")
				printQuest(cmd.OutOrStdout(), q)
				return nil
			})
		},
	}
	addQuestFlags(cmd)
	return cmd
}

func newQuestListCmd(a *app) *cobra.Command {
	var open, done bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				st := svc.Snapshot()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quests"))
				n := 0
				for _, q := range st.Quests {
					if (open && q.Completed) || (done && !q.Completed) {
						continue
					}
					printQuest(out, q)
					n++
				}
				if n == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none)"))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "Only open quests")
	cmd.Flags().BoolVar(&done, "done", false, "Only completed quests")
	return cmd
}

func newQuestEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <quest>",
		Short: "Edit a quest (a new difficulty reprices an open quest; --xp/--gold override)",
		Args:  exactArgs(1, "quest"),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := difficultyFlag(cmd)
			if err != nil {
				return err
			}
			up := engine.QuestUpdate{
				Title:      stringFlag(cmd, "title"),
				Details:    stringFlag(cmd, "details"),
				Emoji:      stringFlag(cmd, "emoji"),
				Image:      stringFlag(cmd, "image"),
				Difficulty: diff,
				XPReward:   intFlag(cmd, "xp"),
				GoldReward: intFlag(cmd, "gold"),
			}
			return a.withService(cmd, func(svc *engine.Service) error {
				q, err := svc.ResolveQuest(args[0])
				if err != nil {
					return err
				}
				q, err = svc.UpdateQuest(q.ID, up)
				if err != nil {
					return err
				}
				printQuest(cmd.OutOrStdout(), q)
				return nil
			})
		},
	}
	cmd.Flags().String("title", "", "New title")
	addQuestFlags(cmd)
	return cmd
}

func newQuestRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <quest>",
		Short: "Delete a quest by id or exact title",
		Args:  exactArgs(1, "quest"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				q, err := svc.LookupQuest(args[0])
				if err != nil {
					return err
				}
				if err := svc.DeleteQuest(q.ID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted "+q.Title))
				return nil
			})
		},
	}
}

func newQuestDoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "do <quest>",
		Short: "Complete a quest",
		Args:  exactArgs(1, "quest"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				q, err := svc.LookupQuest(args[0])
				if err != nil {
					return err
				}
				res, err := svc.CompleteQuest(q.ID)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s: %s %s\n", ui.IconDone, q.Title,
					ui.Good.Render(fmt.Sprintf("+%d XP", res.XPAwarded)),
					ui.Gold.Render(fmt.Sprintf("+%d gold", res.GoldAwarded)))
				if res.LevelUp {
					fmt.Fprintf(out, "%s level %d → %d, rank %s\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter, ui.Rank(res.Rank))
				}
				for _, name := range res.ClassesLeveled {
					fmt.Fprintf(out, "%s %s leveled up\n", ui.IconClass, name)
				}
				return nil
			})
		},
	}
}

func newQuestUndoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <quest>",
		Short: "Mark a completed quest as not done",
		Args:  exactArgs(1, "quest"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				q, err := svc.LookupQuest(args[0])
				if err != nil {
					return err
				}
				res, err := svc.UncompleteQuest(q.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: -%d XP, -%d gold (level %d → %d)\n",
					ui.IconUndo, q.Title, res.XPRemoved, res.GoldRemoved, res.LevelBefore, res.LevelAfter)
				return nil
			})
		},
	}
}

func newQuestUndoAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "undo-all",
		Short: "Mark every completed quest as not done",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				res, err := svc.UncompleteAllQuests()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d quest(s): -%d XP, -%d gold (level %d → %d)\n",
					ui.IconUndo, res.Count, res.XPRemoved, res.GoldRemoved, res.LevelBefore, res.LevelAfter)
				return nil
			})
		},
	}
}

func newQuestFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search quest titles",
		Args:  exactArgs(1, "query"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				found := svc.FindQuests(args[0])
				if len(found) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no match)"))
					return nil
				}
				for _, q := range found {
					printQuest(cmd.OutOrStdout(), q)
				}
				return nil
			})
		},
	}
}
