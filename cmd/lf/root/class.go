package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

func newClassCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "class",
		Aliases: []string{"c"},
		Short:   "Manage classes, subclasses and quest links",
	}
	cmd.AddCommand(
		newClassAddCmd(a),
		newClassSubCmd(a),
		newClassListCmd(a),
		newClassLinkCmd(a, true),
		newClassLinkCmd(a, false),
	)
	return cmd
}

func addClassFlags(cmd *cobra.Command) {
	cmd.Flags().String("emoji", "", "Emoji")
	cmd.Flags().String("image", "", "Image URI")
	cmd.Flags().String("desc", "", "Description")
}

func classInput(cmd *cobra.Command, name string) engine.ClassInput {
	in := engine.ClassInput{Name: name}
	in.Emoji, _ = cmd.Flags().GetString("emoji")
	in.ImageURI, _ = cmd.Flags().GetString("image")
	in.Description, _ = cmd.Flags().GetString("desc")
	return in
}

func classLine(c game.Class) string {
	return fmt.Sprintf("%s %s L%d %s %s", c.Emoji, c.Name, c.Level,
		ui.XPBar(c.XP, c.XPToNextLevel, 12, ""),
		ui.Muted.Render(fmt.Sprintf("%d/%d, %d link(s) [%s]", c.XP, c.XPToNextLevel, len(c.LinkedQuestIDs), c.ID)))
}

func newClassAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a class",
		Args:  exactArgs(1, "name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := classInput(cmd, args[0])
			return a.withService(cmd, func(svc *engine.Service) error {
				c, err := svc.CreateClass(in)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconPlus+" "+classLine(c))
				return nil
			})
		},
	}
	addClassFlags(cmd)
	return cmd
}

func newClassSubCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub <parent> <name>",
		Short: "Add a subclass under a class",
		Args:  exactArgs(2, "parent and name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := classInput(cmd, args[1])
			return a.withService(cmd, func(svc *engine.Service) error {
				parent, err := findClass(svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				c, err := svc.CreateSubclass(parent.ID, in)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconPlus+" "+parent.Name+" └ "+classLine(c))
				return nil
			})
		},
	}
	addClassFlags(cmd)
	return cmd
}

func newClassListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the class tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				out := cmd.OutOrStdout()
				tree, orphans := svc.ClassTree()
				fmt.Fprintln(out, ui.Heading(ui.IconClass, "Classes"))
				if len(tree) == 0 && len(orphans) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none)"))
				}
				for _, node := range tree {
					fmt.Fprintln(out, classLine(node.Class))
					for _, sub := range node.Subclasses {
						fmt.Fprintln(out, "  └ "+classLine(sub))
					}
				}
				if len(orphans) > 0 {
					fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" subclasses without a parent:"))
					for _, o := range orphans {
						fmt.Fprintln(out, "  "+classLine(o))
					}
				}
				return nil
			})
		},
	}
}

func newClassLinkCmd(a *app, link bool) *cobra.Command {
	use, short := "link <class> <quest>", "Feed a quest's XP to a class"
	if !link {
		use, short = "unlink <class> <quest>", "Stop feeding a quest's XP to a class"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArgs(2, "class and quest"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				c, err := findClass(svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				q, err := svc.ResolveQuest(args[1])
				if err != nil {
					return err
				}
				if link {
					if c.LinksQuest(q.ID) {
						fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" already linked; the quest will count twice"))
					}
					err = svc.LinkQuestToClass(c.ID, q.ID)
				} else {
					err = svc.UnlinkQuestFromClass(c.ID, q.ID)
				}
				if err != nil {
					return err
				}
				verb := "Linked"
				if !link {
					verb = "Unlinked"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %q ↔ %q\n", verb, c.Name, q.Title)
				return nil
			})
		},
	}
}
