package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

func newResetCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all progress (recoverable for 30 days)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			return a.withService(cmd, func(svc *engine.Service) error {
				if err := svc.ResetAllStats(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Everything was reset."),
					ui.Muted.Render("Run `lf recover` within 30 days to undo."))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

func newRecoverCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "Undo the last reset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				if err := svc.RecoverDeletedData(); err != nil {
					return err
				}
				p := svc.Snapshot().Player
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Recovered"),
					fmt.Sprintf("%s, level %d", p.Name, p.Level))
				return nil
			})
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write a compressed backup archive",
		Args:  exactArgs(1, "path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				hdr, err := svc.Export(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s exported %s (level %d) to %s\n",
					ui.IconScroll, hdr.Player, hdr.Level, args[0])
				return nil
			})
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace everything with a backup archive",
		Args:  exactArgs(1, "path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				hdr, err := svc.Import(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s imported %s (level %d), exported %s\n",
					ui.IconDone, hdr.Player, hdr.Level, hdr.ExportedAt.Local().Format(time.DateTime))
				return nil
			})
		},
	}
}
