package root

import (
	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				return tui.RunBoard(svc, cmd.OutOrStdout())
			})
		},
	}
}
