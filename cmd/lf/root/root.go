package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

const Version = "0.1.0"

// app carries the flags shared by every command.
type app struct {
	dbPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "lf",
		Short:         "Levelife: level up your life from the terminal",
		Long:          "Levelife turns quests into XP, gold, ranks and class levels. State lives in a local SQLite file.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database path (default $LEVELIFE_DB_PATH or ~/.levelife.db)")

	cmd.AddCommand(
		newStatusCmd(a),
		newQuestCmd(a),
		newRewardCmd(a),
		newClassCmd(a),
		newTipCmd(a),
		newSettingsCmd(a),
		newProfileCmd(a),
		newImagesCmd(a),
		newResetCmd(a),
		newRecoverCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newBoardCmd(a),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
