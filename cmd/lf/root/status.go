package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show player level, rank, gold and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				st := svc.Snapshot()
				p := st.Player
				s := st.SandboxSettings
				out := cmd.OutOrStdout()

				done := 0
				for _, q := range st.Quests {
					if q.Completed {
						done++
					}
				}
				owned := 0
				for _, r := range st.Rewards {
					if r.Purchased {
						owned++
					}
				}

				fmt.Fprintln(out, ui.Heading(ui.IconSparkle, p.Name))
				fmt.Fprintln(out, ui.LabelValue("Rank", ui.Rank(st.Rank())))
				fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%d %s", p.XP, s.ExpPerLevel, ui.XPBar(p.XP, s.ExpPerLevel, 24, s.ProgressBarColor))))
				fmt.Fprintln(out, ui.LabelValue("Gold", ui.Gold.Render(fmt.Sprint(p.Gold))))
				fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFire, p.DailyStreak)))
				fmt.Fprintln(out, ui.LabelValue("Total XP", p.TotalXPEarned))
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.LabelValue("Quests", fmt.Sprintf("%d done / %d", done, len(st.Quests))))
				fmt.Fprintln(out, ui.LabelValue("Rewards", fmt.Sprintf("%d owned / %d", owned, len(st.Rewards))))
				fmt.Fprintln(out, ui.LabelValue("Classes", fmt.Sprintf("%d (+%d subclasses)", len(st.Classes), len(st.Subclasses))))
				fmt.Fprintln(out, ui.LabelValue("Max level", fmt.Sprintf("%d %s", svc.MaxReachableLevel(), ui.Muted.Render("(all quest XP combined)"))))
				return nil
			})
		},
	}
}
