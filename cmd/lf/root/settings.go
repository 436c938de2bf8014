package root

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or tune the sandbox settings",
	}
	cmd.AddCommand(newSettingsShowCmd(a), newSettingsSetCmd(a), newSettingsRankCmd(a), newSettingsLoadCmd(a))
	return cmd
}

func printSettings(w io.Writer, s game.SandboxSettings) {
	fmt.Fprintln(w, ui.Heading(ui.IconBolt, "Sandbox"))
	fmt.Fprintln(w, ui.LabelValue("XP per level", s.ExpPerLevel))
	fmt.Fprintln(w, ui.LabelValue("Base XP per quest", s.ExpPerQuest))
	fmt.Fprintln(w, ui.LabelValue("Base gold per quest", s.GoldPerQuest))
	fmt.Fprintln(w, ui.LabelValue("Theme colour", s.ThemeColor))
	fmt.Fprintln(w, ui.LabelValue("Progress bar colour", s.ProgressBarColor))
	fmt.Fprintln(w, ui.LabelValue("Rank photos", s.ShowRankPhotos))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, ui.H2.Render("Multipliers"))
	for _, d := range game.Difficulties() {
		m := s.DifficultyMultipliers[d]
		xp, gold := game.QuestRewards(s, d)
		fmt.Fprintf(w, "- %s xp×%g gold×%g %s\n", ui.Difficulty(d), m.XP, m.Gold,
			ui.Muted.Render(fmt.Sprintf("(quest: +%d XP +%d gold)", xp, gold)))
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, ui.H2.Render("Ranks"))
	for i, r := range s.CustomRanks {
		fmt.Fprintf(w, "%3d  L%-3d %s\n", i, r.Level, ui.Rank(r))
	}
}

func newSettingsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				printSettings(cmd.OutOrStdout(), svc.Snapshot().SandboxSettings)
				return nil
			})
		},
	}
}

// parseMultiplier reads "hard=4:3" as Hard with XP 4 and gold 3.
func parseMultiplier(s string) (game.Difficulty, game.Multiplier, error) {
	name, vals, ok := strings.Cut(s, "=")
	if !ok {
		return "", game.Multiplier{}, fmt.Errorf("multiplier %q: want difficulty=xp:gold", s)
	}
	d, err := game.ParseDifficulty(name)
	if err != nil {
		return "", game.Multiplier{}, err
	}
	xs, gs, ok := strings.Cut(vals, ":")
	if !ok {
		return "", game.Multiplier{}, fmt.Errorf("multiplier %q: want difficulty=xp:gold", s)
	}
	xp, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return "", game.Multiplier{}, fmt.Errorf("multiplier %q: %w", s, err)
	}
	gold, err := strconv.ParseFloat(strings.TrimSpace(gs), 64)
	if err != nil {
		return "", game.Multiplier{}, fmt.Errorf("multiplier %q: %w", s, err)
	}
	return d, game.Multiplier{XP: xp, Gold: gold}, nil
}

func newSettingsSetCmd(a *app) *cobra.Command {
	var mults []string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings (existing quests keep their rewards)",
		RunE: func(cmd *cobra.Command, args []string) error {
			up := game.SettingsUpdate{
				ExpPerLevel:      intFlag(cmd, "exp-per-level"),
				ExpPerQuest:      intFlag(cmd, "exp-per-quest"),
				GoldPerQuest:     intFlag(cmd, "gold-per-quest"),
				ThemeColor:       stringFlag(cmd, "theme"),
				ProgressBarColor: stringFlag(cmd, "bar-color"),
				ShowRankPhotos:   boolFlag(cmd, "rank-photos"),
			}
			for _, raw := range mults {
				d, m, err := parseMultiplier(raw)
				if err != nil {
					return err
				}
				if up.DifficultyMultipliers == nil {
					up.DifficultyMultipliers = map[game.Difficulty]game.Multiplier{}
				}
				up.DifficultyMultipliers[d] = m
			}
			return a.withService(cmd, func(svc *engine.Service) error {
				s, err := svc.UpdateSandboxSettings(up)
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
	cmd.Flags().Int("exp-per-level", game.DefaultExpPerLevel, "XP needed for each level")
	cmd.Flags().Int("exp-per-quest", game.DefaultExpPerQuest, "Base XP per quest")
	cmd.Flags().Int("gold-per-quest", game.DefaultGoldPerQuest, "Base gold per quest")
	cmd.Flags().String("theme", game.DefaultThemeColor, "Theme colour")
	cmd.Flags().String("bar-color", game.DefaultThemeColor, "Progress bar colour")
	cmd.Flags().Bool("rank-photos", false, "Show rank photos")
	cmd.Flags().StringArrayVar(&mults, "mult", nil, "Difficulty multiplier, e.g. hard=4:4 (repeatable)")
	return cmd
}

func newSettingsRankCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <index>",
		Short: "Edit one entry of the rank table",
		Args:  exactArgs(1, "index"),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q: must be an integer", args[0])
			}
			up := game.RankUpdate{
				Name:  stringFlag(cmd, "name"),
				Level: intFlag(cmd, "level"),
				Color: stringFlag(cmd, "color"),
				Image: stringFlag(cmd, "image"),
			}
			return a.withService(cmd, func(svc *engine.Service) error {
				if err := svc.UpdateRank(i, up); err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), svc.Snapshot().SandboxSettings)
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "Rank name")
	cmd.Flags().Int("level", 0, "Level threshold")
	cmd.Flags().String("color", "", "Colour")
	cmd.Flags().String("image", "", "Image URI")
	return cmd
}

func newSettingsLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <preset.yaml>",
		Short: "Apply a YAML settings preset",
		Args:  exactArgs(1, "preset path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				s, err := svc.ApplyPreset(args[0])
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
}
