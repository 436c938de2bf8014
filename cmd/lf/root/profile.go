package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/ui"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Edit the player's name, avatar and banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			up := engine.PlayerUpdate{
				Name:   stringFlag(cmd, "name"),
				Avatar: stringFlag(cmd, "avatar"),
				Banner: stringFlag(cmd, "banner"),
			}
			return a.withService(cmd, func(svc *engine.Service) error {
				p, err := svc.UpdatePlayer(up)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.LabelValue("Name", p.Name))
				if p.Avatar != "" {
					fmt.Fprintln(out, ui.LabelValue("Avatar", p.Avatar))
				}
				if p.Banner != "" {
					fmt.Fprintln(out, ui.LabelValue("Banner", p.Banner))
				}
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().String("avatar", "", "Avatar image URI")
	cmd.Flags().String("banner", "", "Banner image URI")
	return cmd
}

func newImagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "Toggle quest images",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(svc *engine.Service) error {
				state := "hidden"
				if svc.ToggleQuestImages() {
					state = "shown"
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Quest images", state))
				return nil
			})
		},
	}
}
