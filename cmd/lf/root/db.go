package root

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/levelifeofficial/levelife-922003/internal/config"
	"github.com/levelifeofficial/levelife-922003/internal/engine"
	"github.com/levelifeofficial/levelife-922003/internal/game"
	"github.com/levelifeofficial/levelife-922003/internal/logging"
)

const closeTimeout = 5 * time.Second

// openService loads the game and returns a cleanup that flushes pending
// writes.
func (a *app) openService(cmd *cobra.Command) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(log)

	path, err := cfg.ResolveDBPath(a.dbPath)
	if err != nil {
		return nil, nil, err
	}
	svc, err := engine.Open(cmd.Context(), path, engine.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := svc.Close(ctx); err != nil {
			log.Error("close failed", slog.Any("error", err))
		}
	}
	return svc, cleanup, nil
}

// withService runs fn against an open service and always flushes afterwards.
func (a *app) withService(cmd *cobra.Command, fn func(svc *engine.Service) error) error {
	svc, cleanup, err := a.openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(svc)
}

func findReward(st *game.State, ref string) (game.Reward, error) {
	ref = strings.TrimSpace(ref)
	for _, r := range st.Rewards {
		if r.ID == ref || strings.EqualFold(r.Title, ref) {
			return r, nil
		}
	}
	return game.Reward{}, engine.ErrRewardNotFound
}

func findClass(st *game.State, ref string) (game.Class, error) {
	ref = strings.TrimSpace(ref)
	for _, list := range [][]game.Class{st.Classes, st.Subclasses} {
		for _, c := range list {
			if c.ID == ref || strings.EqualFold(c.Name, ref) {
				return c, nil
			}
		}
	}
	return game.Class{}, engine.ErrClassNotFound
}

func findTip(st *game.State, ref string) (game.ProTip, error) {
	ref = strings.TrimSpace(ref)
	for _, t := range st.ProTips {
		if t.ID == ref || strings.EqualFold(t.Title, ref) {
			return t, nil
		}
	}
	return game.ProTip{}, engine.ErrTipNotFound
}

func exactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New(what + " required")
		}
		return nil
	}
}

// Changed-only flag readers; an untouched flag yields nil.

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}
