// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gcalg/internal/cli/config"
)

// ErrNoConfig is returned when a command runs without an attached config.
var ErrNoConfig = errors.New("commands: configuration not loaded")

type sessionKey struct{}

type session struct {
	cfg *config.Config
	log *zap.Logger
}

// Attach stores cfg and log in the command context for the subcommands.
func Attach(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, sessionKey{}, &session{cfg: cfg, log: log}))
}

func sessionFrom(cmd *cobra.Command) (*session, error) {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(sessionKey{}).(*session); ok {
			return s, nil
		}
	}

	return nil, ErrNoConfig
}

// loadEngine builds the configured algebra and logs its shape.
func loadEngine(cmd *cobra.Command) (*session, Engine, error) {
	rt, err := sessionFrom(cmd)
	if err != nil {
		return nil, nil, err
	}
	eng, err := NewEngine(rt.cfg)
	if err != nil {
		return nil, nil, err
	}
	rt.log.Debug("algebra ready",
		zap.String("command", cmd.Name()),
		zap.String("ring", eng.RingName()),
		zap.Strings("names", rt.cfg.Names),
		zap.Ints("degrees", rt.cfg.Degrees),
		zap.Int("max_degree", rt.cfg.MaxDegree),
	)

	return rt, eng, nil
}
