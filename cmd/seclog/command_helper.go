package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/seclog/internal/infrastructure/container"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// Schema settings come from viper so flags, SECLOG_* variables and
// $HOME/.seclog.yaml all apply.
//
// Usage:
//
//	cmd := &cobra.Command{
//	    Use: "apply",
//	    RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
//	        _, err := ctx.Container.ApplyFilesUseCase().Execute(ctx.Context, req)
//	        return err
//	    }),
//	}
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		systemConfigPath, _ := cmd.Flags().GetString("system-config")

		logger := slog.Default()

		c, err := container.New(container.Options{
			SystemConfigPath:  systemConfigPath,
			Schema:            viper.GetString("schema"),
			VersionConstraint: viper.GetString("version-constraint"),
			Logger:            logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := &CommandContext{
			Container: c,
			Logger:    logger,
			Context:   cmd.Context(),
		}
		if ctx.Context == nil {
			ctx.Context = context.Background()
		}

		return handler(ctx, cmd, args)
	}
}
