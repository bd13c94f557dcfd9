// Package cli holds the edulearn command tree. Every command shares one
// wired application: the same session store the HTTP server uses, backed by
// the configured slot, so a login made here is visible to a later `serve`.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edulearn/marketplace/internal/pkg/config"
)

type loadFunc func(ctx context.Context) (*config.Config, error)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.Load)
}

func newRootCmd(load loadFunc) *cobra.Command {
	var a *app

	rootCmd := &cobra.Command{
		Use:           "edulearn",
		Short:         "EduLearn course marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			cfg, err := load(ctx)
			if err != nil {
				return err
			}
			a, err = newApp(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a == nil {
				return nil
			}
			return a.close()
		},
	}

	current := func() *app { return a }
	rootCmd.AddCommand(
		newServeCommand(current),
		newLoginCommand(current),
		newRegisterCommand(current),
		newLogoutCommand(current),
		newWhoamiCommand(current),
		newSwitchRoleCommand(current),
		newCoursesCommand(current),
	)

	return rootCmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
