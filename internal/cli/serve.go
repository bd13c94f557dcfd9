package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/edulearn/marketplace/internal/api"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(current func() *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := current()
			if port == "" {
				port = a.cfg.Port
			}

			e := api.NewRouter(api.Deps{
				Sessions:  a.sessions,
				Catalog:   a.catalog,
				Dashboard: a.dashboard,
				Checks:    a.checks,
				Log:       a.log.With().Str("component", "http").Logger(),
			})

			errCh := make(chan error, 1)
			go func() {
				a.log.Info().Str("port", port).Str("env", a.cfg.Env).Msg("http server starting")
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-commandContext(cmd).Done():
			}

			a.log.Info().Msg("shutting down http server")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to PORT)")
	return cmd
}
