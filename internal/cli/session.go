package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/edulearn/marketplace/internal/core/domain"
)

func newLoginCommand(current func() *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with any email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := current().sessions.Login(commandContext(cmd), email, password)
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand(current func() *app) *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a student account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := current().sessions.Register(commandContext(cmd), email, password, name)
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newLogoutCommand(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current().sessions.Logout(commandContext(cmd))
			printSession(cmd.OutOrStdout(), nil)
			return nil
		},
	}
}

func newWhoamiCommand(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printSession(cmd.OutOrStdout(), current().sessions.Current())
			return nil
		},
	}
}

func newSwitchRoleCommand(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:       "switch-role <admin|student>",
		Short:     "Change the role of the signed-in identity",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.RoleAdmin), string(domain.RoleStudent)},
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := domain.ParseRole(args[0])
			if err != nil {
				return err
			}
			sessions := current().sessions
			if err := sessions.SwitchRole(commandContext(cmd), role); err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), sessions.Current())
			return nil
		},
	}
}

func printSession(w io.Writer, id *domain.Identity) {
	view := domain.LandingView(id)
	if id == nil {
		fmt.Fprintf(w, "Not signed in\nview: %s (%s)\n", view, view.Path())
		return
	}
	fmt.Fprintf(w, "%s <%s>\nid:   %s\nrole: %s\nview: %s (%s)\n",
		id.Name, id.Email, id.ID, id.Role, view, view.Path())
}
