package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quizogram-client/internal/auth"
)

// NewLoginCmd authenticates and persists the access token.
func NewLoginCmd(configPath, serverURL *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate against the service and store the access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			token, err := env.client.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if exp, ok := auth.ExpiresAt(token); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (session expires %s)\n",
					args[0], exp.Format(time.RFC1123))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

// NewLogoutCmd drops the stored credential.
func NewLogoutCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			if err := env.client.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// NewRegisterCmd creates a new account.
func NewRegisterCmd(configPath, serverURL *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "register <username> <email>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			user, err := env.client.Register(cmd.Context(), args[0], args[1], password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (id=%d). Run `quizogram login %s` next.\n",
				user.Username, user.ID, user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password for the new account")
	return cmd
}
