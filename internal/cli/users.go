package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewUsersCmd groups people-related lookups.
func NewUsersCmd(configPath, serverURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Find people on Quizogram",
	}
	cmd.AddCommand(newUserSearchCmd(configPath, serverURL))
	return cmd
}

func newUserSearchCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search users by username",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			results, err := env.client.SearchUsers(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No users found.")
				return nil
			}
			for _, user := range results {
				fmt.Fprintf(out, "@%s\n", user.Username)
			}
			return nil
		},
	}
}
