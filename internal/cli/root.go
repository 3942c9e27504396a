package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL  string
	configPath string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("QUIZOGRAM_CONFIG")

	cmd := &cobra.Command{
		Use:   "quizogram",
		Short: "Command-line client for the Quizogram social quiz platform",
	}

	cmd.PersistentFlags().StringVar(&serverURL, "server", "", "base URL of the Quizogram service (overrides QUIZOGRAM_SERVER_URL and config)")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")

	cmd.AddCommand(NewLoginCmd(&configPath, &serverURL))
	cmd.AddCommand(NewLogoutCmd(&configPath, &serverURL))
	cmd.AddCommand(NewRegisterCmd(&configPath, &serverURL))
	cmd.AddCommand(NewTakeCmd(&configPath, &serverURL))
	cmd.AddCommand(NewFeedCmd(&configPath, &serverURL))
	cmd.AddCommand(NewLikeCmd(&configPath, &serverURL))
	cmd.AddCommand(NewFollowCmd(&configPath, &serverURL))
	cmd.AddCommand(NewUnfollowCmd(&configPath, &serverURL))
	cmd.AddCommand(NewQuizzesCmd(&configPath, &serverURL))
	cmd.AddCommand(NewAttemptsCmd(&configPath, &serverURL))
	cmd.AddCommand(NewLeaderboardCmd(&configPath, &serverURL))
	cmd.AddCommand(NewProfileCmd(&configPath, &serverURL))
	cmd.AddCommand(NewUsersCmd(&configPath, &serverURL))
	cmd.AddCommand(NewAvatarsCmd(&configPath, &serverURL))
	return cmd
}
