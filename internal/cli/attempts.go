package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewAttemptsCmd lists the current user's attempt history.
func NewAttemptsCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "attempts",
		Short: "Show your attempt history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			records, err := env.client.MyAttempts(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No attempts yet.")
				return nil
			}
			for _, record := range records {
				fmt.Fprintf(out, "quiz #%d  %d/%d", record.QuizID, record.Score, record.Total)
				if record.CreatedAt != "" {
					fmt.Fprintf(out, "  (%s)", record.CreatedAt)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

// NewLeaderboardCmd shows each user's best score on a quiz.
func NewLeaderboardCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard <quiz-id>",
		Short: "Show the leaderboard for a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quizID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("quiz id must be a number: %q", args[0])
			}
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			rows, err := env.client.Leaderboard(cmd.Context(), quizID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No attempts on this quiz yet.")
				return nil
			}
			for i, row := range rows {
				fmt.Fprintf(out, "%2d. user %d  %d/%d\n", i+1, row.UserID, row.BestScore, row.Total)
			}
			return nil
		},
	}
}
