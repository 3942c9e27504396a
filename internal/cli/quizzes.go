package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quizogram-client/internal/domain"
)

// NewQuizzesCmd groups quiz browsing and authoring.
func NewQuizzesCmd(configPath, serverURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quizzes",
		Short: "Browse and author quizzes",
	}
	cmd.AddCommand(newQuizzesListCmd(configPath, serverURL))
	cmd.AddCommand(newQuizzesShowCmd(configPath, serverURL))
	cmd.AddCommand(newQuizzesCreateCmd(configPath, serverURL))
	return cmd
}

func newQuizzesListCmd(configPath, serverURL *string) *cobra.Command {
	var skip, limit int
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List public quizzes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			quizzes, err := env.client.ListQuizzes(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}
			// Search is a client-side filter over title and description,
			// same as the web client's search tab.
			needle := strings.ToLower(strings.TrimSpace(query))
			out := cmd.OutOrStdout()
			shown := 0
			for _, quiz := range quizzes {
				if needle != "" &&
					!strings.Contains(strings.ToLower(quiz.Title), needle) &&
					!strings.Contains(strings.ToLower(quiz.Description), needle) {
					continue
				}
				fmt.Fprintf(out, "#%d  %s (%d questions)\n", quiz.ID, quiz.Title, len(quiz.Questions))
				if quiz.Description != "" {
					fmt.Fprintf(out, "    %s\n", quiz.Description)
				}
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, "Nothing found.")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of quizzes to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum quizzes to fetch")
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by title or description")
	return cmd
}

func newQuizzesShowCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <quiz-id>",
		Short: "Show a quiz's questions",
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
			quiz, err := env.client.GetQuiz(cmd.Context(), quizID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "#%d  %s\n", quiz.ID, quiz.Title)
			if quiz.Description != "" {
				fmt.Fprintln(out, quiz.Description)
			}
			for i, q := range quiz.Questions {
				fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
				for j, opt := range q.Options {
					fmt.Fprintf(out, "   [%d] %s\n", j, opt.Text)
				}
			}
			return nil
		},
	}
}

func newQuizzesCreateCmd(configPath, serverURL *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a quiz from a YAML draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var draft domain.QuizDraft
			if err := yaml.Unmarshal(data, &draft); err != nil {
				return fmt.Errorf("parse draft: %w", err)
			}
			quiz, err := env.client.CreateQuiz(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created quiz #%d: %s\n", quiz.ID, quiz.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the YAML quiz draft")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
