package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"quizogram-client/internal/api"
	"quizogram-client/internal/app"
	"quizogram-client/internal/config"
	"quizogram-client/internal/domain"
)

// NewTakeCmd runs an interactive attempt at a quiz, one question at a time.
func NewTakeCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "take <quiz-id>",
		Short: "Take a quiz step by step with immediate feedback",
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

			settle := config.Duration(env.cfg.Attempt.SettleDelay, app.DefaultSettleDelay)
			retries := env.cfg.Attempt.FinalizeRetries
			if retries <= 0 {
				retries = app.DefaultFinalizeRetries
			}

			session := app.NewAttemptSession(env.quizSource(), env.client, quizID,
				app.WithSettleDelay(settle),
				app.WithFinalizeRetries(retries),
			)
			if err := session.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load quiz %d: %w", quizID, err)
			}

			quiz := session.Quiz()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", quiz.Title)
			if quiz.Description != "" {
				fmt.Fprintf(out, "%s\n", quiz.Description)
			}
			fmt.Fprintln(out)

			return runAttempt(cmd.Context(), session, bufio.NewReader(cmd.InOrStdin()), out)
		},
	}
}

func runAttempt(ctx context.Context, session *app.AttemptSession, in *bufio.Reader, out io.Writer) error {
	total := len(session.Quiz().Questions)

	for {
		question, index, ok := session.Current()
		if !ok {
			break
		}

		fmt.Fprintf(out, "Question %d/%d: %s\n", index+1, total, question.Text)
		for i, opt := range question.Options {
			fmt.Fprintf(out, "  [%d] %s\n", i, opt.Text)
		}
		fmt.Fprint(out, "> ")

		selected, err := readSelection(in)
		if err != nil {
			return err
		}

		outcome, err := session.SubmitCurrent(ctx, selected)
		if err != nil {
			if errors.Is(err, api.ErrUnauthenticated) {
				return fmt.Errorf("session expired, run `quizogram login` and retake: %w", err)
			}
			if errors.Is(err, domain.ErrOptionOutOfRange) {
				fmt.Fprintf(out, "Pick a number between 0 and %d.\n\n", len(question.Options)-1)
				continue
			}
			if outcome.Restarted {
				fmt.Fprintf(out, "Submitting your attempt failed (%v). Starting over from question 1.\n\n", err)
				continue
			}
			if session.Phase() == app.PhaseFailed {
				return err
			}
			fmt.Fprintf(out, "Submission failed (%v). Try again.\n\n", err)
			continue
		}

		if outcome.Correct {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintln(out, "Incorrect.")
		}
		fmt.Fprintln(out)

		if outcome.Finished {
			fmt.Fprintf(out, "Done! Score: %d/%d\n", outcome.Result.Score, outcome.Result.Total)
			return nil
		}
	}

	if session.Phase() == app.PhaseFailed {
		return fmt.Errorf("attempt failed")
	}
	return nil
}

// readSelection parses one line of input into an option index. An empty
// line means "no explicit choice" and defers to the session's default.
func readSelection(in *bufio.Reader) (*int, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return nil, fmt.Errorf("answer must be an option number: %q", line)
	}
	return &n, nil
}
