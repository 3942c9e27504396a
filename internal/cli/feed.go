package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"quizogram-client/internal/app"
	"quizogram-client/internal/domain"
)

const feedPageSize = 100

// NewFeedCmd prints the social feed: quizzes from followed authors plus
// the user's own.
func NewFeedCmd(configPath, serverURL *string) *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the quiz feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			items, err := env.client.Feed(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Feed is empty. Follow someone or create a quiz.")
				return nil
			}
			for _, item := range items {
				liked := " "
				if item.IsLikedByMe {
					liked = "*"
				}
				fmt.Fprintf(out, "#%d  @%s  %s%d likes\n", item.QuizID, item.OwnerUsername, liked, item.LikeCount)
				fmt.Fprintf(out, "    %s\n", item.Title)
				if item.Description != "" {
					fmt.Fprintf(out, "    %s\n", item.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "number of feed items to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum feed items to show")
	return cmd
}

// NewLikeCmd toggles the like on a quiz from the feed, optimistically.
func NewLikeCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "like <quiz-id>",
		Short: "Like or unlike a quiz from your feed",
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

			// The snapshot comes from the feed, the one place the client
			// sees like counts.
			item, found, err := findFeedItem(cmd.Context(), env.client, quizID)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("quiz #%d is not in your feed", quizID)
			}

			snap := app.LikeSnapshot(item)
			controller := app.NewToggleController()
			if err := controller.Toggle(cmd.Context(), snap, app.LikeToggle(env.client, quizID)); err != nil {
				return fmt.Errorf("could not update like, nothing changed: %w", err)
			}
			if snap.Active {
				fmt.Fprintf(cmd.OutOrStdout(), "Liked #%d (%d likes)\n", quizID, snap.Count)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Unliked #%d (%d likes)\n", quizID, snap.Count)
			}
			return nil
		},
	}
}

// feedLister is the slice of the API client the feed scan needs.
type feedLister interface {
	Feed(ctx context.Context, skip, limit int) ([]domain.FeedItem, error)
}

// findFeedItem pages through the whole feed until the quiz turns up or the
// feed runs out. A short page marks the end.
func findFeedItem(ctx context.Context, client feedLister, quizID int) (domain.FeedItem, bool, error) {
	for skip := 0; ; skip += feedPageSize {
		items, err := client.Feed(ctx, skip, feedPageSize)
		if err != nil {
			return domain.FeedItem{}, false, err
		}
		for _, item := range items {
			if item.QuizID == quizID {
				return item, true, nil
			}
		}
		if len(items) < feedPageSize {
			return domain.FeedItem{}, false, nil
		}
	}
}
