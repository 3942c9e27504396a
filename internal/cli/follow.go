package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizogram-client/internal/app"
)

// NewFollowCmd follows a user, optimistically.
func NewFollowCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "follow <username>",
		Short: "Follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFollowToggle(cmd, *configPath, *serverURL, args[0], true)
		},
	}
}

// NewUnfollowCmd unfollows a user.
func NewUnfollowCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <username>",
		Short: "Unfollow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFollowToggle(cmd, *configPath, *serverURL, args[0], false)
		},
	}
}

func runFollowToggle(cmd *cobra.Command, configPath, serverURL, username string, wantFollow bool) error {
	env, err := buildEnv(configPath, serverURL)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// The public profile carries the authoritative follow state and count,
	// so the optimistic snapshot starts from reality.
	profile, err := env.client.UserProfile(cmd.Context(), username)
	if err != nil {
		return err
	}
	if profile.IsMe {
		return fmt.Errorf("cannot follow yourself")
	}
	if profile.IsFollowing == wantFollow {
		if wantFollow {
			fmt.Fprintf(out, "Already following @%s\n", username)
		} else {
			fmt.Fprintf(out, "You do not follow @%s\n", username)
		}
		return nil
	}

	snap := app.FollowSnapshot(username, profile.IsFollowing, profile.Followers)
	controller := app.NewToggleController()
	if err := controller.Toggle(cmd.Context(), snap, app.FollowToggle(env.client, username)); err != nil {
		return fmt.Errorf("could not update follow state, nothing changed: %w", err)
	}
	if snap.Active {
		fmt.Fprintf(out, "Now following @%s (%d followers)\n", username, snap.Count)
	} else {
		fmt.Fprintf(out, "Unfollowed @%s (%d followers)\n", username, snap.Count)
	}
	return nil
}
