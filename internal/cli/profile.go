package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quizogram-client/internal/domain"
)

// NewProfileCmd shows a profile: the viewer's own by default, or any
// user's public page when a username is given.
func NewProfileCmd(configPath, serverURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [username]",
		Short: "Show your profile, or another user's",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			var profile domain.Profile
			if len(args) == 1 {
				profile, err = env.client.UserProfile(cmd.Context(), args[0])
			} else {
				profile, err = env.client.MyProfile(cmd.Context())
			}
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), profile)
			return nil
		},
	}
	cmd.AddCommand(newProfileUpdateCmd(configPath, serverURL))
	return cmd
}

func printProfile(out io.Writer, profile domain.Profile) {
	fmt.Fprintf(out, "@%s\n", profile.Username)
	if profile.Bio != "" {
		fmt.Fprintln(out, profile.Bio)
	}
	fmt.Fprintf(out, "%d quizzes · %d followers · %d following\n",
		profile.QuizCount, profile.Followers, profile.Following)
	if profile.IsFollowing {
		fmt.Fprintln(out, "You follow this user.")
	}
	for _, quiz := range profile.Quizzes {
		fmt.Fprintf(out, "  #%d  %s\n", quiz.ID, quiz.Title)
	}
}

func newProfileUpdateCmd(configPath, serverURL *string) *cobra.Command {
	var bio, avatar string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update bio and/or avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			var bioPtr, avatarPtr *string
			if cmd.Flags().Changed("bio") {
				bioPtr = &bio
			}
			if cmd.Flags().Changed("avatar") {
				avatarPtr = &avatar
			}
			if bioPtr == nil && avatarPtr == nil {
				return fmt.Errorf("nothing to update: pass --bio and/or --avatar")
			}
			profile, err := env.client.UpdateProfile(cmd.Context(), bioPtr, avatarPtr)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for @%s\n", profile.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&bio, "bio", "", "profile bio")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar key (see `quizogram avatars`)")
	return cmd
}

// NewAvatarsCmd lists the selectable avatars.
func NewAvatarsCmd(configPath, serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "avatars",
		Short: "List available avatars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(*configPath, *serverURL)
			if err != nil {
				return err
			}
			options, err := env.client.Avatars(cmd.Context())
			if err != nil {
				return err
			}
			for _, opt := range options {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", opt.Key, opt.URL)
			}
			return nil
		},
	}
}
