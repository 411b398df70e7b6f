// ABOUTME: CLI commands for friends and the social activity feed.
// ABOUTME: Supports add, list, rm, activity, and ping subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/models"
	"github.com/spf13/cobra"
)

var (
	friendAvatar string
	friendStatus string
)

var friendCmd = &cobra.Command{
	Use:     "friend",
	Aliases: []string{"friends", "f"},
	Short:   "Manage friends",
	Long: `Keep a roster of friends and a light activity feed.

There is no real presence backend; status and the activity feed are
local color. The feed keeps the latest ten entries.

EXAMPLES:

  willow friend add Sarah --avatar 🦊
  willow friend list
  willow friend activity          # Refresh and show the feed
  willow friend ping "hydrate!"   # Nudge everyone
  willow friend rm Sarah`,
}

var friendAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a friend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := models.NewFriend(args[0])
		if friendAvatar != "" {
			f.WithAvatar(friendAvatar)
		}
		if friendStatus != "" {
			if !models.IsValidFriendStatus(friendStatus) {
				return fmt.Errorf("unknown status: %s (use online, offline, or busy)", friendStatus)
			}
			f.WithStatus(models.FriendStatus(friendStatus))
		}

		if err := appStore.AddFriend(f); err != nil {
			return fmt.Errorf("failed to add friend: %w", err)
		}

		color.Green("✓ Added %s", f.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(f.ID.String()[:8]))
		return nil
	},
}

var friendListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List friends",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()
		if len(doc.Friends) == 0 {
			fmt.Println("No friends yet. Add one with 'willow friend add <name>'.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, f := range doc.Friends {
			avatar := f.Avatar
			if avatar == "" {
				avatar = " "
			}
			fmt.Printf("%s %s %s %s\n",
				faint.Sprint(f.ID.String()[:8]),
				avatar,
				padRight(f.Name, 16),
				faint.Sprint(string(f.Status)))
		}
		return nil
	},
}

var friendRmCmd = &cobra.Command{
	Use:     "rm <id|name>",
	Aliases: []string{"delete", "del"},
	Short:   "Remove a friend",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := resolveFriend(appStore.Snapshot(), args[0])
		if err != nil {
			return err
		}
		if err := appStore.RemoveFriend(f.ID); err != nil {
			return fmt.Errorf("failed to remove friend: %w", err)
		}
		color.Yellow("✗ Removed %s", f.Name)
		return nil
	},
}

var friendActivityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the activity feed",
	Long:  `Generate a fresh activity entry and show the feed, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appStore.TriggerFriendActivity(); err != nil {
			return fmt.Errorf("failed to refresh activity: %w", err)
		}

		doc := appStore.Snapshot()
		if len(doc.FriendActivity) == 0 {
			fmt.Println("No activity yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range doc.FriendActivity {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(a.Timestamp.Format("15:04")),
				color.New(color.Bold).Sprint(a.FriendName),
				a.Action)
		}
		return nil
	},
}

var friendPingCmd = &cobra.Command{
	Use:   "ping [message]",
	Short: "Nudge your friends",
	Long: `Send a motivational nudge to all friends.

Nothing actually leaves your machine; this reports how many friends
would have been reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := "keep it up!"
		if len(args) > 0 {
			message = strings.Join(args, " ")
		}

		count := appStore.PingFriends(message)
		if count == 0 {
			fmt.Println("No friends to ping.")
			return nil
		}
		color.Green("✓ Pinged %d friend(s): %q", count, message)
		return nil
	},
}

func init() {
	friendAddCmd.Flags().StringVar(&friendAvatar, "avatar", "", "avatar glyph")
	friendAddCmd.Flags().StringVar(&friendStatus, "status", "", "online, offline, or busy")

	friendCmd.AddCommand(friendAddCmd)
	friendCmd.AddCommand(friendListCmd)
	friendCmd.AddCommand(friendRmCmd)
	friendCmd.AddCommand(friendActivityCmd)
	friendCmd.AddCommand(friendPingCmd)
	rootCmd.AddCommand(friendCmd)
}
