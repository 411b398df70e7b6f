// ABOUTME: CLI commands for wellness protocols.
// ABOUTME: Supports list, join, and create subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/models"
	"github.com/spf13/cobra"
)

var (
	protocolDescription string
	protocolCategory    string
	protocolCreator     string
)

var protocolCmd = &cobra.Command{
	Use:   "protocol",
	Short: "Browse and join wellness protocols",
	Long: `Browse creator-authored wellness programs and join them.

Joining a protocol adds a kickoff task to today's timeline at 08:00.
Joining twice is a no-op.

EXAMPLES:

  willow protocol list
  willow protocol join p1
  willow protocol create "Cold Exposure Basics" -c wellness`,
}

var protocolListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List protocols",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := appStore.Snapshot()
		if len(doc.Protocols) == 0 {
			fmt.Println("No protocols available.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range doc.Protocols {
			joined := ""
			if appStore.Joined(p.ID) {
				joined = color.GreenString(" ✓ joined")
			}
			price := "free"
			if p.Price > 0 {
				price = fmt.Sprintf("$%.0f", p.Price)
			}
			fmt.Printf("%s %s %s\n", faint.Sprint(padRight(p.ID, 10)),
				color.New(color.Bold).Sprint(p.Title), joined)
			fmt.Printf("           by %s · %s · %.1f★ · %d followers · %s\n",
				p.CreatorName, p.Category, p.Rating, p.Followers, price)
			if p.Description != "" {
				fmt.Printf("           %s\n", faint.Sprint(truncate(p.Description, 70)))
			}
		}
		return nil
	},
}

var protocolJoinCmd = &cobra.Command{
	Use:   "join <id>",
	Short: "Join a protocol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if appStore.Joined(id) {
			fmt.Println("Already joined.")
			return nil
		}

		if err := appStore.JoinProtocol(id); err != nil {
			return fmt.Errorf("failed to join protocol: %w", err)
		}

		doc := appStore.Snapshot()
		for _, p := range doc.Protocols {
			if p.ID == id {
				color.Green("✓ Joined %q", p.Title)
				fmt.Println("  A kickoff task was added to today's timeline.")
				return nil
			}
		}
		color.Green("✓ Joined %s", id)
		return nil
	},
}

var protocolCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a protocol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidProtocolCategory(protocolCategory) {
			return fmt.Errorf("unknown category: %s\nValid categories: fitness, nutrition, wellness, medical", protocolCategory)
		}

		p := models.NewProtocol(args[0], protocolDescription, protocolCreator,
			models.ProtocolCategory(protocolCategory))

		if err := appStore.CreateProtocol(p); err != nil {
			return fmt.Errorf("failed to create protocol: %w", err)
		}

		color.Green("✓ Created %q", p.Title)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(p.ID))
		return nil
	},
}

func init() {
	protocolCreateCmd.Flags().StringVarP(&protocolDescription, "description", "d", "", "protocol description")
	protocolCreateCmd.Flags().StringVarP(&protocolCategory, "category", "c", "fitness", "fitness, nutrition, wellness, or medical")
	protocolCreateCmd.Flags().StringVar(&protocolCreator, "creator", "You", "creator display name")

	protocolCmd.AddCommand(protocolListCmd)
	protocolCmd.AddCommand(protocolJoinCmd)
	protocolCmd.AddCommand(protocolCreateCmd)
	rootCmd.AddCommand(protocolCmd)
}
