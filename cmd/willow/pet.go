// ABOUTME: CLI commands for the companion pet.
// ABOUTME: Supports status, rename, species, and chat subcommands.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/willow/internal/chat"
	"github.com/harperreed/willow/internal/models"
	"github.com/harperreed/willow/internal/store"
	"github.com/spf13/cobra"
)

var petCmd = &cobra.Command{
	Use:     "pet",
	Aliases: []string{"p"},
	Short:   "Your companion pet",
	Long: `Check on and talk to your companion.

The companion earns +10 XP each time you complete a habit, finish a
timeline task, take a supplement, or log a meal. Every 100 XP is a
level; leveling up makes it excited.

EXAMPLES:

  willow pet status
  willow pet rename Sprout
  willow pet species dragon
  willow pet chat "hello"`,
}

var petStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show companion status",
	RunE: func(cmd *cobra.Command, args []string) error {
		pet := appStore.Pet()

		fmt.Printf("%s the %s\n", color.New(color.Bold).Sprint(pet.Name), pet.Species)
		fmt.Printf("  Level %d  (%d/%d XP)\n", pet.Level, pet.LevelProgress(), models.XPPerLevel)
		fmt.Printf("  Mood: %s\n", pet.Mood)
		fmt.Printf("  Total XP: %d\n", pet.XP)
		return nil
	},
}

var petRenameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename the companion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := appStore.UpdatePet(store.PetUpdate{Name: &name}); err != nil {
			return fmt.Errorf("failed to rename: %w", err)
		}
		color.Green("✓ Renamed companion to %s", name)
		return nil
	},
}

var petSpeciesCmd = &cobra.Command{
	Use:       "species <species>",
	Short:     "Change the companion's species",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"hummingbird", "dragon"},
	RunE: func(cmd *cobra.Command, args []string) error {
		species := models.PetSpecies(args[0])
		if err := appStore.UpdatePet(store.PetUpdate{Species: &species}); err != nil {
			return fmt.Errorf("failed to update species: %w", err)
		}
		color.Green("✓ Your companion is now a %s", species)
		return nil
	},
}

var petChatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Talk to the companion",
	Long: `Send a message to your companion and get a reply.

The conversation is stateless; nothing is stored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		pet := appStore.Pet()

		fmt.Printf("%s: %s\n", color.New(color.Bold).Sprint(pet.Name), chat.Reply(message))

		// Talking counts as interaction, nothing else changes.
		now := time.Now()
		return appStore.UpdatePet(store.PetUpdate{LastInteraction: &now})
	},
}

func init() {
	petCmd.AddCommand(petStatusCmd)
	petCmd.AddCommand(petRenameCmd)
	petCmd.AddCommand(petSpeciesCmd)
	petCmd.AddCommand(petChatCmd)
	rootCmd.AddCommand(petCmd)
}
