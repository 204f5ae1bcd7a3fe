package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show new and updated use cases available remotely",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		status := a.service.CheckForUpdates(cmd.Context(), "")

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		}

		if status.Error != "" {
			return fmt.Errorf("update check failed: %s", status.Error)
		}

		fmt.Println("\n=== Use Case Status ===")
		fmt.Printf("Use Cases In Manifest: %d\n", status.TotalInManifest)
		fmt.Printf("Unchanged: %d\n", status.Unchanged)
		fmt.Printf("Images In Manifest: %d\n", status.ImageCount)
		fmt.Printf("New: %d\n", len(status.NewUseCases))
		for _, uc := range status.NewUseCases {
			fmt.Printf("  + %s (%s)\n", uc.ID, uc.Version)
		}
		fmt.Printf("Updated: %d\n", len(status.Updated))
		for _, uc := range status.Updated {
			fmt.Printf("  ~ %s (%s -> %s)\n", uc.ID, uc.LocalVersion, uc.Version)
		}
		return nil
	},
}

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List installed use cases and slug conflicts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		inv, err := a.service.Inventory()
		if err != nil {
			return err
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(inv)
		}

		fmt.Println("\n=== Installed Use Cases ===")
		for _, uc := range inv.UseCases {
			fmt.Printf("%s\t%s\n", uc.ID, uc.Version)
		}
		fmt.Printf("Total: %d\n", len(inv.UseCases))
		if len(inv.Conflicts) > 0 {
			fmt.Printf("Conflicts: %d\n", len(inv.Conflicts))
			for _, c := range inv.Conflicts {
				fmt.Printf("  ! %s in %v\n", c.Slug, c.Categories)
			}
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().Bool("json", false, "print the status as JSON")
	inventoryCmd.Flags().Bool("json", false, "print the inventory as JSON")
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(inventoryCmd)
}
