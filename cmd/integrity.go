package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"poc-portal/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the local content and the repository",
	Long:  `Checks the content root for incomplete use cases and stray files, compares images with the manifest and probes the remote repository.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check (and optionally fix) the content root",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false, false)
	},
}

// imagesCmd represents the integrity images command
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List manifest images missing locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true, false)
	},
}

// sourceCmd represents the integrity source command
var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Probe the remote repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, false, true)
	},
}

func runIntegrityChecks(cmd *cobra.Command, structure, images, source bool) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	logg := a.logger
	defer logg.Sync()

	svc := integrity.NewService(a.store, a.resolver, a.cfg.Content.RepoURL, logg)
	ctx := cmd.Context()
	failed := false

	if structure {
		report, err := svc.CheckStructure()
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		for _, id := range report.Incomplete {
			logg.Warn("Incomplete use case", zap.String("id", id))
		}
		if len(report.Stray) > 0 {
			if fixFlag {
				if err := svc.FixStructure(report.Stray); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
			} else {
				logg.Warn("Stray files found, run with --fix to remove them", zap.Strings("files", report.Stray))
				failed = true
			}
		}
		if len(report.Incomplete) > 0 {
			failed = true
		}
		if report.OK() {
			logg.Info("Content structure is healthy")
		}
	}

	if images {
		missing, err := svc.CheckImages(ctx)
		if err != nil {
			return fmt.Errorf("images check failed: %w", err)
		}
		if len(missing) > 0 {
			logg.Warn("Images missing locally", zap.Strings("images", missing))
			failed = true
		} else {
			logg.Info("All manifest images are present")
		}
	}

	if source {
		reports, err := svc.CheckSource(ctx)
		if err != nil {
			return fmt.Errorf("source check failed: %w", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
		for _, r := range reports {
			if !r.Reachable() {
				failed = true
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}

func init() {
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "remove stray staging files")
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "remove stray staging files")
	integrityCmd.AddCommand(structureCmd, imagesCmd, sourceCmd)
	RootCmd.AddCommand(integrityCmd)
}
