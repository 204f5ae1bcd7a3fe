package cmd

import (
	"fmt"
	"os"

	"poc-portal/feature/usecases"
	"poc-portal/feature/usecases/models"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download every use case and image from the remote repository",
	Long:  `Fetches the manifest of the repository and installs all of its use cases and images into the local content root. Failed files are counted, not fatal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		var bar *progressbar.ProgressBar
		events := make(chan models.Progress)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for ev := range events {
				if bar == nil {
					bar = progressbar.NewOptions(ev.Total,
						progressbar.OptionSetWriter(os.Stderr),
						progressbar.OptionSetDescription("Syncing use cases"),
						progressbar.OptionShowCount(),
						progressbar.OptionSetPredictTime(false),
					)
				}
				bar.Describe(ev.Name)
				_ = bar.Add(1)
			}
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(os.Stderr)
			}
		}()

		result, err := a.service.SyncAll(cmd.Context(), "", usecases.TriggerCLI, events)
		<-done
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		fmt.Println("\n=== Use Case Sync ===")
		fmt.Printf("Use Cases: %d downloaded, %d failed\n", result.UseCases.Downloaded, result.UseCases.Failed)
		fmt.Printf("Images: %d downloaded, %d failed\n", result.Images.Downloaded, result.Images.Failed)
		fmt.Printf("Total: %d/%d\n", result.Downloaded, result.Total)

		a.logger.Info("Use case sync completed",
			zap.Int("downloaded", result.Downloaded),
			zap.Int("failed", result.Failed),
			zap.Int("total", result.Total))

		if result.Failed > 0 {
			return fmt.Errorf("%d of %d files failed to download", result.Failed, result.Total)
		}
		return nil
	},
}

// downloadCmd represents the sync download command
var downloadCmd = &cobra.Command{
	Use:   "download <category>/<slug>",
	Short: "Download a single use case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, slug, err := models.SplitID(args[0])
		if err != nil {
			return err
		}

		a, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if err := a.service.DownloadItem(cmd.Context(), "", category, slug); err != nil {
			return err
		}
		a.logger.Info("Use case installed", zap.String("id", args[0]), zap.String("root", a.cfg.Content.LocalPath))
		return nil
	},
}

func init() {
	syncCmd.AddCommand(downloadCmd)
	RootCmd.AddCommand(syncCmd)
}
