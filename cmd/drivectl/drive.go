package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivescout/graph-drive-client/internal/config"
	"github.com/drivescout/graph-drive-client/pkg/drive"
)

// driveCmd prints the metadata of the user's default drive.
var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Show the default drive's metadata",
	RunE:  runDrive,
}

func init() {
	rootCmd.AddCommand(driveCmd)
}

func runDrive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	info, err := fetcher.Drive(context.Background(), drive.StaticToken(cfg.Graph.AccessToken))
	if err != nil {
		return fmt.Errorf("could not load drive metadata: %w", err)
	}

	return printJSON(info)
}
