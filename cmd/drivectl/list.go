package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/drivescout/graph-drive-client/internal/config"
	"github.com/drivescout/graph-drive-client/pkg/drive"
)

// listCmd fetches one metadata collection and prints it as JSON.
var listCmd = &cobra.Command{
	Use:   "list [following|shared|recent]",
	Short: "Fetch a drive metadata collection",
	Long: `Fetch all items of a drive metadata collection, following pagination
cursors until the server reports no further pages. The complete collection
is printed to stdout as a JSON array.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"following", "shared", "recent"},
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("typed", false, "Decode items into typed metadata instead of raw passthrough")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := drive.StaticToken(cfg.Graph.AccessToken)

	var items drive.Collection
	switch args[0] {
	case "following":
		items, err = fetcher.Following(ctx, session)
	case "shared":
		items, err = fetcher.SharedWithMe(ctx, session)
	case "recent":
		items, err = fetcher.Recent(ctx, session)
	default:
		return fmt.Errorf("unknown collection %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("could not load collection: %w", err)
	}

	typed, _ := cmd.Flags().GetBool("typed")
	if typed {
		decoded, err := items.DriveItems()
		if err != nil {
			return err
		}
		return printJSON(decoded)
	}

	return printJSON(items)
}

// newFetcher builds a drive fetcher from the loaded configuration.
func newFetcher(cfg *config.Config) (*drive.Fetcher, error) {
	proxy, err := cfg.ProxySettings()
	if err != nil {
		return nil, err
	}

	return drive.NewFetcher(drive.Config{
		BaseURL: cfg.Graph.BaseURL,
		Proxy:   proxy,
		Timeout: cfg.Timeout(),
	}), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
