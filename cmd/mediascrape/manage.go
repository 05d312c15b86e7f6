package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pevans/mediascrape/store"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func init() {
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(snapshotsCmd, cacheCmd, versionCmd)
}

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots <kind>",
	Short: "List saved snapshots of one kind, e.g. detail or search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := snapshotDir()
		if err != nil {
			return err
		}
		result, err := dir.List(args[0])
		if err != nil {
			return err
		}

		if len(result.Items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No snapshots saved.")
		} else {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSAVED\tBYTES")
			for _, s := range result.Items {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.SavedAt.Format("2006-01-02 15:04:05"), len(s.Data))
			}
			w.Flush()
		}

		for _, readErr := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", &readErr)
		}
		return nil
	},
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the page cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired cache entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Cache.DSN == "" {
			return fmt.Errorf("no cache configured; set cache.dsn or MEDIASCRAPE_CACHE_DSN")
		}

		cache, err := store.NewCache(cfg.Cache.DSN)
		if err != nil {
			return err
		}
		defer cache.Close()

		n, err := cache.Purge()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Purged %d expired entries.\n", n)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mediascrape %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	},
}
