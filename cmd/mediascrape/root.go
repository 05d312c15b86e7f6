package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pevans/mediascrape/app"
	"github.com/pevans/mediascrape/config"
	"github.com/pevans/mediascrape/fetch"
	"github.com/pevans/mediascrape/logger"
	"github.com/pevans/mediascrape/snapshot"
)

// Global flags.
var (
	configPath string
	siteName   string
	inputFile  string
	save       bool
)

// Set by PersistentPreRunE for every subcommand.
var (
	cfg *config.Config
	log logger.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.mediascrape/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&siteName, "site", "s", "lk21", "Site profile to scrape")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "Scrape a saved HTML file instead of fetching the page")
	rootCmd.PersistentFlags().BoolVar(&save, "save", false, "Also save the result as a snapshot")
}

var rootCmd = &cobra.Command{
	Use:          "mediascrape",
	Short:        "Scrape movie and anime sites into structured JSON",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if log, err = logger.New(cfg.Log.Level); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// fileFetcher serves one local file for every URL, so any operation can
// run against a saved page.
type fileFetcher struct {
	path string
}

func (f fileFetcher) Fetch(_ context.Context, _ string) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// newApp builds the service for one command run. With --file the page
// cache is bypassed, since every URL maps to the same file.
func newApp() (*app.App, error) {
	var fetcher fetch.Fetcher = app.NewFetcher(cfg, log)
	runCfg := *cfg
	if inputFile != "" {
		fetcher = fileFetcher{path: inputFile}
		runCfg.Cache.DSN = ""
	}
	return app.New(&runCfg, log, fetcher)
}

// snapshotDir returns the configured snapshot directory, defaulting to
// ~/.mediascrape/snapshots.
func snapshotDir() (*snapshot.Dir, error) {
	dir := cfg.Snapshot.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(home, ".mediascrape", "snapshots")
	}
	return snapshot.NewDir(dir)
}

// output prints result as indented JSON and saves it when --save is set.
func output(cmd *cobra.Command, kind string, result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if !save {
		return nil
	}
	dir, err := snapshotDir()
	if err != nil {
		return err
	}
	path, err := dir.Save(kind, result)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Saved snapshot %s\n", path)
	return nil
}
