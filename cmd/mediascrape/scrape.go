package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pevans/mediascrape/facade"
)

var (
	page    int
	pageURL string
)

// scrapeFunc runs one facade operation with the command's arguments.
type scrapeFunc func(ctx context.Context, svc *facade.Service, args []string) (any, error)

func scrapeCommand(use, short string, args cobra.PositionalArgs, paged bool, run scrapeFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := run(cmd.Context(), a.Service, args)
			if err != nil {
				return err
			}
			return output(cmd, cmd.Name(), result)
		},
	}
	if paged {
		cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
	}
	return cmd
}

func init() {
	listCmd := scrapeCommand("list", "Scrape the listing grid at --url", cobra.NoArgs, true,
		func(ctx context.Context, svc *facade.Service, _ []string) (any, error) {
			return svc.List(ctx, siteName, pageURL, page)
		})
	listCmd.Flags().StringVarP(&pageURL, "url", "u", "", "Listing URL, absolute or relative to the site")

	episodeCmd := scrapeCommand("episode", "Scrape the episode page at --url", cobra.NoArgs, false,
		func(ctx context.Context, svc *facade.Service, _ []string) (any, error) {
			return svc.Episode(ctx, siteName, pageURL)
		})
	episodeCmd.Flags().StringVarP(&pageURL, "url", "u", "", "Episode URL, absolute or relative to the site")

	rootCmd.AddCommand(
		scrapeCommand("home", "Scrape the home page sections", cobra.NoArgs, false,
			func(ctx context.Context, svc *facade.Service, _ []string) (any, error) {
				return svc.Home(ctx, siteName)
			}),
		listCmd,
		episodeCmd,
		scrapeCommand("latest", "Scrape the newest items", cobra.NoArgs, true,
			func(ctx context.Context, svc *facade.Service, _ []string) (any, error) {
				return svc.Latest(ctx, siteName, page)
			}),
		scrapeCommand("ongoing", "Scrape the currently airing anime", cobra.NoArgs, true,
			func(ctx context.Context, svc *facade.Service, _ []string) (any, error) {
				return svc.Ongoing(ctx, siteName, page)
			}),
		scrapeCommand("search <query>", "Search a site", cobra.ExactArgs(1), true,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				return svc.Search(ctx, siteName, args[0], page)
			}),
		scrapeCommand("genre <slug>", "Scrape the listing of a genre", cobra.ExactArgs(1), true,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				return svc.ByGenre(ctx, siteName, args[0], page)
			}),
		scrapeCommand("country <slug>", "Scrape the listing of a country", cobra.ExactArgs(1), true,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				return svc.ByCountry(ctx, siteName, args[0], page)
			}),
		scrapeCommand("year <year>", "Scrape the listing of a release year", cobra.ExactArgs(1), true,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return nil, fmt.Errorf("invalid year %q", args[0])
				}
				return svc.ByYear(ctx, siteName, year, page)
			}),
		scrapeCommand("feature <slug>", "Scrape a feature listing such as populer", cobra.ExactArgs(1), true,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				return svc.ByFeature(ctx, siteName, args[0], page)
			}),
		scrapeCommand("special <slug>", "Scrape a special page listing", cobra.ExactArgs(1), true,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				return svc.Special(ctx, siteName, args[0], page)
			}),
		scrapeCommand("detail <slug>", "Scrape a movie detail page", cobra.ExactArgs(1), false,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				return svc.Detail(ctx, siteName, args[0])
			}),
		scrapeCommand("series <slug>", "Scrape a series with its seasons", cobra.ExactArgs(1), false,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				return svc.SeriesDetail(ctx, siteName, args[0])
			}),
		scrapeCommand("anime <slug>", "Scrape an anime detail page", cobra.ExactArgs(1), false,
			func(ctx context.Context, svc *facade.Service, args []string) (any, error) {
				return svc.AnimeDetail(ctx, siteName, args[0])
			}),
		scrapeCommand("genres", "List the genres a site offers", cobra.NoArgs, false,
			func(ctx context.Context, svc *facade.Service, _ []string) (any, error) {
				return svc.Genres(ctx, siteName)
			}),
		scrapeCommand("feed", "Read the site's RSS feed", cobra.NoArgs, false,
			func(ctx context.Context, svc *facade.Service, _ []string) (any, error) {
				return svc.Feed(ctx, siteName)
			}),
		scrapeCommand("sites", "List the configured sites", cobra.NoArgs, false,
			func(_ context.Context, svc *facade.Service, _ []string) (any, error) {
				return svc.Sites(), nil
			}),
	)
}
