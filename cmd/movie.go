package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/tmdbclient/tmdb"
)

// maxConcurrentLookups bounds parallel per-id requests
const maxConcurrentLookups = 5

var (
	browseOrderBy string
	browseOrder   string
	browsePage    int
	browsePerPage int
	browseParams  []string
	sessionKey    string
)

// movieCmd groups the movie operations
var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Look up, browse and rate movies",
}

var movieInfoCmd = &cobra.Command{
	Use:   "info <id>...",
	Short: "Show full information for one or more movies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerID(cmd.Context(), args, client.MovieInfo)
	},
}

var movieImagesCmd = &cobra.Command{
	Use:   "images <id>",
	Short: "Show the posters and backdrops of a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerID(cmd.Context(), args, client.MovieImages)
	},
}

var movieTranslationsCmd = &cobra.Command{
	Use:   "translations <id>",
	Short: "List the languages a movie is translated into",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerID(cmd.Context(), args, client.MovieTranslations)
	},
}

var movieLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recently added movie",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.LatestMovie(cmd.Context())
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var movieVersionCmd = &cobra.Command{
	Use:   "version <id>...",
	Short: "Show the last modified time and version of movies",
	Args:  cobra.RangeArgs(1, tmdb.MaxVersionIDs),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.MovieVersion(cmd.Context(), args...)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var movieBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the movie catalogue by rating, release or title",
	Long: `Browse the movie catalogue. Results are ordered by rating, release or
title, ascending or descending. Extra API parameters such as genres or
year ranges can be passed with --param key=value.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

var movieIMDbCmd = &cobra.Command{
	Use:   "imdb <imdb-id>",
	Short: "Find a movie by its IMDb id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.IMDbLookup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var movieRateCmd = &cobra.Command{
	Use:   "rate <id> <rating>",
	Short: "Rate a movie with an authenticated session",
	Args:  cobra.ExactArgs(2),
	RunE:  runRate,
}

func init() {
	rootCmd.AddCommand(movieCmd)
	movieCmd.AddCommand(movieInfoCmd, movieImagesCmd, movieTranslationsCmd, movieLatestCmd,
		movieVersionCmd, movieBrowseCmd, movieIMDbCmd, movieRateCmd)

	movieBrowseCmd.Flags().StringVar(&browseOrderBy, "order-by", "rating", "order by rating, release or title")
	movieBrowseCmd.Flags().StringVar(&browseOrder, "order", "asc", "sort direction: asc or desc")
	movieBrowseCmd.Flags().IntVar(&browsePage, "page", 1, "result page")
	movieBrowseCmd.Flags().IntVar(&browsePerPage, "per-page", 10, "results per page")
	movieBrowseCmd.Flags().StringArrayVar(&browseParams, "param", nil, "extra parameter as key=value (repeatable)")
	addListFlags(movieBrowseCmd)

	movieRateCmd.Flags().StringVar(&sessionKey, "session", "", "session key from 'auth session'")
	movieRateCmd.MarkFlagRequired("session")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	extra, err := parseParams(browseParams)
	if err != nil {
		return err
	}

	result, err := client.BrowseMovies(cmd.Context(), tmdb.BrowseOptions{
		OrderBy: browseOrderBy,
		Order:   browseOrder,
		Page:    browsePage,
		PerPage: browsePerPage,
		Extra:   extra,
	})
	if err != nil {
		return err
	}
	if result.IsAbsent() {
		return fmt.Errorf("invalid ordering %q %q: order-by must be rating, release or title and order asc or desc",
			browseOrderBy, browseOrder)
	}

	return printRecords(cmd.Context(), "movie", result)
}

func runRate(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[:1])
	if err != nil {
		return err
	}

	rating, err := strconv.ParseFloat(args[1], 64)
	if err != nil || rating < 0 || rating > 10 {
		return fmt.Errorf("invalid rating: %s (must be between 0 and 10)", args[1])
	}

	result, err := client.AddMovieRating(cmd.Context(), ids[0], rating, sessionKey)
	if err != nil {
		return err
	}

	logger.Info().Int("movie_id", ids[0]).Float64("rating", rating).Msg("Rating submitted")
	printResult(result)
	return nil
}

// runPerID fetches every id concurrently and prints the results in argument order
func runPerID(ctx context.Context, args []string, fetch func(context.Context, int) (tmdb.Result, error)) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	results := make([]tmdb.Result, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, id := range ids {
		g.Go(func() error {
			result, err := fetch(ctx, id)
			if err != nil {
				return fmt.Errorf("id %d: %w", id, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		printResult(result)
	}
	return nil
}

// parseParams turns key=value pairs into query values
func parseParams(params []string) (url.Values, error) {
	if len(params) == 0 {
		return nil, nil
	}

	values := make(url.Values, len(params))
	for _, param := range params {
		key, value, ok := strings.Cut(param, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", param)
		}
		values.Add(strings.TrimSpace(key), value)
	}
	return values, nil
}
