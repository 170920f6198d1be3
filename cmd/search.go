package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd groups the search operations
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search movies or persons by name",
}

var searchMovieCmd = &cobra.Command{
	Use:   "movie <title>",
	Short: "Search movies by title",
	Long: `Search movies by title. An IMDb id or a title followed by the year,
such as "Transformers 2007", narrows the search.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		logger.Info().Str("query", query).Msg("Searching movies")

		result, err := client.SearchMovies(cmd.Context(), query)
		if err != nil {
			return err
		}
		return printRecords(cmd.Context(), "movie", result)
	},
}

var searchPersonCmd = &cobra.Command{
	Use:   "person <name>",
	Short: "Search persons by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		logger.Info().Str("query", query).Msg("Searching persons")

		result, err := client.SearchPersons(cmd.Context(), query)
		if err != nil {
			return err
		}
		return printRecords(cmd.Context(), "person", result)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchMovieCmd, searchPersonCmd)

	addListFlags(searchMovieCmd)
	addListFlags(searchPersonCmd)
}
