package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbclient/tmdb"
)

// personCmd groups the person operations
var personCmd = &cobra.Command{
	Use:   "person",
	Short: "Look up persons",
}

var personInfoCmd = &cobra.Command{
	Use:   "info <id>...",
	Short: "Show full information for one or more persons",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerID(cmd.Context(), args, client.PersonInfo)
	},
}

var personLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recently added person",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.LatestPerson(cmd.Context())
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

var personVersionCmd = &cobra.Command{
	Use:   "version <id>...",
	Short: "Show the last modified time and version of persons",
	Args:  cobra.RangeArgs(1, tmdb.MaxVersionIDs),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.PersonVersion(cmd.Context(), args...)
		if err != nil {
			return err
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(personCmd)
	personCmd.AddCommand(personInfoCmd, personLatestCmd, personVersionCmd)
}
