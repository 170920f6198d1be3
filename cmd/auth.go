package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbclient/tmdb"
)

// authCmd groups the token and session flow
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate a user and create a session",
	Long: `Authentication takes three steps:

  1. tmdbctl auth token            request a token
  2. open the printed URL          the user grants the token
  3. tmdbctl auth session <token>  exchange the token for a session key

The session key is then passed to 'movie rate --session'.`,
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Request an authentication token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := client.GetToken(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Token: %s\n", token)
		fmt.Printf("Grant access at: %s\n", client.AuthURL(token))
		return nil
	},
}

var authURLCmd = &cobra.Command{
	Use:               "url <token>",
	Short:             "Print the URL where a token is granted",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: initializeLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), tmdb.AuthURL(args[0]))
		return nil
	},
}

var authSessionCmd = &cobra.Command{
	Use:   "session <token>",
	Short: "Exchange a granted token for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.GetSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if session, ok := result.Lookup("session_key"); ok && !rawOutput {
			fmt.Printf("Session key: %s\n", session)
			return nil
		}
		printResult(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authTokenCmd, authURLCmd, authSessionCmd)
}
