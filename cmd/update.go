package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbclient/config"
)

// defaultRepository is used when no config file is available
const defaultRepository = "s0up4200/tmdbclient"

var checkOnly bool

// updateCmd replaces the running binary with the latest release
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update tmdbctl to the latest release",
	Long: `Check the release repository for a newer version and replace the
running binary with it. Use --check to only report whether an update
is available.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeLogger,
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer release")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", version)
	}

	repository := updateRepository()
	logger.Info().Str("repository", repository).Str("current", current.String()).Msg("Checking for updates")

	updater, latest, err := latestRelease(ctx, repository)
	if err != nil {
		return err
	}

	available, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("release has an invalid version %q: %w", latest.Version(), err)
	}

	if available.LTE(current) {
		fmt.Printf("tmdbctl %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Printf("tmdbctl %s is available (current: %s)\n", available, current)
		if latest.ReleaseNotes != "" {
			fmt.Printf("\n%s\n", latest.ReleaseNotes)
		}
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	logger.Info().Str("version", available.String()).Str("path", exe).Msg("Updated successfully")
	return nil
}

func latestRelease(ctx context.Context, repository string) (*selfupdate.Updater, *selfupdate.Release, error) {
	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return nil, nil, errors.New("no release found for this platform")
	}

	return updater, latest, nil
}

// updateRepository reads update.repository, falling back to the default
// when the config cannot be loaded
func updateRepository() string {
	cfg, err := config.Load(cfgFile, nil)
	if err != nil {
		logger.Debug().Err(err).Msg("Using default update repository")
		return defaultRepository
	}
	if cfg.Update.Repository == "" {
		return defaultRepository
	}
	return cfg.Update.Repository
}
