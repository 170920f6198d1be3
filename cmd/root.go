package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbclient/config"
	"github.com/s0up4200/tmdbclient/filter"
	"github.com/s0up4200/tmdbclient/output"
	"github.com/s0up4200/tmdbclient/tmdb"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    *tmdb.Client
	filters   *filter.Manager
	formatter = output.NewConsoleFormatter()

	// Global flags
	formatFlag   string
	languageFlag string
	apiKeyFlag   string
	rawOutput    bool

	// Shared command flags
	filterExpr  string
	preset      string
	showDetails bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdbctl",
	Short: "A command line client for the TMDb 2.1 API",
	Long: `tmdbctl queries The Movie Database 2.1 API for movies and persons,
browses the catalogue, rates movies and walks through the token and
session authentication flow.

Responses can be requested as json, xml or yaml. JSON record lists can
be narrowed with filter expressions or presets from the config file.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "response format: json, xml or yaml")
	rootCmd.PersistentFlags().StringVar(&languageFlag, "language", "", "response language code")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "TMDb API key (overrides config and TMDB_API_KEY)")
	rootCmd.PersistentFlags().BoolVar(&rawOutput, "raw", false, "print responses as returned instead of a summary")
}

// initializeApp initializes the configuration, logger, client and filters
func initializeApp(cmd *cobra.Command, args []string) error {
	overrides := make(map[string]any)
	if cmd.Flags().Changed("format") {
		overrides["tmdb.format"] = formatFlag
	}
	if cmd.Flags().Changed("language") {
		overrides["tmdb.language"] = languageFlag
	}
	if cmd.Flags().Changed("api-key") {
		overrides["tmdb.api_key"] = apiKeyFlag
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile, overrides)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	client = newClient(cfg.TMDB, logger)

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("format", client.Format().String()).
		Str("language", client.Language()).
		Strs("presets", filters.ListFilters()).
		Msg("Client initialized")

	return nil
}

// initializeLogger is used by commands that run without an API configuration
func initializeLogger(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
	return nil
}

func shutdownApp(cmd *cobra.Command, args []string) error {
	if filters == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return filters.Close(ctx)
}

func newClient(c config.TMDBConfig, logger zerolog.Logger) *tmdb.Client {
	return tmdb.NewClient(c.APIKey, logger,
		tmdb.WithBaseURL(c.BaseURL),
		tmdb.WithAPIVersion(c.APIVersion),
		tmdb.WithFormat(c.Format),
		tmdb.WithLanguage(c.Language),
		tmdb.WithHTTPTimeout(c.Timeout),
		tmdb.WithUserAgent(c.UserAgent),
	)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only on a terminal
	fd := os.Stderr.Fd()
	color := cfg.Color && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(writer).With().Timestamp().Logger()
}
