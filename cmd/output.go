package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbclient/filter"
	"github.com/s0up4200/tmdbclient/output"
	"github.com/s0up4200/tmdbclient/tmdb"
)

// addListFlags registers the flags shared by commands returning record lists
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	cmd.Flags().BoolVar(&showDetails, "details", false, "show IMDb id, popularity and URL")
}

// printResult prints a single result in its wire format
func printResult(result tmdb.Result) {
	fmt.Println(formatter.FormatResult(result))
}

// printRecords prints a record list, narrowed by the active filter
func printRecords(ctx context.Context, label string, result tmdb.Result) error {
	if rawOutput && filterExpr == "" && preset == "" {
		printResult(result)
		return nil
	}

	if result.Kind() != tmdb.KindJSON {
		if filterExpr != "" || preset != "" {
			return fmt.Errorf("filters need json responses, got %s", result.Kind())
		}
		printResult(result)
		return nil
	}

	records, err := applyFilter(ctx, result.Records())
	if err != nil {
		return err
	}

	if rawOutput {
		return printJSON(records)
	}

	fmt.Print(formatter.FormatRecords(label, records, output.FormatOptions{
		ShowDetails: showDetails || cfg.Output.ShowDetails,
	}))
	return nil
}

// applyFilter narrows records with --filter or --preset. Priority: filter > preset.
func applyFilter(ctx context.Context, records []filter.Record) ([]filter.Record, error) {
	if filterExpr != "" {
		compiled, err := filters.Compile(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Debug().Str("filter", compiled.Expression()).Int("records", len(records)).Msg("Applying filter")
		return filters.Apply(ctx, compiled, records)
	}

	if preset != "" {
		logger.Debug().Str("preset", preset).Int("records", len(records)).Msg("Applying preset")
		return filters.EvaluateFilter(ctx, preset, records)
	}

	return records, nil
}

func printJSON(records []filter.Record) error {
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id: %s", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
