package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/s0up4200/tmdbclient/tmdb"
)

// FormatOptions controls which record fields are shown
type FormatOptions struct {
	ShowDetails bool
}

// ConsoleFormatter provides console output formatting for API results
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatResult renders a result in its wire format, indented where the format allows it
func (f *ConsoleFormatter) FormatResult(result tmdb.Result) string {
	switch result.Kind() {
	case tmdb.KindJSON:
		tree, _ := result.JSON()
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return result.String()
		}
		return string(out)
	case tmdb.KindXML:
		doc, _ := result.Document()
		indented := doc.Copy()
		indented.Indent(2)
		out, err := indented.WriteToString()
		if err != nil {
			return result.String()
		}
		return strings.TrimRight(out, "\n")
	case tmdb.KindRaw:
		return strings.TrimRight(result.String(), "\n")
	default:
		return "No result"
	}
}

// FormatRecords formats movie or person records as a tree
func (f *ConsoleFormatter) FormatRecords(label string, records []map[string]any, options FormatOptions) string {
	if len(records) == 0 {
		return fmt.Sprintf("No %ss found", label)
	}

	var sb strings.Builder

	// Header
	fmt.Fprintf(&sb, "\n%s", capitalize(label))
	if len(records) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(records))

	for i, record := range records {
		isLast := i == len(records)-1
		f.formatRecord(&sb, record, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatRecord formats a single record entry
func (f *ConsoleFormatter) formatRecord(sb *strings.Builder, record map[string]any, isLast bool, options FormatOptions) {
	prefix := "├"
	if isLast {
		prefix = "╰"
	}

	fmt.Fprintf(sb, "%s── %s", prefix, recordName(record))
	if year := recordYear(record); year != "" {
		fmt.Fprintf(sb, " (%s)", year)
	}
	sb.WriteString("\n")

	indent := "│   "
	if isLast {
		indent = "    "
	}

	var parts []string
	if id := fieldString(record, "id"); id != "" {
		parts = append(parts, "ID: "+id)
	}
	if rating := fieldString(record, "rating"); rating != "" {
		parts = append(parts, "Rating: "+rating)
	}
	if votes := fieldString(record, "votes"); votes != "" {
		parts = append(parts, "Votes: "+votes)
	}
	if len(parts) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(parts, " | "))
	}

	if !options.ShowDetails {
		return
	}

	for _, detail := range []struct{ label, key string }{
		{"IMDb", "imdb_id"},
		{"Popularity", "popularity"},
		{"URL", "url"},
	} {
		if value := fieldString(record, detail.key); value != "" {
			fmt.Fprintf(sb, "%s%s: %s\n", indent, detail.label, value)
		}
	}
}

func recordName(record map[string]any) string {
	for _, key := range []string{"name", "title", "original_name"} {
		if name := fieldString(record, key); name != "" {
			return name
		}
	}
	return "Unknown"
}

// recordYear takes the year from a movie release date or a person birthday
func recordYear(record map[string]any) string {
	for _, key := range []string{"released", "birthday"} {
		if date := fieldString(record, key); len(date) >= 4 {
			return date[:4]
		}
	}
	return ""
}

func fieldString(record map[string]any, key string) string {
	switch v := record[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return ""
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
