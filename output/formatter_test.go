package output

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbclient/tmdb"
)

func resultFor(t *testing.T, format tmdb.Format, body string) tmdb.Result {
	t.Helper()

	client := tmdb.NewClient("k", zerolog.Nop(),
		tmdb.WithFormat(format.String()),
		tmdb.WithTransport(tmdb.TransportFunc(func(_ context.Context, _ tmdb.Request) ([]byte, error) {
			return []byte(body), nil
		})),
	)
	result, err := client.SearchMovies(context.Background(), "x")
	require.NoError(t, err)
	return result
}

func TestFormatResult(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Equal(t, "No result", f.FormatResult(tmdb.Absent()))
	assert.Equal(t, "[\n  {\n    \"id\": 1\n  }\n]", f.FormatResult(resultFor(t, tmdb.FormatJSON, `[{"id":1}]`)))
	assert.Equal(t, "token: abc", f.FormatResult(resultFor(t, tmdb.FormatYAML, "token: abc\n")))

	xmlOut := f.FormatResult(resultFor(t, tmdb.FormatXML, `<movies><movie><name>Alien</name></movie></movies>`))
	assert.Contains(t, xmlOut, "\n  <movie>")
	assert.Contains(t, xmlOut, "<name>Alien</name>")
}

func TestFormatRecords(t *testing.T) {
	f := NewConsoleFormatter()
	records := []map[string]any{
		{"id": float64(550), "name": "Fight Club", "released": "1999-10-15", "rating": "7.8", "imdb_id": "tt0137523"},
		{"id": float64(287), "name": "Brad Pitt", "birthday": "1963-12-18", "url": "http://www.themoviedb.org/person/287"},
	}

	out := f.FormatRecords("movie", records, FormatOptions{})
	assert.Contains(t, out, "Movies (2):")
	assert.Contains(t, out, "├── Fight Club (1999)")
	assert.Contains(t, out, "╰── Brad Pitt (1963)")
	assert.Contains(t, out, "ID: 550 | Rating: 7.8")
	assert.NotContains(t, out, "IMDb")

	detailed := f.FormatRecords("movie", records, FormatOptions{ShowDetails: true})
	assert.Contains(t, detailed, "IMDb: tt0137523")
	assert.Contains(t, detailed, "URL: http://www.themoviedb.org/person/287")

	assert.Equal(t, "No persons found", f.FormatRecords("person", nil, FormatOptions{}))
	assert.Contains(t, f.FormatRecords("person", records[1:], FormatOptions{}), "Person (1):")
}
