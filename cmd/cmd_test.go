package cmd

import (
	"bytes"
	"context"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdbclient/config"
	"github.com/s0up4200/tmdbclient/filter"
)

func TestParseParams(t *testing.T) {
	values, err := parseParams([]string{"genres=1,2", "min_votes=10", "genres=3"})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"genres": {"1,2", "3"}, "min_votes": {"10"}}, values)

	values, err = parseParams(nil)
	require.NoError(t, err)
	assert.Nil(t, values)

	_, err = parseParams([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseParams([]string{"=x"})
	assert.Error(t, err)
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"550", "13"})
	require.NoError(t, err)
	assert.Equal(t, []int{550, 13}, ids)

	_, err = parseIDs([]string{"550", "abc"})
	assert.EqualError(t, err, "invalid id: abc")
	_, err = parseIDs([]string{"-1"})
	assert.Error(t, err)
}

func TestApplyFilter(t *testing.T) {
	logger = zerolog.Nop()
	filters = filter.NewManager()
	defer filters.Close(context.Background())
	require.NoError(t, filters.RegisterFilter("good", `num(rating) >= 7`))

	records := []filter.Record{
		{"name": "Fight Club", "rating": "7.8"},
		{"name": "Gigli", "rating": "2.4"},
	}

	t.Cleanup(func() { filterExpr, preset = "", "" })

	filterExpr, preset = "", ""
	out, err := applyFilter(context.Background(), records)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	preset = "good"
	out, err = applyFilter(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Fight Club", out[0]["name"])

	filterExpr = `icontains(name, "gig")`
	out, err = applyFilter(context.Background(), records)
	require.NoError(t, err, "an expression takes priority over a preset")
	require.Len(t, out, 1)
	assert.Equal(t, "Gigli", out[0]["name"])

	filterExpr = `(`
	_, err = applyFilter(context.Background(), records)
	assert.ErrorContains(t, err, "invalid filter expression")
}

func TestSetupLogger(t *testing.T) {
	l := setupLogger(config.LoggingConfig{Level: "debug", Format: "json"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.NotNil(t, l)

	setupLogger(config.LoggingConfig{Level: "warn", Format: "console", Color: true})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestAuthURLCommand_NoAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("TMDB_TMDB_API_KEY", "")
	filters = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"auth", "url", "abc123", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "http://themoviedb.org/auth/abc123\n", out.String())
}
