package tmdb

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.APIKey = "key123"
	return cfg
}

func TestBuildRequest_GET(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		expected string
	}{
		{
			name:     "no params",
			op:       Operation{Name: "Movie.getLatest"},
			expected: "http://api.themoviedb.org/2.1/Movie.getLatest/en/json/key123",
		},
		{
			name:     "scalar is escaped",
			op:       Operation{Name: "Movie.search", Params: Scalar("Fight Club 1999")},
			expected: "http://api.themoviedb.org/2.1/Movie.search/en/json/key123/Fight+Club+1999",
		},
		{
			name:     "int scalar",
			op:       Operation{Name: "Movie.getInfo", Params: Int(550)},
			expected: "http://api.themoviedb.org/2.1/Movie.getInfo/en/json/key123/550",
		},
		{
			name:     "list joined with commas",
			op:       Operation{Name: "Movie.getVersion", Params: List{"100", "200"}},
			expected: "http://api.themoviedb.org/2.1/Movie.getVersion/en/json/key123/100%2C200",
		},
		{
			name:     "values become a query string",
			op:       Operation{Name: "Movie.browse", Params: Values{"order": {"asc"}, "page": {"2"}}},
			expected: "http://api.themoviedb.org/2.1/Movie.browse/en/json/key123?order=asc&page=2",
		},
		{
			name:     "empty values add nothing",
			op:       Operation{Name: "Movie.browse", Params: Values{}},
			expected: "http://api.themoviedb.org/2.1/Movie.browse/en/json/key123",
		},
		{
			name:     "auth operations skip language",
			op:       Operation{Name: "Auth.getToken"},
			expected: "http://api.themoviedb.org/2.1/Auth.getToken/json/key123",
		},
		{
			name:     "format override",
			op:       Operation{Name: "Movie.getInfo", Params: Int(1), Format: FormatXML},
			expected: "http://api.themoviedb.org/2.1/Movie.getInfo/en/xml/key123/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _, err := buildRequest(testConfig(), tt.op)
			require.NoError(t, err)
			assert.Equal(t, MethodGet, req.Method)
			assert.Equal(t, tt.expected, req.URL)
			assert.Nil(t, req.Form)
		})
	}
}

func TestBuildRequest_LanguageSegment(t *testing.T) {
	cfg := testConfig()
	cfg.Language = "nl"

	names := []string{"Auth.getToken", "Auth.getSession", "AuthAnything", "Movie.search", "Person.getInfo", "Media.getInfo"}
	for _, name := range names {
		req, _, err := buildRequest(cfg, Operation{Name: name})
		require.NoError(t, err)

		hasLanguage := strings.Contains(req.URL, "/"+name+"/nl/")
		if strings.HasPrefix(name, "Auth") {
			assert.False(t, hasLanguage, name)
			assert.Contains(t, req.URL, "/"+name+"/json/")
		} else {
			assert.True(t, hasLanguage, name)
		}
	}
}

func TestBuildRequest_POST(t *testing.T) {
	params := url.Values{}
	params.Set("id", "550")
	params.Set("rating", "8.5")

	req, format, err := buildRequest(testConfig(), Operation{
		Name:   "Movie.addRating",
		Params: Values(params),
		Method: MethodPost,
	})
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, format)
	assert.Equal(t, MethodPost, req.Method)
	assert.Equal(t, "http://api.themoviedb.org/2.1/Movie.addRating", req.URL)
	assert.Equal(t, "550", req.Form.Get("id"))
	assert.Equal(t, "8.5", req.Form.Get("rating"))
	assert.Equal(t, "key123", req.Form.Get("api_key"))
	assert.Equal(t, "json", req.Form.Get("type"))

	// Caller params must not be mutated
	assert.Empty(t, params.Get("api_key"))
}

func TestBuildRequest_POSTFormatOverride(t *testing.T) {
	req, format, err := buildRequest(testConfig(), Operation{
		Name:   "Movie.addRating",
		Method: MethodPost,
		Format: FormatYAML,
	})
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)
	assert.Equal(t, "yaml", req.Form.Get("type"))
}

func TestBuildRequest_POSTScalar(t *testing.T) {
	req, _, err := buildRequest(testConfig(), Operation{Name: "Auth.getSession", Params: Scalar("tok"), Method: MethodPost})
	require.NoError(t, err)
	assert.Equal(t, "tok", req.Form.Get("0"))
}

func TestBuildRequest_Errors(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, _, err := buildRequest(DefaultConfig(), Operation{Name: "Movie.search"})
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("invalid format override falls back", func(t *testing.T) {
		req, format, err := buildRequest(testConfig(), Operation{Name: "Movie.getLatest", Format: "csv"})
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, format)
		assert.Contains(t, req.URL, "/json/")
	})
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		op       Operation
		expected string
	}{
		{
			name:     "key segment",
			key:      "key123",
			op:       Operation{Name: "Movie.search", Params: Scalar("x")},
			expected: "http://api.themoviedb.org/2.1/Movie.search/en/json/REDACTED/x",
		},
		{
			name:     "key equal to the language",
			key:      "en",
			op:       Operation{Name: "Movie.search", Params: Scalar("x")},
			expected: "http://api.themoviedb.org/2.1/Movie.search/en/json/REDACTED/x",
		},
		{
			name:     "key prefixing the format",
			key:      "js",
			op:       Operation{Name: "Movie.search", Params: Scalar("js")},
			expected: "http://api.themoviedb.org/2.1/Movie.search/en/json/REDACTED/js",
		},
		{
			name:     "auth operation without language",
			key:      "2.1",
			op:       Operation{Name: "Auth.getToken"},
			expected: "http://api.themoviedb.org/2.1/Auth.getToken/json/REDACTED",
		},
		{
			name:     "query parameters",
			key:      "key123",
			op:       Operation{Name: "Movie.browse", Params: Values{"page": {"1"}}},
			expected: "http://api.themoviedb.org/2.1/Movie.browse/en/json/REDACTED?page=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.APIKey = tt.key

			req, format, err := buildRequest(cfg, tt.op)
			require.NoError(t, err)

			redacted := redactURL(req.URL, keyPrefix(cfg, tt.op.Name, format), tt.key)
			assert.Equal(t, tt.expected, redacted)
		})
	}

	assert.Equal(t, "http://x", redactURL("http://x", "http://", ""))
	assert.Equal(t, "http://api/2.1/Movie.addRating",
		redactURL("http://api/2.1/Movie.addRating", "http://api/2.1/Movie.addRating/en/json/", "k"))
}
