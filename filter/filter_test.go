package filter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{"id": float64(550), "name": "Fight Club", "rating": "7.8", "released": "1999-10-15", "imdb_id": "tt0137523"},
		{"id": float64(348), "name": "Alien", "rating": 8.1, "released": "1979-05-25"},
		{"id": float64(13), "name": "Forrest Gump", "rating": "6.9", "released": "1994-07-06", "imdb_id": nil},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "valid expression", expression: `icontains(name, "club")`},
		{name: "infix operator", expression: `lower(name) contains "club"`},
		{name: "empty expression", expression: "   ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `icontains(name, "unclosed`, wantErr: true},
		{name: "non boolean", expression: `1 + 2`, wantErr: true},
		{name: "complex expression", expression: `num(rating) > 7 and year(released) >= 1990 or has("imdb_id")`},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, filter)
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	records := testRecords()

	tests := []struct {
		expression string
		expected   []string
	}{
		{`icontains(name, "CLUB")`, []string{"Fight Club"}},
		{`name contains "Club"`, []string{"Fight Club"}},
		{`upper(name) startsWith "ALI"`, []string{"Alien"}},
		{`num(rating) >= 7`, []string{"Fight Club", "Alien"}},
		{`has("imdb_id")`, []string{"Fight Club"}},
		{`year(released) < 1995`, []string{"Alien", "Forrest Gump"}},
		{`Record.name == "Alien"`, []string{"Alien"}},
		{`field("id") == 13`, []string{"Forrest Gump"}},
		{`istartsWith(name, "f") and not iendsWith(name, "gump")`, []string{"Fight Club"}},
		{`parseDate(released) > parseDate("1990-01-01")`, []string{"Fight Club", "Forrest Gump"}},
		{`votes > 10`, nil},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			var matched []string
			for _, record := range records {
				if filter.Evaluate(record) {
					matched = append(matched, record["name"].(string))
				}
			}
			assert.Equal(t, tt.expected, matched)
			assert.Equal(t, tt.expression, filter.Expression())
		})
	}
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isClassic": func(v any) bool { return toNumber(v) < 1980 },
	}))

	filter, err := compiler.Compile(`isClassic(year(released))`)
	require.NoError(t, err)
	assert.True(t, filter.Evaluate(testRecords()[1]))
	assert.False(t, filter.Evaluate(testRecords()[0]))
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`num(rating) > 5`)
	require.NoError(t, err)
	second, err := compiler.Compile(` num(rating) > 5 `)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, compiler.Size())

	compiler.Clear()
	assert.Equal(t, 0, compiler.Size())
	assert.Equal(t, 0, NewExprCompiler().Size())
}

func TestLRUCacheEviction(t *testing.T) {
	cache := newLRUCache[int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", 3)
	_, ok = cache.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")

	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Put("a", 10)
	v, _ = cache.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, cache.Len())
}

func TestConcurrentEvaluator(t *testing.T) {
	records := make([]Record, 0, 250)
	for i := 0; i < 250; i++ {
		records = append(records, Record{"id": float64(i), "name": fmt.Sprintf("movie %d", i)})
	}

	filter, err := NewExprCompiler().Compile(`int(id) % 2 == 0`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(10))
	defer evaluator.Stop(context.Background())

	matches, err := evaluator.Evaluate(context.Background(), filter, records)
	require.NoError(t, err)
	require.Len(t, matches, 125)
	for i, record := range matches {
		assert.Equal(t, float64(i*2), record["id"], "order is preserved")
	}

	empty, err := evaluator.Evaluate(context.Background(), filter, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestConcurrentEvaluator_Canceled(t *testing.T) {
	records := make([]Record, 500)
	for i := range records {
		records[i] = Record{"id": float64(i)}
	}

	filter, err := NewExprCompiler().Compile(`true`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(2), WithBatchSize(10))
	defer evaluator.Stop(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = evaluator.Evaluate(ctx, filter, records)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_Stop(t *testing.T) {
	pool := NewWorkerPool(2)

	done := make(chan struct{})
	require.NoError(t, pool.Submit(func() { close(done) }))
	<-done

	require.NoError(t, pool.Stop(context.Background()))
	assert.ErrorIs(t, pool.Submit(func() {}), ErrPoolStopped)
	assert.NoError(t, pool.Stop(context.Background()), "stop is idempotent")
}

func TestManager(t *testing.T) {
	manager := NewManager()
	defer manager.Close(context.Background())

	require.NoError(t, manager.RegisterFilters(map[string]string{
		"classics": `year(released) < 1980`,
		"good":     `num(rating) >= 7.5`,
	}))
	assert.Equal(t, []string{"classics", "good"}, manager.ListFilters())

	matches, err := manager.EvaluateFilter(context.Background(), "good", testRecords())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Fight Club", matches[0]["name"])

	_, err = manager.EvaluateFilter(context.Background(), "missing", testRecords())
	var presetErr *UnknownPresetError
	assert.ErrorAs(t, err, &presetErr)

	err = manager.RegisterFilters(map[string]string{"bad": `(`, "fine": `true`})
	assert.Error(t, err)
	_, ok := manager.GetFilter("fine")
	assert.False(t, ok, "no filter is registered when one fails to compile")

	adhoc, err := manager.Compile(`icontains(name, "alien")`)
	require.NoError(t, err)
	matches, err = manager.Apply(context.Background(), adhoc, testRecords())
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
