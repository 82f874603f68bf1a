package filter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `state == "RUNNING"`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `icontains(name, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `istartsWith(name, "ch") and truthy(enabled) and daysSince(created) < 30`,
		},
		{
			name:        "not boolean",
			expression:  `trim(" ABC ")`,
			wantErr:     true,
			errContains: "failed to compile",
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var ce *CompilationError
				assert.True(t, errors.As(err, &ce))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestCompileCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`index > 0`)
	require.NoError(t, err)
	again, err := compiler.Compile(`index > 0`)
	require.NoError(t, err)
	assert.Same(t, first, again)

	_, err = compiler.Compile(`index > 1`)
	require.NoError(t, err)
	_, err = compiler.Compile(`index > 2`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.CacheSize())

	evicted, err := compiler.Compile(`index > 0`)
	require.NoError(t, err)
	assert.NotSame(t, first, evicted)

	assert.Equal(t, 0, NewExprCompiler().CacheSize())
}

func TestMatch(t *testing.T) {
	compiler := NewExprCompiler()
	item := Item{
		Name:  "ch1",
		Index: 3,
		Value: map[string]any{
			"description": "Capture orders",
			"enabled":     "true",
			"count":       float64(12),
			"max":         float64(3),
			"keys":        []any{"a", "b"},
			"created":     time.Now().Add(-48 * time.Hour).UTC().Format(time.RFC3339),
		},
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{`name == "ch1"`, true},
		{`index == 3`, true},
		{`icontains(description, "ORDERS")`, true},
		{`description contains "ORDERS"`, false},
		{`truthy(enabled)`, true},
		{`enabled == "false"`, false},
		{`count > 10`, true},
		{`max == 3 and count > max`, true},
		{`len(keys) == 2`, true},
		{`upper(description) == "CAPTURE ORDERS"`, true},
		{`defined("count") and not defined("missing")`, true},
		{`daysSince(created) == 2`, true},
		{`parseTime(created).After(daysAgo(3))`, true},
		{`missing == nil`, true},
		{`value.description endsWith "orders"`, true},
		{`iendsWith(value.description, "ORDERS")`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			require.NoError(t, err)
			got, err := f.Match(item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchRuntimeError(t *testing.T) {
	f, err := NewExprCompiler().Compile(`count > 1`)
	require.NoError(t, err)

	_, err = f.Match(Item{Name: "ch1", Value: map[string]any{"count": []any{"x"}}})
	require.Error(t, err)

	var ee *EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "'ch1'", ee.Item)
}

func TestItems(t *testing.T) {
	items, err := Items(map[string]any{"b": 2.0, "a": 1.0})
	require.NoError(t, err)
	assert.Equal(t, []Item{
		{Name: "a", Index: 0, Value: 1.0},
		{Name: "b", Index: 1, Value: 2.0},
	}, items)

	items, err = Items([]any{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []Item{{Index: 0, Value: "x"}, {Index: 1, Value: "y"}}, items)

	_, err = Items("text")
	assert.ErrorIs(t, err, ErrUnsupportedResult)
}

func TestApply(t *testing.T) {
	compiler := NewExprCompiler()
	evaluator := NewConcurrentEvaluator()
	ctx := context.Background()

	t.Run("object result", func(t *testing.T) {
		f, err := compiler.Compile(`istartsWith(name, "prod")`)
		require.NoError(t, err)

		got, err := evaluator.Apply(ctx, f, map[string]any{
			"prod_hub": map[string]any{"description": "Production"},
			"test_hub": map[string]any{"description": "Test"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"prod_hub": map[string]any{"description": "Production"},
		}, got)
	})

	t.Run("list result keeps order", func(t *testing.T) {
		f, err := compiler.Compile(`state != "SUSPEND"`)
		require.NoError(t, err)

		got, err := evaluator.Apply(ctx, f, []any{
			map[string]any{"job": "ch1-cap-src", "state": "RUNNING"},
			map[string]any{"job": "ch1-integ-tgt", "state": "SUSPEND"},
			map[string]any{"job": "ch2-cap-src", "state": "PENDING"},
		})
		require.NoError(t, err)
		assert.Equal(t, []any{
			map[string]any{"job": "ch1-cap-src", "state": "RUNNING"},
			map[string]any{"job": "ch2-cap-src", "state": "PENDING"},
		}, got)
	})

	t.Run("nil result", func(t *testing.T) {
		f, err := compiler.Compile(`true`)
		require.NoError(t, err)
		got, err := evaluator.Apply(ctx, f, nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("text result", func(t *testing.T) {
		f, err := compiler.Compile(`true`)
		require.NoError(t, err)
		_, err = evaluator.Apply(ctx, f, "log line")
		assert.ErrorIs(t, err, ErrUnsupportedResult)
	})
}

func TestApplyConcurrent(t *testing.T) {
	items := make([]any, 1000)
	for i := range items {
		items[i] = map[string]any{"n": float64(i)}
	}

	f, err := NewExprCompiler().Compile(`int(n) % 2 == 0`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	got, err := evaluator.Apply(context.Background(), f, items)
	require.NoError(t, err)

	list, ok := got.([]any)
	require.True(t, ok)
	require.Len(t, list, 500)
	for i, v := range list {
		assert.Equal(t, float64(i*2), v.(map[string]any)["n"])
	}
}

func TestApplyCancelled(t *testing.T) {
	items := make([]any, 500)
	for i := range items {
		items[i] = map[string]any{"n": float64(i)}
	}
	f, err := NewExprCompiler().Compile(`true`)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewConcurrentEvaluator(WithBatchSize(10)).Apply(ctx, f, items)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManager(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.RegisterPresets(map[string]string{
		"production": `istartsWith(name, "prod")`,
		"described":  `defined("description")`,
	}))
	assert.Equal(t, []string{"described", "production"}, m.Presets())

	err := m.RegisterPresets(map[string]string{"broken": `name ==`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	_, ok := m.Preset("broken")
	assert.False(t, ok)

	t.Run("resolve", func(t *testing.T) {
		f, err := m.Resolve("", "production")
		require.NoError(t, err)
		assert.Equal(t, `istartsWith(name, "prod")`, f.Expression())

		f, err = m.Resolve(`index == 0`, "")
		require.NoError(t, err)
		assert.Equal(t, `index == 0`, f.Expression())

		f, err = m.Resolve("", "")
		require.NoError(t, err)
		assert.Nil(t, f)

		_, err = m.Resolve(`true`, "production")
		assert.Error(t, err)

		_, err = m.Resolve("", "unknown")
		require.Error(t, err)
		assert.Contains(t, err.Error(), fmt.Sprint([]string{"described", "production"}))
	})

	t.Run("apply", func(t *testing.T) {
		result := map[string]any{"prod": map[string]any{}, "dev": map[string]any{}}

		got, err := m.Apply(context.Background(), nil, result)
		require.NoError(t, err)
		assert.Equal(t, result, got)

		f, _ := m.Preset("production")
		got, err = m.Apply(context.Background(), f, result)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"prod": map[string]any{}}, got)
	})
}
