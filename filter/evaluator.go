package filter

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of concurrent goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithBatchSize sets the item count below which evaluation is sequential
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits large results into chunks evaluated in parallel.
type ConcurrentEvaluator struct {
	workers   int
	batchSize int
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workers:   runtime.GOMAXPROCS(0),
		batchSize: 100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Apply keeps the items of result that match f. Lists stay lists in their
// original order; objects keep the matching members. A nil result is
// returned unchanged.
func (e *ConcurrentEvaluator) Apply(ctx context.Context, f Filter, result any) (any, error) {
	if result == nil {
		return nil, nil
	}

	items, err := Items(result)
	if err != nil {
		return nil, err
	}

	keep, err := e.evaluate(ctx, f, items)
	if err != nil {
		return nil, err
	}

	if _, ok := result.(map[string]any); ok {
		out := make(map[string]any)
		for i, item := range items {
			if keep[i] {
				out[item.Name] = item.Value
			}
		}
		return out, nil
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		if keep[i] {
			out = append(out, item.Value)
		}
	}
	return out, nil
}

// Items splits a decoded JSON result into items. Object members are
// ordered by key.
func Items(result any) ([]Item, error) {
	switch v := result.(type) {
	case []any:
		items := make([]Item, len(v))
		for i, value := range v {
			items[i] = Item{Index: i, Value: value}
		}
		return items, nil
	case map[string]any:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		items := make([]Item, len(names))
		for i, name := range names {
			items[i] = Item{Name: name, Index: i, Value: v[name]}
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedResult, result)
	}
}

func (e *ConcurrentEvaluator) evaluate(ctx context.Context, f Filter, items []Item) ([]bool, error) {
	keep := make([]bool, len(items))
	if len(items) < e.batchSize {
		for i, item := range items {
			ok, err := f.Match(item)
			if err != nil {
				return nil, err
			}
			keep[i] = ok
		}
		return keep, nil
	}

	chunk := max(len(items)/e.workers, e.batchSize)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for start := 0; start < len(items); start += chunk {
		end := min(start+chunk, len(items))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				ok, err := f.Match(items[i])
				if err != nil {
					return err
				}
				// chunks write disjoint indexes
				keep[i] = ok
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keep, nil
}
