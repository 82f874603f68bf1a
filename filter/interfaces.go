package filter

import (
	"context"
)

// Item is one element of an API result: a list entry or an object member.
type Item struct {
	// Name is the member key for object results, empty for lists.
	Name string
	// Index is the position of the item in the result.
	Index int
	Value any
}

// Filter decides whether an item is kept
type Filter interface {
	// Match evaluates the filter against one item
	Match(item Item) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (Filter, error)
}

// Evaluator applies a filter to a whole result
type Evaluator interface {
	// Apply returns the part of result whose items match f
	Apply(ctx context.Context, f Filter, result any) (any, error)
}
