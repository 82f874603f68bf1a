package filter

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements Filter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*ExprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *ExprCompiler) {
		if size > 0 {
			c.cache = newProgramCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *ExprCompiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// ExprCompiler compiles expr expressions evaluated against result items.
//
// An expression sees the fields of an object item as variables, plus:
//
//	name   the member key of an object result
//	index  the position of the item
//	value  the item itself
//
// defined(key) reports whether an object item has the field key. Only
// the builtins in enabledBuiltins are available.
type ExprCompiler struct {
	helpers map[string]any
	cache   *programCache
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) *ExprCompiler {
	c := &ExprCompiler{
		helpers: helperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter
func (c *ExprCompiler) Compile(expression string) (Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if f, ok := c.cache.get(expression); ok {
			return f, nil
		}
	}

	opts := []expr.Option{
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
		expr.DisableAllBuiltins(),
	}
	for _, name := range enabledBuiltins {
		opts = append(opts, expr.EnableBuiltin(name))
	}

	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}

	if c.cache != nil {
		c.cache.put(expression, f)
	}

	return f, nil
}

// CacheSize returns the number of cached filters
func (c *ExprCompiler) CacheSize() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.size()
}

// Match evaluates the filter against one item
func (f *exprFilter) Match(item Item) (bool, error) {
	result, err := expr.Run(f.program, f.environment(item))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Item:       item.label(),
			Err:        err,
		}
	}
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Item:       item.label(),
			Err:        fmt.Errorf("expression returned %T, not bool", result),
		}
	}
	return matched, nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// environment layers the item's fields, the helpers and the per-item
// names; later layers win.
func (f *exprFilter) environment(item Item) map[string]any {
	fields, _ := item.Value.(map[string]any)
	env := make(map[string]any, len(fields)+len(f.helpers)+4)
	maps.Copy(env, fields)
	maps.Copy(env, f.helpers)

	env["name"] = item.Name
	env["index"] = item.Index
	env["value"] = item.Value
	env["defined"] = func(key string) bool {
		_, ok := fields[key]
		return ok
	}
	return env
}

func (i Item) label() string {
	if i.Name != "" {
		return fmt.Sprintf("'%s'", i.Name)
	}
	return fmt.Sprintf("item %d", i.Index)
}

// enabledBuiltins are the expr builtins kept available. The rest are
// disabled so result fields such as count, max or keys resolve to the
// item's values instead of builtin functions.
var enabledBuiltins = []string{
	"len", "int", "float", "string", "abs",
	"trim", "lower", "upper", "split", "join",
	"hasPrefix", "hasSuffix",
}

// helperFunctions returns the static helpers available to every expression
func helperFunctions() map[string]any {
	return map[string]any{
		// Date helpers
		"parseTime": parseTime,
		"daysSince": func(v any) int {
			t := parseTime(v)
			if t.IsZero() {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		// Case-insensitive string helpers; the expr operators
		// contains, startsWith and endsWith are case-sensitive.
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"istartsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"iendsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		// The hub server sends booleans as strings
		"truthy": truthy,
		// replaced per item
		"defined": func(string) bool { return false },
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime reads RFC 3339 and plain date strings, and numbers as Unix
// seconds. Unparseable values give the zero time.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case float64:
		return time.Unix(int64(t), 0)
	case int:
		return time.Unix(int64(t), 0)
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	case float64:
		return b != 0
	case int:
		return b != 0
	}
	return false
}
