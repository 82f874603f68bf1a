package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named filter presets and applies them to results
type Manager struct {
	compiler  Compiler
	evaluator Evaluator
	presets   map[string]Filter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator Evaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(100)),
		evaluator: NewConcurrentEvaluator(),
		presets:   make(map[string]Filter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterPresets compiles and registers named filters. Nothing is
// registered if any expression fails to compile.
func (m *Manager) RegisterPresets(presets map[string]string) error {
	compiled := make(map[string]Filter, len(presets))
	for name, expression := range presets {
		f, err := m.compiler.Compile(expression)
		if err != nil {
			return fmt.Errorf("failed to compile filter preset '%s': %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()

	return nil
}

// Preset returns a registered filter by name
func (m *Manager) Preset(name string) (Filter, bool) {
	m.mu.RLock()
	f, ok := m.presets[name]
	m.mu.RUnlock()
	return f, ok
}

// Presets returns the registered preset names in order
func (m *Manager) Presets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.presets))
}

// Compile compiles an ad-hoc expression with the manager's compiler
func (m *Manager) Compile(expression string) (Filter, error) {
	return m.compiler.Compile(expression)
}

// Resolve picks the filter for a command: an explicit expression, a
// preset name, or nothing. Giving both is an error.
func (m *Manager) Resolve(expression, preset string) (Filter, error) {
	switch {
	case expression != "" && preset != "":
		return nil, fmt.Errorf("--filter and --preset are mutually exclusive")
	case expression != "":
		return m.Compile(expression)
	case preset != "":
		f, ok := m.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("filter preset '%s' not found (available: %v)", preset, m.Presets())
		}
		return f, nil
	}
	return nil, nil
}

// Apply runs f over result; a nil filter returns result unchanged
func (m *Manager) Apply(ctx context.Context, f Filter, result any) (any, error) {
	if f == nil {
		return result, nil
	}
	return m.evaluator.Apply(ctx, f, result)
}
