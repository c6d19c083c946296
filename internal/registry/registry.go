package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"certcomply/internal/logger"
	"certcomply/internal/policy"
)

// DefaultName is the canonical compliance evaluator entry.
const DefaultName = "compliance"

// Factory builds a named evaluator on first use.
type Factory func() (*policy.Evaluator, error)

// Registry maps names to evaluators with load-if-absent semantics. An
// evaluator is built by its factory the first time it is requested and
// reused afterwards.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	loaded    map[string]*policy.Evaluator
}

func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		loaded:    make(map[string]*policy.Evaluator),
	}
}

// NewDefault returns a registry with the standard compliance evaluator
// registered. policyFile may be empty to use the built-in rule table.
func NewDefault(policyFile string) *Registry {
	r := New()
	r.Register(DefaultName, func() (*policy.Evaluator, error) {
		if policyFile == "" {
			return policy.NewEvaluator(policy.DefaultRuleSet()), nil
		}
		rules, err := policy.LoadRuleSet(policyFile)
		if err != nil {
			return nil, err
		}
		return policy.NewEvaluator(rules), nil
	})
	return r
}

// Register makes a factory available under name, replacing any previous
// registration and dropping a previously loaded instance.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[name] = factory
	delete(r.loaded, name)
}

// Get returns the evaluator registered under name, building it on first use.
func (r *Registry) Get(name string) (*policy.Evaluator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ev, ok := r.loaded[name]; ok {
		return ev, nil
	}

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("no evaluator registered under %q", name)
	}

	ev, err := factory()
	if err != nil {
		return nil, fmt.Errorf("load evaluator %q: %w", name, err)
	}

	r.loaded[name] = ev
	logger.Get().Debug("evaluator loaded", slog.String("name", name))
	return ev, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of evaluators built so far.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.loaded)
}
