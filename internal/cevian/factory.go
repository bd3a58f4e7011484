package cevian

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory looks up calculators by method name.
type CalculatorFactory interface {
	// List returns the registered names in sorted order.
	List() []string
	// Get returns the calculator registered under name.
	Get(name string) (Calculator, error)
	// Register adds or replaces a calculator.
	Register(name string, calc Calculator)
}

// DefaultFactory is a concurrency-safe registry of calculators.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// NewDefaultFactory returns a factory holding the trig, exact and rule
// calculators.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{calculators: make(map[string]Calculator)}
	f.Register(MethodTrig, TrigCeva{})
	f.Register(MethodExact, ExactCeva{})
	f.Register(MethodRule, ClosedForm{})
	return f
}

// Register adds or replaces a calculator.
func (f *DefaultFactory) Register(name string, calc Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = calc
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the calculator registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	calc, ok := f.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown method %q", name)
	}
	return calc, nil
}
