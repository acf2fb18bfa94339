// Package process defines the text-processing Strategy capability and its
// interchangeable implementations.
package process

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Strategy transforms text. Implementations are pure and total: they hold no
// state and accept any input.
type Strategy interface {
	Process(input string) string
}

// Uppercase converts text to upper case using Unicode full case mapping.
type Uppercase struct{}

// Process implements Strategy.
func (Uppercase) Process(input string) string {
	// cases.Caser is stateful; a fresh one per call keeps Uppercase zero-size.
	return cases.Upper(language.Und).String(input)
}

// Lowercase converts text to lower case using Unicode full case mapping.
type Lowercase struct{}

// Process implements Strategy.
func (Lowercase) Process(input string) string {
	return cases.Lower(language.Und).String(input)
}

var (
	_ Strategy = Uppercase{}
	_ Strategy = Lowercase{}
)

// ProcessWith applies s to input. It adds nothing of its own, so
// ProcessWith(s, in) == s.Process(in) for every strategy.
func ProcessWith[S Strategy](s S, input string) string {
	return s.Process(input)
}

// ProcessBatch applies s to each item in order. An empty batch is rejected
// with types.ErrInvalidInput.
func ProcessBatch(s Strategy, items []string) ([]string, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("process batch: empty input: %w", types.ErrInvalidInput)
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = ProcessWith(s, item)
	}
	return out, nil
}

// Strategy names accepted by Lookup.
const (
	NameUpper = "upper"
	NameLower = "lower"
)

var registry = map[string]Strategy{
	NameUpper: Uppercase{},
	NameLower: Lowercase{},
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (valid: %v): %w", name, Names(), types.ErrInvalidInput)
	}
	return s, nil
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
