// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter implements the slide filters that rewrite a pandoc AST:
// TextBlanker empties every paragraph and CommentRangeStripper drops the
// content between NOT SLIDE marker comments. Filters hand out a fresh
// Handler per document so no state survives from one document to the next.
package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/pdiddy/slidefilters/internal/logging"
	"github.com/pdiddy/slidefilters/internal/pandoc"
)

// ErrUnknownFilter is returned by Lookup for unregistered names.
var ErrUnknownFilter = errors.New("unknown filter")

// Env is what a filter knows about the document pass it is joining.
type Env struct {
	// Format is the target output format pandoc passed on the command line
	// (e.g. "revealjs"); empty when run by hand.
	Format string

	// Logger receives diagnostics. Nil means discard.
	Logger *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return logging.Discard()
	}
	return e.Logger
}

// Filter produces node handlers for document passes.
type Filter interface {
	// Name is the registry name used on the command line.
	Name() string

	// Handler returns a handler for one document pass.
	Handler(env Env) pandoc.Handler
}

// Finisher is implemented by handlers that act once the whole document has
// been walked.
type Finisher interface {
	Finish()
}

var registry = map[string]Filter{}

func register(f Filter) {
	registry[f.Name()] = f
}

func init() {
	register(TextBlanker{})
	register(CommentRangeStripper{})
}

// Lookup returns the registered filter with the given name.
func Lookup(name string) (Filter, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q: available filters are %v", ErrUnknownFilter, name, Names())
	}
	return f, nil
}

// LookupAll resolves names in order.
func LookupAll(names []string) ([]Filter, error) {
	filters := make([]Filter, 0, len(names))
	for _, name := range names {
		f, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// Names returns the registered filter names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
