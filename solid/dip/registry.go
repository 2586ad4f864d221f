package dip

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrSourcePanic is returned if resolving a source panics internally.
var ErrSourcePanic = errors.New("dip: panic during Resolve")

// UnknownSourceError is returned when no DataSource is registered under a name.
type UnknownSourceError struct{ Name string }

// Error implements the error interface.
func (e UnknownSourceError) Error() string {
	// Example: dip: unknown data source "ftp"
	return "dip: unknown data source " + strconv.Quote(e.Name)
}

// Sources is a simple in-memory registry of data sources.
//
// It is read-only once built and only used by composition roots.
type Sources struct {
	items map[string]DataSource
}

func NewSources() *Sources {
	return &Sources{items: map[string]DataSource{}}
}

// DefaultSources returns a registry holding "database" and "api".
func DefaultSources() *Sources {
	return NewSources().
		Provide("database", Database{}).
		Provide("api", API{})
}

// Provide stores a source under name and returns the registry for chaining.
func (s *Sources) Provide(name string, src DataSource) *Sources {
	s.items[name] = src
	return s
}

// Resolve returns the source registered under name and converts panics into errors.
func (s *Sources) Resolve(name string) (src DataSource, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			src = nil
			err = fmt.Errorf("%w: %v", ErrSourcePanic, rec)
		}
	}()

	v, ok := s.items[name]
	if !ok {
		return nil, UnknownSourceError{Name: name}
	}
	return v, nil
}

// MustResolve returns the source or panics.
func (s *Sources) MustResolve(name string) DataSource {
	v, err := s.Resolve(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Names returns the registered names, sorted.
func (s *Sources) Names() []string {
	out := make([]string, 0, len(s.items))
	for k := range s.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
