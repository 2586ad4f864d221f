package factory

import (
	"errors"
	"sort"
	"strconv"

	"github.com/apex/log"
)

// DefaultLanguage is used when Factory is called with an empty name.
const DefaultLanguage = "English"

// ErrNilConstructor is returned when a language is registered with a nil constructor.
var ErrNilConstructor = errors.New("factory: nil constructor")

// UnknownLanguageError is returned when no constructor is registered for a language.
type UnknownLanguageError struct{ Language string }

// Error implements the error interface.
func (e UnknownLanguageError) Error() string {
	// Example: factory: unknown language "German"
	return "factory: unknown language " + strconv.Quote(e.Language)
}

// DuplicateLanguageError is returned when a language is registered twice.
type DuplicateLanguageError struct{ Language string }

// Error implements the error interface.
func (e DuplicateLanguageError) Error() string {
	// Example: factory: language "French" already registered
	return "factory: language " + strconv.Quote(e.Language) + " already registered"
}

// Constructor builds a fresh Localizer.
type Constructor func() Localizer

// Registry maps language names to constructors.
//
// Names are matched exactly; "french" and "French" are different languages.
// A Registry is meant to be filled during startup and read afterwards; it is not
// safe for concurrent registration.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ctors: map[string]Constructor{}}
}

// NewBuiltinRegistry returns a Registry holding French, English and Spanish.
func NewBuiltinRegistry() *Registry {
	return NewRegistry().
		MustRegister("French", func() Localizer { return NewFrenchLocalizer() }).
		MustRegister("English", func() Localizer { return NewEnglishLocalizer() }).
		MustRegister("Spanish", func() Localizer { return NewSpanishLocalizer() })
}

// Default is the registry used by Factory.
var Default = NewBuiltinRegistry()

// Register adds a constructor under name.
func (r *Registry) Register(name string, ctor Constructor) error {
	if ctor == nil {
		return ErrNilConstructor
	}
	if _, exists := r.ctors[name]; exists {
		return DuplicateLanguageError{Language: name}
	}
	r.ctors[name] = ctor
	log.WithField("language", name).Debug("factory: registered localizer")
	return nil
}

// MustRegister is Register for static setup; it panics on error and returns the
// registry for chaining.
func (r *Registry) MustRegister(name string, ctor Constructor) *Registry {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
	return r
}

// New constructs the Localizer registered under name.
func (r *Registry) New(name string) (Localizer, error) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, UnknownLanguageError{Language: name}
	}
	return ctor(), nil
}

// MustNew returns the Localizer for name or panics.
func (r *Registry) MustNew(name string) Localizer {
	l, err := r.New(name)
	if err != nil {
		panic(err)
	}
	return l
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.ctors[name]
	return ok
}

// Names returns the registered languages in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ctors))
	for k := range r.ctors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of the Registry. Registering into the copy leaves r untouched.
func (r *Registry) Clone() *Registry {
	cp := &Registry{ctors: make(map[string]Constructor, len(r.ctors))}
	for k, v := range r.ctors {
		cp.ctors[k] = v
	}
	return cp
}

// Factory returns a Localizer for language from the Default registry.
// An empty language selects DefaultLanguage.
func Factory(language string) (Localizer, error) {
	if language == "" {
		language = DefaultLanguage
	}
	return Default.New(language)
}
