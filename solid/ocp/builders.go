package ocp

import (
	"errors"
	"sort"
	"strconv"

	"github.com/apex/log"
)

// ErrNilBuilder is returned when a shape is registered with a nil builder.
var ErrNilBuilder = errors.New("ocp: nil builder")

// DuplicateShapeError is returned when a shape name is registered twice.
type DuplicateShapeError struct{ Shape string }

// Error implements the error interface.
func (e DuplicateShapeError) Error() string {
	return "ocp: shape " + strconv.Quote(e.Shape) + " already registered"
}

// Builder constructs a Shape from keyword dimensions.
type Builder func(Params) (Shape, error)

// Builders maps shape names to builders.
type Builders struct {
	items map[string]Builder
}

// NewBuilders returns builders for circle, rectangle and square.
func NewBuilders() *Builders {
	b := &Builders{items: map[string]Builder{}}
	b.MustRegister("circle", func(p Params) (Shape, error) {
		if err := requireParams("circle", p, "radius"); err != nil {
			return nil, err
		}
		return NewCircle(p["radius"]), nil
	})
	b.MustRegister("rectangle", func(p Params) (Shape, error) {
		if err := requireParams("rectangle", p, "width", "height"); err != nil {
			return nil, err
		}
		return NewRectangle(p["width"], p["height"]), nil
	})
	b.MustRegister("square", func(p Params) (Shape, error) {
		if err := requireParams("square", p, "side"); err != nil {
			return nil, err
		}
		return NewSquare(p["side"]), nil
	})
	return b
}

// Register adds a builder under name.
func (b *Builders) Register(name string, fn Builder) error {
	if fn == nil {
		return ErrNilBuilder
	}
	if _, ok := b.items[name]; ok {
		return DuplicateShapeError{Shape: name}
	}
	b.items[name] = fn
	log.WithField("shape", name).Debug("ocp: registered builder")
	return nil
}

// MustRegister is Register that panics on error.
func (b *Builders) MustRegister(name string, fn Builder) *Builders {
	if err := b.Register(name, fn); err != nil {
		panic(err)
	}
	return b
}

// Build constructs the shape registered under name.
func (b *Builders) Build(name string, p Params) (Shape, error) {
	fn, ok := b.items[name]
	if !ok {
		return nil, UnknownShapeError{Shape: name}
	}
	return fn(p)
}

// Names returns the registered shape names, sorted.
func (b *Builders) Names() []string {
	out := make([]string, 0, len(b.items))
	for k := range b.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
