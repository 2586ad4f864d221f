// Package ocp demonstrates the Open-Closed Principle with shapes.
//
// Software entities should be open for extension but closed for modification.
//
// ConditionalShape is the problem version: one type, keyed by a shape name, that
// switches on that name in both its constructor and Area. Supporting a square means
// editing both switches.
//
// Shape is the solution: each shape is its own type and satisfies the interface.
// Adding a square is a new type, and existing shapes stay untouched. Builders lets
// a caller construct shapes by name (e.g. from CLI flags) with the same property:
// new shapes are registered, not patched in.
package ocp
