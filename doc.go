// Package solid is a collection of small, runnable lessons on object design in Go.
//
// Each lesson lives in its own package and carries two versions of the same idea:
// the flawed design first, then the corrected one.
//
//   - creational/factory: Factory Method (pick a localizer by language name)
//   - solid/ocp: Open-Closed (shapes without a growing switch)
//   - solid/lsp: Liskov Substitution (why Square must not embed Rectangle)
//   - solid/dip: Dependency Inversion (front end depends on a DataSource, not a BackEnd)
//
// Lessons do not depend on each other. The cmd/solid binary runs any of them from
// the command line, and cmd/localegen generates new localizers that plug into the
// factory without editing it.
//
// Package solid See subpackages:
//   - creational/factory, solid/*: the lessons
//   - internal/config, internal/log, internal/output: ambient plumbing for the CLI
//   - cmd/solid, cmd/localegen: binaries
package solid
