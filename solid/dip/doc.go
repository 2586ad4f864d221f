// Package dip demonstrates the Dependency Inversion Principle.
//
// Abstractions should not depend upon details. Details should depend upon abstractions.
//
// TightFrontEnd is the problem version: it holds a concrete *BackEnd and calls
// GetDataFromDatabase directly. Reading from a REST API would mean changing both types.
//
// FrontEnd is the solution: it is constructed with a DataSource and never learns
// which implementation it got. Database and API are the details; both depend on the
// DataSource abstraction by satisfying it.
//
// Sources is a small read-only registry used by composition roots (the CLI) to pick a
// DataSource by name.
package dip
