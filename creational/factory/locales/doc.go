// Package locales holds generated localizers that register themselves with
// factory.Default on import.
//
// Importing it for side effects adds languages to the factory without editing it:
//
//	import _ "github.com/sghaida/solid/creational/factory/locales"
package locales

//go:generate go run ../../../cmd/localegen -spec ./italian.locale.json -out ./italian.gen.go
