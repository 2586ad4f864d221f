// Command localegen generates localizers for the factory lesson.
//
// It is the Open-Closed half of the Factory Method lesson made concrete: a new
// language is a new generated file that registers itself, and neither the factory
// nor any existing localizer is edited.
//
// Spec format (*.locale.json)
//
//	{
//	  "package": "locales",
//	  "typeName": "ItalianLocalizer",
//	  "language": "Italian",
//	  "register": true,
//	  "translations": { "car": "macchina", "bike": "bici" }
//	}
//
// Optional "factoryImport" overrides the import path of the factory package.
//
// Typical go:generate usage, in a file of the target package:
//
//	//go:generate go run ../../../cmd/localegen -spec ./italian.locale.json -out ./italian.gen.go
//
// Generated API
//
//   - type <TypeName> struct{ *factory.TableLocalizer }
//   - New<TypeName>() *<TypeName>
//   - with "register": an init() adding <Language> to factory.Default
//
// Output is gofmt'ed and written atomically (temp file + rename).
package main
