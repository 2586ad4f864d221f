// Package factory demonstrates the Factory Method pattern with localizers.
//
// The problem version constructs every concrete localizer by hand, so each caller
// is coupled to FrenchLocalizer, SpanishLocalizer and EnglishLocalizer:
//
//	f := factory.NewFrenchLocalizer()
//	s := factory.NewSpanishLocalizer()
//	e := factory.NewEnglishLocalizer()
//
// The solution moves construction into one place. Callers ask for a language by
// name and receive a Localizer:
//
//	l, err := factory.Factory("French")
//	if err != nil {
//		// unknown language
//	}
//	l.Localize("car") // "voiture"
//
// New languages are added by registering a constructor, not by editing Factory:
//
//	factory.Default.MustRegister("German", func() factory.Localizer {
//		return factory.NewTableLocalizer(map[string]string{"car": "Auto"})
//	})
//
// Trade-offs
//
//   - Creator and concrete products are decoupled; product creation lives in one place.
//   - New products do not break existing callers.
//   - More types to read: every product is its own constructor.
package factory
