package factory

// Localizer translates a single word for one language.
//
// Words the localizer does not know are returned unchanged.
type Localizer interface {
	Localize(msg string) string
}

// TableLocalizer is a Localizer backed by a fixed word table.
//
// The table is copied at construction and never mutated afterwards.
type TableLocalizer struct {
	translations map[string]string
}

// NewTableLocalizer copies translations into a new TableLocalizer.
func NewTableLocalizer(translations map[string]string) *TableLocalizer {
	cp := make(map[string]string, len(translations))
	for k, v := range translations {
		cp[k] = v
	}
	return &TableLocalizer{translations: cp}
}

// Localize implements Localizer.
func (t *TableLocalizer) Localize(msg string) string {
	if v, ok := t.translations[msg]; ok {
		return v
	}
	return msg
}

// Len reports how many words the table knows.
func (t *TableLocalizer) Len() int { return len(t.translations) }

// FrenchLocalizer translates the demo vocabulary into French.
type FrenchLocalizer struct{ *TableLocalizer }

func NewFrenchLocalizer() *FrenchLocalizer {
	return &FrenchLocalizer{NewTableLocalizer(map[string]string{
		"car":   "voiture",
		"bike":  "bicyclette",
		"cycle": "cyclette",
	})}
}

// SpanishLocalizer translates the demo vocabulary into Spanish.
type SpanishLocalizer struct{ *TableLocalizer }

func NewSpanishLocalizer() *SpanishLocalizer {
	return &SpanishLocalizer{NewTableLocalizer(map[string]string{
		"car":   "coche",
		"bike":  "bicicleta",
		"cycle": "ciclo",
	})}
}

// EnglishLocalizer returns every word as-is.
type EnglishLocalizer struct{}

func NewEnglishLocalizer() *EnglishLocalizer { return &EnglishLocalizer{} }

// Localize implements Localizer.
func (EnglishLocalizer) Localize(msg string) string { return msg }

// Translate localizes each word in order.
func Translate(l Localizer, words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = l.Localize(w)
	}
	return out
}

// DemoWords is the vocabulary every built-in localizer knows.
var DemoWords = []string{"car", "bike", "cycle"}
