package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/solid/creational/factory"
)

func TestBuiltinLocalizers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		l    factory.Localizer
		want []string
	}{
		{"french", factory.NewFrenchLocalizer(), []string{"voiture", "bicyclette", "cyclette"}},
		{"spanish", factory.NewSpanishLocalizer(), []string{"coche", "bicicleta", "ciclo"}},
		{"english", factory.NewEnglishLocalizer(), []string{"car", "bike", "cycle"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, factory.Translate(tc.l, factory.DemoWords))
		})
	}
}

func TestLocalize_UnknownWordPassesThrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "train", factory.NewFrenchLocalizer().Localize("train"))
	assert.Equal(t, "train", factory.NewSpanishLocalizer().Localize("train"))
	assert.Equal(t, "", factory.NewFrenchLocalizer().Localize(""))
}

func TestNewTableLocalizer_CopiesInput(t *testing.T) {
	t.Parallel()

	src := map[string]string{"car": "Auto"}
	l := factory.NewTableLocalizer(src)
	src["car"] = "Wagen"
	src["bike"] = "Fahrrad"

	assert.Equal(t, "Auto", l.Localize("car"))
	assert.Equal(t, "bike", l.Localize("bike"))
	assert.Equal(t, 1, l.Len())
}

func TestTranslate_Empty(t *testing.T) {
	t.Parallel()

	got := factory.Translate(factory.NewEnglishLocalizer(), nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
