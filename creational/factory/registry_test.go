package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// NewRegistry / Register
// -----------------------------------------------------------------------------

func TestNewRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NotNil(t, r)
	require.NotNil(t, r.ctors)
	assert.Empty(t, r.Names())
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()
	err := r.Register("French", func() Localizer { return NewEnglishLocalizer() })
	require.Error(t, err)

	var dup DuplicateLanguageError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "French", dup.Language)
	assert.Equal(t, `factory: language "French" already registered`, err.Error())

	// original constructor is untouched
	assert.Equal(t, "voiture", r.MustNew("French").Localize("car"))
}

func TestRegister_NilConstructor(t *testing.T) {
	t.Parallel()

	err := NewRegistry().Register("German", nil)
	assert.ErrorIs(t, err, ErrNilConstructor)
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	r := NewRegistry().MustRegister("x", func() Localizer { return NewEnglishLocalizer() })
	require.PanicsWithError(t, `factory: language "x" already registered`, func() {
		r.MustRegister("x", func() Localizer { return NewEnglishLocalizer() })
	})
}

//
// -----------------------------------------------------------------------------
// New / MustNew / Has / Names
// -----------------------------------------------------------------------------

func TestNew_Unknown(t *testing.T) {
	t.Parallel()

	l, err := NewBuiltinRegistry().New("Klingon")
	assert.Nil(t, l)

	var unk UnknownLanguageError
	require.True(t, errors.As(err, &unk))
	assert.Equal(t, "Klingon", unk.Language)
	assert.Equal(t, `factory: unknown language "Klingon"`, err.Error())
}

func TestNew_IsCaseSensitive(t *testing.T) {
	t.Parallel()

	_, err := NewBuiltinRegistry().New("french")
	assert.Error(t, err)
}

func TestNew_FreshInstancePerCall(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()
	a := r.MustNew("Spanish")
	b := r.MustNew("Spanish")
	assert.NotSame(t, a, b)
}

func TestMustNew_PanicsOnUnknown(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, `factory: unknown language "Klingon"`, func() {
		_ = NewRegistry().MustNew("Klingon")
	})
}

func TestHasAndNames(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()
	assert.True(t, r.Has("English"))
	assert.False(t, r.Has("German"))
	assert.Equal(t, []string{"English", "French", "Spanish"}, r.Names())
}

func TestRegister_ExtendsWithoutEditingBuiltins(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry().MustRegister("German", func() Localizer {
		return NewTableLocalizer(map[string]string{"car": "Auto"})
	})

	assert.Equal(t, "Auto", r.MustNew("German").Localize("car"))
	assert.Equal(t, "coche", r.MustNew("Spanish").Localize("car"))
	assert.Len(t, r.Names(), 4)
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	orig := NewBuiltinRegistry()
	cp := orig.Clone()
	cp.MustRegister("German", func() Localizer { return NewTableLocalizer(nil) })

	assert.True(t, cp.Has("German"))
	assert.False(t, orig.Has("German"))
	assert.Equal(t, orig.Names(), []string{"English", "French", "Spanish"})
}

//
// -----------------------------------------------------------------------------
// Factory
// -----------------------------------------------------------------------------

func TestFactory_Builtins(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"French":  "voiture",
		"Spanish": "coche",
		"English": "car",
		"":        "car",
	}
	for lang, want := range cases {
		l, err := Factory(lang)
		require.NoError(t, err, lang)
		assert.Equal(t, want, l.Localize("car"), lang)
	}
}

func TestFactory_DefaultIsEnglish(t *testing.T) {
	t.Parallel()

	l, err := Factory("")
	require.NoError(t, err)
	assert.IsType(t, &EnglishLocalizer{}, l)
}

func TestFactory_Unknown(t *testing.T) {
	t.Parallel()

	_, err := Factory("Italian")
	assert.ErrorAs(t, err, &UnknownLanguageError{})
}
