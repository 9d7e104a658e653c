package localization_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatkit/localization"
)

func pluralDocument() localization.Document {
	return localization.Document{
		"en": map[string]any{
			"apple":   []any{"one apple", "many apples"},
			"stages":  []any{"first", "second", "third"},
			"message": []any{"{count} message", "{count} messages"},
			"hello":   "Hello",
		},
	}
}

func TestPlural(t *testing.T) {
	t.Parallel()

	store, err := localization.New(pluralDocument(), localization.WithDefaultLocale("en"))
	require.NoError(t, err)

	t.Run("selects first form for one", func(t *testing.T) {
		t.Parallel()
		form, err := store.Plural("apple", 1, "en")
		require.NoError(t, err)
		require.Equal(t, "one apple", form)
	})

	t.Run("selects last form otherwise", func(t *testing.T) {
		t.Parallel()
		for _, count := range []float64{0, 2, 5, -1, 1.5} {
			form, err := store.Plural("apple", count, "en")
			require.NoError(t, err)
			require.Equal(t, "many apples", form)
		}
	})

	t.Run("fractional one is still one", func(t *testing.T) {
		t.Parallel()
		form, err := store.Plural("apple", 2.0, "en")
		require.NoError(t, err)
		require.Equal(t, "many apples", form)

		form, err = store.Plural("apple", 1.0, "en")
		require.NoError(t, err)
		require.Equal(t, "one apple", form)
	})

	t.Run("longer lists expose only first and last entries", func(t *testing.T) {
		t.Parallel()
		form, err := store.Plural("stages", 1, "en")
		require.NoError(t, err)
		require.Equal(t, "first", form)

		form, err = store.Plural("stages", 2, "en")
		require.NoError(t, err)
		require.Equal(t, "third", form)
	})

	t.Run("substitutes parameters in the selected form", func(t *testing.T) {
		t.Parallel()
		form, err := store.Plural("message", 3, "en", localization.M{"count": 3})
		require.NoError(t, err)
		require.Equal(t, "3 messages", form)
	})
}

func TestPluralFailures(t *testing.T) {
	t.Parallel()

	t.Run("non-list value degrades to key", func(t *testing.T) {
		t.Parallel()
		handler := &recordingHandler{}
		store, err := localization.New(pluralDocument(),
			localization.WithDefaultLocale("en"),
			localization.WithLogger(slog.New(handler)),
		)
		require.NoError(t, err)

		form, err := store.Plural("hello", 2, "en")
		require.NoError(t, err)
		require.Equal(t, "hello", form)
		require.Equal(t, 1, handler.count())
	})

	t.Run("non-list value fails in strict mode", func(t *testing.T) {
		t.Parallel()
		store, err := localization.New(pluralDocument(),
			localization.WithDefaultLocale("en"),
			localization.Strict(),
		)
		require.NoError(t, err)

		_, err = store.Plural("hello", 2, "en")
		require.Error(t, err)
		require.ErrorIs(t, err, localization.ErrWrongFormat)
	})

	t.Run("missing key propagates as for localize", func(t *testing.T) {
		t.Parallel()
		strict, err := localization.New(pluralDocument(),
			localization.WithDefaultLocale("en"),
			localization.Strict(),
		)
		require.NoError(t, err)

		_, err = strict.Plural("nope", 2, "en")
		assert.ErrorIs(t, err, localization.ErrNotFound)

		lenient, err := localization.New(pluralDocument(), localization.WithDefaultLocale("en"))
		require.NoError(t, err)

		form, err := lenient.Plural("nope", 2, "en")
		require.NoError(t, err)
		assert.Equal(t, "nope", form)
	})

	t.Run("empty list counts as wrong format", func(t *testing.T) {
		t.Parallel()
		store, err := localization.New(localization.Document{
			"en": map[string]any{"void": []any{}},
		}, localization.Strict())
		require.NoError(t, err)

		_, err = store.Plural("void", 1, "en")
		require.ErrorIs(t, err, localization.ErrWrongFormat)
	})
}

func TestTn(t *testing.T) {
	t.Parallel()

	store, err := localization.New(pluralDocument(),
		localization.WithDefaultLocale("en"),
		localization.Strict(),
	)
	require.NoError(t, err)

	require.Equal(t, "one apple", store.Tn("apple", 1, "en"))
	require.Equal(t, "many apples", store.Tn("apple", 7, "en"))
	// The shorthand swallows errors and falls back to the key.
	require.Equal(t, "nope", store.Tn("nope", 1, "en"))
}
